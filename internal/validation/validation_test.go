package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

func TestValidateValue(t *testing.T) {
	t.Run("chart type", func(t *testing.T) {
		assert.NoError(t, ValidateValue("pie", "required,chart_type"))

		err := ValidateValue("donut", "required,chart_type")
		var v Violation
		require.True(t, errors.As(err, &v))
		assert.Equal(t, "chart_type", v.Tag)
		assert.Contains(t, v.Description, "must be one of: area, bar")
	})

	t.Run("polling interval", func(t *testing.T) {
		assert.NoError(t, ValidateValue("ONE_DAY", "polling_interval"))
		assert.Error(t, ValidateValue("HOURLY", "polling_interval"))
	})

	t.Run("job status", func(t *testing.T) {
		assert.NoError(t, ValidateValue("FAILED", "omitempty,job_status"))
		assert.NoError(t, ValidateValue("", "omitempty,job_status"))
		assert.Error(t, ValidateValue("failed", "omitempty,job_status"))
	})

	t.Run("required", func(t *testing.T) {
		err := ValidateValue("", "required")
		var v Violation
		require.True(t, errors.As(err, &v))
		assert.Equal(t, "required", v.Tag)
	})
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid widget", func(t *testing.T) {
		w := jupiterone.WidgetInput{
			Title: "Users",
			Type:  "number",
			Config: jupiterone.WidgetConfig{
				Queries: []jupiterone.WidgetQuery{{Name: "query0", Query: "FIND User AS u RETURN COUNT(u) AS value"}},
			},
		}
		assert.NoError(t, ValidateStruct(w))
	})

	t.Run("reports every violation by json name", func(t *testing.T) {
		w := jupiterone.WidgetInput{
			Type: "donut",
			Config: jupiterone.WidgetConfig{
				Queries: []jupiterone.WidgetQuery{{Name: "query0"}},
			},
		}

		err := ValidateStruct(w)
		var structErr *StructError
		require.True(t, errors.As(err, &structErr))

		fields := make([]string, 0, len(structErr.Violations))
		for _, v := range structErr.Violations {
			fields = append(fields, v.Field)
		}
		assert.ElementsMatch(t, []string{
			"WidgetInput.title",
			"WidgetInput.type",
			"WidgetInput.config.queries[0].query",
		}, fields)
		assert.Contains(t, err.Error(), "title is a required field")
		assert.Contains(t, err.Error(), "type must be one of:")
	})

	t.Run("empty query list", func(t *testing.T) {
		err := ValidateStruct(jupiterone.WidgetConfig{})
		var structErr *StructError
		require.True(t, errors.As(err, &structErr))
		require.Len(t, structErr.Violations, 1)
		assert.Equal(t, "required", structErr.Violations[0].Tag)
	})

	t.Run("rule condition must be a filter", func(t *testing.T) {
		op := jupiterone.RuleOperationInput{
			When:    jupiterone.RuleCondition{Type: "MATCH", Condition: []any{"AND"}},
			Actions: []map[string]any{{"type": "CREATE_ALERT"}},
		}
		err := ValidateStruct(op)
		var structErr *StructError
		require.True(t, errors.As(err, &structErr))
		require.Len(t, structErr.Violations, 1)
		assert.Equal(t, "eq", structErr.Violations[0].Tag)
	})
}
