// Package validation checks tool arguments against their struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/jupiterone/jupiterone-mcp/internal/jupiterone"
)

var (
	defaultValidator = validator.New()
	defaultEn        = en.New()
	uni              = ut.New(defaultEn, defaultEn)

	// trans is the translator for the 'en' locale, or the fallback if not found.
	trans, _ = uni.GetTranslator(defaultEn.Locale())
)

// Violation is a single failed constraint.
type Violation struct {
	Tag         string
	Field       string
	Err         error
	Description string
}

func (v Violation) Error() string {
	return v.Err.Error()
}

// StructError lists every violation found in a struct.
type StructError struct {
	Violations []Violation
}

// Error joins the translated descriptions, one per line.
func (s *StructError) Error() string {
	descriptions := make([]string, 0, len(s.Violations))
	for _, v := range s.Violations {
		descriptions = append(descriptions, v.Description)
	}
	return strings.Join(descriptions, "\n")
}

// RegisterValidation registers a custom tag on the default validator.
func RegisterValidation(tag string, fn validator.Func) error {
	if err := defaultValidator.RegisterValidation(tag, fn); err != nil {
		return fmt.Errorf("register validation: %w", err)
	}
	return nil
}

// RegisterTranslation registers the message reported for tag. {0} is the field name.
func RegisterTranslation(tag, msg string) error {
	if err := defaultValidator.RegisterTranslation(
		tag,
		trans,
		func(ut ut.Translator) error {
			if err := ut.Add(tag, msg, true); err != nil {
				return fmt.Errorf("register translation: %w", err)
			}
			return nil
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	); err != nil {
		return fmt.Errorf("register translation: %w", err)
	}
	return nil
}

// ValidateValue validates v against a tag expression such as "required,chart_type".
func ValidateValue(v any, tag string) error {
	err := defaultValidator.Var(v, tag)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	e := errs[0]
	return Violation{
		Tag:         e.Tag(),
		Err:         e,
		Description: e.Translate(trans),
	}
}

// ValidateStruct validates s and returns a *StructError describing every violation.
func ValidateStruct(s any) error {
	err := defaultValidator.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}
	structError := &StructError{}
	for _, e := range errs {
		structError.Violations = append(structError.Violations, Violation{
			Tag:         e.Tag(),
			Field:       e.Namespace(),
			Err:         e,
			Description: e.Translate(trans),
		})
	}
	return structError
}

// jsonFieldName reports fields by their JSON name so messages match the tool arguments.
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func oneOf(values []string) validator.Func {
	return func(level validator.FieldLevel) bool {
		return slices.Contains(values, level.Field().String())
	}
}

func mustRegister(tag, msg string, fn validator.Func) {
	if err := RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation %s: %v", tag, err))
	}
	if err := RegisterTranslation(tag, msg); err != nil {
		panic(fmt.Sprintf("validation %s: %v", tag, err))
	}
}

func init() {
	defaultValidator.RegisterTagNameFunc(jsonFieldName)

	if err := entranslations.RegisterDefaultTranslations(defaultValidator, trans); err != nil {
		panic(fmt.Sprintf("validation register default translations: %v", err))
	}

	mustRegister("chart_type",
		"{0} must be one of: "+strings.Join(jupiterone.ChartTypes, ", "),
		oneOf(jupiterone.ChartTypes))
	mustRegister("polling_interval",
		"{0} must be one of: "+strings.Join(jupiterone.PollingIntervals, ", "),
		oneOf(jupiterone.PollingIntervals))
	mustRegister("job_status",
		"{0} must be one of: "+strings.Join(jupiterone.IntegrationJobStatuses, ", "),
		oneOf(jupiterone.IntegrationJobStatuses))
	mustRegister("alert_status",
		"{0} must be one of: ACTIVE, INACTIVE, DISMISSED",
		oneOf([]string{string(jupiterone.AlertStatusActive), string(jupiterone.AlertStatusInactive), string(jupiterone.AlertStatusDismissed)}))
}
