package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jupiterone/jupiterone-mcp/internal/validation"
)

// BindArgs decodes the tool call arguments into target, converts free-form
// numbers and validates the struct tags of target.
func BindArgs(request mcp.CallToolRequest, target any) error {
	args := request.Params.Arguments
	if args == nil {
		args = map[string]any{}
	}

	jsonBytes, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("failed to marshal arguments to JSON: %w", err)
	}

	// json.Number keeps integers intact inside map[string]any and []any fields.
	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	convertFields(reflect.ValueOf(target))

	if err := validation.ValidateStruct(target); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// convertFields walks structs and slices of structs and applies ConvertNumbers
// to every free-form field.
func convertFields(v reflect.Value) {
	switch v.Kind() {
	case reflect.Ptr:
		if !v.IsNil() {
			convertFields(v.Elem())
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if v.Type().Field(i).IsExported() {
				convertFields(v.Field(i))
			}
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Interface {
			convertInterface(v)
			return
		}
		for i := 0; i < v.Len(); i++ {
			convertFields(v.Index(i))
		}
	case reflect.Map, reflect.Interface:
		convertInterface(v)
	}
}

func convertInterface(v reflect.Value) {
	if v.IsNil() || !v.CanSet() {
		return
	}
	converted := ConvertNumbers(v.Interface())
	if converted == nil {
		return
	}
	if cv := reflect.ValueOf(converted); cv.Type().AssignableTo(v.Type()) {
		v.Set(cv)
	}
}

// ConvertNumbers recursively traverses a map or slice and converts json.Number
// to int64 when the value is whole and to float64 otherwise.
func ConvertNumbers(data any) any {
	switch v := data.(type) {
	case map[string]any:
		for key, value := range v {
			v[key] = ConvertNumbers(value)
		}
		return v
	case []map[string]any:
		for i, value := range v {
			v[i] = ConvertNumbers(value).(map[string]any)
		}
		return v
	case []any:
		for i, value := range v {
			v[i] = ConvertNumbers(value)
		}
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			if f == float64(int64(f)) {
				return int64(f)
			}
			return f
		}
		return v.String()
	default:
		return v
	}
}
