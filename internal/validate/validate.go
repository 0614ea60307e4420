package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"gopkg.in/yaml.v3"
)

type Error struct {
	Path string
	Msg  string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

type Errors []Error

func (e Errors) Error() string {
	switch len(e) {
	case 0:
		return "validation failed"
	case 1:
		return e[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
	}
}

// Document checks a raw YAML schema document read from path against the
// compiled JSON schema. It returns nil or Errors.
func Document(s *jsonschema.Schema, path string, raw []byte) error {
	var errs Errors
	if len(bytes.TrimSpace(raw)) == 0 {
		errs = append(errs, Error{Path: path, Msg: "empty schema document"})
		return errs
	}
	if err := validateSchema(s, raw); err != nil {
		errs = append(errs, Error{Path: path, Msg: "JSON schema validation failed: " + err.Error()})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateSchema(s *jsonschema.Schema, yamlBytes []byte) error {
	var yamlDoc any
	if err := yaml.Unmarshal(yamlBytes, &yamlDoc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	jsonBytes, err := json.Marshal(stringKeys(yamlDoc))
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var jsonDoc any
	if err := json.Unmarshal(jsonBytes, &jsonDoc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := s.Validate(jsonDoc); err != nil {
		return schemaError{msg: formatSchemaErr(err)}
	}
	return nil
}

// stringKeys rewrites mappings decoded with non-string keys (1:, true:, null:)
// into map[string]any so the document can be marshalled as JSON.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, elem := range t {
			t[k] = stringKeys(elem)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, elem := range t {
			m[fmt.Sprint(k)] = stringKeys(elem)
		}
		return m
	case []any:
		for i, elem := range t {
			t[i] = stringKeys(elem)
		}
		return t
	default:
		return v
	}
}

type schemaError struct{ msg string }

func (e schemaError) Error() string { return e.msg }

func formatSchemaErr(err error) string {
	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		b, mErr := json.Marshal(ve.BasicOutput())
		if mErr != nil {
			return "schema: " + err.Error()
		}
		return "schema: " + string(b)
	}
	return "schema: " + err.Error()
}
