package validate

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/yegor-usoltsev/propel-prune/internal/schema"
)

func mustSchema(t *testing.T, schemaJSON string) *jsonschema.Schema {
	t.Helper()
	c := jsonschema.NewCompiler()
	if err := c.AddResource("mem://schema", mustUnmarshalJSON(t, schemaJSON)); err != nil {
		t.Fatalf("AddResource: %v", err)
	}
	return c.MustCompile("mem://schema")
}

func mustUnmarshalJSON(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return v
}

func TestDocument_OK(t *testing.T) {
	t.Parallel()

	s, err := schema.PropelYAML()
	if err != nil {
		t.Fatalf("PropelYAML: %v", err)
	}
	raw := []byte("propel:\n  _attributes: { package: lib.model }\n  blog_post:\n    _attributes: { phpName: Post }\n    id: ~\n  author:\n    id: ~\n")
	if err := Document(s, "config/schema.yml", raw); err != nil {
		t.Fatalf("expected no errors, got %v", err)
	}
}

func TestDocument_FailsForEmpty(t *testing.T) {
	t.Parallel()

	err := Document(mustSchema(t, `{}`), "config/schema.yml", []byte("  \n"))
	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("expected Errors, got %v", err)
	}
	if len(errs) != 1 || errs[0].Path != "config/schema.yml" {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestDocument_FailsForMissingPropelKey(t *testing.T) {
	t.Parallel()

	s, err := schema.PropelYAML()
	if err != nil {
		t.Fatalf("PropelYAML: %v", err)
	}
	if err := Document(s, "config/schema.yml", []byte("doctrine:\n  blog_post: {}\n")); err == nil {
		t.Fatalf("expected errors")
	}
}

func TestDocument_FailsForBadYAML(t *testing.T) {
	t.Parallel()

	if err := Document(mustSchema(t, `{}`), "config/schema.yml", []byte("propel: [valid\n")); err == nil {
		t.Fatalf("expected errors")
	}
}

func TestDocument_NonStringKeys(t *testing.T) {
	t.Parallel()

	s, err := schema.PropelYAML()
	if err != nil {
		t.Fatalf("PropelYAML: %v", err)
	}
	raw := []byte("propel:\n  legacy_codes:\n    1: { type: varchar }\n    true: { type: boolean }\n    null: { type: integer }\n")
	if err := Document(s, "config/schema.yml", raw); err != nil {
		t.Fatalf("expected no errors, got %v", err)
	}
}

func TestStringKeys(t *testing.T) {
	t.Parallel()

	in := map[string]any{"propel": map[any]any{1: []any{map[any]any{true: "x"}}}}
	got, ok := stringKeys(in).(map[string]any)
	if !ok {
		t.Fatalf("expected map[string]any, got %T", got)
	}
	inner, ok := got["propel"].(map[string]any)
	if !ok {
		t.Fatalf("expected nested map[string]any, got %T", got["propel"])
	}
	list, ok := inner["1"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected list under key 1, got %#v", inner["1"])
	}
	if m, ok := list[0].(map[string]any); !ok || m["true"] != "x" {
		t.Fatalf("expected list element keys converted, got %#v", list[0])
	}
}
