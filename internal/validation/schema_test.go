package validation

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sections/internal/catalog"
)

func testDefinition(t *testing.T) catalog.Definition {
	t.Helper()
	registry, err := catalog.NewRegistry([]string{"en", "es"})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	def, err := registry.Get(catalog.SectionHero)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	return def
}

func TestValidatePayload_AcceptsDefaultInstance(t *testing.T) {
	def := testDefinition(t)
	schema := catalog.DeriveSchema(def)

	if err := ValidateSchema(schema); err != nil {
		t.Fatalf("ValidateSchema() error = %v", err)
	}
	if err := ValidatePayload(schema, def.DefaultInstance()); err != nil {
		t.Fatalf("ValidatePayload() error = %v", err)
	}
}

func TestValidatePayload_RejectsWrongType(t *testing.T) {
	def := testDefinition(t)
	schema := catalog.DeriveSchema(def)

	doc := def.DefaultInstance()
	doc["headline"] = 42.0

	err := ValidatePayload(schema, doc)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}
	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidatePayload_RejectsUnknownField(t *testing.T) {
	def := testDefinition(t)
	schema := catalog.DeriveSchema(def)

	doc := def.DefaultInstance()
	doc["surprise"] = "not in the schema"

	if err := ValidatePayload(schema, doc); err == nil {
		t.Fatal("expected unknown field to be rejected")
	}
}

func TestValidatePayload_NilSchemaIsNoOp(t *testing.T) {
	if err := ValidatePayload(nil, map[string]any{"anything": true}); err != nil {
		t.Fatalf("ValidatePayload() error = %v", err)
	}
}

func TestValidateSchema_RejectsGarbage(t *testing.T) {
	schema := map[string]any{"type": 12}
	if err := ValidateSchema(schema); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}
