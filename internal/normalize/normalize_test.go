package normalize

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-sections/internal/catalog"
)

var testLocales = []string{"en", "es", "fr", "de"}

func testDefinition(t *testing.T, key string) catalog.Definition {
	t.Helper()
	registry, err := catalog.NewRegistry(testLocales)
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	def, err := registry.Get(key)
	if err != nil {
		t.Fatalf("Get(%q) error = %v", key, err)
	}
	return def
}

func TestMergeEmptyPartialEqualsDefaultInstance(t *testing.T) {
	for _, key := range []string{catalog.SectionHero, catalog.SectionContact, catalog.SectionEducation} {
		def := testDefinition(t, key)
		if got := Merge(def, map[string]any{}); !reflect.DeepEqual(got, def.DefaultInstance()) {
			t.Fatalf("%s: Merge(def, {}) = %#v, want default instance", key, got)
		}
	}
}

func TestMergeNilPartial(t *testing.T) {
	def := testDefinition(t, catalog.SectionHero)
	if got := Merge(def, nil); !reflect.DeepEqual(got, def.DefaultInstance()) {
		t.Fatalf("Merge(def, nil) = %#v, want default instance", got)
	}
}

func TestMergeTypeMismatchFallsToDefault(t *testing.T) {
	def := testDefinition(t, catalog.SectionContact)
	merged := Merge(def, map[string]any{
		"headline":    42,
		"description": "ok",
	})
	if merged["headline"] != "" {
		t.Fatalf("headline = %v, want default substitution", merged["headline"])
	}
	if merged["description"] != "ok" {
		t.Fatalf("description = %v, want preserved value", merged["description"])
	}
}

func TestMergeNullIsAbsentButEmptyIsPreserved(t *testing.T) {
	def := testDefinition(t, catalog.SectionHero)
	merged := Merge(def, map[string]any{
		"headline": nil,
		"tagline":  "",
		"background": map[string]any{
			"style": nil,
			"color": "#fff",
		},
	})
	if merged["headline"] != "" {
		t.Fatalf("null headline should fall to default, got %v", merged["headline"])
	}
	if merged["tagline"] != "" {
		t.Fatalf("explicit empty tagline should survive, got %v", merged["tagline"])
	}
	background := merged["background"].(map[string]any)
	if background["style"] != "gradient" {
		t.Fatalf("null nested key should fall to default, got %v", background["style"])
	}
	if background["color"] != "#fff" {
		t.Fatalf("overridden nested key should survive, got %v", background["color"])
	}
	if background["image"] != "" {
		t.Fatalf("missing nested key should fill from default, got %v", background["image"])
	}
}

func TestMergeDropsUnknownFields(t *testing.T) {
	def := testDefinition(t, catalog.SectionHero)
	merged := Merge(def, map[string]any{
		"headline":   "hello",
		"legacyGunk": map[string]any{"old": true},
	})
	if _, ok := merged["legacyGunk"]; ok {
		t.Fatal("unknown fields must be dropped")
	}
}

func TestMergeRepairsListItemsIndependently(t *testing.T) {
	def := testDefinition(t, catalog.SectionEducation)
	merged := Merge(def, map[string]any{
		"entries": []any{
			map[string]any{"institution": "MIT", "degree": "BSc", "field": "CS", "period": "2010-2014", "description": "..."},
			map[string]any{"institution": 99, "degree": "MSc"},
			"not-an-object",
		},
	})

	entries, ok := merged["entries"].([]any)
	if !ok {
		t.Fatalf("entries = %T, want list", merged["entries"])
	}
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	first := entries[0].(map[string]any)
	if first["institution"] != "MIT" || first["degree"] != "BSc" {
		t.Fatalf("valid item mangled: %#v", first)
	}

	second := entries[1].(map[string]any)
	if second["institution"] != "" {
		t.Fatalf("wrong-typed item field should fall to default, got %v", second["institution"])
	}
	if second["degree"] != "MSc" {
		t.Fatalf("valid item field should survive, got %v", second["degree"])
	}
	if second["period"] != "" {
		t.Fatalf("missing item field should fill from shape, got %v", second["period"])
	}

	third, ok := entries[2].(map[string]any)
	if !ok {
		t.Fatalf("non-object element should collapse to item shape, got %T", entries[2])
	}
	shape := def.ItemShape("entries")
	for field := range shape {
		if _, ok := third[field]; !ok {
			t.Fatalf("repaired element missing field %q", field)
		}
	}
}

func TestMergeNonListBecomesEmptyList(t *testing.T) {
	def := testDefinition(t, catalog.SectionSocial)
	merged := Merge(def, map[string]any{"links": "corrupted"})
	links, ok := merged["links"].([]any)
	if !ok || len(links) != 0 {
		t.Fatalf("links = %#v, want empty list", merged["links"])
	}
}

func TestMergeStringSubListInsideItems(t *testing.T) {
	def := testDefinition(t, catalog.SectionExperience)
	merged := Merge(def, map[string]any{
		"entries": []any{
			map[string]any{
				"company":    "Acme",
				"highlights": []any{"shipped v1", 7, "led team"},
			},
		},
	})
	entry := merged["entries"].([]any)[0].(map[string]any)
	highlights := entry["highlights"].([]any)
	want := []any{"shipped v1", "", "led team"}
	if !reflect.DeepEqual(highlights, want) {
		t.Fatalf("highlights = %#v, want %#v", highlights, want)
	}
}

func TestMergeTranslationsPerLocale(t *testing.T) {
	def := testDefinition(t, catalog.SectionContact)
	merged := Merge(def, map[string]any{
		"translations": map[string]any{
			"es": map[string]any{"headline": "Hola", "description": 12},
			"fr": "broken",
		},
	})

	translations := merged["translations"].(map[string]any)
	for _, locale := range testLocales {
		record, ok := translations[locale].(map[string]any)
		if !ok {
			t.Fatalf("locale %q record = %T, want map", locale, translations[locale])
		}
		for _, field := range def.Translatable {
			if _, ok := record[field]; !ok {
				t.Fatalf("locale %q missing field %q", locale, field)
			}
		}
	}

	es := translations["es"].(map[string]any)
	if es["headline"] != "Hola" {
		t.Fatalf("es.headline = %v, want Hola", es["headline"])
	}
	if es["description"] != "" {
		t.Fatalf("es.description = %v, want default substitution", es["description"])
	}

	fr := translations["fr"].(map[string]any)
	if fr["headline"] != "" {
		t.Fatalf("fr.headline = %v, want defaults for broken record", fr["headline"])
	}
}

func TestMergeUpdatedAtNeverDefaulted(t *testing.T) {
	def := testDefinition(t, catalog.SectionHero)

	merged := Merge(def, map[string]any{})
	if _, ok := merged["updatedAt"]; ok {
		t.Fatal("updatedAt must stay unset on a freshly defaulted instance")
	}

	merged = Merge(def, map[string]any{"updatedAt": "2026-08-01T10:00:00Z"})
	if merged["updatedAt"] != "2026-08-01T10:00:00Z" {
		t.Fatalf("updatedAt = %v, want persisted stamp", merged["updatedAt"])
	}

	merged = Merge(def, map[string]any{"updatedAt": 123456})
	if _, ok := merged["updatedAt"]; ok {
		t.Fatal("wrong-typed updatedAt must be dropped")
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	inputs := []map[string]any{
		nil,
		{},
		{"headline": 42, "tagline": "t", "junk": true},
		{"entries": []any{"x", map[string]any{"degree": "PhD"}}},
		{"translations": map[string]any{"es": map[string]any{"headline": "Hola"}}},
	}
	for _, key := range []string{catalog.SectionHero, catalog.SectionEducation, catalog.SectionSocial} {
		def := testDefinition(t, key)
		for i, input := range inputs {
			once := Merge(def, input)
			twice := Merge(def, once)
			if !reflect.DeepEqual(once, twice) {
				t.Fatalf("%s input %d: merge not idempotent\nonce:  %#v\ntwice: %#v", key, i, once, twice)
			}
		}
	}
}

func TestMergeCompletenessForArbitraryGarbage(t *testing.T) {
	garbage := map[string]any{
		"headline":    []any{"not", "a", "string"},
		"tagline":     map[string]any{},
		"description": true,
		"primaryCta":  "nope",
		"background":  []any{1, 2},
		"extra":       "dropped",
	}
	def := testDefinition(t, catalog.SectionHero)
	merged := Merge(def, garbage)

	if !reflect.DeepEqual(stripUpdatedAt(merged), def.DefaultInstance()) {
		t.Fatalf("garbage input should normalize to defaults, got %#v", merged)
	}
}

func stripUpdatedAt(instance map[string]any) map[string]any {
	out := catalog.CloneMap(instance)
	delete(out, "updatedAt")
	return out
}
