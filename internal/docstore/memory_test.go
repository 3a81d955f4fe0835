package docstore

import (
	"context"
	"testing"

	"github.com/goliatone/go-sections/pkg/interfaces"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	doc, err := store.Get(context.Background(), Key("hero", ""))
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if doc.Exists {
		t.Fatal("expected missing document")
	}
}

func TestMemoryStore_SetReplacesByDefault(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := Key("hero", "")

	first := map[string]any{"headline": "Hello", "tagline": "Builder"}
	if err := store.Set(ctx, key, first, interfaces.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := store.Set(ctx, key, map[string]any{"headline": "Hola"}, interfaces.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	doc, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if doc.Data["headline"] != "Hola" {
		t.Fatalf("headline = %v", doc.Data["headline"])
	}
	if _, ok := doc.Data["tagline"]; ok {
		t.Fatal("replace write should drop unmentioned fields")
	}
}

func TestMemoryStore_MergeExistingFields(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := Key("hero", "")

	seed := map[string]any{
		"headline": "Hello",
		"background": map[string]any{
			"style": "gradient",
			"color": "#112233",
		},
	}
	if err := store.Set(ctx, key, seed, interfaces.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	patch := map[string]any{
		"background": map[string]any{"color": "#ff0000"},
	}
	if err := store.Set(ctx, key, patch, interfaces.SetOptions{MergeExistingFields: true}); err != nil {
		t.Fatalf("Set() merge error = %v", err)
	}

	doc, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if doc.Data["headline"] != "Hello" {
		t.Fatalf("headline = %v, want untouched sibling", doc.Data["headline"])
	}
	background, ok := doc.Data["background"].(map[string]any)
	if !ok {
		t.Fatalf("background = %#v", doc.Data["background"])
	}
	if background["color"] != "#ff0000" || background["style"] != "gradient" {
		t.Fatalf("background = %#v", background)
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := Key("hero", "site")

	if err := store.Set(ctx, key, map[string]any{"headline": "Hello"}, interfaces.SetOptions{}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	doc, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	doc.Data["headline"] = "mutated"

	again, err := store.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if again.Data["headline"] != "Hello" {
		t.Fatal("caller mutation leaked into the store")
	}
}

func TestKey(t *testing.T) {
	if got := Key("hero", ""); got != "sections/hero" {
		t.Fatalf("Key() = %q", got)
	}
	if got := Key("hero", "site-a"); got != "sections/site-a/hero" {
		t.Fatalf("Key() = %q", got)
	}
}
