package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrDefinitionNotFound indicates the requested section type is not registered.
	ErrDefinitionNotFound = errors.New("catalog: section definition not found")
	// ErrDefinitionExists indicates a duplicate registration for a section key.
	ErrDefinitionExists = errors.New("catalog: section definition already registered")
	// ErrLocalesRequired indicates the registry was built without a usable locale set.
	ErrLocalesRequired = errors.New("catalog: registry requires at least two locales")
)

// Definition describes one section type: its canonical default value tree,
// the fields machine translation applies to, and the per-item shape of
// list-typed fields. The default tree doubles as the shape contract every
// normalized instance must satisfy.
type Definition struct {
	Key          string
	Locales      []string
	Default      map[string]any
	Translatable []string
	ItemShapes   map[string]map[string]any
}

// Canonical returns the authored locale. The first locale of the set is
// canonical; the remainder are machine translated.
func (d Definition) Canonical() string {
	if len(d.Locales) == 0 {
		return ""
	}
	return d.Locales[0]
}

// TargetLocales returns the machine-translated locales in declaration order.
func (d Definition) TargetLocales() []string {
	if len(d.Locales) < 2 {
		return nil
	}
	return append([]string(nil), d.Locales[1:]...)
}

// TranslationDefault builds the safe-empty translation record for this
// section: every translatable field present with an empty value of its
// declared type class.
func (d Definition) TranslationDefault() map[string]any {
	record := make(map[string]any, len(d.Translatable))
	for _, field := range d.Translatable {
		record[field] = ZeroValue(d.Default[field])
	}
	return record
}

// DefaultInstance clones the default tree and attaches a complete
// translations map so a never-persisted section is already structurally
// complete. The canonical locale's record is an empty mirror as well; it is
// filled in by editors, not by defaults.
func (d Definition) DefaultInstance() map[string]any {
	instance := CloneMap(d.Default)
	translations := make(map[string]any, len(d.Locales))
	for _, locale := range d.Locales {
		translations[locale] = d.TranslationDefault()
	}
	instance["translations"] = translations
	return instance
}

// ItemShape returns the declared item shape for a list field, or nil when
// the field holds scalar items.
func (d Definition) ItemShape(field string) map[string]any {
	if len(d.ItemShapes) == 0 {
		return nil
	}
	return d.ItemShapes[field]
}

// Validate applies the structural rules every registered definition must meet.
func (d Definition) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Key, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("sections.catalog.key_required", "section key is required")
			}
			return nil
		})),
		validation.Field(&d.Locales, validation.By(validateLocales)),
		validation.Field(&d.Default, validation.Required.Error("default value tree is required")),
		validation.Field(&d.Translatable, validation.By(d.validateTranslatable)),
		validation.Field(&d.ItemShapes, validation.By(d.validateItemShapes)),
	)
}

func validateLocales(value any) error {
	locales, _ := value.([]string)
	if len(locales) < 2 {
		return validation.NewError("sections.catalog.locales_invalid", "definition requires a canonical locale and at least one target locale")
	}
	seen := map[string]struct{}{}
	for _, locale := range locales {
		code := strings.ToLower(strings.TrimSpace(locale))
		if code == "" {
			return validation.NewError("sections.catalog.locale_empty", "locale codes cannot be blank")
		}
		if _, ok := seen[code]; ok {
			return validation.NewError("sections.catalog.locale_duplicate", fmt.Sprintf("duplicate locale %q", code))
		}
		seen[code] = struct{}{}
	}
	return nil
}

func (d Definition) validateTranslatable(any) error {
	for _, field := range d.Translatable {
		if _, ok := d.Default[field]; !ok {
			return validation.NewError("sections.catalog.translatable_unknown", fmt.Sprintf("translatable field %q is not part of the default tree", field))
		}
	}
	return nil
}

func (d Definition) validateItemShapes(any) error {
	for field, shape := range d.ItemShapes {
		dv, ok := d.Default[field]
		if !ok {
			return validation.NewError("sections.catalog.item_shape_unknown", fmt.Sprintf("item shape declared for unknown field %q", field))
		}
		if _, ok := dv.([]any); !ok {
			return validation.NewError("sections.catalog.item_shape_not_list", fmt.Sprintf("item shape declared for non-list field %q", field))
		}
		if len(shape) == 0 {
			return validation.NewError("sections.catalog.item_shape_empty", fmt.Sprintf("item shape for field %q cannot be empty", field))
		}
	}
	return nil
}

// Registry holds the known section definitions for a locale set.
type Registry struct {
	mu      sync.RWMutex
	locales []string
	defs    map[string]Definition
}

// NewRegistry builds a registry seeded with the built-in section types,
// all sharing the provided locale set (canonical first).
func NewRegistry(locales []string) (*Registry, error) {
	if len(locales) < 2 {
		return nil, ErrLocalesRequired
	}
	r := &Registry{
		locales: append([]string(nil), locales...),
		defs:    map[string]Definition{},
	}
	for _, def := range builtinDefinitions(r.locales) {
		if err := r.Register(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register validates and stores a definition. Host applications can add
// their own section types next to the built-ins.
func (r *Registry) Register(def Definition) error {
	if len(def.Locales) == 0 {
		def.Locales = append([]string(nil), r.locales...)
	}
	if err := def.Validate(); err != nil {
		return fmt.Errorf("catalog: invalid definition %q: %w", def.Key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.defs[def.Key]; ok {
		return fmt.Errorf("%w: %s", ErrDefinitionExists, def.Key)
	}
	r.defs[def.Key] = def
	return nil
}

// Get resolves a definition by section key.
func (r *Registry) Get(key string) (Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[strings.TrimSpace(key)]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %s", ErrDefinitionNotFound, key)
	}
	return def, nil
}

// Keys lists registered section keys in stable order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.defs))
	for key := range r.defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Locales returns the registry's locale set, canonical first.
func (r *Registry) Locales() []string {
	return append([]string(nil), r.locales...)
}
