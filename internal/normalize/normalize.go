// Package normalize reconciles partial or corrupted persisted section data
// against a definition's canonical default tree. The merge is
// shape-validating: a persisted value survives only when its JSON type
// class matches the default's, otherwise the default is substituted. The
// result is always structurally complete, whatever the input looks like.
package normalize

import (
	"github.com/goliatone/go-sections/internal/catalog"
)

// Merge produces a complete section instance from untrusted partial data.
// It is total: nil maps, wrong-typed fields, null values, and unknown keys
// all degrade to the definition's defaults instead of failing. Unknown keys
// are dropped so the output shape is exactly the default's shape plus the
// translations map and an optional updatedAt stamp.
func Merge(def catalog.Definition, partial map[string]any) map[string]any {
	out := make(map[string]any, len(def.Default)+2)
	for field, dv := range def.Default {
		var pv any
		if partial != nil {
			pv = partial[field]
		}
		out[field] = mergeValue(dv, pv, def.ItemShape(field))
	}

	var rawTranslations map[string]any
	if partial != nil {
		rawTranslations, _ = partial["translations"].(map[string]any)
	}
	recordDefaults := def.TranslationDefault()
	translations := make(map[string]any, len(def.Locales))
	for _, locale := range def.Locales {
		var raw any
		if rawTranslations != nil {
			raw = rawTranslations[locale]
		}
		translations[locale] = MergeRecord(recordDefaults, raw, def.ItemShapes)
	}
	out["translations"] = translations

	// updatedAt has no default: it stays unset until the save path stamps it.
	if partial != nil {
		if stamp, ok := partial["updatedAt"].(string); ok && stamp != "" {
			out["updatedAt"] = stamp
		}
	}
	return out
}

// MergeRecord merges one translation record against its safe-empty defaults
// using the same per-field substitution rule as the top-level merge. A
// missing or non-object record yields the defaults wholesale.
func MergeRecord(defaults map[string]any, raw any, shapes map[string]map[string]any) map[string]any {
	record, _ := raw.(map[string]any)
	out := make(map[string]any, len(defaults))
	for field, dv := range defaults {
		var pv any
		if record != nil {
			pv = record[field]
		}
		var shape map[string]any
		if shapes != nil {
			shape = shapes[field]
		}
		out[field] = mergeValue(dv, pv, shape)
	}
	return out
}

// RepairItem merges a single list element against the declared item shape.
// Non-object elements collapse to the shape's defaults so a corrupted entry
// never shortens or poisons the list.
func RepairItem(shape map[string]any, item any) map[string]any {
	element, _ := item.(map[string]any)
	out := make(map[string]any, len(shape))
	for field, dv := range shape {
		var pv any
		if element != nil {
			pv = element[field]
		}
		out[field] = mergeValue(dv, pv, nil)
	}
	return out
}

// mergeValue applies the type-class substitution rule for one field. Item
// shapes apply one level deep: nested lists inside items or config objects
// are treated as string lists, matching how the content model uses them.
func mergeValue(dv, pv any, itemShape map[string]any) any {
	if pv == nil {
		return catalog.CloneValue(dv)
	}

	switch typedDefault := dv.(type) {
	case map[string]any:
		nested, ok := pv.(map[string]any)
		if !ok {
			return catalog.CloneMap(typedDefault)
		}
		out := make(map[string]any, len(typedDefault))
		for key, nestedDefault := range typedDefault {
			out[key] = mergeValue(nestedDefault, nested[key], nil)
		}
		return out
	case []any:
		list, ok := pv.([]any)
		if !ok {
			// Never coerce non-list data into a list.
			return []any{}
		}
		out := make([]any, 0, len(list))
		for _, item := range list {
			out = append(out, repairListElement(typedDefault, item, itemShape))
		}
		return out
	default:
		if catalog.SameTypeClass(dv, pv) {
			return pv
		}
		return catalog.CloneValue(dv)
	}
}

func repairListElement(defaultList []any, item any, itemShape map[string]any) any {
	if itemShape != nil {
		return RepairItem(itemShape, item)
	}
	if len(defaultList) > 0 {
		prototype := defaultList[0]
		if catalog.SameTypeClass(prototype, item) {
			return catalog.CloneValue(item)
		}
		return catalog.ZeroValue(prototype)
	}
	// Untyped list: elements are strings by convention.
	if s, ok := item.(string); ok {
		return s
	}
	return ""
}
