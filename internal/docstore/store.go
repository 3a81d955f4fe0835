// Package docstore persists section documents as locale-complete JSON
// payloads keyed by an opaque document key.
package docstore

import (
	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/pkg/interfaces"
)

// Key builds the storage key for a section instance.
func Key(sectionKey, scope string) string {
	if scope == "" {
		return "sections/" + sectionKey
	}
	return "sections/" + scope + "/" + sectionKey
}

// mergeFields overlays value on top of existing, recursing into nested
// maps so sibling fields survive a partial write. Non-map values replace
// the stored one wholesale.
func mergeFields(existing, value map[string]any) map[string]any {
	merged := catalog.CloneMap(existing)
	for key, incoming := range value {
		current, ok := merged[key]
		if ok {
			currentMap, currentIsMap := current.(map[string]any)
			incomingMap, incomingIsMap := incoming.(map[string]any)
			if currentIsMap && incomingIsMap {
				merged[key] = mergeFields(currentMap, incomingMap)
				continue
			}
		}
		merged[key] = catalog.CloneValue(incoming)
	}
	return merged
}

func resolvePayload(existing interfaces.Document, value map[string]any, opts interfaces.SetOptions) map[string]any {
	if opts.MergeExistingFields && existing.Exists {
		return mergeFields(existing.Data, value)
	}
	return catalog.CloneMap(value)
}
