// Package translate turns canonical-language section fields into a complete
// per-locale translation record. The external capability's response is
// treated as untrusted: missing locales, missing fields, and wrong-typed
// values all degrade to safe-empty values instead of leaking through or
// failing the call. An empty field deliberately signals "translation
// pending" rather than duplicating the source language.
package translate

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/internal/logging"
	"github.com/goliatone/go-sections/pkg/interfaces"
)

const capabilityUnavailableCode = "TRANSLATION_CAPABILITY_UNAVAILABLE"

// ErrProviderRequired indicates the orchestrator was constructed without a capability.
var ErrProviderRequired = errors.New("translate: translation provider is required")

// Orchestrator coordinates one capability call per AutoTranslate invocation
// and reconciles the response into structurally complete locale records.
type Orchestrator struct {
	provider interfaces.TranslationProvider
	logger   interfaces.Logger
}

// Option customises orchestrator construction.
type Option func(*Orchestrator)

// WithLogger attaches a logger; a no-op logger is used otherwise.
func WithLogger(logger interfaces.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// NewOrchestrator builds an orchestrator around the injected capability.
func NewOrchestrator(provider interfaces.TranslationProvider, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		provider: provider,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AutoTranslate translates the supplied canonical fields into every target
// locale of the definition. The canonical locale's record is a verbatim echo
// of the input, so renderers can read translations uniformly for any locale.
// The only failure mode is an unreachable or unparseable capability; partial
// or malformed response content is repaired field by field.
func (o *Orchestrator) AutoTranslate(ctx context.Context, def catalog.Definition, canonicalFields map[string]any) (map[string]map[string]any, error) {
	if o == nil || o.provider == nil {
		return nil, ErrProviderRequired
	}

	logger := logging.WithFields(o.logger, map[string]any{"section": def.Key})
	targets := def.TargetLocales()

	response, err := o.provider.Translate(ctx, catalog.CloneMap(canonicalFields), targets)
	if err != nil {
		logger.Error("translation capability call failed", "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryExternal, "translation capability unavailable").
			WithTextCode(capabilityUnavailableCode)
	}

	result := make(map[string]map[string]any, len(targets)+1)
	result[def.Canonical()] = catalog.CloneMap(canonicalFields)

	for _, locale := range targets {
		var raw any
		if response != nil {
			raw = response[locale]
		}
		record, repaired := localeRecord(def, canonicalFields, raw)
		if repaired {
			logger.Warn("translation response incomplete, substituting empty values", "locale", locale)
		}
		result[locale] = record
	}

	logger.Debug("auto translation assembled", "locales", len(result), "fields", len(canonicalFields))
	return result, nil
}

// localeRecord reconciles one locale's response content against the shape of
// the canonical payload. It reports whether any substitution was required so
// callers can surface the gap in logs without failing the call.
func localeRecord(def catalog.Definition, canonical map[string]any, raw any) (map[string]any, bool) {
	record, ok := raw.(map[string]any)
	repaired := !ok
	out := make(map[string]any, len(canonical))
	for field, reference := range canonical {
		var translated any
		if record != nil {
			translated = record[field]
		}
		value, fieldRepaired := translateValue(reference, translated, def.ItemShape(field))
		if fieldRepaired {
			repaired = true
		}
		out[field] = value
	}
	return out, repaired
}

func translateValue(reference, translated any, itemShape map[string]any) (any, bool) {
	switch typedReference := reference.(type) {
	case map[string]any:
		nested, ok := translated.(map[string]any)
		out := make(map[string]any, len(typedReference))
		repaired := !ok
		for key, nestedReference := range typedReference {
			var nestedTranslated any
			if nested != nil {
				nestedTranslated = nested[key]
			}
			value, keyRepaired := translateValue(nestedReference, nestedTranslated, nil)
			if keyRepaired {
				repaired = true
			}
			out[key] = value
		}
		return out, repaired
	case []any:
		translatedList, ok := translated.([]any)
		repaired := !ok || len(translatedList) < len(typedReference)
		out := make([]any, len(typedReference))
		for i, referenceItem := range typedReference {
			var translatedItem any
			if i < len(translatedList) {
				translatedItem = translatedList[i]
			}
			value, itemRepaired := translateElement(referenceItem, translatedItem, itemShape)
			if itemRepaired {
				repaired = true
			}
			out[i] = value
		}
		return out, repaired
	default:
		if translated != nil && catalog.SameTypeClass(reference, translated) {
			return translated, false
		}
		return catalog.ZeroValue(reference), true
	}
}

func translateElement(referenceItem, translatedItem any, itemShape map[string]any) (any, bool) {
	if itemShape == nil {
		return translateValue(referenceItem, translatedItem, nil)
	}

	referenceMap, _ := referenceItem.(map[string]any)
	translatedMap, ok := translatedItem.(map[string]any)
	repaired := !ok
	out := make(map[string]any, len(itemShape))
	for field, shapeDefault := range itemShape {
		reference := shapeDefault
		if referenceMap != nil {
			if rv, present := referenceMap[field]; present && rv != nil {
				reference = rv
			}
		}
		var translated any
		if translatedMap != nil {
			translated = translatedMap[field]
		}
		value, fieldRepaired := translateValue(reference, translated, nil)
		if fieldRepaired {
			repaired = true
		}
		out[field] = value
	}
	return out, repaired
}
