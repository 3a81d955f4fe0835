package translate

import (
	"context"

	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/pkg/interfaces"
)

// StaticProvider is a TranslationProvider backed by canned responses. It is
// used for wiring environments without a configured capability and by tests
// that need deterministic translations.
type StaticProvider struct {
	// Responses is keyed by locale; each value mirrors the request payload.
	Responses map[string]any
	// Err, when set, is returned by every call.
	Err error
}

var _ interfaces.TranslationProvider = (*StaticProvider)(nil)

// Translate returns the canned responses filtered to the requested locales.
func (p *StaticProvider) Translate(_ context.Context, _ map[string]any, targetLocales []string) (map[string]any, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	out := make(map[string]any, len(targetLocales))
	for _, locale := range targetLocales {
		if value, ok := p.Responses[locale]; ok {
			out[locale] = catalog.CloneValue(value)
		}
	}
	return out, nil
}
