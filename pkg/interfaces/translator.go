package interfaces

import "context"

// TranslationProvider converts canonical-language field values into the
// requested target locales. The expected response is an object keyed by
// locale code, each value mirroring the payload's field shape with
// translated strings. Responses are treated as untrusted by callers: a
// provider error indicates the capability was unreachable or returned
// unparseable output, while missing or wrong-typed fields inside an
// otherwise successful response are tolerated downstream.
type TranslationProvider interface {
	Translate(ctx context.Context, payload map[string]any, targetLocales []string) (map[string]any, error)
}
