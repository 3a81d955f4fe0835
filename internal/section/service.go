// Package section exposes the content-section use-cases: loading
// locale-complete instances, persisting partial edits, and requesting
// machine translations for canonical copy.
package section

import (
	"context"
	"errors"
	"time"

	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/internal/docstore"
	"github.com/goliatone/go-sections/internal/logging"
	"github.com/goliatone/go-sections/internal/normalize"
	"github.com/goliatone/go-sections/internal/validation"
	"github.com/goliatone/go-sections/pkg/interfaces"
)

var (
	ErrStoreRequired            = errors.New("section: document store is required")
	ErrRegistryRequired         = errors.New("section: definition registry is required")
	ErrTranslatorRequired       = errors.New("section: no translator configured")
	ErrValueRequired            = errors.New("section: value is required")
	ErrTranslationInputRequired = errors.New("section: canonical fields are required")
)

// Translator produces locale-keyed translation records for a section's
// canonical copy.
type Translator interface {
	AutoTranslate(ctx context.Context, def catalog.Definition, canonicalFields map[string]any) (map[string]map[string]any, error)
}

// Service exposes section management use-cases.
type Service interface {
	Load(ctx context.Context, key string) (map[string]any, error)
	Save(ctx context.Context, key string, value map[string]any) (map[string]any, error)
	AutoTranslate(ctx context.Context, key string, canonicalFields map[string]any) (map[string]map[string]any, error)
	Definition(key string) (catalog.Definition, error)
	Keys() []string
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp saved documents.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithTranslator wires the translation orchestrator used by AutoTranslate.
func WithTranslator(translator Translator) ServiceOption {
	return func(s *service) {
		s.translator = translator
	}
}

// WithLogger overrides the service logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScope namespaces document keys, letting one store back several sites.
func WithScope(scope string) ServiceOption {
	return func(s *service) {
		s.scope = scope
	}
}

// WithSaveValidation toggles warn-only schema validation on the save path.
func WithSaveValidation(enabled bool) ServiceOption {
	return func(s *service) {
		s.validateOnSave = enabled
	}
}

type service struct {
	registry       *catalog.Registry
	store          interfaces.DocumentStore
	translator     Translator
	logger         interfaces.Logger
	scope          string
	validateOnSave bool
	now            func() time.Time
}

// NewService constructs a section service with the required dependencies.
func NewService(registry *catalog.Registry, store interfaces.DocumentStore, opts ...ServiceOption) (Service, error) {
	if registry == nil {
		return nil, ErrRegistryRequired
	}
	if store == nil {
		return nil, ErrStoreRequired
	}
	s := &service{
		registry: registry,
		store:    store,
		logger:   logging.NoOp(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load returns the locale-complete instance for key. Missing documents
// yield the definition default; stored documents are repaired against
// the definition shape so callers never see partial or drifted data.
func (s *service) Load(ctx context.Context, key string) (map[string]any, error) {
	def, err := s.registry.Get(key)
	if err != nil {
		return nil, err
	}
	doc, err := s.store.Get(ctx, s.docKey(key))
	if err != nil {
		return nil, err
	}
	if !doc.Exists {
		s.logger.Debug("section document missing, serving defaults", "section", key)
		return def.DefaultInstance(), nil
	}
	return normalize.Merge(def, doc.Data), nil
}

// Save persists value under key with a fresh updatedAt stamp. The write
// merges over the existing document, so partial payloads leave sibling
// fields untouched. The saved payload is returned as written.
func (s *service) Save(ctx context.Context, key string, value map[string]any) (map[string]any, error) {
	if value == nil {
		return nil, ErrValueRequired
	}
	def, err := s.registry.Get(key)
	if err != nil {
		return nil, err
	}

	stamped := catalog.CloneMap(value)
	stamped["updatedAt"] = s.now().UTC().Format(time.RFC3339)

	if s.validateOnSave {
		if err := validation.ValidatePayload(catalog.DeriveSchema(def), stamped); err != nil {
			s.logger.Warn("section payload failed schema validation",
				"section", key,
				"issues", validation.Issues(err),
			)
		}
	}

	if err := s.store.Set(ctx, s.docKey(key), stamped, interfaces.SetOptions{MergeExistingFields: true}); err != nil {
		return nil, err
	}
	s.logger.Info("section saved", "section", key)
	return stamped, nil
}

// AutoTranslate requests translations of canonicalFields into the
// definition's target locales. Nothing is persisted; callers decide
// whether to save the returned records.
func (s *service) AutoTranslate(ctx context.Context, key string, canonicalFields map[string]any) (map[string]map[string]any, error) {
	if s.translator == nil {
		return nil, ErrTranslatorRequired
	}
	if len(canonicalFields) == 0 {
		return nil, ErrTranslationInputRequired
	}
	def, err := s.registry.Get(key)
	if err != nil {
		return nil, err
	}
	return s.translator.AutoTranslate(ctx, def, canonicalFields)
}

// Definition exposes the registered definition for key.
func (s *service) Definition(key string) (catalog.Definition, error) {
	return s.registry.Get(key)
}

// Keys lists the registered section keys in sorted order.
func (s *service) Keys() []string {
	return s.registry.Keys()
}

func (s *service) docKey(key string) string {
	return docstore.Key(key, s.scope)
}
