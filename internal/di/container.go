// Package di wires module dependencies from runtime configuration,
// with option overrides for hosts that bring their own adapters.
package di

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-sections/internal/catalog"
	"github.com/goliatone/go-sections/internal/docstore"
	"github.com/goliatone/go-sections/internal/logging"
	"github.com/goliatone/go-sections/internal/logging/gologger"
	"github.com/goliatone/go-sections/internal/runtimeconfig"
	"github.com/goliatone/go-sections/internal/section"
	"github.com/goliatone/go-sections/internal/translate"
	"github.com/goliatone/go-sections/internal/translate/llm"
	"github.com/goliatone/go-sections/pkg/interfaces"
)

// Container wires module dependencies.
type Container struct {
	config runtimeconfig.Config

	registry       *catalog.Registry
	store          interfaces.DocumentStore
	provider       interfaces.TranslationProvider
	loggerProvider interfaces.LoggerProvider
	bunDB          *bun.DB
	clock          func() time.Time

	sectionSvc section.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithStore overrides the configured document store.
func WithStore(store interfaces.DocumentStore) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithTranslationProvider overrides the configured translation provider.
func WithTranslationProvider(provider interfaces.TranslationProvider) Option {
	return func(c *Container) {
		c.provider = provider
	}
}

// WithLoggerProvider overrides the logger provider built from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithBunDB supplies an existing database handle for the bun store.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithRegistry overrides the definition registry built from config.
func WithRegistry(registry *catalog.Registry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithClock overrides the clock used by the section service.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		c.clock = clock
	}
}

// NewContainer validates cfg and wires the section service with its
// store, translator, and logging dependencies.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.registry == nil {
		registry, err := catalog.NewRegistry(cfg.Locales)
		if err != nil {
			return nil, err
		}
		c.registry = registry
	}

	if c.store == nil {
		store, err := c.buildStore()
		if err != nil {
			return nil, err
		}
		c.store = store
	}

	if c.provider == nil {
		provider, err := buildTranslationProvider(cfg.Translation)
		if err != nil {
			return nil, err
		}
		c.provider = provider
	}

	svcOpts := []section.ServiceOption{
		section.WithLogger(logging.ServiceLogger(c.loggerProvider)),
		section.WithScope(cfg.Scope),
		section.WithSaveValidation(cfg.Features.ValidateOnSave),
	}
	if c.clock != nil {
		svcOpts = append(svcOpts, section.WithClock(c.clock))
	}
	if c.provider != nil {
		orchestrator := translate.NewOrchestrator(c.provider,
			translate.WithLogger(logging.TranslateLogger(c.loggerProvider)))
		svcOpts = append(svcOpts, section.WithTranslator(orchestrator))
	}

	svc, err := section.NewService(c.registry, c.store, svcOpts...)
	if err != nil {
		return nil, err
	}
	c.sectionSvc = svc
	return c, nil
}

func (c *Container) buildStore() (interfaces.DocumentStore, error) {
	switch strings.ToLower(strings.TrimSpace(c.config.Storage.Driver)) {
	case "", "memory":
		return docstore.NewMemoryStore(), nil
	case "bun", "sqlite":
		db := c.bunDB
		if db == nil {
			sqldb, err := sql.Open("sqlite3", c.config.Storage.DSN)
			if err != nil {
				return nil, fmt.Errorf("di: open sqlite: %w", err)
			}
			db = bun.NewDB(sqldb, sqlitedialect.New())
			c.bunDB = db
		}
		store := docstore.NewBunStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("di: migrate document store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrStorageDriverUnknown, c.config.Storage.Driver)
	}
}

func buildTranslationProvider(cfg runtimeconfig.TranslationConfig) (interfaces.TranslationProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "none":
		return nil, nil
	case "static":
		return &translate.StaticProvider{}, nil
	case "llm":
		return llm.New(llm.Config{
			BaseURL:      cfg.BaseURL,
			APIKey:       cfg.APIKey,
			Model:        cfg.Model,
			SourceLocale: cfg.SourceLocale,
			Timeout:      cfg.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("di: unknown translation provider: %s", cfg.Provider)
	}
}

// Config returns the validated configuration the container was built with.
func (c *Container) Config() runtimeconfig.Config {
	return c.config
}

// SectionService returns the wired section service.
func (c *Container) SectionService() section.Service {
	return c.sectionSvc
}

// Registry returns the definition registry.
func (c *Container) Registry() *catalog.Registry {
	return c.registry
}

// Store returns the configured document store.
func (c *Container) Store() interfaces.DocumentStore {
	return c.store
}

// LoggerProvider returns the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB returns the database handle when the bun store is in use.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// Close releases resources owned by the container.
func (c *Container) Close() error {
	if c.bunDB != nil {
		return c.bunDB.Close()
	}
	return nil
}
