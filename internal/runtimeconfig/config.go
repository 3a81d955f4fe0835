// Package runtimeconfig aggregates module configuration with sensible
// defaults, overlay merging, and consistency checks.
package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dario.cat/mergo"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	ErrDefaultLocaleMissing = errors.New("sections config: default locale must be the first configured locale")
	ErrLocalesRequired      = errors.New("sections config: at least two locales are required")
	ErrStorageDriverUnknown = errors.New("sections config: storage driver is invalid")
	ErrStorageDSNRequired   = errors.New("sections config: storage dsn is required for the bun driver")
	ErrTranslationBaseURL   = errors.New("sections config: translation base url is required for the llm provider")
	ErrLoggingLevelInvalid  = errors.New("sections config: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("sections config: logging format is invalid")
)

// Config aggregates locale, storage, translation, and logging settings.
// Fields use simple types so host applications can bind them from any
// configuration source.
type Config struct {
	DefaultLocale string
	Locales       []string
	Scope         string
	Storage       StorageConfig
	Translation   TranslationConfig
	Logging       LoggingConfig
	Features      Features
}

// StorageConfig selects the document store backend.
type StorageConfig struct {
	Driver string
	DSN    string
}

// TranslationConfig wires the machine-translation provider.
type TranslationConfig struct {
	Provider     string
	BaseURL      string
	APIKey       string
	Model        string
	SourceLocale string
	Timeout      time.Duration
}

// LoggingConfig captures options for the runtime logger.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles optional behaviour.
type Features struct {
	ValidateOnSave bool
}

// DefaultConfig returns opinionated defaults: English canonical locale
// with three derived locales, in-memory storage, and no translation
// provider.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "en",
		Locales:       []string{"en", "es", "fr", "de"},
		Storage: StorageConfig{
			Driver: "memory",
		},
		Translation: TranslationConfig{
			Provider: "none",
			Timeout:  30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Features: Features{},
	}
}

// Overlay merges non-zero fields from overrides on top of cfg.
func Overlay(cfg Config, overrides Config) (Config, error) {
	merged := cfg
	if err := mergo.Merge(&merged, overrides, mergo.WithOverride); err != nil {
		return Config{}, fmt.Errorf("sections config: overlay failed: %w", err)
	}
	return merged, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if len(cfg.Locales) < 2 {
		return ErrLocalesRequired
	}
	if cfg.DefaultLocale != cfg.Locales[0] {
		return ErrDefaultLocaleMissing
	}
	switch normalize(cfg.Storage.Driver) {
	case "", "memory":
	case "bun", "sqlite":
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	if err := cfg.Translation.Validate(); err != nil {
		return err
	}
	if level := normalize(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, cfg.Logging.Level)
	}
	if format := normalize(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, cfg.Logging.Format)
	}
	return nil
}

// Validate checks provider-specific translation settings.
func (cfg TranslationConfig) Validate() error {
	if err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Provider, validation.In("", "none", "static", "llm")),
		validation.Field(&cfg.Timeout, validation.Min(time.Duration(0))),
	); err != nil {
		return fmt.Errorf("sections config: %w", err)
	}
	if normalize(cfg.Provider) == "llm" && strings.TrimSpace(cfg.BaseURL) == "" {
		return ErrTranslationBaseURL
	}
	return nil
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch format {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
