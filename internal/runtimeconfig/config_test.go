package runtimeconfig

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestDefaultConfigShipsFourLocales(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Locales) != 4 {
		t.Fatalf("Locales = %v, want canonical plus three derived", cfg.Locales)
	}
	if cfg.Locales[0] != cfg.DefaultLocale {
		t.Fatalf("Locales[0] = %q, DefaultLocale = %q", cfg.Locales[0], cfg.DefaultLocale)
	}
}

func TestValidateAcceptsEmptyDriverAsMemory(t *testing.T) {
	cfg := Config{
		DefaultLocale: "en",
		Locales:       []string{"en", "es"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestOverlayKeepsDefaultsForZeroFields(t *testing.T) {
	cfg, err := Overlay(DefaultConfig(), Config{
		Scope: "site-a",
		Translation: TranslationConfig{
			Provider: "llm",
			BaseURL:  "https://llm.example.com/v1",
			Model:    "translator-small",
		},
	})
	if err != nil {
		t.Fatalf("Overlay() error = %v", err)
	}

	if cfg.DefaultLocale != "en" {
		t.Fatalf("DefaultLocale = %q", cfg.DefaultLocale)
	}
	if cfg.Scope != "site-a" {
		t.Fatalf("Scope = %q", cfg.Scope)
	}
	if cfg.Translation.Provider != "llm" {
		t.Fatalf("Translation.Provider = %q", cfg.Translation.Provider)
	}
	if cfg.Translation.Timeout != 30*time.Second {
		t.Fatalf("Translation.Timeout = %v, want default retained", cfg.Translation.Timeout)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("Logging.Level = %q", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateRequiresTwoLocales(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Locales = []string{"en"}

	if err := cfg.Validate(); !errors.Is(err, ErrLocalesRequired) {
		t.Fatalf("expected ErrLocalesRequired, got %v", err)
	}
}

func TestValidateDefaultLocaleLeadsList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultLocale = "es"

	if err := cfg.Validate(); !errors.Is(err, ErrDefaultLocaleMissing) {
		t.Fatalf("expected ErrDefaultLocaleMissing, got %v", err)
	}
}

func TestValidateStorageDriver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Driver = "postgres"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Storage.Driver = "bun"
	if err := cfg.Validate(); !errors.Is(err, ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}

	cfg.Storage.DSN = "file:sections.db?_fk=1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateTranslationProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Translation.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected unknown provider to be rejected")
	}

	cfg = DefaultConfig()
	cfg.Translation.Provider = "llm"
	if err := cfg.Validate(); !errors.Is(err, ErrTranslationBaseURL) {
		t.Fatalf("expected ErrTranslationBaseURL, got %v", err)
	}

	cfg.Translation.BaseURL = "https://llm.example.com/v1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateLogging(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "chatty"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
