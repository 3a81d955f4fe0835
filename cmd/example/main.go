package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	sections "github.com/goliatone/go-sections"
	"github.com/goliatone/go-sections/internal/di"
	"github.com/goliatone/go-sections/internal/translate"
)

func main() {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg := sections.DefaultConfig()
	cfg.Locales = []string{"en", "es", "fr"}
	cfg.Logging.Level = envOr("SECTIONS_LOG_LEVEL", "debug")
	cfg.Logging.Format = envOr("SECTIONS_LOG_FORMAT", "pretty")
	cfg.Features.ValidateOnSave = true

	if driver := os.Getenv("SECTIONS_STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
		cfg.Storage.DSN = os.Getenv("SECTIONS_STORAGE_DSN")
	}

	var opts []di.Option
	switch strings.ToLower(envOr("SECTIONS_TRANSLATION_PROVIDER", "static")) {
	case "llm":
		cfg.Translation.Provider = "llm"
		cfg.Translation.BaseURL = os.Getenv("SECTIONS_LLM_BASE_URL")
		cfg.Translation.APIKey = os.Getenv("SECTIONS_LLM_API_KEY")
		cfg.Translation.Model = envOr("SECTIONS_LLM_MODEL", "gpt-4o-mini")
		cfg.Translation.SourceLocale = cfg.DefaultLocale
		cfg.Translation.Timeout = 45 * time.Second
	default:
		opts = append(opts, di.WithTranslationProvider(&translate.StaticProvider{
			Responses: map[string]any{
				"es": map[string]any{
					"headline": "Hola, soy Morgan",
					"tagline":  "Construyo cosas para la web",
				},
				"fr": map[string]any{
					"headline": "Bonjour, je suis Morgan",
					"tagline":  "Je construis des choses pour le web",
				},
			},
		}))
	}

	module, err := sections.New(cfg, opts...)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer module.Close()

	svc := module.Sections()

	fmt.Println("registered sections:", strings.Join(svc.Keys(), ", "))

	if _, err := svc.Save(ctx, sections.SectionHero, map[string]any{
		"headline": "Hi, I'm Morgan",
		"tagline":  "I build things for the web",
		"primaryCta": map[string]any{
			"label": "Get in touch",
			"url":   "/contact",
		},
	}); err != nil {
		log.Fatalf("save hero: %v", err)
	}

	records, err := svc.AutoTranslate(ctx, sections.SectionHero, map[string]any{
		"headline": "Hi, I'm Morgan",
		"tagline":  "I build things for the web",
	})
	if err != nil {
		log.Fatalf("translate hero: %v", err)
	}

	translations := map[string]any{}
	for locale, record := range records {
		translations[locale] = record
	}
	if _, err := svc.Save(ctx, sections.SectionHero, map[string]any{
		"translations": translations,
	}); err != nil {
		log.Fatalf("save translations: %v", err)
	}

	doc, err := svc.Load(ctx, sections.SectionHero)
	if err != nil {
		log.Fatalf("load hero: %v", err)
	}
	printJSON("hero", doc)

	// A document that was never saved still loads locale-complete.
	about, err := svc.Load(ctx, sections.SectionAbout)
	if err != nil {
		log.Fatalf("load about: %v", err)
	}
	printJSON("about (defaults)", about)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printJSON(label string, value any) {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		log.Fatalf("encode %s: %v", label, err)
	}
	fmt.Printf("\n%s:\n%s\n", label, encoded)
}
