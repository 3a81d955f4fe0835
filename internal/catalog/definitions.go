package catalog

// Built-in section types. Every field carries a safe-empty default so a
// freshly created section renders without nil checks; list defaults stay
// empty and rely on the declared item shapes for element normalization.

const (
	SectionHero       = "hero"
	SectionAbout      = "about"
	SectionContact    = "contact"
	SectionEducation  = "education"
	SectionExperience = "experience"
	SectionSocial     = "social"
)

func builtinDefinitions(locales []string) []Definition {
	shared := append([]string(nil), locales...)

	return []Definition{
		{
			Key:     SectionHero,
			Locales: shared,
			Default: map[string]any{
				"headline":    "",
				"tagline":     "",
				"description": "",
				"primaryCta": map[string]any{
					"label": "",
					"url":   "",
				},
				"background": map[string]any{
					"style": "gradient",
					"color": "",
					"image": "",
				},
			},
			Translatable: []string{"headline", "tagline", "description"},
		},
		{
			Key:     SectionAbout,
			Locales: shared,
			Default: map[string]any{
				"headline":    "",
				"summary":     "",
				"biography":   "",
				"portraitUrl": "",
				"background": map[string]any{
					"style": "plain",
					"color": "",
					"image": "",
				},
			},
			Translatable: []string{"headline", "summary", "biography"},
		},
		{
			Key:     SectionContact,
			Locales: shared,
			Default: map[string]any{
				"headline":    "",
				"description": "",
				"email":       "",
				"phone":       "",
				"location":    "",
				"formTitle":   "",
				"background": map[string]any{
					"style": "plain",
					"color": "",
					"image": "",
				},
			},
			Translatable: []string{"headline", "description", "location", "formTitle"},
		},
		{
			Key:     SectionEducation,
			Locales: shared,
			Default: map[string]any{
				"headline": "",
				"entries":  []any{},
			},
			Translatable: []string{"headline", "entries"},
			ItemShapes: map[string]map[string]any{
				"entries": {
					"institution": "",
					"degree":      "",
					"field":       "",
					"period":      "",
					"description": "",
				},
			},
		},
		{
			Key:     SectionExperience,
			Locales: shared,
			Default: map[string]any{
				"headline": "",
				"entries":  []any{},
			},
			Translatable: []string{"headline", "entries"},
			ItemShapes: map[string]map[string]any{
				"entries": {
					"company":    "",
					"role":       "",
					"period":     "",
					"location":   "",
					"summary":    "",
					"highlights": []any{},
				},
			},
		},
		{
			Key:     SectionSocial,
			Locales: shared,
			Default: map[string]any{
				"headline": "",
				"links":    []any{},
			},
			Translatable: []string{"headline", "links"},
			ItemShapes: map[string]map[string]any{
				"links": {
					"platform": "",
					"url":      "",
					"label":    "",
				},
			},
		},
	}
}
