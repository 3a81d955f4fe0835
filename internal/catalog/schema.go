package catalog

// DeriveSchema converts a definition's default tree into a JSON schema for
// the complete section instance, including the per-locale translations map
// and the optional updatedAt stamp. Normalized instances are expected to
// validate cleanly; the schema exists for save-path diagnostics, not as a
// gate on the read path.
func DeriveSchema(def Definition) map[string]any {
	properties := map[string]any{}
	for field, value := range def.Default {
		properties[field] = schemaForValue(value, def.ItemShape(field))
	}

	recordSchema := map[string]any{}
	for _, field := range def.Translatable {
		recordSchema[field] = schemaForValue(def.Default[field], def.ItemShape(field))
	}
	localeProperties := map[string]any{}
	for _, locale := range def.Locales {
		localeProperties[locale] = map[string]any{
			"type":                 "object",
			"properties":           CloneMap(recordSchema),
			"additionalProperties": false,
		}
	}
	properties["translations"] = map[string]any{
		"type":                 "object",
		"properties":           localeProperties,
		"additionalProperties": false,
	}
	properties["updatedAt"] = map[string]any{"type": "string"}

	return map[string]any{
		"type":                 "object",
		"properties":           properties,
		"additionalProperties": false,
	}
}

func schemaForValue(value any, itemShape map[string]any) map[string]any {
	switch value.(type) {
	case string:
		return map[string]any{"type": "string"}
	case bool:
		return map[string]any{"type": "boolean"}
	case map[string]any:
		nested := map[string]any{}
		for key, nestedValue := range value.(map[string]any) {
			nested[key] = schemaForValue(nestedValue, nil)
		}
		return map[string]any{
			"type":                 "object",
			"properties":           nested,
			"additionalProperties": false,
		}
	case []any:
		items := map[string]any{}
		if itemShape != nil {
			itemProperties := map[string]any{}
			for key, itemValue := range itemShape {
				itemProperties[key] = schemaForValue(itemValue, nil)
			}
			items = map[string]any{
				"type":                 "object",
				"properties":           itemProperties,
				"additionalProperties": false,
			}
		}
		schema := map[string]any{"type": "array"}
		if len(items) > 0 {
			schema["items"] = items
		}
		return schema
	default:
		if isNumber(value) {
			return map[string]any{"type": "number"}
		}
		return map[string]any{}
	}
}
