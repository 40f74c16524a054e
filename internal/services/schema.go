package services

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"emretopal/cv-analiz/internal/models"
)

// resultSchema is the loose contract expected from the analysis model.
// It checks structure, not content: every field stays optional except the
// personal block, and the skills field keeps its three accepted shapes.
const resultSchema = `{
  "type": "object",
  "required": ["kisisel_bilgiler"],
  "properties": {
    "kisisel_bilgiler": {"type": "object"},
    "ozet": {"type": "string"},
    "beceriler": {"type": ["array", "object", "string"]},
    "is_deneyimi": {"type": "array"},
    "egitim": {"type": "array"},
    "diller": {"type": ["array", "string"]},
    "sertifikalar": {"type": ["array", "string"]},
    "profil_degerlendirmesi": {"type": "object"}
  }
}`

// validateResultPayload checks a decoded model reply against the
// expected shape. A validation failure is not fatal: the caller attaches
// the message as hidden diagnostic metadata and keeps the partial data.
func validateResultPayload(raw models.RawResult) error {
	schemaLoader := gojsonschema.NewStringLoader(resultSchema)
	docLoader := gojsonschema.NewGoLoader(map[string]interface{}(raw))

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("model yanıtı beklenen yapıda değil: %s", msgs)
}
