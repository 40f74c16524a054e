package normalize

import (
	"fmt"

	"emretopal/cv-analiz/internal/models"
)

// Localized fallback texts, matching what the result page shows.
const (
	msgEmptyResult      = "Analiz sonucu boş veya geçersiz. Lütfen tekrar deneyiniz."
	msgPartialAnalysis  = "Model yanıtında hata var, ancak CV'den bazı bilgiler çıkarılabildi."
	msgRenderingFailure = "Sonuçlar alındı fakat gösterilirken bir hata oluştu"
	msgOngoing          = "Devam Ediyor"
	msgDateNotSpecified = "Tarih Belirtilmemiş"
)

// Keys that only the LLM-structured (Turkish) schema produces.
var llmKeys = []string{
	"profil_degerlendirmesi",
	"is_deneyimi",
	"kisisel_bilgiler",
	"egitim",
	"beceriler",
	"ozet",
	"diller",
	"sertifikalar",
}

// Keys distinctive of the flat standard schema. The shared generic keys
// (skills, experience, education, languages) deliberately stay out of the
// set: a payload carrying only those goes through the minimal path.
var standardKeys = []string{"personal_info", "match_score"}

// Normalize classifies a raw analysis payload and extracts the canonical
// field set. It is pure: no side effects, no retained state, and every
// branch has a defined fallback. Missing or wrongly typed fields yield
// empty slots, never errors.
func Normalize(raw models.RawResult) models.CanonicalResult {
	if len(raw) == 0 {
		return models.CanonicalResult{
			Kind:       models.KindEmpty,
			Diagnostic: &models.Diagnostic{Message: msgEmptyResult},
		}
	}

	diag := extractDiagnostic(raw)

	var out models.CanonicalResult
	switch {
	case hasAny(raw, llmKeys...):
		out = decodeLLM(raw)
	case hasAny(raw, standardKeys...):
		out = decodeStandard(raw)
	default:
		out = decodeMinimal(raw)
	}

	out.Diagnostic = diag
	if diag != nil && out.Kind == models.KindUnknown && isBare(out) {
		out.Kind = models.KindError
	}
	return out
}

// NormalizeSafe wraps Normalize so that an unexpected panic during
// extraction becomes a diagnostic-only result describing the rendering
// failure instead of crashing the caller.
func NormalizeSafe(raw models.RawResult) (out models.CanonicalResult) {
	defer func() {
		if r := recover(); r != nil {
			out = models.CanonicalResult{
				Kind: models.KindError,
				Diagnostic: &models.Diagnostic{
					Message: fmt.Sprintf("%s: %v", msgRenderingFailure, r),
				},
			}
		}
	}()
	return Normalize(raw)
}

// extractDiagnostic pulls the error metadata out of a payload. Message
// precedence: explicit error field, then hidden-error field, then the
// generic partial-analysis text. An error never suppresses data extracted
// alongside it.
func extractDiagnostic(raw models.RawResult) *models.Diagnostic {
	explicit := firstString(raw, "error", "Error")
	hidden := firstString(raw, "_hata_bilgisi")
	hiddenRaw := firstString(raw, "_ham_yanit")

	if explicit == "" && hidden == "" && hiddenRaw == "" {
		return nil
	}

	msg := explicit
	if msg == "" {
		msg = hidden
	}
	if msg == "" {
		msg = msgPartialAnalysis
	}

	rawText := firstString(raw, "raw_response")
	if rawText == "" {
		rawText = hiddenRaw
	}

	return &models.Diagnostic{Message: msg, RawText: rawText}
}

// decodeMinimal is the last-resort path for unrecognized payloads: the
// generic top-level keys are taken as already-canonical lists or strings.
func decodeMinimal(raw models.RawResult) models.CanonicalResult {
	out := models.CanonicalResult{Kind: models.KindUnknown}

	switch v := raw["skills"].(type) {
	case []interface{}:
		if items := asStringList(v); len(items) > 0 {
			out.Skills = &models.Skills{Flat: items}
		}
	case string:
		if v != "" {
			out.Skills = &models.Skills{Text: v}
		}
	}

	out.Experiences = decodeExperienceValue(raw["experience"])
	out.Educations = decodeEducationValue(raw["education"])
	out.Languages = decodeStringListOrText(raw["languages"])

	return out
}

// decodeStringListOrText accepts either a list of strings or a single
// opaque string and normalizes both to a list.
func decodeStringListOrText(v interface{}) []string {
	if items := asStringList(v); len(items) > 0 {
		return items
	}
	if s := asString(v); s != "" {
		return []string{s}
	}
	return nil
}

func isBare(c models.CanonicalResult) bool {
	return c.Identity == nil && c.Summary == "" && c.Skills == nil &&
		len(c.Experiences) == 0 && len(c.Educations) == 0 &&
		len(c.Languages) == 0 && len(c.Certificates) == 0 &&
		c.Evaluation == nil && c.MatchScore == nil
}
