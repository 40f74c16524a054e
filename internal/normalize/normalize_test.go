package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emretopal/cv-analiz/internal/models"
)

func TestNormalizeEmptyPayload(t *testing.T) {
	for _, raw := range []models.RawResult{nil, {}} {
		got := Normalize(raw)

		assert.Equal(t, models.KindEmpty, got.Kind)
		require.NotNil(t, got.Diagnostic)
		assert.Equal(t, msgEmptyResult, got.Diagnostic.Message)
		assert.Nil(t, got.Identity)
	}
}

func TestNormalizeErrorOnlyPayload(t *testing.T) {
	got := Normalize(models.RawResult{
		"error":        "Model yanıtından JSON çıkarılamadı",
		"raw_response": "not json at all",
	})

	assert.Equal(t, models.KindError, got.Kind)
	require.NotNil(t, got.Diagnostic)
	assert.Equal(t, "Model yanıtından JSON çıkarılamadı", got.Diagnostic.Message)
	assert.Equal(t, "not json at all", got.Diagnostic.RawText)
}

func TestNormalizeDiagnosticPrecedence(t *testing.T) {
	// Explicit error text outranks the hidden field.
	got := Normalize(models.RawResult{
		"error":         "açık hata",
		"_hata_bilgisi": "gizli hata",
	})
	require.NotNil(t, got.Diagnostic)
	assert.Equal(t, "açık hata", got.Diagnostic.Message)

	// Hidden field alone speaks for itself.
	got = Normalize(models.RawResult{"_hata_bilgisi": "gizli hata"})
	require.NotNil(t, got.Diagnostic)
	assert.Equal(t, "gizli hata", got.Diagnostic.Message)

	// Raw text alone falls back to the generic partial message.
	got = Normalize(models.RawResult{"_ham_yanit": "yanıt metni"})
	require.NotNil(t, got.Diagnostic)
	assert.Equal(t, msgPartialAnalysis, got.Diagnostic.Message)
	assert.Equal(t, "yanıt metni", got.Diagnostic.RawText)
}

func TestNormalizeErrorAlongsideDataKeepsData(t *testing.T) {
	got := Normalize(models.RawResult{
		"_hata_bilgisi": "model yanıtı beklenen yapıda değil",
		"ozet":          "Deneyimli yazılım geliştirici.",
		"beceriler":     []interface{}{"Go", "Docker"},
	})

	assert.Equal(t, models.KindLLM, got.Kind)
	require.NotNil(t, got.Diagnostic)
	assert.Equal(t, "Deneyimli yazılım geliştirici.", got.Summary)
	require.NotNil(t, got.Skills)
	assert.Equal(t, []string{"Go", "Docker"}, got.Skills.Flat)
}

func TestNormalizeLLMSchema(t *testing.T) {
	raw := models.RawResult{
		"kisisel_bilgiler": map[string]interface{}{
			"isim":     "Ayşe Yılmaz",
			"email":    "ayse@example.com",
			"telefon":  "+90 555 000 00 00",
			"lokasyon": "İstanbul",
			"linkedin": "linkedin.com/in/ayse",
			"github":   "github.com/ayse",
		},
		"ozet": "Kıdemli backend geliştirici.",
		"beceriler": map[string]interface{}{
			"teknik":  []interface{}{"Go", "PostgreSQL"},
			"yazilim": []interface{}{"Docker"},
		},
		"is_deneyimi": []interface{}{
			map[string]interface{}{
				"pozisyon":     "Backend Developer",
				"sirket":       "Acme",
				"baslangic":    "2020",
				"bitis":        "2023",
				"gorevler":     []interface{}{"API geliştirme"},
				"teknolojiler": []interface{}{"Go"},
			},
			"Serbest çalışma (2019)",
		},
		"egitim": []interface{}{
			map[string]interface{}{
				"okul":           "İTÜ",
				"derece":         "Lisans",
				"alan":           "Bilgisayar Mühendisliği",
				"baslangic":      "2014",
				"not_ortalamasi": "3.2",
			},
		},
		"diller":       []interface{}{"Türkçe", "İngilizce"},
		"sertifikalar": []interface{}{"AWS SAA"},
	}

	got := Normalize(raw)

	assert.Equal(t, models.KindLLM, got.Kind)
	assert.Nil(t, got.Diagnostic)

	require.NotNil(t, got.Identity)
	assert.Equal(t, "Ayşe Yılmaz", got.Identity.Name)
	// lokasyon is the accepted alias for the address slot
	assert.Equal(t, "İstanbul", got.Identity.Address)
	assert.Equal(t, "github.com/ayse", got.Identity.GitHub)

	require.NotNil(t, got.Skills)
	require.Len(t, got.Skills.Groups, 2)
	assert.Equal(t, "Teknik Beceriler", got.Skills.Groups[0].Name)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, got.Skills.Groups[0].Items)

	require.Len(t, got.Experiences, 2)
	assert.Equal(t, "Backend Developer", got.Experiences[0].Position)
	assert.Equal(t, "2020 - 2023", got.Experiences[0].DateRange)
	assert.Equal(t, "Serbest çalışma (2019)", got.Experiences[1].Raw)

	require.Len(t, got.Educations, 1)
	assert.Equal(t, "İTÜ", got.Educations[0].Institution)
	assert.Equal(t, "2014 - Devam Ediyor", got.Educations[0].DateRange)
	assert.Equal(t, "3.2", got.Educations[0].GPA)

	assert.Equal(t, []string{"Türkçe", "İngilizce"}, got.Languages)
	assert.Equal(t, []string{"AWS SAA"}, got.Certificates)
}

func TestNormalizeEvaluationDefaultsIndependently(t *testing.T) {
	got := Normalize(models.RawResult{
		"profil_degerlendirmesi": map[string]interface{}{
			"guclu_yonler": []interface{}{"Takım çalışması"},
			"oneriler":     []interface{}{},
		},
	})

	assert.Equal(t, models.KindLLM, got.Kind)
	require.NotNil(t, got.Evaluation)
	assert.Equal(t, []string{"Takım çalışması"}, got.Evaluation.Strengths)
	assert.Equal(t, []string{"Geliştirilmesi gereken alan bilgisi bulunamadı."}, got.Evaluation.Weaknesses)
	assert.Equal(t, []string{"Uygun pozisyon bilgisi bulunamadı."}, got.Evaluation.SuitablePositions)
	assert.Equal(t, []string{"Öneri bilgisi bulunamadı."}, got.Evaluation.Recommendations)
}

func TestNormalizeSkillsAsPlainString(t *testing.T) {
	got := Normalize(models.RawResult{"beceriler": "Go, Docker, Kubernetes"})

	assert.Equal(t, models.KindLLM, got.Kind)
	require.NotNil(t, got.Skills)
	assert.Equal(t, "Go, Docker, Kubernetes", got.Skills.Text)
	assert.Equal(t, 1, got.Skills.Count())
}

func TestNormalizeStandardSchema(t *testing.T) {
	raw := models.RawResult{
		"personal_info": map[string]interface{}{
			"name":  "Mehmet Demir",
			"email": "mehmet@example.com",
		},
		"summary": "Full-stack developer.",
		"skills":  []interface{}{"React", "Node.js"},
		"experience": []interface{}{
			map[string]interface{}{
				"title":      "Developer",
				"company":    "Widgets Inc",
				"start_date": "2021",
				"end_date":   "2024",
			},
		},
		"education":   "Lisans, Bilgisayar Mühendisliği",
		"match_score": 0.87,
	}

	got := Normalize(raw)

	assert.Equal(t, models.KindStandard, got.Kind)
	require.NotNil(t, got.Identity)
	assert.Equal(t, "Mehmet Demir", got.Identity.Name)
	require.NotNil(t, got.Skills)
	assert.Equal(t, []string{"React", "Node.js"}, got.Skills.Flat)

	require.Len(t, got.Experiences, 1)
	assert.Equal(t, "Developer", got.Experiences[0].Position)
	assert.Equal(t, "2021 - 2024", got.Experiences[0].DateRange)

	require.Len(t, got.Educations, 1)
	assert.Equal(t, "Lisans, Bilgisayar Mühendisliği", got.Educations[0].Raw)

	require.NotNil(t, got.MatchScore)
	assert.Equal(t, 0.87, *got.MatchScore)
}

func TestNormalizeGenericKeysTakeMinimalPath(t *testing.T) {
	// Shared generic keys alone do not make a payload "standard".
	got := Normalize(models.RawResult{
		"skills":    []interface{}{"Go"},
		"languages": "Türkçe",
	})

	assert.Equal(t, models.KindUnknown, got.Kind)
	require.NotNil(t, got.Skills)
	assert.Equal(t, []string{"Go"}, got.Skills.Flat)
	assert.Equal(t, []string{"Türkçe"}, got.Languages)
	assert.Nil(t, got.Identity)
}

func TestNormalizeUnknownPayloadWithNothingUsable(t *testing.T) {
	got := Normalize(models.RawResult{"foo": "bar"})

	assert.Equal(t, models.KindUnknown, got.Kind)
	assert.Nil(t, got.Diagnostic)
	assert.Nil(t, got.Skills)
}

func TestNormalizeSafeMatchesNormalize(t *testing.T) {
	raw := models.RawResult{"ozet": "Deneyimli geliştirici."}

	assert.Equal(t, Normalize(raw), NormalizeSafe(raw))
}
