package normalize

import "emretopal/cv-analiz/internal/models"

// decodeLLM extracts the canonical fields from the rich Turkish-keyed
// schema the LLM prompt asks for.
func decodeLLM(raw models.RawResult) models.CanonicalResult {
	out := models.CanonicalResult{Kind: models.KindLLM}

	if info := asMap(raw["kisisel_bilgiler"]); info != nil {
		out.Identity = &models.Identity{
			Name:     firstString(info, "isim"),
			Email:    firstString(info, "email"),
			Phone:    firstString(info, "telefon"),
			Address:  firstString(info, "adres", "lokasyon"),
			LinkedIn: firstString(info, "linkedin"),
			GitHub:   firstString(info, "github"),
		}
	}

	out.Summary = firstString(raw, "ozet")
	out.Skills = decodeLLMSkills(raw)

	out.Experiences = decodeLLMExperiences(raw["is_deneyimi"])
	if len(out.Experiences) == 0 {
		out.Experiences = decodeExperienceValue(raw["experience"])
	}

	out.Educations = decodeLLMEducations(raw["egitim"])
	if len(out.Educations) == 0 {
		out.Educations = decodeEducationValue(raw["education"])
	}

	out.Languages = decodeStringListOrText(raw["diller"])
	if len(out.Languages) == 0 {
		out.Languages = decodeStringListOrText(raw["languages"])
	}

	out.Certificates = decodeStringListOrText(raw["sertifikalar"])
	if len(out.Certificates) == 0 {
		out.Certificates = decodeStringListOrText(raw["certificates"])
	}

	if eval := asMap(raw["profil_degerlendirmesi"]); eval != nil {
		out.Evaluation = &models.Evaluation{
			Strengths:         evalList(eval, "guclu_yonler", "Güçlü yön bilgisi bulunamadı."),
			Weaknesses:        evalList(eval, "gelistirilmesi_gereken_alanlar", "Geliştirilmesi gereken alan bilgisi bulunamadı."),
			SuitablePositions: evalList(eval, "uygun_pozisyonlar", "Uygun pozisyon bilgisi bulunamadı."),
			Recommendations:   evalList(eval, "oneriler", "Öneri bilgisi bulunamadı."),
		}
	}

	return out
}

// decodeLLMSkills handles the three accepted shapes: a flat list, a
// categorized object, or a plain string. The legacy flat `skills` list is
// the fallback.
func decodeLLMSkills(raw models.RawResult) *models.Skills {
	switch v := raw["beceriler"].(type) {
	case []interface{}:
		if items := asStringList(v); len(items) > 0 {
			return &models.Skills{Flat: items}
		}
	case map[string]interface{}:
		categories := []struct {
			key   string
			label string
		}{
			{"teknik", "Teknik Beceriler"},
			{"yazilim", "Yazılım"},
			{"metodolojiler", "Metodolojiler"},
			{"profesyonel", "Profesyonel Beceriler"},
		}
		var groups []models.SkillGroup
		for _, c := range categories {
			if items := asStringList(v[c.key]); len(items) > 0 {
				groups = append(groups, models.SkillGroup{Name: c.label, Items: items})
			}
		}
		if len(groups) > 0 {
			return &models.Skills{Groups: groups}
		}
	case string:
		if v != "" {
			return &models.Skills{Text: v}
		}
	}

	if items := asStringList(raw["skills"]); len(items) > 0 {
		return &models.Skills{Flat: items}
	}
	return nil
}

func decodeLLMExperiences(v interface{}) []models.Experience {
	items := asList(v)
	out := make([]models.Experience, 0, len(items))
	for _, it := range items {
		m := asMap(it)
		if m == nil {
			out = append(out, models.Experience{Raw: rawText(it)})
			continue
		}
		start := firstString(m, "baslangic")
		end := firstString(m, "bitis")
		out = append(out, models.Experience{
			Position:     firstString(m, "pozisyon"),
			Company:      firstString(m, "sirket"),
			Location:     firstString(m, "lokasyon"),
			StartDate:    start,
			EndDate:      end,
			DateRange:    deriveDateRange(firstString(m, "tarih"), start, end),
			Tasks:        asStringList(m["gorevler"]),
			Technologies: asStringList(m["teknolojiler"]),
			Achievements: asStringList(m["basarilar"]),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func decodeLLMEducations(v interface{}) []models.Education {
	items := asList(v)
	out := make([]models.Education, 0, len(items))
	for _, it := range items {
		m := asMap(it)
		if m == nil {
			out = append(out, models.Education{Raw: rawText(it)})
			continue
		}
		start := firstString(m, "baslangic")
		end := firstString(m, "bitis")
		out = append(out, models.Education{
			Institution: firstString(m, "okul", "kurum"),
			Degree:      firstString(m, "derece", "bolum"),
			Field:       firstString(m, "alan"),
			DateRange:   deriveDateRange(firstString(m, "tarih"), start, end),
			GPA:         firstString(m, "not_ortalamasi", "notlar"),
			Courses:     asStringList(m["onemli_dersler"]),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// evalList returns one sub-list of the profile evaluation, defaulting to
// a one-item placeholder independently of the other sub-lists.
func evalList(eval map[string]interface{}, key, placeholder string) []string {
	if items := asStringList(eval[key]); len(items) > 0 {
		return items
	}
	return []string{placeholder}
}
