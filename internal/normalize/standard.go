package normalize

import "emretopal/cv-analiz/internal/models"

// decodeStandard extracts the canonical fields from the flat
// English-keyed schema with its numeric match score.
func decodeStandard(raw models.RawResult) models.CanonicalResult {
	out := models.CanonicalResult{Kind: models.KindStandard}

	if info := asMap(raw["personal_info"]); info != nil {
		out.Identity = &models.Identity{
			Name:     firstString(info, "name"),
			Email:    firstString(info, "email"),
			Phone:    firstString(info, "phone"),
			Address:  firstString(info, "address", "location"),
			LinkedIn: firstString(info, "linkedin"),
			GitHub:   firstString(info, "github"),
		}
	}

	out.Summary = firstString(raw, "summary")

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
	out.Certificates = decodeStringListOrText(raw["certificates"])

	if score, ok := asFloat(raw["match_score"]); ok {
		out.MatchScore = &score
	}

	return out
}

// decodeExperienceValue accepts the standard schema's experience field:
// either a list of structured entries or a single opaque descriptive
// string. Non-object list entries become raw fallback lines.
func decodeExperienceValue(v interface{}) []models.Experience {
	switch t := v.(type) {
	case []interface{}:
		out := make([]models.Experience, 0, len(t))
		for _, it := range t {
			m := asMap(it)
			if m == nil {
				out = append(out, models.Experience{Raw: rawText(it)})
				continue
			}
			start := firstString(m, "start_date")
			end := firstString(m, "end_date")
			out = append(out, models.Experience{
				Position:     firstString(m, "title", "position"),
				Company:      firstString(m, "company"),
				Location:     firstString(m, "location"),
				StartDate:    start,
				EndDate:      end,
				DateRange:    deriveDateRange(firstString(m, "date"), start, end),
				Description:  firstString(m, "description"),
				Technologies: asStringList(m["technologies"]),
			})
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		if t != "" {
			return []models.Experience{{Raw: t}}
		}
	}
	return nil
}

// decodeEducationValue mirrors decodeExperienceValue for education.
func decodeEducationValue(v interface{}) []models.Education {
	switch t := v.(type) {
	case []interface{}:
		out := make([]models.Education, 0, len(t))
		for _, it := range t {
			m := asMap(it)
			if m == nil {
				out = append(out, models.Education{Raw: rawText(it)})
				continue
			}
			start := firstString(m, "start_date")
			end := firstString(m, "end_date")
			out = append(out, models.Education{
				Institution: firstString(m, "institution", "school"),
				Degree:      firstString(m, "degree"),
				Field:       firstString(m, "field"),
				DateRange:   deriveDateRange(firstString(m, "date"), start, end),
				GPA:         firstString(m, "gpa"),
			})
		}
		if len(out) == 0 {
			return nil
		}
		return out
	case string:
		if t != "" {
			return []models.Education{{Raw: t}}
		}
	}
	return nil
}
