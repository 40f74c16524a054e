package render

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"emretopal/cv-analiz/internal/models"
)

// ScoreTier is the display bucket of the match percentage.
type ScoreTier string

const (
	TierHigh    ScoreTier = "success" // >= 90
	TierGood    ScoreTier = "primary" // 70-89
	TierAverage ScoreTier = "warning" // 50-69
	TierLow     ScoreTier = "danger"  // < 50
)

// TierFor buckets a rounded match percentage into its color tier.
func TierFor(percent int) ScoreTier {
	switch {
	case percent >= 90:
		return TierHigh
	case percent >= 70:
		return TierGood
	case percent >= 50:
		return TierAverage
	default:
		return TierLow
	}
}

// Overview is the derived summary card shown on the results tab. It holds
// no state of its own; everything is computed from the canonical result.
type Overview struct {
	TotalYears      int       `json:"total_years"`
	TotalYearsLabel string    `json:"total_years_label"`
	LatestDegree    string    `json:"latest_degree"`
	SkillCount      int       `json:"skill_count"`
	MatchPercent    int       `json:"match_percent"`
	MatchLabel      string    `json:"match_label"`
	Tier            ScoreTier `json:"tier,omitempty"`
}

var yearPattern = regexp.MustCompile(`(19|20)\d{2}`)

// yearIn pulls the first plausible year out of a free-form date string,
// falling back to the given year when none is found.
func yearIn(date string, fallback int) int {
	m := yearPattern.FindString(date)
	if m == "" {
		return fallback
	}
	var y int
	fmt.Sscanf(m, "%d", &y)
	return y
}

// totalExperienceYears sums endYear-startYear over the entries, using the
// current year when an end date is open-ended or missing and as the start
// fallback too, so a fully raw entry contributes zero.
func totalExperienceYears(entries []models.Experience, now time.Time) int {
	currentYear := now.Year()
	total := 0
	for _, e := range entries {
		start := yearIn(e.StartDate, currentYear)
		end := yearIn(e.EndDate, currentYear)
		total += end - start
	}
	return total
}

// BuildOverview derives the overview card values from a canonical result.
func BuildOverview(c models.CanonicalResult, now time.Time) Overview {
	o := Overview{
		TotalYearsLabel: "N/A",
		LatestDegree:    "N/A",
		MatchPercent:    -1,
		MatchLabel:      "N/A",
	}

	o.TotalYears = totalExperienceYears(c.Experiences, now)
	if o.TotalYears > 0 {
		o.TotalYearsLabel = fmt.Sprintf("%d Yıl", o.TotalYears)
	}

	for i := len(c.Educations) - 1; i >= 0; i-- {
		if c.Educations[i].Degree != "" {
			o.LatestDegree = c.Educations[i].Degree
			break
		}
	}

	o.SkillCount = c.Skills.Count()

	if c.MatchScore != nil {
		o.MatchPercent = int(math.Round(*c.MatchScore * 100))
		o.MatchLabel = fmt.Sprintf("%d%%", o.MatchPercent)
		o.Tier = TierFor(o.MatchPercent)
	}

	return o
}
