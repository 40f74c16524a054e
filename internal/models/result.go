package models

// RawResult is the unvalidated payload returned by the analysis job. No
// schema is guaranteed: the model may answer with the rich Turkish-keyed
// shape, the flat English shape, an error payload, or nothing usable.
type RawResult map[string]interface{}

// AnalysisRequest pairs the artifact with the model chosen for the run.
// It is built immediately before submission and discarded once the
// response has been consumed.
type AnalysisRequest struct {
	Artifact Artifact
	ModelID  string
}

// ResultKind is the classification of a RawResult after tagged decoding.
type ResultKind string

const (
	KindLLM      ResultKind = "llm"
	KindStandard ResultKind = "standard"
	KindError    ResultKind = "error"
	KindEmpty    ResultKind = "empty"
	KindUnknown  ResultKind = "unknown"
)

// Identity holds the extracted personal fields. Absent fields stay empty;
// the renderer substitutes the localized placeholders.
type Identity struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// SkillGroup is one named category of a categorized skills payload.
type SkillGroup struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// Skills preserves the shape the payload arrived in: a flat list, named
// groups, or a single free-text blob. At most one of the three is set.
type Skills struct {
	Flat   []string     `json:"flat,omitempty"`
	Groups []SkillGroup `json:"groups,omitempty"`
	Text   string       `json:"text,omitempty"`
}

// Count returns the number of individual skills across all shapes.
func (s *Skills) Count() int {
	if s == nil {
		return 0
	}
	n := len(s.Flat)
	for _, g := range s.Groups {
		n += len(g.Items)
	}
	if n == 0 && s.Text != "" {
		n = 1
	}
	return n
}

// Experience is one work-history entry. A payload entry that was not an
// object is carried verbatim in Raw instead of being dropped.
type Experience struct {
	Position     string   `json:"position,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	DateRange    string   `json:"date_range,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description,omitempty"`
	Tasks        []string `json:"tasks,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Raw          string   `json:"raw,omitempty"`
}

// Education is one education entry, with the same Raw fallback rule.
type Education struct {
	Institution string   `json:"institution,omitempty"`
	Degree      string   `json:"degree,omitempty"`
	Field       string   `json:"field,omitempty"`
	DateRange   string   `json:"date_range,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Courses     []string `json:"courses,omitempty"`
	Raw         string   `json:"raw,omitempty"`
}

// Evaluation carries the four profile-assessment lists. Each defaults
// independently; none of them is coupled to the others' presence.
type Evaluation struct {
	Strengths         []string `json:"strengths"`
	Weaknesses        []string `json:"weaknesses"`
	SuitablePositions []string `json:"suitable_positions"`
	Recommendations   []string `json:"recommendations"`
}

// Diagnostic is the error metadata attached to a result. It can accompany
// extracted data: a partial result is not fatal.
type Diagnostic struct {
	Message string `json:"message"`
	RawText string `json:"raw_text,omitempty"`
}

// CanonicalResult is the normalized, schema-independent record the
// renderer consumes. Every slot is independently nullable.
type CanonicalResult struct {
	Kind         ResultKind   `json:"kind"`
	Identity     *Identity    `json:"identity,omitempty"`
	Summary      string       `json:"summary,omitempty"`
	Skills       *Skills      `json:"skills,omitempty"`
	Experiences  []Experience `json:"experiences,omitempty"`
	Educations   []Education  `json:"educations,omitempty"`
	Languages    []string     `json:"languages,omitempty"`
	Certificates []string     `json:"certificates,omitempty"`
	Evaluation   *Evaluation  `json:"evaluation,omitempty"`
	MatchScore   *float64     `json:"match_score,omitempty"`
	Diagnostic   *Diagnostic  `json:"diagnostic,omitempty"`
}
