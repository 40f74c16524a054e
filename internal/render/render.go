package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"emretopal/cv-analiz/internal/models"
)

// Regions is the view model handed to the page: one independently
// rendered HTML fragment per display region. A region whose slot was
// absent carries its localized placeholder, never an empty hole.
type Regions struct {
	Identity          template.HTML `json:"identity"`
	Summary           template.HTML `json:"summary"`
	Skills            template.HTML `json:"skills"`
	Experience        template.HTML `json:"experience"`
	Education         template.HTML `json:"education"`
	Languages         template.HTML `json:"languages"`
	Certificates      template.HTML `json:"certificates"`
	Strengths         template.HTML `json:"strengths"`
	Weaknesses        template.HTML `json:"weaknesses"`
	SuitablePositions template.HTML `json:"suitable_positions"`
	Recommendations   template.HTML `json:"recommendations"`
	ErrorBanner       template.HTML `json:"error_banner,omitempty"`
	Overview          template.HTML `json:"overview"`
}

type bannerData struct {
	Message string
	RawText string
	Partial bool
}

// Renderer projects canonical results into display regions. Templates are
// compiled once at construction; rendering itself cannot fail on missing
// data, only on a broken template set.
type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	root := template.New("regions").Funcs(template.FuncMap{
		"orElse": func(s, fallback string) string {
			if strings.TrimSpace(s) != "" {
				return s
			}
			return fallback
		},
	})

	sources := map[string]string{
		"identity":     identityTmpl,
		"summary":      summaryTmpl,
		"skills":       skillsTmpl,
		"experience":   experienceTmpl,
		"education":    educationTmpl,
		"languages":    languagesTmpl,
		"certificates": certificatesTmpl,
		"evalList":     evalListTmpl,
		"errorBanner":  errorBannerTmpl,
		"overview":     overviewTmpl,
	}
	for name, src := range sources {
		if _, err := root.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", name, err)
		}
	}

	return &Renderer{templates: root}, nil
}

func (r *Renderer) exec(name string, data interface{}) (template.HTML, error) {
	var sb strings.Builder
	if err := r.templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s region: %w", name, err)
	}
	return template.HTML(sb.String()), nil
}

// Render builds every region from the canonical result. Each region
// degrades independently; the error banner is emitted exactly once, and
// only when a diagnostic is present.
func (r *Renderer) Render(c models.CanonicalResult, now time.Time) (Regions, error) {
	var out Regions
	var err error

	steps := []struct {
		dst  *template.HTML
		name string
		data interface{}
	}{
		{&out.Identity, "identity", c.Identity},
		{&out.Summary, "summary", c.Summary},
		{&out.Skills, "skills", c.Skills},
		{&out.Experience, "experience", c.Experiences},
		{&out.Education, "education", c.Educations},
		{&out.Languages, "languages", c.Languages},
		{&out.Certificates, "certificates", c.Certificates},
		{&out.Overview, "overview", BuildOverview(c, now)},
	}
	for _, s := range steps {
		if *s.dst, err = r.exec(s.name, s.data); err != nil {
			return Regions{}, err
		}
	}

	evalSlots := []struct {
		dst   *template.HTML
		items []string
	}{
		{&out.Strengths, evalItems(c.Evaluation, func(e *models.Evaluation) []string { return e.Strengths })},
		{&out.Weaknesses, evalItems(c.Evaluation, func(e *models.Evaluation) []string { return e.Weaknesses })},
		{&out.SuitablePositions, evalItems(c.Evaluation, func(e *models.Evaluation) []string { return e.SuitablePositions })},
		{&out.Recommendations, evalItems(c.Evaluation, func(e *models.Evaluation) []string { return e.Recommendations })},
	}
	for _, s := range evalSlots {
		if *s.dst, err = r.exec("evalList", s.items); err != nil {
			return Regions{}, err
		}
	}

	if c.Diagnostic != nil {
		partial := c.Kind == models.KindLLM || c.Kind == models.KindStandard
		banner := bannerData{
			Message: c.Diagnostic.Message,
			RawText: c.Diagnostic.RawText,
			Partial: partial,
		}
		if out.ErrorBanner, err = r.exec("errorBanner", banner); err != nil {
			return Regions{}, err
		}
	}

	return out, nil
}

func evalItems(e *models.Evaluation, pick func(*models.Evaluation) []string) []string {
	if e == nil {
		return nil
	}
	return pick(e)
}
