package session

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"emretopal/cv-analiz/internal/models"
	"emretopal/cv-analiz/internal/normalize"
	"emretopal/cv-analiz/internal/render"
)

// Phase is the lifecycle state of the analysis request machine.
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseSubmitting     Phase = "submitting"
	PhaseAwaitingResult Phase = "awaiting_result"
	PhaseCompleted      Phase = "completed"
	PhaseFailed         Phase = "failed"
)

// Outcome is the consumed result of a completed analysis: the canonical
// record plus its rendered projection.
type Outcome struct {
	Canonical models.CanonicalResult `json:"canonical"`
	Regions   render.Regions         `json:"regions"`
	Overview  render.Overview        `json:"overview"`
}

// Controller drives one analysis request at a time through
// Idle → Submitting → AwaitingResult → {Completed | Failed}. The cosmetic
// progress simulation runs as its own cancellable task and is always
// stopped when the request resolves. The raw payload is handed to the
// normalization engine exactly once.
type Controller struct {
	manager          *Manager
	client           *AnalyzeClient
	renderer         *render.Renderer
	defaultModel     string
	progressInterval time.Duration

	mu       sync.Mutex
	phase    Phase
	progress *Simulator
	outcome  *Outcome
	alert    string
}

func NewController(
	manager *Manager,
	client *AnalyzeClient,
	renderer *render.Renderer,
	defaultModel string,
	progressInterval time.Duration,
) *Controller {
	return &Controller{
		manager:          manager,
		client:           client,
		renderer:         renderer,
		defaultModel:     defaultModel,
		progressInterval: progressInterval,
		phase:            PhaseIdle,
	}
}

// Submit starts an analysis for the active artifact. Submitting without
// an artifact, or while a request is in flight, is rejected synchronously
// with a ValidationError and no state change.
func (c *Controller) Submit(ctx context.Context, modelID string) error {
	artifact := c.manager.Active()

	c.mu.Lock()
	if c.phase == PhaseSubmitting || c.phase == PhaseAwaitingResult {
		c.mu.Unlock()
		return ErrAnalysisInFlight
	}
	if artifact == nil {
		c.mu.Unlock()
		return ErrNoArtifact
	}

	if modelID == "" {
		modelID = c.defaultModel
	}
	req := models.AnalysisRequest{Artifact: *artifact, ModelID: modelID}

	sim := NewSimulator(c.progressInterval)
	c.phase = PhaseSubmitting
	c.progress = sim
	c.outcome = nil
	c.alert = ""
	c.mu.Unlock()

	sim.Start()
	go c.run(ctx, req, sim)
	return nil
}

func (c *Controller) run(ctx context.Context, req models.AnalysisRequest, sim *Simulator) {
	c.setPhase(PhaseAwaitingResult)
	log.Printf("🔄 Submitting %s for analysis with model %s\n", req.Artifact.Name, req.ModelID)

	raw, err := c.client.Submit(ctx, req)
	sim.Stop()

	if err != nil {
		log.Printf("❌ Analysis request failed: %v\n", err)
		c.fail("CV analizi sırasında bir hata oluştu. Lütfen tekrar deneyin.")
		return
	}

	if msg := payloadError(raw); msg != "" && !hasDataKeys(raw) {
		log.Printf("❌ Analysis returned a logical error: %s\n", msg)
		c.fail("CV analizi sırasında bir hata oluştu: " + msg)
		return
	}

	// The one and only hand-off of the raw payload to the engine.
	canonical := normalize.NormalizeSafe(raw)
	regions, rerr := c.renderer.Render(canonical, time.Now())
	if rerr != nil {
		log.Printf("❌ Failed to render result: %v\n", rerr)
		c.fail("Sonuçlar alındı fakat gösterilirken bir hata oluştu. Lütfen tekrar deneyiniz.")
		return
	}

	c.mu.Lock()
	c.outcome = &Outcome{
		Canonical: canonical,
		Regions:   regions,
		Overview:  render.BuildOverview(canonical, time.Now()),
	}
	c.phase = PhaseCompleted
	c.mu.Unlock()

	log.Printf("✅ Analysis completed for %s\n", req.Artifact.Name)
}

func (c *Controller) setPhase(p Phase) {
	c.mu.Lock()
	c.phase = p
	c.mu.Unlock()
}

func (c *Controller) fail(alert string) {
	c.mu.Lock()
	c.phase = PhaseFailed
	c.alert = alert
	c.mu.Unlock()
}

// Phase returns the current lifecycle state.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Alert returns the user-facing failure text, empty unless Failed.
func (c *Controller) Alert() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.alert
}

// Progress reports the simulated percentage and stage milestones.
func (c *Controller) Progress() (int, [4]bool) {
	c.mu.Lock()
	sim := c.progress
	c.mu.Unlock()

	if sim == nil {
		return 0, [4]bool{}
	}
	return sim.Snapshot()
}

// Outcome returns the rendered result of the last completed analysis, or
// nil when none is available.
func (c *Controller) Outcome() *Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Reset returns the machine to Idle, discarding any completed or failed
// run. It refuses to interfere with an in-flight request.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseSubmitting || c.phase == PhaseAwaitingResult {
		return
	}
	c.phase = PhaseIdle
	c.progress = nil
	c.outcome = nil
	c.alert = ""
}

// payloadError extracts the explicit logical-error text from a decoded
// body, checking both casing variants.
func payloadError(raw models.RawResult) string {
	for _, key := range []string{"error", "Error"} {
		if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// hasDataKeys reports whether the payload carries anything beyond error
// metadata. An error with partial data still completes, so the banner can
// be shown alongside whatever extracted.
func hasDataKeys(raw models.RawResult) bool {
	for key := range raw {
		switch key {
		case "error", "Error", "raw_response", "_hata_bilgisi", "_ham_yanit":
			continue
		}
		return true
	}
	return false
}
