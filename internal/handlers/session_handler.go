package handlers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"emretopal/cv-analiz/internal/session"
)

type SessionHandler struct {
	controller *session.Controller
}

func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

type analyzeBody struct {
	Model string `json:"model"`
}

// HandleAnalyze handles POST /api/session/analyze: kicks off an analysis
// of the active artifact. The request returns immediately; progress and
// the result are polled on their own endpoints.
func (h *SessionHandler) HandleAnalyze(c *fiber.Ctx) error {
	var body analyzeBody
	// An empty body means "use the default model".
	_ = c.BodyParser(&body)

	// The analysis outlives this request, so it must not inherit the
	// request's context.
	if err := h.controller.Submit(context.Background(), body.Model); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": string(session.PhaseSubmitting),
	})
}

// HandleProgress handles GET /api/session/progress.
func (h *SessionHandler) HandleProgress(c *fiber.Ctx) error {
	percent, stages := h.controller.Progress()

	resp := fiber.Map{
		"phase":   string(h.controller.Phase()),
		"percent": percent,
		"stages":  stages,
	}
	if alert := h.controller.Alert(); alert != "" {
		resp["alert"] = alert
	}
	return c.JSON(resp)
}

// HandleResult handles GET /api/session/result.
func (h *SessionHandler) HandleResult(c *fiber.Ctx) error {
	outcome := h.controller.Outcome()
	if outcome == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Henüz tamamlanmış bir analiz yok.",
			"phase": string(h.controller.Phase()),
		})
	}
	return c.JSON(outcome)
}
