package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"emretopal/cv-analiz/internal/session"
)

type UploadHandler struct {
	manager     *session.Manager
	controller  *session.Controller
	maxFileSize int64
}

func NewUploadHandler(
	manager *session.Manager,
	controller *session.Controller,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		manager:     manager,
		controller:  controller,
		maxFileSize: maxFileSize,
	}
}

// HandleSelect handles POST /api/session/file: select or replace the
// active artifact. A rejected file leaves the prior artifact unchanged.
func (h *UploadHandler) HandleSelect(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dosya seçilmedi!",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Dosya çok büyük. En fazla %d bayt yüklenebilir.", h.maxFileSize),
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	artifact, err := h.manager.Select(file.Filename, src)
	if err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": verr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to store file: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Dosya yüklendi",
		"artifact": artifact,
	})
}

// HandleGet handles GET /api/session/file.
func (h *UploadHandler) HandleGet(c *fiber.Ctx) error {
	artifact := h.manager.Active()
	if artifact == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Yüklenmiş bir dosya yok.",
		})
	}
	return c.JSON(fiber.Map{"artifact": artifact})
}

// HandleRemove handles DELETE /api/session/file: clears the artifact and
// returns the session to the initial no-file state.
func (h *UploadHandler) HandleRemove(c *fiber.Ctx) error {
	if err := h.manager.Remove(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to remove file: %v", err),
		})
	}
	h.controller.Reset()

	return c.JSON(fiber.Map{"message": "Dosya kaldırıldı"})
}
