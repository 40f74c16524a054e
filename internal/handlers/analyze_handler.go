package handlers

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"emretopal/cv-analiz/internal/models"
	"emretopal/cv-analiz/internal/services"
)

type AnalyzeHandler struct {
	analyzer     services.AnalyzerService
	storage      services.StorageService
	maxFileSize  int64
	defaultModel string
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storage services.StorageService,
	maxFileSize int64,
	defaultModel string,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:     analyzer,
		storage:      storage,
		maxFileSize:  maxFileSize,
		defaultModel: defaultModel,
	}
}

// HandleAnalyzeCV handles POST /analyze-cv. The body of a successful
// response is the raw analysis payload as produced by the model pipeline,
// untouched, so the consuming side owns all normalization.
func (h *AnalyzeHandler) HandleAnalyzeCV(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Dosya seçilmedi!",
		})
	}

	if !models.IsAllowedExtension(file.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "İzin verilmeyen dosya türü! Sadece PDF, DOCX ve TXT desteklenir.",
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

	storedName, path, err := h.storage.SaveUpload(file.Filename, src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to store file: %v", err),
		})
	}
	defer func() {
		if derr := h.storage.DeleteFile(storedName); derr != nil {
			log.Printf("⚠️ Failed to delete temp file %s: %v\n", storedName, derr)
		}
	}()

	model := c.FormValue("model", h.defaultModel)
	log.Printf("📥 Analyzing %s with model %s\n", filepath.Base(file.Filename), model)

	result, err := h.analyzer.AnalyzeFile(c.UserContext(), path, model)
	if err != nil {
		log.Printf("❌ Analysis failed: %v\n", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Analiz sırasında hata oluştu: %v", err),
		})
	}

	return c.JSON(result)
}

// HandleModels handles GET /api/models.
func (h *AnalyzeHandler) HandleModels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"models":  h.analyzer.AvailableModels(c.UserContext()),
		"default": h.defaultModel,
	})
}
