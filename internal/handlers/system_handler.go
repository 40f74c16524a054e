package handlers

import (
	"github.com/gofiber/fiber/v2"

	"emretopal/cv-analiz/internal/render"
	"emretopal/cv-analiz/internal/services"
)

type SystemHandler struct {
	sysinfo services.SystemInfoService
}

func NewSystemHandler(sysinfo services.SystemInfoService) *SystemHandler {
	return &SystemHandler{sysinfo: sysinfo}
}

// HandleSystemInfo handles GET /api/system-info.
func (h *SystemHandler) HandleSystemInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"system_info": h.sysinfo.Read(c.UserContext()),
	})
}

// HandleSettingsLabels handles GET /api/settings/labels: display strings
// for the settings panel, derived from the query parameters.
func (h *SystemHandler) HandleSettingsLabels(c *fiber.Ctx) error {
	memoryGB := c.QueryInt("memory_gb", 8)

	return c.JSON(fiber.Map{
		"memory_label": render.MemoryLimitLabel(memoryGB),
		"model_label":  render.ModelShortName(c.Query("model")),
	})
}
