// file: internals/features/system/settings/controller/settings_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"academyos_backend/internals/configs"
	"academyos_backend/internals/features/system/settings"
	helper "academyos_backend/internals/helpers"
)

type SettingsController struct {
	Store *settings.Store
}

func NewSettingsController() *SettingsController {
	return &SettingsController{Store: settings.NewStore(configs.SettingsFile)}
}

// GET /api/settings
func (ctl *SettingsController) GetSettings(c *fiber.Ctx) error {
	doc, err := ctl.Store.Load()
	if err != nil {
		log.Println("[ERROR] load settings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load settings")
	}
	return helper.JsonOK(c, "Settings fetched successfully", fiber.Map{"settings": doc})
}

// PUT /api/settings — shallow merge of the request body
func (ctl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var patch map[string]any
	if err := c.BodyParser(&patch); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if len(patch) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No settings provided")
	}

	doc, err := ctl.Store.Merge(patch)
	if err != nil {
		log.Println("[ERROR] save settings:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save settings")
	}
	return helper.JsonUpdated(c, "Settings updated successfully", fiber.Map{"settings": doc})
}
