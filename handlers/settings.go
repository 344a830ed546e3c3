package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"buildtrack/services"
	"buildtrack/store"
)

// HandleSettingsGet returns the application settings with the API key masked.
// The raw key never leaves the server.
func HandleSettingsGet(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		settings, err := repos.Settings.Get()
		if err != nil {
			log.Printf("settings_get: %v", err)
			return serverError(e, "Could not read settings")
		}
		return e.JSON(http.StatusOK, services.MaskSettings(settings))
	}
}

// HandleSettingsUpdate stores a new API key and returns the masked settings.
func HandleSettingsUpdate(repos *store.Repos) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var body struct {
			AnthropicAPIKey string `json:"anthropicApiKey"`
		}
		if err := e.BindBody(&body); err != nil {
			return badRequest(e, "Invalid request body")
		}

		key := strings.TrimSpace(body.AnthropicAPIKey)
		if key == "" {
			return badRequest(e, "API key is required")
		}
		if !strings.HasPrefix(key, "sk-ant-") {
			return badRequest(e, "Invalid API key format")
		}

		current, err := repos.Settings.Get()
		if err != nil {
			log.Printf("settings_update: %v", err)
			return serverError(e, "Could not read settings")
		}

		updated := services.UpdateSettings(current, key)
		if err := repos.Settings.Save(&updated); err != nil {
			log.Printf("settings_update: %v", err)
			return serverError(e, "Could not save settings")
		}

		return e.JSON(http.StatusOK, services.MaskSettings(&updated))
	}
}
