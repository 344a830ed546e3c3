package services

import (
	"strings"

	"buildtrack/models"
)

// ResolveAPIKey returns the Anthropic API key to use: the stored settings
// value when present, otherwise the ANTHROPIC_API_KEY environment variable.
// getenv is injected so resolution stays explicit and testable; an empty
// return means no key is configured.
func ResolveAPIKey(settings *models.AppSettings, getenv func(string) string) string {
	if settings != nil && settings.AnthropicAPIKey != "" {
		return settings.AnthropicAPIKey
	}
	return getenv("ANTHROPIC_API_KEY")
}

// MaskSettings returns the client-facing settings shape with the key masked.
func MaskSettings(settings *models.AppSettings) models.MaskedAppSettings {
	return models.MaskedAppSettings{
		AnthropicAPIKey: MaskAPIKey(settings.AnthropicAPIKey),
		HasAPIKey:       settings.AnthropicAPIKey != "",
		UpdatedAt:       settings.UpdatedAt,
	}
}

// MaskAPIKey masks an API key for display: first 7 characters and last 4
// stay visible, the middle is replaced. Short keys are fully masked.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 12 {
		return strings.Repeat("•", 12)
	}
	return key[:7] + strings.Repeat("•", 8) + key[len(key)-4:]
}

// UpdateSettings applies updates to the current settings record and stamps
// the update time. An empty key in the input clears the stored key.
func UpdateSettings(current *models.AppSettings, apiKey string) models.AppSettings {
	updated := *current
	updated.AnthropicAPIKey = apiKey
	updated.UpdatedAt = nowISO()
	return updated
}
