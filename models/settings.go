package models

// AppSettings is the single global settings record stored in settings.json.
type AppSettings struct {
	AnthropicAPIKey string `json:"anthropicApiKey"`
	UpdatedAt       string `json:"updatedAt"`
}

// MaskedAppSettings is the settings shape returned to clients, with the API
// key masked for display.
type MaskedAppSettings struct {
	AnthropicAPIKey string `json:"anthropicApiKey"`
	HasAPIKey       bool   `json:"hasApiKey"`
	UpdatedAt       string `json:"updatedAt"`
}
