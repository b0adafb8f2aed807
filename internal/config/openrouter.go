package config

// GetOpenRouterKey returns the OpenRouter API key, empty when not
// configured.
func GetOpenRouterKey() string {
	return GetEnvOrDefault("OPENROUTER_API_KEY", "")
}

// GetOpenRouterBaseURL returns the OpenRouter API base URL.
func GetOpenRouterBaseURL() string {
	return GetEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1")
}

// GetOpenRouterModel returns the OpenRouter model identifier.
func GetOpenRouterModel() string {
	return GetEnvOrDefault("OPENROUTER_MODEL", "meta-llama/llama-3.1-8b-instruct")
}
