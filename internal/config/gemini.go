package config

// GetGeminiKey returns the Gemini API key, empty when not configured.
func GetGeminiKey() string {
	return GetEnvOrDefault("GEMINI_API_KEY", "")
}

// GetGeminiModel returns the Gemini model identifier.
func GetGeminiModel() string {
	return GetEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-exp")
}
