package config

// GetAIProvider returns the active completion backend, one of "gemini",
// "openai" or "openrouter".
func GetAIProvider() string {
	return GetEnvOrDefault("AI_PROVIDER", "gemini")
}
