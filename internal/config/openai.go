package config

// GetOpenAIKey returns the OpenAI API key, empty when not configured.
func GetOpenAIKey() string {
	return GetEnvOrDefault("OPENAI_API_KEY", "")
}

// GetOpenAIModel returns the OpenAI chat model identifier.
func GetOpenAIModel() string {
	return GetEnvOrDefault("OPENAI_MODEL", "gpt-4o-mini")
}
