package config

// GetLogLevel returns the zerolog level name.
func GetLogLevel() string {
	return GetEnvOrDefault("LOG_LEVEL", "info")
}
