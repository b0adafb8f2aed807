package config

import "os"

// GetEnvOrDefault returns the value of an environment variable or a
// default value when unset.
func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
