package config

// GetPort returns the HTTP listen port.
func GetPort() string {
	return GetEnvOrDefault("PORT", "3000")
}

// GetPublicDir returns the directory the browser client is served from.
func GetPublicDir() string {
	return GetEnvOrDefault("PUBLIC_DIR", "./public")
}
