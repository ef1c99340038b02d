package config

import (
	"os"
	"strconv"
)

// ApplyEnv overrides fields from environment variables:
// PORT, UPLOAD_DIR, MAX_FILE_SIZE_MB, LOG_LEVEL and LOG_FORMAT.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnv() {
	c.Port = getEnvInt("PORT", c.Port)
	c.UploadDir = getEnvString("UPLOAD_DIR", c.UploadDir)
	c.MaxFileSizeMB = getEnvInt("MAX_FILE_SIZE_MB", c.MaxFileSizeMB)
	c.LogLevel = getEnvString("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnvString("LOG_FORMAT", c.LogFormat)
}

func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
