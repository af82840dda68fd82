package config

import (
	"os"
	"path/filepath"
	"strings"
)

// GetVersion returns the service version from the environment or the VERSION file
func GetVersion() string {
	// CI/CD sets APP_VERSION on deployed builds
	if envVersion := os.Getenv("APP_VERSION"); envVersion != "" {
		return envVersion
	}

	for _, versionPath := range []string{"VERSION", filepath.Join("..", "VERSION")} {
		if content, err := os.ReadFile(versionPath); err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	return "0.1.0"
}
