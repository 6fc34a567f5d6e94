// Package config provides configuration management for the description editor.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Storage StorageConfig
	Server  ServerConfig
	// Location is the time zone of reference dates given without one.
	Location *time.Location
	Debug    bool
}

// StorageConfig represents where the catalog and the usage history live.
type StorageConfig struct {
	DataRoot    string
	CatalogPath string
	DBPath      string
}

// ServerConfig represents the HTTP service configuration.
type ServerConfig struct {
	ListenAddr string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	location, err := loadLocation(os.Getenv("DESC_TIMEZONE"))
	if err != nil {
		return nil, fmt.Errorf("invalid DESC_TIMEZONE: %w", err)
	}

	config := &Config{
		Storage: StorageConfig{
			DataRoot:    getEnvOrDefault("DESC_DATA_ROOT", "./data"),
			CatalogPath: os.Getenv("DESC_CATALOG_PATH"),
			DBPath:      os.Getenv("DESC_DB_PATH"),
		},
		Server: ServerConfig{
			ListenAddr: getEnvOrDefault("DESC_LISTEN_ADDR", ":8080"),
		},
		Location: location,
		Debug:    os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate(required ...[]string) error {
	var missing []string

	for _, path := range required {
		if len(path) < 2 {
			continue
		}

		var value string
		switch path[0] {
		case "storage":
			switch path[1] {
			case "dataRoot":
				value = c.Storage.DataRoot
			case "catalogPath":
				value = c.Storage.CatalogPath
			case "dbPath":
				value = c.Storage.DBPath
			}
		case "server":
			switch path[1] {
			case "listenAddr":
				value = c.Server.ListenAddr
			}
		}

		if value == "" {
			missing = append(missing, strings.Join(path, "."))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(name)
}
