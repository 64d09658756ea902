// Package config loads the process configuration for TareasWebService.
package config

import (
	"errors"
	"os"
	"strings"
)

// Config holds everything the composition step needs at startup. It is
// constructed once in main and passed down; there is no package-level state.
type Config struct {
	Port           string
	MongoURI       string
	Database       string
	Collection     string
	AllowedOrigins []string
}

// Load reads the configuration from the environment. MONGO_URI is required;
// the rest falls back to local-development defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:       os.Getenv("PORT"),
		MongoURI:   os.Getenv("MONGO_URI"),
		Database:   os.Getenv("MONGO_DATABASE"),
		Collection: os.Getenv("MONGO_COLLECTION"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.MongoURI == "" {
		return Config{}, errors.New("MONGO_URI is required")
	}
	if cfg.Database == "" {
		cfg.Database = "tareasdb"
	}
	if cfg.Collection == "" {
		cfg.Collection = "tasks"
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
			}
		}
	}
	return cfg, nil
}
