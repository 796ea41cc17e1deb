/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads service configuration from env files, YAML and the
// process environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries everything the catalog services need at startup.
type Config struct {
	// TableName is the DynamoDB table holding the movie partition.
	TableName string `yaml:"tableName"`

	// TMDBAPIKey authenticates calls to the metadata provider.
	TMDBAPIKey string `yaml:"tmdbApiKey"`

	AWSRegion    string `yaml:"awsRegion"`
	AWSAccessKey string `yaml:"awsAccessKey"`
	AWSSecretKey string `yaml:"awsSecretKey"`

	ListenAddr string `yaml:"listenAddr"`
	LogLevel   string `yaml:"logLevel"`
}

// Load assembles configuration from three layers: a .env file if present,
// an optional YAML file named by MOVIECATALOG_CONFIG, and process environment
// variables. Environment variables win over the YAML layer. Missing required
// keys are reported together in a single error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AWSRegion:  "us-east-1",
		ListenAddr: ":8080",
		LogLevel:   "info",
	}

	if path := os.Getenv("MOVIECATALOG_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %q: %w", path, err)
		}
	}

	overlayEnv(&cfg.TableName, "TABLE_NAME")
	overlayEnv(&cfg.TMDBAPIKey, "TMDB_API_KEY")
	overlayEnv(&cfg.AWSRegion, "AWS_REGION")
	overlayEnv(&cfg.AWSAccessKey, "AWS_ACCESS_KEY")
	overlayEnv(&cfg.AWSSecretKey, "AWS_SECRET_ACCESS_KEY")
	overlayEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	overlayEnv(&cfg.LogLevel, "LOG_LEVEL")

	var missing []string
	if cfg.TableName == "" {
		missing = append(missing, "TABLE_NAME")
	}
	if cfg.TMDBAPIKey == "" {
		missing = append(missing, "TMDB_API_KEY")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

func overlayEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
