//
// Tencent is pleased to support the open source community by making trpc-weather-agent-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-weather-agent-go is licensed under the Apache License Version 2.0.
//
//

// Package config loads process configuration from an optional YAML file
// and the environment. Components receive the loaded structure
// explicitly; nothing reads ambient globals after startup.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend describes one OpenAI-compatible completion endpoint.
type Backend struct {
	// BaseURL is the endpoint URL. Empty means the OpenAI default.
	BaseURL string `yaml:"base_url"`
	// APIKey authenticates against the endpoint.
	APIKey string `yaml:"api_key"`
	// Model is the model name requested from the endpoint.
	Model string `yaml:"model"`
}

// Tool describes how to reach the sidecar tool server.
type Tool struct {
	// Command is the sidecar program. Usually supplied on the command
	// line rather than in the file.
	Command string `yaml:"command"`
	// Args are extra arguments for the sidecar program.
	Args []string `yaml:"args"`
	// Timeout bounds individual tool operations.
	Timeout time.Duration `yaml:"timeout"`
}

// Config is the full process configuration.
type Config struct {
	// LogLevel is one of debug, info, warn, error, fatal.
	LogLevel string `yaml:"log_level"`

	// Locale selects the primary language of prompts: "zh" or "en".
	// Detection always screens both languages.
	Locale string `yaml:"locale"`

	// Chat is the backend answering non-tool turns.
	Chat Backend `yaml:"chat"`

	// Classifier is the backend used for intent classification. Fields
	// left empty inherit from Chat, so a single backend works for both.
	Classifier Backend `yaml:"classifier"`

	// Tool is the sidecar tool server.
	Tool Tool `yaml:"tool"`

	// OpenWeatherAPIKey authenticates the sidecar's provider lookups.
	// Only the weather server reads it.
	OpenWeatherAPIKey string `yaml:"openweather_api_key"`
}

// Load builds the configuration: a .env file is loaded into the
// environment when present, then the YAML file at path (skipped when
// path is empty), then environment variables override file values, and
// finally defaults are filled in.
func Load(path string) (*Config, error) {
	// Missing .env is fine; the environment may be set by other means.
	_ = godotenv.Load()

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

// applyEnv overrides file values with environment variables.
func (c *Config) applyEnv() {
	setIfPresent(&c.LogLevel, "LOG_LEVEL")
	setIfPresent(&c.Locale, "LOCALE")

	setIfPresent(&c.Chat.BaseURL, "OPENAI_BASE_URL")
	setIfPresent(&c.Chat.APIKey, "OPENAI_API_KEY")
	setIfPresent(&c.Chat.Model, "OPENAI_MODEL")

	setIfPresent(&c.Classifier.BaseURL, "CLASSIFIER_BASE_URL")
	setIfPresent(&c.Classifier.APIKey, "CLASSIFIER_API_KEY")
	setIfPresent(&c.Classifier.Model, "CLASSIFIER_MODEL")

	setIfPresent(&c.OpenWeatherAPIKey, "OPENWEATHER_API_KEY")
}

// applyDefaults fills in unset values. The classifier inherits the chat
// backend so that a single endpoint serves both roles.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Locale == "" {
		c.Locale = "zh"
	}
	if c.Classifier.BaseURL == "" {
		c.Classifier.BaseURL = c.Chat.BaseURL
	}
	if c.Classifier.APIKey == "" {
		c.Classifier.APIKey = c.Chat.APIKey
	}
	if c.Classifier.Model == "" {
		c.Classifier.Model = c.Chat.Model
	}
	if c.Tool.Timeout <= 0 {
		c.Tool.Timeout = 30 * time.Second
	}
}

func setIfPresent(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
