// Package config loads the process configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is everything the server needs at startup. Host names used for
// routing decisions live here and are passed down explicitly, never read
// from ambient process state by the core.
type Config struct {
	ListenAddr  string `yaml:"listenAddr"`
	AccountHost string `yaml:"accountHost"`
	KeyID       string `yaml:"keyId"`
	AppKey      string `yaml:"appKey"`
	BucketID    string `yaml:"bucketId"`
	BucketName  string `yaml:"bucketName"`

	// FileHost is the content-serving base URL file links point at,
	// distinct from the host serving the listings.
	FileHost string `yaml:"fileHost"`

	// CacheMaxAge is the response cache lifetime in seconds.
	CacheMaxAge int `yaml:"cacheMaxAge"`
}

// Load reads the YAML file named by CONFIG_FILE (if set), then applies
// environment overrides and validates the result.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  ":8080",
		AccountHost: "https://api.backblazeb2.com",
		CacheMaxAge: 86400,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	setFromEnv(&cfg.ListenAddr, "LISTEN_ADDR")
	setFromEnv(&cfg.AccountHost, "B2_ACCOUNT_HOST")
	setFromEnv(&cfg.KeyID, "B2_KEY_ID")
	setFromEnv(&cfg.AppKey, "B2_APP_KEY")
	setFromEnv(&cfg.BucketID, "B2_BUCKET_ID")
	setFromEnv(&cfg.BucketName, "B2_BUCKET_NAME")
	setFromEnv(&cfg.FileHost, "FILE_HOST")

	if v := os.Getenv("CACHE_MAX_AGE"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse CACHE_MAX_AGE: %w", err)
		}
		cfg.CacheMaxAge = age
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"keyId":      c.KeyID,
		"appKey":     c.AppKey,
		"bucketId":   c.BucketID,
		"bucketName": c.BucketName,
		"fileHost":   c.FileHost,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("config: %s is required", name)
		}
	}
	if c.CacheMaxAge <= 0 {
		return fmt.Errorf("config: cacheMaxAge must be positive")
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
