package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sleeptight/club-backend/internal/venue"
)

// Config application configuration, loaded from a YAML file with
// environment variable overrides on top.
type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	JWT struct {
		Secret    string `yaml:"secret"`
		ExpiresIn string `yaml:"expires_in"` // Go duration string, e.g. "24h"
	} `yaml:"jwt"`

	Venue struct {
		Timezone string `yaml:"timezone"`
	} `yaml:"venue"`

	Admin struct {
		Token string `yaml:"token"`
	} `yaml:"admin"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// Load reads the YAML config at path, applies env overrides and defaults
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		c.Database.Path = v
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		c.Venue.Timezone = v
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWT.Secret = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Server.Env == "" {
		c.Server.Env = "local"
	}
	if c.Database.Path == "" {
		c.Database.Path = "data/club.db"
	}
	if c.Venue.Timezone == "" {
		c.Venue.Timezone = venue.DefaultTimezone
	}
	if c.JWT.ExpiresIn == "" {
		c.JWT.ExpiresIn = "24h"
	}
	if c.Redis.Port == 0 {
		c.Redis.Port = 6379
	}
	if c.Redis.PoolSize == 0 {
		c.Redis.PoolSize = 10
	}
}

// JWTExpiry parses the configured token lifetime, falling back to 24h
func (c *Config) JWTExpiry() time.Duration {
	d, err := time.ParseDuration(c.JWT.ExpiresIn)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// Location resolves the configured venue timezone
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Venue.Timezone)
}

// IsDevelopment reports whether the app runs in a development env
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "local" || c.Server.Env == "development" || c.Server.Env == "dev"
}
