package app

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	server "github.com/GodfreyDev/ChatGame"
	"github.com/GodfreyDev/ChatGame/logging"
)

// Config is the full server configuration. A YAML file supplies the base
// values and environment variables override individual fields.
type Config struct {
	Addr             string         `yaml:"addr"`
	TickRate         int            `yaml:"tickRate"`
	EnemyCount       int            `yaml:"enemyCount"`
	ItemCount        int            `yaml:"itemCount"`
	ValidateMovement *bool          `yaml:"validateMovement"`
	Seed             int64          `yaml:"seed"`
	Logging          logging.Config `yaml:"logging"`
}

// DefaultAppConfig mirrors the hub defaults with the standard listen address.
func DefaultAppConfig() Config {
	hub := server.DefaultHubConfig()
	return Config{
		Addr:       ":8080",
		TickRate:   hub.TickRate,
		EnemyCount: hub.EnemyCount,
		ItemCount:  hub.ItemCount,
		Logging:    logging.DefaultConfig(),
	}
}

// LoadConfig reads the YAML file named by CONFIG_FILE (or the given fallback
// path) when it exists, then applies environment overrides. A missing file is
// not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultAppConfig()

	if env := os.Getenv("CONFIG_FILE"); env != "" {
		path = env
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if raw := os.Getenv("ADDR"); raw != "" {
		cfg.Addr = raw
	}
	if raw := os.Getenv("TICK_RATE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.TickRate = value
		}
	}
	if raw := os.Getenv("ENEMY_COUNT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.EnemyCount = value
		}
	}
	if raw := os.Getenv("ITEM_COUNT"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value >= 0 {
			cfg.ItemCount = value
		}
	}
	if raw := os.Getenv("VALIDATE_MOVEMENT"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			cfg.ValidateMovement = &value
		}
	}
	if raw := os.Getenv("WORLD_SEED"); raw != "" {
		if value, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = value
		}
	}
}

// HubConfig translates the app configuration into hub tuning.
func (c Config) HubConfig() server.HubConfig {
	hub := server.DefaultHubConfig()
	if c.TickRate > 0 {
		hub.TickRate = c.TickRate
	}
	hub.EnemyCount = c.EnemyCount
	hub.ItemCount = c.ItemCount
	if c.ValidateMovement != nil {
		hub.ValidateMovement = *c.ValidateMovement
	}
	hub.Seed = c.Seed
	return hub
}
