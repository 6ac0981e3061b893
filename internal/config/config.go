package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	BaseURL        string        `mapstructure:"base_url"`
	League         string        `mapstructure:"league"`
	Language       string        `mapstructure:"language"`
	Verbose        bool          `mapstructure:"verbose"`
	TimeoutSeconds int64         `mapstructure:"timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	RaiseErrors    bool          `mapstructure:"raise_errors"`

	UseReplayMode    bool   `mapstructure:"use_replay_mode"`
	ReplayStorePath  string `mapstructure:"replay_store_path"`
	ReplayStoreType  string `mapstructure:"replay_store_type"`
	ReplayRecordMode string `mapstructure:"replay_record_mode"`

	PublishersFile      string `mapstructure:"publishers_file"`
	SnapshotConcurrency int    `mapstructure:"snapshot_concurrency"`
}

var keys = []string{
	"app_name", "app_env", "log_level",
	"base_url", "league", "language", "verbose", "timeout_seconds", "raise_errors",
	"use_replay_mode", "replay_store_path", "replay_store_type", "replay_record_mode",
	"publishers_file", "snapshot_concurrency",
}

// Load reads configuration from an optional config file, configs/.env and
// NINJA_* environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "ninja-client")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("base_url", "https://poe.ninja/api/data")
	v.SetDefault("league", "Sanctum")
	v.SetDefault("language", "en")
	v.SetDefault("verbose", false)
	v.SetDefault("timeout_seconds", 300)
	v.SetDefault("raise_errors", false)
	v.SetDefault("use_replay_mode", false)
	v.SetDefault("replay_store_path", "out/apiclient.vcr")
	v.SetDefault("replay_store_type", "yaml")
	v.SetDefault("replay_record_mode", "new_episodes")
	v.SetDefault("publishers_file", "")
	v.SetDefault("snapshot_concurrency", 4)

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix("ninja")
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", k, err)
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("invalid base_url (must not be empty)")
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	if cfg.SnapshotConcurrency <= 0 {
		return nil, fmt.Errorf("invalid snapshot_concurrency (must be positive)")
	}

	switch strings.ToLower(strings.TrimSpace(cfg.ReplayStoreType)) {
	case "yaml", "bbolt":
	default:
		return nil, fmt.Errorf("unsupported replay_store_type %q", cfg.ReplayStoreType)
	}

	switch strings.ToLower(strings.TrimSpace(cfg.ReplayRecordMode)) {
	case "new_episodes", "none":
	default:
		return nil, fmt.Errorf("unsupported replay_record_mode %q", cfg.ReplayRecordMode)
	}

	return &cfg, nil
}
