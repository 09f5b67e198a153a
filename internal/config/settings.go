package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings is the runtime configuration of the skill server. Values come from
// (in increasing priority) defaults, an optional config file, the environment
// and command line flags bound by cmd/api.
type Settings struct {
	ExternalURL       string        `mapstructure:"external_url"`
	ContentRoot       string        `mapstructure:"content_root"`
	ListenAddr        string        `mapstructure:"listen_addr"`
	Port              string        `mapstructure:"port"`
	Categories        string        `mapstructure:"categories"`
	LogLevel          string        `mapstructure:"log_level"`
	Production        bool          `mapstructure:"production"`
	AdminToken        string        `mapstructure:"admin_token"`
	RedisAddr         string        `mapstructure:"redis_addr"`
	RedisPassword     string        `mapstructure:"redis_password"`
	RedisDisabled     bool          `mapstructure:"redis_disabled"`
	RateLimit         float64       `mapstructure:"rate_limit"`
	RateBurst         int           `mapstructure:"rate_burst"`
	KeepAliveInterval time.Duration `mapstructure:"keepalive_interval"`
	ExtractWorkers    int           `mapstructure:"extract_workers"`

	// KeepAlive is true only when the external URL was configured explicitly.
	KeepAlive bool `mapstructure:"-"`
}

const DefaultCategories = "QnA=QnA-crawl,Selftest=selftest-crawl-MD,Products=products-crawl"

var envBindings = map[string][]string{
	"external_url":       {"SKILL_EXTERNAL_URL", "RENDER_EXTERNAL_URL"},
	"content_root":       {"SKILL_CONTENT_ROOT"},
	"listen_addr":        {"SKILL_LISTEN_ADDR"},
	"port":               {"PORT"},
	"categories":         {"SKILL_CATEGORIES"},
	"log_level":          {"SKILL_LOG_LEVEL"},
	"production":         {"SKILL_PRODUCTION"},
	"admin_token":        {"SKILL_ADMIN_TOKEN"},
	"redis_addr":         {"SKILL_REDIS_ADDR", "REDIS_ADDR"},
	"redis_password":     {"SKILL_REDIS_PASSWORD", "REDIS_PASSWORD"},
	"redis_disabled":     {"SKILL_REDIS_DISABLED"},
	"rate_limit":         {"SKILL_RATE_LIMIT"},
	"rate_burst":         {"SKILL_RATE_BURST"},
	"keepalive_interval": {"SKILL_KEEPALIVE_INTERVAL"},
	"extract_workers":    {"SKILL_EXTRACT_WORKERS"},
}

// NewViper returns a viper instance with defaults and environment bindings set.
// configFile may be empty.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	v.SetDefault("content_root", DefaultContentRoot)
	v.SetDefault("categories", DefaultCategories)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("redis_addr", RedisAddr)
	v.SetDefault("rate_limit", float64(RATE_LIMIT_PER_SECOND))
	v.SetDefault("rate_burst", BURST_RATE_LIMIT_PER_SECOND)
	v.SetDefault("keepalive_interval", KeepAliveInterval)
	v.SetDefault("extract_workers", DefaultExtractWorker)

	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	return v
}

// Load reads the config file (if one was set) and resolves the settings.
func Load(v *viper.Viper) (Settings, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	s.normalize()
	return s, nil
}

func (s *Settings) normalize() {
	s.ExternalURL = strings.TrimRight(strings.TrimSpace(s.ExternalURL), "/")
	s.KeepAlive = s.ExternalURL != ""
	if s.ExternalURL == "" {
		s.ExternalURL = DefaultExternalURL
	}
	if s.ListenAddr == "" {
		if s.Port != "" {
			s.ListenAddr = ":" + s.Port
		} else {
			s.ListenAddr = ServerListenAddr
		}
	}
	if s.Categories == "" {
		s.Categories = DefaultCategories
	}
	if s.ExtractWorkers < 1 {
		s.ExtractWorkers = 1
	}
	if s.RateLimit <= 0 {
		s.RateLimit = RATE_LIMIT_PER_SECOND
	}
	if s.RateBurst < 1 {
		s.RateBurst = BURST_RATE_LIMIT_PER_SECOND
	}
	if s.KeepAliveInterval <= 0 {
		s.KeepAliveInterval = KeepAliveInterval
	}
}

// HostBase is the absolute prefix every document link starts with.
func (s Settings) HostBase() string {
	return s.ExternalURL + StaticPrefix
}
