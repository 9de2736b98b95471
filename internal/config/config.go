package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Feed     FeedConfig     `mapstructure:"feed"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Name     string `mapstructure:"name"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// FeedConfig tunes the upstream people-feed fetch loop.
type FeedConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	PageSize            int           `mapstructure:"page_size"`
	IncludeInactive     bool          `mapstructure:"include_inactive"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	PauseTime           time.Duration `mapstructure:"pause_time"`
	RetriggerPauseTime  time.Duration `mapstructure:"retrigger_pause_time"`
	MaxRetries          int           `mapstructure:"max_retries"`
	ChangedSinceDefault string        `mapstructure:"changed_since_default"`
	SchedulerName       string        `mapstructure:"scheduler_name"`
	RoleNames           []string      `mapstructure:"role_names"`
}

// DefaultChangedSince parses the configured first-run watermark.
func (c *FeedConfig) DefaultChangedSince() (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", c.ChangedSinceDefault)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid feed.changed_since_default %q: %w", c.ChangedSinceDefault, err)
	}
	return parsed, nil
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration with precedence: env > config file > defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "judicial_sync")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("feed.base_url", "")
	v.SetDefault("feed.page_size", 50)
	v.SetDefault("feed.include_inactive", true)
	v.SetDefault("feed.request_timeout", "30s")
	v.SetDefault("feed.pause_time", "2s")
	v.SetDefault("feed.retrigger_pause_time", "1s")
	v.SetDefault("feed.max_retries", 60)
	v.SetDefault("feed.changed_since_default", "2015-01-01")
	v.SetDefault("feed.scheduler_name", "judicial-people-scheduler")
	v.SetDefault("feed.role_names", []string{
		"Magistrate",
		"Advisory Committee Member - Magistrate",
		"Circuit Judge",
		"District Judge",
		"Deputy District Judge",
		"High Court Judge",
		"Recorder",
		"Tribunal Judge",
		"Tribunal Member",
	})

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("JUDSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		// No config file: defaults plus env vars.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Feed.BaseURL == "" {
		return fmt.Errorf("config validation: feed.base_url is required")
	}
	if c.Feed.PageSize <= 0 {
		return fmt.Errorf("config validation: feed.page_size must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config validation: server.port must be between 1 and 65535")
	}
	if _, err := c.Feed.DefaultChangedSince(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	return nil
}
