package config

import (
	"fmt"
	"net/url"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config captures the runtime configuration for the site.
type Config struct {
	Server        ServerConfig        `mapstructure:"server" yaml:"server"`
	Site          SiteConfig          `mapstructure:"site" yaml:"site"`
	Redis         RedisConfig         `mapstructure:"redis" yaml:"redis"`
	RateLimits    RateLimitConfig     `mapstructure:"rate_limits" yaml:"rate_limits"`
	Observability ObservabilityConfig `mapstructure:"observability" yaml:"observability"`
	Log           LogConfig           `mapstructure:"log" yaml:"log"`
}

type ServerConfig struct {
	ListenAddr            string        `mapstructure:"listen_addr" yaml:"listen_addr"`
	BodyLimitKB           int           `mapstructure:"body_limit_kb" yaml:"body_limit_kb"`
	ReadTimeout           time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	WriteTimeout          time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`
	IdleTimeout           time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	GracefulShutdownDelay time.Duration `mapstructure:"graceful_shutdown_delay" yaml:"graceful_shutdown_delay"`
}

// SiteConfig holds presentation settings. BaseURL is only used to build
// absolute links (canonical tags, sitemap).
type SiteConfig struct {
	BaseURL      string `mapstructure:"base_url" yaml:"base_url"`
	Name         string `mapstructure:"name" yaml:"name"`
	Description  string `mapstructure:"description" yaml:"description"`
	ContactEmail string `mapstructure:"contact_email" yaml:"contact_email"`
}

// RedisConfig is optional; an empty URL disables submission throttling.
type RedisConfig struct {
	URL      string `mapstructure:"url" yaml:"url"`
	DB       int    `mapstructure:"db" yaml:"db"`
	PoolSize int    `mapstructure:"pool_size" yaml:"pool_size"`
}

// Enabled reports whether a Redis URL was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.URL) != ""
}

type RateLimitConfig struct {
	SubmissionsPerMinute int `mapstructure:"submissions_per_minute" yaml:"submissions_per_minute"`
}

type ObservabilityConfig struct {
	OTLPEndpoint  string `mapstructure:"otlp_endpoint" yaml:"otlp_endpoint"`
	EnableOTLP    bool   `mapstructure:"enable_otlp" yaml:"enable_otlp"`
	EnableMetrics bool   `mapstructure:"enable_metrics" yaml:"enable_metrics"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Options controls the config loader behavior.
type Options struct {
	ConfigFile string
	EnvFile    string
}

// Load returns the merged configuration sourced from YAML and environment variables.
func Load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		_ = godotenv.Load(opts.EnvFile)
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	setDefaults(v)

	explicitFile := false
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		explicitFile = true
	} else if cfg := os.Getenv("JUDGMENT_CONFIG_FILE"); cfg != "" {
		v.SetConfigFile(cfg)
		explicitFile = true
	}

	if !explicitFile {
		v.SetConfigName("site")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("JUDGMENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("site.base_url", "JUDGMENT_SITE_BASE_URL", "SITE_URL"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viper.DecodeHook(timeStringToDurationHook())); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate ensures required values are set and normalizes the rest.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.ListenAddr) == "" {
		return fmt.Errorf("server.listen_addr must be provided")
	}
	if c.Server.BodyLimitKB <= 0 {
		return fmt.Errorf("server.body_limit_kb must be > 0")
	}
	if c.Server.GracefulShutdownDelay <= 0 {
		c.Server.GracefulShutdownDelay = 5 * time.Second
	}

	if err := c.Site.validate(); err != nil {
		return err
	}

	if c.Redis.PoolSize < 0 {
		return fmt.Errorf("redis.pool_size must be >= 0")
	}
	if c.RateLimits.SubmissionsPerMinute < 0 {
		return fmt.Errorf("rate_limits.submissions_per_minute must be >= 0")
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "":
		c.Log.Level = "info"
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "":
		c.Log.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json")
	}
	return nil
}

func (s *SiteConfig) validate() error {
	raw := strings.TrimSpace(s.BaseURL)
	if raw == "" {
		return fmt.Errorf("site.base_url must be provided")
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid site.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("site.base_url must use http or https")
	}
	if parsed.Host == "" {
		return fmt.Errorf("site.base_url must include a host")
	}
	s.BaseURL = strings.TrimRight(raw, "/")
	if strings.TrimSpace(s.Name) == "" {
		s.Name = "Judgment Tools"
	}
	s.ContactEmail = strings.TrimSpace(s.ContactEmail)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.body_limit_kb", 64)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.graceful_shutdown_delay", "5s")

	v.SetDefault("site.base_url", "http://localhost:8080")
	v.SetDefault("site.name", "Judgment Tools")
	v.SetDefault("site.description", "Deterministic tools that reduce thinking.")
	v.SetDefault("site.contact_email", "")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("rate_limits.submissions_per_minute", 30)

	v.SetDefault("observability.enable_otlp", false)
	v.SetDefault("observability.enable_metrics", true)
	v.SetDefault("observability.otlp_endpoint", "http://localhost:4317")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func timeStringToDurationHook() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != reflect.TypeOf(time.Duration(0)) {
			return data, nil
		}

		switch v := data.(type) {
		case time.Duration:
			return v, nil
		case string:
			d, err := time.ParseDuration(v)
			if err != nil {
				return nil, err
			}
			return d, nil
		default:
			return nil, fmt.Errorf("cannot decode %T into time.Duration", data)
		}
	}
}

// Redacted returns a copy safe to print: any password in the Redis URL is
// masked.
func (c Config) Redacted() Config {
	out := c
	if parsed, err := url.Parse(c.Redis.URL); err == nil && parsed.User != nil {
		out.Redis.URL = parsed.Redacted()
	}
	return out
}
