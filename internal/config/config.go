package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"folio.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Site   SiteConfig   `mapstructure:"site"`
	Log    LogConfig    `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SiteConfig describes where the hosting page and data document live
type SiteConfig struct {
	Dir      string `mapstructure:"dir"`       // directory holding the page and its assets
	Page     string `mapstructure:"page"`      // hosting page, relative to Dir
	DataPath string `mapstructure:"data_path"` // data document, relative to the page
	// DataBaseURL, when set, fetches the data document over the network
	// relative to this address instead of reading it from Dir.
	DataBaseURL   string `mapstructure:"data_base_url"`
	DefaultFilter string `mapstructure:"default_filter"`
	// Assets are files under Dir the page links as static/<name>
	Assets []string `mapstructure:"assets"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string            `mapstructure:"level"`
	Format string            `mapstructure:"format"` // "console" or "json"
	Output []LogOutputConfig `mapstructure:"output"`
	Levels map[string]string `mapstructure:"levels"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type"` // "console" or "file"
	Enabled bool            `mapstructure:"enabled"`
	Path    string          `mapstructure:"path"`
	Rotate  LogRotateConfig `mapstructure:"rotate"`
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// Load reads configuration from an optional file and PORTFOLIO_* environment
// variables on top of the defaults
func Load(configPath string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr: ":8080",
		},
		Site: SiteConfig{
			Dir:           "static",
			Page:          "index.html",
			DataPath:      "data/portfolio.json",
			DefaultFilter: string(models.DefaultFilter),
			Assets:        []string{"style.css"},
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{Type: "console", Enabled: true},
			},
			Levels: map[string]string{
				"loader": "INFO",
				"render": "WARN",
				"api":    "INFO",
			},
		},
	}
}

// AutomaticEnv only resolves keys viper already knows, so the scalar keys
// are registered explicitly.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"server.addr",
		"site.dir",
		"site.page",
		"site.data_path",
		"site.data_base_url",
		"site.default_filter",
		"site.assets",
		"log.level",
		"log.format",
	} {
		_ = v.BindEnv(key)
	}
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if c.Site.Page == "" {
		return errors.New("site.page is required")
	}
	if c.Site.DataPath == "" {
		return errors.New("site.data_path is required")
	}
	if _, ok := models.ParseFilter(c.Site.DefaultFilter); !ok {
		return fmt.Errorf("site.default_filter %q is not one of %v", c.Site.DefaultFilter, models.Filters)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format %q must be console or json", c.Log.Format)
	}
	return nil
}
