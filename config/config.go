package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigPath = "config/config.yaml"
	defaultEnvFile    = ".env"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Weather WeatherConfig `yaml:"weather"`
	Widget  WidgetConfig  `yaml:"widget"`
	Log     LogConfig     `yaml:"log"`
	Observe ObserveConfig `yaml:"observe"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

// ServerConfig timeouts are in seconds.
type ServerConfig struct {
	Port         string `yaml:"port" envconfig:"PORT"`
	ReadTimeout  int    `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout int    `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout  int    `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
}

// WeatherConfig describes the OpenWeatherMap provider. Timeout is in seconds,
// zero means requests wait for the provider indefinitely.
type WeatherConfig struct {
	BaseURL string `yaml:"base_url" envconfig:"BASE_URL"`
	APIKey  string `yaml:"api_key,omitempty" envconfig:"API_KEY"`
	Timeout int    `yaml:"timeout" envconfig:"TIMEOUT"`
}

// WidgetConfig.IdleTTL is in seconds; a widget nobody touched for that long
// is unmounted. Zero keeps widgets until they are deleted. MaxWidgets caps the
// number of mounted widgets, zero means no cap.
type WidgetConfig struct {
	Variant        string            `yaml:"variant" envconfig:"VARIANT"`
	SearchOnLocate bool              `yaml:"search_on_locate" envconfig:"SEARCH_ON_LOCATE"`
	IdleTTL        int               `yaml:"idle_ttl" envconfig:"IDLE_TTL"`
	MaxWidgets     int               `yaml:"max_widgets" envconfig:"MAX_WIDGETS"`
	Icons          map[string]string `yaml:"icons" ignored:"true"`
}

// LogConfig.Level is one of debug, info, warn or error. Entries are always
// JSON encoded.
type LogConfig struct {
	Level string `yaml:"level" envconfig:"LEVEL"`
}

type ObserveConfig struct {
	SentryDSN string `yaml:"sentry_dsn" envconfig:"SENTRY_DSN"`
	ZipkinURL string `yaml:"zipkin_url" envconfig:"ZIPKIN_URL"`
}

// ConfigProvider loads and validates the application configuration.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider reads defaults, then the YAML file, then the environment
// (optionally seeded from a .env file). Later sources win.
type FileConfigProvider struct {
	path    string
	envFile string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:    path,
		envFile: defaultEnvFile,
	}
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(defaultConfigPath))
}

func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := defaultConfig()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	if p.envFile != "" {
		// a missing .env file is the normal case outside local development
		_ = godotenv.Load(p.envFile)
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	return cnf, nil
}

func (p *FileConfigProvider) loadFromFile(cnf *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config: %w", err)
	}

	return nil
}

func (p *FileConfigProvider) Validate(cnf *Config) error {
	switch {
	case strings.TrimSpace(cnf.App.Name) == "":
		return fmt.Errorf("app.name is required")
	case strings.TrimSpace(cnf.Server.Port) == "":
		return fmt.Errorf("server.port is required")
	case cnf.Server.ReadTimeout <= 0:
		return fmt.Errorf("server.read_timeout must be positive")
	case cnf.Server.WriteTimeout <= 0:
		return fmt.Errorf("server.write_timeout must be positive")
	case cnf.Server.IdleTimeout <= 0:
		return fmt.Errorf("server.idle_timeout must be positive")
	case strings.TrimSpace(cnf.Weather.BaseURL) == "":
		return fmt.Errorf("weather.base_url is required")
	case cnf.Weather.Timeout < 0:
		return fmt.Errorf("weather.timeout must not be negative")
	case cnf.Widget.IdleTTL < 0:
		return fmt.Errorf("widget.idle_ttl must not be negative")
	case cnf.Widget.MaxWidgets < 0:
		return fmt.Errorf("widget.max_widgets must not be negative")
	}

	switch cnf.Widget.Variant {
	case VariantClassic, VariantExtended:
	default:
		return fmt.Errorf("widget.variant must be %q or %q, got %q", VariantClassic, VariantExtended, cnf.Widget.Variant)
	}

	switch cnf.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q is not supported", cnf.Log.Level)
	}

	return nil
}

func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-widget",
			Version: "1.0.0",
			Env:     "development",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  120,
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5",
			Timeout: 10,
		},
		Widget: WidgetConfig{
			Variant:    VariantExtended,
			IdleTTL:    1800,
			MaxWidgets: 10000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
