package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

// Enabled reports whether a database is configured; without one history is kept in memory only.
func (config *DbServer) Enabled() bool {
	return strings.TrimSpace(config.Host) != ""
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type ExchangeRateAPI struct {
	BaseURL string `mapstructure:"base_url"`
}

type Flags struct {
	Host string `mapstructure:"host"`
}

type Converter struct {
	BaseCurrency  string `mapstructure:"base_currency"`
	DefaultSource string `mapstructure:"default_source"`
	DefaultTarget string `mapstructure:"default_target"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type History struct {
	RetentionHours int `mapstructure:"retention_hours"`
}

type Scheduler struct {
	JobDurationSec int `mapstructure:"job_duration_sec"`
}

type Logging struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type AppConfig struct {
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	DbServer        DbServer        `mapstructure:"db_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	Flags           Flags           `mapstructure:"flags"`
	Converter       Converter       `mapstructure:"converter"`
	Cache           Cache           `mapstructure:"cache"`
	History         History         `mapstructure:"history"`
	Scheduler       Scheduler       `mapstructure:"scheduler"`
	Logging         Logging         `mapstructure:"logging"`
}

// Init reads config.yaml (optional) and environment overrides.
func Init() (*AppConfig, error) {
	return Load("config.yaml")
}

func Load(configFile string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	bindEnv(v)

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("exchange_rate_api.base_url", "https://api.exchangerate-api.com/v4/latest")
	v.SetDefault("flags.host", "https://flagcdn.com")
	v.SetDefault("converter.base_currency", "USD")
	v.SetDefault("converter.default_source", "USD")
	v.SetDefault("converter.default_target", "EUR")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("cache.max_items", 1024)
	v.SetDefault("history.retention_hours", 720)
	v.SetDefault("scheduler.job_duration_sec", 3600)
	v.SetDefault("logging.level", "info")
}

func bindEnv(v *viper.Viper) {
	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// upstream endpoints
	_ = v.BindEnv("exchange_rate_api.base_url", "EXCHANGE_RATE_API_BASE_URL")
	_ = v.BindEnv("flags.host", "FLAGS_HOST")

	_ = v.BindEnv("converter.base_currency", "CONVERTER_BASE_CURRENCY")
	_ = v.BindEnv("converter.default_source", "CONVERTER_DEFAULT_SOURCE")
	_ = v.BindEnv("converter.default_target", "CONVERTER_DEFAULT_TARGET")

	_ = v.BindEnv("cache.max_items", "CACHE_MAX_ITEMS")
	_ = v.BindEnv("history.retention_hours", "HISTORY_RETENTION_HOURS")
	_ = v.BindEnv("scheduler.job_duration_sec", "SCHEDULER_JOB_DURATION_SEC")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("logging.file", "LOG_FILE")
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
