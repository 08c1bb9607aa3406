package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the application configuration for both the client and the dev server.
type Config struct {
	App      AppConfig    `mapstructure:"app"`
	Client   ClientConfig `mapstructure:"client"`
	Server   ServerConfig `mapstructure:"server"`
	Quota    QuotaConfig  `mapstructure:"quota"`
	Redis    RedisConfig  `mapstructure:"redis"`
	LogLevel string       `mapstructure:"log_level"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ClientConfig holds settings for the terminal client.
type ClientConfig struct {
	BaseURL          string `mapstructure:"base_url"`
	RecipeLimit      int    `mapstructure:"recipe_limit"`
	PlaceholderCards int    `mapstructure:"placeholder_cards"`
	ExportPath       string `mapstructure:"export_path"`
}

// ServerConfig holds settings for the dev server.
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// QuotaConfig holds the dev server's daily-usage and paywall settings.
type QuotaConfig struct {
	DailyLimit    int    `mapstructure:"daily_limit"`
	PaywallAmount string `mapstructure:"paywall_amount"`
	CheckoutBase  string `mapstructure:"checkout_base"`
}

// RedisConfig holds the optional redis quota-store settings.
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// LoadConfig reads .env and the environment into a validated Config.
func LoadConfig() (*Config, error) {
	// .env is optional; a missing file falls through to real env vars.
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.BindEnv("client.base_url", "FRIDGECHEF_BASE_URL")
	viper.BindEnv("client.recipe_limit", "FRIDGECHEF_RECIPE_LIMIT")
	viper.BindEnv("client.export_path", "FRIDGECHEF_EXPORT_PATH")
	viper.BindEnv("server.port", "PORT")
	viper.BindEnv("quota.daily_limit", "DAILY_LIMIT")
	viper.BindEnv("quota.paywall_amount", "PAYWALL_AMOUNT_KES")
	viper.BindEnv("quota.checkout_base", "CHECKOUT_BASE")
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "fridgechef")

	viper.SetDefault("client.base_url", "http://localhost:8080/api")
	viper.SetDefault("client.recipe_limit", 3)
	viper.SetDefault("client.placeholder_cards", 3)
	viper.SetDefault("client.export_path", "recipes.html")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	viper.SetDefault("quota.daily_limit", 5)
	viper.SetDefault("quota.paywall_amount", "50")
	viper.SetDefault("quota.checkout_base", "https://pay.intasend.com/checkout")

	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.addr", "localhost:6379")

	viper.SetDefault("log_level", "info")
}

func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Client.BaseURL == "" {
		return fmt.Errorf("client base url is required")
	}
	if config.Client.RecipeLimit <= 0 {
		return fmt.Errorf("invalid client recipe limit")
	}
	if config.Client.PlaceholderCards <= 0 {
		return fmt.Errorf("invalid placeholder card count")
	}

	if config.Quota.DailyLimit <= 0 {
		return fmt.Errorf("invalid daily limit")
	}

	if config.Redis.Enabled && config.Redis.Addr == "" {
		return fmt.Errorf("redis addr is required when redis is enabled")
	}

	return nil
}
