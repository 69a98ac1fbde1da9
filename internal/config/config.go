package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Image     ImageConfig     `mapstructure:"image"`
	Store     StoreConfig     `mapstructure:"store"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scraper   ScraperConfig   `mapstructure:"scraper"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type GeneratorConfig struct {
	DefaultProvider string            `mapstructure:"default_provider"`
	RequestTimeout  time.Duration     `mapstructure:"request_timeout"`
	HuggingFace     HuggingFaceConfig `mapstructure:"huggingface"`
	Gemini          GeminiConfig      `mapstructure:"gemini"`
}

type HuggingFaceConfig struct {
	Token string `mapstructure:"token"`
	Model string `mapstructure:"model"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type ImageConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Strategy string `mapstructure:"strategy"`
	Token    string `mapstructure:"token"`
	Dir      string `mapstructure:"dir"`
}

type StoreConfig struct {
	Driver       string `mapstructure:"driver"`
	Path         string `mapstructure:"path"`
	HistoryLimit int    `mapstructure:"history_limit"`
}

type RedisConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Password          string `mapstructure:"password"`
	DB                int    `mapstructure:"db"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute"`
	Burst             int    `mapstructure:"burst"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether rate limiting should be wired at all
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type ScraperConfig struct {
	Timeout   time.Duration `mapstructure:"timeout"`
	MaxLength int           `mapstructure:"max_length"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./configs/config.yaml"
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	v.AutomaticEnv()
	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "120s")
	v.SetDefault("server.shutdown_timeout", "15s")

	// Auth
	v.SetDefault("auth.token_ttl", "1h")

	// Generator
	v.SetDefault("generator.default_provider", "huggingface")
	v.SetDefault("generator.request_timeout", "30s")
	v.SetDefault("generator.huggingface.model", "mistralai/Mistral-7B-Instruct-v0.2")
	v.SetDefault("generator.gemini.model", "gemini-1.5-flash")

	// Image
	v.SetDefault("image.enabled", true)
	v.SetDefault("image.strategy", "stock")
	v.SetDefault("image.dir", "static/generated")

	// Store
	v.SetDefault("store.driver", "memory")
	v.SetDefault("store.path", "content-studio.db")
	v.SetDefault("store.history_limit", 50)

	// Redis (rate limiting, optional)
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.requests_per_minute", 60)
	v.SetDefault("redis.burst", 10)

	// Scraper
	v.SetDefault("scraper.timeout", "30s")
	v.SetDefault("scraper.max_length", 3000)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", "SERVER_PORT")

	// Auth
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_ttl", "TOKEN_TTL")

	// Text generation credentials
	v.BindEnv("generator.default_provider", "GENERATOR_PROVIDER")
	v.BindEnv("generator.huggingface.token", "HUGGINGFACE_TOKEN")
	v.BindEnv("generator.gemini.api_key", "GEMINI_API_KEY")

	// Image generation
	v.BindEnv("image.enabled", "USE_IMAGE_GENERATION")
	v.BindEnv("image.strategy", "IMAGE_STRATEGY")
	v.BindEnv("image.token", "HUGGINGFACE_IMAGE_TOKEN")

	// Store
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.path", "STORE_PATH")

	// Redis
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
}
