package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// MinSecretLength is the shortest JWT signing secret the service accepts.
// A shorter secret is a configuration error and aborts startup.
const MinSecretLength = 32

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	CacheTTL string `yaml:"cache_ttl"`
}

type JWTConfig struct {
	Secret          string `yaml:"secret"`
	Issuer          string `yaml:"issuer"`
	Audience        string `yaml:"audience"`
	ExpirationHours int    `yaml:"expiration_hours"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
}

// Config is the resolved runtime configuration
type Config struct {
	Port          string
	GinMode       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	JWTSecret     string
	JWTIssuer     string
	JWTAudience   string
	TokenTTL      time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads the config file at path (optional) and applies environment
// overrides. It fails when the resulting configuration is unusable, in
// particular when the JWT secret is shorter than MinSecretLength.
func Load(path string) (*Config, error) {
	file := &ConfigFile{}
	if path != "" {
		loaded, err := loadConfigFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load config file: %w", err)
			}
		} else {
			file = loaded
		}
	}

	port := file.App.Port
	if port == 0 {
		port = 8080
	}
	expirationHours := file.JWT.ExpirationHours
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		expirationHours = parsed
	}
	if expirationHours <= 0 {
		expirationHours = 24
	}

	cacheTTL := 5 * time.Minute
	if file.Redis.CacheTTL != "" {
		parsed, err := time.ParseDuration(file.Redis.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("invalid cache TTL: %w", err)
		}
		cacheTTL = parsed
	}

	redisDB := file.Redis.DB
	if v := os.Getenv("REDIS_DB"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		redisDB = parsed
	}

	cfg := &Config{
		Port:          env("PORT", strconv.Itoa(port)),
		GinMode:       env("GIN_MODE", file.App.GinMode),
		DSN:           env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:       redisDB,
		CacheTTL:      cacheTTL,
		JWTSecret:     env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:     env("JWT_ISSUER", file.JWT.Issuer),
		JWTAudience:   env("JWT_AUDIENCE", file.JWT.Audience),
		TokenTTL:      time.Duration(expirationHours) * time.Hour,
	}

	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = "ECommerceApi"
	}
	if cfg.JWTAudience == "" {
		cfg.JWTAudience = "ECommerceApi"
	}

	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is not configured")
	}
	if len(cfg.JWTSecret) < MinSecretLength {
		return nil, fmt.Errorf("JWT secret must be at least %d characters long", MinSecretLength)
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
