package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                  = "5000"
	DefaultAccessTokenExpiryMin  = 60
	DefaultRefreshTokenExpiryMin = 10080
	DefaultBcryptCost            = 10
	DefaultSeedSampleData        = true
	DefaultLogLevel              = "info"
	DefaultLogFormat             = "json"
	DefaultCORSAllowOrigins      = "*"
	DefaultShutdownTimeoutSec    = 10
)

type Config struct {
	Env                string
	Port               string
	AccessTokenSecret  string
	RefreshTokenSecret string
	AccessExpiryMin    int
	RefreshExpiryMin   int
	BcryptCost         int
	SeedSampleData     bool
	LogLevel           string
	LogFormat          string
	CORSAllowOrigins   string
	ShutdownTimeoutSec int
}

// Load reads configuration from the process environment, falling back to
// config/.env.dev (or config/.env.prod when ENV=production) and then to the
// defaults above. Real environment variables always win over file values.
func Load() *Config {
	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	l := newLoader(envFile(env))

	cfg := &Config{
		Env:                env,
		Port:               l.getEnv("PORT", DefaultPort),
		AccessTokenSecret:  l.mustGetEnv("ACCESS_TOKEN_SECRET"),
		RefreshTokenSecret: l.mustGetEnv("REFRESH_TOKEN_SECRET"),
		AccessExpiryMin:    l.getEnvAsInt("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin),
		RefreshExpiryMin:   l.getEnvAsInt("REFRESH_TOKEN_EXPIRY", DefaultRefreshTokenExpiryMin),
		BcryptCost:         l.getEnvAsInt("BCRYPT_COST", DefaultBcryptCost),
		SeedSampleData:     l.getEnvAsBool("SEED_SAMPLE_DATA", DefaultSeedSampleData),
		LogLevel:           l.getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:          l.getEnv("LOG_FORMAT", DefaultLogFormat),
		CORSAllowOrigins:   l.getEnv("CORS_ALLOW_ORIGINS", DefaultCORSAllowOrigins),
		ShutdownTimeoutSec: l.getEnvAsInt("SHUTDOWN_TIMEOUT", DefaultShutdownTimeoutSec),
	}

	// A shared secret would let a refresh token pass as an access token.
	if cfg.AccessTokenSecret == cfg.RefreshTokenSecret {
		log.Fatalf("Invalid config: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}

	return cfg
}

func envFile(env string) string {
	name := ".env.dev"
	if env == "production" {
		name = ".env.prod"
	}
	return filepath.Join("config", name)
}

type loader struct {
	file map[string]string
}

func newLoader(path string) *loader {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Could not read %s, using environment only: %v", path, err)
		}
		values = map[string]string{}
	}
	return &loader{file: values}
}

func (l *loader) lookup(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return l.file[key]
}

func (l *loader) getEnv(key string, defaultVal string) string {
	if value := l.lookup(key); value != "" {
		return value
	}
	return defaultVal
}

func (l *loader) mustGetEnv(key string) string {
	if value := l.lookup(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func (l *loader) getEnvAsInt(key string, defaultVal int) int {
	valStr := l.lookup(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}

func (l *loader) getEnvAsBool(key string, defaultVal bool) bool {
	valStr := l.lookup(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %t", key, defaultVal)
		return defaultVal
	}
	return val
}
