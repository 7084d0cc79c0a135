package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string `validate:"oneof=DEBUG INFO WARN ERROR"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string

	// ModernRules enables race bonuses on every harvest definition
	ModernRules bool

	// RNGSeed seeds the harvest random source when RNGSeedSet is true
	RNGSeed    int64
	RNGSeedSet bool

	DefinitionCacheSize int `validate:"gte=1"`

	Sim SimConfig
}

// SimConfig drives the harvest simulator
type SimConfig struct {
	Workers     int `validate:"gte=1"`
	Actors      int `validate:"gte=1"`
	Attempts    int `validate:"gte=1"`
	StepMinutes int `validate:"gte=1"`
	// MetricsFile receives the harvest metrics in the Prometheus text format when set
	MetricsFile string
}

// Step is the simulated time between two rounds of attempts
func (s SimConfig) Step() time.Duration {
	return time.Duration(s.StepMinutes) * time.Minute
}

// Load loads the configuration from environment variables and validates it
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:            strings.ToUpper(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:           strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:         getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:         getEnv(EnvServiceName, DefaultServiceName),
		Version:             getEnv(EnvVersion, DefaultVersion),
		ModernRules:         getEnvAsBool(EnvModernRules, false),
		DefinitionCacheSize: getEnvAsInt(EnvDefinitionCacheSize, DefaultDefinitionCacheSize),
		Sim: SimConfig{
			Workers:     getEnvAsInt(EnvSimWorkers, DefaultSimWorkers),
			Actors:      getEnvAsInt(EnvSimActors, DefaultSimActors),
			Attempts:    getEnvAsInt(EnvSimAttempts, DefaultSimAttempts),
			StepMinutes: getEnvAsInt(EnvSimStepMinutes, DefaultSimStepMinutes),
			MetricsFile: getEnv(EnvSimMetricsFile, ""),
		},
	}

	if raw, ok := os.LookupEnv(EnvRNGSeed); ok && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, invalidValue(EnvRNGSeed, raw, err)
		}
		cfg.RNGSeed = seed
		cfg.RNGSeedSet = true
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether the environment is a development one
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// Seed returns the configured seed, or one derived from now
func (c *Config) Seed(now time.Time) int64 {
	if c.RNGSeedSet {
		return c.RNGSeed
	}
	return now.UnixNano()
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
