package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		LogLevel:            "INFO",
		LogFormat:           "text",
		Environment:         "dev",
		ServiceName:         DefaultServiceName,
		RNGSeed:             1,
		RNGSeedSet:          true,
		DefinitionCacheSize: 16,
		Sim:                 SimConfig{Workers: 2, Actors: 4, Attempts: 10, StepMinutes: 1},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))

	cfg := validConfig()
	cfg.Sim.Workers = 0
	cfg.LogFormat = "yaml"

	err := Validate(cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "Config.Sim.Workers failed gte")
	assert.Contains(t, err.Error(), "Config.LogFormat failed oneof")
}

func TestValidateWithWarnings(t *testing.T) {
	t.Run("clean config has no warnings", func(t *testing.T) {
		warnings, err := ValidateWithWarnings(validConfig())
		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("suspicious settings warn", func(t *testing.T) {
		cfg := validConfig()
		cfg.RNGSeedSet = false
		cfg.Environment = "prod"
		cfg.LogLevel = "DEBUG"
		cfg.Sim.Workers = 10

		warnings, err := ValidateWithWarnings(cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{WarnUnseededRNG, WarnDebugInProd, WarnWorkersExceedAct}, warnings)
	})

	t.Run("invalid config errors before warnings", func(t *testing.T) {
		cfg := validConfig()
		cfg.ServiceName = ""

		warnings, err := ValidateWithWarnings(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, warnings)
	})
}
