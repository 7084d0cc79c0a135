package config

// Environment variable names
const (
	EnvLogLevel            = "LOG_LEVEL"
	EnvLogFormat           = "LOG_FORMAT"
	EnvEnvironment         = "ENVIRONMENT"
	EnvServiceName         = "SERVICE_NAME"
	EnvVersion             = "VERSION"
	EnvModernRules         = "SHARD_MODERN_RULES"
	EnvRNGSeed             = "HARVEST_RNG_SEED"
	EnvDefinitionCacheSize = "DEFINITION_CACHE_SIZE"
	EnvSimWorkers          = "SIM_WORKERS"
	EnvSimActors           = "SIM_ACTORS"
	EnvSimAttempts         = "SIM_ATTEMPTS"
	EnvSimStepMinutes      = "SIM_STEP_MINUTES"
	EnvSimMetricsFile      = "SIM_METRICS_FILE"
)

// Defaults
const (
	DefaultLogLevel            = "INFO"
	DefaultLogFormat           = "text"
	DefaultEnvironment         = "dev"
	DefaultServiceName         = "shardharvest"
	DefaultVersion             = "dev"
	DefaultDefinitionCacheSize = 256
	DefaultSimWorkers          = 4
	DefaultSimActors           = 32
	DefaultSimAttempts         = 200
	DefaultSimStepMinutes      = 1
)

// Warnings returned by ValidateWithWarnings
const (
	WarnUnseededRNG      = "HARVEST_RNG_SEED is not set - simulation runs will not be reproducible"
	WarnDebugInProd      = "LOG_LEVEL is DEBUG in prod - harvest attempts will log every check"
	WarnWorkersExceedAct = "SIM_WORKERS exceeds SIM_ACTORS - extra workers will sit idle"
)
