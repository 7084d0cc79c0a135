package harvest

// Respawn modifiers
const (
	// RaceRespawnMultiplier shortens the respawn of a bank first tapped by a qualifying race
	RaceRespawnMultiplier = 0.75

	// RegionRespawnMultiplier lengthens the respawn of a bank first tapped inside the bonus region
	RegionRespawnMultiplier = 1.5

	// RaceFallbackBonus is added to the fallback roll for a qualifying race,
	// making a fall back to the lesser resource less likely
	RaceFallbackBonus = 0.20

	// MinCurrent is the floor for a bank's remaining resources
	MinCurrent = 0
)

// Tile id encoding used when resolving static targets
const (
	TileIDBitmask  = 0x3FFF
	StaticTileFlag = 0x4000
)

// Deterministic vein placement seeds for definitions that do not randomize veins
const (
	veinSeedX   = 17
	veinSeedY   = 11
	veinSeedMap = 3
)

// Defaults
const (
	DefaultDefinitionCacheSize = 256
	DefaultBankWidth           = 8
	DefaultBankHeight          = 8
	DefaultMaxRange            = 2
	DefaultConsumedPerHarvest  = 1
)

// Log messages
const (
	LogMsgBankCreated        = "Harvest bank created"
	LogMsgBankRespawned      = "Harvest bank respawned"
	LogMsgBankDepleted       = "Harvest bank depleted"
	LogMsgHarvestStarted     = "Harvest started"
	LogMsgHarvestFinished    = "Harvest finished"
	LogMsgHarvestRefused     = "Harvest refused"
	LogMsgHarvestSkillFailed = "Harvest skill check failed"
	LogMsgToolBroke          = "Harvest tool broke"
	LogMsgEventPublishFailed = "Failed to publish harvest event"
)

// Player-facing messages shared by every harvest system
const (
	MsgToolWornOut       = "You have worn out your tool!"
	MsgCannotHarvest     = "You can't use that to harvest anything here."
	MsgAlreadyHarvesting = "You are already doing something else."
)

// Action lock key prefix. Every harvest system shares it, so an actor runs one harvest at a time.
const actionLockPrefix = "harvest:"

// Refusal reasons reported on harvest refused events
const (
	ReasonToolWornOut  = "tool_worn_out"
	ReasonBadTarget    = "bad_target"
	ReasonOutOfRange   = "out_of_range"
	ReasonNoResources  = "no_resources"
	ReasonInProgress   = "in_progress"
	ReasonSkillFailed  = "skill_failed"
	ReasonInvalidInput = "invalid_input"
	ReasonUnknown      = "unknown"
)
