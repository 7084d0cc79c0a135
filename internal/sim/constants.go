package sim

// World layout
const (
	// originX and originY anchor the simulated work site on Felucca
	originX = 1400
	originY = 1600

	// tilesPerActor controls crowding: a smaller value packs more actors onto each bank
	tilesPerActor = 2

	toolUses = 50

	elfShare         = 0.25
	bonusRegionShare = 0.2
	gargoyleToolRate = 0.1
	oreShovelRate    = 0.1
	stoneMinerShare  = 0.3

	minSkill = 40.0
	maxSkill = 120.0
)

// Log messages
const (
	LogMsgSimStarted   = "Harvest simulation started"
	LogMsgSimRound     = "Harvest simulation round complete"
	LogMsgSimFinished  = "Harvest simulation finished"
	LogMsgSimCancelled = "Harvest simulation cancelled"
)
