package catalog

import "time"

// Definition names
const (
	DefOreAndStone = "ore_and_stone"
	DefSand        = "sand"
	DefLumber      = "lumber"
	DefFish        = "fish"
)

// Ore and stone
const (
	oreBankWidth   = 3
	oreBankHeight  = 3
	oreMinTotal    = 5
	oreMaxTotal    = 30
	oreMinRespawn  = 15 * time.Minute
	oreMaxRespawn  = 30 * time.Minute
	oreMaxRange    = 2
	oreConsumed    = 1
	oreSkillMax    = 120.0
	ironSkillMin   = 0.0
	dullSkillMin   = 65.0
	copperSkillMin = 70.0
	bronzeSkillMin = 75.0
	shadowSkillMin = 80.0
	platSkillMin   = 85.0
	goldSkillMin   = 85.0
	agapSkillMin   = 90.0
	veriteSkillMin = 95.0
	valorSkillMin  = 95.0
	titanSkillMin  = 100.0
	roseSkillMin   = 100.0
)

// Ore vein weights, summing to 100
const (
	ironVeinChance   = 25.0
	dullVeinChance   = 15.0
	copperVeinChance = 13.0
	bronzeVeinChance = 10.0
	shadowVeinChance = 9.0
	platVeinChance   = 6.25
	goldVeinChance   = 6.25
	agapVeinChance   = 4.5
	veriteVeinChance = 3.5
	valorVeinChance  = 3.5
	titanVeinChance  = 2.0
	roseVeinChance   = 2.0
	dullRarity       = 0.5
	copperRarity     = 0.5
	bronzeRarity     = 0.5
	shadowRarity     = 0.5
	platRarity       = 0.5
	goldRarity       = 0.5
	agapRarity       = 0.3
	veriteRarity     = 0.2
	valorRarity      = 0.2
	titanRarity      = 0.1
	roseRarity       = 0.1
)

// Sand
const (
	sandBankWidth  = 3
	sandBankHeight = 3
	sandMinTotal   = 9
	sandMaxTotal   = 18
	sandMinRespawn = 10 * time.Minute
	sandMaxRespawn = 20 * time.Minute
	sandMaxRange   = 2
	sandConsumed   = 1
	sandSkillMin   = 50.0
	sandSkillMax   = 120.0
	sandVeinChance = 80.0
)

// Lumber
const (
	lumberBankWidth  = 3
	lumberBankHeight = 3
	lumberMinTotal   = 6
	lumberMaxTotal   = 36
	lumberMinRespawn = 15 * time.Minute
	lumberMaxRespawn = 30 * time.Minute
	lumberMaxRange   = 2
	lumberConsumed   = 2
	logSkillMax      = 120.0
	logSkillMin      = 0.0
	ashSkillMin      = 60.0
	ebonySkillMin    = 70.0
	goldenSkillMin   = 80.0
	cherrySkillMin   = 90.0
	roseWSkillMin    = 95.0
	elvenSkillMin    = 100.0
	hickorySkillMin  = 100.0
)

// Log vein weights, summing to 100
const (
	logVeinChance     = 27.0
	ashVeinChance     = 18.0
	ebonyVeinChance   = 15.0
	goldenVeinChance  = 12.0
	cherryVeinChance  = 10.0
	roseWVeinChance   = 8.0
	elvenVeinChance   = 5.0
	hickoryVeinChance = 5.0
	ashRarity         = 0.5
	ebonyRarity       = 0.4
	goldenRarity      = 0.4
	cherryRarity      = 0.3
	roseWRarity       = 0.2
	elvenRarity       = 0.1
	hickoryRarity     = 0.1
)

// Fish
const (
	fishBankWidth  = 4
	fishBankHeight = 4
	fishMinTotal   = 1
	fishMaxTotal   = 9
	fishMinRespawn = 15 * time.Minute
	fishMaxRespawn = 30 * time.Minute
	fishMaxRange   = 4
	fishConsumed   = 1
	fishSkillMin   = 0.0
	fishSkillMax   = 100.0
	fishVeinChance = 100.0
)

// Ore messages
const (
	MsgNoMetalHere     = "There is no metal here to mine."
	MsgTooFarAway      = "You can't reach that from here."
	MsgFailedFindOre   = "You loosen some rocks but fail to find any useable ore."
	MsgFoundIron       = "You dig some iron ore and put it in your backpack."
	MsgFoundDullCopper = "You dig some dull copper ore and put it in your backpack."
	MsgFoundCopper     = "You dig some copper ore and put it in your backpack."
	MsgFoundBronze     = "You dig some bronze ore and put it in your backpack."
	MsgFoundShadowIron = "You dig some shadow iron ore and put it in your backpack."
	MsgFoundPlatinum   = "You dig some platinum ore and put it in your backpack."
	MsgFoundGold       = "You dig some gold ore and put it in your backpack."
	MsgFoundAgapite    = "You dig some agapite ore and put it in your backpack."
	MsgFoundVerite     = "You dig some verite ore and put it in your backpack."
	MsgFoundValorite   = "You dig some valorite ore and put it in your backpack."
	MsgFoundTitanium   = "You dig some titanium ore and put it in your backpack."
	MsgFoundRosenium   = "You dig some rosenium ore and put it in your backpack."
)

// Mining bonus finds, weighted out of 100. The empty draw awards nothing.
const (
	bonusNothingChance       = 89.75
	bonusScrollChance        = 5.0
	bonusMapChance           = 1.0
	bonusAmberChance         = 0.5
	bonusGemChance           = 0.5
	bonusFineGemChance       = 0.1
	bonusRareGemChance       = 0.05
	bonusScrollSkill         = 60.0
	bonusAmberSkill          = 70.0
	bonusGemSkill            = 75.0
	bonusDiamondSkill        = 80.0
	bonusFineGemSkill        = 85.0
	bonusStarGemSkill        = 90.0
	bonusRareGemSkill        = 100.0
	stoneMiningChance        = 0.5
	stoneMiningSkillRequired = 100.0
)

// Mining bonus and stone messages
const (
	MsgFoundBonusItem = "You have found %s!"
	MsgExtractedStone = "You carefully extract some workable stone from the ore vein!"
)

// Sand messages
const (
	MsgNoSandHere     = "There is no sand here to mine."
	MsgFailedFindSand = "You dig for a while but fail to find any of sufficient quality for glassblowing."
	MsgFoundSand      = "You carefully dig up sand of sufficient quality for glassblowing."
)

// Lumber messages
const (
	MsgNoWoodHere      = "There's not enough wood here to harvest."
	MsgFailedWood      = "You hack at the tree for a while, but fail to produce any useable wood."
	MsgAxeBroken       = "You broke your axe."
	MsgCutLogs         = "You put some logs into your backpack."
	MsgCutAshLogs      = "You put some ash logs into your backpack."
	MsgCutEbonyLogs    = "You put some ebony logs into your backpack."
	MsgCutGoldenOak    = "You put some golden oak logs into your backpack."
	MsgCutCherryLogs   = "You put some cherry logs into your backpack."
	MsgCutRosewoodLogs = "You put some rosewood logs into your backpack."
	MsgCutElvenLogs    = "You put some elven logs into your backpack."
	MsgCutHickoryLogs  = "You put some hickory logs into your backpack."
)

// Fish messages
const (
	MsgFishNotBiting   = "The fish don't seem to be biting here."
	MsgFailedCatch     = "You fish a while, but fail to catch anything."
	MsgTooFarFromWater = "You need to be closer to the water to fish!"
	MsgPoleBroken      = "You broke your fishing pole."
	MsgCaughtFish      = "You pull out a fish!"
)

// Item types
const (
	TypeIronOre        = "IronOre"
	TypeGranite        = "Granite"
	TypeSand           = "Sand"
	TypeLog            = "Log"
	TypeAshLog         = "AshLog"
	TypeEbonyLog       = "EbonyLog"
	TypeGoldenOakLog   = "GoldenOakLog"
	TypeCherryLog      = "CherryLog"
	TypeRosewoodLog    = "RosewoodLog"
	TypeElvenLog       = "ElvenLog"
	TypeHickoryLog     = "HickoryLog"
	TypeFish           = "Fish"
	TypeBlankScroll    = "BlankScroll"
	TypeLocalMap       = "LocalMap"
	TypeIndecipherable = "IndecipherableMap"
	TypeBlankMap       = "BlankMap"
	TypeAmber          = "Amber"
	TypeAmethyst       = "Amethyst"
	TypeCitrine        = "Citrine"
	TypeDiamond        = "Diamond"
	TypeEmerald        = "Emerald"
	TypeRuby           = "Ruby"
	TypeSapphire       = "Sapphire"
	TypeStarSapphire   = "StarSapphire"
	TypeTourmaline     = "Tourmaline"
	TypeBlueDiamond    = "BlueDiamond"
	TypeDarkSapphire   = "DarkSapphire"
	TypeEcruCitrine    = "EcruCitrine"
	TypeFireRuby       = "FireRuby"
	TypePerfectEmerald = "PerfectEmerald"
	typeEarthElemental = "EarthElemental"
	suffixOre          = "Ore"
	suffixGranite      = "Granite"
	suffixElemental    = "Elemental"
)

// Log messages
const (
	LogMsgCatalogBuilt = "Harvest catalog built"
)
