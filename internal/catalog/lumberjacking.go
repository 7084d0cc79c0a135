package catalog

import (
	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
)

type logSpec struct {
	itemType string
	skillMin float64
	message  string
	chance   float64
	rarity   float64
}

var specialLogs = []logSpec{
	{TypeAshLog, ashSkillMin, MsgCutAshLogs, ashVeinChance, ashRarity},
	{TypeEbonyLog, ebonySkillMin, MsgCutEbonyLogs, ebonyVeinChance, ebonyRarity},
	{TypeGoldenOakLog, goldenSkillMin, MsgCutGoldenOak, goldenVeinChance, goldenRarity},
	{TypeCherryLog, cherrySkillMin, MsgCutCherryLogs, cherryVeinChance, cherryRarity},
	{TypeRosewoodLog, roseWSkillMin, MsgCutRosewoodLogs, roseWVeinChance, roseWRarity},
	{TypeElvenLog, elvenSkillMin, MsgCutElvenLogs, elvenVeinChance, elvenRarity},
	{TypeHickoryLog, hickorySkillMin, MsgCutHickoryLogs, hickoryVeinChance, hickoryRarity},
}

// Lumber builds the lumberjacking definition. Special woods fall back to plain logs.
func Lumber(raceBonus bool) *harvest.Definition {
	plain := harvest.NewResource(logSkillMin, logSkillMin, logSkillMax, MsgCutLogs, TypeLog)
	plainVein := harvest.NewVein(logVeinChance, 0, plain, nil)

	resources := []*harvest.Resource{plain}
	veins := []*harvest.Vein{plainVein}
	for _, l := range specialLogs {
		r := harvest.NewResource(l.skillMin, l.skillMin, logSkillMax, l.message, l.itemType)
		resources = append(resources, r)
		veins = append(veins, harvest.NewVein(l.chance, l.rarity, r, plainVein))
	}

	return &harvest.Definition{
		Name:               DefLumber,
		Skill:              domain.SkillLumberjacking,
		BankWidth:          lumberBankWidth,
		BankHeight:         lumberBankHeight,
		MinTotal:           lumberMinTotal,
		MaxTotal:           lumberMaxTotal,
		MinRespawn:         lumberMinRespawn,
		MaxRespawn:         lumberMaxRespawn,
		MaxRange:           lumberMaxRange,
		ConsumedPerHarvest: lumberConsumed,
		Tiles:              TreeTiles,
		Resources:          resources,
		Veins:              veins,
		RandomizeVeins:     raceBonus,
		RaceBonus:          raceBonus,
		Messages: harvest.Messages{
			NoResources: MsgNoWoodHere,
			OutOfRange:  MsgTooFarAway,
			Fail:        MsgFailedWood,
			ToolBroke:   MsgAxeBroken,
		},
	}
}
