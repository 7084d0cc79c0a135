package catalog

import (
	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
)

// Fish builds the fishing definition: one vein of common fish
func Fish(raceBonus bool) *harvest.Definition {
	fish := harvest.NewResource(fishSkillMin, fishSkillMin, fishSkillMax, MsgCaughtFish, TypeFish)

	return &harvest.Definition{
		Name:               DefFish,
		Skill:              domain.SkillFishing,
		BankWidth:          fishBankWidth,
		BankHeight:         fishBankHeight,
		MinTotal:           fishMinTotal,
		MaxTotal:           fishMaxTotal,
		MinRespawn:         fishMinRespawn,
		MaxRespawn:         fishMaxRespawn,
		MaxRange:           fishMaxRange,
		ConsumedPerHarvest: fishConsumed,
		Tiles:              WaterTiles,
		Resources:          []*harvest.Resource{fish},
		Veins:              []*harvest.Vein{harvest.NewVein(fishVeinChance, 0, fish, nil)},
		RaceBonus:          raceBonus,
		Messages: harvest.Messages{
			NoResources: MsgFishNotBiting,
			OutOfRange:  MsgTooFarFromWater,
			Fail:        MsgFailedCatch,
			ToolBroke:   MsgPoleBroken,
		},
	}
}
