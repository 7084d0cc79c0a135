package catalog

import (
	"fmt"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
)

type oreSpec struct {
	metal     string
	skillMin  float64
	message   string
	elemental string
	chance    float64
	rarity    float64
}

// Colored ores in vein order. Each yields ore, granite and an elemental
// type; every colored vein falls back to iron.
var coloredOres = []oreSpec{
	{"DullCopper", dullSkillMin, MsgFoundDullCopper, "", dullVeinChance, dullRarity},
	{"Copper", copperSkillMin, MsgFoundCopper, "", copperVeinChance, copperRarity},
	{"Bronze", bronzeSkillMin, MsgFoundBronze, "", bronzeVeinChance, bronzeRarity},
	{"ShadowIron", shadowSkillMin, MsgFoundShadowIron, "", shadowVeinChance, shadowRarity},
	{"Platinum", platSkillMin, MsgFoundPlatinum, typeEarthElemental, platVeinChance, platRarity},
	{"Gold", goldSkillMin, MsgFoundGold, "GoldenElemental", goldVeinChance, goldRarity},
	{"Agapite", agapSkillMin, MsgFoundAgapite, "", agapVeinChance, agapRarity},
	{"Verite", veriteSkillMin, MsgFoundVerite, "", veriteVeinChance, veriteRarity},
	{"Valorite", valorSkillMin, MsgFoundValorite, "", valorVeinChance, valorRarity},
	{"Titanium", titanSkillMin, MsgFoundTitanium, typeEarthElemental, titanVeinChance, titanRarity},
	{"Rosenium", roseSkillMin, MsgFoundRosenium, typeEarthElemental, roseVeinChance, roseRarity},
}

type bonusSpec struct {
	itemType string
	name     string
	skill    float64
	chance   float64
}

// Bonus finds in draw order, after the empty draw
var oreBonuses = []bonusSpec{
	{TypeBlankScroll, "a blank scroll", bonusScrollSkill, bonusScrollChance},
	{TypeLocalMap, "a local map", bonusScrollSkill, bonusMapChance},
	{TypeIndecipherable, "an indecipherable map", bonusScrollSkill, bonusMapChance},
	{TypeBlankMap, "a blank map", bonusScrollSkill, bonusMapChance},
	{TypeAmber, "a piece of amber", bonusAmberSkill, bonusAmberChance},
	{TypeAmethyst, "an amethyst", bonusGemSkill, bonusGemChance},
	{TypeCitrine, "a citrine", bonusGemSkill, bonusGemChance},
	{TypeDiamond, "a diamond", bonusDiamondSkill, bonusFineGemChance},
	{TypeEmerald, "an emerald", bonusFineGemSkill, bonusFineGemChance},
	{TypeRuby, "a ruby", bonusFineGemSkill, bonusFineGemChance},
	{TypeSapphire, "a sapphire", bonusFineGemSkill, bonusFineGemChance},
	{TypeStarSapphire, "a star sapphire", bonusStarGemSkill, bonusRareGemChance},
	{TypeTourmaline, "a tourmaline", bonusStarGemSkill, bonusRareGemChance},
	{TypeBlueDiamond, "a blue diamond", bonusRareGemSkill, bonusRareGemChance},
	{TypeDarkSapphire, "a dark sapphire", bonusRareGemSkill, bonusRareGemChance},
	{TypeEcruCitrine, "an ecru citrine", bonusRareGemSkill, bonusRareGemChance},
	{TypeFireRuby, "a fire ruby", bonusRareGemSkill, bonusRareGemChance},
	{TypePerfectEmerald, "a perfect emerald", bonusRareGemSkill, bonusRareGemChance},
}

// OreBonuses returns the bonus table rolled after every successful ore harvest
func OreBonuses() []*harvest.BonusResource {
	out := []*harvest.BonusResource{{Chance: bonusNothingChance}}
	for _, b := range oreBonuses {
		out = append(out, &harvest.BonusResource{
			ReqSkill: b.skill,
			Chance:   b.chance,
			Message:  fmt.Sprintf(MsgFoundBonusItem, b.name),
			ItemType: b.itemType,
		})
	}
	return out
}

// OreAndStone builds the mining definition for ore. Veins reroll on every
// full respawn. The ore type is yielded unless a stone miner extracts granite,
// and every success may also turn up a bonus find.
func OreAndStone(raceBonus bool) *harvest.Definition {
	iron := harvest.NewResource(ironSkillMin, ironSkillMin, oreSkillMax, MsgFoundIron, TypeIronOre, TypeGranite)
	ironVein := harvest.NewVein(ironVeinChance, 0, iron, nil)

	resources := []*harvest.Resource{iron}
	veins := []*harvest.Vein{ironVein}

	for _, o := range coloredOres {
		elemental := o.elemental
		if elemental == "" {
			elemental = o.metal + suffixElemental
		}
		r := harvest.NewResource(o.skillMin, o.skillMin, oreSkillMax, o.message,
			o.metal+suffixOre, o.metal+suffixGranite, elemental)
		resources = append(resources, r)
		veins = append(veins, harvest.NewVein(o.chance, o.rarity, r, ironVein))
	}

	return &harvest.Definition{
		Name:               DefOreAndStone,
		Skill:              domain.SkillMining,
		BankWidth:          oreBankWidth,
		BankHeight:         oreBankHeight,
		MinTotal:           oreMinTotal,
		MaxTotal:           oreMaxTotal,
		MinRespawn:         oreMinRespawn,
		MaxRespawn:         oreMaxRespawn,
		MaxRange:           oreMaxRange,
		ConsumedPerHarvest: oreConsumed,
		Tiles:              MountainAndCaveTiles,
		Resources:          resources,
		Veins:              veins,
		RandomizeVeins:     true,
		RaceBonus:          raceBonus,
		ToolMutatesVein:    true,
		FirstTypeOnly:      true,
		StoneChance:        stoneMiningChance,
		StoneSkill:         stoneMiningSkillRequired,
		BonusResources:     OreBonuses(),
		Messages: harvest.Messages{
			NoResources: MsgNoMetalHere,
			OutOfRange:  MsgTooFarAway,
			Fail:        MsgFailedFindOre,
			ToolBroke:   harvest.MsgToolWornOut,
			Stone:       MsgExtractedStone,
		},
	}
}

// Sand builds the mining definition for sand
func Sand() *harvest.Definition {
	sand := harvest.NewResource(sandSkillMin, sandSkillMin, sandSkillMax, MsgFoundSand, TypeSand)

	return &harvest.Definition{
		Name:               DefSand,
		Skill:              domain.SkillMining,
		BankWidth:          sandBankWidth,
		BankHeight:         sandBankHeight,
		MinTotal:           sandMinTotal,
		MaxTotal:           sandMaxTotal,
		MinRespawn:         sandMinRespawn,
		MaxRespawn:         sandMaxRespawn,
		MaxRange:           sandMaxRange,
		ConsumedPerHarvest: sandConsumed,
		Tiles:              SandTiles,
		Resources:          []*harvest.Resource{sand},
		Veins:              []*harvest.Vein{harvest.NewVein(sandVeinChance, 0, sand, nil)},
		Messages: harvest.Messages{
			NoResources: MsgNoSandHere,
			OutOfRange:  MsgTooFarAway,
			Fail:        MsgFailedFindSand,
			ToolBroke:   harvest.MsgToolWornOut,
		},
	}
}
