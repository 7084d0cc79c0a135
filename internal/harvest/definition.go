package harvest

import (
	"fmt"
	"time"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
)

// Messages holds the player-facing text a definition sends
type Messages struct {
	NoResources string
	OutOfRange  string
	Fail        string
	ToolBroke   string
	// Stone replaces the resource message when the stone variant is extracted
	Stone string
}

// Definition is the shard-wide configuration of one harvest activity
// (ore, sand, wood, fish). It is built once at startup, validated, and then
// shared read-only by every bank of that activity.
type Definition struct {
	Name  string           `validate:"required"`
	Skill domain.SkillName `validate:"required"`

	// Banks cover BankWidth x BankHeight tiles
	BankWidth  int `validate:"gte=1"`
	BankHeight int `validate:"gte=1"`

	// Every bank holds between MinTotal and MaxTotal resources
	MinTotal int `validate:"gte=0"`
	MaxTotal int `validate:"gtefield=MinTotal"`

	// A tapped bank refills between MinRespawn and MaxRespawn after its first extraction
	MinRespawn time.Duration `validate:"gte=0"`
	MaxRespawn time.Duration `validate:"gtefield=MinRespawn"`

	MaxRange           int `validate:"gte=0"`
	ConsumedPerHarvest int `validate:"gte=1"`

	// Tiles lists the land and static tile ids this definition harvests
	Tiles []int

	Resources []*Resource `validate:"dive,required"`
	Veins     []*Vein     `validate:"min=1,dive,required"`

	// RandomizeVeins rerolls the default vein on each full respawn
	RandomizeVeins bool
	// RaceBonus enables the qualifying-race respawn and fallback bonuses
	RaceBonus bool
	// ToolMutatesVein lets specialist tools shift the vein being harvested
	ToolMutatesVein bool
	// FirstTypeOnly yields a resource's first type instead of a random one
	FirstTypeOnly bool

	// StoneChance is how often an actor that knows stone mining extracts a
	// resource's second type. StoneSkill gates it.
	StoneChance float64 `validate:"gte=0,lte=1"`
	StoneSkill  float64 `validate:"gte=0"`

	// BonusResources is drawn from once after every successful harvest
	BonusResources []*BonusResource `validate:"dive,required"`

	Messages Messages

	tileSet map[int]struct{}
}

// Validate checks the definition's bounds and vein graph and prepares its tile lookup.
// It must be called before the definition is shared.
func (d *Definition) Validate() error {
	for i, v := range d.Veins {
		if v == nil {
			return fmt.Errorf("%w: %s vein %d is nil", domain.ErrInvalidDefinition, d.Name, i)
		}
		chain, ok := v.chain()
		if !ok {
			return fmt.Errorf("%w: %s vein %d", domain.ErrVeinCycle, d.Name, i)
		}
		// Fallback veins are skipped by struct validation, so check each link here
		for _, link := range chain {
			if err := validateStruct(link); err != nil {
				return fmt.Errorf("%w: %s vein %d: %v", domain.ErrInvalidDefinition, d.Name, i, err)
			}
		}
	}

	if err := validateStruct(d); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidDefinition, d.Name, err)
	}

	d.tileSet = make(map[int]struct{}, len(d.Tiles))
	for _, t := range d.Tiles {
		d.tileSet[t] = struct{}{}
	}

	return nil
}

// ValidateTile reports whether the definition harvests the given tile id
func (d *Definition) ValidateTile(tileID int) bool {
	if d.tileSet != nil {
		_, ok := d.tileSet[tileID]
		return ok
	}
	for _, t := range d.Tiles {
		if t == tileID {
			return true
		}
	}
	return false
}

// VeinFrom draws a vein using a uniform sample in [0,1)
func (d *Definition) VeinFrom(sample float64) *Vein {
	return selectVein(d.Veins, sample)
}

// BonusFrom draws a bonus entry using a uniform sample in [0,1)
func (d *Definition) BonusFrom(sample float64) *BonusResource {
	return weightedPick(d.BonusResources, func(b *BonusResource) float64 { return b.Chance }, sample)
}

// VeinIndex returns the position of v in the definition's vein list, or -1
func (d *Definition) VeinIndex(v *Vein) int {
	for i, candidate := range d.Veins {
		if candidate == v {
			return i
		}
	}
	return -1
}

// initialVein picks the vein for a newly created bank. Randomized definitions
// draw from r; the others use a sample derived from the bank position.
func (d *Definition) initialVein(r Rand, key BankKey) *Vein {
	if len(d.Veins) == 1 {
		return d.Veins[0]
	}
	if d.RandomizeVeins {
		return d.VeinFrom(r.Float64())
	}
	return d.VeinFrom(locationSample(int(key.Map), key.X, key.Y))
}

// ResolveResource picks the resource an actor extracts from vein. A rarity
// roll above sample moves to the fallback vein, with qualifying races adding
// RaceFallbackBonus to the sample; the skill gate then walks the fallback
// chain down to a resource the actor can work.
func (d *Definition) ResolveResource(vein *Vein, actor BonusSource, skill, sample float64) *Resource {
	bonus := 0.0
	if d.RaceBonus && actor != nil && actor.Race() == domain.RaceElf {
		bonus = RaceFallbackBonus
	}

	if vein.Fallback != nil && vein.Rarity > sample+bonus {
		vein = vein.Fallback
	}

	return vein.ResourceForSkill(skill)
}

// respawnDelay interpolates between MinRespawn and MaxRespawn using sample
func (d *Definition) respawnDelay(sample float64) float64 {
	min := d.MinRespawn.Minutes()
	max := d.MaxRespawn.Minutes()
	return min + sample*(max-min)
}

// BankKeyFor returns the key of the bank covering the given tile
func (d *Definition) BankKeyFor(mapID domain.MapID, x, y int) BankKey {
	return BankKey{
		Definition: d.Name,
		Map:        mapID,
		X:          floorDiv(x, d.BankWidth),
		Y:          floorDiv(y, d.BankHeight),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
