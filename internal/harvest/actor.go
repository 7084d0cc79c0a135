package harvest

import "github.com/osse101/ShardHarvest_Go/internal/domain"

// BonusSource exposes the actor attributes that modify a bank's respawn
type BonusSource interface {
	Race() domain.Race
	// InBonusRegion reports whether the actor stands in the region whose banks respawn slower
	InBonusRegion() bool
}

// Actor is the mobile performing a harvest. It is provided by the game engine.
type Actor interface {
	BonusSource

	ID() string
	Map() domain.MapID
	Location() domain.Point3D

	// SkillValue returns the actor's current value in a skill
	SkillValue(skill domain.SkillName) float64
	// CheckSkill rolls a skill check scaled between min and max and may award gains
	CheckSkill(skill domain.SkillName, min, max float64) bool

	SendMessage(msg string)
	PlaySound(soundID int)
}

// StoneMiner is implemented by actors that can learn stone mining. Actors
// without it never extract the stone variant of a resource.
type StoneMiner interface {
	StoneMining() bool
}

// Tool is the item used to harvest
type Tool interface {
	Kind() domain.ToolKind
	// UsesRemaining returns the uses left before the tool breaks
	UsesRemaining() int
	// Use consumes one use and returns the uses left
	Use() int
	Deleted() bool
}

// LandTarget is a targeted land tile. Its map is the actor's map.
type LandTarget struct {
	Location domain.Point3D
	TileID   int
}

// StaticTarget is a targeted static map tile. Its map is the actor's map.
type StaticTarget struct {
	Location domain.Point3D
	ItemID   int
}

// StaticItem is a world item placed on a facet, such as a decorative tree
type StaticItem struct {
	Map      domain.MapID
	Location domain.Point3D
	ItemID   int
	Movable  bool
}

// sendMessage sends msg unless the definition left it empty
func sendMessage(actor Actor, msg string) {
	if msg != "" {
		actor.SendMessage(msg)
	}
}

// staticTileID converts an item graphic id into the tile id space used by definitions
func staticTileID(itemID int) int {
	return (itemID & TileIDBitmask) | StaticTileFlag
}

// Details locates a harvest target
type Details struct {
	TileID   int
	Map      domain.MapID
	Location domain.Point3D
}

// GetHarvestDetails resolves what is being harvested. It reports false for
// anything that is not a land tile, static tile or immovable static item,
// and for targets on the internal map.
func GetHarvestDetails(actor Actor, target interface{}) (Details, bool) {
	var d Details

	switch t := target.(type) {
	case StaticItem:
		if t.Movable {
			return Details{}, false
		}
		d = Details{TileID: staticTileID(t.ItemID), Map: t.Map, Location: t.Location}
	case *StaticItem:
		if t == nil {
			return Details{}, false
		}
		return GetHarvestDetails(actor, *t)
	case StaticTarget:
		d = Details{TileID: staticTileID(t.ItemID), Map: actor.Map(), Location: t.Location}
	case LandTarget:
		d = Details{TileID: t.TileID, Map: actor.Map(), Location: t.Location}
	default:
		return Details{}, false
	}

	return d, d.Map != domain.MapInternal
}
