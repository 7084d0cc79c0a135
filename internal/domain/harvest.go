package domain

// Point3D is a world position in tile coordinates
type Point3D struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// IsZero reports whether the point is the origin, which the world treats as "no location"
func (p Point3D) IsZero() bool {
	return p.X == 0 && p.Y == 0 && p.Z == 0
}

// InRange reports whether other lies within a square of the given radius around p.
// Z is ignored, matching how the world measures reach.
func (p Point3D) InRange(other Point3D, radius int) bool {
	return abs(p.X-other.X) <= radius && abs(p.Y-other.Y) <= radius
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// MapID identifies one facet of the world
type MapID int

// Well-known facets
const (
	MapFelucca  MapID = 0
	MapTrammel  MapID = 1
	MapIlshenar MapID = 2
	MapMalas    MapID = 3
	MapTokuno   MapID = 4
	MapTerMur   MapID = 5

	// MapInternal holds logged-out mobiles and staged items; nothing is harvestable there
	MapInternal MapID = 0x7F
)

// Race is the race of a mobile
type Race string

// Races known to the harvest system
const (
	RaceHuman    Race = "human"
	RaceElf      Race = "elf"
	RaceGargoyle Race = "gargoyle"
)

// SkillName names a gathering skill
type SkillName string

// Gathering skills
const (
	SkillMining        SkillName = "mining"
	SkillLumberjacking SkillName = "lumberjacking"
	SkillFishing       SkillName = "fishing"
)

// ToolKind classifies a harvest tool
type ToolKind string

// Tool kinds
const (
	ToolPickaxe          ToolKind = "pickaxe"
	ToolShovel           ToolKind = "shovel"
	ToolGargoylesPickaxe ToolKind = "gargoyles_pickaxe"
	ToolOreShovel        ToolKind = "ore_shovel"
	ToolAxe              ToolKind = "axe"
	ToolFishingPole      ToolKind = "fishing_pole"
)

// IsAxe reports whether the tool kind counts as an axe for chopping interactions
func (k ToolKind) IsAxe() bool {
	return k == ToolAxe
}

// HarvestSystemName names one harvest system
type HarvestSystemName string

// Harvest systems
const (
	SystemMining        HarvestSystemName = "mining"
	SystemLumberjacking HarvestSystemName = "lumberjacking"
	SystemFishing       HarvestSystemName = "fishing"
)
