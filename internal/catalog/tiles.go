package catalog

import "github.com/osse101/ShardHarvest_Go/internal/harvest"

// MountainAndCaveTiles are the land and cave-floor tiles that hold ore
var MountainAndCaveTiles = concat(
	[]int{
		220, 221, 222, 223, 224, 225, 226, 227, 228, 229,
		230, 231, 236, 237, 238, 239, 240, 241, 242, 243,
		244, 245, 246, 247, 252, 253, 254, 255, 256, 257,
		258, 259, 260, 261, 262, 263, 268, 269, 270, 271,
		272, 273, 274, 275, 276, 277, 278, 279, 286, 287,
		288, 289, 290, 291, 292, 293, 294, 296, 297,
		321, 322, 323, 324, 467, 468, 469, 470, 471, 472,
		473, 474, 476, 477, 478, 479, 480, 481, 482, 483,
		484, 485, 486, 487, 492, 493, 494, 495,
	},
	tileRange(543, 579),
	tileRange(581, 601),
	tileRange(610, 613),
	[]int{1010},
	tileRange(1741, 1757),
	tileRange(1771, 1790),
	tileRange(1801, 1809),
	tileRange(1811, 1824),
	tileRange(1831, 1854),
	tileRange(1861, 1884),
	tileRange(1981, 2004),
	tileRange(2028, 2033),
	tileRange(2100, 2105),
	tileRange(0x453B, 0x454F),
)

// SandTiles are the beach and desert tiles that hold sand
var SandTiles = concat(
	tileRange(22, 62),
	tileRange(68, 75),
	tileRange(286, 301),
	[]int{402},
	tileRange(424, 427),
	tileRange(441, 465),
	tileRange(642, 645),
	tileRange(650, 657),
	tileRange(821, 828),
	tileRange(833, 836),
	tileRange(845, 852),
	tileRange(857, 860),
	tileRange(951, 958),
	tileRange(967, 970),
	tileRange(1447, 1458),
	tileRange(1611, 1618),
	tileRange(1623, 1626),
	tileRange(1635, 1642),
	tileRange(1647, 1650),
)

// TreeTiles are static tree graphics, already flagged as statics
var TreeTiles = statics(concat(
	[]int{
		0x0CCA, 0x0CCB, 0x0CCC, 0x0CCD, 0x0CD0, 0x0CD3, 0x0CD6, 0x0CD8,
		0x0CDA, 0x0CDD, 0x0CE0, 0x0CE3, 0x0CE6, 0x0CF8, 0x0CFB, 0x0CFE,
		0x0D01, 0x0D94, 0x0D98, 0x0D9C, 0x0DA0, 0x0DA4, 0x0DA8,
	},
	tileRange(0x0D41, 0x0D44),
	tileRange(0x0D57, 0x0D5B),
	tileRange(0x0D6E, 0x0D72),
	tileRange(0x0D84, 0x0D86),
	tileRange(0x12B5, 0x12BD),
))

// WaterTiles are the land and static water tiles that can be fished
var WaterTiles = concat(
	tileRange(0x00A8, 0x00AB),
	tileRange(0x0136, 0x0137),
	statics(concat(
		tileRange(0x1797, 0x179C),
		tileRange(0x346E, 0x3485),
		tileRange(0x3490, 0x34AB),
		tileRange(0x34B5, 0x34D5),
	)),
)

func tileRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for id := from; id <= to; id++ {
		out = append(out, id)
	}
	return out
}

func concat(lists ...[]int) []int {
	var out []int
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// statics converts item graphics into the tile ids static targets resolve to
func statics(ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = (id & harvest.TileIDBitmask) | harvest.StaticTileFlag
	}
	return out
}
