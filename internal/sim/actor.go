package sim

import (
	"sync"
	"sync/atomic"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
)

// Actor is a simulated mobile. Its skill check succeeds with a chance that
// rises linearly from min to max.
type Actor struct {
	id       string
	race     domain.Race
	inRegion bool
	stone    bool
	mapID    domain.MapID
	loc      domain.Point3D
	skills   map[domain.SkillName]float64
	rng      harvest.Rand

	mu       sync.Mutex
	messages []string
	sounds   atomic.Int64
}

// NewActor creates an actor with the same value in every gathering skill
func NewActor(id string, race domain.Race, loc domain.Point3D, skill float64, rng harvest.Rand) *Actor {
	return &Actor{
		id:    id,
		race:  race,
		mapID: domain.MapFelucca,
		loc:   loc,
		skills: map[domain.SkillName]float64{
			domain.SkillMining:        skill,
			domain.SkillLumberjacking: skill,
			domain.SkillFishing:       skill,
		},
		rng: rng,
	}
}

func (a *Actor) ID() string               { return a.id }
func (a *Actor) Race() domain.Race        { return a.race }
func (a *Actor) InBonusRegion() bool      { return a.inRegion }
func (a *Actor) Map() domain.MapID        { return a.mapID }
func (a *Actor) Location() domain.Point3D { return a.loc }
func (a *Actor) PlaySound(int)            { a.sounds.Add(1) }
func (a *Actor) StoneMining() bool        { return a.stone }

func (a *Actor) SkillValue(skill domain.SkillName) float64 {
	return a.skills[skill]
}

// CheckSkill rolls against the actor's position between min and max
func (a *Actor) CheckSkill(skill domain.SkillName, min, max float64) bool {
	value := a.skills[skill]
	switch {
	case value < min:
		return false
	case value >= max:
		return true
	}
	return a.rng.Float64() < (value-min)/(max-min)
}

func (a *Actor) SendMessage(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, msg)
}

// Messages returns a copy of everything the actor was told
func (a *Actor) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.messages))
	copy(out, a.messages)
	return out
}

// Tool is a simulated harvest tool with a fixed number of uses
type Tool struct {
	kind domain.ToolKind
	uses atomic.Int64
}

// NewTool creates a tool
func NewTool(kind domain.ToolKind, uses int) *Tool {
	t := &Tool{kind: kind}
	t.uses.Store(int64(uses))
	return t
}

func (t *Tool) Kind() domain.ToolKind { return t.kind }
func (t *Tool) UsesRemaining() int    { return int(t.uses.Load()) }
func (t *Tool) Deleted() bool         { return t.uses.Load() <= 0 }

// Use consumes one use and returns the uses left
func (t *Tool) Use() int {
	return int(t.uses.Add(-1))
}
