package harvest

import (
	"sync"
	"time"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
)

var testEpoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// seqRand replays fixed samples, repeating the last one when exhausted
type seqRand struct {
	mu     sync.Mutex
	floats []float64
	ints   []int
}

func newSeqRand(floats ...float64) *seqRand {
	return &seqRand{floats: floats}
}

func (r *seqRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return v
}

func (r *seqRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[0]
	if len(r.ints) > 1 {
		r.ints = r.ints[1:]
	}
	return v % n
}

// stubActor is a configurable Actor that records what it was told
type stubActor struct {
	mu sync.Mutex

	id       string
	race     domain.Race
	inRegion bool
	mapID    domain.MapID
	loc      domain.Point3D
	skill    float64
	passes   bool

	messages []string
	sounds   []int
}

func newStubActor(id string) *stubActor {
	return &stubActor{
		id:     id,
		race:   domain.RaceHuman,
		mapID:  domain.MapFelucca,
		loc:    domain.Point3D{X: 100, Y: 100},
		skill:  100,
		passes: true,
	}
}

func (a *stubActor) ID() string                                         { return a.id }
func (a *stubActor) Race() domain.Race                                  { return a.race }
func (a *stubActor) InBonusRegion() bool                                { return a.inRegion }
func (a *stubActor) Map() domain.MapID                                  { return a.mapID }
func (a *stubActor) Location() domain.Point3D                           { return a.loc }
func (a *stubActor) SkillValue(domain.SkillName) float64                { return a.skill }
func (a *stubActor) CheckSkill(domain.SkillName, float64, float64) bool { return a.passes }

func (a *stubActor) SendMessage(msg string) {
	a.mu.Lock()
	a.messages = append(a.messages, msg)
	a.mu.Unlock()
}

func (a *stubActor) PlaySound(id int) {
	a.mu.Lock()
	a.sounds = append(a.sounds, id)
	a.mu.Unlock()
}

func (a *stubActor) lastMessage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.messages) == 0 {
		return ""
	}
	return a.messages[len(a.messages)-1]
}

// stubTool is a tool with a fixed number of uses
type stubTool struct {
	mu      sync.Mutex
	kind    domain.ToolKind
	uses    int
	deleted bool
}

func newStubTool(kind domain.ToolKind, uses int) *stubTool {
	return &stubTool{kind: kind, uses: uses}
}

func (t *stubTool) Kind() domain.ToolKind { return t.kind }

func (t *stubTool) UsesRemaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.uses
}

func (t *stubTool) Use() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.uses > 0 {
		t.uses--
	}
	if t.uses == 0 {
		t.deleted = true
	}
	return t.uses
}

func (t *stubTool) Deleted() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.deleted
}

// recordingObserver counts bank notifications
type recordingObserver struct {
	mu        sync.Mutex
	created   []BankSnapshot
	respawned []BankSnapshot
	depleted  []BankSnapshot
}

func (o *recordingObserver) BankCreated(s BankSnapshot) {
	o.mu.Lock()
	o.created = append(o.created, s)
	o.mu.Unlock()
}

func (o *recordingObserver) BankRespawned(s BankSnapshot) {
	o.mu.Lock()
	o.respawned = append(o.respawned, s)
	o.mu.Unlock()
}

func (o *recordingObserver) BankDepleted(s BankSnapshot) {
	o.mu.Lock()
	o.depleted = append(o.depleted, s)
	o.mu.Unlock()
}

func (o *recordingObserver) counts() (created, respawned, depleted int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.created), len(o.respawned), len(o.depleted)
}

// testDefinition returns a validated two-vein definition with fixed totals
func testDefinition(total int) *Definition {
	base := NewResource(0, 0, 100, "You dig some iron ore.", "IronOre", "Granite")
	rare := NewResource(65, 25, 105, "You dig some gold ore.", "GoldOre")

	baseVein := NewVein(0.7, 0, base, nil)
	rareVein := NewVein(0.3, 0.5, rare, baseVein)

	def := &Definition{
		Name:               "ore",
		Skill:              domain.SkillMining,
		BankWidth:          8,
		BankHeight:         8,
		MinTotal:           total,
		MaxTotal:           total,
		MinRespawn:         10 * time.Minute,
		MaxRespawn:         20 * time.Minute,
		MaxRange:           2,
		ConsumedPerHarvest: 1,
		Tiles:              []int{0x00DC, 0x00DD},
		Resources:          []*Resource{base, rare},
		Veins:              []*Vein{baseVein, rareVein},
		Messages: Messages{
			NoResources: "There is no metal here to mine.",
			OutOfRange:  "That is too far away.",
			Fail:        "You loosen some rocks but fail to find any useable ore.",
			ToolBroke:   "You have worn out your tool!",
		},
	}
	if err := def.Validate(); err != nil {
		panic(err)
	}
	return def
}

// stoneActor is a stubActor that may know stone mining
type stoneActor struct {
	*stubActor
	stone bool
}

func (a *stoneActor) StoneMining() bool { return a.stone }

// gatedActor blocks inside its skill check until the gate is released, so
// several finishes can be held between their checks and their extraction
type gatedActor struct {
	*stubActor
	arrived *sync.WaitGroup
	release <-chan struct{}
}

func (a *gatedActor) CheckSkill(skill domain.SkillName, min, max float64) bool {
	a.arrived.Done()
	<-a.release
	return a.stubActor.CheckSkill(skill, min, max)
}
