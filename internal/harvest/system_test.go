package harvest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/ShardHarvest_Go/internal/concurrency"
	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/event"
)

type systemFixture struct {
	sys    *System
	def    *Definition
	clock  *SimulatedClock
	rng    *seqRand
	bus    *event.MemoryBus
	events *eventSink
	actor  *stubActor
	target LandTarget
}

// eventSink collects every harvest event published on a bus
type eventSink struct {
	mu     sync.Mutex
	events []event.Event
}

func (s *eventSink) handle(_ context.Context, e event.Event) error {
	s.mu.Lock()
	s.events = append(s.events, e)
	s.mu.Unlock()
	return nil
}

func (s *eventSink) ofType(t event.Type) []event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []event.Event
	for _, e := range s.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func newSystemFixture(t *testing.T) *systemFixture {
	t.Helper()

	def := testDefinition(10)
	clock := NewSimulatedClock(testEpoch)
	rng := newSeqRand(0.9)
	bus := event.NewMemoryBus()
	sink := &eventSink{}
	for _, et := range []event.Type{event.BankCreated, event.BankDepleted, event.BankRespawned, event.HarvestCompleted, event.HarvestRefused} {
		bus.Subscribe(et, sink.handle)
	}

	sys, err := NewSystem(domain.SystemMining, []*Definition{def}, Options{
		Clock: clock,
		Rand:  rng,
		Bus:   bus,
	})
	require.NoError(t, err)

	target := LandTarget{Location: domain.Point3D{X: 101, Y: 100}, TileID: 0x00DC}
	// Pin the vein so results do not depend on the location draw
	sys.GetBank(def, domain.MapFelucca, 101, 100).SetVein(def.Veins[0])

	return &systemFixture{
		sys:    sys,
		def:    def,
		clock:  clock,
		rng:    rng,
		bus:    bus,
		events: sink,
		actor:  newStubActor("actor-1"),
		target: target,
	}
}

func (f *systemFixture) bank() *Bank {
	return f.sys.GetBank(f.def, domain.MapFelucca, f.target.Location.X, f.target.Location.Y)
}

func TestNewSystem_Validation(t *testing.T) {
	_, err := NewSystem(domain.SystemMining, nil, Options{})
	assert.ErrorIs(t, err, domain.ErrInvalidDefinition)

	bad := testDefinition(10)
	bad.Veins[0].Fallback = bad.Veins[1]
	_, err = NewSystem(domain.SystemMining, []*Definition{bad}, Options{})
	assert.ErrorIs(t, err, domain.ErrVeinCycle)
}

func TestHarvest_Success(t *testing.T) {
	f := newSystemFixture(t)
	tool := newStubTool(domain.ToolPickaxe, 50)

	yield, err := f.sys.Harvest(context.Background(), f.actor, tool, f.target)

	require.NoError(t, err)
	assert.Equal(t, "IronOre", yield.ItemType)
	assert.Equal(t, 1, yield.Amount)
	assert.Same(t, f.def.Veins[0].Primary, yield.Resource)
	assert.False(t, yield.ToolBroke)
	assert.Equal(t, 9, f.bank().Current())
	assert.Equal(t, 49, tool.UsesRemaining())
	assert.Equal(t, "You dig some iron ore.", f.actor.lastMessage())

	completed := f.events.ofType(event.HarvestCompleted)
	require.Len(t, completed, 1)
	payload, err := event.DecodePayload[event.HarvestCompletedPayloadV1](completed[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "actor-1", payload.ActorID)
	assert.Equal(t, "IronOre", payload.ItemType)
	assert.NotEmpty(t, payload.AttemptID)
	assert.Equal(t, payload.AttemptID, completed[0].AttemptID())
}

func TestHarvest_FirstTypeOnly(t *testing.T) {
	f := newSystemFixture(t)
	f.rng.ints = []int{1}

	yield, err := f.sys.Harvest(context.Background(), f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err)
	assert.Equal(t, "Granite", yield.ItemType, "random pick among types")

	f.def.FirstTypeOnly = true
	f.rng.ints = []int{1}
	yield, err = f.sys.Harvest(context.Background(), f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err)
	assert.Equal(t, "IronOre", yield.ItemType)
}

func TestHarvest_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *systemFixture) (Tool, interface{})
		wantErr error
		wantMsg string
		reason  string
	}{
		{
			name: "worn out tool",
			setup: func(f *systemFixture) (Tool, interface{}) {
				return newStubTool(domain.ToolPickaxe, 0), f.target
			},
			wantErr: domain.ErrToolWornOut,
			wantMsg: MsgToolWornOut,
			reason:  ReasonToolWornOut,
		},
		{
			name: "missing tool",
			setup: func(f *systemFixture) (Tool, interface{}) {
				return nil, f.target
			},
			wantErr: domain.ErrToolWornOut,
			wantMsg: MsgToolWornOut,
			reason:  ReasonToolWornOut,
		},
		{
			name: "unsupported target",
			setup: func(f *systemFixture) (Tool, interface{}) {
				return newStubTool(domain.ToolPickaxe, 5), "a mobile"
			},
			wantErr: domain.ErrBadHarvestTarget,
			wantMsg: MsgCannotHarvest,
			reason:  ReasonBadTarget,
		},
		{
			name: "tile without definition",
			setup: func(f *systemFixture) (Tool, interface{}) {
				return newStubTool(domain.ToolPickaxe, 5), LandTarget{Location: f.target.Location, TileID: 0x0003}
			},
			wantErr: domain.ErrBadHarvestTarget,
			wantMsg: MsgCannotHarvest,
			reason:  ReasonBadTarget,
		},
		{
			name: "out of range",
			setup: func(f *systemFixture) (Tool, interface{}) {
				return newStubTool(domain.ToolPickaxe, 5), LandTarget{Location: domain.Point3D{X: 110, Y: 100}, TileID: 0x00DC}
			},
			wantErr: domain.ErrOutOfRange,
			wantMsg: "That is too far away.",
			reason:  ReasonOutOfRange,
		},
		{
			name: "static item on another facet",
			setup: func(f *systemFixture) (Tool, interface{}) {
				// 0x00DC has no static form in the definition, so use a tile it lists
				f.def.Tiles = append(f.def.Tiles, staticTileID(0x0ED3))
				require.NoError(t, f.def.Validate())
				return newStubTool(domain.ToolPickaxe, 5), StaticItem{Map: domain.MapTrammel, Location: f.target.Location, ItemID: 0x0ED3}
			},
			wantErr: domain.ErrOutOfRange,
			wantMsg: "That is too far away.",
			reason:  ReasonOutOfRange,
		},
		{
			name: "depleted bank",
			setup: func(f *systemFixture) (Tool, interface{}) {
				f.bank().Consume(10, nil)
				return newStubTool(domain.ToolPickaxe, 5), f.target
			},
			wantErr: domain.ErrNoResources,
			wantMsg: "There is no metal here to mine.",
			reason:  ReasonNoResources,
		},
		{
			name: "failed skill check",
			setup: func(f *systemFixture) (Tool, interface{}) {
				f.actor.passes = false
				return newStubTool(domain.ToolPickaxe, 5), f.target
			},
			wantErr: domain.ErrHarvestFailed,
			wantMsg: "You loosen some rocks but fail to find any useable ore.",
			reason:  ReasonSkillFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSystemFixture(t)
			tool, target := tt.setup(f)
			before := f.bank().Current()

			yield, err := f.sys.Harvest(context.Background(), f.actor, tool, target)

			assert.Nil(t, yield)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, f.actor.lastMessage())
			assert.Equal(t, before, f.bank().Current(), "a refused harvest consumes nothing")

			refused := f.events.ofType(event.HarvestRefused)
			require.Len(t, refused, 1)
			payload, err := event.DecodePayload[event.HarvestRefusedPayloadV1](refused[0].Payload)
			require.NoError(t, err)
			assert.Equal(t, tt.reason, payload.Reason)
			assert.Equal(t, string(domain.SystemMining), payload.System)
		})
	}
}

func TestHarvest_ToolBreaksOnLastUse(t *testing.T) {
	f := newSystemFixture(t)
	tool := newStubTool(domain.ToolPickaxe, 1)

	yield, err := f.sys.Harvest(context.Background(), f.actor, tool, f.target)

	require.NoError(t, err)
	assert.True(t, yield.ToolBroke)
	assert.True(t, tool.Deleted())
	assert.Equal(t, f.def.Messages.ToolBroke, f.actor.lastMessage())

	_, err = f.sys.Harvest(context.Background(), f.actor, tool, f.target)
	assert.ErrorIs(t, err, domain.ErrToolWornOut)
}

func TestStartHarvesting_ConcurrentHarvestRefused(t *testing.T) {
	f := newSystemFixture(t)
	ctx := context.Background()

	attempt, err := f.sys.StartHarvesting(ctx, f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err)

	_, err = f.sys.StartHarvesting(ctx, f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	assert.ErrorIs(t, err, domain.ErrHarvestInProgress)
	assert.Equal(t, MsgAlreadyHarvesting, f.actor.lastMessage())

	other := newStubActor("actor-2")
	otherAttempt, err := f.sys.StartHarvesting(ctx, other, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err, "locks are per actor")
	assert.True(t, f.sys.CancelHarvesting(otherAttempt))

	_, err = f.sys.FinishHarvesting(ctx, attempt)
	require.NoError(t, err)

	again, err := f.sys.StartHarvesting(ctx, f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err, "lock released by finish")
	assert.True(t, f.sys.CancelHarvesting(again))
	assert.False(t, f.sys.CancelHarvesting(again))
}

func TestStartHarvesting_LockSharedAcrossSystems(t *testing.T) {
	locks := concurrency.NewActionLocks()
	clock := NewSimulatedClock(testEpoch)

	mining, err := NewSystem(domain.SystemMining, []*Definition{testDefinition(10)}, Options{Locks: locks, Clock: clock, Rand: NewRNG(1)})
	require.NoError(t, err)

	wood := testDefinition(10)
	wood.Name = "wood"
	wood.Skill = domain.SkillLumberjacking
	wood.Tiles = []int{0x4CCA}
	require.NoError(t, wood.Validate())
	lumber, err := NewSystem(domain.SystemLumberjacking, []*Definition{wood}, Options{Locks: locks, Clock: clock, Rand: NewRNG(1)})
	require.NoError(t, err)

	actor := newStubActor("actor-1")
	attempt, err := mining.StartHarvesting(context.Background(), actor, newStubTool(domain.ToolPickaxe, 5),
		LandTarget{Location: domain.Point3D{X: 100, Y: 101}, TileID: 0x00DC})
	require.NoError(t, err)

	_, err = lumber.StartHarvesting(context.Background(), actor, newStubTool(domain.ToolAxe, 5),
		StaticTarget{Location: domain.Point3D{X: 101, Y: 101}, ItemID: 0x0CCA})
	assert.ErrorIs(t, err, domain.ErrHarvestInProgress)

	mining.CancelHarvesting(attempt)
}

func TestFinishHarvesting_OnlyOnce(t *testing.T) {
	f := newSystemFixture(t)
	ctx := context.Background()

	attempt, err := f.sys.StartHarvesting(ctx, f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err)

	_, err = f.sys.FinishHarvesting(ctx, attempt)
	require.NoError(t, err)

	_, err = f.sys.FinishHarvesting(ctx, attempt)
	assert.ErrorIs(t, err, domain.ErrAttemptAlreadyDone)

	_, err = f.sys.FinishHarvesting(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrAttemptAlreadyDone)
}

func TestFinishHarvesting_RechecksWorld(t *testing.T) {
	f := newSystemFixture(t)
	ctx := context.Background()

	attempt, err := f.sys.StartHarvesting(ctx, f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err)

	// The actor walks away before the swing lands
	f.actor.loc = domain.Point3D{X: 200, Y: 200}

	_, err = f.sys.FinishHarvesting(ctx, attempt)
	assert.ErrorIs(t, err, domain.ErrOutOfRange)
	assert.Equal(t, 10, f.bank().Current())
}

func TestHarvest_DrainsBankThenRespawns(t *testing.T) {
	f := newSystemFixture(t)
	ctx := context.Background()
	tool := newStubTool(domain.ToolPickaxe, 100)

	for i := 0; i < 10; i++ {
		_, err := f.sys.Harvest(ctx, f.actor, tool, f.target)
		require.NoError(t, err, "harvest %d", i)
	}

	_, err := f.sys.Harvest(ctx, f.actor, tool, f.target)
	require.ErrorIs(t, err, domain.ErrNoResources)
	assert.Len(t, f.events.ofType(event.BankDepleted), 1)

	f.clock.Set(f.bank().NextRespawn())

	_, err = f.sys.Harvest(ctx, f.actor, tool, f.target)
	require.NoError(t, err)
	assert.Len(t, f.events.ofType(event.BankRespawned), 1)
	assert.Equal(t, 9, f.bank().Current())
}

func TestSystem_MutateVein(t *testing.T) {
	f := newSystemFixture(t)
	veins := f.def.Veins
	gargoyles := newStubTool(domain.ToolGargoylesPickaxe, 5)
	shovel := newStubTool(domain.ToolOreShovel, 5)

	assert.Same(t, veins[0], f.sys.MutateVein(gargoyles, f.def, veins[0]), "disabled for this definition")

	f.def.ToolMutatesVein = true
	assert.Same(t, veins[1], f.sys.MutateVein(gargoyles, f.def, veins[0]))
	assert.Same(t, veins[1], f.sys.MutateVein(gargoyles, f.def, veins[1]), "last vein stays")
	assert.Same(t, veins[0], f.sys.MutateVein(shovel, f.def, veins[1]))
	assert.Same(t, veins[1], f.sys.MutateVein(newStubTool(domain.ToolPickaxe, 5), f.def, veins[1]))
}

func TestSystem_GetDefinition(t *testing.T) {
	f := newSystemFixture(t)

	assert.Same(t, f.def, f.sys.GetDefinition(0x00DC))
	assert.Same(t, f.def, f.sys.GetDefinition(0x00DC), "served from cache")
	assert.Nil(t, f.sys.GetDefinition(0x1234))
	assert.Nil(t, f.sys.GetDefinition(0x1234))
}

func TestGetHarvestDetails(t *testing.T) {
	actor := newStubActor("a")
	actor.mapID = domain.MapIlshenar
	loc := domain.Point3D{X: 5, Y: 6, Z: 7}

	tests := []struct {
		name   string
		target interface{}
		want   Details
		ok     bool
	}{
		{"land", LandTarget{Location: loc, TileID: 0x00DC}, Details{TileID: 0x00DC, Map: domain.MapIlshenar, Location: loc}, true},
		{"static", StaticTarget{Location: loc, ItemID: 0x0CCA}, Details{TileID: 0x4CCA, Map: domain.MapIlshenar, Location: loc}, true},
		{"static masks high bits", StaticTarget{Location: loc, ItemID: 0xCCCA}, Details{TileID: 0x4CCA, Map: domain.MapIlshenar, Location: loc}, true},
		{"immovable item", StaticItem{Map: domain.MapTokuno, Location: loc, ItemID: 0x0CCA}, Details{TileID: 0x4CCA, Map: domain.MapTokuno, Location: loc}, true},
		{"immovable item pointer", &StaticItem{Map: domain.MapTokuno, Location: loc, ItemID: 0x0CCA}, Details{TileID: 0x4CCA, Map: domain.MapTokuno, Location: loc}, true},
		{"movable item", StaticItem{Map: domain.MapTokuno, Location: loc, ItemID: 0x0CCA, Movable: true}, Details{}, false},
		{"internal map", StaticItem{Map: domain.MapInternal, Location: loc, ItemID: 0x0CCA}, Details{TileID: 0x4CCA, Map: domain.MapInternal, Location: loc}, false},
		{"unknown", 42, Details{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetHarvestDetails(actor, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRefusalReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{fmt.Errorf("%w: pickaxe", domain.ErrToolWornOut), ReasonToolWornOut},
		{domain.ErrBadHarvestTarget, ReasonBadTarget},
		{fmt.Errorf("%w: 5 tiles", domain.ErrOutOfRange), ReasonOutOfRange},
		{domain.ErrNoResources, ReasonNoResources},
		{domain.ErrHarvestInProgress, ReasonInProgress},
		{domain.ErrHarvestFailed, ReasonSkillFailed},
		{domain.ErrInvalidInput, ReasonInvalidInput},
		{errors.New("boom"), ReasonUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RefusalReason(tt.err))
		})
	}
}

func TestFinishHarvesting_ConcurrentFinishesNeverOverdraw(t *testing.T) {
	def := testDefinition(1)
	sys, err := NewSystem(domain.SystemMining, []*Definition{def}, Options{
		Clock: NewSimulatedClock(testEpoch),
		Rand:  newSeqRand(0.5),
	})
	require.NoError(t, err)

	target := LandTarget{Location: domain.Point3D{X: 101, Y: 100}, TileID: 0x00DC}
	bank := sys.GetBank(def, domain.MapFelucca, 101, 100)
	require.Equal(t, 1, bank.Current())

	var arrived sync.WaitGroup
	release := make(chan struct{})
	actors := []*gatedActor{
		{stubActor: newStubActor("actor-1"), arrived: &arrived, release: release},
		{stubActor: newStubActor("actor-2"), arrived: &arrived, release: release},
	}
	arrived.Add(len(actors))

	type result struct {
		yield *Yield
		err   error
	}
	results := make(chan result, len(actors))
	for _, a := range actors {
		go func(a *gatedActor) {
			y, err := sys.Harvest(context.Background(), a, newStubTool(domain.ToolPickaxe, 5), target)
			results <- result{y, err}
		}(a)
	}

	// Both attempts have passed every check and wait in the skill roll
	arrived.Wait()
	close(release)

	yields, refusals := 0, 0
	for range actors {
		r := <-results
		if r.err == nil {
			yields++
			assert.Equal(t, 1, r.yield.Amount)
			continue
		}
		refusals++
		assert.ErrorIs(t, r.err, domain.ErrNoResources)
	}

	assert.Equal(t, 1, yields, "a bank holding one resource yields once")
	assert.Equal(t, 1, refusals)
	assert.Equal(t, 0, bank.Current())
}

func TestHarvest_StoneMining(t *testing.T) {
	tests := []struct {
		name    string
		stone   bool
		skill   float64
		miner   bool
		want    string
		wantMsg string
	}{
		{"stone miner extracts granite", true, 100, true, "Granite", "You carefully extract some workable stone."},
		{"stone mining not learned", false, 100, true, "IronOre", "You dig some iron ore."},
		{"skill below stone gate", true, 99, true, "IronOre", "You dig some iron ore."},
		{"actor cannot learn stone mining", false, 120, false, "IronOre", "You dig some iron ore."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSystemFixture(t)
			f.def.FirstTypeOnly = true
			f.def.StoneChance = 0.5
			f.def.StoneSkill = 100
			f.def.Messages.Stone = "You carefully extract some workable stone."
			f.rng.floats = []float64{0.1}

			f.actor.skill = tt.skill
			var actor Actor = f.actor
			if tt.miner {
				actor = &stoneActor{stubActor: f.actor, stone: tt.stone}
			}

			yield, err := f.sys.Harvest(context.Background(), actor, newStubTool(domain.ToolPickaxe, 5), f.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, yield.ItemType)
			assert.Equal(t, tt.wantMsg, f.actor.lastMessage())
		})
	}
}

func TestHarvest_StoneChanceMisses(t *testing.T) {
	f := newSystemFixture(t)
	f.def.FirstTypeOnly = true
	f.def.StoneChance = 0.5
	f.def.StoneSkill = 100
	f.rng.floats = []float64{0.9}

	actor := &stoneActor{stubActor: f.actor, stone: true}
	yield, err := f.sys.Harvest(context.Background(), actor, newStubTool(domain.ToolPickaxe, 5), f.target)
	require.NoError(t, err)
	assert.Equal(t, "IronOre", yield.ItemType)
}

func TestHarvest_BonusResources(t *testing.T) {
	bonuses := []*BonusResource{
		{Chance: 50},
		{ReqSkill: 80, Chance: 50, ItemType: "Diamond", Message: "You have found a diamond!"},
	}

	tests := []struct {
		name   string
		sample float64
		skill  float64
		want   string
	}{
		{"bonus awarded", 0.9, 100, "Diamond"},
		{"nothing drawn", 0.1, 100, ""},
		{"skill too low for the drawn bonus", 0.9, 70, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSystemFixture(t)
			f.def.BonusResources = bonuses
			f.rng.floats = []float64{tt.sample}
			f.actor.skill = tt.skill

			yield, err := f.sys.Harvest(context.Background(), f.actor, newStubTool(domain.ToolPickaxe, 5), f.target)
			require.NoError(t, err)
			assert.Equal(t, tt.want, yield.BonusItemType())
			assert.Equal(t, "IronOre", yield.ItemType, "the bonus never replaces the resource")

			completed := f.events.ofType(event.HarvestCompleted)
			require.Len(t, completed, 1)
			payload, err := event.DecodePayload[event.HarvestCompletedPayloadV1](completed[0].Payload)
			require.NoError(t, err)
			assert.Equal(t, tt.want, payload.BonusItemType)

			if tt.want != "" {
				assert.Equal(t, "You have found a diamond!", f.actor.lastMessage())
				assert.Same(t, bonuses[1], yield.Bonus)
			} else {
				assert.Nil(t, yield.Bonus)
			}
		})
	}
}
