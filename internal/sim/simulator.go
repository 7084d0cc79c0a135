// Package sim drives crowds of simulated actors against the harvest catalog.
package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/ShardHarvest_Go/internal/catalog"
	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
	"github.com/osse101/ShardHarvest_Go/internal/target"
	"github.com/osse101/ShardHarvest_Go/internal/worker"
)

// Options sizes a simulation run
type Options struct {
	Workers int
	Actors  int
	Rounds  int
	Step    time.Duration
	Seed    int64
	// QueueSize defaults to Actors
	QueueSize int
}

// Simulator runs rounds of harvest attempts. In each round every actor
// makes one attempt; the simulated clock then advances by Step.
type Simulator struct {
	catalog *catalog.Catalog
	clock   *harvest.SimulatedClock
	rng     harvest.Rand
	opts    Options

	slots []*slot
}

// slot is one actor with the system, tool and target it works
type slot struct {
	actor      *Actor
	system     *harvest.System
	dispatcher *target.Dispatcher
	toolKind   domain.ToolKind
	target     interface{}

	mu   sync.Mutex
	tool *Tool
}

// New lays out Actors actors around the work site. rng drives placement,
// skill checks and tool choice; it is usually the catalog's random source.
func New(cat *catalog.Catalog, clock *harvest.SimulatedClock, rng harvest.Rand, opts Options) (*Simulator, error) {
	if cat == nil || clock == nil || rng == nil {
		return nil, fmt.Errorf("%w: simulator needs a catalog, clock and random source", domain.ErrInvalidInput)
	}
	if opts.Actors < 1 || opts.Rounds < 1 {
		return nil, fmt.Errorf("%w: actors and rounds must be positive", domain.ErrInvalidInput)
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = opts.Actors
	}

	s := &Simulator{catalog: cat, clock: clock, rng: rng, opts: opts}
	for i := 0; i < opts.Actors; i++ {
		s.slots = append(s.slots, s.place(i))
	}
	return s, nil
}

// place creates actor i. Actors cycle through the systems and are packed
// onto a strip of tiles so that several of them share each bank.
func (s *Simulator) place(i int) *slot {
	span := s.opts.Actors * tilesPerActor
	loc := domain.Point3D{
		X: originX + s.rng.Intn(span),
		Y: originY + s.rng.Intn(span/2+1),
	}

	race := domain.RaceHuman
	if s.rng.Float64() < elfShare {
		race = domain.RaceElf
	}
	skill := minSkill + s.rng.Float64()*(maxSkill-minSkill)

	a := NewActor(fmt.Sprintf("actor-%03d", i), race, loc, skill, s.rng)
	a.inRegion = s.rng.Float64() < bonusRegionShare
	a.stone = s.rng.Float64() < stoneMinerShare

	w := &slot{actor: a}
	use := func(sys *harvest.System) {
		w.system = sys
		w.dispatcher = target.NewDispatcher(sys)
	}
	next := domain.Point3D{X: loc.X + 1, Y: loc.Y}

	switch i % 3 {
	case 0:
		use(s.catalog.Mining)
		w.toolKind = s.miningTool()
		w.target = harvest.LandTarget{Location: next, TileID: pick(s.rng, catalog.MountainAndCaveTiles)}
	case 1:
		use(s.catalog.Lumberjacking)
		w.toolKind = domain.ToolAxe
		w.target = harvest.StaticTarget{Location: next, ItemID: pick(s.rng, catalog.TreeTiles) & harvest.TileIDBitmask}
	default:
		use(s.catalog.Fishing)
		w.toolKind = domain.ToolFishingPole
		w.target = harvest.LandTarget{Location: domain.Point3D{X: loc.X + 3, Y: loc.Y}, TileID: pick(s.rng, catalog.WaterTiles[:4])}
	}
	w.tool = NewTool(w.toolKind, toolUses)
	return w
}

func (s *Simulator) miningTool() domain.ToolKind {
	roll := s.rng.Float64()
	switch {
	case roll < gargoyleToolRate:
		return domain.ToolGargoylesPickaxe
	case roll < gargoyleToolRate+oreShovelRate:
		return domain.ToolOreShovel
	default:
		return domain.ToolPickaxe
	}
}

func pick(rng harvest.Rand, tiles []int) int {
	return tiles[rng.Intn(len(tiles))]
}

// Actors returns the simulated actors in placement order
func (s *Simulator) Actors() []*Actor {
	out := make([]*Actor, len(s.slots))
	for i, w := range s.slots {
		out[i] = w.actor
	}
	return out
}

// Run plays every round and returns the report. A cancelled context stops
// the run after the current round and returns the partial report with the
// context's error.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	log := logger.FromContext(ctx)
	report := newReport(s.opts.Seed, len(s.slots), s.opts.Rounds)

	pool := worker.NewPool(s.opts.Workers, s.opts.QueueSize)
	pool.Start(ctx)
	defer pool.Stop()

	log.Info(LogMsgSimStarted, "actors", len(s.slots), "rounds", s.opts.Rounds, "workers", s.opts.Workers)

	var runErr error
	for round := 0; round < s.opts.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			log.Warn(LogMsgSimCancelled, "round", round)
			runErr = err
			break
		}

		var wg sync.WaitGroup
		for _, w := range s.slots {
			w := w
			wg.Add(1)
			pool.Enqueue(worker.JobFunc(func(ctx context.Context) error {
				defer wg.Done()
				return s.attempt(ctx, w, report)
			}))
		}
		wg.Wait()

		s.clock.Advance(s.opts.Step)
		log.Debug(LogMsgSimRound, "round", round, "now", s.clock.Now())
	}

	report.complete(s.clock.Now(), s.catalog.Banks().Snapshots())
	log.Info(LogMsgSimFinished, "attempts", report.Attempts, "completed", report.Completed,
		"refused", report.Refusals(), "banks", len(report.Banks))

	return report, runErr
}

// attempt makes one harvest for w. Refusals are recorded, not returned;
// only unexpected errors reach the pool.
func (s *Simulator) attempt(ctx context.Context, w *slot, report *Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tool.Deleted() {
		w.tool = NewTool(w.toolKind, toolUses)
	}

	res, err := w.dispatcher.OnTarget(ctx, w.actor, w.tool, w.target)
	report.recordOutcome(res.Outcome.String())
	if err != nil {
		report.recordRefusal(err)
		return nil
	}
	if res.Attempt == nil {
		return nil
	}

	y, err := w.system.FinishHarvesting(ctx, res.Attempt)
	if err != nil {
		report.recordRefusal(err)
		if errors.Is(err, domain.ErrAttemptAlreadyDone) {
			return err
		}
		return nil
	}
	report.recordYield(y)
	return nil
}
