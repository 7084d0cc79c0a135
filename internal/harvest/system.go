package harvest

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/ShardHarvest_Go/internal/concurrency"
	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/event"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
)

// Attempt is a harvest that passed its start checks. It holds the actor's
// action lock until it is finished.
type Attempt struct {
	ID         string
	Actor      Actor
	Tool       Tool
	Target     interface{}
	Definition *Definition
	StartedAt  time.Time

	lockKey  string
	finished atomic.Bool
}

// Yield is the outcome of a successful harvest
type Yield struct {
	Definition *Definition
	Bank       BankKey
	Vein       *Vein
	Resource   *Resource
	ItemType   string
	Amount     int
	// Bonus is the extra item awarded alongside the resource, if any
	Bonus     *BonusResource
	ToolBroke bool
}

// BonusItemType returns the bonus item's type, or "" when none was awarded
func (y *Yield) BonusItemType() string {
	if y.Bonus == nil {
		return ""
	}
	return y.Bonus.ItemType
}

// Options holds the collaborators of a System. Zero values get defaults.
type Options struct {
	// Banks is shared by systems whose definitions should see the same registry
	Banks *BankRegistry
	// Locks is shared by every system so an actor harvests one thing at a time
	Locks     *concurrency.ActionLocks
	Clock     Clock
	Rand      Rand
	Bus       event.Bus
	CacheSize int
}

// System runs one harvest activity (mining, lumberjacking, fishing) over its definitions
type System struct {
	name        domain.HarvestSystemName
	definitions []*Definition

	banks *BankRegistry
	locks *concurrency.ActionLocks
	clock Clock
	rng   Rand
	bus   event.Bus

	tileCache *lru.Cache[int, *Definition]
}

// NewSystem validates defs and creates a system over them
func NewSystem(name domain.HarvestSystemName, defs []*Definition, opts Options) (*System, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: %s has no definitions", domain.ErrInvalidDefinition, name)
	}
	for _, d := range defs {
		if d == nil {
			return nil, fmt.Errorf("%w: %s has a nil definition", domain.ErrInvalidDefinition, name)
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
	}

	if opts.Clock == nil {
		opts.Clock = NewRealClock()
	}
	if opts.Rand == nil {
		opts.Rand = NewRNG(time.Now().UnixNano())
	}
	if opts.Locks == nil {
		opts.Locks = concurrency.NewActionLocks()
	}
	if opts.Banks == nil {
		opts.Banks = NewBankRegistry(opts.Clock, opts.Rand, NewBusObserver(opts.Bus, opts.Clock))
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = DefaultDefinitionCacheSize
	}

	cache, err := lru.New[int, *Definition](opts.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create definition cache: %w", err)
	}

	return &System{
		name:        name,
		definitions: defs,
		banks:       opts.Banks,
		locks:       opts.Locks,
		clock:       opts.Clock,
		rng:         opts.Rand,
		bus:         opts.Bus,
		tileCache:   cache,
	}, nil
}

// Name returns the system name
func (s *System) Name() domain.HarvestSystemName {
	return s.name
}

// Definitions returns the system's definitions in lookup order
func (s *System) Definitions() []*Definition {
	return s.definitions
}

// Banks returns the registry holding the system's banks
func (s *System) Banks() *BankRegistry {
	return s.banks
}

// GetDefinition returns the first definition that harvests tileID, or nil
func (s *System) GetDefinition(tileID int) *Definition {
	if def, ok := s.tileCache.Get(tileID); ok {
		return def
	}

	var found *Definition
	for _, d := range s.definitions {
		if d.ValidateTile(tileID) {
			found = d
			break
		}
	}

	s.tileCache.Add(tileID, found)
	return found
}

// GetBank returns the bank of def at a location
func (s *System) GetBank(def *Definition, mapID domain.MapID, x, y int) *Bank {
	return s.banks.GetBank(def, mapID, x, y)
}

// CheckTool refuses missing, deleted and worn out tools
func (s *System) CheckTool(actor Actor, tool Tool) error {
	if tool == nil || tool.Deleted() || tool.UsesRemaining() <= 0 {
		actor.SendMessage(MsgToolWornOut)
		return domain.ErrToolWornOut
	}
	return nil
}

// CheckRange requires the actor to be on the target's map and within the definition's reach
func (s *System) CheckRange(actor Actor, def *Definition, d Details) error {
	if actor.Map() == d.Map && actor.Location().InRange(d.Location, def.MaxRange) {
		return nil
	}
	sendMessage(actor, def.Messages.OutOfRange)
	return fmt.Errorf("%w: %s at %v", domain.ErrOutOfRange, def.Name, d.Location)
}

// CheckResources requires the target's bank to hold at least one harvest's worth
func (s *System) CheckResources(actor Actor, def *Definition, d Details) error {
	if d.Location.IsZero() {
		return fmt.Errorf("%w: target has no location", domain.ErrInvalidInput)
	}

	bank := s.banks.GetBank(def, d.Map, d.Location.X, d.Location.Y)
	if bank != nil && bank.Current() >= def.ConsumedPerHarvest {
		return nil
	}
	sendMessage(actor, def.Messages.NoResources)
	return fmt.Errorf("%w: %s at %v", domain.ErrNoResources, def.Name, d.Location)
}

// StartHarvesting validates a harvest request and claims the actor's action lock.
// The returned attempt must be passed to FinishHarvesting.
func (s *System) StartHarvesting(ctx context.Context, actor Actor, tool Tool, target interface{}) (*Attempt, error) {
	id := logger.NewAttemptID()
	ctx = logger.WithAttemptID(ctx, id)
	log := logger.FromContext(ctx)

	// 1. Tool
	if err := s.CheckTool(actor, tool); err != nil {
		return nil, s.refuse(ctx, actor, id, err)
	}

	// 2. Target and definition
	d, ok := GetHarvestDetails(actor, target)
	if !ok {
		return nil, s.refuse(ctx, actor, id, s.badTarget(actor, "unsupported target"))
	}
	def := s.GetDefinition(d.TileID)
	if def == nil {
		return nil, s.refuse(ctx, actor, id, s.badTarget(actor, fmt.Sprintf("%v: tile %#x", domain.ErrNoDefinition, d.TileID)))
	}

	// 3. Range and resources
	if err := s.CheckRange(actor, def, d); err != nil {
		return nil, s.refuse(ctx, actor, id, err)
	}
	if err := s.CheckResources(actor, def, d); err != nil {
		return nil, s.refuse(ctx, actor, id, err)
	}

	// 4. One harvest at a time per actor
	lockKey := actionLockPrefix + actor.ID()
	if !s.locks.Begin(lockKey) {
		actor.SendMessage(MsgAlreadyHarvesting)
		return nil, s.refuse(ctx, actor, id, domain.ErrHarvestInProgress)
	}

	log.Debug(LogMsgHarvestStarted, "system", s.name, "definition", def.Name, "actor", actor.ID(),
		"map", d.Map, "x", d.Location.X, "y", d.Location.Y)

	return &Attempt{
		ID:         id,
		Actor:      actor,
		Tool:       tool,
		Target:     target,
		Definition: def,
		StartedAt:  s.clock.Now(),
		lockKey:    lockKey,
	}, nil
}

// FinishHarvesting releases the attempt's lock, repeats the start checks
// against the current world and extracts a resource on success.
func (s *System) FinishHarvesting(ctx context.Context, a *Attempt) (*Yield, error) {
	if a == nil || !a.finished.CompareAndSwap(false, true) {
		return nil, domain.ErrAttemptAlreadyDone
	}
	s.locks.End(a.lockKey)

	ctx = logger.WithAttemptID(ctx, a.ID)
	log := logger.FromContext(ctx)
	actor, tool, def := a.Actor, a.Tool, a.Definition

	// 1. Re-validate, the world may have changed since the attempt started
	if err := s.CheckTool(actor, tool); err != nil {
		return nil, s.refuse(ctx, actor, a.ID, err)
	}
	d, ok := GetHarvestDetails(actor, a.Target)
	if !ok || !def.ValidateTile(d.TileID) {
		return nil, s.refuse(ctx, actor, a.ID, s.badTarget(actor, "target changed"))
	}
	if err := s.CheckRange(actor, def, d); err != nil {
		return nil, s.refuse(ctx, actor, a.ID, err)
	}
	if err := s.CheckResources(actor, def, d); err != nil {
		return nil, s.refuse(ctx, actor, a.ID, err)
	}

	// 2. Vein and resource
	bank := s.banks.GetBank(def, d.Map, d.Location.X, d.Location.Y)
	if bank == nil {
		return nil, s.refuse(ctx, actor, a.ID, domain.ErrNoResources)
	}
	vein := s.MutateVein(tool, def, bank.Vein())
	if vein == nil {
		return nil, s.refuse(ctx, actor, a.ID, domain.ErrHarvestFailed)
	}

	skill := actor.SkillValue(def.Skill)
	resource := def.ResolveResource(vein, actor, skill, s.rng.Float64())

	// 3. Skill check
	if skill < resource.ReqSkill || !actor.CheckSkill(def.Skill, resource.MinSkill, resource.MaxSkill) {
		sendMessage(actor, def.Messages.Fail)
		log.Debug(LogMsgHarvestSkillFailed, "definition", def.Name, "skill", skill, "req", resource.ReqSkill)
		return nil, s.refuse(ctx, actor, a.ID, domain.ErrHarvestFailed)
	}

	// 4. Extract. Another harvester may have drained the bank since the
	// checks above, so availability is settled by the bank itself.
	amount := def.ConsumedPerHarvest
	if !bank.TryConsume(amount, actor) {
		sendMessage(actor, def.Messages.NoResources)
		return nil, s.refuse(ctx, actor, a.ID, fmt.Errorf("%w: %s at %v", domain.ErrNoResources, def.Name, d.Location))
	}

	itemType, stone := s.resourceType(def, resource, actor, skill)
	if stone && def.Messages.Stone != "" {
		sendMessage(actor, def.Messages.Stone)
	} else {
		sendMessage(actor, resource.Message)
	}

	yield := &Yield{
		Definition: def,
		Bank:       bank.Key(),
		Vein:       vein,
		Resource:   resource,
		ItemType:   itemType,
		Amount:     amount,
		Bonus:      s.rollBonus(actor, def, skill),
		ToolBroke:  s.wearTool(ctx, actor, def, tool),
	}

	log.Info(LogMsgHarvestFinished, "system", s.name, "definition", def.Name, "actor", actor.ID(),
		"item_type", itemType, "amount", amount, "bonus", yield.BonusItemType())
	s.publishCompleted(ctx, a, yield, s.clock.Now())

	return yield, nil
}

// Harvest starts and immediately finishes a harvest
func (s *System) Harvest(ctx context.Context, actor Actor, tool Tool, target interface{}) (*Yield, error) {
	a, err := s.StartHarvesting(ctx, actor, tool, target)
	if err != nil {
		return nil, err
	}
	return s.FinishHarvesting(ctx, a)
}

// CancelHarvesting releases an unfinished attempt's lock without harvesting.
// It reports false if the attempt was already finished or cancelled.
func (s *System) CancelHarvesting(a *Attempt) bool {
	if a == nil || !a.finished.CompareAndSwap(false, true) {
		return false
	}
	s.locks.End(a.lockKey)
	return true
}

// MutateVein lets specialist tools change the vein being worked. A gargoyle's
// pickaxe moves one vein down the definition's list; an ore shovel always
// works the first vein.
func (s *System) MutateVein(tool Tool, def *Definition, vein *Vein) *Vein {
	if tool == nil || !def.ToolMutatesVein {
		return vein
	}

	switch tool.Kind() {
	case domain.ToolGargoylesPickaxe:
		if i := def.VeinIndex(vein); i >= 0 && i < len(def.Veins)-1 {
			return def.Veins[i+1]
		}
	case domain.ToolOreShovel:
		return def.Veins[0]
	}

	return vein
}

// resourceType picks the item a resource yields and reports whether it is the
// stone variant. Stone miners with enough skill sometimes extract the
// resource's second type instead of its first.
func (s *System) resourceType(def *Definition, r *Resource, actor Actor, skill float64) (string, bool) {
	if def.StoneChance > 0 && len(r.Types) > 1 && skill >= def.StoneSkill {
		if miner, ok := actor.(StoneMiner); ok && miner.StoneMining() && s.rng.Float64() < def.StoneChance {
			return r.Types[1], true
		}
	}
	if def.FirstTypeOnly || len(r.Types) == 1 {
		return r.Types[0], false
	}
	return r.Types[s.rng.Intn(len(r.Types))], false
}

// rollBonus draws once from the definition's bonus table. Empty entries and
// entries above the actor's skill award nothing.
func (s *System) rollBonus(actor Actor, def *Definition, skill float64) *BonusResource {
	if len(def.BonusResources) == 0 {
		return nil
	}
	b := def.BonusFrom(s.rng.Float64())
	if b == nil || b.ItemType == "" || skill < b.ReqSkill {
		return nil
	}
	sendMessage(actor, b.Message)
	return b
}

// wearTool uses up one charge and reports whether the tool broke
func (s *System) wearTool(ctx context.Context, actor Actor, def *Definition, tool Tool) bool {
	if tool.UsesRemaining() > 0 && tool.Use() > 0 {
		return false
	}

	msg := def.Messages.ToolBroke
	if msg == "" {
		msg = MsgToolWornOut
	}
	actor.SendMessage(msg)
	logger.FromContext(ctx).Debug(LogMsgToolBroke, "actor", actor.ID(), "tool", tool.Kind())
	return true
}

func (s *System) badTarget(actor Actor, detail string) error {
	actor.SendMessage(MsgCannotHarvest)
	return fmt.Errorf("%w: %s", domain.ErrBadHarvestTarget, detail)
}

func (s *System) refuse(ctx context.Context, actor Actor, attemptID string, err error) error {
	logger.FromContext(ctx).Debug(LogMsgHarvestRefused, "system", s.name, "actor", actor.ID(), "error", err)
	s.publishRefused(ctx, actor, attemptID, err)
	return err
}

// RefusalReason maps a harvest error to the reason reported on refused events
func RefusalReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrToolWornOut):
		return ReasonToolWornOut
	case errors.Is(err, domain.ErrBadHarvestTarget):
		return ReasonBadTarget
	case errors.Is(err, domain.ErrOutOfRange):
		return ReasonOutOfRange
	case errors.Is(err, domain.ErrNoResources):
		return ReasonNoResources
	case errors.Is(err, domain.ErrHarvestInProgress):
		return ReasonInProgress
	case errors.Is(err, domain.ErrHarvestFailed):
		return ReasonSkillFailed
	case errors.Is(err, domain.ErrInvalidInput):
		return ReasonInvalidInput
	default:
		return ReasonUnknown
	}
}
