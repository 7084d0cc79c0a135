package target

import (
	"context"
	"fmt"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
)

// Outcome reports how a targeted object was handled
type Outcome int

const (
	// OutcomeHarvest means the target was handed to the harvest system
	OutcomeHarvest Outcome = iota
	OutcomeProtected
	OutcomeChopped
	OutcomeAxed
	OutcomeAxeRefused
	OutcomeNotInBackpack
	OutcomeCarved
	OutcomeFurnitureDestroyed
	OutcomeFurnitureOutOfRange
	OutcomeFurnitureImmovable
	OutcomeDig
)

var outcomeNames = map[Outcome]string{
	OutcomeHarvest:             "harvest",
	OutcomeProtected:           "protected",
	OutcomeChopped:             "chopped",
	OutcomeAxed:                "axed",
	OutcomeAxeRefused:          "axe_refused",
	OutcomeNotInBackpack:       "not_in_backpack",
	OutcomeCarved:              "carved",
	OutcomeFurnitureDestroyed:  "furniture_destroyed",
	OutcomeFurnitureOutOfRange: "furniture_out_of_range",
	OutcomeFurnitureImmovable:  "furniture_immovable",
	OutcomeDig:                 "dig",
}

func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Item is a world or backpack item that can be targeted
type Item interface {
	Location() domain.Point3D
	Movable() bool
	// InBackpackOf reports whether the item is anywhere inside the actor's backpack
	InBackpackOf(actor harvest.Actor) bool
	// PlaySound plays a sound at the item's world location
	PlaySound(soundID int)
	Delete()
}

// ProtectedLandmark marks objects no tool may damage, such as tombstones
type ProtectedLandmark interface {
	IsProtectedLandmark() bool
}

// Chopable objects react to being chopped
type Chopable interface {
	OnChop(actor harvest.Actor)
}

// Axeable items are converted by an axe from the actor's backpack
type Axeable interface {
	Item
	// Axe reports whether the item was converted
	Axe(actor harvest.Actor, tool harvest.Tool) bool
}

// Carvable objects are carved with a bladed tool
type Carvable interface {
	Carve(actor harvest.Actor, tool harvest.Tool)
}

// Furniture can be smashed with an axe
type Furniture interface {
	Item
	IsFurniture() bool
}

// Container is an item holding other items
type Container interface {
	// Destroy deletes the container and drops or deletes its contents
	Destroy()
}

// Trapped containers fire their trap on whoever breaks them
type Trapped interface {
	ExecuteTrap(actor harvest.Actor)
}

// TreasureMap starts a dig at its marked location
type TreasureMap interface {
	BeginDig(actor harvest.Actor)
}

// Starter starts a harvest. *harvest.System satisfies it.
type Starter interface {
	Name() domain.HarvestSystemName
	StartHarvesting(ctx context.Context, actor harvest.Actor, tool harvest.Tool, target interface{}) (*harvest.Attempt, error)
}

// Result is the outcome of a dispatch. Attempt is set when the target
// started a harvest.
type Result struct {
	Outcome Outcome
	Attempt *harvest.Attempt
}

// Dispatcher routes a selected target to its special-case handler or to the
// harvest system
type Dispatcher struct {
	system Starter
}

// NewDispatcher creates a dispatcher for system
func NewDispatcher(system Starter) *Dispatcher {
	return &Dispatcher{system: system}
}

// OnTarget handles an object the actor selected with tool. Errors come only
// from the harvest system.
func (d *Dispatcher) OnTarget(ctx context.Context, actor harvest.Actor, tool harvest.Tool, targeted interface{}) (Result, error) {
	var res Result
	var err error

	switch d.system.Name() {
	case domain.SystemLumberjacking:
		res, err = d.lumberjacking(ctx, actor, tool, targeted)
	case domain.SystemMining:
		res, err = d.mining(ctx, actor, tool, targeted)
	default:
		res, err = d.harvest(ctx, actor, tool, targeted)
	}

	logger.FromContext(ctx).Debug(LogMsgTargetDispatched, "system", d.system.Name(), "actor", actor.ID(), "outcome", res.Outcome)
	return res, err
}

func (d *Dispatcher) lumberjacking(ctx context.Context, actor harvest.Actor, tool harvest.Tool, targeted interface{}) (Result, error) {
	if p, ok := targeted.(ProtectedLandmark); ok && p.IsProtectedLandmark() {
		actor.SendMessage(MsgLandmarkProtected)
		return Result{Outcome: OutcomeProtected}, nil
	}

	if c, ok := targeted.(Chopable); ok {
		c.OnChop(actor)
		return Result{Outcome: OutcomeChopped}, nil
	}

	if a, ok := targeted.(Axeable); ok && tool != nil && tool.Kind().IsAxe() {
		return Result{Outcome: axe(actor, tool, a)}, nil
	}

	if c, ok := targeted.(Carvable); ok {
		c.Carve(actor, tool)
		return Result{Outcome: OutcomeCarved}, nil
	}

	if f, ok := targeted.(Furniture); ok && f.IsFurniture() {
		return Result{Outcome: destroyFurniture(actor, f)}, nil
	}

	return d.harvest(ctx, actor, tool, targeted)
}

func (d *Dispatcher) mining(ctx context.Context, actor harvest.Actor, tool harvest.Tool, targeted interface{}) (Result, error) {
	if m, ok := targeted.(TreasureMap); ok {
		m.BeginDig(actor)
		return Result{Outcome: OutcomeDig}, nil
	}

	return d.harvest(ctx, actor, tool, targeted)
}

func (d *Dispatcher) harvest(ctx context.Context, actor harvest.Actor, tool harvest.Tool, targeted interface{}) (Result, error) {
	attempt, err := d.system.StartHarvesting(ctx, actor, tool, targeted)
	if err != nil {
		return Result{Outcome: OutcomeHarvest}, err
	}
	return Result{Outcome: OutcomeHarvest, Attempt: attempt}, nil
}

func axe(actor harvest.Actor, tool harvest.Tool, item Axeable) Outcome {
	if !item.InBackpackOf(actor) {
		actor.SendMessage(MsgMustBeInBackpack)
		return OutcomeNotInBackpack
	}

	if !item.Axe(actor, tool) {
		return OutcomeAxeRefused
	}
	actor.PlaySound(SoundAxeAction)
	return OutcomeAxed
}

func destroyFurniture(actor harvest.Actor, item Furniture) Outcome {
	if !actor.Location().InRange(item.Location(), FurnitureDestroyRange) {
		actor.SendMessage(MsgTooFarAway)
		return OutcomeFurnitureOutOfRange
	}
	if !item.InBackpackOf(actor) && !item.Movable() {
		actor.SendMessage(MsgCannotDestroyHere)
		return OutcomeFurnitureImmovable
	}

	actor.SendMessage(MsgFurnitureDestroyed)
	item.PlaySound(SoundFurnitureDestroy)

	if c, ok := item.(Container); ok {
		if trap, ok := item.(Trapped); ok {
			trap.ExecuteTrap(actor)
		}
		c.Destroy()
		return OutcomeFurnitureDestroyed
	}

	item.Delete()
	return OutcomeFurnitureDestroyed
}
