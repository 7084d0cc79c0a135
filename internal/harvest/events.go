package harvest

import (
	"context"
	"time"

	"github.com/osse101/ShardHarvest_Go/internal/event"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
)

// BusObserver publishes bank lifecycle changes to an event bus
type BusObserver struct {
	bus   event.Bus
	clock Clock
}

// NewBusObserver creates an observer publishing on bus. A nil bus drops every event.
func NewBusObserver(bus event.Bus, clock Clock) *BusObserver {
	return &BusObserver{bus: bus, clock: clock}
}

// BankCreated publishes a bank created event
func (o *BusObserver) BankCreated(s BankSnapshot) {
	o.publishBank(event.BankCreated, LogMsgBankCreated, s)
}

// BankRespawned publishes a bank respawned event
func (o *BusObserver) BankRespawned(s BankSnapshot) {
	o.publishBank(event.BankRespawned, LogMsgBankRespawned, s)
}

// BankDepleted publishes a bank depleted event
func (o *BusObserver) BankDepleted(s BankSnapshot) {
	o.publishBank(event.BankDepleted, LogMsgBankDepleted, s)
}

func (o *BusObserver) publishBank(eventType event.Type, msg string, s BankSnapshot) {
	ctx := context.Background()
	log := logger.FromContext(ctx)
	log.Debug(msg, "definition", s.Key.Definition, "map", s.Key.Map, "x", s.Key.X, "y", s.Key.Y,
		"current", s.Current, "maximum", s.Maximum)

	if o.bus == nil {
		return
	}

	payload := event.BankStatePayloadV1{
		Bank:        bankKeyPayload(s.Key),
		Current:     s.Current,
		Maximum:     s.Maximum,
		Vein:        s.VeinIndex,
		NextRespawn: s.NextRespawn,
		Timestamp:   o.clock.Now().Unix(),
	}
	if err := o.bus.Publish(ctx, event.NewBankEvent(eventType, payload)); err != nil {
		log.Warn(LogMsgEventPublishFailed, "type", eventType, "error", err)
	}
}

func bankKeyPayload(k BankKey) event.BankKeyV1 {
	return event.BankKeyV1{
		Definition: k.Definition,
		Map:        int(k.Map),
		X:          k.X,
		Y:          k.Y,
	}
}

func (s *System) publishCompleted(ctx context.Context, a *Attempt, y *Yield, now time.Time) {
	if s.bus == nil {
		return
	}
	payload := event.HarvestCompletedPayloadV1{
		ActorID:       a.Actor.ID(),
		AttemptID:     a.ID,
		Bank:          bankKeyPayload(y.Bank),
		ItemType:      y.ItemType,
		Amount:        y.Amount,
		BonusItemType: y.BonusItemType(),
		ToolBroke:     y.ToolBroke,
		Timestamp:     now.Unix(),
	}
	if err := s.bus.Publish(ctx, event.NewHarvestCompletedEvent(payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", event.HarvestCompleted, "error", err)
	}
}

func (s *System) publishRefused(ctx context.Context, actor Actor, attemptID string, reason error) {
	if s.bus == nil {
		return
	}
	payload := event.HarvestRefusedPayloadV1{
		ActorID:   actor.ID(),
		AttemptID: attemptID,
		System:    string(s.name),
		Reason:    RefusalReason(reason),
		Timestamp: s.clock.Now().Unix(),
	}
	if err := s.bus.Publish(ctx, event.NewHarvestRefusedEvent(payload)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", event.HarvestRefused, "error", err)
	}
}
