package metrics

import (
	"context"

	"github.com/osse101/ShardHarvest_Go/internal/event"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
)

// EventMetricsCollector subscribes to harvest events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all harvest events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.BankCreated,
		event.BankRespawned,
		event.BankDepleted,
		event.HarvestCompleted,
		event.HarvestRefused,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Undecodable payloads are
// counted and logged but never fail the publisher.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.BankCreated, event.BankRespawned, event.BankDepleted:
		err = recordBank(evt)
	case event.HarvestCompleted:
		err = recordCompleted(evt)
	case event.HarvestRefused:
		err = recordRefused(evt)
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordBank(evt event.Event) error {
	p, err := event.DecodePayload[event.BankStatePayloadV1](evt.Payload)
	if err != nil {
		return err
	}

	def := p.Bank.Definition
	switch evt.Type {
	case event.BankCreated:
		BanksCreated.WithLabelValues(def).Inc()
		BanksActive.WithLabelValues(def).Inc()
	case event.BankRespawned:
		BanksRespawned.WithLabelValues(def).Inc()
	case event.BankDepleted:
		BanksDepleted.WithLabelValues(def).Inc()
	}
	return nil
}

func recordCompleted(evt event.Event) error {
	p, err := event.DecodePayload[event.HarvestCompletedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}

	HarvestsCompleted.WithLabelValues(p.Bank.Definition, p.ItemType).Inc()
	HarvestedAmount.WithLabelValues(p.Bank.Definition).Add(float64(p.Amount))
	if p.BonusItemType != "" {
		BonusesAwarded.WithLabelValues(p.Bank.Definition, p.BonusItemType).Inc()
	}
	if p.ToolBroke {
		ToolsBroken.Inc()
	}
	return nil
}

func recordRefused(evt event.Event) error {
	p, err := event.DecodePayload[event.HarvestRefusedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}

	HarvestsRefused.WithLabelValues(p.System, p.Reason).Inc()
	return nil
}
