package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Type names an event
type Type string

// Event is one notification published on a Bus. Metadata carries correlation
// ids that subscribers may log without decoding the payload.
type Event struct {
	Version  string            `json:"version"`
	Type     Type              `json:"type"`
	Payload  interface{}       `json:"payload"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AttemptID returns the harvest attempt the event belongs to, if any
func (e Event) AttemptID() string {
	return e.Metadata[MetadataKeyAttemptID]
}

// Harvest event types
const (
	BankCreated      Type = "harvest.bank.created"
	BankDepleted     Type = "harvest.bank.depleted"
	BankRespawned    Type = "harvest.bank.respawned"
	HarvestCompleted Type = "harvest.completed"
	HarvestRefused   Type = "harvest.refused"
)

// BankKeyV1 identifies a bank in event payloads
type BankKeyV1 struct {
	Definition string `json:"definition"`
	Map        int    `json:"map"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// BankStatePayloadV1 is the typed payload for bank lifecycle events
type BankStatePayloadV1 struct {
	Bank        BankKeyV1 `json:"bank"`
	Current     int       `json:"current"`
	Maximum     int       `json:"maximum"`
	Vein        int       `json:"vein"`
	NextRespawn time.Time `json:"next_respawn,omitempty"`
	Timestamp   int64     `json:"timestamp"`
}

// HarvestCompletedPayloadV1 is the typed payload for a successful harvest
type HarvestCompletedPayloadV1 struct {
	ActorID   string    `json:"actor_id"`
	AttemptID string    `json:"attempt_id"`
	Bank      BankKeyV1 `json:"bank"`
	ItemType  string    `json:"item_type"`
	Amount    int       `json:"amount"`
	// BonusItemType is set when the harvest also awarded a bonus item
	BonusItemType string `json:"bonus_item_type,omitempty"`
	ToolBroke     bool   `json:"tool_broke"`
	Timestamp     int64  `json:"timestamp"`
}

// HarvestRefusedPayloadV1 is the typed payload for a harvest that yielded nothing
type HarvestRefusedPayloadV1 struct {
	ActorID   string `json:"actor_id"`
	AttemptID string `json:"attempt_id,omitempty"`
	System    string `json:"system"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// NewBankEvent creates a bank lifecycle event with a type-safe payload
func NewBankEvent(eventType Type, payload BankStatePayloadV1) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// NewHarvestCompletedEvent creates a harvest completed event
func NewHarvestCompletedEvent(payload HarvestCompletedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     HarvestCompleted,
		Payload:  payload,
		Metadata: attemptMetadata(payload.AttemptID),
	}
}

// NewHarvestRefusedEvent creates a harvest refused event
func NewHarvestRefusedEvent(payload HarvestRefusedPayloadV1) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     HarvestRefused,
		Payload:  payload,
		Metadata: attemptMetadata(payload.AttemptID),
	}
}

func attemptMetadata(attemptID string) map[string]string {
	if attemptID == "" {
		return nil
	}
	return map[string]string{MetadataKeyAttemptID: attemptID}
}

// Handler reacts to one event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to the handlers subscribed to their type
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers events synchronously on the publishing goroutine.
// It is safe for concurrent use.
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates an empty MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler subscribed to event.Type. A failing handler does
// not stop the others; their errors are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailedFormat, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe registers handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Subscribers returns how many handlers listen for eventType
func (b *MemoryBus) Subscribers(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
