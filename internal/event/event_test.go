package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got []Event

	bus.Subscribe(BankDepleted, func(ctx context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	evt := NewBankEvent(BankDepleted, BankStatePayloadV1{Maximum: 12})
	require.NoError(t, bus.Publish(context.Background(), evt))
	require.NoError(t, bus.Publish(context.Background(), NewBankEvent(BankCreated, BankStatePayloadV1{})))

	require.Len(t, got, 1)
	assert.Equal(t, BankDepleted, got[0].Type)
	assert.Equal(t, EventSchemaVersion, got[0].Version)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: HarvestCompleted}))
	assert.Zero(t, bus.Subscribers(HarvestCompleted))
}

func TestMemoryBus_HandlerErrorsAreJoined(t *testing.T) {
	bus := NewMemoryBus()
	errA := errors.New("metrics down")
	errB := errors.New("audit down")
	calls := 0

	bus.Subscribe(HarvestRefused, func(context.Context, Event) error { calls++; return errA })
	bus.Subscribe(HarvestRefused, func(context.Context, Event) error { calls++; return nil })
	bus.Subscribe(HarvestRefused, func(context.Context, Event) error { calls++; return errB })

	err := bus.Publish(context.Background(), Event{Type: HarvestRefused})
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
	assert.Contains(t, err.Error(), "2 handler(s) failed")
	assert.Equal(t, 3, bus.Subscribers(HarvestRefused))
}

func TestMemoryBus_ConcurrentPublish(t *testing.T) {
	bus := NewMemoryBus()
	var mu sync.Mutex
	count := 0
	bus.Subscribe(HarvestCompleted, func(context.Context, Event) error {
		mu.Lock()
		count++
		mu.Unlock()
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = bus.Publish(context.Background(), Event{Type: HarvestCompleted})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, count)
}

func TestNewHarvestCompletedEvent(t *testing.T) {
	evt := NewHarvestCompletedEvent(HarvestCompletedPayloadV1{
		ActorID:   "actor-1",
		AttemptID: "attempt-1",
		Bank:      BankKeyV1{Definition: "ore", Map: 1, X: 10, Y: 20},
		ItemType:  "iron_ore",
		Amount:    2,
	})

	assert.Equal(t, HarvestCompleted, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, "attempt-1", evt.AttemptID())
}

func TestNewHarvestRefusedEvent(t *testing.T) {
	evt := NewHarvestRefusedEvent(HarvestRefusedPayloadV1{
		ActorID:   "actor-1",
		AttemptID: "attempt-9",
		System:    "mining",
		Reason:    "out_of_range",
	})
	assert.Equal(t, HarvestRefused, evt.Type)
	assert.Equal(t, "attempt-9", evt.AttemptID())

	// refusals before an attempt starts carry no id
	early := NewHarvestRefusedEvent(HarvestRefusedPayloadV1{ActorID: "actor-1", Reason: "tool_worn_out"})
	assert.Nil(t, early.Metadata)
	assert.Empty(t, early.AttemptID())
	assert.Empty(t, Event{}.AttemptID())
}

func TestDecodePayload(t *testing.T) {
	t.Run("typed payload passes through", func(t *testing.T) {
		evt := NewBankEvent(BankDepleted, BankStatePayloadV1{Current: 0, Maximum: 12})

		got, err := DecodePayload[BankStatePayloadV1](evt.Payload)
		require.NoError(t, err)
		assert.Equal(t, 12, got.Maximum)
	})

	t.Run("generic map payload is converted", func(t *testing.T) {
		raw := map[string]interface{}{
			"actor_id": "actor-2",
			"amount":   3,
		}

		got, err := DecodePayload[HarvestCompletedPayloadV1](raw)
		require.NoError(t, err)
		assert.Equal(t, "actor-2", got.ActorID)
		assert.Equal(t, 3, got.Amount)
	})

	t.Run("mismatched payload fails", func(t *testing.T) {
		_, err := DecodePayload[BankStatePayloadV1]("not a bank")
		assert.Error(t, err)
	})
}
