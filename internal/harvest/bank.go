package harvest

import (
	"sync"
	"time"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
)

// BankKey identifies one bank: a definition and a grid cell on a facet
type BankKey struct {
	Definition string
	Map        domain.MapID
	X          int
	Y          int
}

// BankSnapshot is a point-in-time copy of a bank's state
type BankSnapshot struct {
	Key         BankKey
	Current     int
	Maximum     int
	NextRespawn time.Time
	VeinIndex   int
}

// Observer is notified of bank lifecycle changes. Callbacks run after the
// bank's lock is released and must not block.
type Observer interface {
	BankCreated(s BankSnapshot)
	BankRespawned(s BankSnapshot)
	BankDepleted(s BankSnapshot)
}

type noopObserver struct{}

func (noopObserver) BankCreated(BankSnapshot)   {}
func (noopObserver) BankRespawned(BankSnapshot) {}
func (noopObserver) BankDepleted(BankSnapshot)  {}

// Bank tracks the remaining resources of one location. Respawn is lazy: a
// depleted bank refills the first time it is touched after its deadline.
type Bank struct {
	mu sync.Mutex

	key      BankKey
	def      *Definition
	clock    Clock
	rng      Rand
	observer Observer

	current     int
	maximum     int
	nextRespawn time.Time
	vein        *Vein
	defaultVein *Vein
}

// NewBank creates a full bank for def whose current and default vein are defaultVein
func NewBank(def *Definition, defaultVein *Vein, clock Clock, rng Rand) *Bank {
	return newBank(BankKey{Definition: def.Name}, def, defaultVein, clock, rng, nil)
}

func newBank(key BankKey, def *Definition, defaultVein *Vein, clock Clock, rng Rand, observer Observer) *Bank {
	if observer == nil {
		observer = noopObserver{}
	}
	maximum := randomMinMax(rng, def.MinTotal, def.MaxTotal)
	return &Bank{
		key:         key,
		def:         def,
		clock:       clock,
		rng:         rng,
		observer:    observer,
		current:     maximum,
		maximum:     maximum,
		vein:        defaultVein,
		defaultVein: defaultVein,
	}
}

// Key returns the bank's registry key
func (b *Bank) Key() BankKey {
	return b.key
}

// Definition returns the definition the bank belongs to
func (b *Bank) Definition() *Definition {
	return b.def
}

// Current returns the resources left
func (b *Bank) Current() int {
	var current int
	b.read(func() { current = b.current })
	return current
}

// Maximum returns the bank's capacity
func (b *Bank) Maximum() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.maximum
}

// NextRespawn returns when the bank refills. The zero time means the bank was never tapped.
func (b *Bank) NextRespawn() time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nextRespawn
}

// Vein returns the vein currently yielded by the bank
func (b *Bank) Vein() *Vein {
	var v *Vein
	b.read(func() { v = b.vein })
	return v
}

// SetVein overrides the current vein until the next respawn
func (b *Bank) SetVein(v *Vein) {
	b.mu.Lock()
	b.vein = v
	b.mu.Unlock()
}

// DefaultVein returns the vein the bank reverts to on respawn
func (b *Bank) DefaultVein() *Vein {
	var v *Vein
	b.read(func() { v = b.defaultVein })
	return v
}

// Snapshot returns a copy of the bank's state without triggering a respawn
func (b *Bank) Snapshot() BankSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.snapshotLocked()
}

// CheckRespawn refills the bank if it is not full and its deadline has passed
func (b *Bank) CheckRespawn() {
	b.read(func() {})
}

// read runs fn under the bank lock after a respawn check
func (b *Bank) read(fn func()) {
	b.mu.Lock()
	respawned := b.checkRespawnLocked()
	fn()
	snap := b.snapshotLocked()
	b.mu.Unlock()

	if respawned {
		b.observer.BankRespawned(snap)
	}
}

// Consume removes amount from the bank. The first extraction from a full bank
// starts the respawn timer; later extractions only decrement. Current never
// drops below zero.
func (b *Bank) Consume(amount int, actor BonusSource) {
	b.consume(amount, actor, false)
}

// TryConsume removes amount only if the bank still holds that much. The check
// and the extraction happen under one lock, so concurrent harvesters can never
// take more than the bank holds.
func (b *Bank) TryConsume(amount int, actor BonusSource) bool {
	return b.consume(amount, actor, true)
}

func (b *Bank) consume(amount int, actor BonusSource, requireStock bool) bool {
	b.mu.Lock()
	var refilled BankSnapshot
	respawned := b.checkRespawnLocked()
	if respawned {
		refilled = b.snapshotLocked()
	}

	if requireStock && b.current < amount {
		b.mu.Unlock()
		if respawned {
			b.observer.BankRespawned(refilled)
		}
		return false
	}

	before := b.current
	if b.current == b.maximum {
		minutes := b.def.respawnDelay(b.rng.Float64())
		minutes = ApplyRespawnBonuses(minutes, b.def.RaceBonus, actor)

		b.current = b.maximum - amount
		b.nextRespawn = b.clock.Now().Add(minutesToDuration(minutes))
	} else {
		b.current -= amount
	}

	if b.current < MinCurrent {
		b.current = MinCurrent
	}

	depleted := before > 0 && b.current == 0
	snap := b.snapshotLocked()
	b.mu.Unlock()

	if respawned {
		b.observer.BankRespawned(refilled)
	}
	if depleted {
		b.observer.BankDepleted(snap)
	}
	return true
}

func (b *Bank) checkRespawnLocked() bool {
	if b.current == b.maximum || b.clock.Now().Before(b.nextRespawn) {
		return false
	}

	b.current = b.maximum
	if b.def.RandomizeVeins {
		b.defaultVein = b.def.VeinFrom(b.rng.Float64())
	}
	b.vein = b.defaultVein
	return true
}

func (b *Bank) snapshotLocked() BankSnapshot {
	return BankSnapshot{
		Key:         b.key,
		Current:     b.current,
		Maximum:     b.maximum,
		NextRespawn: b.nextRespawn,
		VeinIndex:   b.def.VeinIndex(b.vein),
	}
}

// ApplyRespawnBonuses scales a respawn delay in minutes for the actor that
// tapped the bank. The race and region modifiers stack multiplicatively.
func ApplyRespawnBonuses(minutes float64, raceBonus bool, actor BonusSource) float64 {
	if actor == nil {
		return minutes
	}
	if raceBonus && actor.Race() == domain.RaceElf {
		minutes *= RaceRespawnMultiplier
	}
	if actor.InBonusRegion() {
		minutes *= RegionRespawnMultiplier
	}
	return minutes
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
