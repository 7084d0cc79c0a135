package harvest

import (
	"sort"
	"sync"

	"github.com/osse101/ShardHarvest_Go/internal/domain"
)

// BankRegistry owns every bank, keyed by definition and grid cell. Banks are
// created on first access and live for the rest of the process.
type BankRegistry struct {
	mu    sync.RWMutex
	banks map[BankKey]*Bank

	clock    Clock
	rng      Rand
	observer Observer
}

// NewBankRegistry creates an empty registry. observer may be nil.
func NewBankRegistry(clock Clock, rng Rand, observer Observer) *BankRegistry {
	if observer == nil {
		observer = noopObserver{}
	}
	return &BankRegistry{
		banks:    make(map[BankKey]*Bank),
		clock:    clock,
		rng:      rng,
		observer: observer,
	}
}

// GetBank returns the bank of def covering (x, y) on mapID, creating it on
// first access. It returns nil for the internal map.
func (r *BankRegistry) GetBank(def *Definition, mapID domain.MapID, x, y int) *Bank {
	if def == nil || mapID == domain.MapInternal {
		return nil
	}

	key := def.BankKeyFor(mapID, x, y)

	r.mu.RLock()
	bank, ok := r.banks[key]
	r.mu.RUnlock()
	if ok {
		return bank
	}

	r.mu.Lock()
	// Another caller may have created it between the locks
	if bank, ok = r.banks[key]; ok {
		r.mu.Unlock()
		return bank
	}
	bank = newBank(key, def, def.initialVein(r.rng, key), r.clock, r.rng, r.observer)
	r.banks[key] = bank
	r.mu.Unlock()

	r.observer.BankCreated(bank.Snapshot())
	return bank
}

// Lookup returns an existing bank without creating one
func (r *BankRegistry) Lookup(key BankKey) (*Bank, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bank, ok := r.banks[key]
	return bank, ok
}

// Len returns the number of banks created so far
func (r *BankRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.banks)
}

// Snapshots returns the state of every bank ordered by key
func (r *BankRegistry) Snapshots() []BankSnapshot {
	r.mu.RLock()
	banks := make([]*Bank, 0, len(r.banks))
	for _, b := range r.banks {
		banks = append(banks, b)
	}
	r.mu.RUnlock()

	out := make([]BankSnapshot, 0, len(banks))
	for _, b := range banks {
		out = append(out, b.Snapshot())
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Key, out[j].Key
		if a.Definition != b.Definition {
			return a.Definition < b.Definition
		}
		if a.Map != b.Map {
			return a.Map < b.Map
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})
	return out
}
