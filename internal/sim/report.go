package sim

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/osse101/ShardHarvest_Go/internal/harvest"
)

// Report summarises a simulation run
type Report struct {
	Seed           int64     `json:"seed"`
	Actors         int       `json:"actors"`
	Rounds         int       `json:"rounds"`
	StartedAt      time.Time `json:"started_at"`
	SimulatedUntil time.Time `json:"simulated_until"`
	DurationMS     int64     `json:"duration_ms"`

	Attempts    int            `json:"attempts"`
	Completed   int            `json:"completed"`
	Refused     map[string]int `json:"refused"`
	Outcomes    map[string]int `json:"outcomes"`
	Yields      map[string]int `json:"yields"`
	Bonuses     map[string]int `json:"bonuses"`
	ToolsBroken int            `json:"tools_broken"`

	Banks []BankSummary `json:"banks"`

	// Metrics holds the harvest metric series recorded during the run
	Metrics map[string]float64 `json:"metrics,omitempty"`

	mu sync.Mutex
}

// BankSummary aggregates the banks of one definition
type BankSummary struct {
	Definition string `json:"definition"`
	Banks      int    `json:"banks"`
	Depleted   int    `json:"depleted"`
	Remaining  int    `json:"remaining"`
	Capacity   int    `json:"capacity"`
}

func newReport(seed int64, actors, rounds int) *Report {
	return &Report{
		Seed:      seed,
		Actors:    actors,
		Rounds:    rounds,
		StartedAt: time.Now(),
		Refused:   make(map[string]int),
		Outcomes:  make(map[string]int),
		Yields:    make(map[string]int),
		Bonuses:   make(map[string]int),
	}
}

func (r *Report) recordOutcome(outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Attempts++
	r.Outcomes[outcome]++
}

func (r *Report) recordYield(y *harvest.Yield) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Completed++
	r.Yields[y.ItemType] += y.Amount
	if bonus := y.BonusItemType(); bonus != "" {
		r.Bonuses[bonus]++
	}
	if y.ToolBroke {
		r.ToolsBroken++
	}
}

func (r *Report) recordRefusal(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Refused[harvest.RefusalReason(err)]++
}

// complete stamps the run duration and summarises the banks
func (r *Report) complete(simulatedUntil time.Time, snaps []harvest.BankSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.SimulatedUntil = simulatedUntil
	r.DurationMS = time.Since(r.StartedAt).Milliseconds()

	byDef := make(map[string]*BankSummary)
	for _, s := range snaps {
		sum, ok := byDef[s.Key.Definition]
		if !ok {
			sum = &BankSummary{Definition: s.Key.Definition}
			byDef[s.Key.Definition] = sum
		}
		sum.Banks++
		sum.Remaining += s.Current
		sum.Capacity += s.Maximum
		if s.Current == 0 {
			sum.Depleted++
		}
	}

	r.Banks = r.Banks[:0]
	for _, sum := range byDef {
		r.Banks = append(r.Banks, *sum)
	}
	sort.Slice(r.Banks, func(i, j int) bool {
		return r.Banks[i].Definition < r.Banks[j].Definition
	})
}

// AttachMetrics records the metric series gathered after the run
func (r *Report) AttachMetrics(series map[string]float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Metrics = series
}

// Refusals returns the total number of refused attempts
func (r *Report) Refusals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.Refused {
		total += n
	}
	return total
}

// ToPrettyJSON converts the report to indented JSON bytes
func (r *Report) ToPrettyJSON() ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return json.MarshalIndent(r, "", "  ")
}
