// Package catalog builds the shard's harvest systems from their definitions.
package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/ShardHarvest_Go/internal/concurrency"
	"github.com/osse101/ShardHarvest_Go/internal/domain"
	"github.com/osse101/ShardHarvest_Go/internal/harvest"
	"github.com/osse101/ShardHarvest_Go/internal/logger"
)

// Config selects the rule set the catalog is built with
type Config struct {
	// ModernRules enables race bonuses and vein rerolls on lumber
	ModernRules bool
}

// Catalog holds one system per gathering skill. All systems share a bank
// registry and an action lock set.
type Catalog struct {
	Mining        *harvest.System
	Lumberjacking *harvest.System
	Fishing       *harvest.System

	banks *harvest.BankRegistry
}

// New builds every harvest system. Banks and Locks in opts are created when
// missing so that the systems share them.
func New(ctx context.Context, cfg Config, opts harvest.Options) (*Catalog, error) {
	if opts.Clock == nil {
		opts.Clock = harvest.NewRealClock()
	}
	if opts.Rand == nil {
		return nil, fmt.Errorf("%w: catalog needs a random source", domain.ErrInvalidInput)
	}
	if opts.Locks == nil {
		opts.Locks = concurrency.NewActionLocks()
	}
	if opts.Banks == nil {
		opts.Banks = harvest.NewBankRegistry(opts.Clock, opts.Rand, harvest.NewBusObserver(opts.Bus, opts.Clock))
	}

	mining, err := harvest.NewSystem(domain.SystemMining,
		[]*harvest.Definition{OreAndStone(cfg.ModernRules), Sand()}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build mining: %w", err)
	}

	lumber, err := harvest.NewSystem(domain.SystemLumberjacking,
		[]*harvest.Definition{Lumber(cfg.ModernRules)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build lumberjacking: %w", err)
	}

	fishing, err := harvest.NewSystem(domain.SystemFishing,
		[]*harvest.Definition{Fish(cfg.ModernRules)}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build fishing: %w", err)
	}

	logger.FromContext(ctx).Info(LogMsgCatalogBuilt, "modern_rules", cfg.ModernRules)

	return &Catalog{
		Mining:        mining,
		Lumberjacking: lumber,
		Fishing:       fishing,
		banks:         opts.Banks,
	}, nil
}

// Systems returns every system in a fixed order
func (c *Catalog) Systems() []*harvest.System {
	return []*harvest.System{c.Mining, c.Lumberjacking, c.Fishing}
}

// System returns the system with the given name, or nil
func (c *Catalog) System(name domain.HarvestSystemName) *harvest.System {
	for _, s := range c.Systems() {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// Banks returns the registry shared by every system
func (c *Catalog) Banks() *harvest.BankRegistry {
	return c.banks
}
