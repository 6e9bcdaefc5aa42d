package engine

import (
	"errors"
	"math"
	"math/big"
)

// AutomatorConfig declares an automator bound to a generator.
type AutomatorConfig struct {
	Name string

	// Automate is the generator this automator triggers. Required.
	Automate *Generator

	// TickInterval is the base seconds between triggers at level 1.
	// Defaults to 1.0; negative values clamp to zero.
	TickInterval float64

	// TickRateMultiplier shrinks the interval per level:
	// interval / multiplier^(level-1). Defaults to 1.08.
	TickRateMultiplier float64

	MaxLevel        int64
	BasePrice       *big.Int
	PriceMultiplier float64

	// Disabled constructs the automator switched off. Automators start
	// enabled by default.
	Disabled bool
}

// Automator triggers its generator on a fixed-but-decaying interval. It
// accumulates elapsed simulation time and catches up tick by tick, so an
// arbitrarily large delta (hours of offline time) replays every tick's
// probability and remainder logic instead of estimating proportionally.
type Automator struct {
	item

	generator          *Generator
	tickInterval       float64
	tickRateMultiplier float64
	tickTimer          float64
	enabled            bool

	// effectiveInterval caches the decayed interval for the current
	// level; refreshed on every level change.
	effectiveInterval float64
}

// NewAutomator validates the config, builds the automator and registers it
// in the world when it starts enabled.
func NewAutomator(world *World, cfg AutomatorConfig) (*Automator, error) {
	if world == nil {
		return nil, errors.New("automator requires a world")
	}
	if cfg.Automate == nil {
		return nil, errors.New("automator requires a generator to automate")
	}

	name := cfg.Name
	if name == "" {
		name = "Nameless automator"
	}

	tickInterval := cfg.TickInterval
	if tickInterval == 0 {
		tickInterval = 1.0
	}
	if tickInterval < 0 {
		tickInterval = 0
	}

	tickRateMultiplier := cfg.TickRateMultiplier
	if tickRateMultiplier == 0 {
		tickRateMultiplier = 1.08
	}
	if tickRateMultiplier <= 0 {
		return nil, errors.New("tick rate multiplier must be positive")
	}

	a := &Automator{
		item:               newItem(world, name),
		generator:          cfg.Automate,
		tickInterval:       tickInterval,
		tickRateMultiplier: tickRateMultiplier,
		enabled:            !cfg.Disabled,
	}
	a.priceMultiplier = 1.1
	a.onLevelChange = a.refreshInterval

	if cfg.BasePrice != nil {
		if err := a.SetBasePrice(cfg.BasePrice); err != nil {
			return nil, err
		}
	}
	if cfg.PriceMultiplier != 0 {
		if cfg.PriceMultiplier < 0 {
			return nil, errors.New("price multiplier must be positive")
		}
		a.priceMultiplier = cfg.PriceMultiplier
	}
	if cfg.MaxLevel != 0 {
		if err := a.SetMaxLevel(cfg.MaxLevel); err != nil {
			return nil, err
		}
	}

	if a.enabled {
		world.AddAutomator(a)
	}
	return a, nil
}

// Enable switches the automator on and registers it for world updates.
// Idempotent.
func (a *Automator) Enable() {
	if a.enabled {
		return
	}
	a.world.AddAutomator(a)
	a.enabled = true
}

// Disable switches the automator off and removes it from world updates.
// Idempotent.
func (a *Automator) Disable() {
	if !a.enabled {
		return
	}
	a.world.RemoveAutomator(a)
	a.enabled = false
}

func (a *Automator) Enabled() bool { return a.enabled }

// Update accumulates elapsed seconds and triggers the generator once per
// whole effective interval, fast-forwarding by repeated subtraction.
func (a *Automator) Update(delta float64) {
	if !a.enabled || a.level == 0 || a.effectiveInterval <= 0 {
		return
	}
	a.tickTimer += delta
	for a.tickTimer >= a.effectiveInterval {
		a.tickTimer -= a.effectiveInterval
		a.generator.Process()
	}
}

// EffectiveInterval returns the decayed interval for the current level:
// zero at level 0, tickInterval / tickRateMultiplier^(level-1) otherwise.
func (a *Automator) EffectiveInterval() float64 { return a.effectiveInterval }

func (a *Automator) refreshInterval() {
	if a.level == 0 {
		a.effectiveInterval = 0
		return
	}
	a.effectiveInterval = a.tickInterval / math.Pow(a.tickRateMultiplier, float64(a.level-1))
}

// TickInterval returns the base, non-decayed interval.
func (a *Automator) TickInterval() float64 { return a.tickInterval }

// SetTickInterval replaces the base interval, clamping negatives to zero.
func (a *Automator) SetTickInterval(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	a.tickInterval = seconds
	a.refreshInterval()
}

// TimerPercentage reports tick progress against the base interval for
// progress-bar display; 1.0 when the base interval is zero.
func (a *Automator) TimerPercentage() float64 {
	if a.tickInterval == 0 {
		return 1.0
	}
	return a.tickTimer / a.tickInterval
}

// Generator returns the generator this automator drives.
func (a *Automator) Generator() *Generator { return a.generator }
