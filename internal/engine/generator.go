package engine

import (
	"errors"
	"math"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultRemainderThreshold is the near-1.0 tolerance at which the carried
// fractional remainder converts into a whole unit. It sits just under 1.0
// so accumulated float error cannot starve the carry of a unit it is owed.
const DefaultRemainderThreshold = 0.999

// GeneratorConfig declares a generator. Zero values fall back to the
// defaults noted per field; validation happens once, in NewGenerator.
type GeneratorConfig struct {
	Name string

	// Generate is the sink the produced amounts go into. Required.
	Generate Resource

	// BaseAmount is the amount produced per cycle at level 1. Defaults
	// to 1; must not be negative.
	BaseAmount *big.Int

	// AmountMultiplier is the per-level production growth. Defaults to 1.1.
	AmountMultiplier float64

	MaxLevel        int64
	BasePrice       *big.Int
	PriceMultiplier float64

	// Probability gates each processing cycle when set: the generator
	// works only when a uniform draw lands below it. Nil means the
	// generator always works.
	Probability *float64

	// DiscardRemainder turns off the fractional-remainder carry. The
	// carry is on by default so fractional per-cycle yields average out
	// to the true rate instead of flooring to zero forever.
	DiscardRemainder bool

	// RemainderThreshold overrides DefaultRemainderThreshold when > 0.
	RemainderThreshold float64

	// Cooldown is the minimum seconds between cycles. The engine does not
	// pace Process calls itself; the value is carried for hosts that do.
	Cooldown float64

	// OnProcessed is called after every completed cycle. Observer hook
	// only.
	OnProcessed func()

	// Rand overrides the probability draw source. Defaults to a
	// wall-time-seeded source.
	Rand Rand
}

// Generator produces resource amounts into its sink each time it is
// processed, either by hand or through an Automator.
type Generator struct {
	item

	sink               Resource
	baseAmount         *big.Int
	amountMultiplier   float64
	probability        float64
	useProbability     bool
	carryRemainder     bool
	remainderThreshold float64
	remainder          float64
	cooldown           float64
	timesProcessed     int64
	onProcessed        func()
	rand               Rand

	modifiers []*GeneratorModifier
}

// NewGenerator validates the config, builds the generator and registers it
// in the world.
func NewGenerator(world *World, cfg GeneratorConfig) (*Generator, error) {
	if world == nil {
		return nil, errors.New("generator requires a world")
	}
	if cfg.Generate == nil {
		return nil, errors.New("generator requires a resource to generate")
	}

	name := cfg.Name
	if name == "" {
		name = "Nameless generator"
	}

	baseAmount := cfg.BaseAmount
	if baseAmount == nil {
		baseAmount = big.NewInt(1)
	}
	if baseAmount.Sign() < 0 {
		return nil, errors.New("base amount cannot be negative")
	}

	amountMultiplier := cfg.AmountMultiplier
	if amountMultiplier == 0 {
		amountMultiplier = 1.1
	}
	if amountMultiplier <= 0 {
		return nil, errors.New("amount multiplier must be positive")
	}

	useProbability := cfg.Probability != nil
	probability := 1.0
	if useProbability {
		probability = *cfg.Probability
		if probability < 0 || probability > 1 {
			return nil, errors.New("probability must be between 0.0 and 1.0")
		}
	}

	threshold := cfg.RemainderThreshold
	if threshold == 0 {
		threshold = DefaultRemainderThreshold
	}

	source := cfg.Rand
	if source == nil {
		source = NewSystemRand()
	}

	g := &Generator{
		item:               newItem(world, name),
		sink:               cfg.Generate,
		baseAmount:         new(big.Int).Set(baseAmount),
		amountMultiplier:   amountMultiplier,
		probability:        probability,
		useProbability:     useProbability,
		carryRemainder:     !cfg.DiscardRemainder,
		remainderThreshold: threshold,
		cooldown:           cfg.Cooldown,
		onProcessed:        cfg.OnProcessed,
		rand:               source,
	}
	g.priceMultiplier = 1.1

	if cfg.BasePrice != nil {
		if err := g.SetBasePrice(cfg.BasePrice); err != nil {
			return nil, err
		}
	}
	if cfg.PriceMultiplier != 0 {
		if cfg.PriceMultiplier < 0 {
			return nil, errors.New("price multiplier must be positive")
		}
		g.priceMultiplier = cfg.PriceMultiplier
	}
	if cfg.MaxLevel != 0 {
		if err := g.SetMaxLevel(cfg.MaxLevel); err != nil {
			return nil, err
		}
	}

	world.AddGenerator(g)
	return g, nil
}

// GeneratedAmount computes the amount one processing cycle yields at the
// current level, carrying the fractional remainder and applying attached
// modifiers in attachment order. The result is the floor of the final
// value.
func (g *Generator) GeneratedAmount() *big.Int {
	if g.level == 0 {
		return new(big.Int)
	}

	amount := decimal.NewFromBigInt(g.baseAmount, 0)
	amount = amount.Mul(decimal.NewFromFloat(math.Pow(g.amountMultiplier, float64(g.level-1))))

	if g.carryRemainder {
		frac, _ := amount.Sub(amount.Floor()).Float64()
		g.remainder += frac
		if g.remainder >= g.remainderThreshold {
			g.remainder -= 1.0
			amount = amount.Add(decimal.NewFromInt(1))
		}
	}

	for _, m := range g.modifiers {
		if m.multiplier != 1.0 {
			amount = amount.Mul(decimal.NewFromFloat(m.multiplier))
		}
	}

	return amount.BigInt()
}

// isWorking reports whether this cycle produces anything: never at level 0,
// otherwise always unless a probability is configured, in which case a
// fresh uniform draw must land below it.
func (g *Generator) isWorking() bool {
	if g.level == 0 {
		return false
	}
	return !g.useProbability || g.rand.NextUniform() < g.probability
}

// Process runs one production cycle, adding the generated amount to the
// sink.
func (g *Generator) Process() {
	if !g.isWorking() {
		return
	}
	g.sink.Generate(g.GeneratedAmount())
	g.timesProcessed++
	if g.onProcessed != nil {
		g.onProcessed()
	}
}

// TimesProcessed returns how many cycles have actually produced.
func (g *Generator) TimesProcessed() int64 { return g.timesProcessed }

// Cooldown returns the configured minimum seconds between cycles. Hosts
// pacing manual clicks enforce it; Process itself does not.
func (g *Generator) Cooldown() float64 { return g.cooldown }

// AttachModifier adds a modifier to this generator's output chain.
// Attaching an already-attached modifier is a no-op.
func (g *Generator) AttachModifier(m *GeneratorModifier) {
	if m == nil || slices.Contains(g.modifiers, m) {
		return
	}
	g.modifiers = append(g.modifiers, m)
}

// DetachModifier removes a modifier; detaching a non-member is a no-op.
func (g *Generator) DetachModifier(m *GeneratorModifier) {
	if i := slices.Index(g.modifiers, m); i >= 0 {
		g.modifiers = slices.Delete(g.modifiers, i, i+1)
	}
}
