// Package config loads declarative world definitions from YAML and
// assembles live engine worlds from them. Construction-time validation
// errors surface here, before any simulation runs.
package config

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/manabreak/libclicker2/internal/engine"
)

type Definition struct {
	World      WorldDef       `yaml:"world"`
	Currencies []CurrencyDef  `yaml:"currencies"`
	Generators []GeneratorDef `yaml:"generators"`
	Automators []AutomatorDef `yaml:"automators"`
	Modifiers  []ModifierDef  `yaml:"modifiers"`
	Simulation Simulation     `yaml:"simulation"`
}

type WorldDef struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`
	AutomationDisabled bool    `yaml:"automation_disabled"`
}

type CurrencyDef struct {
	Name string `yaml:"name"`

	// StartingAmount is a decimal-digit string so definitions can seed
	// balances beyond int64 range.
	StartingAmount string `yaml:"starting_amount"`
}

type GeneratorDef struct {
	Name             string   `yaml:"name"`
	Currency         string   `yaml:"currency"`
	BaseAmount       string   `yaml:"base_amount"`
	AmountMultiplier float64  `yaml:"amount_multiplier"`
	BasePrice        string   `yaml:"base_price"`
	PriceMultiplier  float64  `yaml:"price_multiplier"`
	MaxLevel         int64    `yaml:"max_level"`
	Probability      *float64 `yaml:"probability"`
	DiscardRemainder bool     `yaml:"discard_remainder"`
	Cooldown         float64  `yaml:"cooldown"`
	Level            int64    `yaml:"level"`
}

type AutomatorDef struct {
	Name               string  `yaml:"name"`
	Generator          string  `yaml:"generator"`
	TickInterval       float64 `yaml:"tick_interval"`
	TickRateMultiplier float64 `yaml:"tick_rate_multiplier"`
	BasePrice          string  `yaml:"base_price"`
	PriceMultiplier    float64 `yaml:"price_multiplier"`
	MaxLevel           int64   `yaml:"max_level"`
	Disabled           bool    `yaml:"disabled"`
	Level              int64   `yaml:"level"`
}

type ModifierDef struct {
	// Target is "world" or the name of a generator.
	Target            string  `yaml:"target"`
	Multiplier        float64 `yaml:"multiplier"`
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`
	DisableAutomation bool    `yaml:"disable_automation"`
	Enabled           bool    `yaml:"enabled"`
}

type Simulation struct {
	StepSeconds     float64 `yaml:"step_seconds"`
	DurationSeconds float64 `yaml:"duration_seconds"`

	// Seed makes every generator draw from one reproducible source when
	// non-zero.
	Seed int64 `yaml:"seed"`
}

// Default is a small self-contained world: a gold mine, a foreman to run
// it, and a lucky charm on the mine. The demo binary falls back to it when
// no definition file is given.
func Default() Definition {
	return Definition{
		Currencies: []CurrencyDef{
			{Name: "Gold", StartingAmount: "10"},
		},
		Generators: []GeneratorDef{
			{
				Name:             "Gold mine",
				Currency:         "Gold",
				BaseAmount:       "1",
				AmountMultiplier: 1.2,
				BasePrice:        "10",
				PriceMultiplier:  1.145,
				Level:            1,
			},
		},
		Automators: []AutomatorDef{
			{
				Name:         "Foreman",
				Generator:    "Gold mine",
				TickInterval: 1.0,
				BasePrice:    "50",
				Level:        1,
			},
		},
		Modifiers: []ModifierDef{
			{Target: "Gold mine", Multiplier: 1.5, Enabled: true},
		},
		Simulation: Simulation{
			StepSeconds:     1.0,
			DurationSeconds: 60.0,
		},
	}
}

// Load reads a YAML definition from disk.
func Load(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read definition: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML definition.
func Parse(data []byte) (Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return Definition{}, fmt.Errorf("parse definition: %w", err)
	}
	return def, nil
}

// Assembly is a built world plus name lookups for everything declared in
// the definition.
type Assembly struct {
	World      *engine.World
	Currencies map[string]*engine.Currency
	Generators map[string]*engine.Generator
	Automators map[string]*engine.Automator
	Modifiers  []engine.Modifier
}

// Build assembles a live world from the definition.
func (d Definition) Build() (*Assembly, error) {
	w := engine.NewWorld()
	if d.World.SpeedMultiplier != 0 {
		w.SetSpeedMultiplier(d.World.SpeedMultiplier)
	}
	if d.World.AutomationDisabled {
		w.DisableAutomators()
	}

	var shared engine.Rand
	if d.Simulation.Seed != 0 {
		shared = engine.NewSeededRand(d.Simulation.Seed)
	}

	asm := &Assembly{
		World:      w,
		Currencies: map[string]*engine.Currency{},
		Generators: map[string]*engine.Generator{},
		Automators: map[string]*engine.Automator{},
	}

	for _, def := range d.Currencies {
		c, err := engine.NewCurrency(w, def.Name)
		if err != nil {
			return nil, fmt.Errorf("currency %q: %w", def.Name, err)
		}
		if def.StartingAmount != "" {
			amount, err := parseBig(def.StartingAmount)
			if err != nil {
				return nil, fmt.Errorf("currency %q: %w", def.Name, err)
			}
			c.Add(amount)
		}
		asm.Currencies[def.Name] = c
	}

	for _, def := range d.Generators {
		sink, ok := asm.Currencies[def.Currency]
		if !ok {
			return nil, fmt.Errorf("generator %q: unknown currency %q", def.Name, def.Currency)
		}
		cfg := engine.GeneratorConfig{
			Name:             def.Name,
			Generate:         sink,
			AmountMultiplier: def.AmountMultiplier,
			PriceMultiplier:  def.PriceMultiplier,
			MaxLevel:         def.MaxLevel,
			Probability:      def.Probability,
			DiscardRemainder: def.DiscardRemainder,
			Cooldown:         def.Cooldown,
			Rand:             shared,
		}
		if def.BaseAmount != "" {
			amount, err := parseBig(def.BaseAmount)
			if err != nil {
				return nil, fmt.Errorf("generator %q: %w", def.Name, err)
			}
			cfg.BaseAmount = amount
		}
		if def.BasePrice != "" {
			price, err := parseBig(def.BasePrice)
			if err != nil {
				return nil, fmt.Errorf("generator %q: %w", def.Name, err)
			}
			cfg.BasePrice = price
		}
		g, err := engine.NewGenerator(w, cfg)
		if err != nil {
			return nil, fmt.Errorf("generator %q: %w", def.Name, err)
		}
		g.SetLevel(def.Level)
		asm.Generators[def.Name] = g
	}

	for _, def := range d.Automators {
		gen, ok := asm.Generators[def.Generator]
		if !ok {
			return nil, fmt.Errorf("automator %q: unknown generator %q", def.Name, def.Generator)
		}
		cfg := engine.AutomatorConfig{
			Name:               def.Name,
			Automate:           gen,
			TickInterval:       def.TickInterval,
			TickRateMultiplier: def.TickRateMultiplier,
			PriceMultiplier:    def.PriceMultiplier,
			MaxLevel:           def.MaxLevel,
			Disabled:           def.Disabled,
		}
		if def.BasePrice != "" {
			price, err := parseBig(def.BasePrice)
			if err != nil {
				return nil, fmt.Errorf("automator %q: %w", def.Name, err)
			}
			cfg.BasePrice = price
		}
		a, err := engine.NewAutomator(w, cfg)
		if err != nil {
			return nil, fmt.Errorf("automator %q: %w", def.Name, err)
		}
		a.SetLevel(def.Level)
		asm.Automators[def.Name] = a
	}

	for i, def := range d.Modifiers {
		m, err := buildModifier(w, asm, def)
		if err != nil {
			return nil, fmt.Errorf("modifier %d: %w", i, err)
		}
		if def.Enabled {
			m.Enable()
		}
		asm.Modifiers = append(asm.Modifiers, m)
	}

	return asm, nil
}

func buildModifier(w *engine.World, asm *Assembly, def ModifierDef) (engine.Modifier, error) {
	if def.Target == "world" {
		return engine.NewWorldModifier(w, engine.WorldModifierConfig{
			SpeedMultiplier:   def.SpeedMultiplier,
			DisableAutomation: def.DisableAutomation,
		})
	}
	gen, ok := asm.Generators[def.Target]
	if !ok {
		return nil, fmt.Errorf("unknown target %q", def.Target)
	}
	return engine.NewGeneratorModifier(w, engine.GeneratorModifierConfig{
		Modify:     gen,
		Multiplier: def.Multiplier,
	})
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	return v, nil
}
