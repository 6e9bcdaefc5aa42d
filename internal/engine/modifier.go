package engine

import "errors"

// Modifier is an effect with a two-state lifecycle: enable applies it
// exactly once and registers it with the world, disable reverts it exactly
// once and deregisters. Re-entrant calls are no-ops, never double
// applications.
type Modifier interface {
	Enable()
	Disable()
	Enabled() bool
}

// GeneratorModifierConfig declares a multiplier on one generator's output.
type GeneratorModifierConfig struct {
	// Modify is the generator whose output gets scaled. Required.
	Modify *Generator

	// Multiplier scales the generator's output while enabled. Defaults
	// to 1.0 (no-op); must be positive.
	Multiplier float64
}

// GeneratorModifier multiplies a generator's output while enabled.
type GeneratorModifier struct {
	world      *World
	generator  *Generator
	multiplier float64
	enabled    bool
}

// NewGeneratorModifier validates the config and builds the modifier,
// constructed disabled.
func NewGeneratorModifier(world *World, cfg GeneratorModifierConfig) (*GeneratorModifier, error) {
	if world == nil {
		return nil, errors.New("modifier requires a world")
	}
	if cfg.Modify == nil {
		return nil, errors.New("generator modifier requires a generator to modify")
	}
	multiplier := cfg.Multiplier
	if multiplier == 0 {
		multiplier = 1.0
	}
	if multiplier < 0 {
		return nil, errors.New("modifier multiplier must be positive")
	}
	return &GeneratorModifier{
		world:      world,
		generator:  cfg.Modify,
		multiplier: multiplier,
	}, nil
}

func (m *GeneratorModifier) Multiplier() float64 { return m.multiplier }

func (m *GeneratorModifier) Enabled() bool { return m.enabled }

// Enable attaches the modifier to its generator.
func (m *GeneratorModifier) Enable() {
	if m.enabled {
		return
	}
	m.enabled = true
	m.world.addModifier(m)
	m.generator.AttachModifier(m)
}

// Disable detaches the modifier from its generator.
func (m *GeneratorModifier) Disable() {
	if !m.enabled {
		return
	}
	m.generator.DetachModifier(m)
	m.world.removeModifier(m)
	m.enabled = false
}

// WorldModifierConfig declares a world-wide effect: a global speed
// multiplier, an automation kill-switch, or both.
type WorldModifierConfig struct {
	// SpeedMultiplier scales the world's global speed while enabled.
	// Defaults to 1.0 (no-op); must be positive.
	SpeedMultiplier float64

	// DisableAutomation switches off automator updates while enabled.
	DisableAutomation bool
}

// WorldModifier alters the world's global speed multiplier and/or its
// automation master switch while enabled.
type WorldModifier struct {
	world             *World
	speedMultiplier   float64
	disableAutomation bool
	enabled           bool

	// appliedSpeed is the multiplier captured at enable time; disable
	// divides by exactly this value so repeated enable/disable cycles
	// invert exactly.
	appliedSpeed float64
}

// NewWorldModifier validates the config and builds the modifier,
// constructed disabled.
func NewWorldModifier(world *World, cfg WorldModifierConfig) (*WorldModifier, error) {
	if world == nil {
		return nil, errors.New("modifier requires a world")
	}
	speedMultiplier := cfg.SpeedMultiplier
	if speedMultiplier == 0 {
		speedMultiplier = 1.0
	}
	if speedMultiplier < 0 {
		return nil, errors.New("speed multiplier must be positive")
	}
	return &WorldModifier{
		world:             world,
		speedMultiplier:   speedMultiplier,
		disableAutomation: cfg.DisableAutomation,
	}, nil
}

func (m *WorldModifier) SpeedMultiplier() float64 { return m.speedMultiplier }

func (m *WorldModifier) Enabled() bool { return m.enabled }

// Enable applies the speed multiplier and automation switch to the world.
func (m *WorldModifier) Enable() {
	if m.enabled {
		return
	}
	m.enabled = true
	m.world.addModifier(m)

	if m.speedMultiplier != 1.0 {
		m.appliedSpeed = m.speedMultiplier
		m.world.SetSpeedMultiplier(m.world.SpeedMultiplier() * m.appliedSpeed)
	}
	if m.disableAutomation {
		m.world.DisableAutomators()
	}
}

// Disable reverts the world to its pre-enable speed and automation state.
func (m *WorldModifier) Disable() {
	if !m.enabled {
		return
	}
	if m.appliedSpeed != 0 {
		m.world.SetSpeedMultiplier(m.world.SpeedMultiplier() / m.appliedSpeed)
		m.appliedSpeed = 0
	}
	if m.disableAutomation {
		m.world.EnableAutomators()
	}
	m.world.removeModifier(m)
	m.enabled = false
}
