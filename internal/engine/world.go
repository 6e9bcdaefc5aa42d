package engine

import "slices"

// World is the composition root: it owns the registries of generators,
// automators, currencies and active modifiers, the global speed
// multiplier, and the automation master switch. Entities hold a
// non-owning back-reference to it.
//
// The world assumes a single logical simulation thread; hosts embedding it
// in concurrent contexts must serialize all mutation externally.
type World struct {
	generators []*Generator
	automators []*Automator
	currencies []*Currency
	modifiers  []Modifier

	speedMultiplier   float64
	automationEnabled bool
}

// NewWorld constructs an empty world with a 1.0 speed multiplier and
// automation enabled.
func NewWorld() *World {
	return &World{
		speedMultiplier:   1.0,
		automationEnabled: true,
	}
}

// Update advances the simulation by the given seconds, scaled by the
// global speed multiplier. Automators advance in registration order; they
// are independent, so the order only pins down reproducibility.
func (w *World) Update(seconds float64) {
	seconds *= w.speedMultiplier

	if !w.automationEnabled {
		return
	}
	for _, a := range w.automators {
		a.Update(seconds)
	}
}

// AddGenerator registers a generator; duplicates are rejected.
func (w *World) AddGenerator(g *Generator) {
	if g == nil || slices.Contains(w.generators, g) {
		return
	}
	w.generators = append(w.generators, g)
}

// RemoveGenerator deregisters a generator; removing an absent one is a
// no-op.
func (w *World) RemoveGenerator(g *Generator) {
	if i := slices.Index(w.generators, g); i >= 0 {
		w.generators = slices.Delete(w.generators, i, i+1)
	}
}

// RemoveAllGenerators clears the generator registry.
func (w *World) RemoveAllGenerators() {
	w.generators = nil
}

func (w *World) GeneratorCount() int { return len(w.generators) }

// Generators returns the registered generators in registration order.
func (w *World) Generators() []*Generator {
	return slices.Clone(w.generators)
}

// AddAutomator registers an automator; duplicates are rejected.
func (w *World) AddAutomator(a *Automator) {
	if a == nil || slices.Contains(w.automators, a) {
		return
	}
	w.automators = append(w.automators, a)
}

// RemoveAutomator deregisters an automator; removing an absent one is a
// no-op.
func (w *World) RemoveAutomator(a *Automator) {
	if i := slices.Index(w.automators, a); i >= 0 {
		w.automators = slices.Delete(w.automators, i, i+1)
	}
}

// Automators returns the registered automators in registration order.
func (w *World) Automators() []*Automator {
	return slices.Clone(w.automators)
}

// AddCurrency registers a currency; duplicates are rejected.
func (w *World) AddCurrency(c *Currency) {
	if c == nil || slices.Contains(w.currencies, c) {
		return
	}
	w.currencies = append(w.currencies, c)
}

// RemoveCurrency deregisters a currency; removing an absent one is a
// no-op.
func (w *World) RemoveCurrency(c *Currency) {
	if i := slices.Index(w.currencies, c); i >= 0 {
		w.currencies = slices.Delete(w.currencies, i, i+1)
	}
}

// RemoveAllCurrencies clears the currency registry.
func (w *World) RemoveAllCurrencies() {
	w.currencies = nil
}

// Currency returns the currency at the given registration index, or nil
// when out of range.
func (w *World) Currency(index int) *Currency {
	if index < 0 || index >= len(w.currencies) {
		return nil
	}
	return w.currencies[index]
}

// Currencies returns the registered currencies in registration order.
func (w *World) Currencies() []*Currency {
	return slices.Clone(w.currencies)
}

// Modifiers returns the currently active modifiers.
func (w *World) Modifiers() []Modifier {
	return slices.Clone(w.modifiers)
}

func (w *World) addModifier(m Modifier) {
	if m == nil || slices.Contains(w.modifiers, m) {
		return
	}
	w.modifiers = append(w.modifiers, m)
}

func (w *World) removeModifier(m Modifier) {
	if i := slices.Index(w.modifiers, m); i >= 0 {
		w.modifiers = slices.Delete(w.modifiers, i, i+1)
	}
}

func (w *World) SpeedMultiplier() float64 { return w.speedMultiplier }

func (w *World) SetSpeedMultiplier(multiplier float64) {
	w.speedMultiplier = multiplier
}

// DisableAutomators switches automation off; Update stops advancing
// automators until re-enabled.
func (w *World) DisableAutomators() { w.automationEnabled = false }

// EnableAutomators switches automation back on.
func (w *World) EnableAutomators() { w.automationEnabled = true }

func (w *World) AutomationEnabled() bool { return w.automationEnabled }
