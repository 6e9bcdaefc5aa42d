package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// stubRand replays a fixed sequence of draws, wrapping around.
type stubRand struct {
	seq []float64
	i   int
}

func (s *stubRand) NextUniform() float64 {
	v := s.seq[s.i%len(s.seq)]
	s.i++
	return v
}

// countingSink records every Generate call for assertions.
type countingSink struct {
	total *big.Int
	calls int
}

func newCountingSink() *countingSink {
	return &countingSink{total: new(big.Int)}
}

func (s *countingSink) Generate(amount *big.Int) {
	s.calls++
	s.total.Add(s.total, amount)
}

func newGeneratorForTest(t *testing.T, w *World, cfg GeneratorConfig) *Generator {
	t.Helper()
	if cfg.Generate == nil {
		cfg.Generate = newCountingSink()
	}
	g, err := NewGenerator(w, cfg)
	require.NoError(t, err)
	return g
}

func newAutomatorForTest(t *testing.T, w *World, cfg AutomatorConfig) *Automator {
	t.Helper()
	a, err := NewAutomator(w, cfg)
	require.NoError(t, err)
	return a
}

func newCurrencyForTest(t *testing.T, w *World, name string) *Currency {
	t.Helper()
	c, err := NewCurrency(w, name)
	require.NoError(t, err)
	return c
}

func floatPtr(v float64) *float64 { return &v }
