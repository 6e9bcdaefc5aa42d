package engine

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Resource is anything a generator can produce into. A Currency satisfies
// it; hosts may plug in their own accumulators.
type Resource interface {
	Generate(amount *big.Int)
}

// Currency is an arbitrary-precision accumulator for a named resource.
// The purchase path never drives it negative; Sub is unguarded for callers
// that bypass BuyWith on purpose.
type Currency struct {
	world *World
	id    string
	name  string
	value *big.Int
}

// NewCurrency registers a new currency in the world.
func NewCurrency(world *World, name string) (*Currency, error) {
	if world == nil {
		return nil, errors.New("currency requires a world")
	}
	if name == "" {
		return nil, errors.New("currency name cannot be empty")
	}
	c := &Currency{
		world: world,
		id:    uuid.NewString(),
		name:  name,
		value: new(big.Int),
	}
	world.AddCurrency(c)
	return c, nil
}

func (c *Currency) ID() string { return c.id }

func (c *Currency) Name() string { return c.name }

// Value returns a copy of the current amount.
func (c *Currency) Value() *big.Int { return new(big.Int).Set(c.value) }

// AmountAsString returns the raw decimal digits for display formatting.
func (c *Currency) AmountAsString() string { return c.value.String() }

func (c *Currency) String() string {
	return fmt.Sprintf("%s: %s", c.name, c.AmountAsString())
}

func (c *Currency) Add(amount *big.Int) {
	c.value.Add(c.value, amount)
}

func (c *Currency) Sub(amount *big.Int) {
	c.value.Sub(c.value, amount)
}

// Multiply scales the amount by a real factor, truncating the result back
// to a whole amount.
func (c *Currency) Multiply(factor float64) {
	scaled := decimal.NewFromBigInt(c.value, 0).Mul(decimal.NewFromFloat(factor))
	c.value = scaled.BigInt()
}

// Generate implements Resource.
func (c *Currency) Generate(amount *big.Int) {
	c.Add(amount)
}

func (c *Currency) set(value *big.Int) {
	c.value = new(big.Int).Set(value)
}
