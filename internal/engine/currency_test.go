package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_AddSub(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")

	gold.Add(big.NewInt(100))
	gold.Sub(big.NewInt(40))

	assert.Equal(t, big.NewInt(60), gold.Value())
}

func TestCurrency_ValueIsACopy(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")
	gold.Add(big.NewInt(10))

	v := gold.Value()
	v.SetInt64(9999)

	assert.Equal(t, big.NewInt(10), gold.Value())
}

func TestCurrency_MultiplyTruncates(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")
	gold.Add(big.NewInt(10))

	gold.Multiply(1.25)
	assert.Equal(t, big.NewInt(12), gold.Value())
}

func TestCurrency_GenerateSatisfiesResource(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")

	var sink Resource = gold
	sink.Generate(big.NewInt(5))

	assert.Equal(t, big.NewInt(5), gold.Value())
}

func TestCurrency_AmountAsString(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")

	huge, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	gold.Add(huge)

	assert.Equal(t, "123456789012345678901234567890", gold.AmountAsString())
	assert.Equal(t, "Gold: 123456789012345678901234567890", gold.String())
}

func TestCurrency_RequiresWorldAndName(t *testing.T) {
	_, err := NewCurrency(nil, "Gold")
	assert.Error(t, err)

	_, err = NewCurrency(NewWorld(), "")
	assert.Error(t, err)
}

func TestCurrency_RegistersWithWorld(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")

	require.Len(t, w.Currencies(), 1)
	assert.Same(t, gold, w.Currency(0))
}
