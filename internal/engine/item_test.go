package engine

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_PriceGrowsWithLevel(t *testing.T) {
	w := NewWorld()
	it := newItem(w, "mine")
	require.NoError(t, it.SetBasePrice(big.NewInt(100)))
	it.SetPriceMultiplier(1.145)
	require.NoError(t, it.SetMaxLevel(50))

	prev := it.Price()
	for lvl := int64(1); lvl <= 50; lvl++ {
		it.SetLevel(lvl)
		price := it.Price()
		assert.GreaterOrEqual(t, price.Cmp(prev), 0, "price must be non-decreasing at level %d", lvl)
		prev = price
	}
}

func TestItem_PriceIsFloored(t *testing.T) {
	w := NewWorld()
	it := newItem(w, "mine")
	require.NoError(t, it.SetBasePrice(big.NewInt(10)))
	it.SetPriceMultiplier(1.145)
	it.SetLevel(1)

	// 10 * 1.145 = 11.45, floored
	assert.Equal(t, big.NewInt(11), it.Price())
}

func TestItem_BuyWith(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")
	gold.Add(big.NewInt(10))

	it := newItem(w, "mine")
	require.NoError(t, it.SetBasePrice(big.NewInt(10)))
	it.SetPriceMultiplier(1.0)

	assert.Equal(t, PurchaseOK, it.BuyWith(gold))
	assert.Equal(t, int64(1), it.Level())
	assert.Equal(t, "0", gold.Value().String())
}

func TestItem_BuyWith_InsufficientFundsLeavesStateUntouched(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")
	gold.Add(big.NewInt(9))

	it := newItem(w, "mine")
	require.NoError(t, it.SetBasePrice(big.NewInt(10)))
	it.SetPriceMultiplier(1.0)

	assert.Equal(t, PurchaseInsufficientFunds, it.BuyWith(gold))
	assert.Equal(t, int64(0), it.Level())
	assert.Equal(t, big.NewInt(9), gold.Value())
}

func TestItem_BuyWith_MaxLevelLeavesLedgerUntouched(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")
	gold.Add(big.NewInt(1000))

	it := newItem(w, "mine")
	require.NoError(t, it.SetBasePrice(big.NewInt(10)))
	require.NoError(t, it.SetMaxLevel(1))
	it.SetLevel(1)

	assert.Equal(t, PurchaseMaxLevelReached, it.BuyWith(gold))
	assert.Equal(t, big.NewInt(1000), gold.Value())
	assert.Equal(t, int64(1), it.Level())
}

func TestItem_BuyWith_DebitsPrePurchasePrice(t *testing.T) {
	w := NewWorld()
	gold := newCurrencyForTest(t, w, "Gold")
	gold.Add(big.NewInt(100))

	it := newItem(w, "mine")
	require.NoError(t, it.SetBasePrice(big.NewInt(10)))
	it.SetPriceMultiplier(2.0)
	it.SetLevel(1)

	// price at level 1 is 20; the post-purchase price (40) must not apply
	assert.Equal(t, PurchaseOK, it.BuyWith(gold))
	assert.Equal(t, big.NewInt(80), gold.Value())
}

func TestItem_UpgradeDowngradeClamp(t *testing.T) {
	w := NewWorld()
	it := newItem(w, "mine")
	require.NoError(t, it.SetMaxLevel(2))

	it.Downgrade()
	assert.Equal(t, int64(0), it.Level())

	it.Upgrade()
	it.Upgrade()
	it.Upgrade()
	assert.Equal(t, int64(2), it.Level())
}

func TestItem_SetLevelClamps(t *testing.T) {
	w := NewWorld()
	it := newItem(w, "mine")
	require.NoError(t, it.SetMaxLevel(5))

	it.SetLevel(-3)
	assert.Equal(t, int64(0), it.Level())

	it.SetLevel(99)
	assert.Equal(t, int64(5), it.Level())
}

func TestItem_Maximize(t *testing.T) {
	w := NewWorld()
	it := newItem(w, "mine")
	require.NoError(t, it.SetMaxLevel(7))

	it.Maximize()
	assert.Equal(t, int64(7), it.Level())
}

func TestItem_RejectsInvalidConfiguration(t *testing.T) {
	w := NewWorld()
	it := newItem(w, "mine")

	assert.Error(t, it.SetBasePrice(big.NewInt(0)))
	assert.Error(t, it.SetBasePrice(nil))
	assert.Error(t, it.SetMaxLevel(0))
	assert.Error(t, it.SetMaxLevel(-1))
	assert.Error(t, it.SetName(""))
}

func TestItem_HasIdentity(t *testing.T) {
	w := NewWorld()
	a := newItem(w, "a")
	b := newItem(w, "b")

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
