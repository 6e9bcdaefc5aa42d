package format

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manabreak/libclicker2/internal/engine"
)

func TestFormat_CutAtHighestGroup(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowDecimals = false
	f := New(opts)

	assert.Equal(t, "0", f.Format("0"))
	assert.Equal(t, "999", f.Format("999"))
	assert.Equal(t, "1", f.Format("1234"))
	assert.Equal(t, "123", f.Format("123456"))
	assert.Equal(t, "1", f.Format("1234567"))
}

func TestFormat_CutAtHighestWithDecimals(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowDecimals = true
	f := New(opts)

	assert.Equal(t, "1.23", f.Format("1234"))
	assert.Equal(t, "12.34", f.Format("12345"))
	assert.Equal(t, "123.45", f.Format("123456"))
	assert.Equal(t, "1.23", f.Format("1234567"))
}

func TestFormat_Abbreviations(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowDecimals = true
	opts.Abbreviations = []string{"K", "M", "B", "T"}
	f := New(opts)

	assert.Equal(t, "999", f.Format("999"))
	assert.Equal(t, "1.23K", f.Format("1234"))
	assert.Equal(t, "1.23M", f.Format("1234567"))
	assert.Equal(t, "1.23B", f.Format("1234567890"))
	assert.Equal(t, "1.23T", f.Format("1234567890123"))
}

func TestFormat_AbbreviationTableExhausted(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowDecimals = false
	opts.Abbreviations = []string{"K"}
	f := New(opts)

	// magnitude beyond the table renders without a suffix
	assert.Equal(t, "1", f.Format("1234567"))
	assert.Equal(t, "1K", f.Format("1234"))
}

func TestFormat_FullWithGrouping(t *testing.T) {
	opts := DefaultOptions()
	opts.CutAtHighest = false
	f := New(opts)

	assert.Equal(t, "123", f.Format("123"))
	assert.Equal(t, "1,234", f.Format("1234"))
	assert.Equal(t, "1,234,567", f.Format("1234567"))
	assert.Equal(t, "123,456,789,012", f.Format("123456789012"))
}

func TestFormat_FullWithCustomSeparator(t *testing.T) {
	opts := DefaultOptions()
	opts.CutAtHighest = false
	opts.ThousandSeparator = " "
	f := New(opts)

	assert.Equal(t, "1 234 567", f.Format("1234567"))
}

func TestFormat_FullWithoutGrouping(t *testing.T) {
	opts := DefaultOptions()
	opts.CutAtHighest = false
	opts.GroupDigits = false
	f := New(opts)

	assert.Equal(t, "1234567", f.Format("1234567"))
}

func TestFormat_NegativeValueKeepsSign(t *testing.T) {
	opts := DefaultOptions()
	opts.CutAtHighest = false
	f := New(opts)

	assert.Equal(t, "-1,234", f.Format("-1234"))
}

func TestForCurrency(t *testing.T) {
	w := engine.NewWorld()
	gold, err := engine.NewCurrency(w, "Gold")
	require.NoError(t, err)
	gold.Add(big.NewInt(1234567))

	opts := DefaultOptions()
	opts.ShowDecimals = true
	opts.Abbreviations = []string{"K", "M"}

	assert.Equal(t, "1.23M", ForCurrency(gold, opts).String())
}

func TestForItemPrice(t *testing.T) {
	w := engine.NewWorld()
	gold, err := engine.NewCurrency(w, "Gold")
	require.NoError(t, err)

	g, err := engine.NewGenerator(w, engine.GeneratorConfig{
		Generate:        gold,
		BasePrice:       big.NewInt(1500),
		PriceMultiplier: 1.0,
	})
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.ShowDecimals = true

	assert.Equal(t, "1.50", ForItemPrice(g, opts).String())
}
