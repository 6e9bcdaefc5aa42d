// Package format renders the engine's arbitrary-precision values as
// display strings: grouped digits, truncated-to-highest-group shorthand,
// and per-magnitude abbreviations. It consumes raw decimal digits only,
// keeping presentation out of the numeric core.
package format

import (
	"math/big"
	"strings"

	"github.com/manabreak/libclicker2/internal/engine"
)

// Options configures a formatter. DefaultOptions gives the common idle-game
// shorthand: highest group with two decimals.
type Options struct {
	// GroupDigits inserts ThousandSeparator every three digits when the
	// full value is shown.
	GroupDigits       bool
	ThousandSeparator string

	// ShowDecimals appends Decimals digits of the next group after
	// DecimalSeparator when truncating to the highest group.
	ShowDecimals     bool
	Decimals         int
	DecimalSeparator string

	// CutAtHighest truncates to the highest thousands-group instead of
	// rendering every digit.
	CutAtHighest bool

	// Abbreviations names each magnitude above the first group
	// (thousands, millions, ...) when truncating.
	Abbreviations []string
}

func DefaultOptions() Options {
	return Options{
		GroupDigits:       true,
		ThousandSeparator: ",",
		Decimals:          2,
		DecimalSeparator:  ".",
		CutAtHighest:      true,
	}
}

// Formatter renders raw decimal-digit strings according to its options.
type Formatter struct {
	opts Options
}

func New(opts Options) Formatter {
	return Formatter{opts: opts}
}

// Format renders one raw decimal value.
func (f Formatter) Format(raw string) string {
	if raw == "" {
		return ""
	}
	sign := ""
	if strings.HasPrefix(raw, "-") {
		sign = "-"
		raw = raw[1:]
	}

	if f.opts.CutAtHighest {
		return sign + f.cutAtHighest(raw)
	}
	if f.opts.GroupDigits {
		return sign + f.group(raw)
	}
	return sign + raw
}

func (f Formatter) cutAtHighest(raw string) string {
	length := len(raw)
	if length < 4 {
		return raw
	}

	rem := length % 3
	if rem == 0 {
		rem = 3
	}

	var b strings.Builder
	b.WriteString(raw[:rem])

	if f.opts.ShowDecimals {
		b.WriteString(f.opts.DecimalSeparator)
		decimals := min(f.opts.Decimals, length-rem)
		b.WriteString(raw[rem : rem+decimals])
	}

	if len(f.opts.Abbreviations) > 0 {
		tri := (length - 1) / 3
		if tri > 0 && tri <= len(f.opts.Abbreviations) {
			b.WriteString(f.opts.Abbreviations[tri-1])
		}
	}

	return b.String()
}

func (f Formatter) group(raw string) string {
	var b strings.Builder
	lead := len(raw) % 3
	if lead > 0 {
		b.WriteString(raw[:lead])
	}
	for i := lead; i < len(raw); i += 3 {
		if b.Len() > 0 {
			b.WriteString(f.opts.ThousandSeparator)
		}
		b.WriteString(raw[i : i+3])
	}
	return b.String()
}

// CurrencyFormatter renders a currency's live balance.
type CurrencyFormatter struct {
	f        Formatter
	currency *engine.Currency
}

func ForCurrency(c *engine.Currency, opts Options) CurrencyFormatter {
	return CurrencyFormatter{f: New(opts), currency: c}
}

func (cf CurrencyFormatter) String() string {
	return cf.f.Format(cf.currency.AmountAsString())
}

// Pricer is anything with a purchase price; Generators and Automators
// qualify.
type Pricer interface {
	Price() *big.Int
}

// ItemPriceFormatter renders an item's current price.
type ItemPriceFormatter struct {
	f    Formatter
	item Pricer
}

func ForItemPrice(item Pricer, opts Options) ItemPriceFormatter {
	return ItemPriceFormatter{f: New(opts), item: item}
}

func (pf ItemPriceFormatter) String() string {
	return pf.f.Format(pf.item.Price().String())
}
