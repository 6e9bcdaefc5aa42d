package engine

import (
	"errors"
	"math"
	"math/big"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseResult is the outcome of attempting to buy one level of an item.
// Insufficient funds and a maxed-out item are expected business outcomes,
// not errors.
type PurchaseResult string

const (
	PurchaseOK                PurchaseResult = "ok"
	PurchaseInsufficientFunds PurchaseResult = "insufficient_funds"
	PurchaseMaxLevelReached   PurchaseResult = "max_level_reached"
)

// DefaultPriceMultiplier is the per-level price growth applied when a
// config leaves the multiplier unset.
const DefaultPriceMultiplier = 1.145

// item is the shared state for everything purchasable: a level, a price
// curve and a max level. Generators and Automators embed it.
type item struct {
	world           *World
	id              string
	name            string
	description     string
	basePrice       *big.Int
	priceMultiplier float64
	level           int64
	maxLevel        int64

	// onLevelChange fires after every level mutation so embedders can
	// refresh derived state (e.g. an automator's effective interval).
	onLevelChange func()
}

func newItem(world *World, name string) item {
	return item{
		world:           world,
		id:              uuid.NewString(),
		name:            name,
		description:     "No description.",
		basePrice:       big.NewInt(1),
		priceMultiplier: DefaultPriceMultiplier,
		maxLevel:        math.MaxInt64,
	}
}

// ID returns the unique identity assigned at construction. Hosts use it
// to key snapshots; the engine itself keys registries by pointer.
func (i *item) ID() string { return i.id }

func (i *item) Name() string { return i.name }

func (i *item) SetName(name string) error {
	if name == "" {
		return errors.New("item name cannot be empty")
	}
	i.name = name
	return nil
}

func (i *item) Description() string { return i.description }

func (i *item) SetDescription(description string) { i.description = description }

func (i *item) BasePrice() *big.Int { return new(big.Int).Set(i.basePrice) }

// SetBasePrice rejects a zero price: the price curve must stay strictly
// positive at level 0.
func (i *item) SetBasePrice(price *big.Int) error {
	if price == nil {
		return errors.New("base price cannot be nil")
	}
	if price.Sign() == 0 {
		return errors.New("base price cannot be zero")
	}
	i.basePrice = new(big.Int).Set(price)
	return nil
}

func (i *item) PriceMultiplier() float64 { return i.priceMultiplier }

func (i *item) SetPriceMultiplier(multiplier float64) { i.priceMultiplier = multiplier }

func (i *item) Level() int64 { return i.level }

func (i *item) MaxLevel() int64 { return i.maxLevel }

func (i *item) SetMaxLevel(maxLevel int64) error {
	if maxLevel <= 0 {
		return errors.New("max level must be greater than zero")
	}
	i.maxLevel = maxLevel
	return nil
}

// Price returns floor(basePrice * priceMultiplier^level) for the current
// level.
func (i *item) Price() *big.Int {
	price := decimal.NewFromBigInt(i.basePrice, 0)
	price = price.Mul(decimal.NewFromFloat(math.Pow(i.priceMultiplier, float64(i.level))))
	return price.BigInt()
}

// BuyWith debits the currency by the current price and raises the level by
// one. The debit and the upgrade are a single unit: on any non-OK result
// neither happens.
func (i *item) BuyWith(currency *Currency) PurchaseResult {
	if i.level >= i.maxLevel {
		return PurchaseMaxLevelReached
	}
	price := i.Price()
	if currency.Value().Cmp(price) < 0 {
		return PurchaseInsufficientFunds
	}
	currency.Sub(price)
	i.Upgrade()
	return PurchaseOK
}

// Upgrade raises the level by one, saturating at the max level.
func (i *item) Upgrade() {
	if i.level < i.maxLevel {
		i.level++
		i.levelChanged()
	}
}

// Downgrade lowers the level by one, saturating at zero.
func (i *item) Downgrade() {
	if i.level > 0 {
		i.level--
		i.levelChanged()
	}
}

// SetLevel clamps the given level into [0, maxLevel]. Level is a
// saturating quantity; out-of-range values clamp rather than fail.
func (i *item) SetLevel(level int64) {
	switch {
	case level < 0:
		level = 0
	case level > i.maxLevel:
		level = i.maxLevel
	}
	i.level = level
	i.levelChanged()
}

// Maximize sets the level to the max level.
func (i *item) Maximize() {
	i.level = i.maxLevel
	i.levelChanged()
}

func (i *item) levelChanged() {
	if i.onLevelChange != nil {
		i.onLevelChange()
	}
}
