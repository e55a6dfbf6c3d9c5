// Package pricing считает суммы заказа. Все вычисления точные (decimal), без округления;
// округление до тысячи - только для отображения суммы к оплате.
package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidNumber       = errors.New("value must be a positive number")
	ErrPromotionOutOfRange = errors.New("promotion must be within 0-100%")
)

var (
	hundred        = decimal.NewFromInt(100)
	payableStepExp = int32(3) // 1000
)

func ItemSubtotal(quantity uint32, weight, unitPrice decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(quantity)).Mul(weight).Mul(unitPrice)
}

// OrderBase суммирует исходные подытоги позиций.
func OrderBase(subtotals []decimal.Decimal) decimal.Decimal {
	base := decimal.Zero
	for _, s := range subtotals {
		base = base.Add(s)
	}
	return base
}

// OrderTotal = base − base × promotion/100. Диапазон promotion проверяет вызывающий код.
func OrderTotal(base, promotion decimal.Decimal) decimal.Decimal {
	return base.Sub(base.Mul(promotion.Shift(-2)))
}

func ValidatePromotion(p decimal.Decimal) error {
	if p.IsNegative() || p.GreaterThan(hundred) {
		return ErrPromotionOutOfRange
	}
	return nil
}

// ParsePromotion: пустая строка - это 0%.
func ParsePromotion(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("promotion: %w", ErrInvalidNumber)
	}
	if err := ValidatePromotion(p); err != nil {
		return decimal.Zero, err
	}
	return p, nil
}

// ParsePositive разбирает количество/вес/цену из ввода оператора.
func ParsePositive(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%s: %w", field, ErrInvalidNumber)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || !v.IsPositive() {
		return decimal.Zero, fmt.Errorf("%s: %w", field, ErrInvalidNumber)
	}
	return v, nil
}

// Line - подытог позиции с явной пометкой, исходный он или после корректировки веса.
type Line struct {
	subtotal  decimal.Decimal
	corrected bool
}

func Original(subtotal decimal.Decimal) Line  { return Line{subtotal: subtotal} }
func Corrected(subtotal decimal.Decimal) Line { return Line{subtotal: subtotal, corrected: true} }

func (l Line) Subtotal() decimal.Decimal { return l.subtotal }
func (l Line) IsCorrected() bool         { return l.corrected }

// RecomputeOrderTotal пересчитывает итог после корректировок: для каждой позиции берётся
// её действующий подытог, затем применяется та же скидка.
func RecomputeOrderTotal(lines []Line, promotion decimal.Decimal) (base, total decimal.Decimal) {
	subtotals := make([]decimal.Decimal, 0, len(lines))
	for _, l := range lines {
		subtotals = append(subtotals, l.subtotal)
	}
	base = OrderBase(subtotals)
	return base, OrderTotal(base, promotion)
}

// RoundPayable округляет вниз до кратного 1000.
func RoundPayable(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(-payableStepExp).Floor().Shift(payableStepExp)
}
