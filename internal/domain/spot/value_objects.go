package spot

import (
	"math"
	"strings"
)

const (
	MaxLabelCount  = 20
	MaxLabelLength = 50

	// MaxPricePerNight is 1,000,000.00 in minor units.
	MaxPricePerNight int64 = 100_000_000
)

// GridPosition is 1-based; (camping, row, column) is unique.
type GridPosition struct {
	row    int
	column int
}

func NewGridPosition(row, column int) (GridPosition, error) {
	if row < 1 || column < 1 {
		return GridPosition{}, ErrInvalidPosition
	}
	return GridPosition{row: row, column: column}, nil
}

func (p GridPosition) Row() int    { return p.row }
func (p GridPosition) Column() int { return p.column }

// Money is stored in minor units.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativePrice
	}
	if amount > MaxPricePerNight {
		return Money{}, ErrPriceTooHigh
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 { return m.amount }

// Times multiplies by a non-negative count and reports ErrPriceOverflow instead of wrapping.
func (m Money) Times(n int) (Money, error) {
	if m.amount < 0 || n < 0 {
		return Money{}, ErrNegativePrice
	}
	if n != 0 && m.amount > math.MaxInt64/int64(n) {
		return Money{}, ErrPriceOverflow
	}
	return Money{amount: m.amount * int64(n)}, nil
}

// NormalizeLabels trims, drops blanks and de-duplicates tag or service names.
func NormalizeLabels(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, raw := range in {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		if len(s) > MaxLabelLength {
			return nil, ErrLabelTooLong
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	if len(out) > MaxLabelCount {
		return nil, ErrTooManyLabels
	}
	return out, nil
}
