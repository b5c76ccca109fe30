// Package money holds monetary values as integer cents to avoid
// floating-point drift in stored data.
package money

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Masked replaces a formatted amount when the user has hidden numbers.
const Masked = "R$ ••••"

// Money is an amount in cents of the base currency (BRL).
type Money int64

// FromCents wraps a raw cent count.
func FromCents(cents int64) Money {
	return Money(cents)
}

// Cents returns the raw cent count.
func (m Money) Cents() int64 {
	return int64(m)
}

// Reais returns the value in reais as a float64, for display only.
func (m Money) Reais() float64 {
	return float64(m) / 100.0
}

// Parse converts a decimal string to Money with half-up rounding on the
// third decimal place. Both dot (12.34) and comma (12,34) separators are
// accepted. Negative values are rejected; zero is allowed.
func Parse(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}

	return Money(iv*100 + fracCents), nil
}

// ParsePositive is Parse with a strict > 0 requirement, for inputs where a
// zero amount is meaningless (payment amounts, goal targets, funding).
func ParsePositive(s string) (Money, error) {
	m, err := Parse(s)
	if err != nil {
		return 0, err
	}
	if m <= 0 {
		return 0, ErrInvalidAmount
	}
	return m, nil
}

// Format renders the value as Brazilian currency, e.g. "R$ 1.234,56".
func (m Money) Format() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	intPart := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	// Thousands grouping with dots (pt-BR).
	var grouped strings.Builder
	n := len(intPart)
	for i, r := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(r)
	}

	return "R$ " + sign + grouped.String() + "," + pad2(frac)
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
