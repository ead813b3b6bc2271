package domain

import (
	"math/big"
	"strings"
)

// TokenDecimals is the precision of every token the contract handles
const TokenDecimals = 18

// OneToken returns one whole token in base units
func OneToken() *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(TokenDecimals), nil)
}

// ParseUnits converts a decimal token amount into base units. Digits past the
// given precision are discarded, so the result is always floored.
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ValidationError{Field: "amount", Reason: "is empty"}
	}
	if strings.HasPrefix(s, "-") {
		return nil, ValidationError{Field: "amount", Reason: "must not be negative"}
	}
	s = strings.TrimPrefix(s, "+")

	whole, frac, hasDot := strings.Cut(s, ".")
	if hasDot && strings.Contains(frac, ".") {
		return nil, ValidationError{Field: "amount", Reason: "is not a decimal number"}
	}
	if whole == "" && frac == "" {
		return nil, ValidationError{Field: "amount", Reason: "is not a decimal number"}
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, ValidationError{Field: "amount", Reason: "is not a decimal number"}
	}

	if len(frac) > decimals {
		frac = frac[:decimals]
	}
	frac += strings.Repeat("0", decimals-len(frac))

	digits := strings.TrimLeft(whole+frac, "0")
	if digits == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, ValidationError{Field: "amount", Reason: "is not a decimal number"}
	}
	return v, nil
}

// FormatUnits renders base units as a decimal string without trailing zeros
func FormatUnits(v *big.Int, decimals int) string {
	if v == nil {
		return "0"
	}
	neg := v.Sign() < 0
	digits := new(big.Int).Abs(v).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}
	whole := digits[:len(digits)-decimals]
	frac := strings.TrimRight(digits[len(digits)-decimals:], "0")

	out := whole
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
