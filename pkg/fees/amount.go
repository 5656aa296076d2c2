package fees

import (
	"fmt"
	"math/big"
)

// Amounts are decimal integer strings in the smallest currency unit (wei for
// ETH). They are never converted to floating point.

// ParseAmount parses a decimal integer string. An optional leading '-' is
// accepted; '+', whitespace, underscores and fractional parts are not.
func ParseAmount(s string) (*big.Int, error) {
	if !isDecimalInteger(s) {
		return nil, fmt.Errorf("invalid decimal amount %q", s)
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", s)
	}
	return n, nil
}

func isDecimalInteger(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parsePair(a, b string) (*big.Int, *big.Int, error) {
	x, err := ParseAmount(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := ParseAmount(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func Compare(a, b string) (int, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return 0, err
	}
	return x.Cmp(y), nil
}

// Add returns a + b
func Add(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	return x.Add(x, y).String(), nil
}

// Sub returns a - b
func Sub(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	return x.Sub(x, y).String(), nil
}

// Mul returns a * b
func Mul(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	return x.Mul(x, y).String(), nil
}

// Div returns a / b truncated toward zero. It never rounds, so a fee derived
// from it is never pushed up by the division.
func Div(a, b string) (string, error) {
	x, y, err := parsePair(a, b)
	if err != nil {
		return "", err
	}
	if y.Sign() == 0 {
		return "", fmt.Errorf("division by zero: %s / %s", a, b)
	}
	return x.Quo(x, y).String(), nil
}

// IsPositive reports whether s is a well-formed amount greater than zero
func IsPositive(s string) bool {
	n, err := ParseAmount(s)
	return err == nil && n.Sign() > 0
}

// IsNonNegative reports whether s is a well-formed amount of zero or more
func IsNonNegative(s string) bool {
	n, err := ParseAmount(s)
	return err == nil && n.Sign() >= 0
}
