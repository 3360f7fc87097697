package input

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Validation failures. Their messages are shown to the user as-is.
var (
	ErrNameTooShort = errors.New("name must be at least 2 characters")
	ErrPriceTooLow  = errors.New("price must be greater than 0")
)

const (
	MinNameLength = 2
	MinPrice      = 0.1
)

// Form holds the raw name and price typed by the user.
type Form struct {
	Name  string
	Price string
}

// Valid is a form that passed validation.
type Valid struct {
	Name  string
	Price float64
}

// Validate trims the name and parses the price, accepting a comma as the
// decimal separator.
func Validate(f Form) (Valid, error) {
	name := strings.TrimSpace(f.Name)
	if utf8.RuneCountInString(name) < MinNameLength {
		return Valid{}, ErrNameTooShort
	}
	price, ok := ParsePrice(f.Price)
	if !ok || price < MinPrice {
		return Valid{}, ErrPriceTooLow
	}
	return Valid{Name: name, Price: price}, nil
}

// ParsePrice replaces the first comma with a period and parses the result.
// Blank input parses as 0. NaN and infinities are rejected.
func ParsePrice(raw string) (float64, bool) {
	s := strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
