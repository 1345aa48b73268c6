package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind decides how raw text becomes a typed value.
type Kind int

const (
	// KindInt parses base-10 integers.
	KindInt Kind = iota
	// KindCurrency parses decimal amounts.
	KindCurrency
	// KindPercent parses a whole-number percent and stores it as a
	// fraction, so "4" becomes 0.04.
	KindPercent
)

// ParseError marks raw input that could not be turned into a value.
// The engine re-issues the same prompt and does not advance.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid input %q", e.Input)
}

// ValidationError marks a parsed value that is out of domain or
// violates a cross-field rule. Message is user-facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Parse converts raw text into the step's typed value. All values are
// carried as float64; integer fields are parsed strictly as integers.
func Parse(kind Kind, raw string) (float64, error) {
	raw = strings.TrimSpace(raw)

	switch kind {
	case KindInt:
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, &ParseError{Input: raw}
		}
		return float64(value), nil

	case KindCurrency:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &ParseError{Input: raw}
		}
		return value, nil

	case KindPercent:
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, &ParseError{Input: raw}
		}
		return value / 100, nil

	default:
		return 0, &ParseError{Input: raw}
	}
}
