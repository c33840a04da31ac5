package cmd

import (
	"strconv"
	"strings"
)

// Parser converts one raw token into zero or more typed values. Parsers are
// a pure strategy point: implement it to teach the binder a new type.
// Implementations must be stateless, as one instance is shared across
// concurrent invocations.
type Parser interface {
	Parse(raw string) ([]any, error)
}

// StringParser passes every raw token through as-is, one value per token.
type StringParser struct{}

func (StringParser) Parse(raw string) ([]any, error) {
	return []any{raw}, nil
}

// NumberParser interprets tokens as numbers. Decimal selects float64 output
// over int64; Signed permits negative values.
type NumberParser struct {
	Decimal bool
	Signed  bool
}

func (p NumberParser) Parse(raw string) ([]any, error) {
	if p.Decimal {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, &ConversionError{Raw: raw, Reason: "not a number"}
		}
		if !p.Signed && f < 0 {
			return nil, &ConversionError{Raw: raw, Reason: "this number can't be negative"}
		}
		return []any{f}, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, &ConversionError{Raw: raw, Reason: "not an integer"}
	}
	if !p.Signed && n < 0 {
		return nil, &ConversionError{Raw: raw, Reason: "this number can't be negative"}
	}
	return []any{n}, nil
}

// BoolParser interprets tokens using a fixed, case-insensitive vocabulary.
// A bare flag tokenizes to an empty string, which reads as true.
type BoolParser struct{}

func (BoolParser) Parse(raw string) ([]any, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "t", "1", "":
		return []any{true}, nil
	case "no", "n", "false", "f", "0":
		return []any{false}, nil
	}
	return nil, &ConversionError{Raw: raw, Reason: "value cannot be interpreted as a boolean"}
}
