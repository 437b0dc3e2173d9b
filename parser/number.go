package parser

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ParseNumber converts a numeric lexeme into an int64 or a float64.
//
//	['+'|'-'] digit+ ['.' digit+] [('e'|'E') ['+'|'-'] digit+]
//
// A fraction or an exponent makes the value a float64. Integers that do not
// fit in an int64 are returned as float64 instead of failing.
func ParseNumber(lexeme string) (interface{}, error) {
	isFloat, err := scanNumber(lexeme)
	if err != nil {
		return nil, err
	}

	if !isFloat {
		i64, err := strconv.ParseInt(lexeme, 10, 64)
		if err == nil {
			return i64, nil
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, lexeme)
		}
	}

	f64, err := strconv.ParseFloat(lexeme, 64)
	if math.IsInf(f64, 0) {
		return nil, fmt.Errorf("%w: %q is out of range", ErrInvalidNumber, lexeme)
	}
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, lexeme)
	}
	return f64, nil
}

// scanNumber validates the lexeme against the number grammar and reports
// whether it has a fraction or an exponent.
func scanNumber(s string) (bool, error) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := func() int {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i - start
	}

	if digits() == 0 {
		return false, fmt.Errorf("%w: %q: expecting digits", ErrInvalidNumber, s)
	}

	isFloat := false
	if i < len(s) && s[i] == '.' {
		i++
		if digits() == 0 {
			return false, fmt.Errorf("%w: %q: expecting digits after '.'", ErrInvalidNumber, s)
		}
		isFloat = true
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false, fmt.Errorf("%w: %q: expecting digits in exponent", ErrInvalidNumber, s)
		}
		isFloat = true
	}

	if i != len(s) {
		return false, fmt.Errorf("%w: %q: unexpected %q", ErrInvalidNumber, s, s[i:i+1])
	}
	return isFloat, nil
}
