package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParsePositiveInt parses positive integers with fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}

// ParseOptionalFloat parses a non-negative number. An empty value is absent (nil, nil).
func ParseOptionalFloat(name, value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil, fmt.Errorf("%s must be a number", name)
	}
	if parsed < 0 {
		return nil, fmt.Errorf("%s must not be negative", name)
	}
	return &parsed, nil
}

// ParseOptionalInt parses a non-negative integer. An empty value is absent (nil, nil).
func ParseOptionalInt(name, value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be a whole number", name)
	}
	if parsed < 0 {
		return nil, fmt.Errorf("%s must not be negative", name)
	}
	return &parsed, nil
}

// ParseCoordinate parses a required latitude or longitude within ±limit.
func ParseCoordinate(name, value string, limit float64) (float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(parsed) || parsed < -limit || parsed > limit {
		return 0, fmt.Errorf("%s must be a number between -%g and %g", name, limit, limit)
	}
	return parsed, nil
}

// SplitList splits repeated and comma-separated values, dropping blanks.
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Paginate returns the [start, end) window of page with limit items over total.
// Pages past the end yield an empty window at total.
func Paginate(total, page, limit int) (int, int) {
	if total <= 0 || page < 1 || limit < 1 || page-1 >= (total+limit-1)/limit {
		return total, total
	}
	start := (page - 1) * limit
	end := start + limit
	if end > total {
		end = total
	}
	return start, end
}
