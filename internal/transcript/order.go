package transcript

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"gradebook/internal/grades"
)

var (
	ErrUnknownOrder  = errors.New("unknown transcript order")
	ErrUnknownFormat = errors.New("unknown output format")
)

// Order controls how transcript rows are listed. It never changes totals or
// the order of resubmission notices.
type Order string

const (
	OrderInput      Order = "input"
	OrderAscending  Order = "ascending"
	OrderDescending Order = "descending"
)

func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case "", OrderInput:
		return OrderInput, nil
	case OrderAscending, "asc":
		return OrderAscending, nil
	case OrderDescending, "desc":
		return OrderDescending, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Sorted returns a copy of rows arranged by score. Equal scores keep their
// input order.
func Sorted(rows []grades.Row, order Order) []grades.Row {
	out := slices.Clone(rows)
	switch order {
	case OrderAscending:
		slices.SortStableFunc(out, func(a, b grades.Row) int {
			return compareScore(a.Score, b.Score)
		})
	case OrderDescending:
		slices.SortStableFunc(out, func(a, b grades.Row) int {
			return compareScore(b.Score, a.Score)
		})
	}
	return out
}

func compareScore(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
