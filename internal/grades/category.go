package grades

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCategory = errors.New("unknown category")

type Category uint8

const (
	Formative Category = iota + 1
	Summative
)

func (c Category) String() string {
	switch c {
	case Formative:
		return "Formative"
	case Summative:
		return "Summative"
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

func (c Category) Valid() bool {
	return c == Formative || c == Summative
}

// ParseCategory accepts "Formative" or "Summative" in any case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "formative":
		return Formative, nil
	case "summative":
		return Summative, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCategory, uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
