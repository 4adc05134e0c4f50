package recol

import (
	"errors"
	"strconv"
	"strings"
)

const literalPrefix = "str:"

var ErrEmptySpec = errors.New("column spec is empty")

// ParseSpec parses the comma-separated column spec argument. A token
// starting with "str:" becomes a literal whose text is everything after
// the prefix (possibly empty, colons allowed). Any other token is
// coerced to a column number; non-numeric tokens coerce to 0, which
// never matches a column and therefore prints as an empty field.
func ParseSpec(raw string) ([]Item, error) {
	if raw == "" {
		return nil, ErrEmptySpec
	}

	parts := strings.Split(raw, ",")
	items := make([]Item, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, literalPrefix) {
			items = append(items, Item{Literal: true, Text: part[len(literalPrefix):]})
			continue
		}

		num, err := strconv.Atoi(part)
		if err != nil {
			num = 0
		}
		items = append(items, Item{Index: num})
	}

	return items, nil
}
