package models

import (
	"fmt"
	"strconv"
)

// ID is a backend-native resource identifier. The relational adapter produces
// numeric IDs that render as JSON numbers, the document adapter produces
// ObjectID hex strings that render as JSON strings. Handlers and clients treat
// it as opaque.
type ID struct {
	value   string
	numeric bool
}

// NumericID returns the ID for a relational auto-increment key.
func NumericID(n uint64) ID {
	return ID{value: strconv.FormatUint(n, 10), numeric: true}
}

// HexID returns the ID for a document store ObjectID hex string.
func HexID(s string) ID {
	return ID{value: s}
}

// ParseID parses an ID from its path parameter rendering. Values that parse
// as unsigned integers are classified as numeric, everything else is kept
// verbatim for the document adapter to interpret.
func ParseID(s string) ID {
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return NumericID(n)
	}

	return HexID(s)
}

func (id ID) String() string {
	return id.value
}

func (id ID) IsZero() bool {
	return id.value == ""
}

// Uint64 returns the numeric value of a relational ID.
func (id ID) Uint64() (uint64, error) {
	if !id.numeric {
		return 0, fmt.Errorf("%q is not a numeric ID", id.value)
	}

	return strconv.ParseUint(id.value, 10, 64)
}

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}

	return []byte(strconv.Quote(id.value)), nil
}

func (id *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty ID")
	}

	if data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid ID %s: %w", data, err)
		}

		*id = ParseID(unquoted)
		return nil
	}

	if string(data) == "null" {
		*id = ID{}
		return nil
	}

	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid ID %s: %w", data, err)
	}

	*id = NumericID(n)
	return nil
}
