package domain

import (
	"errors"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var errYearShape = errors.New("year must be a number or a string")

// Year is the publication year exactly as it was supplied: a JSON number,
// a JSON string, or nothing. It is stored and echoed back without validation.
type Year struct {
	raw string // JSON text, empty when absent
}

// YearOf returns a numeric year.
func YearOf(v int) Year {
	return Year{raw: strconv.Itoa(v)}
}

// YearText returns a year from plain text, as found in seed files.
// Integer text stays a number, anything else becomes a string.
func YearText(s string) Year {
	if s == "" {
		return Year{}
	}
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Year{raw: s}
	}
	quoted, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(s)
	if err != nil {
		return Year{}
	}
	return Year{raw: string(quoted)}
}

// IsZero reports whether no year was supplied.
func (y Year) IsZero() bool { return y.raw == "" }

// String returns the year as text, without JSON quoting.
func (y Year) String() string {
	if len(y.raw) > 0 && y.raw[0] == '"' {
		var s string
		if err := jsoniter.ConfigCompatibleWithStandardLibrary.UnmarshalFromString(y.raw, &s); err == nil {
			return s
		}
	}
	return y.raw
}

func (y Year) MarshalJSON() ([]byte, error) {
	if y.raw == "" {
		return []byte("null"), nil
	}
	return []byte(y.raw), nil
}

func (y *Year) UnmarshalJSON(b []byte) error {
	if len(b) == 0 {
		*y = Year{}
		return nil
	}
	switch c := b[0]; {
	case c == 'n':
		*y = Year{}
	case c == '"', c == '-', c >= '0' && c <= '9':
		*y = Year{raw: string(b)}
	default:
		return errYearShape
	}
	return nil
}
