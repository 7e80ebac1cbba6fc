package domain

import (
	"regexp"
	"strconv"
	"strings"
)

type filterKind int

const (
	filterNone filterKind = iota
	filterName
	filterReading
	filterFinished
)

// ListFilter selects which records a list request returns.
// Only one criterion is ever active.
type ListFilter struct {
	kind    filterKind
	pattern *regexp.Regexp // nil when the name is not a valid expression
	needle  string         // lowercased name, used when pattern is nil
	want    bool
	valid   bool // false when the boolean query value could not be parsed
}

// ParseListFilter picks the first non-empty query value in priority order
// name > reading > finished. With none set every record matches.
//
// The name is compiled as a case-insensitive regular expression and falls
// back to a literal case-insensitive substring when it does not compile.
// reading and finished accept the values understood by strconv.ParseBool;
// anything else matches no record.
func ParseListFilter(name, reading, finished string) ListFilter {
	switch {
	case name != "":
		f := ListFilter{kind: filterName, valid: true}
		if re, err := regexp.Compile("(?i)" + name); err == nil {
			f.pattern = re
		} else {
			f.needle = strings.ToLower(name)
		}
		return f
	case reading != "":
		return boolFilter(filterReading, reading)
	case finished != "":
		return boolFilter(filterFinished, finished)
	default:
		return ListFilter{kind: filterNone, valid: true}
	}
}

func boolFilter(kind filterKind, raw string) ListFilter {
	want, err := strconv.ParseBool(raw)
	return ListFilter{kind: kind, want: want, valid: err == nil}
}

// Match reports whether b satisfies the filter.
func (f ListFilter) Match(b Book) bool {
	if !f.valid {
		return false
	}
	switch f.kind {
	case filterName:
		if f.pattern != nil {
			return f.pattern.MatchString(b.Name)
		}
		return strings.Contains(strings.ToLower(b.Name), f.needle)
	case filterReading:
		return b.Reading == f.want
	case filterFinished:
		return b.Finished == f.want
	default:
		return true
	}
}

// FilterBooks returns the condensed projection of every matching record,
// preserving input order. The result is never nil.
func FilterBooks(books []Book, f ListFilter) []BookSummary {
	out := make([]BookSummary, 0, len(books))
	for _, b := range books {
		if f.Match(b) {
			out = append(out, b.Summarize())
		}
	}
	return out
}
