package requirements

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// DefaultNumberPattern matches the default marker "Section" followed by a
// single space and one or two digits, capturing the digits.
const DefaultNumberPattern = `Section ([0-9]{1,2})`

// ErrMalformedPattern is returned when a number pattern contains no
// capturing group.
var ErrMalformedPattern = errors.New("number pattern must contain a capturing group")

// NumberPattern extracts section numbers from section text. The first
// capturing group of the underlying expression is expected to match the
// section number's digits.
type NumberPattern struct {
	re *regexp.Regexp
}

// NewNumberPattern compiles expr into a NumberPattern. The expression must
// contain at least one capturing group.
func NewNumberPattern(expr string) (*NumberPattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compiling number pattern: %w", err)
	}
	if re.NumSubexp() == 0 {
		return nil, ErrMalformedPattern
	}
	return &NumberPattern{re: re}, nil
}

// NumberPatternFor returns the default-shaped pattern expression for a
// custom marker: the marker literal, one space, and a captured run of one
// or two digits.
func NumberPatternFor(marker string) string {
	return regexp.QuoteMeta(marker) + ` ([0-9]{1,2})`
}

// Extract returns the section number from the first match of the pattern in
// sectionText. A missing match is not an error: the boolean reports whether
// a number was found. An error is returned only when the captured value
// cannot be parsed as a base-10 integer.
func (p *NumberPattern) Extract(sectionText string) (int, bool, error) {
	match := p.re.FindStringSubmatch(sectionText)
	if match == nil {
		return 0, false, nil
	}

	number, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false, fmt.Errorf("parsing section number %q: %w", match[1], err)
	}
	return number, true, nil
}
