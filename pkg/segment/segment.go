// Package segment splits flat regulatory text into marker-delimited sections.
package segment

import (
	"errors"
	"strings"
)

// ErrEmptyMarker is returned when Segment is called with an empty marker.
var ErrEmptyMarker = errors.New("section marker must not be empty")

// Segment splits document into spans, one per non-overlapping occurrence of
// marker. Each span starts at a marker occurrence (marker text included) and
// runs up to the next occurrence or the end of the document, so spans are
// contiguous, in document order, and together reproduce the document from
// the first occurrence onward. A document with no occurrences yields zero
// spans.
//
// Matching is a plain case-sensitive substring scan: a marker appearing
// inside an unrelated word is treated as a real delimiter. Known limitation,
// kept for compatibility with the source data this was tuned on.
func Segment(document, marker string) ([]string, error) {
	if marker == "" {
		return nil, ErrEmptyMarker
	}

	var spans []string
	offset := 0
	start := -1
	for {
		i := strings.Index(document[offset:], marker)
		if i < 0 {
			break
		}
		pos := offset + i
		if start >= 0 {
			spans = append(spans, document[start:pos])
		}
		start = pos
		offset = pos + len(marker)
	}
	if start >= 0 {
		spans = append(spans, document[start:])
	}

	return spans, nil
}
