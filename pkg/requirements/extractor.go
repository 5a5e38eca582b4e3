// Package requirements assembles per-section requirement records from
// regulatory text: one record per marker-delimited section, carrying the
// section's number, its original text, and a derived summary.
package requirements

import (
	"fmt"

	"github.com/coolbeans/regsum/pkg/segment"
	"github.com/coolbeans/regsum/pkg/summarize"
)

// Extractor splits a document into sections and derives one SectionRecord
// per section.
type Extractor struct {
	marker     string
	pattern    *NumberPattern
	summarizer summarize.Summarizer
}

// NewExtractor creates an Extractor for the given section marker, number
// pattern, and summarizer.
func NewExtractor(marker string, pattern *NumberPattern, summarizer summarize.Summarizer) *Extractor {
	return &Extractor{
		marker:     marker,
		pattern:    pattern,
		summarizer: summarizer,
	}
}

// Extract segments document and assembles one record per section, in
// document order. The record at position i derives solely from the section
// at position i. A document with no sections is not an error: the result is
// empty and the report carries a warning. A section without a matching
// number is likewise non-fatal; its record is emitted with a nil number.
func (e *Extractor) Extract(document string) ([]SectionRecord, *Report, error) {
	spans, err := segment.Segment(document, e.marker)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{SectionCount: len(spans)}
	if len(spans) == 0 {
		report.Warnings = append(report.Warnings, "no sections were extracted from input")
		return []SectionRecord{}, report, nil
	}

	records := make([]SectionRecord, 0, len(spans))
	for i, span := range spans {
		record := SectionRecord{
			OriginalText:           span,
			SummarizedRequirements: e.summarizer.Summarize(span),
		}

		number, found, err := e.pattern.Extract(span)
		if err != nil {
			return nil, nil, fmt.Errorf("section %d: %w", i+1, err)
		}
		if found {
			n := number
			record.SectionNumber = &n
			report.NumberedSections++
		} else {
			report.MissingNumbers = append(report.MissingNumbers, i+1)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("section %d: no section number matched the configured pattern", i+1))
		}

		records = append(records, record)
	}

	return records, report, nil
}
