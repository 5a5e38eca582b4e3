package requirements

// SectionRecord is the per-section output unit: the extracted number (nil
// when no number matched), the section text verbatim, and the derived
// summary. Records are produced in document order and never mutated after
// creation.
type SectionRecord struct {
	SectionNumber          *int   `json:"section_number"`
	OriginalText           string `json:"original_text"`
	SummarizedRequirements string `json:"summarized_requirements"`
}

// Report summarizes a single extraction run. Warnings carry the non-fatal
// conditions (no sections found, sections without a number) so callers can
// route them to whatever diagnostics channel they use.
type Report struct {
	SectionCount     int `json:"section_count"`
	NumberedSections int `json:"numbered_sections"`

	// MissingNumbers holds the 1-based document positions of sections
	// without a matching number, the same positions the warning strings
	// refer to.
	MissingNumbers []int    `json:"missing_numbers,omitempty"`
	Warnings       []string `json:"warnings,omitempty"`
}
