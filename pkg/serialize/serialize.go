// Package serialize writes section records to CSV or JSON files.
package serialize

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/coolbeans/regsum/pkg/requirements"
)

// Format identifies an output serialization format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ErrUnsupportedFormat is returned when an output path's extension selects
// neither CSV nor JSON.
var ErrUnsupportedFormat = errors.New("output file must be either a json or a csv file")

// csvHeader fixes the column order, shared with the JSON field order.
var csvHeader = []string{"section_number", "original_text", "summarized_requirements"}

// DetectFormat selects the output format from path's file extension.
func DetectFormat(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// WriteCSV writes records as CSV with a header row, one row per record in
// record order. An absent section number renders as an empty field.
func WriteCSV(w io.Writer, records []requirements.SectionRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, record := range records {
		number := ""
		if record.SectionNumber != nil {
			number = strconv.Itoa(*record.SectionNumber)
		}
		row := []string{number, record.OriginalText, record.SummarizedRequirements}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteJSON writes records as a JSON array in record order, preserving the
// same three fields as the CSV columns. An absent section number renders as
// null.
func WriteJSON(w io.Writer, records []requirements.SectionRecord) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

// WriteFile serializes records to path in the format selected by the path's
// extension. The format is validated before anything is touched; a
// pre-existing file at path is then removed before writing, so a failed
// rerun never leaves a prior run's artifact behind.
func WriteFile(path string, records []requirements.SectionRecord) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing existing output file: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	switch format {
	case FormatCSV:
		err = WriteCSV(f, records)
	case FormatJSON:
		err = WriteJSON(f, records)
	}
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
