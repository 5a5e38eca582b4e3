package requirements

import (
	"errors"
	"testing"
)

func TestNewNumberPattern_Default(t *testing.T) {
	pattern, err := NewNumberPattern(DefaultNumberPattern)
	if err != nil {
		t.Fatalf("NewNumberPattern failed: %v", err)
	}
	if pattern == nil {
		t.Fatal("Expected pattern to be non-nil")
	}
}

func TestNewNumberPattern_NoCaptureGroup(t *testing.T) {
	_, err := NewNumberPattern(`Section [0-9]{1,2}`)
	if !errors.Is(err, ErrMalformedPattern) {
		t.Fatalf("Expected ErrMalformedPattern, got %v", err)
	}
}

func TestNewNumberPattern_InvalidExpression(t *testing.T) {
	_, err := NewNumberPattern(`Section ([0-9]`)
	if err == nil {
		t.Fatal("Expected compile error for unbalanced expression")
	}
}

func TestExtract_SingleDigit(t *testing.T) {
	pattern, err := NewNumberPattern(DefaultNumberPattern)
	if err != nil {
		t.Fatalf("NewNumberPattern failed: %v", err)
	}

	number, found, err := pattern.Extract("Section 7. Records shall be retained.")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !found {
		t.Fatal("Expected a number to be found")
	}
	if number != 7 {
		t.Errorf("Expected number 7, got %d", number)
	}
}

func TestExtract_TwoDigits(t *testing.T) {
	pattern, err := NewNumberPattern(DefaultNumberPattern)
	if err != nil {
		t.Fatalf("NewNumberPattern failed: %v", err)
	}

	number, found, err := pattern.Extract("Section 42. Gadgets are exempt.")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !found {
		t.Fatal("Expected a number to be found")
	}
	if number != 42 {
		t.Errorf("Expected number 42, got %d", number)
	}
}

func TestExtract_NoMatchIsNotAnError(t *testing.T) {
	pattern, err := NewNumberPattern(DefaultNumberPattern)
	if err != nil {
		t.Fatalf("NewNumberPattern failed: %v", err)
	}

	number, found, err := pattern.Extract("Section X. Malformed numbering.")
	if err != nil {
		t.Fatalf("Expected no error on missing match, got %v", err)
	}
	if found {
		t.Errorf("Expected no number, got %d", number)
	}
}

func TestExtract_FirstMatchWins(t *testing.T) {
	pattern, err := NewNumberPattern(DefaultNumberPattern)
	if err != nil {
		t.Fatalf("NewNumberPattern failed: %v", err)
	}

	number, found, err := pattern.Extract("Section 3. Cross-reference to Section 9 applies.")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !found || number != 3 {
		t.Errorf("Expected first match 3, got %d (found=%v)", number, found)
	}
}

func TestNumberPatternFor_QuotesMarker(t *testing.T) {
	expr := NumberPatternFor("Art. 1(")
	pattern, err := NewNumberPattern(expr)
	if err != nil {
		t.Fatalf("NewNumberPattern failed for derived expression %q: %v", expr, err)
	}

	number, found, err := pattern.Extract("Art. 1( 12 applies here")
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if !found || number != 12 {
		t.Errorf("Expected number 12, got %d (found=%v)", number, found)
	}
}

func TestNumberPatternFor_DefaultMarker(t *testing.T) {
	if got := NumberPatternFor("Section"); got != DefaultNumberPattern {
		t.Errorf("NumberPatternFor(\"Section\") = %q, want %q", got, DefaultNumberPattern)
	}
}
