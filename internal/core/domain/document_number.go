package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DateLayout is the calendar date format used in messages and query parameters.
const DateLayout = "2006-01-02"

// DocumentFamily identifies an independent numbering sequence.
type DocumentFamily string

const (
	FamilyInvoice      DocumentFamily = "INVOICE"
	FamilyQuote        DocumentFamily = "QUOTE"
	FamilyGhostInvoice DocumentFamily = "GHOST_INVOICE"
)

// NumberFormat describes how the numbers of a family are rendered.
type NumberFormat struct {
	Prefix   string
	PadWidth int
}

var numberFormats = map[DocumentFamily]NumberFormat{
	FamilyInvoice:      {Prefix: "FT", PadWidth: 3},
	FamilyQuote:        {Prefix: "PR", PadWidth: 4},
	FamilyGhostInvoice: {Prefix: "FT-GHOST", PadWidth: 3},
}

// FormatOf returns the number format of a family.
func FormatOf(family DocumentFamily) (NumberFormat, bool) {
	f, ok := numberFormats[family]
	return f, ok
}

// IsValid reports whether the family is known.
func (f DocumentFamily) IsValid() bool {
	_, ok := numberFormats[f]
	return ok
}

// FormatDocumentNumber renders PREFIX-YEAR-SEQ with SEQ zero-padded to padWidth.
// Sequences wider than padWidth are rendered as is.
func FormatDocumentNumber(prefix string, year int, seq int, padWidth int) string {
	return fmt.Sprintf("%s-%d-%0*d", prefix, year, padWidth, seq)
}

// YearPrefix returns "PREFIX-YEAR-", the part shared by every number of a family in a year.
func YearPrefix(prefix string, year int) string {
	return fmt.Sprintf("%s-%d-", prefix, year)
}

// HasYearPrefix reports whether number belongs to the family prefix and year.
func HasYearPrefix(number string, prefix string, year int) bool {
	return strings.HasPrefix(number, YearPrefix(prefix, year))
}

// ParseSequence extracts the trailing numeric segment of a document number.
func ParseSequence(number string) (int, bool) {
	parts := strings.Split(number, "-")
	last := parts[len(parts)-1]
	seq, err := strconv.Atoi(last)
	if err != nil || seq <= 0 {
		return 0, false
	}
	return seq, true
}

// MaxSequenceForYear returns the highest sequence among numbers that start with
// prefix-year-, or 0 when none match.
func MaxSequenceForYear(numbers []string, prefix string, year int) int {
	yp := YearPrefix(prefix, year)
	highest := 0
	for _, n := range numbers {
		if !strings.HasPrefix(n, yp) {
			continue
		}
		// FT-GHOST-2025-001 also starts with "FT-" but never with "FT-2025-".
		seq, ok := ParseSequence(n)
		if ok && seq > highest {
			highest = seq
		}
	}
	return highest
}

// SequenceNumbers parses every number and returns the valid sequences sorted ascending.
func SequenceNumbers(numbers []string) []int {
	seqs := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if seq, ok := ParseSequence(n); ok {
			seqs = append(seqs, seq)
		}
	}
	sort.Ints(seqs)
	return seqs
}

// FindSequenceGaps returns, sorted ascending, every positive integer missing from the
// realized sequence: holes between consecutive observed numbers and every number
// below the smallest observed one.
func FindSequenceGaps(numbers []string) []int {
	seqs := SequenceNumbers(numbers)
	gaps := []int{}
	if len(seqs) == 0 {
		return gaps
	}
	for n := 1; n < seqs[0]; n++ {
		gaps = append(gaps, n)
	}
	for i := 0; i+1 < len(seqs); i++ {
		current, next := seqs[i], seqs[i+1]
		for n := current + 1; n < next; n++ {
			gaps = append(gaps, n)
		}
	}
	return gaps
}

// FindDuplicateSequences returns sequences that appear more than once.
func FindDuplicateSequences(numbers []string) []int {
	seqs := SequenceNumbers(numbers)
	dups := []int{}
	for i := 1; i < len(seqs); i++ {
		if seqs[i] == seqs[i-1] && (len(dups) == 0 || dups[len(dups)-1] != seqs[i]) {
			dups = append(dups, seqs[i])
		}
	}
	return dups
}
