package domain

import (
	"fmt"
	"time"
)

// GapReport is the result of auditing the invoice sequence of a year.
type GapReport struct {
	Year       int   `json:"year"`
	Checked    int   `json:"checked"`
	Highest    int   `json:"highest"`
	Missing    []int `json:"missing"`
	Duplicates []int `json:"duplicates"`
}

// HasGaps reports whether any number is missing.
func (r GapReport) HasGaps() bool {
	return len(r.Missing) > 0
}

// IsMissing reports whether seq is one of the missing numbers.
func (r GapReport) IsMissing(seq int) bool {
	for _, m := range r.Missing {
		if m == seq {
			return true
		}
	}
	return false
}

// BuildGapReport audits the invoice numbers of one year. Numbers from other years are ignored.
func BuildGapReport(year int, numbers []string) GapReport {
	format := numberFormats[FamilyInvoice]
	inYear := make([]string, 0, len(numbers))
	for _, n := range numbers {
		if HasYearPrefix(n, format.Prefix, year) {
			inYear = append(inYear, n)
		}
	}
	return GapReport{
		Year:       year,
		Checked:    len(inYear),
		Highest:    MaxSequenceForYear(inYear, format.Prefix, year),
		Missing:    FindSequenceGaps(inYear),
		Duplicates: FindDuplicateSequences(inYear),
	}
}

// ManualFillDraft is a blank invoice pre-seeded for a gap, with the issue dates
// of the invoices on either side of it.
type ManualFillDraft struct {
	Number            string     `json:"number"`
	Sequence          int        `json:"sequence"`
	PreviousIssueDate *time.Time `json:"previousIssueDate,omitempty"`
	NextIssueDate     *time.Time `json:"nextIssueDate,omitempty"`
	SuggestedDate     time.Time  `json:"suggestedDate"`
}

// DateWarning returns a warning when date falls outside the neighbour range of the draft.
func (d ManualFillDraft) DateWarning(date time.Time) *ValidationWarning {
	if d.PreviousIssueDate != nil && date.Before(*d.PreviousIssueDate) {
		return &ValidationWarning{
			Code:    WarningDateOutOfSequence,
			Message: fmt.Sprintf("issue date %s is before the previous invoice (%s)", date.Format(DateLayout), d.PreviousIssueDate.Format(DateLayout)),
		}
	}
	if d.NextIssueDate != nil && date.After(*d.NextIssueDate) {
		return &ValidationWarning{
			Code:    WarningDateOutOfSequence,
			Message: fmt.Sprintf("issue date %s is after the next invoice (%s)", date.Format(DateLayout), d.NextIssueDate.Format(DateLayout)),
		}
	}
	return nil
}
