package domain_test

import (
	"testing"

	"github.com/SscSPs/kidsclub_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatDocumentNumber(t *testing.T) {
	tests := []struct {
		name   string
		family domain.DocumentFamily
		year   int
		seq    int
		want   string
	}{
		{name: "invoice padded to three", family: domain.FamilyInvoice, year: 2025, seq: 7, want: "FT-2025-007"},
		{name: "quote padded to four", family: domain.FamilyQuote, year: 2025, seq: 12, want: "PR-2025-0012"},
		{name: "ghost invoice", family: domain.FamilyGhostInvoice, year: 2024, seq: 1, want: "FT-GHOST-2024-001"},
		{name: "sequence wider than padding", family: domain.FamilyInvoice, year: 2025, seq: 1234, want: "FT-2025-1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := domain.FormatOf(tt.family)
			assert.True(t, ok)
			assert.Equal(t, tt.want, domain.FormatDocumentNumber(f.Prefix, tt.year, tt.seq, f.PadWidth))
		})
	}
}

func TestParseSequence(t *testing.T) {
	tests := []struct {
		number string
		want   int
		ok     bool
	}{
		{number: "FT-2025-012", want: 12, ok: true},
		{number: "FT-GHOST-2025-003", want: 3, ok: true},
		{number: "PR-2025-0100", want: 100, ok: true},
		{number: "FT-2025-ABC", ok: false},
		{number: "FT-2025-", ok: false},
		{number: "FT-2025-000", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			got, ok := domain.ParseSequence(tt.number)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMaxSequenceForYear(t *testing.T) {
	numbers := []string{
		"FT-2025-004",
		"FT-2024-099",
		"FT-GHOST-2025-050",
		"FT-2025-011",
		"FT-2025-bad",
	}

	assert.Equal(t, 11, domain.MaxSequenceForYear(numbers, "FT", 2025))
	assert.Equal(t, 99, domain.MaxSequenceForYear(numbers, "FT", 2024))
	assert.Equal(t, 50, domain.MaxSequenceForYear(numbers, "FT-GHOST", 2025))
	assert.Equal(t, 0, domain.MaxSequenceForYear(numbers, "FT", 2023))
}

func TestFindSequenceGaps(t *testing.T) {
	tests := []struct {
		name    string
		numbers []string
		want    []int
	}{
		{
			name:    "holes in the middle",
			numbers: []string{"FT-2025-001", "FT-2025-002", "FT-2025-004", "FT-2025-005", "FT-2025-007"},
			want:    []int{3, 6},
		},
		{
			name:    "missing first number",
			numbers: []string{"FT-2025-002", "FT-2025-003", "FT-2025-004"},
			want:    []int{1},
		},
		{
			name:    "contiguous",
			numbers: []string{"FT-2025-001", "FT-2025-002", "FT-2025-003"},
			want:    []int{},
		},
		{
			name:    "unsorted input with noise",
			numbers: []string{"FT-2025-005", "FT-2025-x", "FT-2025-001", "FT-2025-003"},
			want:    []int{2, 4},
		},
		{
			name:    "duplicates are not gaps",
			numbers: []string{"FT-2025-001", "FT-2025-002", "FT-2025-002", "FT-2025-003"},
			want:    []int{},
		},
		{
			name:    "empty",
			numbers: nil,
			want:    []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.FindSequenceGaps(tt.numbers))
		})
	}
}

func TestFindDuplicateSequences(t *testing.T) {
	numbers := []string{"FT-2025-001", "FT-2025-002", "FT-2025-002", "FT-2025-002", "FT-2025-004", "FT-2025-004"}
	assert.Equal(t, []int{2, 4}, domain.FindDuplicateSequences(numbers))
	assert.Empty(t, domain.FindDuplicateSequences([]string{"FT-2025-001"}))
}
