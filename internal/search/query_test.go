package search

import (
	"testing"
)

func TestModeFor(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected Mode
	}{
		{
			name:     "empty term",
			term:     "",
			expected: ModeDefault,
		},
		{
			name:     "single character",
			term:     "g",
			expected: ModeSubstring,
		},
		{
			name:     "two characters",
			term:     "go",
			expected: ModeSubstring,
		},
		{
			name:     "three characters",
			term:     "rust",
			expected: ModeText,
		},
		{
			name:     "multi word",
			term:     "concurrency patterns",
			expected: ModeText,
		},
		{
			name:     "runes counted not bytes",
			term:     "éé", // 4 bytes, 2 runes
			expected: ModeSubstring,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModeFor(tt.term); got != tt.expected {
				t.Errorf("ModeFor(%q) = %v, want %v", tt.term, got, tt.expected)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		category string
		page     int
		limit    int
		expected Query
	}{
		{
			name:  "defaults applied for non-positive page and limit",
			term:  "",
			page:  0,
			limit: 0,
			expected: Query{
				OwnerID: "owner-1",
				Mode:    ModeDefault,
				Page:    DefaultPage,
				Limit:   DefaultLimit,
			},
		},
		{
			name:  "negative page coerced",
			term:  "kubernetes",
			page:  -3,
			limit: 25,
			expected: Query{
				OwnerID: "owner-1",
				Term:    "kubernetes",
				Mode:    ModeText,
				Page:    DefaultPage,
				Limit:   25,
			},
		},
		{
			name:  "term trimmed before mode selection",
			term:  "  go  ",
			page:  2,
			limit: 5,
			expected: Query{
				OwnerID: "owner-1",
				Term:    "go",
				Mode:    ModeSubstring,
				Page:    2,
				Limit:   5,
			},
		},
		{
			name:  "whitespace only term is a plain listing",
			term:  "   ",
			page:  1,
			limit: 10,
			expected: Query{
				OwnerID: "owner-1",
				Mode:    ModeDefault,
				Page:    1,
				Limit:   10,
			},
		},
		{
			name:     "category carried through",
			term:     "testing",
			category: " dev ",
			page:     1,
			limit:    10,
			expected: Query{
				OwnerID:  "owner-1",
				Category: "dev",
				Term:     "testing",
				Mode:     ModeText,
				Page:     1,
				Limit:    10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build("owner-1", tt.term, tt.category, tt.page, tt.limit)
			if got != tt.expected {
				t.Errorf("Build() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestQueryOffset(t *testing.T) {
	tests := []struct {
		page, limit, expected int
	}{
		{1, 10, 0},
		{2, 10, 10},
		{3, 25, 50},
	}

	for _, tt := range tests {
		q := Query{Page: tt.page, Limit: tt.limit}
		if got := q.Offset(); got != tt.expected {
			t.Errorf("Offset() for page=%d limit=%d = %d, want %d", tt.page, tt.limit, got, tt.expected)
		}
	}
}
