package validate

import (
	"testing"
	"time"
)

func TestYearInRange(t *testing.T) {
	nextYear := time.Now().Year() + 1

	tests := []struct {
		name     string
		year     int
		expected bool
	}{
		{"lower bound", 1900, true},
		{"below lower bound", 1899, false},
		{"current year", time.Now().Year(), true},
		{"next model year", nextYear, true},
		{"beyond next year", nextYear + 1, false},
		{"zero", 0, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearInRange(tt.year); got != tt.expected {
				t.Errorf("YearInRange(%d) = %v, want %v", tt.year, got, tt.expected)
			}
		})
	}
}
