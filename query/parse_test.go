package query

import "testing"

func TestLenientInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"155,000+", 155000},
		{"7,000+", 7000},
		{"2,500-3,500 per university", 25003500},
		{"no digits here", 0},
		{"", 0},
		{"42", 42},
	}

	for _, tt := range tests {
		if got := LenientInt(tt.in); got != tt.want {
			t.Errorf("LenientInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"6-7 years (including internship)", 6},
		{"5 years + 1 year internship", 5},
		{"4 years", 4},
		{"  4 years", 4},
		{"four years", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := LeadingInt(tt.in); got != tt.want {
			t.Errorf("LeadingInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
