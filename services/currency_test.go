package services

import (
	"math"
	"testing"
)

func TestFormatZAR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "R0.00"},
		{"small amount", 42.5, "R42.50"},
		{"three digits", 999, "R999.00"},
		{"four digits", 1234, "R1 234.00"},
		{"millions", 1234567.89, "R1 234 567.89"},
		{"rounding", 10.005, "R10.01"},
		{"negative", -2500, "-R2 500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatZAR(tt.amount)
			if got != tt.expect {
				t.Errorf("FormatZAR(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect float64
	}{
		{"plain number", "1500", 1500},
		{"decimal", "1500.50", 1500.50},
		{"rand symbol", "R1500", 1500},
		{"rand with spaces", "R1 234 567.89", 1234567.89},
		{"commas", "1,234,567", 1234567},
		{"dollar symbol", "$99.99", 99.99},
		{"negative", "-250", -250},
		{"trailing text", "1500 per m2", 1500},
		{"empty", "", 0},
		{"whitespace only", "   ", 0},
		{"non-numeric", "TBC", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if math.Abs(got-tt.expect) > 0.001 {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestCalculateVAT(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect float64
	}{
		{"zero", 0, 0},
		{"round amount", 1000, 150},
		{"decimal amount", 123.45, 18.5175},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateVAT(tt.amount)
			if math.Abs(got-tt.expect) > 0.0001 {
				t.Errorf("CalculateVAT(%v) = %v, want %v", tt.amount, got, tt.expect)
			}
		})
	}
}

func TestAddVAT(t *testing.T) {
	got := AddVAT(1000)
	if math.Abs(got-1150) > 0.001 {
		t.Errorf("AddVAT(1000) = %v, want 1150", got)
	}
}
