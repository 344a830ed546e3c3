package services

import (
	"fmt"
	"strconv"
	"strings"
)

// SAVATRate is the standard South African VAT rate.
const SAVATRate = 0.15

// CalculateVAT returns the VAT portion for an exclusive amount.
func CalculateVAT(amount float64) float64 {
	return amount * SAVATRate
}

// AddVAT returns the VAT-inclusive total for an exclusive amount.
func AddVAT(amount float64) float64 {
	return amount * (1 + SAVATRate)
}

// FormatZAR formats a float64 amount as South African Rand, grouping
// thousands with spaces per en-ZA convention (e.g. R1 234 567.89).
// The result always includes exactly 2 decimal places.
func FormatZAR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "R" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts a space every 3 digits from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + " " + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + " " + result
}

// ParseAmount parses a monetary cell value, stripping currency symbols
// (R, $, €, £), commas and whitespace first. Empty or non-numeric input
// parses to 0.
func ParseAmount(val string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case 'R', '$', '€', '£', ',', ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, val)

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0
	}

	// Parse the leading numeric prefix so trailing text ("1500 per m2",
	// after whitespace stripping) does not discard the value.
	end := 0
	seenDot := false
	for i, r := range cleaned {
		if r == '-' && i == 0 {
			end = i + 1
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end = i + 1
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end = i + 1
	}

	num, err := strconv.ParseFloat(strings.TrimSuffix(cleaned[:end], "."), 64)
	if err != nil {
		return 0
	}
	return num
}
