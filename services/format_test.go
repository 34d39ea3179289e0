package services

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "$0.00"},
		{"under a thousand", 950.5, "$950.50"},
		{"thousands", 12345.6, "$12,345.60"},
		{"millions", 1234567.89, "$1,234,567.89"},
		{"exactly one thousand", 1000, "$1,000.00"},
		{"negative", -8750.25, "-$8,750.25"},
		{"rounds to 2 decimals", 99.999, "$100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(tt.amount)
			if got != tt.expect {
				t.Errorf("FormatMoney(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}
