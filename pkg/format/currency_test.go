package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		expected string
	}{
		{"Zero", 0, "₹0"},
		{"Below a thousand", 999, "₹999"},
		{"Thousands", 250000, "₹250,000"},
		{"Millions", 1250000, "₹1,250,000"},
		{"Negative", -4500, "-₹4,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%d) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestCurrencyRange(t *testing.T) {
	if got := CurrencyRange(200000, 600000); got != "₹200,000 - ₹600,000" {
		t.Fatalf("unexpected range %q", got)
	}
}
