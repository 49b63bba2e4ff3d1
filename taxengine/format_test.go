package taxengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"1234", "₹1,234"},
		{"1234.5", "₹1,234.5"},
		{"1234.50", "₹1,234.5"},
		{"999.994", "₹999.99"},
		{"999.995", "₹1,000"},
		{"85800", "₹85,800"},
		{"1925000", "₹19,25,000"},
		{"52000000", "₹5,20,00,000"},
		{"12345678901234567.89", "₹12,34,56,78,90,12,34,567.89"},
		{"-1500.25", "-₹1,500.25"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRupees(d(tt.in)))
		})
	}
}
