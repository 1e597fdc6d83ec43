package presenter_test

import (
	"testing"

	"github.com/iyhunko/product-showcase/internal/presenter"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{29990, "₹29,990"},
		{99900, "₹99,900"},
		{7499, "₹7,499"},
		{0, "₹0"},
		{999, "₹999"},
		{100000, "₹1,00,000"},
		{12345678, "₹1,23,45,678"},
		{-7499, "₹-7,499"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, presenter.FormatPrice(tt.price))
		})
	}
}
