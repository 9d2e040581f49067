package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_DiscountedPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		discount float64
		want     int64
	}{
		{"no discount", 1200000, 0, 1200000},
		{"ten percent", 1200000, 10, 1080000},
		// 29990000 * 0.93 lands a hair below the exact integer in
		// float64; rounding must recover 27890700.
		{"seven percent rounds up", 29990000, 7, 27890700},
		{"fractional percent", 25490000, 12.5, 22303750},
		{"full discount", 1000000, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{Price: tt.price, Discount: tt.discount}
			assert.Equal(t, tt.want, p.DiscountedPrice())
		})
	}
}

func TestCartItem_DiscountedPrice_MatchesProductRounding(t *testing.T) {
	it := &CartItem{Price: 29990000, Discount: 7, Quantity: 2}

	assert.Equal(t, int64(27890700), it.DiscountedPrice())
	assert.Equal(t, int64(55781400), it.LineTotal())
}
