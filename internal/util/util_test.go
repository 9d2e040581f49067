package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{0, "0 đ"},
		{999, "999 đ"},
		{1000, "1.000 đ"},
		{25490000, "25.490.000 đ"},
		{1080000, "1.080.000 đ"},
		{100, "100 đ"},
		{-1500000, "-1.500.000 đ"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatVND(tc.amount))
	}
}

func TestFormatDiscount(t *testing.T) {
	assert.Equal(t, "-15%", FormatDiscount(15))
	assert.Equal(t, "-12.5%", FormatDiscount(12.5))
	assert.Equal(t, "-0%", FormatDiscount(0))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "09/03/2024 14:30", FormatDate(ts))
}
