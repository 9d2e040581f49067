// Package util holds small display helpers shared by both web apps.
package util

import (
	"strconv"
	"strings"
	"time"
)

// FormatVND formats an amount of Vietnamese đồng with dot thousand
// separators and the đ sign, e.g. 1080000 -> "1.080.000 đ".
func FormatVND(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}

	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}

	out := b.String() + " đ"
	if negative {
		out = "-" + out
	}

	return out
}

// FormatDiscount renders a percentage badge like "-15%". Whole percentages
// drop the fraction.
func FormatDiscount(percent float64) string {
	if percent == float64(int64(percent)) {
		return "-" + strconv.FormatInt(int64(percent), 10) + "%"
	}

	return "-" + strconv.FormatFloat(percent, 'f', 1, 64) + "%"
}

// FormatDate renders timestamps the way the order pages show them.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
