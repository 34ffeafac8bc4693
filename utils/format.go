package utils

import (
	"strconv"
	"time"
)

// FormatPrice renders an amount the way the storefront does: thousands
// separated by spaces, "F CFA" suffix (12500 -> "12 500 F CFA").
func FormatPrice(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, d)
	}

	formatted := string(out) + " F CFA"
	if negative {
		return "-" + formatted
	}
	return formatted
}

// FormatDate renders a timestamp as dd/mm/yyyy hh:mm.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}
