package utils

import (
	"testing"
	"time"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0 F CFA"},
		{500, "500 F CFA"},
		{2200, "2 200 F CFA"},
		{12500, "12 500 F CFA"},
		{1234567, "1 234 567 F CFA"},
		{-1500, "-1 500 F CFA"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.in); got != tc.want {
			t.Fatalf("FormatPrice(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07/03/2025 09:05" {
		t.Fatalf("FormatDate = %q", got)
	}
}
