package handler

import (
	"regexp"
	"testing"
)

func TestGenerateOrderNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CMD-[0-9A-F]{8}$`)
	for i := 0; i < 100; i++ {
		n := generateOrderNumber()
		if !pattern.MatchString(n) {
			t.Fatalf("unexpected order number %q", n)
		}
	}
}

func TestGenerateOrderNumberDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		n := generateOrderNumber()
		if seen[n] {
			t.Fatalf("duplicate order number %q after %d draws", n, i)
		}
		seen[n] = true
	}
}
