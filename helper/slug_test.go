package helper

import "testing"

func TestMakeSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Chez Maman 2!", "chez-maman-2"},
		{"Ça Va Bien", "ca-va-bien"},
		{"Le  Récif   Doré", "le-recif-dore"},
		{"MAQUIS--DU--PORT", "maquis-du-port"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := MakeSlug(tc.in); got != tc.want {
			t.Fatalf("MakeSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
