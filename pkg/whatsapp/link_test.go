package whatsapp

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"+966 50 123 4567", "966501234567"},
		{"966501234567", "966501234567"},
		{"(050) 123-4567", "0501234567"},
		{"", ""},
		{"no digits here", ""},
		{"٠٥٠١٢٣", ""}, // Arabic-Indic digits are not ASCII digits
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Fatalf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"+966 50 123 4567", "abc123", "", "++--999"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		twice := NormalizePhone(once)
		if once != twice {
			t.Fatalf("normalization not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestLink(t *testing.T) {
	if got := Link("966501234567"); got != "https://wa.me/966501234567" {
		t.Fatalf("unexpected link: %s", got)
	}
	// empty phone degrades to the bare base URL, accepted silently
	if got := Link(""); got != "https://wa.me/" {
		t.Fatalf("unexpected degenerate link: %s", got)
	}
}

func TestPrefilledLink(t *testing.T) {
	got := PrefilledLink("966501234567", "أهلاً وسهلاً بك Ali!")
	if !strings.HasPrefix(got, "https://wa.me/966501234567?text=") {
		t.Fatalf("unexpected prefix: %s", got)
	}
	if strings.Contains(got, "+") {
		t.Fatalf("spaces must be %%20-encoded, got %s", got)
	}
	if !strings.Contains(got, "%20") {
		t.Fatalf("expected encoded spaces in %s", got)
	}
}
