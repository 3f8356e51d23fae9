package utils

import (
	"strings"
	"testing"
)

func TestIsBlank(t *testing.T) {
	cases := map[string]bool{
		"":         true,
		"   ":      true,
		"\t\n":     true,
		"x":        false,
		"  x  ":    false,
		"admin123": false,
	}
	for input, want := range cases {
		if got := IsBlank(input); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestGenerateID(t *testing.T) {
	t.Run("prefix and digits", func(t *testing.T) {
		id := GenerateID("workspace")
		if !strings.HasPrefix(id, "workspace") {
			t.Fatalf("expected workspace prefix, got %q", id)
		}
		suffix := strings.TrimPrefix(id, "workspace")
		if len(suffix) != idDigits {
			t.Fatalf("expected %d digits, got %d", idDigits, len(suffix))
		}
		for _, c := range suffix {
			if c < '0' || c > '9' {
				t.Fatalf("expected digit-only suffix, got %q", id)
			}
		}
	})

	t.Run("role prefix stays detectable", func(t *testing.T) {
		if !strings.Contains(GenerateID("admin"), "admin") {
			t.Fatal("admin marker lost")
		}
	})

	t.Run("unique", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := GenerateID("test")
			if seen[id] {
				t.Fatalf("duplicate id %q", id)
			}
			seen[id] = true
		}
	})
}
