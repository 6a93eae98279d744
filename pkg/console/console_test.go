package console

import (
	"os"
	"testing"
)

func TestPaint(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		in      string
		want    string
	}{
		{"disabled", false, "error", "error"},
		{"enabled", true, "error", "\x1b[31merror\x1b[0m"},
		{"empty", true, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New(tc.enabled).Red(tc.in); got != tc.want {
				t.Errorf("Red(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f.Fd()) {
		t.Error("a regular file reported as a terminal")
	}
	if For(f).Enabled() {
		t.Error("palette for a regular file should be disabled")
	}
}

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if For(os.Stdout).Enabled() {
		t.Error("NO_COLOR set but palette enabled")
	}
}
