package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindUp(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(deep, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "zc.yaml")
	if err := os.WriteFile(want, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	// A directory with the same name is skipped.
	if err := os.Mkdir(filepath.Join(root, "a", "zc.yaml"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindUp(deep, "zc.yaml"); got != want {
		t.Errorf("FindUp = %q, want %q", got, want)
	}
	if got := FindUp(deep, "missing.yaml"); got != "" {
		t.Errorf("FindUp(missing) = %q, want empty", got)
	}
}

func TestReplaceExt(t *testing.T) {
	tests := []struct {
		in, ext, want string
	}{
		{"prog.z", ".zbc", "prog.zbc"},
		{"dir/prog", ".zbc", "dir/prog.zbc"},
		{"dir.v2/prog.z", ".zbc", "dir.v2/prog.zbc"},
	}
	for _, tt := range tests {
		if got := ReplaceExt(tt.in, tt.ext); got != tt.want {
			t.Errorf("ReplaceExt(%q, %q) = %q, want %q", tt.in, tt.ext, got, tt.want)
		}
	}
}

func TestGetPathInfo(t *testing.T) {
	full, dir, err := GetPathInfo("x/../prog.z")
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(full) || filepath.Base(full) != "prog.z" {
		t.Errorf("full path = %q", full)
	}
	if dir != filepath.Dir(full) {
		t.Errorf("dir = %q, want %q", dir, filepath.Dir(full))
	}
}
