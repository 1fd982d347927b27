package termsrc

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindViaTERMINFO(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "x"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 3, 4}
	if err := os.WriteFile(filepath.Join(dir, "x", "xterm"), want, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TERMINFO", dir)
	t.Setenv("HOME", "")
	t.Setenv("TERMINFO_DIRS", "")

	got, err := Find("xterm")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFindDarwinHexLayout(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "78"), 0o755); err != nil { // hex("x") == "78"
		t.Fatal(err)
	}
	want := []byte{5, 6, 7}
	if err := os.WriteFile(filepath.Join(dir, "78", "xterm"), want, 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TERMINFO", dir)

	got, err := Find("xterm")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Find = %v, want %v", got, want)
	}
}

func TestFindNotFound(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERMINFO", dir)
	t.Setenv("HOME", "")
	t.Setenv("TERMINFO_DIRS", "")

	if _, err := Find("nonexistent-term"); err == nil {
		t.Fatal("expected an error for a missing entry")
	}
}

func TestFindEmptyTerm(t *testing.T) {
	if _, err := Find(""); err == nil {
		t.Fatal("expected an error for an empty TERM")
	}
}
