package vscode

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFontFiles(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	seed := map[string]string{
		filepath.Join("fonts", "ttf", "Mono-Regular.ttf"): "ttf-bytes",
		filepath.Join("fonts", "otf", "Mono-Bold.otf"):    "otf-bytes",
		filepath.Join("fonts", "OFL.txt"):                 "license",
	}
	for rel, content := range seed {
		path := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("seed write failed: %v", err)
		}
	}

	installed, err := copyFontFiles(src, dest)
	if err != nil {
		t.Fatalf("copyFontFiles failed: %v", err)
	}
	if installed != 2 {
		t.Errorf("installed = %d, want 2 (ttf and otf only)", installed)
	}
	if _, err := os.Stat(filepath.Join(dest, "Mono-Regular.ttf")); err != nil {
		t.Error("ttf file was not copied")
	}
	if _, err := os.Stat(filepath.Join(dest, "OFL.txt")); err == nil {
		t.Error("non-font file should not have been copied")
	}
}

func TestCopyFontFiles_SkipsExisting(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()

	if err := os.WriteFile(filepath.Join(src, "Mono.ttf"), []byte("new"), 0644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dest, "Mono.ttf"), []byte("user-installed"), 0644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	installed, err := copyFontFiles(src, dest)
	if err != nil {
		t.Fatalf("copyFontFiles failed: %v", err)
	}
	if installed != 0 {
		t.Errorf("installed = %d, want 0", installed)
	}

	got, err := os.ReadFile(filepath.Join(dest, "Mono.ttf"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "user-installed" {
		t.Errorf("existing font file was overwritten: %q", got)
	}
}

func TestCopyFontFiles_CreatesFontsDir(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "share", "fonts")

	if err := os.WriteFile(filepath.Join(src, "Mono.otf"), []byte("otf"), 0644); err != nil {
		t.Fatalf("seed write failed: %v", err)
	}

	installed, err := copyFontFiles(src, dest)
	if err != nil {
		t.Fatalf("copyFontFiles failed: %v", err)
	}
	if installed != 1 {
		t.Errorf("installed = %d, want 1", installed)
	}
}
