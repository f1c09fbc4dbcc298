package synthesis

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGeneratedSave(t *testing.T) {

	ctx := context.Background()
	root := t.TempDir()

	path := filepath.Join(root, "photo.out.png")

	err := os.WriteFile(path, []byte("previous run"), 0644)

	if err != nil {
		t.Fatalf("Failed to write %s, %v", path, err)
	}

	g := &Generated{
		image: solid(7, 5, color.RGBA{10, 20, 30, 255}),
	}

	err = g.Save(ctx, path)

	if err != nil {
		t.Fatalf("Failed to save, %v", err)
	}

	r, err := os.Open(path)

	if err != nil {
		t.Fatalf("Failed to open %s, %v", path, err)
	}

	defer r.Close()

	im, err := png.Decode(r)

	if err != nil {
		t.Fatalf("Failed to decode %s, %v", path, err)
	}

	if im.Bounds() != image.Rect(0, 0, 7, 5) {
		t.Fatalf("Unexpected bounds %v", im.Bounds())
	}

	entries, err := os.ReadDir(root)

	if err != nil {
		t.Fatalf("Failed to read %s, %v", root, err)
	}

	if len(entries) != 1 {
		t.Fatalf("Expected only the output file in %s, got %d entries", root, len(entries))
	}
}

func TestGeneratedSaveMissingDirectory(t *testing.T) {

	ctx := context.Background()

	g := &Generated{
		image: solid(2, 2, color.White),
	}

	path := filepath.Join(t.TempDir(), "missing", "photo.out.png")

	err := g.Save(ctx, path)

	if err == nil {
		t.Fatalf("Expected saving into a missing directory to fail")
	}
}

func TestGeneratedSaveBackslashName(t *testing.T) {

	if runtime.GOOS == "windows" {
		t.Skip("Backslash is a path separator on windows")
	}

	ctx := context.Background()
	root := t.TempDir()

	path := filepath.Join(root, `a\b.out.png`)

	g := &Generated{
		image: solid(3, 3, color.Black),
	}

	err := g.Save(ctx, path)

	if err != nil {
		t.Fatalf("Failed to save, %v", err)
	}

	info, err := os.Stat(path)

	if err != nil {
		t.Fatalf("Expected %s to exist, %v", path, err)
	}

	if !info.Mode().IsRegular() {
		t.Fatalf("Expected %s to be a regular file", path)
	}

	entries, err := os.ReadDir(root)

	if err != nil {
		t.Fatalf("Failed to read %s, %v", root, err)
	}

	if len(entries) != 1 || entries[0].Name() != `a\b.out.png` {
		t.Fatalf("Expected only a\\b.out.png in %s, got %v", root, entries)
	}
}
