package styletransfer

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDeriveOutputPath(t *testing.T) {

	tests := map[string]string{
		"photo.jpg":               "photo.out.png",
		"in/a.jpg":                "in/a.out.png",
		"in/photo":                "in/photo.out.png",
		"archive.tar.gz":          "archive.tar.out.png",
		"dir.with.dots/image.png": "dir.with.dots/image.out.png",
		"in/.hidden":              "in/.hidden.out.png",
		"photo.":                  "photo.out.png",
		"/abs/path/to/scan.TIFF":  "/abs/path/to/scan.out.png",
		"in/already.out.png":      "in/already.out.out.png",
	}

	for input, expected := range tests {

		input = filepath.FromSlash(input)
		expected = filepath.FromSlash(expected)

		output := DeriveOutputPath(input)

		if output != expected {
			t.Errorf("Expected %s for %s, got %s", expected, input, output)
		}

		if !strings.HasSuffix(output, ".out.png") {
			t.Errorf("Output %s for %s does not end in .out.png", output, input)
		}

		if filepath.Dir(output) != filepath.Dir(input) {
			t.Errorf("Output %s for %s is not in the same directory", output, input)
		}
	}
}
