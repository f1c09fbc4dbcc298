package styletransfer

import (
	"path/filepath"
	"strings"
)

const OUTPUT_EXTENSION string = "out.png"

// DeriveOutputPath returns path with its extension replaced by OUTPUT_EXTENSION, in the
// same directory. A path without an extension has OUTPUT_EXTENSION appended; a leading
// dot (".hidden") is part of the name, not an extension.
func DeriveOutputPath(path string) string {

	dir, fname := filepath.Split(path)

	stem := fname
	idx := strings.LastIndex(fname, ".")

	if idx > 0 {
		stem = fname[:idx]
	}

	return dir + stem + "." + OUTPUT_EXTENSION
}
