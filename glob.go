package styletransfer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
)

// reportingFS logs the directories and entries that can not be read while a glob is
// expanded. The error is still handed back so the glob skips that entry.
type reportingFS struct {
	fs.FS
	base   string
	logger *logrus.Logger
}

func (r *reportingFS) ReadDir(name string) ([]fs.DirEntry, error) {

	entries, err := fs.ReadDir(r.FS, name)

	if err != nil {
		r.report(name, err)
	}

	return entries, err
}

func (r *reportingFS) Stat(name string) (fs.FileInfo, error) {

	info, err := fs.Stat(r.FS, name)

	if err != nil {
		r.report(name, err)
	}

	return info, err
}

func (r *reportingFS) report(name string, err error) {

	// Missing paths are not matches, not failures
	if errors.Is(err, fs.ErrNotExist) {
		return
	}

	r.logger.WithFields(logrus.Fields{
		"path":  filepath.Join(r.base, filepath.FromSlash(name)),
		"error": err,
	}).Warn("Failed to read path while expanding glob, skipping")
}

// ResolveGlob expands pattern into the list of regular files it matches. Matches that are
// directories are dropped. Directories and files that can not be read, during expansion or
// afterwards, are logged and skipped. An invalid pattern is returned as a *ConfigError.
func ResolveGlob(ctx context.Context, logger *logrus.Logger, pattern string) ([]string, error) {

	if !doublestar.ValidatePattern(filepath.ToSlash(pattern)) {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Failed to parse glob %q", pattern),
			Err:     doublestar.ErrBadPattern,
		}
	}

	matches, err := expandGlob(logger, pattern)

	if err != nil {
		return nil, &ConfigError{
			Message: fmt.Sprintf("Failed to expand glob %q", pattern),
			Err:     err,
		}
	}

	paths := make([]string, 0, len(matches))

	for _, path := range matches {

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
			// pass
		}

		info, err := os.Stat(path)

		if err != nil {
			logger.WithFields(logrus.Fields{
				"path":  path,
				"error": err,
			}).Warn("Failed to read file metadata, skipping")
			continue
		}

		if !info.Mode().IsRegular() {
			continue
		}

		paths = append(paths, path)
	}

	return paths, nil
}

func expandGlob(logger *logrus.Logger, pattern string) ([]string, error) {

	slash_pattern := filepath.ToSlash(filepath.Clean(pattern))
	base, rel := doublestar.SplitPattern(slash_pattern)

	// Patterns without any wildcards never enumerate a directory
	if rel == "" || rel == "." || rel == ".." {
		return doublestar.FilepathGlob(pattern)
	}

	fsys := &reportingFS{
		FS:     os.DirFS(base),
		base:   filepath.FromSlash(base),
		logger: logger,
	}

	matches, err := doublestar.Glob(fsys, rel)

	if err != nil {
		return nil, err
	}

	for i, m := range matches {
		matches[i] = filepath.FromSlash(path.Join(base, m))
	}

	return matches, nil
}
