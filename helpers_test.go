package styletransfer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// recordingEngine is an Engine that records every session it is asked to build.
type recordingEngine struct {
	sessions  []SessionOptions
	saved     []string
	fail_on   string
	fail_save bool
}

func (e *recordingEngine) NewSession(ctx context.Context, opts *SessionOptions) (Session, error) {

	recorded := *opts
	recorded.Examples = append([]string(nil), opts.Examples...)

	e.sessions = append(e.sessions, recorded)

	if opts.Guide == e.fail_on {
		return nil, fmt.Errorf("Unreadable guide %s", opts.Guide)
	}

	return &recordingSession{engine: e}, nil
}

type recordingSession struct {
	engine *recordingEngine
}

func (s *recordingSession) Run(ctx context.Context) (Generated, error) {
	return &recordingGenerated{engine: s.engine}, nil
}

type recordingGenerated struct {
	engine *recordingEngine
}

func (g *recordingGenerated) Save(ctx context.Context, path string) error {

	if g.engine.fail_save {
		return fmt.Errorf("Read-only file system")
	}

	g.engine.saved = append(g.engine.saved, path)
	return nil
}

func newTestLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return logger, hook
}

func writeTestImage(t *testing.T, path string, w int, h int, c color.Color) {

	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0755)

	if err != nil {
		t.Fatalf("Failed to create %s, %v", filepath.Dir(path), err)
	}

	im := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.Set(x, y, c)
		}
	}

	wr, err := os.Create(path)

	if err != nil {
		t.Fatalf("Failed to create %s, %v", path, err)
	}

	defer wr.Close()

	err = png.Encode(wr, im)

	if err != nil {
		t.Fatalf("Failed to encode %s, %v", path, err)
	}
}

func touch(t *testing.T, path string) {

	t.Helper()

	err := os.MkdirAll(filepath.Dir(path), 0755)

	if err != nil {
		t.Fatalf("Failed to create %s, %v", filepath.Dir(path), err)
	}

	err = os.WriteFile(path, []byte("x"), 0644)

	if err != nil {
		t.Fatalf("Failed to write %s, %v", path, err)
	}
}
