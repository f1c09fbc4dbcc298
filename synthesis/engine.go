// Package synthesis implements guided, example-based texture synthesis: it produces a new
// image out of the pixels of one or more example images, arranged to follow the
// structure of a guide image.
package synthesis

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/sfomuseum/go-sfomuseum-styletransfer"
	"github.com/sirupsen/logrus"
)

const DEFAULT_ITERATIONS int = 4
const DEFAULT_CANDIDATES int = 8
const DEFAULT_RADIUS int = 2
const DEFAULT_SEED int64 = 1

var ErrNoExamples = errors.New("No example images")

type EngineOptions struct {
	// Number of refinement passes after the initial guide-only pass.
	Iterations int
	// Number of random candidate pixels evaluated per output pixel per pass.
	Candidates int
	// Radius of the square neighbourhood compared between output and examples.
	Radius int
	// Seed for candidate sampling. Identical seeds and inputs produce identical output.
	Seed int64
	// Maximum number of rows synthesized concurrently.
	Workers int
	Logger  *logrus.Logger
}

// Engine implements styletransfer.Engine.
type Engine struct {
	iterations int
	candidates int
	radius     int
	seed       int64
	workers    int
	logger     *logrus.Logger
}

// NewEngine returns a new Engine. Zero-valued options are replaced by their defaults.
func NewEngine(opts *EngineOptions) (*Engine, error) {

	if opts == nil {
		opts = &EngineOptions{}
	}

	if opts.Iterations < 0 || opts.Candidates < 0 || opts.Radius < 0 || opts.Workers < 0 {
		return nil, fmt.Errorf("Invalid engine options, values must not be negative")
	}

	e := &Engine{
		iterations: opts.Iterations,
		candidates: opts.Candidates,
		radius:     opts.Radius,
		seed:       opts.Seed,
		workers:    opts.Workers,
		logger:     opts.Logger,
	}

	if e.iterations == 0 {
		e.iterations = DEFAULT_ITERATIONS
	}

	if e.candidates == 0 {
		e.candidates = DEFAULT_CANDIDATES
	}

	if e.radius == 0 {
		e.radius = DEFAULT_RADIUS
	}

	if e.seed == 0 {
		e.seed = DEFAULT_SEED
	}

	if e.workers == 0 {
		e.workers = runtime.NumCPU()
	}

	if e.logger == nil {
		e.logger = logrus.StandardLogger()
	}

	return e, nil
}

// NewSession loads and resizes the guide and example images named in opts.
func (e *Engine) NewSession(ctx context.Context, opts *styletransfer.SessionOptions) (styletransfer.Session, error) {

	if len(opts.Examples) == 0 {
		return nil, ErrNoExamples
	}

	w := opts.Dimensions.Width
	h := opts.Dimensions.Height

	if w < 1 || h < 1 {
		return nil, fmt.Errorf("Invalid dimensions %dx%d", w, h)
	}

	if opts.GuideAlpha < 0.0 || opts.GuideAlpha > 1.0 {
		return nil, fmt.Errorf("Invalid guide alpha %f, must be between 0 and 1", opts.GuideAlpha)
	}

	e.logger.WithField("guide", opts.Guide).Debug("Load guide")

	guide, err := loadRaster(ctx, opts.Guide, w, h)

	if err != nil {
		return nil, fmt.Errorf("Failed to load target guide, %w", err)
	}

	examples := make([]*raster, len(opts.Examples))

	for i, path := range opts.Examples {

		e.logger.WithField("example", path).Debug("Load example")

		ex, err := loadRaster(ctx, path, w, h)

		if err != nil {
			return nil, fmt.Errorf("Failed to load example, %w", err)
		}

		examples[i] = ex
	}

	s := &Session{
		engine:   e,
		guide:    guide,
		examples: examples,
		alpha:    float32(opts.GuideAlpha),
		width:    w,
		height:   h,
	}

	return s, nil
}
