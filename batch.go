package styletransfer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

type BatchOptions struct {
	Engine     Engine
	Logger     *logrus.Logger
	Dimensions Dimensions
}

// Batch applies a style set to a list of input images, one at a time.
type Batch struct {
	engine     Engine
	logger     *logrus.Logger
	dimensions Dimensions
}

// NewBatch returns a new Batch. A zero width or height in opts.Dimensions is replaced
// by its default.
func NewBatch(opts *BatchOptions) (*Batch, error) {

	if opts.Engine == nil {
		return nil, fmt.Errorf("Missing synthesis engine")
	}

	logger := opts.Logger

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	dims := opts.Dimensions

	if dims.Width == 0 {
		dims.Width = DEFAULT_WIDTH
	}

	if dims.Height == 0 {
		dims.Height = DEFAULT_HEIGHT
	}

	if dims.Width < 0 || dims.Height < 0 {
		return nil, configErrorf("Invalid dimensions %dx%d", dims.Width, dims.Height)
	}

	b := &Batch{
		engine:     opts.Engine,
		logger:     logger,
		dimensions: dims,
	}

	return b, nil
}

// Dimensions returns the dimensions every image in the batch is generated at.
func (b *Batch) Dimensions() Dimensions {
	return b.dimensions
}

// Run applies styles to each of inputs, in order, writing each result next to its input.
// The first failure stops the batch; outputs already written are left in place.
func (b *Batch) Run(ctx context.Context, styles []string, inputs []string) error {

	for _, input := range inputs {

		err := ctx.Err()

		if err != nil {
			return err
		}

		output := DeriveOutputPath(input)

		b.logger.Infof("Processing %s -> %s", input, output)

		opts := &ApplyStyleOptions{
			Input:      input,
			Output:     output,
			Styles:     styles,
			Dimensions: b.dimensions,
		}

		err = ApplyStyle(ctx, b.engine, opts)

		if err != nil {
			return err
		}
	}

	return nil
}
