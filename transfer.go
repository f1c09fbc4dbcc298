package styletransfer

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Transfer resolves the style and input globs in opts and applies the resolved styles to
// every resolved input using engine.
func Transfer(ctx context.Context, engine Engine, logger *logrus.Logger, opts *TransferOptions) error {

	batch, err := NewBatch(&BatchOptions{
		Engine:     engine,
		Logger:     logger,
		Dimensions: opts.Dimensions,
	})

	if err != nil {
		return fmt.Errorf("Failed to create batch, %w", err)
	}

	styles, err := ResolveGlob(ctx, logger, opts.Styles)

	if err != nil {
		return fmt.Errorf("Failed to resolve styles, %w", err)
	}

	logger.Infof("List of styles being applied: %q", styles)

	inputs, err := ResolveGlob(ctx, logger, opts.Input)

	if err != nil {
		return fmt.Errorf("Failed to resolve inputs, %w", err)
	}

	return batch.Run(ctx, styles, inputs)
}
