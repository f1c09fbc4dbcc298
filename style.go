package styletransfer

import (
	"context"
	"fmt"
)

// DEFAULT_GUIDE_ALPHA balances style fidelity against structural guidance from the input.
const DEFAULT_GUIDE_ALPHA float64 = 0.8

type ApplyStyleOptions struct {
	Input      string
	Output     string
	Styles     []string
	Dimensions Dimensions
}

// ApplyStyle synthesizes a new image from opts.Styles guided by opts.Input and writes it,
// as a PNG, to opts.Output. Failing to build or run the session returns a *SynthesisError;
// failing to write the result returns a *PersistenceError.
func ApplyStyle(ctx context.Context, engine Engine, opts *ApplyStyleOptions) error {

	session_opts := &SessionOptions{
		Examples:   opts.Styles,
		Guide:      opts.Input,
		GuideAlpha: DEFAULT_GUIDE_ALPHA,
		Dimensions: opts.Dimensions,
	}

	session, err := engine.NewSession(ctx, session_opts)

	if err != nil {
		return &SynthesisError{
			Path: opts.Input,
			Err:  fmt.Errorf("Failed to create style transfer session, %w", err),
		}
	}

	generated, err := session.Run(ctx)

	if err != nil {
		return &SynthesisError{
			Path: opts.Input,
			Err:  fmt.Errorf("Failed to run style transfer session, %w", err),
		}
	}

	err = generated.Save(ctx, opts.Output)

	if err != nil {
		return &PersistenceError{
			Path: opts.Output,
			Err:  err,
		}
	}

	return nil
}
