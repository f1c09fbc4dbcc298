package styletransfer

import (
	"context"
)

// Dimensions are the width and height, in pixels, that inputs are resized to and that
// generated images are produced at.
type Dimensions struct {
	Width  int
	Height int
}

const DEFAULT_WIDTH int = 100
const DEFAULT_HEIGHT int = 100

// DefaultDimensions returns the 100x100 dimensions used when none are specified.
func DefaultDimensions() Dimensions {
	return Dimensions{
		Width:  DEFAULT_WIDTH,
		Height: DEFAULT_HEIGHT,
	}
}

// SessionOptions configure a single synthesis session.
type SessionOptions struct {
	// Paths to the images whose texture is used to build the generated image.
	Examples []string
	// Path to the image whose structure guides where texture is placed.
	Guide string
	// Weight, in [0,1], of fidelity to the guide against fidelity to the examples.
	GuideAlpha float64
	// Dimensions that examples and guide are resized to before synthesis.
	Dimensions Dimensions
}

// Engine builds synthesis sessions. Building a session loads and validates its inputs.
type Engine interface {
	NewSession(context.Context, *SessionOptions) (Session, error)
}

// Session is a configured, one-shot unit of synthesis work.
type Session interface {
	Run(context.Context) (Generated, error)
}

// Generated is the result of running a Session.
type Generated interface {
	Save(context.Context, string) error
}
