package styletransfer

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sfomuseum/go-flags/flagset"
)

// ENV_PREFIX is the prefix for environment variables that supply flag values, for example
// STYLETRANSFER_STYLES or STYLETRANSFER_WIDTH. Flags on the command line take precedence.
const ENV_PREFIX string = "STYLETRANSFER"

// TransferOptions are the parsed parameters of a transfer run.
type TransferOptions struct {
	// Glob matching the style example images.
	Styles string
	// Glob matching the images to transfer the style onto.
	Input string
	// Dimensions to resize input images to.
	Dimensions Dimensions
}

func newTransferFlagSet(opts *TransferOptions) *flag.FlagSet {

	fs := flag.NewFlagSet("transfer", flag.ContinueOnError)

	styles_desc := "Sets the glob of image file/s to use as a style. Required."
	width_desc := "Sets the width to resize input images to."
	height_desc := "Sets the height to resize input images to."

	fs.StringVar(&opts.Styles, "styles", "", styles_desc)
	fs.StringVar(&opts.Styles, "s", "", styles_desc)

	fs.IntVar(&opts.Dimensions.Width, "width", DEFAULT_WIDTH, width_desc)
	fs.IntVar(&opts.Dimensions.Width, "w", DEFAULT_WIDTH, width_desc)

	fs.IntVar(&opts.Dimensions.Height, "height", DEFAULT_HEIGHT, height_desc)
	fs.IntVar(&opts.Dimensions.Height, "h", DEFAULT_HEIGHT, height_desc)

	return fs
}

// setFlagsFromEnvVars assigns flags from their matching environment variables and, unlike
// flagset.SetFlagsFromEnvVars, returns values that fail to parse as a *ConfigError.
func setFlagsFromEnvVars(fs *flag.FlagSet, prefix string) error {

	var set_err error

	fs.VisitAll(func(fl *flag.Flag) {

		if set_err != nil {
			return
		}

		env := flagset.FlagNameToEnvVar(prefix, fl.Name)
		val, ok := os.LookupEnv(env)

		if !ok {
			return
		}

		err := fs.Set(fl.Name, val)

		if err != nil {
			set_err = &ConfigError{
				Message: fmt.Sprintf("Invalid value %q for %s environment variable", val, env),
				Err:     err,
			}
		}
	})

	return set_err
}

// PrintTransferUsage writes a description of the transfer command's arguments to wr.
func PrintTransferUsage(wr io.Writer) {

	fs := newTransferFlagSet(&TransferOptions{})
	fs.SetOutput(wr)

	fmt.Fprintf(wr, "Takes all of the images matching the -styles glob and applies style transfer onto the files matching the INPUT glob.\n")
	fmt.Fprintf(wr, "Usage:\n\t transfer [options] INPUT\n")
	fs.PrintDefaults()
}

// ParseTransferOptions parses command line arguments (excluding the program name) into
// a TransferOptions. Flags may appear before or after the single positional input glob.
// Every failure is returned as a *ConfigError; a request for help wraps flag.ErrHelp.
func ParseTransferOptions(args []string) (*TransferOptions, error) {

	opts := &TransferOptions{
		Dimensions: DefaultDimensions(),
	}

	fs := newTransferFlagSet(opts)
	fs.SetOutput(io.Discard)

	err := setFlagsFromEnvVars(fs, ENV_PREFIX)

	if err != nil {
		return nil, err
	}

	positional := make([]string, 0)
	remaining := args

	for len(remaining) > 0 {

		err := fs.Parse(remaining)

		if err != nil {
			return nil, &ConfigError{Message: "Failed to parse arguments", Err: err}
		}

		rest := fs.Args()
		consumed := len(remaining) - len(rest)

		if consumed > 0 && remaining[consumed-1] == "--" {
			positional = append(positional, rest...)
			break
		}

		if len(rest) == 0 {
			break
		}

		positional = append(positional, rest[0])
		remaining = rest[1:]
	}

	if opts.Styles == "" {
		return nil, configErrorf("Missing required -styles glob")
	}

	switch len(positional) {
	case 0:
		return nil, configErrorf("Missing required INPUT glob")
	case 1:
		opts.Input = positional[0]
	default:
		return nil, configErrorf("Unexpected arguments %q, expected a single INPUT glob", positional[1:])
	}

	if opts.Dimensions.Width < 1 {
		return nil, configErrorf("Invalid width %d, must be a positive integer", opts.Dimensions.Width)
	}

	if opts.Dimensions.Height < 1 {
		return nil, configErrorf("Invalid height %d, must be a positive integer", opts.Dimensions.Height)
	}

	return opts, nil
}
