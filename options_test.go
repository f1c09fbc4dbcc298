package styletransfer

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTransferOptions(t *testing.T) {

	tests := []struct {
		name     string
		args     []string
		expected TransferOptions
	}{
		{
			name: "defaults",
			args: []string{"--styles", "styles/*.png", "in/*.jpg"},
			expected: TransferOptions{
				Styles:     "styles/*.png",
				Input:      "in/*.jpg",
				Dimensions: Dimensions{Width: 100, Height: 100},
			},
		},
		{
			name: "explicit defaults",
			args: []string{"--styles", "styles/*.png", "--width", "100", "--height", "100", "in/*.jpg"},
			expected: TransferOptions{
				Styles:     "styles/*.png",
				Input:      "in/*.jpg",
				Dimensions: Dimensions{Width: 100, Height: 100},
			},
		},
		{
			name: "short flags",
			args: []string{"-s", "styles/*.png", "-w", "64", "-h", "48", "in/*.jpg"},
			expected: TransferOptions{
				Styles:     "styles/*.png",
				Input:      "in/*.jpg",
				Dimensions: Dimensions{Width: 64, Height: 48},
			},
		},
		{
			name: "flags after positional",
			args: []string{"in/*.jpg", "-s", "styles/*.png", "--width=320"},
			expected: TransferOptions{
				Styles:     "styles/*.png",
				Input:      "in/*.jpg",
				Dimensions: Dimensions{Width: 320, Height: 100},
			},
		},
		{
			name: "positional after terminator",
			args: []string{"-s", "styles/*.png", "--", "-odd-name.jpg"},
			expected: TransferOptions{
				Styles:     "styles/*.png",
				Input:      "-odd-name.jpg",
				Dimensions: Dimensions{Width: 100, Height: 100},
			},
		},
	}

	for _, tt := range tests {

		t.Run(tt.name, func(t *testing.T) {

			opts, err := ParseTransferOptions(tt.args)

			if err != nil {
				t.Fatalf("Failed to parse %v, %v", tt.args, err)
			}

			if diff := cmp.Diff(tt.expected, *opts); diff != "" {
				t.Fatalf("Unexpected options (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTransferOptionsInvalid(t *testing.T) {

	tests := map[string][]string{
		"non-integer width":  {"--styles", "s/*.png", "--width", "abc", "in/*.jpg"},
		"non-integer height": {"-s", "s/*.png", "-h", "1.5", "in/*.jpg"},
		"zero width":         {"-s", "s/*.png", "-w", "0", "in/*.jpg"},
		"negative height":    {"-s", "s/*.png", "-h", "-10", "in/*.jpg"},
		"missing styles":     {"in/*.jpg"},
		"missing input":      {"-s", "s/*.png"},
		"extra positionals":  {"-s", "s/*.png", "a.jpg", "b.jpg"},
		"unknown flag":       {"-s", "s/*.png", "--depth", "3", "in/*.jpg"},
	}

	for name, args := range tests {

		t.Run(name, func(t *testing.T) {

			_, err := ParseTransferOptions(args)

			if err == nil {
				t.Fatalf("Expected %v to fail", args)
			}

			var config_err *ConfigError

			if !errors.As(err, &config_err) {
				t.Fatalf("Expected a ConfigError, got %T (%v)", err, err)
			}

			if ExitCode(err) != EXIT_CONFIGURATION {
				t.Fatalf("Expected exit code %d, got %d", EXIT_CONFIGURATION, ExitCode(err))
			}
		})
	}
}

func TestParseTransferOptionsHelp(t *testing.T) {

	_, err := ParseTransferOptions([]string{"-help"})

	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("Expected flag.ErrHelp, got %v", err)
	}
}

func TestParseTransferOptionsEnvironment(t *testing.T) {

	t.Setenv("STYLETRANSFER_STYLES", "env/*.png")
	t.Setenv("STYLETRANSFER_WIDTH", "250")

	opts, err := ParseTransferOptions([]string{"-w", "80", "in/*.jpg"})

	if err != nil {
		t.Fatalf("Failed to parse arguments, %v", err)
	}

	expected := TransferOptions{
		Styles:     "env/*.png",
		Input:      "in/*.jpg",
		Dimensions: Dimensions{Width: 80, Height: 100},
	}

	if diff := cmp.Diff(expected, *opts); diff != "" {
		t.Fatalf("Unexpected options (-want +got):\n%s", diff)
	}
}

func TestParseTransferOptionsInvalidEnvironment(t *testing.T) {

	t.Setenv("STYLETRANSFER_WIDTH", "abc")

	_, err := ParseTransferOptions([]string{"-s", "styles/*.png", "in/*.jpg"})

	if err == nil {
		t.Fatalf("Expected a non-numeric STYLETRANSFER_WIDTH to fail")
	}

	var config_err *ConfigError

	if !errors.As(err, &config_err) {
		t.Fatalf("Expected a ConfigError, got %T (%v)", err, err)
	}

	if !strings.Contains(err.Error(), "STYLETRANSFER_WIDTH") {
		t.Fatalf("Expected the error to name the environment variable, got %v", err)
	}
}
