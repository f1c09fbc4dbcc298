// contactsheet produces a PDF document with one page per input image, showing the input
// next to the ".out.png" image generated for it by the transfer tool.
package main

import (
	"context"
	"fmt"
	"os"

	aa_bucket "github.com/aaronland/gocloud-blob/bucket"
	"github.com/sfomuseum/go-flags/flagset"
	"github.com/sfomuseum/go-sfomuseum-styletransfer"
	"github.com/sirupsen/logrus"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/s3blob"
)

func main() {

	var input string
	var bucket_uri string
	var filename string

	fs := flagset.NewFlagSet("contactsheet")

	fs.StringVar(&input, "input", "", "The glob of image file/s that style transfer was applied to.")
	fs.StringVar(&bucket_uri, "bucket-uri", "cwd://", "A valid gocloud.dev/blob URI where the PDF file will be written. 'cwd://' is the current working directory.")
	fs.StringVar(&filename, "filename", "contactsheet.pdf", "The name of the PDF file to write.")

	logger := logrus.New()

	// Command line flags take precedence over environment variables

	err := flagset.SetFlagsFromEnvVars(fs, styletransfer.ENV_PREFIX)

	if err != nil {
		logger.Fatalf("Failed to assign flags from environment variables, %v", err)
	}

	flagset.Parse(fs)

	if input == "" {
		logger.Fatal("Missing -input glob")
	}

	ctx := context.Background()

	inputs, err := styletransfer.ResolveGlob(ctx, logger, input)

	if err != nil {
		logger.Fatalf("Failed to resolve inputs, %v", err)
	}

	pdf, err := styletransfer.NewContactSheet(ctx, logger, inputs)

	if err != nil {
		logger.Fatalf("Failed to create contact sheet, %v", err)
	}

	if pdf.PageCount() == 0 {
		logger.Warn("No generated images found, nothing to write")
		return
	}

	// Set up bucket

	if bucket_uri == "cwd://" {

		cwd, err := os.Getwd()

		if err != nil {
			logger.Fatalf("Failed to derive current working directory, %v", err)
		}

		bucket_uri = fmt.Sprintf("file://%s", cwd)
	}

	bucket, err := aa_bucket.OpenBucket(ctx, bucket_uri)

	if err != nil {
		logger.Fatalf("Failed to open bucket, %v", err)
	}

	defer bucket.Close()

	// Publish PDF file

	pdf_wr, err := bucket.NewWriter(ctx, filename, nil)

	if err != nil {
		logger.Fatalf("Failed to create new writer for %s, %v", filename, err)
	}

	err = pdf.OutputAndClose(pdf_wr)

	if err != nil {
		logger.Fatalf("Failed to write %s, %v", filename, err)
	}

	logger.Infof("Wrote %s", filename)
}
