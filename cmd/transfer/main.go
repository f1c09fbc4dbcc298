// transfer applies the style of one or more example images onto a batch of input images.
// For every input "path/name.ext" it writes "path/name.out.png".
//
//	transfer --styles 'styles/*.png' [--width 100] [--height 100] 'in/*.jpg'
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sfomuseum/go-sfomuseum-styletransfer"
	"github.com/sfomuseum/go-sfomuseum-styletransfer/synthesis"
	"github.com/sirupsen/logrus"
)

func main() {

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	err := godotenv.Load()

	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.WithField("error", err).Fatal("Failed to load .env file")
	}

	opts, err := styletransfer.ParseTransferOptions(os.Args[1:])

	if err != nil {

		if errors.Is(err, flag.ErrHelp) {
			styletransfer.PrintTransferUsage(os.Stderr)
			os.Exit(styletransfer.EXIT_SUCCESS)
		}

		logger.WithField("error", err).Error("Invalid arguments")
		styletransfer.PrintTransferUsage(os.Stderr)
		os.Exit(styletransfer.ExitCode(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := synthesis.NewEngine(&synthesis.EngineOptions{
		Logger: logger,
	})

	if err != nil {
		logger.WithField("error", err).Error("Failed to create synthesis engine")
		os.Exit(styletransfer.EXIT_INTERNAL)
	}

	err = styletransfer.Transfer(ctx, engine, logger, opts)

	if err != nil {
		logger.WithField("error", err).Error("Failed to transfer styles")
		stop()
		os.Exit(styletransfer.ExitCode(err))
	}
}
