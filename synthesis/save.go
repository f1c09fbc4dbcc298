package synthesis

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

// Generated is the image produced by a Session.
type Generated struct {
	image *image.RGBA
}

func (g *Generated) Image() image.Image {
	return g.image
}

// Write encodes the generated image as a PNG to wr.
func (g *Generated) Write(ctx context.Context, wr io.Writer) error {
	return png.Encode(wr, g.image)
}

// Save writes the generated image as a PNG to path, replacing any existing file. The file
// only appears at path once it has been completely written.
func (g *Generated) Save(ctx context.Context, path string) error {

	root := filepath.Dir(path)
	key := filepath.Base(path)

	bucket_opts := &fileblob.Options{
		NoTempDir: true,
		Metadata:  fileblob.MetadataDontWrite,
	}

	bucket, err := fileblob.OpenBucket(root, bucket_opts)

	if err != nil {
		return fmt.Errorf("Failed to open bucket for %s, %w", root, err)
	}

	defer bucket.Close()

	// Cancelling the writer's context before Close discards the partial write
	write_ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	wr_opts := &blob.WriterOptions{
		ContentType: "image/png",
	}

	wr, err := bucket.NewWriter(write_ctx, key, wr_opts)

	if err != nil {
		return fmt.Errorf("Failed to create new writer for %s, %w", path, err)
	}

	err = g.Write(ctx, wr)

	if err != nil {
		cancel()
		wr.Close()
		return fmt.Errorf("Failed to encode %s, %w", path, err)
	}

	err = wr.Close()

	if err != nil {
		return fmt.Errorf("Failed to close %s after writing, %w", path, err)
	}

	return nil
}
