package styletransfer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aaronland/go-image/resize"
	"github.com/fogleman/gg"
	"github.com/go-pdf/fpdf"
	"github.com/sirupsen/logrus"
)

// SHEET_PANEL_SIZE is the maximum dimension, in pixels, of each image on a contact sheet.
const SHEET_PANEL_SIZE int = 600

const SHEET_DPI float64 = 150.0

type AddSheetOptions struct {
	// Path of the image a style was applied to.
	Input string
	// Path of the generated image.
	Output string
}

// NewContactSheet returns a PDF document with one page for each of inputs whose derived
// output exists. Inputs without an output, and inputs that are themselves outputs, are
// skipped.
func NewContactSheet(ctx context.Context, logger *logrus.Logger, inputs []string) (*fpdf.Fpdf, error) {

	pdf := fpdf.New("L", "in", "Letter", "")

	for _, input := range inputs {

		if strings.HasSuffix(input, "."+OUTPUT_EXTENSION) {
			continue
		}

		output := DeriveOutputPath(input)

		_, err := os.Stat(output)

		if err != nil {

			if errors.Is(err, fs.ErrNotExist) {
				logger.WithField("input", input).Info("No output for input, skipping")
				continue
			}

			return nil, fmt.Errorf("Failed to stat %s, %w", output, err)
		}

		sheet_opts := &AddSheetOptions{
			Input:  input,
			Output: output,
		}

		err = AddSheet(ctx, pdf, sheet_opts)

		if err != nil {
			return nil, fmt.Errorf("Failed to add sheet for %s, %w", input, err)
		}

		logger.Infof("Add sheet %s -> %s", input, output)
	}

	return pdf, nil
}

// AddSheet adds a page to pdf showing opts.Input next to opts.Output.
func AddSheet(ctx context.Context, pdf *fpdf.Fpdf, opts *AddSheetOptions) error {

	input_im, err := ReadImage(ctx, opts.Input)

	if err != nil {
		return fmt.Errorf("Failed to read input image, %w", err)
	}

	output_im, err := ReadImage(ctx, opts.Output)

	if err != nil {
		return fmt.Errorf("Failed to read output image, %w", err)
	}

	input_label := filepath.Base(opts.Input)
	output_label := filepath.Base(opts.Output)

	composite, err := ComposePair(ctx, input_im, output_im, input_label, output_label)

	if err != nil {
		return fmt.Errorf("Failed to compose images, %w", err)
	}

	margin := 0.5
	footer_h := 0.5

	page_w := 11.0
	page_h := 8.5

	orientation := Orientation(composite)

	if orientation == ORIENTATION_PORTRAIT {
		page_w = 8.5
		page_h = 11.0
	}

	max_w := page_w - (margin * 2)
	max_h := page_h - (margin * 2) - footer_h

	dims := composite.Bounds()
	im_w := float64(dims.Dx()) / SHEET_DPI
	im_h := float64(dims.Dy()) / SHEET_DPI

	// Scale image if necessary

	scale := min(1.0, max_w/im_w, max_h/im_h)

	im_w = im_w * scale
	im_h = im_h * scale

	im_x := margin + ((max_w - im_w) / 2.0)
	im_y := margin

	var buf bytes.Buffer

	err = png.Encode(&buf, composite)

	if err != nil {
		return fmt.Errorf("Failed to encode composite image, %w", err)
	}

	pdf.SetFont("Helvetica", "", 8)

	pdf.AddPageFormat(orientation, pdf.GetPageSizeStr("Letter"))

	im_opts := fpdf.ImageOptions{
		ImageType: "png",
		ReadDpi:   false,
	}

	info := pdf.RegisterImageOptionsReader(opts.Output, im_opts, &buf)

	if info == nil {
		return fmt.Errorf("Failed to register image, %w", pdf.Error())
	}

	info.SetDpi(SHEET_DPI)

	pdf.ImageOptions(opts.Output, im_x, im_y, im_w, im_h, false, im_opts, 0, "")

	// Metadata

	out_dims := output_im.Bounds()

	blurb := fmt.Sprintf("%s -> %s\n%dx%d", opts.Input, opts.Output, out_dims.Dx(), out_dims.Dy())

	pdf.SetXY(margin, im_y+im_h+0.25)
	pdf.MultiCell(max_w, 0.15, blurb, "", "", false)

	return pdf.Error()
}

// ComposePair draws input and output, each bounded to SHEET_PANEL_SIZE and captioned,
// onto a single white image. Landscape inputs are stacked vertically, everything else is
// placed side by side.
func ComposePair(ctx context.Context, input image.Image, output image.Image, input_label string, output_label string) (image.Image, error) {

	input_panel, err := resize.ResizeImage(ctx, input, SHEET_PANEL_SIZE)

	if err != nil {
		return nil, fmt.Errorf("Failed to resize input image, %w", err)
	}

	output_panel, err := resize.ResizeImage(ctx, output, SHEET_PANEL_SIZE)

	if err != nil {
		return nil, fmt.Errorf("Failed to resize output image, %w", err)
	}

	cell := SHEET_PANEL_SIZE
	gap := 20
	label_h := 24

	vertical := Orientation(input) == ORIENTATION_LANDSCAPE

	w := (cell * 2) + (gap * 3)
	h := cell + label_h + (gap * 2)

	if vertical {
		w = cell + (gap * 2)
		h = ((cell + label_h) * 2) + (gap * 3)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	draw_panel := func(panel image.Image, label string, cell_x int, cell_y int) {

		b := panel.Bounds()

		x := cell_x + ((cell - b.Dx()) / 2)
		y := cell_y + ((cell - b.Dy()) / 2)

		dc.DrawImage(panel, x, y)

		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(label, float64(cell_x)+float64(cell)/2.0, float64(cell_y+cell)+float64(label_h)/2.0, 0.5, 0.5)
	}

	draw_panel(input_panel, input_label, gap, gap)

	if vertical {
		draw_panel(output_panel, output_label, gap, (gap*2)+cell+label_h)
	} else {
		draw_panel(output_panel, output_label, (gap*2)+cell, gap)
	}

	return dc.Image(), nil
}
