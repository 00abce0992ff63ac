package hal

import (
	"context"
	"fmt"
	"io"
	"os"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Title  string
	Width  int
	Height int

	// Out is the image written on Present. Its extension selects PNG or BMP.
	Out string

	// Log receives log lines. Nil means stdout.
	Log io.Writer
}

// RunHeadless renders one frame without opening a window. Present encodes
// the framebuffer to cfg.Out.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, render RenderFunc) error {
	if cfg.Out == "" {
		return fmt.Errorf("headless: no output path")
	}
	format, err := FormatForPath(cfg.Out)
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h, err := newHost(cfg.Title, cfg.Width, cfg.Height, cfg.Log)
	if err != nil {
		return err
	}
	h.fb.present = func(fb *hostFramebuffer) error {
		if err := writeImageFile(cfg.Out, fb.snapshot(nil), format); err != nil {
			return err
		}
		h.logger.WriteLineString(fmt.Sprintf("fieldlines: wrote %s (%dx%d %s)", cfg.Out, fb.width, fb.height, format))
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return render(h)
}
