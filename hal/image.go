package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ImageFormat selects the encoder used by the headless runner.
type ImageFormat uint8

const (
	ImagePNG ImageFormat = iota + 1
	ImageBMP
)

func (f ImageFormat) String() string {
	switch f {
	case ImagePNG:
		return "png"
	case ImageBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatForPath picks the image format from a file extension.
func FormatForPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return ImagePNG, nil
	case ".bmp":
		return ImageBMP, nil
	default:
		return 0, fmt.Errorf("unsupported image extension %q (want .png or .bmp)", filepath.Ext(path))
	}
}

func encodeImage(w io.Writer, img image.Image, f ImageFormat) error {
	switch f {
	case ImagePNG:
		return png.Encode(w, img)
	case ImageBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("encode: unknown image format %d", f)
	}
}

func writeImageFile(path string, img image.Image, f ImageFormat) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err := encodeImage(out, img, f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
