// Package output writes rendered images and meshes to disk
package output

import (
	"bufio"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// JPEGQuality is the quality used for .jpg output
const JPEGQuality = 90

type encoder func(w io.Writer, img image.Image) error

var encoders = map[string]encoder{
	".png":  png.Encode,
	".jpg":  encodeJPEG,
	".jpeg": encodeJPEG,
	".ppm":  EncodePPM,
	".bmp":  bmp.Encode,
	".tif":  encodeTIFF,
	".tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// Formats returns the supported file extensions
func Formats() []string {
	return []string{".png", ".jpg", ".jpeg", ".ppm", ".bmp", ".tif", ".tiff"}
}

func encoderFor(path string) (encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	enc, ok := encoders[ext]
	if !ok {
		return nil, errors.Errorf("unsupported image format %q for %s (supported: %s)",
			ext, path, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// CheckFormat reports whether path has an extension SaveImage can write
func CheckFormat(path string) error {
	_, err := encoderFor(path)
	return err
}

// SaveImage encodes img to path, choosing the format from the extension.
// Missing parent directories are created.
func SaveImage(path string, img image.Image) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "failed to create output directory")
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create image file")
	}
	w := bufio.NewWriter(file)
	if err := enc(w, img); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to encode %s", path)
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return errors.Wrapf(file.Close(), "failed to close %s", path)
}
