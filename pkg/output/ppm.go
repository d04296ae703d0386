package output

import (
	"fmt"
	"image"
	"io"

	"github.com/pkg/errors"
)

// EncodePPM writes img as a binary (P6) portable pixmap with 8-bit channels.
// Alpha is dropped.
func EncodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return errors.Wrap(err, "failed to write PPM header")
	}

	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			i := 3 * (x - b.Min.X)
			row[i], row[i+1], row[i+2] = byte(r>>8), byte(g>>8), byte(bl>>8)
		}
		if _, err := w.Write(row); err != nil {
			return errors.Wrapf(err, "failed to write PPM row %d", y)
		}
	}
	return nil
}
