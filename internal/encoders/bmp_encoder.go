package encoders

import (
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// BMPEncoder writes uncompressed BMP output
type BMPEncoder struct{}

func newBMPEncoder(Options) Encoder {
	return &BMPEncoder{}
}

// Encode writes img to w as a BMP
func (*BMPEncoder) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

// Extension returns the conventional file extension
func (*BMPEncoder) Extension() string {
	return "bmp"
}

// MIME returns the media type
func (*BMPEncoder) MIME() string {
	return "image/bmp"
}

func init() {
	registeredEncoders[BMP] = newBMPEncoder
}
