package encoders

import (
	"image"
	"image/png"
	"io"
)

// PNGEncoder writes lossless PNG output
type PNGEncoder struct{}

func newPNGEncoder(Options) Encoder {
	return &PNGEncoder{}
}

// Encode writes img to w as a PNG
func (*PNGEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// Extension returns the conventional file extension
func (*PNGEncoder) Extension() string {
	return "png"
}

// MIME returns the media type
func (*PNGEncoder) MIME() string {
	return "image/png"
}

func init() {
	registeredEncoders[PNG] = newPNGEncoder
}
