package encoders

import (
	"image"
	"image/jpeg"
	"io"
)

// JPEGEncoder writes lossy JPEG output at a fixed quality
type JPEGEncoder struct {
	quality int
}

func newJPEGEncoder(opts Options) Encoder {
	return &JPEGEncoder{quality: opts.JPEGQuality}
}

// Encode writes img to w as a JPEG
func (e *JPEGEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: e.quality})
}

// Extension returns the conventional file extension
func (*JPEGEncoder) Extension() string {
	return "jpg"
}

// MIME returns the media type
func (*JPEGEncoder) MIME() string {
	return "image/jpeg"
}

func init() {
	registeredEncoders[JPEG] = newJPEGEncoder
}
