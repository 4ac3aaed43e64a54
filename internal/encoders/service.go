package encoders

import (
	"image"
	"io"
)

// Service creates encoder instances
type Service interface {
	NewEncoder(format StillFormat) (Encoder, error)
	Supports(format StillFormat) bool
}

// Encoder writes an image to w in its output format
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
	Extension() string
	MIME() string
}

// StillFormat can be png, jpeg or bmp
type StillFormat = int

const (
	// PNG lossless, the default format
	PNG StillFormat = iota
	// JPEG lossy, quality taken from Options
	JPEG
	// BMP uncompressed
	BMP
)
