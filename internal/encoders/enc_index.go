package encoders

import (
	"fmt"
	"sort"
	"strings"
)

type encoderFactory = func(opts Options) Encoder

// Index of supported formats, each encoder should register itself
// It's implemented this way to support conditional compilation
// of each encoder.
var registeredEncoders = make(map[StillFormat]encoderFactory, 3)

// Options tunes the lossy encoders.
type Options struct {
	JPEGQuality int
}

// DefaultOptions returns the options the agent ships with.
func DefaultOptions() Options {
	return Options{JPEGQuality: 80}
}

// EncoderService creates instances of encoders
type EncoderService struct {
	opts Options
}

// NewEncoderService creates an encoder factory. Out-of-range JPEG
// quality falls back to the default.
func NewEncoderService(opts Options) Service {
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = DefaultOptions().JPEGQuality
	}
	return &EncoderService{opts: opts}
}

// NewEncoder creates an instance of an encoder for the selected format
func (svc *EncoderService) NewEncoder(format StillFormat) (Encoder, error) {
	factory, found := registeredEncoders[format]
	if !found {
		return nil, fmt.Errorf("format not supported")
	}
	return factory(svc.opts), nil
}

// Supports returns a boolean indicating if the format is supported
func (svc *EncoderService) Supports(format StillFormat) bool {
	_, found := registeredEncoders[format]
	return found
}

// Formats returns the registered formats in stable order.
func Formats() []StillFormat {
	formats := make([]StillFormat, 0, len(registeredEncoders))
	for format := range registeredEncoders {
		formats = append(formats, format)
	}
	sort.Ints(formats)
	return formats
}

// ParseFormat maps a user-supplied format name to a StillFormat. The
// empty string selects PNG.
func ParseFormat(name string) (StillFormat, error) {
	switch strings.ToLower(name) {
	case "", "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "bmp":
		return BMP, nil
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}
