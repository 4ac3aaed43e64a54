package display

import "image"

// Descriptor is one physical display as the platform reports it: its
// desktop-space pixel bounds plus whatever the platform knows about DPI
// and primary status. A zero scale means unknown and the registry
// substitutes 1.0; Primary false on every descriptor means the platform
// does not flag one and the first enumerated screen is taken as primary.
type Descriptor struct {
	Bounds  image.Rectangle
	ScaleX  float64
	ScaleY  float64
	Primary bool
}

// Backend is the platform capture primitive. Descriptors enumerates the
// displays currently attached, in platform order. Capture grabs one
// display and returns an encoded still image, or an error when the
// platform declines to produce one. Any backend satisfying this
// contract is substitutable.
type Backend interface {
	Descriptors() ([]Descriptor, error)
	Capture(d Descriptor) ([]byte, error)
}
