package display

import (
	"bytes"
	"image/png"

	"github.com/kbinani/screenshot"
)

// ScreenshotProvider implements the display.Backend interface on top of
// the screenshot package, which talks to GDI, CoreGraphics or the X
// server depending on the platform.
type ScreenshotProvider struct{}

// NewProvider returns the default platform backend.
func NewProvider() Backend {
	return &ScreenshotProvider{}
}

// Descriptors returns the displays the OS currently reports, in
// enumeration order. The screenshot package exposes neither a DPI scale
// nor a primary flag, so both are left zero for the registry to default.
func (*ScreenshotProvider) Descriptors() ([]Descriptor, error) {
	num := screenshot.NumActiveDisplays()
	descs := make([]Descriptor, num)
	for i := 0; i < num; i++ {
		descs[i] = Descriptor{Bounds: screenshot.GetDisplayBounds(i)}
	}
	return descs, nil
}

// Capture grabs the display's pixels and returns them PNG-encoded.
func (*ScreenshotProvider) Capture(d Descriptor) ([]byte, error) {
	img, err := screenshot.CaptureRect(d.Bounds)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
