package capture

import (
	"fmt"
	"image"

	"github.com/smokimura/deskshot/internal/display"
	"github.com/smokimura/deskshot/internal/geom"
)

// DesktopCaptureService is our implementation of the capture.Service
// on top of a display.Backend.
type DesktopCaptureService struct {
	backend display.Backend
	reg     *registry
}

// NewDesktopCaptureService enumerates the displays once and returns a
// ready-to-use service. Construction fails with ErrNoDisplays when the
// system reports no usable screen.
func NewDesktopCaptureService(backend display.Backend) (Service, error) {
	svc := &DesktopCaptureService{
		backend: backend,
		reg:     newRegistry(),
	}
	if err := svc.Refresh(); err != nil {
		return nil, err
	}
	return svc, nil
}

// Refresh re-enumerates the displays and publishes a fresh screen set.
// On failure the previously published set stays in effect.
func (svc *DesktopCaptureService) Refresh() error {
	return svc.reg.rebuild(svc.backend)
}

// Generation reports how many screen sets have been published.
func (svc *DesktopCaptureService) Generation() uint64 {
	return svc.reg.load().generation
}

// Screens returns the registered screens in unspecified order.
func (svc *DesktopCaptureService) Screens() []ScreenInfo {
	return svc.reg.load().list()
}

// Screen returns the screen registered at index.
func (svc *DesktopCaptureService) Screen(index int) (ScreenInfo, error) {
	info, ok := svc.reg.load().byIndex(index)
	if !ok {
		return ScreenInfo{}, fmt.Errorf("screen %d: %w", index, ErrScreenNotFound)
	}
	return info, nil
}

// PrimaryScreen returns the screen flagged as primary.
func (svc *DesktopCaptureService) PrimaryScreen() (ScreenInfo, error) {
	info, ok := svc.reg.load().primary()
	if !ok {
		return ScreenInfo{}, ErrNoPrimaryScreen
	}
	return info, nil
}

// DesktopBounds returns the union of every screen's bounds in desktop
// space.
func (svc *DesktopCaptureService) DesktopBounds() geom.Rect {
	return svc.reg.load().desktopBounds()
}

// ScreenAt returns the screen whose bounds contain p, if any.
func (svc *DesktopCaptureService) ScreenAt(p geom.Point) (ScreenInfo, bool) {
	return svc.reg.load().at(p)
}

// CaptureScreen grabs a full frame of the screen at index.
func (svc *DesktopCaptureService) CaptureScreen(index int) (*image.RGBA, error) {
	return svc.captureIndex(svc.reg.load(), index)
}

// CapturePrimary grabs a full frame of the primary screen.
func (svc *DesktopCaptureService) CapturePrimary() (*image.RGBA, error) {
	snap := svc.reg.load()
	info, ok := snap.primary()
	if !ok {
		return nil, ErrNoPrimaryScreen
	}
	return svc.captureIndex(snap, info.Index)
}

// CaptureArea captures the area's screen in full, checks the selection
// against that screen's physical extent and returns the cropped
// region. The physical rectangle is truncated toward zero before
// cropping, so sub-pixel selections deterministically lose their
// fractional part.
func (svc *DesktopCaptureService) CaptureArea(area Area) (*image.RGBA, error) {
	snap := svc.reg.load()
	info, ok := snap.byIndex(area.ScreenIndex)
	if !ok {
		return nil, fmt.Errorf("screen %d: %w", area.ScreenIndex, ErrScreenNotFound)
	}
	img, err := svc.captureIndex(snap, area.ScreenIndex)
	if err != nil {
		return nil, err
	}
	// The extent check uses the registry's DPI scale for the screen,
	// not the one stamped on the area; the two agree by convention but
	// the registry is authoritative.
	physical := area.PhysicalBounds()
	if physical.Min.X < 0 || physical.Min.Y < 0 ||
		physical.Max.X > info.Bounds.Max.X*info.DPIScaleX ||
		physical.Max.Y > info.Bounds.Max.Y*info.DPIScaleY {
		return nil, ErrAreaOutOfBounds
	}
	x, y := int(physical.Min.X), int(physical.Min.Y)
	w, h := int(physical.Width()), int(physical.Height())
	return cropRGBA(img, image.Rect(x, y, x+w, y+h)), nil
}

// CreateCaptureArea normalizes a drag gesture given as two desktop
// points into a capture area. The owning screen is the one under the
// rectangle's center; the returned area is relative to that screen's
// origin and carries its DPI scale.
func (svc *DesktopCaptureService) CreateCaptureArea(start, end geom.Point) (Area, error) {
	rect := geom.RectFromPoints(start, end)
	info, ok := svc.reg.load().at(rect.Center())
	if !ok {
		return Area{}, ErrSelectionNotOnScreen
	}
	local := rect.Translate(-info.Bounds.Min.X, -info.Bounds.Min.Y)
	return NewAreaWithScale(local, info.Index, info.DPIScaleX, info.DPIScaleY), nil
}

func (svc *DesktopCaptureService) captureIndex(snap *snapshot, index int) (*image.RGBA, error) {
	desc, ok := snap.descriptor(index)
	if !ok {
		return nil, fmt.Errorf("screen %d: %w", index, ErrScreenNotFound)
	}
	frame, err := svc.backend.Capture(desc)
	if err != nil {
		return nil, fmt.Errorf("screen %d: %w: %v", index, ErrCaptureFailed, err)
	}
	return decodeFrame(frame)
}
