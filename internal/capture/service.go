package capture

import (
	"image"

	"github.com/smokimura/deskshot/internal/geom"
)

// Service exposes display enumeration, desktop geometry queries and
// the capture operations built on top of them. Captured images are
// owned by the caller; the service retains nothing between calls
// beyond the registered screen set.
type Service interface {
	Refresh() error
	Generation() uint64
	Screens() []ScreenInfo
	Screen(index int) (ScreenInfo, error)
	PrimaryScreen() (ScreenInfo, error)
	DesktopBounds() geom.Rect
	ScreenAt(p geom.Point) (ScreenInfo, bool)
	CaptureScreen(index int) (*image.RGBA, error)
	CapturePrimary() (*image.RGBA, error)
	CaptureArea(area Area) (*image.RGBA, error)
	CreateCaptureArea(start, end geom.Point) (Area, error)
}
