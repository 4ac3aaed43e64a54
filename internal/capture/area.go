package capture

import "github.com/smokimura/deskshot/internal/geom"

// Area is a user selection resolved onto a single screen. Bounds is in
// logical units relative to the owning screen's top-left corner, and
// the DPI factors are stamped from that screen when the area is
// created, so the area keeps producing the same physical crop even if
// the registry is refreshed afterwards.
type Area struct {
	Bounds      geom.Rect
	ScreenIndex int
	DPIScaleX   float64
	DPIScaleY   float64
}

// NewArea builds an area with both DPI factors set to 1.0.
func NewArea(bounds geom.Rect, screenIndex int) Area {
	return NewAreaWithScale(bounds, screenIndex, 1.0, 1.0)
}

// NewAreaWithScale builds an area carrying explicit DPI factors.
func NewAreaWithScale(bounds geom.Rect, screenIndex int, scaleX, scaleY float64) Area {
	return Area{
		Bounds:      bounds,
		ScreenIndex: screenIndex,
		DPIScaleX:   scaleX,
		DPIScaleY:   scaleY,
	}
}

// DefaultArea is a 100x100 selection at the origin of screen 0.
func DefaultArea() Area {
	return NewArea(geom.RectFromMinSize(geom.Pt(0, 0), 100, 100), 0)
}

// PhysicalBounds converts the logical selection to physical pixels by
// scaling each axis by the area's DPI factor.
func (a Area) PhysicalBounds() geom.Rect {
	return a.Bounds.Scale(a.DPIScaleX, a.DPIScaleY)
}
