package capture

import (
	"fmt"
	"sync"

	"github.com/smokimura/deskshot/internal/display"
	"github.com/smokimura/deskshot/internal/geom"
)

// ScreenInfo describes one registered display. Entries are immutable
// once published; a refresh replaces the whole set instead of mutating
// them in place.
type ScreenInfo struct {
	// Index is the screen's position in enumeration order. It is not a
	// persistent hardware identity: re-plugging monitors may renumber
	// them.
	Index int
	// Bounds is the screen's logical rectangle in desktop space.
	Bounds geom.Rect
	// DPIScaleX and DPIScaleY convert logical units to physical pixels
	// per axis. 1.0 unless the platform backend reported a scale.
	DPIScaleX float64
	DPIScaleY float64
	// Primary marks the screen the platform flags as primary, or the
	// first enumerated screen when the platform flags none.
	Primary bool
}

// defaultDesktopBounds stands in for the desktop rectangle when no
// screens are registered; callers treat an empty desktop as a display
// error elsewhere.
var defaultDesktopBounds = geom.RectFromMinSize(geom.Pt(0, 0), 1920, 1080)

// snapshot is one immutable generation of the registry: the ScreenInfo
// table plus the platform descriptors the infos were built from, both
// keyed by the same indices. Readers that obtained a snapshot are never
// affected by a concurrent refresh.
type snapshot struct {
	screens    map[int]ScreenInfo
	descs      []display.Descriptor
	generation uint64
}

func (s *snapshot) list() []ScreenInfo {
	out := make([]ScreenInfo, 0, len(s.screens))
	for _, info := range s.screens {
		out = append(out, info)
	}
	return out
}

func (s *snapshot) byIndex(index int) (ScreenInfo, bool) {
	info, ok := s.screens[index]
	return info, ok
}

func (s *snapshot) descriptor(index int) (display.Descriptor, bool) {
	if index < 0 || index >= len(s.descs) {
		return display.Descriptor{}, false
	}
	return s.descs[index], true
}

func (s *snapshot) primary() (ScreenInfo, bool) {
	for _, info := range s.screens {
		if info.Primary {
			return info, true
		}
	}
	return ScreenInfo{}, false
}

func (s *snapshot) desktopBounds() geom.Rect {
	if len(s.screens) == 0 {
		return defaultDesktopBounds
	}
	first := true
	var union geom.Rect
	for _, info := range s.screens {
		if first {
			union, first = info.Bounds, false
			continue
		}
		union = union.Union(info.Bounds)
	}
	return union
}

// at returns the first screen containing p in map iteration order.
// With overlapping screens the winner is therefore unspecified.
func (s *snapshot) at(p geom.Point) (ScreenInfo, bool) {
	for _, info := range s.screens {
		if info.Bounds.Contains(p) {
			return info, true
		}
	}
	return ScreenInfo{}, false
}

// registry owns the current snapshot and swaps it wholesale on refresh.
type registry struct {
	mu   sync.RWMutex
	snap *snapshot
}

func newRegistry() *registry {
	return &registry{snap: &snapshot{screens: map[int]ScreenInfo{}}}
}

func (r *registry) load() *snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snap
}

// rebuild enumerates displays through the backend and publishes a new
// snapshot. Descriptors with non-positive dimensions cannot hold the
// ScreenInfo size invariant and are skipped. When no usable screen
// remains the previous snapshot stays in effect and ErrNoDisplays is
// returned, so queries keep answering from the last known
// configuration.
func (r *registry) rebuild(backend display.Backend) error {
	descs, err := backend.Descriptors()
	if err != nil {
		return fmt.Errorf("enumerate displays: %w", err)
	}

	screens := make(map[int]ScreenInfo, len(descs))
	kept := make([]display.Descriptor, 0, len(descs))
	reported := -1
	for _, d := range descs {
		if d.Bounds.Dx() <= 0 || d.Bounds.Dy() <= 0 {
			continue
		}
		index := len(kept)
		info := ScreenInfo{
			Index: index,
			Bounds: geom.RectFromMinSize(
				geom.Pt(float64(d.Bounds.Min.X), float64(d.Bounds.Min.Y)),
				float64(d.Bounds.Dx()), float64(d.Bounds.Dy()),
			),
			DPIScaleX: d.ScaleX,
			DPIScaleY: d.ScaleY,
		}
		if info.DPIScaleX <= 0 {
			info.DPIScaleX = 1.0
		}
		if info.DPIScaleY <= 0 {
			info.DPIScaleY = 1.0
		}
		if d.Primary && reported < 0 {
			reported = index
		}
		screens[index] = info
		kept = append(kept, d)
	}
	if len(kept) == 0 {
		return ErrNoDisplays
	}

	primary := reported
	if primary < 0 {
		primary = 0
	}
	info := screens[primary]
	info.Primary = true
	screens[primary] = info

	r.mu.Lock()
	r.snap = &snapshot{
		screens:    screens,
		descs:      kept,
		generation: r.snap.generation + 1,
	}
	r.mu.Unlock()
	return nil
}
