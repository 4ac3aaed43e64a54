package capture

import "errors"

// Sentinel errors for every failure the service can report. Callers
// match them with errors.Is; wrapped messages carry the screen index or
// the platform reason.
var (
	// ErrNoDisplays means enumeration found no usable screen. It is
	// fatal at construction, since a capture service without screens
	// cannot do anything.
	ErrNoDisplays = errors.New("no screens found on the system")

	// ErrScreenNotFound means the caller used an index that is not in
	// the current registry snapshot, e.g. one kept across a display
	// reconfiguration. Re-query Screens for the current set.
	ErrScreenNotFound = errors.New("screen not found")

	// ErrCaptureFailed means the platform declined to produce an
	// image. Retrying after a delay may succeed.
	ErrCaptureFailed = errors.New("screen capture failed")

	// ErrDecodeFailed means the platform produced bytes that could not
	// be decoded. Unlike ErrCaptureFailed this is not worth a retry.
	ErrDecodeFailed = errors.New("could not decode captured frame")

	// ErrAreaOutOfBounds means the requested rectangle exceeds the
	// physical extent of its screen. The caller must clamp or rebuild
	// the rectangle.
	ErrAreaOutOfBounds = errors.New("capture area extends beyond screen boundaries")

	// ErrSelectionNotOnScreen means the center of a selection falls
	// outside every registered screen.
	ErrSelectionNotOnScreen = errors.New("selection area is not within any screen")

	// ErrNoPrimaryScreen means no registered screen is marked primary.
	// Not reachable through a normal refresh.
	ErrNoPrimaryScreen = errors.New("no primary screen found")
)
