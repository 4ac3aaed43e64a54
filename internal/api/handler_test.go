package api

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smokimura/deskshot/internal/capture"
	"github.com/smokimura/deskshot/internal/display"
	"github.com/smokimura/deskshot/internal/encoders"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeBackend struct {
	descs      []display.Descriptor
	captureErr error
}

func (f *fakeBackend) Descriptors() ([]display.Descriptor, error) {
	return f.descs, nil
}

func (f *fakeBackend) Capture(d display.Descriptor) ([]byte, error) {
	if f.captureErr != nil {
		return nil, f.captureErr
	}
	img := image.NewRGBA(image.Rect(0, 0, d.Bounds.Dx(), d.Bounds.Dy()))
	for y := 0; y < d.Bounds.Dy(); y++ {
		for x := 0; x < d.Bounds.Dx(); x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func desc(x, y, w, h int) display.Descriptor {
	return display.Descriptor{Bounds: image.Rect(x, y, x+w, y+h)}
}

func newTestHandler(t *testing.T, backend *fakeBackend) http.Handler {
	t.Helper()
	svc, err := capture.NewDesktopCaptureService(backend)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return MakeHandler(svc, encoders.NewEncoderService(encoders.DefaultOptions()), encoders.PNG)
}

func doRequest(handler http.Handler, method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestScreensEndpoint(t *testing.T) {
	primary := desc(1920, 0, 1280, 1024)
	primary.Primary = true
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{
		desc(0, 0, 1920, 1080),
		primary,
	}})

	w := doRequest(handler, http.MethodGet, "/screens", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	resp := screensResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Generation == 0 {
		t.Fatal("generation missing")
	}
	if len(resp.Screens) != 2 {
		t.Fatalf("want 2 screens, got %d", len(resp.Screens))
	}
	if resp.Screens[0].Index != 0 || resp.Screens[1].Index != 1 {
		t.Fatalf("screens out of order: %+v", resp.Screens)
	}
	if resp.Screens[0].IsPrimary || !resp.Screens[1].IsPrimary {
		t.Fatalf("primary flag wrong: %+v", resp.Screens)
	}
	if resp.Screens[1].X != 1920 || resp.Screens[1].Width != 1280 {
		t.Fatalf("bad bounds payload: %+v", resp.Screens[1])
	}
}

func TestDesktopEndpoint(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{
		desc(0, 0, 1920, 1080),
		desc(1920, 0, 1920, 1080),
	}})

	w := doRequest(handler, http.MethodGet, "/desktop", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	rect := rectPayload{}
	if err := json.Unmarshal(w.Body.Bytes(), &rect); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rect.Width != 3840 || rect.Height != 1080 {
		t.Fatalf("bad desktop payload: %+v", rect)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	backend := &fakeBackend{descs: []display.Descriptor{desc(0, 0, 1920, 1080)}}
	handler := newTestHandler(t, backend)

	backend.descs = append(backend.descs, desc(1920, 0, 1280, 1024))
	w := doRequest(handler, http.MethodPost, "/refresh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	resp := screensResponse{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Screens) != 2 {
		t.Fatalf("refresh missed the new screen: %+v", resp.Screens)
	}
	if resp.Generation != 2 {
		t.Fatalf("generation %d after one refresh", resp.Generation)
	}
}

func TestCaptureScreenDefaultsToPNG(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{desc(0, 0, 200, 100)}})

	w := doRequest(handler, http.MethodGet, "/screens/0/capture", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("content type %q", ct)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Fatalf("bad image size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCaptureScreenJPEG(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{desc(0, 0, 200, 100)}})

	w := doRequest(handler, http.MethodGet, "/screens/0/capture?format=jpg", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("content type %q", ct)
	}
	if _, err := jpeg.DecodeConfig(bytes.NewReader(w.Body.Bytes())); err != nil {
		t.Fatalf("not a jpeg: %v", err)
	}
}

func TestCaptureScreenConfiguredDefault(t *testing.T) {
	svc, err := capture.NewDesktopCaptureService(&fakeBackend{descs: []display.Descriptor{desc(0, 0, 200, 100)}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	handler := MakeHandler(svc, encoders.NewEncoderService(encoders.DefaultOptions()), encoders.JPEG)

	w := doRequest(handler, http.MethodGet, "/screens/0/capture", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Fatalf("configured default ignored: content type %q", ct)
	}

	// An explicit format still wins over the configured default.
	w = doRequest(handler, http.MethodGet, "/screens/0/capture?format=png", "")
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("query override lost: content type %q", ct)
	}
}

func TestCaptureScreenStatusMapping(t *testing.T) {
	backend := &fakeBackend{descs: []display.Descriptor{desc(0, 0, 200, 100)}}
	handler := newTestHandler(t, backend)

	if w := doRequest(handler, http.MethodGet, "/screens/9/capture", ""); w.Code != http.StatusNotFound {
		t.Fatalf("stale index: status %d", w.Code)
	}
	if w := doRequest(handler, http.MethodGet, "/screens/abc/capture", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric index: status %d", w.Code)
	}
	if w := doRequest(handler, http.MethodGet, "/screens/0/capture?format=gif", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("unknown format: status %d", w.Code)
	}

	backend.captureErr = errors.New("secure desktop active")
	if w := doRequest(handler, http.MethodGet, "/screens/0/capture", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("platform failure: status %d", w.Code)
	}
}

func TestThumbnailKeepsAspect(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{desc(0, 0, 400, 200)}})

	w := doRequest(handler, http.MethodGet, "/screens/0/thumbnail?width=100", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 100 || cfg.Height != 50 {
		t.Fatalf("aspect lost: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestThumbnailRejectsBadWidth(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{desc(0, 0, 400, 200)}})

	for _, target := range []string{
		"/screens/0/thumbnail?width=0",
		"/screens/0/thumbnail?width=-3",
		"/screens/0/thumbnail?width=9999",
		"/screens/0/thumbnail?width=wide",
	} {
		if w := doRequest(handler, http.MethodGet, target, ""); w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status %d", target, w.Code)
		}
	}
}

func TestCapturePrimaryEndpoint(t *testing.T) {
	primary := desc(200, 0, 300, 150)
	primary.Primary = true
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{
		desc(0, 0, 200, 100),
		primary,
	}})

	w := doRequest(handler, http.MethodGet, "/capture/primary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 300 || cfg.Height != 150 {
		t.Fatalf("captured wrong screen: %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCaptureAreaEndpoint(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{desc(0, 0, 1920, 1080)}})

	w := doRequest(handler, http.MethodPost, "/capture/area",
		`{"start": {"x": 300, "y": 200}, "end": {"x": 100, "y": 100}, "format": "png"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(w.Body.Bytes()))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 100 {
		t.Fatalf("bad crop size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestCaptureAreaStatusMapping(t *testing.T) {
	handler := newTestHandler(t, &fakeBackend{descs: []display.Descriptor{desc(0, 0, 1920, 1080)}})

	// Selection centered beyond every screen.
	w := doRequest(handler, http.MethodPost, "/capture/area",
		`{"start": {"x": 2000, "y": 100}, "end": {"x": 2400, "y": 400}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("off-screen selection: status %d", w.Code)
	}

	// Center on screen but the rectangle pokes past the left edge.
	w = doRequest(handler, http.MethodPost, "/capture/area",
		`{"start": {"x": -50, "y": 100}, "end": {"x": 300, "y": 400}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("out-of-bounds area: status %d", w.Code)
	}

	// A click without a drag selects nothing.
	w = doRequest(handler, http.MethodPost, "/capture/area",
		`{"start": {"x": 500, "y": 300}, "end": {"x": 500, "y": 300}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty selection: status %d", w.Code)
	}

	w = doRequest(handler, http.MethodPost, "/capture/area", `{not json`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: status %d", w.Code)
	}
}
