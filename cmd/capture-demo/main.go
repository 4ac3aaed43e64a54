package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"

	"github.com/kataras/golog"
	"github.com/smokimura/deskshot/internal/capture"
	"github.com/smokimura/deskshot/internal/display"
	"github.com/smokimura/deskshot/internal/encoders"
	"github.com/smokimura/deskshot/internal/geom"
)

func main() {
	outDir := flag.String("out.dir", "screenshots", "Directory the captures are written to")
	format := flag.String("out.format", "png", "Output format: png, jpg or bmp")
	flag.Parse()

	golog.SetTimeFormat("2006/01/02 15:04:05")

	stillFormat, err := encoders.ParseFormat(*format)
	if err != nil {
		golog.Fatalf("Bad format: %v", err)
	}
	encoder, err := encoders.NewEncoderService(encoders.DefaultOptions()).NewEncoder(stillFormat)
	if err != nil {
		golog.Fatalf("Can't create encoder: %v", err)
	}

	svc, err := capture.NewDesktopCaptureService(display.NewProvider())
	if err != nil {
		golog.Fatalf("Can't init capture service: %v", err)
	}

	screens := svc.Screens()
	sort.Slice(screens, func(i, j int) bool { return screens[i].Index < screens[j].Index })
	for _, screen := range screens {
		golog.Infof("Screen %d: %.0fx%.0f at (%.0f, %.0f), primary: %v",
			screen.Index,
			screen.Bounds.Width(), screen.Bounds.Height(),
			screen.Bounds.Min.X, screen.Bounds.Min.Y,
			screen.Primary)
	}
	desktop := svc.DesktopBounds()
	golog.Infof("Desktop: %.0fx%.0f", desktop.Width(), desktop.Height())

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		golog.Fatalf("Can't create %s: %v", *outDir, err)
	}

	// Full frame of the primary screen.
	if img, err := svc.CapturePrimary(); err != nil {
		golog.Errorf("Primary capture failed: %v", err)
	} else {
		save(encoder, *outDir, "primary_screen", img)
	}

	// A small region in the primary screen's top-left corner.
	if primary, err := svc.PrimaryScreen(); err == nil {
		corner := capture.NewArea(geom.RectFromMinSize(geom.Pt(0, 0), 200, 150), primary.Index)
		if img, err := svc.CaptureArea(corner); err != nil {
			golog.Errorf("Corner capture failed: %v", err)
		} else {
			save(encoder, *outDir, "area_capture", img)
		}
	}

	// One frame per screen on multi-monitor setups.
	if len(screens) > 1 {
		for _, screen := range screens {
			img, err := svc.CaptureScreen(screen.Index)
			if err != nil {
				golog.Errorf("Screen %d capture failed: %v", screen.Index, err)
				continue
			}
			save(encoder, *outDir, fmt.Sprintf("screen_%d", screen.Index), img)
		}
	}

	// A region centered on the primary screen.
	if primary, err := svc.PrimaryScreen(); err == nil {
		cx := primary.Bounds.Width()/2 - 150
		cy := primary.Bounds.Height()/2 - 100
		center := capture.NewArea(geom.RectFromMinSize(geom.Pt(cx, cy), 300, 200), primary.Index)
		if img, err := svc.CaptureArea(center); err != nil {
			golog.Errorf("Center capture failed: %v", err)
		} else {
			save(encoder, *outDir, "center_capture", img)
		}
	}

	golog.Infof("Captures saved to %s", *outDir)
}

func save(encoder encoders.Encoder, dir, name string, img image.Image) {
	filename := filepath.Join(dir, name+"."+encoder.Extension())
	f, err := os.Create(filename)
	if err != nil {
		golog.Errorf("Can't create %s: %v", filename, err)
		return
	}
	defer f.Close()
	if err := encoder.Encode(f, img); err != nil {
		golog.Errorf("Can't write %s: %v", filename, err)
		return
	}
	b := img.Bounds()
	golog.Infof("Saved %s (%dx%d)", filename, b.Dx(), b.Dy())
}
