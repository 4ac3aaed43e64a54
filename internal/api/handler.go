package api

import (
	"bytes"
	"errors"
	"image"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"
	"github.com/smokimura/deskshot/internal/capture"
	"github.com/smokimura/deskshot/internal/encoders"
	"github.com/smokimura/deskshot/internal/geom"
)

const (
	defaultThumbnailWidth = 320
	maxThumbnailWidth     = 4096
)

func resizeImage(src *image.RGBA, width uint) *image.RGBA {
	return resize.Resize(width, 0, src, resize.Lanczos3).(*image.RGBA)
}

// MakeHandler returns an HTTP handler for the capture service. Requests
// that don't name an image format are served with the given one.
func MakeHandler(svc capture.Service, enc encoders.Service, format encoders.StillFormat) http.Handler {
	app := gin.New()
	app.Use(gin.Recovery(), requestLogger())

	app.GET("/screens", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, makeScreensResponse(svc))
	})

	app.GET("/desktop", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, toRectPayload(svc.DesktopBounds()))
	})

	app.POST("/refresh", func(ctx *gin.Context) {
		if err := svc.Refresh(); err != nil {
			abortWithError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, makeScreensResponse(svc))
	})

	app.GET("/screens/:index/capture", func(ctx *gin.Context) {
		index, ok := screenIndex(ctx)
		if !ok {
			return
		}
		encoder, ok := queryEncoder(ctx, enc, format)
		if !ok {
			return
		}
		img, err := svc.CaptureScreen(index)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		writeImage(ctx, encoder, img)
	})

	app.GET("/screens/:index/thumbnail", func(ctx *gin.Context) {
		index, ok := screenIndex(ctx)
		if !ok {
			return
		}
		width, err := strconv.Atoi(ctx.DefaultQuery("width", strconv.Itoa(defaultThumbnailWidth)))
		if err != nil || width <= 0 || width > maxThumbnailWidth {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "invalid thumbnail width"})
			return
		}
		img, err := svc.CaptureScreen(index)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		encoder, err := enc.NewEncoder(encoders.PNG)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		writeImage(ctx, encoder, resizeImage(img, uint(width)))
	})

	app.GET("/capture/primary", func(ctx *gin.Context) {
		encoder, ok := queryEncoder(ctx, enc, format)
		if !ok {
			return
		}
		img, err := svc.CapturePrimary()
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		writeImage(ctx, encoder, img)
	})

	app.POST("/capture/area", func(ctx *gin.Context) {
		req := areaRequest{}
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "malformed area request"})
			return
		}
		encoder, ok := namedEncoder(ctx, enc, req.Format, format)
		if !ok {
			return
		}
		area, err := svc.CreateCaptureArea(
			geom.Pt(req.Start.X, req.Start.Y),
			geom.Pt(req.End.X, req.End.Y),
		)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		img, err := svc.CaptureArea(area)
		if err != nil {
			abortWithError(ctx, err)
			return
		}
		// A drag narrower than a physical pixel crops to nothing.
		if img.Bounds().Empty() {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "capture area is empty"})
			return
		}
		writeImage(ctx, encoder, img)
	})

	return app
}

func makeScreensResponse(svc capture.Service) screensResponse {
	screens := svc.Screens()
	sort.Slice(screens, func(i, j int) bool { return screens[i].Index < screens[j].Index })
	payload := make([]screenPayload, len(screens))
	for i, s := range screens {
		payload[i] = toScreenPayload(s)
	}
	return screensResponse{
		Generation: svc.Generation(),
		Screens:    payload,
	}
}

func screenIndex(ctx *gin.Context) (int, bool) {
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: "screen index must be an integer"})
		return 0, false
	}
	return index, true
}

func queryEncoder(ctx *gin.Context, enc encoders.Service, fallback encoders.StillFormat) (encoders.Encoder, bool) {
	return namedEncoder(ctx, enc, ctx.Query("format"), fallback)
}

func namedEncoder(ctx *gin.Context, enc encoders.Service, name string, fallback encoders.StillFormat) (encoders.Encoder, bool) {
	format := fallback
	if name != "" {
		var err error
		format, err = encoders.ParseFormat(name)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
			return nil, false
		}
	}
	encoder, err := enc.NewEncoder(format)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}
	return encoder, true
}

func writeImage(ctx *gin.Context, encoder encoders.Encoder, img image.Image) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	ctx.Data(http.StatusOK, encoder.MIME(), buf.Bytes())
}

func abortWithError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, capture.ErrScreenNotFound):
		status = http.StatusNotFound
	case errors.Is(err, capture.ErrAreaOutOfBounds),
		errors.Is(err, capture.ErrSelectionNotOnScreen):
		status = http.StatusBadRequest
	}
	ctx.AbortWithStatusJSON(status, errorResponse{Error: err.Error()})
}
