package api

import (
	"github.com/smokimura/deskshot/internal/capture"
	"github.com/smokimura/deskshot/internal/geom"
)

type screenPayload struct {
	Index     int     `json:"index"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	ScaleX    float64 `json:"scaleX"`
	ScaleY    float64 `json:"scaleY"`
	IsPrimary bool    `json:"isPrimary"`
}

type screensResponse struct {
	Generation uint64          `json:"generation"`
	Screens    []screenPayload `json:"screens"`
}

type rectPayload struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type pointPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type areaRequest struct {
	Start  pointPayload `json:"start"`
	End    pointPayload `json:"end"`
	Format string       `json:"format"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toScreenPayload(info capture.ScreenInfo) screenPayload {
	return screenPayload{
		Index:     info.Index,
		X:         info.Bounds.Min.X,
		Y:         info.Bounds.Min.Y,
		Width:     info.Bounds.Width(),
		Height:    info.Bounds.Height(),
		ScaleX:    info.DPIScaleX,
		ScaleY:    info.DPIScaleY,
		IsPrimary: info.Primary,
	}
}

func toRectPayload(r geom.Rect) rectPayload {
	return rectPayload{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Width(),
		Height: r.Height(),
	}
}
