package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	_ "golang.org/x/image/bmp"
	_ "image/jpeg"
	_ "image/png"
)

// decodeFrame turns an encoded frame from the backend into an RGBA
// image. Decoding is separate from capturing so the two failure modes
// stay distinguishable to callers.
func decodeFrame(frame []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// cropRGBA copies the region r of img into a fresh image based at the
// origin. The region is clamped to the source bounds first; an empty
// result yields a 0x0 image rather than an error.
func cropRGBA(img *image.RGBA, r image.Rectangle) *image.RGBA {
	r = r.Intersect(img.Bounds())
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	if r.Empty() {
		return out
	}
	rowLen := r.Dx() * 4
	for y := 0; y < r.Dy(); y++ {
		src := img.PixOffset(r.Min.X, r.Min.Y+y)
		dst := out.PixOffset(0, y)
		copy(out.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return out
}
