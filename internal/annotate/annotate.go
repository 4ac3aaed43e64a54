package annotate

import (
	"image/color"

	"github.com/google/uuid"
	"github.com/smokimura/deskshot/internal/geom"
)

// Styling applied by the constructors. The editor offers no per-item
// styling yet, so these are the values every annotation starts with.
var (
	DefaultStrokeColor = color.RGBA{R: 255, A: 255}
	DefaultTextColor   = color.RGBA{A: 255}
)

const (
	DefaultStrokeWidth = 2.0
	DefaultFontSize    = 14.0
)

// Shape is the closed set of annotation kinds. The unexported marker
// method keeps the set closed to this package, so a type switch over
// Rectangle and Text handles every shape there is.
type Shape interface {
	sealedShape()
}

// Rectangle is an outlined box of the given size.
type Rectangle struct {
	Size        geom.Point
	StrokeColor color.RGBA
	StrokeWidth float64
}

// Text is a label anchored at the item's position.
type Text struct {
	Content  string
	FontSize float64
	Color    color.RGBA
}

func (Rectangle) sealedShape() {}
func (Text) sealedShape()      {}

// Item is one annotation placed on a captured image.
type Item struct {
	ID       uuid.UUID
	Position geom.Point
	Selected bool
	Shape    Shape
}

// NewRectangle creates a rectangle annotation with the default stroke.
func NewRectangle(position, size geom.Point) Item {
	return Item{
		ID:       uuid.New(),
		Position: position,
		Shape: Rectangle{
			Size:        size,
			StrokeColor: DefaultStrokeColor,
			StrokeWidth: DefaultStrokeWidth,
		},
	}
}

// NewText creates a text annotation with the default font.
func NewText(position geom.Point, content string) Item {
	return Item{
		ID:       uuid.New(),
		Position: position,
		Shape: Text{
			Content:  content,
			FontSize: DefaultFontSize,
			Color:    DefaultTextColor,
		},
	}
}

// Bounds returns the rectangle the annotation occupies. Text bounds
// are approximated from the glyph count and font size; nothing here
// measures real glyphs.
func (it Item) Bounds() geom.Rect {
	switch s := it.Shape.(type) {
	case Rectangle:
		return geom.RectFromMinSize(it.Position, s.Size.X, s.Size.Y)
	case Text:
		width := float64(len(s.Content)) * s.FontSize * 0.6
		height := s.FontSize * 1.2
		return geom.RectFromMinSize(it.Position, width, height)
	}
	return geom.Rect{}
}

// ContainsPoint reports whether p falls inside the annotation.
func (it Item) ContainsPoint(p geom.Point) bool {
	return it.Bounds().Contains(p)
}

// Tool is the editor's active interaction mode. The zero value is
// ToolSelect.
type Tool int

const (
	// ToolSelect moves and selects existing annotations
	ToolSelect Tool = iota
	// ToolRectangle draws rectangle annotations
	ToolRectangle
	// ToolText places text annotations
	ToolText
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	case ToolText:
		return "text"
	}
	return "unknown"
}
