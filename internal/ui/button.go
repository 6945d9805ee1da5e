// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable labelled rectangle.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Active     bool
}

func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{40, 60, 80, 230},
		HoverColor: color.RGBA{70, 100, 130, 240},
	}
}

// Contains reports whether a screen point is on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Clicked reports a left click released on the button this frame.
func (b *Button) Clicked(justReleased bool) bool {
	if !justReleased {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.BgColor
	if b.Active || b.Contains(ebiten.CursorPosition()) {
		bg = b.HoverColor
	}
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), bg, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, b.HoverColor, true)

	bounds := text.BoundString(face, b.Text)
	tx := r.Min.X + (r.Dx()-bounds.Dx())/2
	ty := r.Min.Y + (r.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, face, tx, ty, b.TextColor)
}
