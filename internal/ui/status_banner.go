// internal/ui/status_banner.go
package ui

import (
	"image/color"

	"go-naval-defense/internal/config"
	"go-naval-defense/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// StatusBanner shows the latest status message. A newer message always
// replaces the current one; persistent messages stay until replaced.
type StatusBanner struct {
	message    string
	remaining  float64
	persistent bool
}

func NewStatusBanner() *StatusBanner {
	return &StatusBanner{}
}

func (b *StatusBanner) OnEvent(e event.Event) {
	d, ok := e.Data.(event.StatusData)
	if !ok {
		return
	}
	b.message = d.Message
	b.persistent = d.Persistent
	b.remaining = d.Duration
	if b.remaining <= 0 {
		b.remaining = config.StatusDefaultDuration
	}
}

// Update counts the banner down in wall-clock seconds.
func (b *StatusBanner) Update(deltaTime float64) {
	if b.persistent || b.message == "" {
		return
	}
	b.remaining -= deltaTime
	if b.remaining <= 0 {
		b.message = ""
	}
}

// Message returns the visible message, if any.
func (b *StatusBanner) Message() (string, bool) {
	return b.message, b.message != ""
}

// Clear hides the banner.
func (b *StatusBanner) Clear() {
	b.message, b.persistent, b.remaining = "", false, 0
}

func (b *StatusBanner) Draw(screen *ebiten.Image, face font.Face, clr color.Color) {
	msg, ok := b.Message()
	if !ok {
		return
	}
	bounds := text.BoundString(face, msg)
	x := (config.ScreenWidth - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, 96, clr)
}
