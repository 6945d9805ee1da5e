// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"go-naval-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the current round in roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	BossColor        color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	BossInterval     int
}

func NewWaveIndicator(x, y, bossInterval int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.UIColorBlue,
		BossColor:        config.TextAlertColor,
		OutlineColor:     color.RGBA{255, 255, 255, 255},
		OutlineThickness: 1,
		BossInterval:     bossInterval,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the round centered on X. The preparation round shows nothing.
func (i *WaveIndicator) Draw(screen *ebiten.Image, round int, face font.Face) {
	if round <= 0 {
		return
	}
	label := toRoman(round)
	clr := i.Color
	if i.BossInterval > 0 && round%i.BossInterval == 0 {
		clr = i.BossColor
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, clr)
}
