// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image/color"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelHeight    = 110
	panelMargin    = 8
	animationSpeed = 10.0
	lineHeight     = 18
)

// InfoPanel slides up from the bottom edge while ships are selected and
// lists the stats of the first one.
type InfoPanel struct {
	fontFace font.Face
	currentY float64
	targetY  float64
}

func NewInfoPanel(face font.Face) *InfoPanel {
	return &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
	}
}

// Update animates the panel towards open or closed.
func (p *InfoPanel) Update(deltaTime float64, visible bool) {
	p.targetY = config.ScreenHeight
	if visible {
		p.targetY = config.ScreenHeight - panelHeight
	}
	p.currentY += (p.targetY - p.currentY) * min(1, animationSpeed*deltaTime)
}

// Describe formats the panel lines for a selection.
func Describe(towers []*component.Tower, upgradeLevel func(*component.Tower) int) []string {
	if len(towers) == 0 {
		return nil
	}
	t := towers[0]
	title := fmt.Sprintf("%s  (%s %s)", t.Name, t.Era, t.Rarity)
	if len(towers) > 1 {
		title = fmt.Sprintf("%s  +%d more selected", title, len(towers)-1)
	}
	return []string{
		title,
		fmt.Sprintf("Damage %.0f (+%d)  Fire rate %.2f/s  Range %.0f", t.BaseDamage, upgradeLevel(t), t.FireRate, t.Range),
		fmt.Sprintf("Weapon %s  Shot %s  Fusion tier %d  Crit %.0f%%", t.Weapon, t.Projectile, t.FusionTier, t.CritChance*100),
		"[W] Enhance  [E] Era up  [F] Fuse  [S] Sell",
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image, lines []string) {
	if p.currentY >= config.ScreenHeight-1 {
		return
	}
	y := float32(p.currentY)
	vector.DrawFilledRect(screen, panelMargin, y, float32(config.ScreenWidth-2*panelMargin), panelHeight, color.RGBA{10, 20, 30, 220}, true)
	for i, line := range lines {
		clr := config.TextLightColor
		if i == 0 {
			clr = config.UIColorBlue
		}
		text.Draw(screen, line, p.fontFace, panelMargin*3, int(y)+24+i*lineHeight, clr)
	}
}
