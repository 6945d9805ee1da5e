// internal/ui/hud.go
package ui

import (
	"image/color"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUDData is the per-frame snapshot the HUD draws.
type HUDData struct {
	Round         int
	MaxWaves      int
	Timer         float64
	Phase         component.Phase
	Gold          int
	Essence       int
	Enemies       int
	EnemyLimit    int
	UsedCapacity  int
	TotalCapacity int
	RollCost      int
	DockyardCost  int
	Interest      int
	InterestOn    bool
	Speed         float64
	Era           string
	Summons       []*component.BossSummon
}

// HUD draws the top resource bar and the summon list.
type HUD struct {
	face    font.Face
	printer *message.Printer
	wave    *WaveIndicator
}

func NewHUD(face font.Face, bossInterval int) *HUD {
	return &HUD{
		face:    face,
		printer: message.NewPrinter(language.English),
		wave:    NewWaveIndicator(config.ScreenWidth/2, 40, bossInterval),
	}
}

// Lines formats the resource bar. Separated from Draw so hosts without a
// screen can print it.
func (h *HUD) Lines(d HUDData) []string {
	p := h.printer
	interest := "off"
	if d.InterestOn {
		interest = p.Sprintf("+%d", d.Interest)
	}
	return []string{
		p.Sprintf("Round %d/%d  %s  %.0fs  Era: %s", d.Round, d.MaxWaves, d.Phase, d.Timer, d.Era),
		p.Sprintf("Gold %d  Essence %d  Interest %s", d.Gold, d.Essence, interest),
		p.Sprintf("Ships %d/%d  Enemies %d/%d  Speed x%.0f", d.UsedCapacity, d.TotalCapacity, d.Enemies, d.EnemyLimit, d.Speed),
		p.Sprintf("[Q] Roll %dG  [B] Dockyard %dG", d.RollCost, d.DockyardCost),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, d HUDData) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.ScreenWidth), 72, color.RGBA{0, 0, 0, 140}, false)
	for i, line := range h.Lines(d) {
		clr := config.TextLightColor
		if i == 2 && d.EnemyLimit > 0 && d.Enemies*5 >= d.EnemyLimit*4 {
			clr = config.TextAlertColor
		}
		text.Draw(screen, line, h.face, 12, 16+i*16, clr)
	}
	h.wave.Draw(screen, d.Round, h.face)

	y := config.ScreenHeight - 16*len(d.Summons) - 8
	for _, s := range d.Summons {
		status := h.printer.Sprintf("%s Lv.%d", s.Name, s.Level)
		clr := config.TextLightColor
		if !s.Ready() {
			status = h.printer.Sprintf("%s Lv.%d (%.0fs)", s.Name, s.Level, s.Cooldown)
			clr = config.OrbitColor
		}
		text.Draw(screen, "[H] "+status, h.face, 12, y, clr)
		y += 16
	}
}
