// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"

	"go-naval-defense/internal/app"
	"go-naval-defense/internal/audio"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// Host carries what every state shares: the game, the audio output and the
// fonts. Seed supplies the seed of each new run.
type Host struct {
	Game      *app.Game
	Sound     *audio.SoundManager
	Face      font.Face
	TitleFace font.Face
	Seed      func() uint32
}

// MenuState is the lobby: pick a difficulty and start a run.
type MenuState struct {
	sm       *StateMachine
	host     *Host
	buttons  []*ui.Button
	presets  []config.DifficultyPreset
	selected int
}

func NewMenuState(sm *StateMachine, host *Host) *MenuState {
	presets := host.Game.Env.Config.Difficulty
	m := &MenuState{sm: sm, host: host, presets: presets}
	const w, h = 220, 44
	x := (config.ScreenWidth - w) / 2
	for i, p := range presets {
		y := config.ScreenHeight/2 + i*(h+12)
		label := fmt.Sprintf("%d. %s (x%.0f HP)", i+1, p.Label, p.HPMul)
		m.buttons = append(m.buttons, ui.NewButton(image.Rect(x, y, x+w, y+h), label))
	}
	return m
}

func (m *MenuState) Enter() {
	m.host.Game.Reset(m.host.Seed(), m.presets[m.selected].Key)
}

func (m *MenuState) Update(deltaTime float64) {
	for i := range m.presets {
		if i < 9 && inpututil.IsKeyJustPressed(ebiten.Key1+ebiten.Key(i)) {
			m.selected = i
		}
	}
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	for i, b := range m.buttons {
		b.Active = i == m.selected
		if b.Clicked(released) {
			m.selected = i
			m.start()
			return
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.start()
	}
}

func (m *MenuState) start() {
	m.host.Sound.Play(audio.CueUIClick)
	m.host.Game.Reset(m.host.Seed(), m.presets[m.selected].Key)
	m.host.Game.Start()
	m.sm.SetState(NewGameState(m.sm, m.host))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "NAVAL DEFENSE"
	bounds := text.BoundString(m.host.TitleFace, title)
	text.Draw(screen, title, m.host.TitleFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3, config.UIColorBlue)
	hint := "Choose a difficulty, then press Enter"
	bounds = text.BoundString(m.host.Face, hint)
	text.Draw(screen, hint, m.host.Face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/3+40, config.TextLightColor)
	for _, b := range m.buttons {
		b.Draw(screen, m.host.Face)
	}
}

func (m *MenuState) Exit() {}
