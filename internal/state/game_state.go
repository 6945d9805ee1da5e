// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"go-naval-defense/internal/audio"
	"go-naval-defense/internal/autopilot"
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/event"
	"go-naval-defense/internal/ui"
	"go-naval-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const doubleClickWindow = 300 * time.Millisecond

// purchaseKeys maps the number row to rarities.
var purchaseKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// GameState turns input into commands and draws the running game.
type GameState struct {
	sm        *StateMachine
	host      *Host
	renderer  *render.SceneRenderer
	hud       *ui.HUD
	banner    *ui.StatusBanner
	infoPanel *ui.InfoPanel
	pilot     *autopilot.Pilot
	autoplay  bool

	lastClickTime time.Time
	summonIndex   int
}

func NewGameState(sm *StateMachine, host *Host) *GameState {
	g := host.Game
	palette := render.Palette{
		Background: config.BackgroundColor,
		Orbit:      config.OrbitColor,
		InnerRing:  config.InnerRingColor,
		Grid:       render.DarkenColor(config.InnerRingColor),
		Enemy:      config.EnemyColor,
		Boss:       config.BossColor,
		Projectile: config.ProjectileColor,
		Selection:  config.SelectionColor,
		Text:       config.TextLightColor,
		Rarity:     config.RarityColors,
	}
	camera := render.FitCamera(g.Env.World.Width, g.Env.World.Height, config.ScreenWidth, config.ScreenHeight)
	gs := &GameState{
		sm:        sm,
		host:      host,
		renderer:  render.NewSceneRenderer(g.Env.World, camera, palette, host.Face),
		hud:       ui.NewHUD(host.Face, g.Env.Config.Wave.BossInterval),
		banner:    ui.NewStatusBanner(),
		infoPanel: ui.NewInfoPanel(host.Face),
		pilot:     autopilot.New(g),
	}
	gs.renderer.RenderMapImage()
	g.Events.Subscribe(event.Status, gs.banner)
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	game := g.host.Game
	g.banner.Update(deltaTime)
	g.infoPanel.Update(deltaTime, len(game.ECS.Selection) > 0)

	if !game.ECS.Session.Running {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.leave()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.handleKeys()
	g.handleMouse()
	if g.autoplay {
		g.pilot.Step()
	}
	game.Update(deltaTime)
}

func (g *GameState) handleKeys() {
	game := g.host.Game
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		n := 1
		if shift {
			n = 5
		}
		for i := 0; i < n; i++ {
			g.enqueue(component.Command{Type: component.CommandRoll})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.enqueue(component.Command{Type: component.CommandUpgrade})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.enqueue(component.Command{Type: component.CommandEra})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.enqueue(component.Command{Type: component.CommandFusion})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.enqueue(component.Command{Type: component.CommandDockyard})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.enqueue(component.Command{Type: component.CommandSell})
	}
	for i, key := range purchaseKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(defs.RarityOrder) {
			g.enqueue(component.Command{Type: component.CommandPurchase, Rarity: defs.RarityOrder[i]})
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.summonNext()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := game.Skip(); err == nil {
			g.host.Sound.Play(audio.CueUIClick)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		game.ToggleSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		game.SetInterest(!game.ECS.Session.InterestEnabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.autoplay = !g.autoplay
	}
}

// summonNext summons the next unlocked boss in the table, cycling through it.
func (g *GameState) summonNext() {
	summons := g.host.Game.ECS.Summons
	if len(summons) == 0 {
		g.enqueue(component.Command{Type: component.CommandSummonBoss})
		return
	}
	for i := 0; i < len(summons); i++ {
		s := summons[(g.summonIndex+i)%len(summons)]
		if s.Ready() {
			g.summonIndex = (g.summonIndex + i + 1) % len(summons)
			g.enqueue(component.Command{Type: component.CommandSummonBoss, BossKey: s.Key})
			return
		}
	}
	g.enqueue(component.Command{Type: component.CommandSummonBoss, BossKey: summons[g.summonIndex%len(summons)].Key})
}

func (g *GameState) handleMouse() {
	game := g.host.Game
	cam := g.renderer.Camera()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		wx, wy := cam.ScreenToWorld(ebiten.CursorPosition())
		now := time.Now()
		if now.Sub(g.lastClickTime) < doubleClickWindow {
			game.SelectSameUnit(wx, wy)
		} else {
			game.SelectAt(wx, wy, ebiten.IsKeyPressed(ebiten.KeyShift))
		}
		g.lastClickTime = now
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		wx, wy := cam.ScreenToWorld(ebiten.CursorPosition())
		game.OrderMove(wx, wy)
	}
}

func (g *GameState) enqueue(cmd component.Command) {
	if err := g.host.Game.Enqueue(cmd); err != nil {
		g.host.Game.Env.Log.Debug().Err(err).Str("command", string(cmd.Type)).Msg("command dropped")
	}
}

// leave returns to the lobby.
func (g *GameState) leave() {
	g.host.Game.Events.Unsubscribe(event.Status, g.banner)
	g.sm.SetState(NewMenuState(g.sm, g.host))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.host.Game
	ecs := game.ECS
	g.renderer.Draw(screen, ecs)

	used, total := game.Capacity()
	g.hud.Draw(screen, ui.HUDData{
		Round:         ecs.Wave.Round,
		MaxWaves:      game.Env.Config.Wave.MaxWaves,
		Timer:         ecs.Wave.Timer,
		Phase:         game.Phase(),
		Gold:          ecs.Session.Gold,
		Essence:       ecs.Session.Essence,
		Enemies:       len(ecs.Enemies),
		EnemyLimit:    game.Env.Config.Wave.DefeatThreshold,
		UsedCapacity:  used,
		TotalCapacity: total,
		RollCost:      game.RollCost(),
		DockyardCost:  game.DockyardCost(),
		Interest:      game.Interest(),
		InterestOn:    ecs.Session.InterestEnabled,
		Speed:         ecs.Session.Speed,
		Era:           defs.EraOrder[ecs.Session.EraIndex].String(),
		Summons:       ecs.Summons,
	})
	g.infoPanel.Draw(screen, ui.Describe(ecs.SelectedTowers(), game.UpgradeLevel))
	g.banner.Draw(screen, g.host.Face, config.TextLightColor)
	if g.autoplay {
		text.Draw(screen, "AUTO", g.host.Face, config.ScreenWidth-60, 16, config.UIColorBlue)
	}

	if !ecs.Session.Running && ecs.Session.Outcome != component.OutcomeNone {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)
		title := "VICTORY"
		clr := config.UIColorBlue
		if ecs.Session.Outcome == component.OutcomeDefeat {
			title, clr = "DEFEAT", config.TextAlertColor
		}
		bounds := text.BoundString(g.host.TitleFace, title)
		text.Draw(screen, title, g.host.TitleFace, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-20, clr)
		summary := fmt.Sprintf("%s. Round %d, %d gold. Press Enter.", ecs.Session.OutcomeReason, ecs.Wave.Round, ecs.Session.Gold)
		bounds = text.BoundString(g.host.Face, summary)
		text.Draw(screen, summary, g.host.Face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2+20, config.TextLightColor)
	}
}

func (g *GameState) Exit() {}
