// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"go-naval-defense/internal/app"
	"go-naval-defense/internal/assets"
	"go-naval-defense/internal/audio"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"
	"go-naval-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	seed := flag.Uint("seed", 0, "fixed seed for every run (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "start with sound muted")
	debug := flag.Bool("debug", false, "log command failures and other debug output")
	flag.Parse()

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
	}
	lib, err := defs.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load unit data")
	}
	game, err := app.NewGame(app.Options{Config: cfg, Library: lib, Logger: log})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	sound := audio.NewSoundManager(log)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("audio disabled")
	}
	defer sound.Cleanup()
	sound.SetMuted(*mute)
	sound.Subscribe(game.Events)

	host := &state.Host{
		Game:      game,
		Sound:     sound,
		Face:      assets.FaceOrFallback(14),
		TitleFace: assets.FaceOrFallback(32),
		Seed: func() uint32 {
			if *seed != 0 {
				return uint32(*seed)
			}
			return uint32(time.Now().UnixNano())
		},
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, host))
	appGame := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Naval Defense")
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
