// cmd/balance/main.go runs headless autopilot games over a range of seeds and
// prints how far each one got.
package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"sort"
	"time"

	"go-naval-defense/internal/app"
	"go-naval-defense/internal/autopilot"
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/defs"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const tick = 1.0 / 30

type result struct {
	Seed    uint32
	RunID   string
	Round   int
	Outcome component.Outcome
	Reason  string
	Gold    int
	Towers  int
	Elapsed float64
}

func main() {
	configPath := flag.String("config", "", "path to a YAML tuning file")
	seeds := flag.Int("seeds", 16, "number of seeds to play")
	first := flag.Uint("first", 1, "first seed")
	difficulty := flag.String("difficulty", "normal", "difficulty preset key")
	limit := flag.Float64("limit", 3*60*60, "simulated seconds before a run is abandoned")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel games")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

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

	results := make([]result, *seeds)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)
	for i := range results {
		seed := uint32(*first) + uint32(i)
		g.Go(func() error {
			r, err := play(ctx, cfg, lib, seed, *difficulty, *limit)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("balance run failed")
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Seed < results[j].Seed })
	p := message.NewPrinter(language.English)
	wins, rounds := 0, 0
	for _, r := range results {
		if r.Outcome == component.OutcomeVictory {
			wins++
		}
		rounds += r.Round
		p.Printf("seed %5d  run %s  round %2d  %-8s %-24s gold %7d  towers %2d  %6.0fs\n",
			r.Seed, r.RunID[:8], r.Round, outcomeLabel(r.Outcome), r.Reason, r.Gold, r.Towers, r.Elapsed)
	}
	if len(results) > 0 {
		p.Printf("%d/%d victories, average round %.1f\n", wins, len(results), float64(rounds)/float64(len(results)))
	}
}

// play runs one seed to completion or until the simulated time limit.
func play(ctx context.Context, cfg *config.Config, lib *defs.Library, seed uint32, difficulty string, limit float64) (result, error) {
	game, err := app.NewGame(app.Options{
		Config:     cfg,
		Library:    lib,
		Seed:       seed,
		Difficulty: difficulty,
		Logger:     zerolog.Nop(),
	})
	if err != nil {
		return result{}, err
	}
	game.Start()
	pilot := autopilot.New(game)
	ecs := game.ECS
	for steps := 0; ecs.Session.Running && ecs.GameTime < limit; steps++ {
		if steps%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return result{}, err
			}
		}
		pilot.Step()
		game.Update(tick)
	}
	return result{
		Seed:    seed,
		RunID:   game.RunID.String(),
		Round:   ecs.Wave.Round,
		Outcome: ecs.Session.Outcome,
		Reason:  ecs.Session.OutcomeReason,
		Gold:    ecs.Session.Gold,
		Towers:  len(ecs.Towers),
		Elapsed: ecs.GameTime,
	}, nil
}

func outcomeLabel(o component.Outcome) string {
	if o == component.OutcomeNone {
		return "timeout"
	}
	return o.String()
}
