package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/eaterai/internal/games/eater"
	"github.com/vovakirdan/eaterai/internal/storage"
)

var (
	flagSimSpeed    float64
	flagSimStep     int
	flagSimMax      time.Duration
	flagSimBotName  string
	flagSimNoRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by a random bot",
	Long: `Play a game without a terminal UI. A bot wanders the maze, preferring
squares with pips, while the robots chase it. Useful for balancing
settings and for soak runs.

The game clock runs --speed times faster than real time. Finished runs
are saved to the scores database like any other game.

Examples:
  eaterai sim
  eaterai sim --seed 42 --speed 20
  eaterai sim --difficulty hard --max 2m --log-level debug
  eaterai sim --no-record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSpeed, "speed", 1, "Game clock multiplier")
	simCmd.Flags().IntVar(&flagSimStep, "step", 150, "Bot move interval in game milliseconds")
	simCmd.Flags().DurationVar(&flagSimMax, "max", 10*time.Minute, "Abandon the run after this much game time")
	simCmd.Flags().StringVar(&flagSimBotName, "name", "BOT", "Name recorded for the bot")
	simCmd.Flags().BoolVar(&flagSimNoRecord, "no-record", false, "Do not save the run")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimSpeed <= 0 {
		return fmt.Errorf("--speed must be positive, got %v", flagSimSpeed)
	}
	if flagSimStep <= 0 {
		return fmt.Errorf("--step must be positive, got %d", flagSimStep)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger("eaterai-sim")
	if err != nil {
		return err
	}

	seed := resolveSeed()
	opts := []eater.Option{eater.WithRules(cfg.Rules())}
	if !flagSimNoRecord {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			logger.Warn("could not open scores database, run will not be saved", "error", openErr)
		} else {
			defer store.Close()
			opts = append(opts, eater.WithRecorder(store.Recorder(storage.GameID)))
		}
	}

	clock := scaledClock(time.Now(), flagSimSpeed)
	session := eater.NewSession(cfg.Settings(), newRand(seed), opts...)
	if err := session.Start(flagSimBotName, clock()); err != nil {
		return err
	}

	loop, err := eater.NewLoop(eater.LoopConfig{
		Session:      session,
		TickInterval: scale(session.Rules().TickInterval, flagSimSpeed),
		Clock:        clock,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, scale(flagSimMax, flagSimSpeed))
	defer cancel()

	logger.Info("simulation started", "seed", seed, "speed", flagSimSpeed, "settings", fmt.Sprintf("%+v", session.Settings()))

	bot := &randomBot{
		rng:    newRand(seed + 1),
		step:   scale(time.Duration(flagSimStep)*time.Millisecond, flagSimSpeed),
		logger: logger,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		return bot.drive(gctx, loop)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	final := loop.Snapshot()
	if final.State != eater.StateOver {
		logger.Warn("run abandoned before game over, not recorded", "score", final.Score, "level", final.Level)
	}
	fmt.Printf("%s: score %d, level %d, lives %d, ticks %d (seed %d)\n",
		final.Name, final.Score, final.Level, final.Lives, final.Tick, seed)
	return nil
}

// randomBot submits one move per step until the loop stops.
type randomBot struct {
	rng    *rand.Rand
	step   time.Duration
	logger *log.Logger
	last   eater.Direction
	moved  bool
}

func (b *randomBot) drive(ctx context.Context, loop *eater.Loop) error {
	ticker := time.NewTicker(b.step)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-loop.Done():
			return nil
		case <-ticker.C:
			d, ok := b.pick(loop.Snapshot())
			if !ok {
				continue
			}
			if err := loop.Submit(ctx, d); err != nil {
				if errors.Is(err, eater.ErrLoopStopped) || ctx.Err() != nil {
					return nil
				}
				return err
			}
		}
	}
}

var botDirections = [4]eater.Direction{eater.DirUp, eater.DirRight, eater.DirDown, eater.DirLeft}

// pick chooses a walkable direction. Squares with pips win; otherwise the bot
// keeps its heading when it can and avoids turning straight back.
func (b *randomBot) pick(snap eater.Snapshot) (eater.Direction, bool) {
	var open, pips []eater.Direction
	for _, d := range botDirections {
		next := snap.Player.Add(d)
		if snap.At(next) == eater.CellWall || (snap.PursuerAt(next) && !snap.PoweredUp) {
			continue
		}
		open = append(open, d)
		if snap.At(next) == eater.CellPip || snap.PowerUpAt(next) {
			pips = append(pips, d)
		}
	}

	var choice eater.Direction
	switch {
	case len(pips) > 0:
		choice = pips[b.rng.Intn(len(pips))]
	case len(open) == 0:
		return 0, false
	case b.moved && slices.Contains(open, b.last) && b.rng.Intn(4) > 0:
		choice = b.last
	default:
		if back := opposite(b.last); b.moved && len(open) > 1 {
			open = without(open, back)
		}
		choice = open[b.rng.Intn(len(open))]
	}

	b.last, b.moved = choice, true
	b.logger.Debug("bot move", "from", snap.Player, "dir", choice)
	return choice, true
}

func without(ds []eater.Direction, d eater.Direction) []eater.Direction {
	out := ds[:0:0]
	for _, x := range ds {
		if x != d {
			out = append(out, x)
		}
	}
	return out
}

func opposite(d eater.Direction) eater.Direction {
	switch d {
	case eater.DirUp:
		return eater.DirDown
	case eater.DirDown:
		return eater.DirUp
	case eater.DirLeft:
		return eater.DirRight
	default:
		return eater.DirLeft
	}
}

// scaledClock returns a clock that starts at origin and runs speed times
// faster than the wall clock.
func scaledClock(origin time.Time, speed float64) func() time.Time {
	wall := time.Now()
	return func() time.Time {
		return origin.Add(time.Duration(float64(time.Since(wall)) * speed))
	}
}

// scale converts a game duration into wall time.
func scale(d time.Duration, speed float64) time.Duration {
	out := time.Duration(float64(d) / speed)
	if out < time.Millisecond {
		out = time.Millisecond
	}
	return out
}
