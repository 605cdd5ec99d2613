package eater

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// ErrLoopStopped is returned by Submit once the loop has exited.
var ErrLoopStopped = errors.New("eater: loop stopped")

// LoopConfig controls a Loop.
type LoopConfig struct {
	Session *Session

	// TickInterval defaults to the session's rules.
	TickInterval time.Duration

	// Clock supplies the simulation time. Defaults to time.Now.
	Clock func() time.Time

	Logger    *log.Logger
	QueueSize int
}

// Loop drives a playing session from a single goroutine. Movement intents and
// ticks are funnelled through one select so the session has exactly one writer.
// Readers use Snapshot, which returns the last committed state.
type Loop struct {
	session  *Session
	interval time.Duration
	clock    func() time.Time
	logger   *log.Logger

	intents chan Direction
	snap    atomic.Pointer[Snapshot]

	started atomic.Bool
	done    chan struct{}
}

// NewLoop creates a Loop for a session that has already been started.
func NewLoop(cfg LoopConfig) (*Loop, error) {
	if cfg.Session == nil {
		return nil, errors.New("eater: loop session is required")
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = cfg.Session.Rules().TickInterval
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 16
	}

	l := &Loop{
		session:  cfg.Session,
		interval: interval,
		clock:    clock,
		logger:   logger,
		intents:  make(chan Direction, queueSize),
		done:     make(chan struct{}),
	}
	l.publish()
	return l, nil
}

// Run processes intents and ticks until ctx is cancelled or the game is over.
// The ticker is stopped before Run returns, so no tick fires afterwards.
func (l *Loop) Run(ctx context.Context) error {
	if !l.started.CompareAndSwap(false, true) {
		return errors.New("eater: loop already running")
	}
	defer close(l.done)

	if l.session.State() != StatePlaying {
		return ErrInvalidTransition
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop cancelled", "err", ctx.Err())
			return nil
		case d := <-l.intents:
			if l.session.Move(d, l.clock()) {
				l.publish()
			}
		case <-ticker.C:
			res := l.session.Tick(l.clock())
			l.report(res)
			l.publish()
			if res.GameOver {
				return nil
			}
		}
	}
}

// Submit queues a movement intent. Intents are applied in the order received.
func (l *Loop) Submit(ctx context.Context, d Direction) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrLoopStopped
	case l.intents <- d:
		return nil
	}
}

// Snapshot returns the most recently committed session state.
func (l *Loop) Snapshot() Snapshot {
	return *l.snap.Load()
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) publish() {
	snap := l.session.Snapshot()
	l.snap.Store(&snap)
}

func (l *Loop) report(res TickResult) {
	if res.PursuersEaten > 0 {
		l.logger.Debug("pursuers eaten", "count", res.PursuersEaten)
	}
	if res.LivesLost > 0 && !res.GameOver {
		l.logger.Info("life lost", "lives", l.session.lives)
	}
	if res.LevelUp {
		l.logger.Info("level up", "level", l.session.level, "score", l.session.score)
	}
	if res.GameOver {
		l.logger.Info("game over", "name", res.Run.Name, "score", res.Run.Score, "level", res.Run.Level)
		if res.RecordErr != nil {
			l.logger.Error("record run", "err", res.RecordErr)
		}
	}
}
