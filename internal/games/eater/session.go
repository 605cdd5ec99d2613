package eater

import (
	"errors"
	"math/rand"
	"strings"
	"time"
)

// State is the session state tag.
type State string

const (
	StateMenu        State = "menu"
	StateConfiguring State = "configuring"
	StatePlaying     State = "playing"
	StateOver        State = "over"
)

var (
	// ErrNameRequired is returned by Start when the player name is blank.
	ErrNameRequired = errors.New("eater: player name is required")

	// ErrInvalidTransition is returned when an operation is not allowed in the current state.
	ErrInvalidTransition = errors.New("eater: invalid state transition")
)

// FinishedRun is emitted once per session when the last life is lost.
type FinishedRun struct {
	Name  string
	Score int
	Level int
}

// RunRecorder receives finished runs for ranking and persistence.
//
//go:generate go tool mockgen -destination=./mocks/recorder_mock.go -package=mocks . RunRecorder
type RunRecorder interface {
	RecordRun(run FinishedRun) error
}

// Option configures a Session.
type Option func(*Session)

// WithRules overrides the engine constants.
func WithRules(r Rules) Option {
	return func(s *Session) {
		s.rules = r.normalize()
	}
}

// WithRecorder sets the collaborator notified on game over.
func WithRecorder(r RunRecorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

// TickResult reports what happened during one simulation step.
type TickResult struct {
	PowerUpExpired bool
	PursuersEaten  int
	LivesLost      int
	LevelUp        bool
	GameOver       bool

	// Run and RecordErr are set on game over.
	Run       *FinishedRun
	RecordErr error
}

// Session is the aggregate root of one game. It is not safe for concurrent
// use; a single owner (the TUI model or a Loop) drives it.
type Session struct {
	rules    Rules
	settings Settings
	rng      *rand.Rand
	recorder RunRecorder

	state State
	name  string

	board    *Board
	player   Position
	pursuers []Pursuer

	powerUp      *Position
	poweredUp    bool
	powerUpUntil time.Time

	score     int
	level     int
	lives     int
	totalPips int
	eatenPips int
	ticks     uint64
}

// NewSession returns a session in the menu state. rng drives board generation
// and power-up placement; pass a seeded source for reproducible runs.
func NewSession(settings Settings, rng *rand.Rand, opts ...Option) *Session {
	s := &Session{
		rules:    DefaultRules(),
		settings: settings.Normalize(),
		rng:      rng,
		state:    StateMenu,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state tag.
func (s *Session) State() State { return s.state }

// Settings returns the configuration that will be (or was) applied at start.
func (s *Session) Settings() Settings { return s.settings }

// Rules returns the engine constants.
func (s *Session) Rules() Rules { return s.rules }

// Configure opens the configuration screen.
func (s *Session) Configure() error {
	if s.state != StateMenu {
		return ErrInvalidTransition
	}
	s.state = StateConfiguring
	return nil
}

// ApplySettings replaces the pending configuration. Settings are frozen once
// the run starts.
func (s *Session) ApplySettings(settings Settings) error {
	if s.state != StateMenu && s.state != StateConfiguring {
		return ErrInvalidTransition
	}
	s.settings = settings.Normalize()
	return nil
}

// CloseConfig returns from the configuration screen to the menu.
func (s *Session) CloseConfig() error {
	if s.state != StateConfiguring {
		return ErrInvalidTransition
	}
	s.state = StateMenu
	return nil
}

// Start begins a run for the named player.
func (s *Session) Start(name string, now time.Time) error {
	if s.state != StateMenu {
		return ErrInvalidTransition
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}

	s.name = name
	s.score = 0
	s.level = 1
	s.lives = s.settings.Lives
	s.ticks = 0
	s.startLevel(now)
	s.state = StatePlaying
	return nil
}

// startLevel regenerates the maze and the pursuer set for the current level.
func (s *Session) startLevel(now time.Time) {
	board, pips := Generate(s.rules.Width, s.rules.Height, s.rng)
	s.board = board
	s.totalPips = len(pips)
	s.eatenPips = 0
	s.player = PlayerStart

	count := pursuerCount(s.settings.StartingRobots, s.level, s.rules.MaxPursuers)
	s.pursuers = NewPursuers(count, HomeFor(s.rules.Width, s.rules.Height), now)

	s.powerUp = nil
	s.poweredUp = false
	s.powerUpUntil = time.Time{}
}

// Move applies a player intent immediately. It returns false when the move
// was ignored: not playing, or the destination is a wall or off the grid.
func (s *Session) Move(d Direction, now time.Time) bool {
	if s.state != StatePlaying {
		return false
	}
	next := s.player.Add(d)
	if !s.board.Walkable(next) {
		return false
	}
	s.player = next

	onBoard := s.powerUp
	if s.board.Eat(next) {
		s.score += PipScore
		s.eatenPips++
		roll := s.rng.Float64()
		if onBoard == nil && roll < s.rules.SpawnChance {
			s.spawnPowerUp()
		}
	}

	if onBoard != nil && *onBoard == next {
		s.score += PowerUpScore
		s.powerUp = nil
		s.poweredUp = true
		s.powerUpUntil = now.Add(s.settings.PowerUpDuration)
	}
	return true
}

func (s *Session) spawnPowerUp() {
	free := s.board.emptyInteriorCells()
	if len(free) == 0 {
		return
	}
	p := free[s.rng.Intn(len(free))]
	s.powerUp = &p
}

// Tick runs one simulation step.
func (s *Session) Tick(now time.Time) TickResult {
	var res TickResult
	if s.state != StatePlaying {
		return res
	}
	s.ticks++

	if s.poweredUp && !now.Before(s.powerUpUntil) {
		s.poweredUp = false
		res.PowerUpExpired = true
	}

	AdvancePursuers(s.pursuers, s.player, s.board, s.poweredUp, s.level, now, s.rules)

	// Every pursuer on the player's cell counts, even after the first hit
	// sends the player back to the start.
	hit := s.player
	for i := range s.pursuers {
		p := &s.pursuers[i]
		if p.Pos != hit {
			continue
		}
		if s.poweredUp {
			s.score += EatPursuerScore
			p.Pos = p.Home
			res.PursuersEaten++
			continue
		}

		s.lives--
		res.LivesLost++
		if s.lives <= 0 {
			s.lives = 0
			s.finish(&res)
			return res
		}
		s.player = PlayerStart
	}

	if s.levelComplete() {
		s.score += LevelBonus * s.level
		s.level++
		s.startLevel(now)
		res.LevelUp = true
	}
	return res
}

// levelComplete reports whether enough pips were eaten. A level without pips
// never completes.
func (s *Session) levelComplete() bool {
	if s.totalPips == 0 {
		return false
	}
	return s.eatenPips*100 >= s.settings.CompletionPercentage*s.totalPips
}

func (s *Session) finish(res *TickResult) {
	s.state = StateOver
	run := FinishedRun{Name: s.name, Score: s.score, Level: s.level}
	res.GameOver = true
	res.Run = &run
	if s.recorder != nil {
		res.RecordErr = s.recorder.RecordRun(run)
	}
}
