package tui

import (
	"errors"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eaterai/internal/core"
	"github.com/vovakirdan/eaterai/internal/games/eater"
	"github.com/vovakirdan/eaterai/internal/storage"
)

const maxNameLen = 16

// Options configures a game Model.
type Options struct {
	Settings eater.Settings
	Rules    eater.Rules

	// Store persists finished runs and feeds the scoreboard. May be nil.
	Store *storage.Store

	// Name pre-fills the player name field.
	Name string

	// Clock supplies simulation time. Defaults to time.Now.
	Clock func() time.Time
}

// Model is the Bubble Tea model for the whole game flow: menu, configuration,
// play, game over and the scoreboard. Bubble Tea delivers key presses and ticks
// to Update one at a time, so the session has a single writer.
type Model struct {
	session  *eater.Session
	rules    eater.Rules
	rng      *rand.Rand
	store    *storage.Store
	recorder eater.RunRecorder
	clock    func() time.Time

	keys         *KeyMapper
	nameInput    textinput.Model
	menuCursor   int
	configCursor int
	showScores   bool
	scoreboard   ScoreboardModel

	screen  *core.Screen
	width   int
	height  int
	tickGen int

	notice    string
	recordErr error
	highScore int
	quitting  bool
}

// NewModel creates the game model.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	if opts.Rules == (eater.Rules{}) {
		opts.Rules = eater.DefaultRules()
	}
	if opts.Settings == (eater.Settings{}) {
		opts.Settings = eater.DefaultSettings()
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = maxNameLen
	ti.Width = maxNameLen
	ti.SetValue(opts.Name)
	ti.Focus()

	m := Model{
		rules:     opts.Rules,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		store:     opts.Store,
		clock:     clock,
		keys:      NewKeyMapper(),
		nameInput: ti,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
	}
	if m.store != nil {
		m.recorder = m.store.Recorder(storage.GameID)
	}
	m.session = m.newSession(opts.Settings)
	return m
}

// newSession builds a fresh session in the menu state.
func (m Model) newSession(settings eater.Settings) *eater.Session {
	opts := []eater.Option{eater.WithRules(m.rules)}
	if m.recorder != nil {
		opts = append(opts, eater.WithRecorder(m.recorder))
	}
	return eater.NewSession(settings, m.rng, opts...)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.showScores {
			sb, _ := m.scoreboard.Update(msg)
			m.scoreboard = sb.(ScoreboardModel)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case tea.KeyMsg:
		if m.showScores {
			return m.handleScoresKey(msg)
		}
		switch m.session.State() {
		case eater.StateMenu:
			return m.handleMenuKey(msg)
		case eater.StateConfiguring:
			return m.handleConfigKey(msg)
		case eater.StatePlaying:
			return m.handlePlayKey(msg)
		case eater.StateOver:
			return m.handleOverKey(msg)
		}
	}

	if m.session.State() == eater.StateMenu && !m.showScores {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch m.keys.MapTypingKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.menuCursor = (m.menuCursor + len(menuItems) - 1) % len(menuItems)
		return m, nil
	case core.ActionDown:
		m.menuCursor = (m.menuCursor + 1) % len(menuItems)
		return m, nil
	case core.ActionScoreboard:
		return m.openScores(), nil
	case core.ActionConfirm:
		return m.selectMenuItem(menuItems[m.menuCursor])
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) selectMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	switch item {
	case menuStart:
		return m.start()
	case menuConfigure:
		if err := m.session.Configure(); err != nil {
			m.notice = err.Error()
		}
		m.configCursor = 0
		return m, nil
	case menuScores:
		return m.openScores(), nil
	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// start begins a run and arms the first tick.
func (m Model) start() (tea.Model, tea.Cmd) {
	err := m.session.Start(m.nameInput.Value(), m.clock())
	if errors.Is(err, eater.ErrNameRequired) {
		m.notice = "Enter your name to start"
		return m, nil
	}
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}
	m.recordErr = nil
	m.highScore = 0
	m.tickGen++
	return m, tickCmd(m.session.Rules().TickInterval, m.tickGen)
}

func (m Model) handleConfigKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp:
		m.configCursor = (m.configCursor + int(fieldCount) - 1) % int(fieldCount)
	case core.ActionDown:
		m.configCursor = (m.configCursor + 1) % int(fieldCount)
	case core.ActionLeft:
		m.adjustSetting(-1)
	case core.ActionRight:
		m.adjustSetting(1)
	case core.ActionConfirm, core.ActionBack:
		//nolint:errcheck // Only fails outside the configuring state
		m.session.CloseConfig()
	}
	return m, nil
}

func (m *Model) adjustSetting(delta int) {
	field := configField(m.configCursor)
	//nolint:errcheck // Only fails once a run has started
	m.session.ApplySettings(field.adjust(m.session.Settings(), delta))
}

func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if dir, ok := Direction(action); ok {
		m.session.Move(dir, m.clock())
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		// Abandoned runs are not recorded. Bumping the generation drops the
		// tick already in flight.
		m.tickGen++
		m.session = m.newSession(m.session.Settings())
		m.notice = "Run abandoned"
	}
	return m, nil
}

func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.session.State() != eater.StatePlaying {
		return m, nil
	}

	res := m.session.Tick(m.clock())
	if res.GameOver {
		m.recordErr = res.RecordErr
		if m.store != nil {
			if high, err := m.store.HighScore(storage.GameID); err == nil {
				m.highScore = high
			}
		}
		return m, nil
	}
	return m, tickCmd(m.session.Rules().TickInterval, m.tickGen)
}

func (m Model) handleOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionConfirm, core.ActionBack:
		// A finished session is terminal; play again on a new one.
		m.session = m.newSession(m.session.Settings())
		m.menuCursor = 0
	case core.ActionConfig:
		m.session = m.newSession(m.session.Settings())
		m.menuCursor = 0
		if err := m.session.Configure(); err != nil {
			m.notice = err.Error()
		}
		m.configCursor = 0
	case core.ActionScoreboard:
		return m.openScores(), nil
	}
	return m, nil
}

func (m Model) openScores() Model {
	m.scoreboard = NewScoreboardModel(m.store, m.width, m.height)
	m.showScores = true
	return m
}

func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	m.scoreboard = sb.(ScoreboardModel)
	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.showScores = false
		return m, nil
	}
	return m, cmd
}

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scoreboard.View()
	}

	switch m.session.State() {
	case eater.StateConfiguring:
		return m.viewConfig()
	case eater.StatePlaying:
		DrawGame(m.screen, m.session.Snapshot(), m.clock())
		return RenderScreen(m.screen)
	case eater.StateOver:
		return m.viewOver()
	default:
		return m.viewMenu()
	}
}

// Session exposes the current session for inspection.
func (m Model) Session() *eater.Session {
	return m.session
}

// Run starts the Bubble Tea program with a new game model.
func Run(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
