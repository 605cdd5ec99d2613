package eater

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
	"time"
)

var testLayout = []string{
	"#######",
	"#  ...#",
	"#.....#",
	"#.....#",
	"#######",
}

// playingSession starts a run and swaps in a fixed board.
func playingSession(t *testing.T, settings Settings, opts ...Option) *Session {
	t.Helper()
	b, err := ParseBoard(testLayout...)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	rules := DefaultRules()
	rules.Width, rules.Height = b.Width(), b.Height()
	opts = append([]Option{WithRules(rules)}, opts...)

	s := NewSession(settings, rand.New(rand.NewSource(1)), opts...)
	if err := s.Start("tester", epoch); err != nil {
		t.Fatalf("Start: %v", err)
	}
	s.board = b
	s.totalPips = b.Pips()
	s.eatenPips = 0
	s.pursuers = NewPursuers(len(s.pursuers), HomeFor(b.Width(), b.Height()), epoch)
	return s
}

func oneRobot() Settings {
	s := DefaultSettings()
	s.StartingRobots = 1
	return s
}

func TestSessionStartRequiresName(t *testing.T) {
	for _, name := range []string{"", "   ", "\t"} {
		s := NewSession(DefaultSettings(), rand.New(rand.NewSource(1)))
		if err := s.Start(name, epoch); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Start(%q) error = %v, want ErrNameRequired", name, err)
		}
		if s.State() != StateMenu {
			t.Errorf("Start(%q) left state %s", name, s.State())
		}
	}
}

func TestSessionStart(t *testing.T) {
	settings := Settings{StartingRobots: 3, Lives: 4, CompletionPercentage: 75, PowerUpDuration: 7 * time.Second}
	s := NewSession(settings, rand.New(rand.NewSource(9)))
	if err := s.Start("  ada ", epoch); err != nil {
		t.Fatalf("Start: %v", err)
	}

	snap := s.Snapshot()
	if snap.State != StatePlaying || snap.Name != "ada" {
		t.Errorf("state=%s name=%q", snap.State, snap.Name)
	}
	if snap.Level != 1 || snap.Lives != 4 || snap.Score != 0 {
		t.Errorf("level=%d lives=%d score=%d", snap.Level, snap.Lives, snap.Score)
	}
	if snap.Player != PlayerStart {
		t.Errorf("player at %v", snap.Player)
	}
	if len(snap.Pursuers) != 3 {
		t.Errorf("%d pursuers, want 3", len(snap.Pursuers))
	}
	home := HomeFor(DefaultWidth, DefaultHeight)
	for _, p := range snap.Pursuers {
		if p.Pos != home {
			t.Errorf("pursuer %d at %v, want home %v", p.ID, p.Pos, home)
		}
	}
	if snap.Width != DefaultWidth || snap.Height != DefaultHeight || len(snap.Cells) != DefaultWidth*DefaultHeight {
		t.Errorf("snapshot grid %dx%d (%d cells)", snap.Width, snap.Height, len(snap.Cells))
	}
	if snap.TotalPips == 0 || snap.EatenPips != 0 {
		t.Errorf("pips total=%d eaten=%d", snap.TotalPips, snap.EatenPips)
	}
}

func TestSessionTransitions(t *testing.T) {
	s := NewSession(DefaultSettings(), rand.New(rand.NewSource(1)))

	if err := s.CloseConfig(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("CloseConfig from menu: %v", err)
	}
	if err := s.Configure(); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if s.State() != StateConfiguring {
		t.Fatalf("state = %s", s.State())
	}
	if err := s.Start("ada", epoch); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Start while configuring: %v", err)
	}
	if err := s.CloseConfig(); err != nil {
		t.Fatalf("CloseConfig: %v", err)
	}
	if err := s.Start("ada", epoch); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Configure(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Configure while playing: %v", err)
	}
	if err := s.ApplySettings(DefaultSettings()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("ApplySettings while playing: %v", err)
	}
	if err := s.Start("ada", epoch); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Start: %v", err)
	}
}

func TestSessionApplySettingsClamps(t *testing.T) {
	s := NewSession(DefaultSettings(), rand.New(rand.NewSource(1)))
	if err := s.Configure(); err != nil {
		t.Fatal(err)
	}
	err := s.ApplySettings(Settings{StartingRobots: 12, Lives: 0, CompletionPercentage: 95, PowerUpDuration: time.Second})
	if err != nil {
		t.Fatalf("ApplySettings: %v", err)
	}
	want := Settings{StartingRobots: 8, Lives: 1, CompletionPercentage: 90, PowerUpDuration: 3 * time.Second}
	if got := s.Settings(); got != want {
		t.Errorf("Settings() = %+v, want %+v", got, want)
	}
}

func TestSessionMoveIntoWallIsIgnored(t *testing.T) {
	s := playingSession(t, oneRobot())
	before := s.Snapshot()

	for _, d := range []Direction{DirUp, DirLeft} {
		if s.Move(d, epoch) {
			t.Errorf("Move(%s) into wall returned true", d)
		}
	}

	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("rejected moves changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestSessionMoveIgnoredWhenNotPlaying(t *testing.T) {
	s := NewSession(DefaultSettings(), rand.New(rand.NewSource(1)))
	if s.Move(DirRight, epoch) {
		t.Error("Move in menu returned true")
	}
	if res := s.Tick(epoch); res != (TickResult{}) {
		t.Errorf("Tick in menu = %+v", res)
	}
}

func TestSessionMoveEatsPip(t *testing.T) {
	rules := DefaultRules()
	rules.Width, rules.Height = 7, 5
	rules.SpawnChance = 0
	s := playingSession(t, oneRobot(), WithRules(rules))

	if !s.Move(DirDown, epoch) {
		t.Fatal("Move down rejected")
	}
	snap := s.Snapshot()
	if snap.Player != (Position{X: 1, Y: 2}) {
		t.Errorf("player at %v", snap.Player)
	}
	if snap.Score != PipScore || snap.EatenPips != 1 {
		t.Errorf("score=%d eaten=%d", snap.Score, snap.EatenPips)
	}
	if snap.At(Position{X: 1, Y: 2}) != CellEmpty {
		t.Error("pip was not consumed")
	}
	if len(snap.PowerUps) != 0 {
		t.Error("power-up spawned with zero spawn chance")
	}

	// Walking back onto an empty cell scores nothing.
	s.Move(DirUp, epoch)
	if got := s.Snapshot(); got.Score != PipScore || got.EatenPips != 1 {
		t.Errorf("after empty move score=%d eaten=%d", got.Score, got.EatenPips)
	}
}

func TestSessionPowerUpSpawn(t *testing.T) {
	rules := DefaultRules()
	rules.Width, rules.Height = 7, 5
	rules.SpawnChance = 1
	s := playingSession(t, oneRobot(), WithRules(rules))

	s.Move(DirDown, epoch)
	snap := s.Snapshot()
	if len(snap.PowerUps) != 1 {
		t.Fatalf("%d power-ups after eating with certain spawn", len(snap.PowerUps))
	}
	first := snap.PowerUps[0]
	if snap.At(first) != CellEmpty {
		t.Errorf("power-up placed on %v cell", snap.At(first))
	}

	// At most one power-up lives on the board.
	s.Move(DirDown, epoch)
	if got := s.Snapshot().PowerUps; len(got) != 1 || got[0] != first {
		t.Errorf("power-ups = %v, want only %v", got, first)
	}
}

func TestSessionPowerUpPickup(t *testing.T) {
	settings := oneRobot()
	settings.PowerUpDuration = 4 * time.Second
	s := playingSession(t, settings)
	s.powerUp = &Position{X: 2, Y: 1}

	now := epoch.Add(time.Second)
	if !s.Move(DirRight, now) {
		t.Fatal("Move right rejected")
	}

	snap := s.Snapshot()
	if snap.Score != PowerUpScore {
		t.Errorf("score = %d, want %d", snap.Score, PowerUpScore)
	}
	if !snap.PoweredUp || !snap.PowerUpUntil.Equal(now.Add(4*time.Second)) {
		t.Errorf("powered=%v until=%v", snap.PoweredUp, snap.PowerUpUntil)
	}
	if len(snap.PowerUps) != 0 {
		t.Error("power-up still on board after pickup")
	}
	if got := snap.PowerUpRemaining(now.Add(time.Second)); got != 3*time.Second {
		t.Errorf("PowerUpRemaining = %v", got)
	}
}

func TestSessionPowerUpExpires(t *testing.T) {
	s := playingSession(t, oneRobot())
	s.poweredUp = true
	s.powerUpUntil = epoch.Add(time.Second)

	if res := s.Tick(epoch.Add(999 * time.Millisecond)); res.PowerUpExpired || !s.poweredUp {
		t.Fatal("power-up expired early")
	}
	if res := s.Tick(epoch.Add(time.Second)); !res.PowerUpExpired || s.poweredUp {
		t.Fatal("power-up did not expire at its deadline")
	}
}

func TestSessionCollisionLosesLife(t *testing.T) {
	s := playingSession(t, oneRobot())
	s.Move(DirRight, epoch)
	s.pursuers[0].Pos = s.player
	scoreBefore := s.score

	res := s.Tick(epoch)

	if res.LivesLost != 1 || res.GameOver {
		t.Errorf("result = %+v", res)
	}
	snap := s.Snapshot()
	if snap.Lives != DefaultLives-1 {
		t.Errorf("lives = %d, want %d", snap.Lives, DefaultLives-1)
	}
	if snap.Player != PlayerStart {
		t.Errorf("player at %v, want %v", snap.Player, PlayerStart)
	}
	if snap.Score != scoreBefore || snap.State != StatePlaying {
		t.Errorf("score=%d state=%s", snap.Score, snap.State)
	}
}

func TestSessionCollisionCountsEveryPursuer(t *testing.T) {
	settings := DefaultSettings()
	settings.StartingRobots = 2
	s := playingSession(t, settings)
	s.Move(DirRight, epoch)
	s.PlacePursuersOnPlayer()

	res := s.Tick(epoch)

	if res.LivesLost != 2 || res.GameOver {
		t.Errorf("result = %+v", res)
	}
	snap := s.Snapshot()
	if snap.Lives != DefaultLives-2 {
		t.Errorf("lives = %d, want %d", snap.Lives, DefaultLives-2)
	}
	if snap.Player != PlayerStart {
		t.Errorf("player at %v, want %v", snap.Player, PlayerStart)
	}
}

func TestSessionSimultaneousHitsEndGame(t *testing.T) {
	settings := DefaultSettings()
	settings.StartingRobots = 2
	settings.Lives = 2
	s := playingSession(t, settings)
	s.Move(DirRight, epoch)
	s.PlacePursuersOnPlayer()

	res := s.Tick(epoch)

	if !res.GameOver || res.LivesLost != 2 {
		t.Fatalf("result = %+v", res)
	}
	if snap := s.Snapshot(); snap.State != StateOver || snap.Lives != 0 {
		t.Errorf("state=%s lives=%d", snap.State, snap.Lives)
	}
}

func TestSessionCollisionWhilePoweredEatsPursuer(t *testing.T) {
	s := playingSession(t, oneRobot())
	s.Move(DirRight, epoch)
	s.poweredUp = true
	s.powerUpUntil = epoch.Add(5 * time.Second)
	s.pursuers[0].Pos = s.player
	scoreBefore := s.score

	res := s.Tick(epoch)

	if res.PursuersEaten != 1 || res.LivesLost != 0 {
		t.Errorf("result = %+v", res)
	}
	snap := s.Snapshot()
	if snap.Score != scoreBefore+EatPursuerScore {
		t.Errorf("score = %d, want %d", snap.Score, scoreBefore+EatPursuerScore)
	}
	if snap.Pursuers[0].Pos != s.pursuers[0].Home {
		t.Errorf("eaten pursuer at %v, want home", snap.Pursuers[0].Pos)
	}
	if snap.Lives != DefaultLives || snap.Player != (Position{X: 2, Y: 1}) {
		t.Errorf("lives=%d player=%v", snap.Lives, snap.Player)
	}
}

func TestSessionLevelCompletion(t *testing.T) {
	s := playingSession(t, oneRobot())
	s.totalPips = 10
	s.eatenPips = 8
	s.score = 120
	oldBoard := s.board

	res := s.Tick(epoch)

	if !res.LevelUp {
		t.Fatalf("no level up: %+v", res)
	}
	snap := s.Snapshot()
	if snap.Level != 2 {
		t.Errorf("level = %d, want 2", snap.Level)
	}
	if snap.Score != 120+LevelBonus*1 {
		t.Errorf("score = %d, want %d", snap.Score, 120+LevelBonus)
	}
	if s.board == oldBoard {
		t.Error("board was not regenerated")
	}
	if snap.EatenPips != 0 || snap.TotalPips != s.board.Pips() {
		t.Errorf("pips eaten=%d total=%d board=%d", snap.EatenPips, snap.TotalPips, s.board.Pips())
	}
	if snap.Player != PlayerStart {
		t.Errorf("player at %v", snap.Player)
	}
	if len(snap.Pursuers) != 2 {
		t.Errorf("%d pursuers on level 2, want 2", len(snap.Pursuers))
	}
	if snap.PoweredUp || len(snap.PowerUps) != 0 {
		t.Error("power-up state survived the level change")
	}
}

func TestSessionLevelNotCompleteBelowThreshold(t *testing.T) {
	s := playingSession(t, oneRobot())
	s.totalPips = 10
	s.eatenPips = 7

	if res := s.Tick(epoch); res.LevelUp {
		t.Error("levelled up at 70% with an 80% threshold")
	}
}

func TestSessionLevelWithoutPipsNeverCompletes(t *testing.T) {
	s := playingSession(t, oneRobot())
	s.totalPips = 0
	s.eatenPips = 0

	for i := 0; i < 3; i++ {
		if res := s.Tick(epoch.Add(time.Duration(i) * time.Millisecond)); res.LevelUp {
			t.Fatalf("tick %d levelled up on a board without pips", i)
		}
	}
	if s.Snapshot().Level != 1 {
		t.Errorf("level = %d, want 1", s.Snapshot().Level)
	}
}

func TestPursuerCountIsCapped(t *testing.T) {
	tests := []struct {
		robots, level, want int
	}{
		{2, 1, 2},
		{2, 3, 4},
		{8, 1, 8},
		{6, 5, 8},
	}
	for _, tt := range tests {
		if got := pursuerCount(tt.robots, tt.level, 8); got != tt.want {
			t.Errorf("pursuerCount(%d, %d) = %d, want %d", tt.robots, tt.level, got, tt.want)
		}
	}
}

func TestSessionGameOver(t *testing.T) {
	settings := oneRobot()
	settings.Lives = 1
	s := playingSession(t, settings)
	s.Move(DirRight, epoch)
	s.Move(DirRight, epoch)
	s.pursuers[0].Pos = s.player
	s.totalPips = 10
	s.eatenPips = 9

	res := s.Tick(epoch)

	if !res.GameOver || res.Run == nil {
		t.Fatalf("result = %+v", res)
	}
	want := FinishedRun{Name: "tester", Score: PipScore, Level: 1}
	if *res.Run != want {
		t.Errorf("run = %+v, want %+v", *res.Run, want)
	}
	snap := s.Snapshot()
	if snap.State != StateOver || snap.Lives != 0 {
		t.Errorf("state=%s lives=%d", snap.State, snap.Lives)
	}
	if snap.Level != 1 || res.LevelUp {
		t.Error("step continued past game over")
	}

	if s.Move(DirDown, epoch) {
		t.Error("Move accepted after game over")
	}
	if again := s.Tick(epoch.Add(time.Second)); again.GameOver || again.Run != nil {
		t.Errorf("second tick after game over = %+v", again)
	}
	if err := s.Start("tester", epoch); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("restart of finished session: %v", err)
	}
}

func TestSessionDeterministic(t *testing.T) {
	run := func() []Snapshot {
		s := NewSession(DefaultSettings(), rand.New(rand.NewSource(2024)))
		if err := s.Start("det", epoch); err != nil {
			t.Fatal(err)
		}
		moves := rand.New(rand.NewSource(5))
		now := epoch
		var snaps []Snapshot
		for i := 0; i < 400 && s.State() == StatePlaying; i++ {
			now = now.Add(100 * time.Millisecond)
			s.Move(Direction(moves.Intn(4)), now)
			s.Tick(now)
			snaps = append(snaps, s.Snapshot())
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical seeds produced different runs")
	}
}

func TestSessionLongRunInvariants(t *testing.T) {
	rules := DefaultRules()
	rules.SpawnChance = 0.3
	s := NewSession(Settings{StartingRobots: 3, Lives: 5, CompletionPercentage: 70, PowerUpDuration: 3 * time.Second},
		rand.New(rand.NewSource(77)), WithRules(rules))
	if err := s.Start("soak", epoch); err != nil {
		t.Fatal(err)
	}
	moves := rand.New(rand.NewSource(78))
	now := epoch

	for i := 0; i < 1000 && s.State() == StatePlaying; i++ {
		now = now.Add(100 * time.Millisecond)
		s.Move(Direction(moves.Intn(4)), now)
		s.Tick(now)

		snap := s.Snapshot()
		if snap.At(snap.Player) == CellWall {
			t.Fatalf("tick %d: player inside a wall at %v", i, snap.Player)
		}
		if snap.Lives < 0 || snap.Score < 0 {
			t.Fatalf("tick %d: lives=%d score=%d", i, snap.Lives, snap.Score)
		}
		if len(snap.PowerUps) > 1 {
			t.Fatalf("tick %d: %d power-ups", i, len(snap.PowerUps))
		}
		for _, p := range snap.Pursuers {
			if p.Observations > SightingCapacity || p.Hunts > HuntCapacity {
				t.Fatalf("tick %d: pursuer %d memory %d/%d", i, p.ID, p.Observations, p.Hunts)
			}
			if snap.At(p.Pos) == CellWall {
				t.Fatalf("tick %d: pursuer %d inside a wall", i, p.ID)
			}
		}
	}
}

func TestSnapshotCompletion(t *testing.T) {
	tests := []struct {
		total, eaten, want int
	}{
		{0, 0, 100},
		{10, 8, 80},
		{3, 1, 33},
	}
	for _, tt := range tests {
		snap := Snapshot{TotalPips: tt.total, EatenPips: tt.eaten}
		if got := snap.Completion(); got != tt.want {
			t.Errorf("Completion(%d/%d) = %d, want %d", tt.eaten, tt.total, got, tt.want)
		}
	}
}
