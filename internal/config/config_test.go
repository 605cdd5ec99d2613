package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/eaterai/internal/games/eater"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg EaterConfig
	if err := yaml.Unmarshal(defaultEaterYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if cfg != DefaultEaterConfig() {
		t.Errorf("embedded = %+v\nhardcoded = %+v", cfg, DefaultEaterConfig())
	}
}

func TestLoadEaterCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eater.yaml")
	data := "board:\n  width: 31\ngameplay:\n  lives: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEater(path)
	if err != nil {
		t.Fatalf("LoadEater: %v", err)
	}
	if cfg.Board.Width != 31 || cfg.Gameplay.Lives != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Board.Height != eater.DefaultHeight || cfg.Timing.TickMS != 100 {
		t.Errorf("missing keys lost their defaults: %+v", cfg)
	}
}

func TestLoadEaterCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadEater(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadEater(bad)
	if err == nil || !strings.Contains(err.Error(), "cannot parse") {
		t.Errorf("error = %v, want parse error", err)
	}
}

func TestLoadEaterLocalConfigsDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "eater.yaml"), []byte("timing:\n  tick_ms: 50\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEater("")
	if err != nil {
		t.Fatalf("LoadEater: %v", err)
	}
	if cfg.Timing.TickMS != 50 {
		t.Errorf("tick_ms = %d, want 50", cfg.Timing.TickMS)
	}
}

func TestLoadEaterFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadEater("")
	if err != nil {
		t.Fatalf("LoadEater: %v", err)
	}
	if cfg != DefaultEaterConfig() {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestSettingsConversionClamps(t *testing.T) {
	cfg := DefaultEaterConfig()
	cfg.Gameplay.StartingRobots = 20
	cfg.Gameplay.Lives = 0
	cfg.Gameplay.PowerUpDurationMS = 60000

	s := cfg.Settings()
	if s.StartingRobots != eater.MaxStartingRobots || s.Lives != eater.MinLives {
		t.Errorf("settings = %+v", s)
	}
	if s.PowerUpDuration != eater.MaxPowerUpDuration {
		t.Errorf("power-up = %v", s.PowerUpDuration)
	}
	if s.CompletionPercentage != 80 {
		t.Errorf("completion = %d", s.CompletionPercentage)
	}
}

func TestRulesConversion(t *testing.T) {
	cfg := DefaultEaterConfig()
	cfg.Board.Width = 25
	cfg.Timing.TickMS = 80
	cfg.Timing.PursuerBaseMS = 150
	cfg.Gameplay.SpawnChance = 0.25

	r := cfg.Rules()
	if r.Width != 25 || r.Height != eater.DefaultHeight {
		t.Errorf("size = %dx%d", r.Width, r.Height)
	}
	if r.TickInterval != 80*time.Millisecond || r.PursuerBase != 150*time.Millisecond {
		t.Errorf("timing = %v / %v", r.TickInterval, r.PursuerBase)
	}
	if r.PursuerPerLevel != 10*time.Millisecond || r.SpawnChance != 0.25 {
		t.Errorf("per-level=%v spawn=%v", r.PursuerPerLevel, r.SpawnChance)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*EaterConfig)
		wantErr bool
	}{
		{"defaults", func(*EaterConfig) {}, false},
		{"tiny board", func(c *EaterConfig) { c.Board.Width = 3 }, true},
		{"zero tick", func(c *EaterConfig) { c.Timing.TickMS = 0 }, true},
		{"spawn above one", func(c *EaterConfig) { c.Gameplay.SpawnChance = 1.5 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEaterConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarshalIsLoadable(t *testing.T) {
	cfg := DefaultEaterConfig()
	cfg.Gameplay.Lives = 4
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "completion_percentage: 80") {
		t.Errorf("yaml missing key:\n%s", data)
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyFixed, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"normal", DifficultyNormal, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestApplyEaterPreset(t *testing.T) {
	easy := DefaultEaterConfig()
	ApplyEaterPreset(&easy, DifficultyEasy)
	hard := DefaultEaterConfig()
	ApplyEaterPreset(&hard, DifficultyHard)

	if easy.Gameplay.Lives <= hard.Gameplay.Lives {
		t.Errorf("easy lives %d <= hard lives %d", easy.Gameplay.Lives, hard.Gameplay.Lives)
	}
	if easy.Gameplay.StartingRobots >= hard.Gameplay.StartingRobots {
		t.Errorf("easy robots %d >= hard robots %d", easy.Gameplay.StartingRobots, hard.Gameplay.StartingRobots)
	}

	fixed := DefaultEaterConfig()
	fixed.Gameplay.Lives = 4
	ApplyEaterPreset(&fixed, DifficultyFixed)
	if fixed.Gameplay.Lives != 4 {
		t.Error("fixed preset changed the config")
	}

	normal := hard
	ApplyEaterPreset(&normal, DifficultyNormal)
	if normal.Settings() != DefaultEaterConfig().Settings() {
		t.Errorf("normal preset = %+v", normal.Settings())
	}

	for _, c := range []EaterConfig{easy, hard} {
		if s := c.Settings(); s != s.Normalize() {
			t.Errorf("preset outside allowed ranges: %+v", s)
		}
	}
}
