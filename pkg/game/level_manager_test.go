package game

import (
	"errors"
	"os"
	"testing"
	"testing/fstest"

	"github.com/decker502/slingshot/pkg/config"
)

func testLevels(n int) []*config.LevelConfig {
	levels := make([]*config.LevelConfig, n)
	for i := range levels {
		levels[i] = &config.LevelConfig{LevelNumber: i + 1}
	}
	return levels
}

func TestLevelManagerLookup(t *testing.T) {
	lm := NewLevelManager(testLevels(3))

	tests := []struct {
		name    string
		n       int
		wantErr bool
	}{
		{"第一关", 1, false},
		{"最后一关", 3, false},
		{"零", 0, true},
		{"越界", 4, true},
		{"负数", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := lm.Level(tt.n)
			if tt.wantErr {
				if !errors.Is(err, config.ErrLevelNotFound) {
					t.Errorf("Level(%d) error = %v, want ErrLevelNotFound", tt.n, err)
				}
				return
			}
			if err != nil || level.LevelNumber != tt.n {
				t.Errorf("Level(%d) = %+v, %v", tt.n, level, err)
			}
		})
	}
}

func TestLevelManagerProgression(t *testing.T) {
	lm := NewLevelManager(testLevels(2))

	if lm.GetLevel(7) != nil {
		t.Fatal("missing level should return nil")
	}
	if lm.Current() != 0 {
		t.Error("failed lookup must not change the current level")
	}

	lm.GetLevel(1)
	if !lm.HasNext() {
		t.Error("level 1 of 2 has a next level")
	}
	next := lm.Next()
	if next == nil || next.LevelNumber != 2 || lm.Current() != 2 {
		t.Fatalf("Next() = %+v, current %d", next, lm.Current())
	}
	if lm.HasNext() || lm.Next() != nil {
		t.Error("last level has no next level")
	}
	if lm.Total() != 2 {
		t.Errorf("Total = %d, want 2", lm.Total())
	}
}

func TestLoadLevelManager(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/a.yaml": {Data: []byte("levelNumber: 1\nname: Test\nbirds:\n  - type: RED\npigs:\n  - position: {x: 5}\n")},
	}
	lm, err := LoadLevelManager(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadLevelManager failed: %v", err)
	}
	if lm.Total() != 1 {
		t.Errorf("Total = %d, want 1", lm.Total())
	}

	if _, err := LoadLevelManager(fsys, "missing"); err == nil {
		t.Error("empty directory should fail")
	}
}

func TestLoadBundledLevels(t *testing.T) {
	lm, err := LoadLevelManager(os.DirFS("../../data"), "levels")
	if err != nil {
		t.Fatalf("bundled levels failed to load: %v", err)
	}
	if lm.Total() != 5 {
		t.Errorf("Total = %d, want 5", lm.Total())
	}
}
