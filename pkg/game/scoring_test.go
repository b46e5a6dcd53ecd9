package game

import (
	"testing"

	"github.com/decker502/slingshot/pkg/config"
)

func TestTimeBonus(t *testing.T) {
	s := config.DefaultGameplayConfig().Scoring

	tests := []struct {
		name    string
		elapsed float64
		want    int
	}{
		{"立即通关", 0, 6000},
		{"10秒", 10, 5000},
		{"小数秒向下取整", 10.555, 4944},
		{"刚好60秒", 60, 0},
		{"超时", 75, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TimeBonus(tt.elapsed, s); got != tt.want {
				t.Errorf("TimeBonus(%v) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestBirdBonus(t *testing.T) {
	s := config.DefaultGameplayConfig().Scoring
	if got := BirdBonus(2, s); got != 20000 {
		t.Errorf("BirdBonus(2) = %d, want 20000", got)
	}
	if got := BirdBonus(-1, s); got != 0 {
		t.Errorf("BirdBonus(-1) = %d, want 0", got)
	}
}

func TestStarsFor(t *testing.T) {
	s := config.DefaultGameplayConfig().Scoring

	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"零分", 0, 1},
		{"低于两星", 29999, 1},
		{"两星边界", 30000, 2},
		{"低于三星", 49999, 2},
		{"三星边界", 50000, 3},
		{"高分", 120000, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StarsFor(tt.score, s); got != tt.want {
				t.Errorf("StarsFor(%d) = %d, want %d", tt.score, got, tt.want)
			}
		})
	}
}

// 单猪关卡、两只鸟用一只、10秒通关
func TestWinScoreExample(t *testing.T) {
	s := config.DefaultGameplayConfig().Scoring
	score := s.PigDefeated
	score += TimeBonus(10, s) + BirdBonus(1, s)

	if score != 20000 {
		t.Errorf("score = %d, want 20000", score)
	}
	if StarsFor(score, s) != 1 {
		t.Errorf("20000 should be one star")
	}
}
