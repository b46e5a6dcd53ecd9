package game

import (
	"math"

	"github.com/decker502/slingshot/pkg/config"
)

// TimeBonus 时间奖励：(窗口 - 用时) × 每秒分数，不低于 0，向下取整
func TimeBonus(elapsed float64, s config.ScoringConfig) int {
	remaining := math.Max(0, s.TimeBonusWindow-elapsed)
	return int(math.Floor(remaining * s.TimeBonusPerSecond))
}

// BirdBonus 未使用小鸟奖励
func BirdBonus(unused int, s config.ScoringConfig) int {
	if unused <= 0 {
		return 0
	}
	return unused * s.UnusedBird
}

// StarsFor 根据最终分数计算星级（1-3）
func StarsFor(score int, s config.ScoringConfig) int {
	switch {
	case score >= s.ThreeStars:
		return 3
	case score >= s.TwoStars:
		return 2
	default:
		return 1
	}
}
