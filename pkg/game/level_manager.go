package game

import (
	"fmt"
	"io/fs"
	"log"

	"github.com/decker502/slingshot/pkg/config"
)

// LevelManager 关卡目录，按 1 开始的关卡号检索
type LevelManager struct {
	levels  []*config.LevelConfig
	current int
}

// NewLevelManager 用已排序的关卡列表创建目录
func NewLevelManager(levels []*config.LevelConfig) *LevelManager {
	return &LevelManager{levels: levels}
}

// LoadLevelManager 从文件系统目录加载全部关卡
func LoadLevelManager(fsys fs.FS, dir string) (*LevelManager, error) {
	levels, err := config.LoadLevelConfigs(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}
	log.Printf("[LevelManager] Loaded %d levels from %s", len(levels), dir)
	return NewLevelManager(levels), nil
}

// Level 返回第 n 关，不存在时返回 config.ErrLevelNotFound
func (lm *LevelManager) Level(n int) (*config.LevelConfig, error) {
	if n < 1 || n > len(lm.levels) {
		return nil, fmt.Errorf("level %d: %w", n, config.ErrLevelNotFound)
	}
	return lm.levels[n-1], nil
}

// GetLevel 返回第 n 关并记为当前关卡
// 不存在时记录日志并返回 nil，当前关卡不变
func (lm *LevelManager) GetLevel(n int) *config.LevelConfig {
	level, err := lm.Level(n)
	if err != nil {
		log.Printf("[LevelManager] %v", err)
		return nil
	}
	lm.current = n
	return level
}

// Current 当前关卡号，0 表示尚未选择
func (lm *LevelManager) Current() int {
	return lm.current
}

// HasNext 当前关卡之后是否还有关卡
func (lm *LevelManager) HasNext() bool {
	return lm.current < len(lm.levels)
}

// Next 前进到下一关，没有下一关时返回 nil
func (lm *LevelManager) Next() *config.LevelConfig {
	if !lm.HasNext() {
		return nil
	}
	return lm.GetLevel(lm.current + 1)
}

// Total 关卡总数
func (lm *LevelManager) Total() int {
	return len(lm.levels)
}
