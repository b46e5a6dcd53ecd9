package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// LevelRecord 单个关卡的最佳成绩
type LevelRecord struct {
	BestScore int  `yaml:"bestScore"`
	Stars     int  `yaml:"stars"`
	Completed bool `yaml:"completed"`
	Attempts  int  `yaml:"attempts"`
}

// Progress 玩家进度
type Progress struct {
	Levels           map[int]LevelRecord `yaml:"levels"`
	HighestCompleted int                 `yaml:"highestCompleted"`
}

func newProgress() *Progress {
	return &Progress{Levels: make(map[int]LevelRecord)}
}

// ProgressManager 进度管理器
// 负责关卡成绩的加载、保存和更新
type ProgressManager struct {
	gdataManager *gdata.Manager // 可为 nil（降级模式，仅内存进度）
	progress     *Progress
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "levels"
)

// NewProgressManager 创建进度管理器并尝试加载已保存的进度
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil
//
// 加载失败不影响创建，使用空进度
func NewProgressManager(gdataManager *gdata.Manager) *ProgressManager {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		progress:     newProgress(),
	}
	if err := pm.Load(); err != nil {
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}
	return pm
}

// Load 从 gdata 加载进度
func (pm *ProgressManager) Load() error {
	if pm.gdataManager == nil {
		pm.progress = newProgress()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		pm.progress = newProgress()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		pm.progress = newProgress()
		return fmt.Errorf("failed to load progress: %w", err)
	}

	loaded := newProgress()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		pm.progress = newProgress()
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	if loaded.Levels == nil {
		loaded.Levels = make(map[int]LevelRecord)
	}

	pm.progress = loaded
	log.Printf("[ProgressManager] Progress loaded: %d levels recorded", len(loaded.Levels))
	return nil
}

// Save 保存进度到 gdata，降级模式下不做任何事
func (pm *ProgressManager) Save() error {
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.progress)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// RecordResult 记录一次关卡结果，返回是否刷新了最高分
// 仅在内存中更新，需调用 Save() 持久化
func (pm *ProgressManager) RecordResult(level, score, stars int, won bool) bool {
	rec := pm.progress.Levels[level]
	rec.Attempts++

	newBest := false
	if won {
		rec.Completed = true
		if score > rec.BestScore {
			rec.BestScore = score
			newBest = true
		}
		if stars > rec.Stars {
			rec.Stars = stars
		}
		if level > pm.progress.HighestCompleted {
			pm.progress.HighestCompleted = level
		}
	}

	pm.progress.Levels[level] = rec
	return newBest
}

// Best 返回关卡记录
func (pm *ProgressManager) Best(level int) (LevelRecord, bool) {
	rec, ok := pm.progress.Levels[level]
	return rec, ok
}

// HighestCompleted 已通关的最高关卡号
func (pm *ProgressManager) HighestCompleted() int {
	return pm.progress.HighestCompleted
}

// IsUnlocked 第 1 关总是解锁，其余关卡需通过前一关
func (pm *ProgressManager) IsUnlocked(level int) bool {
	return level <= 1 || level <= pm.progress.HighestCompleted+1
}
