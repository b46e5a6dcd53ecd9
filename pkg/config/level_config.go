package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrLevelNotFound 请求的关卡编号不存在
var ErrLevelNotFound = errors.New("level not found")

// LevelConfig 关卡描述
// 定义了弹弓位置、小鸟发射顺序、猪和建筑的摆放以及相机取景
type LevelConfig struct {
	LevelNumber int              `yaml:"levelNumber"` // 关卡编号，从 1 开始连续
	Name        string           `yaml:"name"`        // 关卡名称，如 "Getting Started"
	Birds       []BirdSpawn      `yaml:"birds"`       // 小鸟列表，按顺序依次装填
	Pigs        []PigSpawn       `yaml:"pigs"`        // 猪列表
	Structures  []StructureSpawn `yaml:"structures"`  // 建筑方块列表
	Slingshot   Vec3Config       `yaml:"slingshot"`   // 弹弓底座位置
	Camera      CameraConfig     `yaml:"camera"`      // 相机取景
}

// BirdSpawn 小鸟出生配置
type BirdSpawn struct {
	Type     string     `yaml:"type"`     // 小鸟类型："RED", "BLUE", "BOMB", "YELLOW"
	Position Vec3Config `yaml:"position"` // 等待区位置
}

// PigSpawn 猪出生配置
type PigSpawn struct {
	Position Vec3Config `yaml:"position"`
	Size     float64    `yaml:"size"` // 球体半径，默认 0.4
}

// StructureSpawn 建筑方块配置
type StructureSpawn struct {
	Type     string     `yaml:"type"`     // 方块类型，如 "WOOD_SMALL"
	Position Vec3Config `yaml:"position"` // 方块中心
	Rotation float64    `yaml:"rotation"` // 绕 Z 轴旋转（弧度），可选
}

// CameraConfig 相机取景
type CameraConfig struct {
	Position Vec3Config `yaml:"position"`
	LookAt   Vec3Config `yaml:"lookAt"`
}

// LoadLevelConfig 从YAML文件加载关卡配置
// 参数：
//
//	filepath - 关卡配置文件的路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的关卡配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}
	return parseLevelConfig(data, filepath)
}

// LoadLevelConfigs 加载目录下全部 *.yaml 关卡
//
// 返回的关卡按 LevelNumber 升序排列，编号必须从 1 开始连续且不重复。
func LoadLevelConfigs(fsys fs.FS, dir string) ([]*LevelConfig, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list level files in %s: %w", dir, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no level files found in %s", dir)
	}

	levels := make([]*LevelConfig, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read level config file %s: %w", file, err)
		}
		level, err := parseLevelConfig(data, file)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].LevelNumber < levels[j].LevelNumber
	})
	for i, level := range levels {
		if level.LevelNumber != i+1 {
			return nil, fmt.Errorf("level numbers must be sequential from 1: expected %d, got %d (%s)", i+1, level.LevelNumber, level.Name)
		}
	}
	return levels, nil
}

func parseLevelConfig(data []byte, source string) (*LevelConfig, error) {
	var levelConfig LevelConfig
	if err := yaml.Unmarshal(data, &levelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", source, err)
	}

	applyDefaults(&levelConfig)

	if err := validateLevelConfig(&levelConfig); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", source, err)
	}
	return &levelConfig, nil
}

// applyDefaults 为 LevelConfig 中缺失的可选字段设置默认值
func applyDefaults(config *LevelConfig) {
	for i := range config.Pigs {
		if config.Pigs[i].Size == 0 {
			config.Pigs[i].Size = 0.4
		}
	}

	if config.Slingshot.IsZero() {
		config.Slingshot = Vec3Config{X: -8, Y: 0, Z: 0}
	}

	if config.Camera.Position.IsZero() {
		config.Camera.Position = Vec3Config{X: 0, Y: 5, Z: 15}
	}
	if config.Camera.LookAt.IsZero() {
		config.Camera.LookAt = Vec3Config{X: config.Camera.Position.X, Y: 2, Z: 0}
	}
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.LevelNumber < 1 {
		return fmt.Errorf("levelNumber must be at least 1, got %d", config.LevelNumber)
	}

	if config.Name == "" {
		return fmt.Errorf("level name is required")
	}

	if len(config.Birds) == 0 {
		return fmt.Errorf("at least one bird is required")
	}
	for i, bird := range config.Birds {
		if bird.Type == "" {
			return fmt.Errorf("bird %d: type is required", i)
		}
	}

	if len(config.Pigs) == 0 {
		return fmt.Errorf("at least one pig is required")
	}
	for i, pig := range config.Pigs {
		if pig.Size < 0 {
			return fmt.Errorf("pig %d: size must be positive, got %v", i, pig.Size)
		}
	}

	for i, s := range config.Structures {
		if s.Type == "" {
			return fmt.Errorf("structure %d: type is required", i)
		}
	}

	return nil
}
