package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameplayConfig 玩法核心的全部可调参数
//
// 配置文件位置: data/gameplay.yaml
// YAML 只需写出要覆盖的字段，其余使用 DefaultGameplayConfig 的内置值。
// 注意：materials/birds/blocks 目录按条目整体覆盖。
type GameplayConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Slingshot  SlingshotConfig  `yaml:"slingshot"`
	Sequencing SequencingConfig `yaml:"sequencing"`
	Bounds     BoundsConfig     `yaml:"bounds"`
	Damage     DamageConfig     `yaml:"damage"`
	Abilities  AbilitiesConfig  `yaml:"abilities"`
	Scoring    ScoringConfig    `yaml:"scoring"`

	BirdBody  BirdBodyConfig  `yaml:"birdBody"`
	Pig       PigConfig       `yaml:"pig"`
	BlockBody BlockBodyConfig `yaml:"blockBody"`

	Materials map[string]MaterialConfig  `yaml:"materials"`
	Birds     map[string]BirdTypeConfig  `yaml:"birds"`
	Blocks    map[string]BlockTypeConfig `yaml:"blocks"`
}

// PhysicsConfig 物理世界参数
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`       // Y 轴重力加速度（负值向下）
	TimeStep      float64 `yaml:"timeStep"`      // 固定子步长（秒）
	MaxSubSteps   int     `yaml:"maxSubSteps"`   // 每次 Step 最多子步数
	MaxFrameDelta float64 `yaml:"maxFrameDelta"` // 单帧 deltaTime 上限（秒）
	// IslandSleepTime 接触连通的一组刚体整体静止超过该时长后一起休眠，0 表示关闭
	IslandSleepTime float64 `yaml:"islandSleepTime"`
}

// SlingshotConfig 弹弓参数
type SlingshotConfig struct {
	MaxPull              float64    `yaml:"maxPull"`              // 最大拉动距离
	Force                float64    `yaml:"force"`                // 发射力倍率
	RestOffset           Vec3Config `yaml:"restOffset"`           // 静止点相对弹弓位置的偏移
	GrabRadius           float64    `yaml:"grabRadius"`           // 可抓取半径（以静止点为圆心）
	ClickExclusionRadius float64    `yaml:"clickExclusionRadius"` // 该半径内的点击不触发技能
	TrajectorySteps      int        `yaml:"trajectorySteps"`      // 轨迹预测点数
	TrajectoryTimeStep   float64    `yaml:"trajectoryTimeStep"`   // 轨迹预测时间增量（秒）
}

// SequencingConfig 小鸟轮换与关卡结算的延时参数（单位：秒）
type SequencingConfig struct {
	LaunchLockout       float64 `yaml:"launchLockout"`
	NextBirdOutOfBounds float64 `yaml:"nextBirdOutOfBounds"`
	NextBirdStopped     float64 `yaml:"nextBirdStopped"`
	CompletionGrace     float64 `yaml:"completionGrace"`
	RemovalDelay        float64 `yaml:"removalDelay"`
	FadeSteps           int     `yaml:"fadeSteps"`
	FadeInterval        float64 `yaml:"fadeInterval"`
	FadeStep            float64 `yaml:"fadeStep"`
	TrailInterval       float64 `yaml:"trailInterval"`
}

// BoundsConfig 出界与停止判定
type BoundsConfig struct {
	MinY       float64 `yaml:"minY"`       // 低于此高度视为出界
	MaxAbsX    float64 `yaml:"maxAbsX"`    // |x| 超过视为出界
	MaxAbsY    float64 `yaml:"maxAbsY"`    // |y| 超过视为出界
	StopSpeed  float64 `yaml:"stopSpeed"`  // 低于此速度且贴近地面视为停止
	StopHeight float64 `yaml:"stopHeight"` // 贴近地面的高度阈值
	FloorY     float64 `yaml:"floorY"`     // 猪/方块跌落到此高度以下直接判定击毁
}

// DamageConfig 伤害模型
type DamageConfig struct {
	Pig   DestructibleDamageConfig `yaml:"pig"`
	Block DestructibleDamageConfig `yaml:"block"`
}

// DestructibleDamageConfig 单类可破坏实体的伤害参数
//
// 速度伤害为两档：速度 > HighSpeed 取 HighDamage，否则速度 > LowSpeed 取 LowDamage。
// HighSpeed <= 0 表示不启用高档。
type DestructibleDamageConfig struct {
	LowSpeed   float64 `yaml:"lowSpeed"`
	LowDamage  float64 `yaml:"lowDamage"`
	HighSpeed  float64 `yaml:"highSpeed"`
	HighDamage float64 `yaml:"highDamage"`

	CollisionEnabled bool    `yaml:"collisionEnabled"`
	ImpactThreshold  float64 `yaml:"impactThreshold"`
	ImpactMultiplier float64 `yaml:"impactMultiplier"`
	MaxImpactDamage  float64 `yaml:"maxImpactDamage"`
}

// AbilitiesConfig 技能参数
type AbilitiesConfig struct {
	Split   SplitConfig   `yaml:"split"`
	Explode ExplodeConfig `yaml:"explode"`
	Boost   BoostConfig   `yaml:"boost"`
}

// SplitConfig 分裂技能
type SplitConfig struct {
	Count         int     `yaml:"count"`
	SpreadDegrees float64 `yaml:"spreadDegrees"`
	Mass          float64 `yaml:"mass"`
	Scale         float64 `yaml:"scale"`
}

// ExplodeConfig 爆炸技能
type ExplodeConfig struct {
	Radius      float64 `yaml:"radius"`
	Force       float64 `yaml:"force"`
	BlockDamage float64 `yaml:"blockDamage"`
	PigDamage   float64 `yaml:"pigDamage"`
}

// BoostConfig 加速技能
type BoostConfig struct {
	Speed float64 `yaml:"speed"`
}

// ScoringConfig 计分参数
type ScoringConfig struct {
	PigDefeated        int     `yaml:"pigDefeated"`
	BlockDestroyed     int     `yaml:"blockDestroyed"`
	UnusedBird         int     `yaml:"unusedBird"`
	TimeBonusPerSecond float64 `yaml:"timeBonusPerSecond"`
	TimeBonusWindow    float64 `yaml:"timeBonusWindow"`
	OneStar            int     `yaml:"oneStar"`
	TwoStars           int     `yaml:"twoStars"`
	ThreeStars         int     `yaml:"threeStars"`
}

// BirdBodyConfig 小鸟刚体参数（所有类型共用）
type BirdBodyConfig struct {
	Mass           float64 `yaml:"mass"`
	LinearDamping  float64 `yaml:"linearDamping"`
	AngularDamping float64 `yaml:"angularDamping"`
	SleepSpeed     float64 `yaml:"sleepSpeed"`
	SleepTime      float64 `yaml:"sleepTime"`
	Material       string  `yaml:"material"`
}

// PigConfig 猪的参数
type PigConfig struct {
	Health         float64 `yaml:"health"`
	Mass           float64 `yaml:"mass"`
	LinearDamping  float64 `yaml:"linearDamping"`
	AngularDamping float64 `yaml:"angularDamping"`
	DefaultSize    float64 `yaml:"defaultSize"`
	Material       string  `yaml:"material"`
}

// BlockBodyConfig 方块刚体参数（所有类型共用）
type BlockBodyConfig struct {
	LinearDamping  float64 `yaml:"linearDamping"`
	AngularDamping float64 `yaml:"angularDamping"`
	SleepSpeed     float64 `yaml:"sleepSpeed"`
	SleepTime      float64 `yaml:"sleepTime"`
	StartAsleep    bool    `yaml:"startAsleep"`
}

// LoadGameplayConfig 从 YAML 文件加载玩法配置
// 参数：
//
//	filepath - 配置文件路径
//
// 返回：
//
//	*GameplayConfig - 合并了内置默认值的配置
//	error - 读取、解析或校验失败
func LoadGameplayConfig(filepath string) (*GameplayConfig, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config file %s: %w", filepath, err)
	}
	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析 YAML 数据，未出现的字段保留默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}
	return cfg, nil
}

// Validate 校验配置的合法性
func (c *GameplayConfig) Validate() error {
	if c.Physics.TimeStep <= 0 {
		return fmt.Errorf("physics.timeStep must be positive, got %v", c.Physics.TimeStep)
	}
	if c.Physics.MaxSubSteps < 1 {
		return fmt.Errorf("physics.maxSubSteps must be at least 1, got %d", c.Physics.MaxSubSteps)
	}
	if c.Physics.MaxFrameDelta <= 0 {
		return fmt.Errorf("physics.maxFrameDelta must be positive, got %v", c.Physics.MaxFrameDelta)
	}
	if c.Physics.IslandSleepTime < 0 {
		return fmt.Errorf("physics.islandSleepTime cannot be negative, got %v", c.Physics.IslandSleepTime)
	}
	if c.Slingshot.MaxPull <= 0 {
		return fmt.Errorf("slingshot.maxPull must be positive, got %v", c.Slingshot.MaxPull)
	}
	if c.Slingshot.TrajectoryTimeStep <= 0 {
		return fmt.Errorf("slingshot.trajectoryTimeStep must be positive, got %v", c.Slingshot.TrajectoryTimeStep)
	}
	if c.Sequencing.FadeSteps < 0 {
		return fmt.Errorf("sequencing.fadeSteps cannot be negative, got %d", c.Sequencing.FadeSteps)
	}
	if c.Abilities.Split.Count < 1 {
		return fmt.Errorf("abilities.split.count must be at least 1, got %d", c.Abilities.Split.Count)
	}
	if c.Abilities.Explode.Radius <= 0 {
		return fmt.Errorf("abilities.explode.radius must be positive, got %v", c.Abilities.Explode.Radius)
	}
	if c.Pig.Health <= 0 {
		return fmt.Errorf("pig.health must be positive, got %v", c.Pig.Health)
	}
	if c.Scoring.TwoStars > c.Scoring.ThreeStars {
		return fmt.Errorf("scoring.twoStars (%d) must not exceed scoring.threeStars (%d)", c.Scoring.TwoStars, c.Scoring.ThreeStars)
	}

	for name, m := range c.Materials {
		if m.Friction < 0 || m.Restitution < 0 {
			return fmt.Errorf("material %s: friction and restitution cannot be negative", name)
		}
	}
	if _, ok := c.Materials[c.BirdBody.Material]; !ok {
		return fmt.Errorf("birdBody.material %q is not a known material", c.BirdBody.Material)
	}
	if _, ok := c.Materials[c.Pig.Material]; !ok {
		return fmt.Errorf("pig.material %q is not a known material", c.Pig.Material)
	}
	if _, ok := c.Materials[MaterialGround]; !ok {
		return fmt.Errorf("material %s is required", MaterialGround)
	}

	for name, b := range c.Birds {
		if b.Radius <= 0 {
			return fmt.Errorf("bird %s: radius must be positive, got %v", name, b.Radius)
		}
		if !b.Ability.Valid() {
			return fmt.Errorf("bird %s: unknown ability %q", name, b.Ability)
		}
	}
	for name, b := range c.Blocks {
		if b.Width <= 0 || b.Height <= 0 || b.Depth <= 0 {
			return fmt.Errorf("block %s: dimensions must be positive", name)
		}
		if b.Health <= 0 {
			return fmt.Errorf("block %s: health must be positive, got %v", name, b.Health)
		}
		if _, ok := c.Materials[b.Material]; !ok {
			return fmt.Errorf("block %s: unknown material %q", name, b.Material)
		}
	}
	return nil
}

// CheckLevel 校验关卡引用的小鸟/方块类型都存在于目录中
func (c *GameplayConfig) CheckLevel(level *LevelConfig) error {
	for i, b := range level.Birds {
		if _, ok := c.Birds[b.Type]; !ok {
			return fmt.Errorf("level %d bird %d: unknown bird type %q", level.LevelNumber, i, b.Type)
		}
	}
	for i, s := range level.Structures {
		if _, ok := c.Blocks[s.Type]; !ok {
			return fmt.Errorf("level %d structure %d: unknown block type %q", level.LevelNumber, i, s.Type)
		}
	}
	return nil
}
