package config

// 材质名称
const (
	MaterialWood   = "WOOD"
	MaterialStone  = "STONE"
	MaterialGlass  = "GLASS"
	MaterialBird   = "BIRD"
	MaterialPig    = "PIG"
	MaterialGround = "GROUND"
)

// 小鸟类型
const (
	BirdRed    = "RED"
	BirdBlue   = "BLUE"
	BirdBomb   = "BOMB"
	BirdYellow = "YELLOW"
)

// 方块类型
const (
	BlockWoodSmall   = "WOOD_SMALL"
	BlockWoodMedium  = "WOOD_MEDIUM"
	BlockWoodLarge   = "WOOD_LARGE"
	BlockStoneSmall  = "STONE_SMALL"
	BlockStoneMedium = "STONE_MEDIUM"
	BlockStoneLarge  = "STONE_LARGE"
	BlockGlassSmall  = "GLASS_SMALL"
	BlockGlassLarge  = "GLASS_LARGE"
)

// AbilityKind 小鸟技能类型
type AbilityKind string

const (
	AbilityNone    AbilityKind = "none"
	AbilitySplit   AbilityKind = "split"
	AbilityExplode AbilityKind = "explode"
	AbilityBoost   AbilityKind = "boost"
)

// Valid 是否为已知技能（空字符串视为 none）
func (a AbilityKind) Valid() bool {
	switch a {
	case "", AbilityNone, AbilitySplit, AbilityExplode, AbilityBoost:
		return true
	}
	return false
}

// MaterialConfig 物理材质
type MaterialConfig struct {
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
	MassFactor  float64 `yaml:"massFactor"` // 方块质量 = 体积 × MassFactor
}

// BirdTypeConfig 小鸟类型
type BirdTypeConfig struct {
	Radius  float64     `yaml:"radius"`
	Ability AbilityKind `yaml:"ability"`
	Color   string      `yaml:"color"` // 十六进制颜色，仅用于调试渲染
}

// BlockTypeConfig 方块类型
type BlockTypeConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Depth    float64 `yaml:"depth"`
	Material string  `yaml:"material"`
	Health   float64 `yaml:"health"`
}

// Volume 方块体积
func (b BlockTypeConfig) Volume() float64 {
	return b.Width * b.Height * b.Depth
}

// DefaultGameplayConfig 返回内置的玩法参数
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Physics: PhysicsConfig{
			Gravity:         -9.82,
			TimeStep:        1.0 / 60.0,
			MaxSubSteps:     3,
			MaxFrameDelta:   0.1,
			IslandSleepTime: 2,
		},
		Slingshot: SlingshotConfig{
			MaxPull:              3,
			Force:                15,
			RestOffset:           Vec3Config{Y: 1},
			GrabRadius:           3,
			ClickExclusionRadius: 5,
			TrajectorySteps:      30,
			TrajectoryTimeStep:   0.1,
		},
		Sequencing: SequencingConfig{
			LaunchLockout:       0.3,
			NextBirdOutOfBounds: 0.5,
			NextBirdStopped:     1.5,
			CompletionGrace:     1.0,
			RemovalDelay:        0.1,
			FadeSteps:           10,
			FadeInterval:        0.05,
			FadeStep:            0.1,
			TrailInterval:       0.1,
		},
		Bounds: BoundsConfig{
			MinY:       -5,
			MaxAbsX:    30,
			MaxAbsY:    20,
			StopSpeed:  0.5,
			StopHeight: 0.5,
			FloorY:     -10,
		},
		Damage: DamageConfig{
			Pig: DestructibleDamageConfig{
				LowSpeed:         5,
				LowDamage:        10,
				CollisionEnabled: true,
				ImpactThreshold:  2,
				ImpactMultiplier: 15,
				MaxImpactDamage:  100,
			},
			Block: DestructibleDamageConfig{
				LowSpeed:         5,
				LowDamage:        5,
				HighSpeed:        8,
				HighDamage:       20,
				ImpactThreshold:  2,
				ImpactMultiplier: 15,
				MaxImpactDamage:  100,
			},
		},
		Abilities: AbilitiesConfig{
			Split:   SplitConfig{Count: 3, SpreadDegrees: 1.5, Mass: 0.5, Scale: 0.7},
			Explode: ExplodeConfig{Radius: 3, Force: 15, BlockDamage: 30, PigDamage: 50},
			Boost:   BoostConfig{Speed: 20},
		},
		Scoring: ScoringConfig{
			PigDefeated:        5000,
			BlockDestroyed:     100,
			UnusedBird:         10000,
			TimeBonusPerSecond: 100,
			TimeBonusWindow:    60,
			OneStar:            10000,
			TwoStars:           30000,
			ThreeStars:         50000,
		},
		BirdBody: BirdBodyConfig{
			Mass:           1,
			LinearDamping:  0.1,
			AngularDamping: 0.5,
			SleepSpeed:     0.5,
			SleepTime:      1,
			Material:       MaterialBird,
		},
		Pig: PigConfig{
			Health:         100,
			Mass:           0.8,
			LinearDamping:  0.5,
			AngularDamping: 0.5,
			DefaultSize:    0.4,
			Material:       MaterialPig,
		},
		BlockBody: BlockBodyConfig{
			LinearDamping:  0.3,
			AngularDamping: 0.3,
			SleepSpeed:     0.05,
			SleepTime:      0.05,
			StartAsleep:    true,
		},
		Materials: map[string]MaterialConfig{
			MaterialWood:   {Density: 0.6, Friction: 0.3, Restitution: 0.2, MassFactor: 1},
			MaterialStone:  {Density: 2.0, Friction: 0.5, Restitution: 0.1, MassFactor: 2},
			MaterialGlass:  {Density: 0.4, Friction: 0.2, Restitution: 0.3, MassFactor: 0.5},
			MaterialBird:   {Density: 1.0, Friction: 0.3, Restitution: 0.3, MassFactor: 1},
			MaterialPig:    {Density: 0.8, Friction: 0.4, Restitution: 0.2, MassFactor: 1},
			MaterialGround: {Density: 0, Friction: 0.5, Restitution: 0.1, MassFactor: 0},
		},
		Birds: map[string]BirdTypeConfig{
			BirdRed:    {Radius: 0.3, Ability: AbilityNone, Color: "#ff3333"},
			BirdBlue:   {Radius: 0.25, Ability: AbilitySplit, Color: "#3399ff"},
			BirdBomb:   {Radius: 0.4, Ability: AbilityExplode, Color: "#222222"},
			BirdYellow: {Radius: 0.3, Ability: AbilityBoost, Color: "#ffdd22"},
		},
		Blocks: map[string]BlockTypeConfig{
			BlockWoodSmall:   {Width: 0.5, Height: 1, Depth: 0.5, Material: MaterialWood, Health: 3},
			BlockWoodMedium:  {Width: 1, Height: 1, Depth: 0.5, Material: MaterialWood, Health: 5},
			BlockWoodLarge:   {Width: 2, Height: 0.5, Depth: 0.5, Material: MaterialWood, Health: 7},
			BlockStoneSmall:  {Width: 0.5, Height: 1, Depth: 0.5, Material: MaterialStone, Health: 10},
			BlockStoneMedium: {Width: 1, Height: 1, Depth: 0.5, Material: MaterialStone, Health: 15},
			BlockStoneLarge:  {Width: 2, Height: 0.5, Depth: 0.5, Material: MaterialStone, Health: 20},
			BlockGlassSmall:  {Width: 0.5, Height: 1, Depth: 0.5, Material: MaterialGlass, Health: 1},
			BlockGlassLarge:  {Width: 2, Height: 0.5, Depth: 0.5, Material: MaterialGlass, Health: 2},
		},
	}
}
