package config

import (
	"fmt"
	"image/color"

	"gopkg.in/yaml.v3"
)

// TankConfigPath 嵌入资源中的水槽配置路径
const TankConfigPath = "data/tank.yaml"

// TankConfig 水槽场景配置
//
// 所有值都是编译期固定的字面量，来自嵌入的 data/tank.yaml。
// 坐标使用世界坐标系：原点在左下角，Y 轴向上。
type TankConfig struct {
	Scene   SceneConfig   `yaml:"scene"`
	Touch   TouchConfig   `yaml:"touch"`
	Wander  WanderConfig  `yaml:"wander"`
	Food    FoodConfig    `yaml:"food"`
	Marker  MarkerConfig  `yaml:"marker"`
	Sprites SpritesConfig `yaml:"sprites"`
	Physics PhysicsConfig `yaml:"physics"`
}

// SceneConfig 场景尺寸与背景
type SceneConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	BackgroundColor string `yaml:"backgroundColor"` // "#rrggbb"
	// TankHeightRatio 水槽背景高度占场景高度的比例
	TankHeightRatio float64 `yaml:"tankHeightRatio"`
	// TankCenterRatio 水槽背景中心Y占场景高度的比例
	TankCenterRatio float64 `yaml:"tankCenterRatio"`
}

// TouchConfig 触摸投食配置
type TouchConfig struct {
	// ThresholdRatio 触摸点Y >= Height*ThresholdRatio 时投食，否则忽略
	ThresholdRatio float64 `yaml:"thresholdRatio"`
}

// WanderConfig 鱼游动配置
type WanderConfig struct {
	Range        float64 `yaml:"range"`        // 每次偏移的最大绝对值（像素）
	Interval     float64 `yaml:"interval"`     // 两次选点之间的间隔（秒）
	MoveDuration float64 `yaml:"moveDuration"` // 每次移动耗时（秒）
}

// FoodConfig 饵料配置
type FoodConfig struct {
	FallSpeed float64 `yaml:"fallSpeed"` // 下落速度（像素/秒）
}

// MarkerConfig 爱心标记配置
type MarkerConfig struct {
	FadeDuration float64 `yaml:"fadeDuration"` // 淡出耗时（秒）
}

// SpriteSize 精灵尺寸（像素）
type SpriteSize struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SpritesConfig 程序生成精灵的尺寸
type SpritesConfig struct {
	Fish  SpriteSize `yaml:"fish"`
	Food  SpriteSize `yaml:"food"`
	Heart SpriteSize `yaml:"heart"`
}

// PhysicsConfig 物理步进配置
type PhysicsConfig struct {
	// MaxSubsteps 精确碰撞检测时单帧最多拆分的子步数
	MaxSubsteps int `yaml:"maxSubsteps"`
}

// DefaultTankConfig 返回与 data/tank.yaml 一致的默认配置
func DefaultTankConfig() *TankConfig {
	return &TankConfig{
		Scene: SceneConfig{
			Width:           400,
			Height:          1000,
			BackgroundColor: "#ffffff",
			TankHeightRatio: 0.8,
			TankCenterRatio: 0.4,
		},
		Touch:  TouchConfig{ThresholdRatio: 0.8},
		Wander: WanderConfig{Range: 100, Interval: 1.0, MoveDuration: 1.0},
		Food:   FoodConfig{FallSpeed: 100},
		Marker: MarkerConfig{FadeDuration: 0.5},
		Sprites: SpritesConfig{
			Fish:  SpriteSize{Width: 60, Height: 36},
			Food:  SpriteSize{Width: 16, Height: 16},
			Heart: SpriteSize{Width: 28, Height: 26},
		},
		Physics: PhysicsConfig{MaxSubsteps: 16},
	}
}

// ParseTankConfig 解析 YAML 格式的水槽配置
//
// 未出现在文档中的字段保留默认值。
//
// 参数:
//   - data: YAML 文档内容
//
// 返回:
//   - *TankConfig: 解析并验证后的配置
//   - error: 解析或验证失败时返回错误
func ParseTankConfig(data []byte) (*TankConfig, error) {
	cfg := DefaultTankConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tank config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tank config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *TankConfig) Validate() error {
	if c.Scene.Width <= 0 || c.Scene.Height <= 0 {
		return fmt.Errorf("scene size must be positive, got %dx%d", c.Scene.Width, c.Scene.Height)
	}
	if _, err := c.Scene.Background(); err != nil {
		return err
	}
	if c.Touch.ThresholdRatio < 0 || c.Touch.ThresholdRatio > 1 {
		return fmt.Errorf("touch threshold ratio must be within [0, 1], got %.2f", c.Touch.ThresholdRatio)
	}
	if c.Wander.Range < 0 {
		return fmt.Errorf("wander range must not be negative, got %.1f", c.Wander.Range)
	}
	if c.Wander.Interval <= 0 || c.Wander.MoveDuration <= 0 {
		return fmt.Errorf("wander interval and move duration must be positive, got %.2f/%.2f",
			c.Wander.Interval, c.Wander.MoveDuration)
	}
	if c.Food.FallSpeed <= 0 {
		return fmt.Errorf("food fall speed must be positive, got %.1f", c.Food.FallSpeed)
	}
	if c.Marker.FadeDuration <= 0 {
		return fmt.Errorf("marker fade duration must be positive, got %.2f", c.Marker.FadeDuration)
	}
	for name, size := range map[string]SpriteSize{
		"fish":  c.Sprites.Fish,
		"food":  c.Sprites.Food,
		"heart": c.Sprites.Heart,
	} {
		if size.Width <= 0 || size.Height <= 0 {
			return fmt.Errorf("sprite %s size must be positive, got %dx%d", name, size.Width, size.Height)
		}
	}
	if c.Physics.MaxSubsteps < 1 {
		return fmt.Errorf("physics max substeps must be at least 1, got %d", c.Physics.MaxSubsteps)
	}
	return nil
}

// Background 解析背景颜色
func (s SceneConfig) Background() (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s.BackgroundColor, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid background color %q: %w", s.BackgroundColor, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// TouchThreshold 返回投食触摸的最小Y坐标（世界坐标）
func (c *TankConfig) TouchThreshold() float64 {
	return float64(c.Scene.Height) * c.Touch.ThresholdRatio
}

// TankCenter 返回水槽（场景）中心点，鱼的出生位置
func (c *TankConfig) TankCenter() (float64, float64) {
	return float64(c.Scene.Width) * 0.5, float64(c.Scene.Height) * 0.5
}
