package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GameConfig 场景与玩法配置
//
// 所有字段在加载时确定，运行期间只读。
// 加载时先填充 DefaultGameConfig()，再用 YAML 覆盖出现的字段，
// 因此配置文件只需要写出与默认值不同的部分。
//
// 配置文件位置: data/game.yaml（嵌入），可通过 --config 覆盖
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Timer      TimerConfig      `yaml:"timer"`
	Audio      AudioConfig      `yaml:"audio"`
	Foreground ForegroundConfig `yaml:"foreground"`
	Obstacles  []ObstacleConfig `yaml:"obstacles"`
	Flag       FlagConfig       `yaml:"flag"`
	Controls   ControlsConfig   `yaml:"controls"`
}

// WorldConfig 世界尺寸
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 玩家尺寸、速度与行走动画参数
type PlayerConfig struct {
	// 精灵（显示）尺寸
	SpriteWidth  float64 `yaml:"spriteWidth"`
	SpriteHeight float64 `yaml:"spriteHeight"`

	// 碰撞盒尺寸（用于移动、碰撞与边界）
	ColliderWidth  float64 `yaml:"colliderWidth"`
	ColliderHeight float64 `yaml:"colliderHeight"`

	// 可选：精灵相对碰撞盒的偏移
	// 未设置时水平居中、脚底对齐；显式写 0 表示不偏移
	SpriteOffsetX *float64 `yaml:"spriteOffsetX,omitempty"`
	SpriteOffsetY *float64 `yaml:"spriteOffsetY,omitempty"`

	// 行走起伏参数
	WalkBobAmplitude float64 `yaml:"walkBobAmplitude"` // 像素
	WalkBobFrequency float64 `yaml:"walkBobFrequency"` // Hz

	Speed float64 `yaml:"speed"` // 像素/秒

	// 出生点（碰撞盒左上角），StartY 未设置时贴近底部
	StartX float64  `yaml:"startX"`
	StartY *float64 `yaml:"startY,omitempty"`
}

// TimerConfig 倒计时配置
type TimerConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// AudioConfig 背景音乐配置
type AudioConfig struct {
	BGM       string  `yaml:"bgm"`       // 背景音乐文件路径
	BGMVolume float64 `yaml:"bgmVolume"` // 0..1
}

// ForegroundConfig 前景桌面层配置
// DeskY 与玩家"脚底"比较：脚底 > DeskY 时桌面绘制在玩家下层
type ForegroundConfig struct {
	DeskY float64 `yaml:"deskY"`
}

// ObstacleConfig 静态矩形障碍
type ObstacleConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"` // #rrggbb 或 #rgb
}

// FlagConfig 旗帜（胜利区域），X/Y 未设置时位于右下角
type FlagConfig struct {
	X      *float64 `yaml:"x,omitempty"`
	Y      *float64 `yaml:"y,omitempty"`
	Width  float64  `yaml:"width"`
	Height float64  `yaml:"height"`
}

// ControlsConfig 屏幕方向按钮配置
type ControlsConfig struct {
	// AlwaysVisible 为 true 时桌面端也显示方向按钮
	AlwaysVisible bool `yaml:"alwaysVisible"`
}

// DefaultObstacleColor 障碍未指定颜色时使用的颜色
const DefaultObstacleColor = "#2e355a"

// DefaultGameConfig 返回默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Player: PlayerConfig{
			SpriteWidth:      128 * 1.2,
			SpriteHeight:     256 * 1.2,
			ColliderWidth:    40,
			ColliderHeight:   40,
			WalkBobAmplitude: 4,
			WalkBobFrequency: 2.5,
			Speed:            200,
			StartX:           SpawnMargin,
		},
		Timer: TimerConfig{Seconds: 60},
		Audio: AudioConfig{
			BGM:       "assets/audio/bgm_main.mp3",
			BGMVolume: 0.5,
		},
		Foreground: ForegroundConfig{DeskY: 600},
		Obstacles: []ObstacleConfig{
			{X: 660, Y: 520, Width: 560, Height: 20, Color: "#39406a"},
		},
		Flag: FlagConfig{Width: 30, Height: 30},
	}
}

// ParseGameConfig 从 YAML 数据解析配置
//
// 参数：
//   - data: YAML 内容，空内容等价于默认配置
//
// 返回：
//   - *GameConfig: 合并默认值后的配置
//   - error: 解析或验证失败时返回错误
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// LoadGameConfig 从文件加载配置
//
// 参数：
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回：
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Marshal 将配置序列化为 YAML
func (c *GameConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game config: %w", err)
	}
	return data, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 世界、碰撞盒、精灵、旗帜、障碍尺寸必须为正
//   - 速度与倒计时必须为正
//   - 音量在 [0, 1] 内，起伏参数非负
//   - 障碍颜色可解析
func (c *GameConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("player.spriteWidth", c.Player.SpriteWidth)
	positive("player.spriteHeight", c.Player.SpriteHeight)
	positive("player.colliderWidth", c.Player.ColliderWidth)
	positive("player.colliderHeight", c.Player.ColliderHeight)
	positive("player.speed", c.Player.Speed)
	positive("timer.seconds", c.Timer.Seconds)
	positive("flag.width", c.Flag.Width)
	positive("flag.height", c.Flag.Height)

	if c.Player.WalkBobAmplitude < 0 {
		errs = append(errs, fmt.Errorf("player.walkBobAmplitude must be >= 0, got %v", c.Player.WalkBobAmplitude))
	}
	if c.Player.WalkBobFrequency < 0 {
		errs = append(errs, fmt.Errorf("player.walkBobFrequency must be >= 0, got %v", c.Player.WalkBobFrequency))
	}
	if c.Audio.BGMVolume < 0 || c.Audio.BGMVolume > 1 {
		errs = append(errs, fmt.Errorf("audio.bgmVolume must be in [0, 1], got %v", c.Audio.BGMVolume))
	}
	if c.Player.ColliderWidth > c.World.Width || c.Player.ColliderHeight > c.World.Height {
		errs = append(errs, errors.New("player collider does not fit in world"))
	}

	for i, o := range c.Obstacles {
		if o.Width <= 0 || o.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacles[%d] size must be > 0, got %vx%v", i, o.Width, o.Height))
		}
		if o.Color != "" {
			if _, err := ParseHexColor(o.Color); err != nil {
				errs = append(errs, fmt.Errorf("obstacles[%d]: %w", i, err))
			}
		}
	}

	return errors.Join(errs...)
}

// ScreenSize 返回与世界尺寸一致的逻辑屏幕尺寸（向上取整到整数像素）
func (c *GameConfig) ScreenSize() (width, height int) {
	return int(math.Ceil(c.World.Width)), int(math.Ceil(c.World.Height))
}

// PlayerStartY 返回出生点 Y（未配置时贴近底部）
func (c *GameConfig) PlayerStartY() float64 {
	if c.Player.StartY != nil {
		return *c.Player.StartY
	}
	return DefaultPlayerStartY(c.World.Height, c.Player.ColliderHeight)
}

// FlagPosition 返回旗帜左上角（未配置时位于右下角）
func (c *GameConfig) FlagPosition() (x, y float64) {
	x, y = DefaultFlagPosition(c.World.Width, c.World.Height)
	if c.Flag.X != nil {
		x = *c.Flag.X
	}
	if c.Flag.Y != nil {
		y = *c.Flag.Y
	}
	return x, y
}

// SpriteOffset 返回精灵相对碰撞盒左上角的绘制偏移
// 默认水平居中、脚底对齐，像素取整
func (c *GameConfig) SpriteOffset() (x, y float64) {
	p := c.Player
	x = roundHalfUp((p.ColliderWidth - p.SpriteWidth) / 2)
	y = roundHalfUp(p.ColliderHeight - p.SpriteHeight)
	if p.SpriteOffsetX != nil {
		x = *p.SpriteOffsetX
	}
	if p.SpriteOffsetY != nil {
		y = *p.SpriteOffsetY
	}
	return x, y
}

// roundHalfUp 四舍五入，.5 向正无穷取整（-56.8 -> -57, -2.5 -> -2）
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// ParseHexColor 解析 #rrggbb / #rgb 颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
