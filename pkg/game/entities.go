package game

import (
	"image/color"

	"github.com/Drodd/2dBakery/pkg/config"
)

// Direction 玩家朝向，仅用于选择精灵，不参与模拟
type Direction int

const (
	DirectionDown Direction = iota
	DirectionUp
	DirectionLeft
	DirectionRight
)

// AllDirections 按固定顺序列出四个方向
var AllDirections = [...]Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// String 返回方向名称
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection 将名称解析为方向
func ParseDirection(s string) (Direction, bool) {
	for _, d := range AllDirections {
		if d.String() == s {
			return d, true
		}
	}
	return DirectionDown, false
}

// Rect 轴对齐矩形，(X, Y) 为左上角
type Rect struct {
	X, Y, W, H float64
}

// Overlaps 判断两个矩形是否重叠
// 只有一方完全位于另一方某一侧时才视为不重叠，边界相接也算重叠
func (r Rect) Overlaps(o Rect) bool {
	return !(r.X+r.W < o.X ||
		r.X > o.X+o.W ||
		r.Y+r.H < o.Y ||
		r.Y > o.Y+o.H)
}

// Bottom 返回矩形底边 Y
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Player 玩家实体
// X/Y 为碰撞盒左上角，仅由模拟步进修改
type Player struct {
	X, Y           float64
	ColliderWidth  float64
	ColliderHeight float64
	SpriteWidth    float64
	SpriteHeight   float64
	Speed          float64 // 像素/秒
	Direction      Direction
}

// Collider 返回玩家当前碰撞盒
func (p *Player) Collider() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.ColliderWidth, H: p.ColliderHeight}
}

// FeetY 返回玩家"脚底"Y（碰撞盒底边），用于前景层排序
func (p *Player) FeetY() float64 {
	return p.Y + p.ColliderHeight
}

// Obstacle 静态障碍，初始化后不可变
type Obstacle struct {
	Rect
	Color color.RGBA
}

// Flag 旗帜，玩家碰撞盒与其重叠即获胜
type Flag struct {
	Rect
}

// newObstacles 根据配置创建障碍列表
// 颜色在配置验证阶段已检查，这里解析失败时使用默认色
func newObstacles(cfgs []config.ObstacleConfig) []Obstacle {
	fallback, _ := config.ParseHexColor(config.DefaultObstacleColor)
	obstacles := make([]Obstacle, 0, len(cfgs))
	for _, oc := range cfgs {
		c := fallback
		if oc.Color != "" {
			if parsed, err := config.ParseHexColor(oc.Color); err == nil {
				c = parsed
			}
		}
		obstacles = append(obstacles, Obstacle{
			Rect:  Rect{X: oc.X, Y: oc.Y, W: oc.Width, H: oc.Height},
			Color: c,
		})
	}
	return obstacles
}
