package systems

import (
	"image/color"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场景绘制颜色
var (
	BackgroundFallbackColor = color.RGBA{R: 0x0e, G: 0x13, B: 0x30, A: 0xff}
	FlagColor               = color.RGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
	PennantColor            = color.RGBA{R: 0xef, G: 0x47, B: 0x6f, A: 0xff}
	// PlayerFallbackColor rgba(80,250,123,0.6)
	PlayerFallbackColor = color.NRGBA{R: 80, G: 250, B: 123, A: 153}
)

// 旗面三角形尺寸（相对旗帜右上角）
const (
	pennantLength = 26.0
	pennantTipY   = 10.0
	pennantBaseY  = 20.0
)

// Layering 玩家与前景桌面的绘制顺序
type Layering int

const (
	// LayerNoDesk 没有桌面图，只绘制玩家
	LayerNoDesk Layering = iota
	// LayerDeskBehindPlayer 玩家在桌面前方（更靠下），先画桌面后画玩家
	LayerDeskBehindPlayer
	// LayerDeskInFront 玩家在桌面后方，先画玩家再用桌面遮挡
	LayerDeskInFront
)

// String 返回层级名称
func (l Layering) String() string {
	switch l {
	case LayerNoDesk:
		return "no-desk"
	case LayerDeskBehindPlayer:
		return "desk-behind-player"
	case LayerDeskInFront:
		return "desk-in-front"
	}
	return "unknown"
}

// DepthOrder 根据玩家脚底与桌面参考线决定绘制顺序
//
// 参数：
//   - feetY: 玩家碰撞盒底边
//   - deskY: 桌面参考线
//   - hasDesk: 桌面图是否存在
func DepthOrder(feetY, deskY float64, hasDesk bool) Layering {
	if !hasDesk {
		return LayerNoDesk
	}
	if feetY > deskY {
		return LayerDeskBehindPlayer
	}
	return LayerDeskInFront
}

// RenderImages 场景用到的图片，任意一张都可能为 nil
type RenderImages struct {
	Background *ebiten.Image
	Desk       *ebiten.Image
	Player     [4]*ebiten.Image // 按 game.Direction 索引
}

// LoadRenderImages 从资源管理器中取出已加载的场景图片
// 未加载或加载失败的图片保持 nil，绘制时使用回退图形
func LoadRenderImages(rm *game.ResourceManager) RenderImages {
	var imgs RenderImages
	if rm == nil {
		return imgs
	}
	imgs.Background = rm.GetImageByID(game.ImageBackground)
	imgs.Desk = rm.GetImageByID(game.ImageDesk)
	for _, d := range game.AllDirections {
		imgs.Player[d] = rm.GetImageByID(game.PlayerImageID(d))
	}
	return imgs
}

// RenderView 绘制一帧所需的只读数据
type RenderView struct {
	WorldWidth, WorldHeight float64

	Background *ebiten.Image
	Desk       *ebiten.Image
	DeskY      float64

	Obstacles []game.Obstacle
	Flag      game.Flag

	Player       game.Player
	PlayerSprite *ebiten.Image
	// 精灵相对碰撞盒左上角的偏移
	SpriteOffsetX, SpriteOffsetY float64
	// Bob 行走起伏偏移
	Bob float64
}

// Layering 返回本帧玩家与桌面的绘制顺序
func (v *RenderView) Layering() Layering {
	return DepthOrder(v.Player.FeetY(), v.DeskY, v.Desk != nil)
}

// SpritePosition 返回玩家精灵左上角
func (v *RenderView) SpritePosition() (x, y float64) {
	return v.Player.X + v.SpriteOffsetX, v.Player.Y + v.SpriteOffsetY + v.Bob
}

// RenderSystem 场景渲染系统
//
// 绘制顺序：
//  1. 背景（缺失时纯色填充）
//  2. 障碍
//  3. 旗帜
//  4. 玩家与桌面，按 DepthOrder 决定先后
type RenderSystem struct {
	images                 RenderImages
	spriteOffX, spriteOffY float64
}

// NewRenderSystem 创建渲染系统
// cfg 为 nil 时使用默认配置计算精灵偏移
func NewRenderSystem(images RenderImages, cfg *config.GameConfig) *RenderSystem {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	offX, offY := cfg.SpriteOffset()
	return &RenderSystem{images: images, spriteOffX: offX, spriteOffY: offY}
}

// View 从游戏状态构建本帧的绘制数据
func (s *RenderSystem) View(gs *game.GameState) RenderView {
	return RenderView{
		WorldWidth:    gs.WorldWidth,
		WorldHeight:   gs.WorldHeight,
		Background:    s.images.Background,
		Desk:          s.images.Desk,
		DeskY:         gs.DeskY(),
		Obstacles:     gs.Obstacles,
		Flag:          gs.Flag,
		Player:        gs.Player,
		PlayerSprite:  s.spriteFor(gs.Player.Direction),
		SpriteOffsetX: s.spriteOffX,
		SpriteOffsetY: s.spriteOffY,
		Bob:           gs.BobOffset(),
	}
}

func (s *RenderSystem) spriteFor(d game.Direction) *ebiten.Image {
	if d < 0 || int(d) >= len(s.images.Player) {
		return nil
	}
	return s.images.Player[d]
}

// Draw 绘制一帧场景
func (s *RenderSystem) Draw(screen *ebiten.Image, v RenderView) {
	if screen == nil {
		return
	}
	s.drawBackground(screen, &v)
	s.drawObstacles(screen, v.Obstacles)
	s.drawFlag(screen, v.Flag)

	switch v.Layering() {
	case LayerDeskBehindPlayer:
		s.drawDesk(screen, &v)
		s.drawPlayer(screen, &v)
	case LayerDeskInFront:
		s.drawPlayer(screen, &v)
		s.drawDesk(screen, &v)
	default:
		s.drawPlayer(screen, &v)
	}
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image, v *RenderView) {
	if v.Background != nil {
		utils.DrawImageSized(screen, v.Background, 0, 0, v.WorldWidth, v.WorldHeight)
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(v.WorldWidth), float32(v.WorldHeight), BackgroundFallbackColor, false)
}

func (s *RenderSystem) drawObstacles(screen *ebiten.Image, obstacles []game.Obstacle) {
	for _, o := range obstacles {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), o.Color, false)
	}
}

func (s *RenderSystem) drawFlag(screen *ebiten.Image, f game.Flag) {
	vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), FlagColor, false)
	right := f.X + f.W
	fillTriangle(screen,
		right, f.Y,
		right+pennantLength, f.Y+pennantTipY,
		right, f.Y+pennantBaseY,
		PennantColor)
}

func (s *RenderSystem) drawDesk(screen *ebiten.Image, v *RenderView) {
	utils.DrawImageSized(screen, v.Desk, 0, 0, v.WorldWidth, v.WorldHeight)
}

func (s *RenderSystem) drawPlayer(screen *ebiten.Image, v *RenderView) {
	p := v.Player
	if v.PlayerSprite == nil {
		// 没有精灵时绘制碰撞盒
		vector.DrawFilledRect(screen, float32(p.X), float32(p.Y),
			float32(p.ColliderWidth), float32(p.ColliderHeight), PlayerFallbackColor, false)
		return
	}
	x, y := v.SpritePosition()
	utils.DrawImageSized(screen, v.PlayerSprite, x, y, p.SpriteWidth, p.SpriteHeight)
}
