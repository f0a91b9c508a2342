package game

import (
	"github.com/Drodd/2dBakery/internal/curve"
	"github.com/Drodd/2dBakery/pkg/config"
)

// GameState 一局游戏的全部可变状态
//
// 由 NewGameState 显式创建并由场景持有，不是全局单例。
// 玩家位置只在 Step 中修改；障碍、旗帜和世界尺寸在创建后不再变化。
type GameState struct {
	cfg *config.GameConfig

	WorldWidth  float64
	WorldHeight float64

	Player    Player
	Obstacles []Obstacle
	Flag      Flag
	Timer     Timer
	Status    GameStatus

	// 行走动画状态
	WalkTime      float64 // 仅在移动时累加（秒）
	WalkIntensity float64 // [0, 1]，向目标指数趋近

	// Input 当前按住的方向
	Input InputState

	startX, startY float64
	restartPending bool
	// 排队重新开始之后按下的方向，重新开始后恢复为朝向
	facingAfterRestart Direction
	hasFacingAfter     bool
}

// NewGameState 根据配置创建游戏状态
//
// 参数：
//   - cfg: 已验证的配置，nil 时使用默认配置
//
// 返回：
//   - *GameState: 处于 Playing 状态的新一局
func NewGameState(cfg *config.GameConfig) *GameState {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}

	flagX, flagY := cfg.FlagPosition()
	gs := &GameState{
		cfg:         cfg,
		WorldWidth:  cfg.World.Width,
		WorldHeight: cfg.World.Height,
		Obstacles:   newObstacles(cfg.Obstacles),
		Flag: Flag{Rect: Rect{
			X: flagX,
			Y: flagY,
			W: cfg.Flag.Width,
			H: cfg.Flag.Height,
		}},
		startX: cfg.Player.StartX,
		startY: cfg.PlayerStartY(),
	}
	gs.Player = Player{
		ColliderWidth:  cfg.Player.ColliderWidth,
		ColliderHeight: cfg.Player.ColliderHeight,
		SpriteWidth:    cfg.Player.SpriteWidth,
		SpriteHeight:   cfg.Player.SpriteHeight,
		Speed:          cfg.Player.Speed,
	}
	gs.Timer = NewTimer(cfg.Timer.Seconds)
	gs.Restart()
	return gs
}

// Config 返回创建时使用的配置（只读）
func (gs *GameState) Config() *config.GameConfig {
	return gs.cfg
}

// Restart 重新开始一局
// 重置玩家位置与朝向、状态、倒计时和行走动画；按住的方向保持不变
func (gs *GameState) Restart() {
	gs.Player.X = gs.startX
	gs.Player.Y = gs.startY
	gs.Player.Direction = DirectionDown
	gs.Status = StatusPlaying
	gs.Timer.Reset()
	gs.WalkTime = 0
	gs.WalkIntensity = 0
	gs.restartPending = false
	gs.hasFacingAfter = false
}

// applyPendingRestart 执行排队的重新开始，并保留排队之后按下的朝向
func (gs *GameState) applyPendingRestart() {
	if !gs.restartPending {
		return
	}
	facing, ok := gs.facingAfterRestart, gs.hasFacingAfter
	gs.Restart()
	if ok {
		gs.Player.Direction = facing
	}
}

// face 设置朝向；已排队重新开始时记下，重新开始后仍然生效
func (gs *GameState) face(dir Direction) {
	gs.Player.Direction = dir
	if gs.restartPending {
		gs.facingAfterRestart = dir
		gs.hasFacingAfter = true
	}
}

// RequestRestart 请求在下一次 Step 开始时重新开始
func (gs *GameState) RequestRestart() {
	gs.restartPending = true
}

// RestartPending 是否有待处理的重新开始请求
func (gs *GameState) RestartPending() bool {
	return gs.restartPending
}

// HandleKey 处理键盘事件
//
// 方向键按下设置按住标志与朝向，抬起清除标志；
// 重新开始键在任何状态下都会排队一次重新开始。
// 其余动作（静音、全屏）由场景处理，这里忽略。
//
// 返回：
//   - bool: 该事件是否算作一次用户交互（任意按下都算）
func (gs *GameState) HandleKey(ev KeyEvent) bool {
	if dir, ok := ev.Action.Direction(); ok {
		if ev.Down {
			gs.Input.Press(dir)
			gs.face(dir)
		} else {
			gs.Input.Release(dir)
		}
	} else if ev.Action == ActionRestart && ev.Down {
		gs.RequestRestart()
	}
	return ev.Down
}

// HandlePointer 处理屏幕方向按钮事件
//
// 按下设置按住标志与朝向；抬起、移出、取消都清除标志。
//
// 返回：
//   - bool: 该事件是否算作一次用户交互（仅按下算）
func (gs *GameState) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerDown:
		gs.Input.Press(ev.Dir)
		gs.face(ev.Dir)
		return true
	case PointerUp, PointerLeave, PointerCancel:
		gs.Input.Release(ev.Dir)
	}
	return false
}

// BobOffset 返回当前行走起伏的垂直偏移（像素，仅用于绘制）
func (gs *GameState) BobOffset() float64 {
	p := gs.cfg.Player
	return curve.WalkCurve.BobOffset(gs.WalkTime, p.WalkBobFrequency, p.WalkBobAmplitude, gs.WalkIntensity)
}

// DeskY 返回前景桌面的参考 Y
func (gs *GameState) DeskY() float64 {
	return gs.cfg.Foreground.DeskY
}
