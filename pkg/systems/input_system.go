package systems

import (
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultKeyBindings 默认键位
// 方向键与 WASD 同时可用，R 重新开始，M 静音，F11 全屏
var DefaultKeyBindings = map[ebiten.Key]game.Action{
	ebiten.KeyArrowUp:    game.ActionMoveUp,
	ebiten.KeyW:          game.ActionMoveUp,
	ebiten.KeyArrowDown:  game.ActionMoveDown,
	ebiten.KeyS:          game.ActionMoveDown,
	ebiten.KeyArrowLeft:  game.ActionMoveLeft,
	ebiten.KeyA:          game.ActionMoveLeft,
	ebiten.KeyArrowRight: game.ActionMoveRight,
	ebiten.KeyD:          game.ActionMoveRight,
	ebiten.KeyR:          game.ActionRestart,
	ebiten.KeyM:          game.ActionToggleMute,
	ebiten.KeyF11:        game.ActionToggleFullscreen,
}

// InputSystem 处理键盘输入
//
// 职责：
//   - 读取本帧刚按下/刚抬起的按键
//   - 按键位表映射为与物理按键无关的 game.KeyEvent
//
// 鼠标与触摸由 TouchControls 处理
type InputSystem struct {
	bindings map[ebiten.Key]game.Action

	// 复用的按键缓冲，避免每帧分配
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []game.KeyEvent

	// anyPressed 本帧是否有按键按下，包括未绑定的键
	anyPressed bool
}

// NewInputSystem 创建输入系统
// bindings 为 nil 时使用 DefaultKeyBindings
func NewInputSystem(bindings map[ebiten.Key]game.Action) *InputSystem {
	if bindings == nil {
		bindings = DefaultKeyBindings
	}
	return &InputSystem{bindings: bindings}
}

// ActionForKey 返回按键对应的动作，未绑定时返回 ActionNone
func (s *InputSystem) ActionForKey(k ebiten.Key) game.Action {
	if a, ok := s.bindings[k]; ok {
		return a
	}
	return game.ActionNone
}

// MapKeys 将按下/抬起的按键列表转换为事件
//
// 未绑定的按键被忽略。按下事件排在抬起事件之前。
// 返回的切片在下一次调用前有效。
func (s *InputSystem) MapKeys(pressed, released []ebiten.Key) []game.KeyEvent {
	s.events = s.events[:0]
	s.anyPressed = len(pressed) > 0
	for _, k := range pressed {
		if a := s.ActionForKey(k); a != game.ActionNone {
			s.events = append(s.events, game.KeyEvent{Action: a, Down: true})
		}
	}
	for _, k := range released {
		if a := s.ActionForKey(k); a != game.ActionNone {
			s.events = append(s.events, game.KeyEvent{Action: a, Down: false})
		}
	}
	return s.events
}

// Poll 读取本帧的键盘事件，必须在 ebiten 的 Update 中调用
func (s *InputSystem) Poll() []game.KeyEvent {
	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	if len(s.pressed) == 0 && len(s.released) == 0 {
		s.anyPressed = false
		return nil
	}
	return s.MapKeys(s.pressed, s.released)
}

// AnyKeyPressed 上一次 MapKeys/Poll 中是否有任意按键按下
// 未绑定的键不产生事件，但仍算作用户交互
func (s *InputSystem) AnyKeyPressed() bool {
	return s.anyPressed
}
