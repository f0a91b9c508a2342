package systems

import (
	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TouchButton 屏幕上的一个方向按钮
type TouchButton struct {
	Dir        game.Direction
	X, Y, W, H float64
}

// Contains 判断点是否在按钮内（含边界）
func (b TouchButton) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// TouchControls 屏幕方向按钮
//
// 四个按钮以十字形排布在左下角。每帧把当前按下的指针与上一帧比较，
// 生成与 DOM 指针事件等价的 game.PointerEvent：
//   - 新出现的指针落在按钮上 → PointerDown
//   - 指针在按钮上松开 → PointerUp
//   - 指针滑出按钮 → PointerLeave（滑入其他按钮不会自动按下）
//   - 窗口失焦时 Cancel() → PointerCancel
type TouchControls struct {
	buttons [4]TouchButton

	// active 指针 ID → 正在按下的按钮
	active map[int]game.Direction
	// seen 上一帧处于按下状态的指针
	seen map[int]bool

	// landed 本帧是否有新指针按下，无论是否落在按钮上
	landed bool

	touchSeen     bool
	alwaysVisible bool

	events []game.PointerEvent
}

// NewTouchControls 创建方向按钮并按屏幕尺寸布局
//
// 参数：
//   - screenW, screenH: 逻辑屏幕尺寸
//   - alwaysVisible: 桌面端也显示按钮
func NewTouchControls(screenW, screenH float64, alwaysVisible bool) *TouchControls {
	tc := &TouchControls{
		active:        make(map[int]game.Direction),
		seen:          make(map[int]bool),
		alwaysVisible: alwaysVisible,
	}
	tc.Layout(screenW, screenH)
	return tc
}

// Layout 按屏幕尺寸重新排布按钮
func (tc *TouchControls) Layout(screenW, screenH float64) {
	size := config.ControlButtonSize
	step := size + config.ControlButtonGap
	left := config.ControlPadMarginX
	bottom := screenH - config.ControlPadMarginY

	tc.buttons = [4]TouchButton{
		{Dir: game.DirectionUp, X: left + step, Y: bottom - size - 2*step, W: size, H: size},
		{Dir: game.DirectionLeft, X: left, Y: bottom - size - step, W: size, H: size},
		{Dir: game.DirectionRight, X: left + 2*step, Y: bottom - size - step, W: size, H: size},
		{Dir: game.DirectionDown, X: left + step, Y: bottom - size, W: size, H: size},
	}
}

// Buttons 返回按钮布局
func (tc *TouchControls) Buttons() []TouchButton {
	return tc.buttons[:]
}

// HitTest 返回坐标下的按钮方向
func (tc *TouchControls) HitTest(x, y float64) (game.Direction, bool) {
	for _, b := range tc.buttons {
		if b.Contains(x, y) {
			return b.Dir, true
		}
	}
	return game.DirectionDown, false
}

// Update 根据当前按下的指针生成按钮事件
//
// 参数：
//   - pointers: 本帧所有处于按下状态的指针（见 utils.AppendPointers）
//
// 返回：
//   - []game.PointerEvent: 本帧事件，在下一次调用前有效
func (tc *TouchControls) Update(pointers []utils.Pointer) []game.PointerEvent {
	tc.events = tc.events[:0]
	tc.landed = false
	if utils.HasTouch(pointers) {
		tc.touchSeen = true
	}

	present := make(map[int]bool, len(pointers))
	for _, p := range pointers {
		present[p.ID] = true
		if !tc.seen[p.ID] {
			tc.landed = true
		}
		dir, hit := tc.HitTest(float64(p.X), float64(p.Y))

		if prev, ok := tc.active[p.ID]; ok {
			if !hit || dir != prev {
				tc.events = append(tc.events, game.PointerEvent{Dir: prev, Kind: game.PointerLeave})
				delete(tc.active, p.ID)
			}
			continue
		}
		if !tc.seen[p.ID] && hit {
			tc.active[p.ID] = dir
			tc.events = append(tc.events, game.PointerEvent{Dir: dir, Kind: game.PointerDown})
		}
	}

	for id, dir := range tc.active {
		if !present[id] {
			tc.events = append(tc.events, game.PointerEvent{Dir: dir, Kind: game.PointerUp})
			delete(tc.active, id)
		}
	}
	tc.seen = present
	return tc.events
}

// PointerLanded 上一次 Update 中是否有新的触摸或鼠标按下
func (tc *TouchControls) PointerLanded() bool {
	return tc.landed
}

// Cancel 取消所有按下的按钮（窗口失焦等情况）
func (tc *TouchControls) Cancel() []game.PointerEvent {
	tc.events = tc.events[:0]
	for _, b := range tc.buttons {
		for id, dir := range tc.active {
			if dir == b.Dir {
				tc.events = append(tc.events, game.PointerEvent{Dir: dir, Kind: game.PointerCancel})
				delete(tc.active, id)
			}
		}
	}
	clear(tc.seen)
	return tc.events
}

// Visible 是否显示按钮
func (tc *TouchControls) Visible() bool {
	return tc.alwaysVisible || tc.touchSeen || utils.IsMobile()
}

// Draw 绘制按钮，held 用于高亮正在按住的方向
func (tc *TouchControls) Draw(screen *ebiten.Image, held game.InputSnapshot) {
	if screen == nil || !tc.Visible() {
		return
	}
	for _, b := range tc.buttons {
		fill := config.ControlButtonColor
		if snapshotHeld(held, b.Dir) {
			fill = config.ControlButtonPressedColor
		}
		x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)
		vector.DrawFilledRect(screen, x, y, w, h, fill, true)
		vector.StrokeRect(screen, x, y, w, h, 2, config.ControlButtonBorderColor, true)
		drawArrow(screen, b)
	}
}

// drawArrow 在按钮中心绘制指向按钮方向的三角形
func drawArrow(screen *ebiten.Image, b TouchButton) {
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	r := b.W * 0.22
	clr := config.ControlButtonBorderColor
	switch b.Dir {
	case game.DirectionUp:
		fillTriangle(screen, cx, cy-r, cx+r, cy+r, cx-r, cy+r, clr)
	case game.DirectionDown:
		fillTriangle(screen, cx, cy+r, cx-r, cy-r, cx+r, cy-r, clr)
	case game.DirectionLeft:
		fillTriangle(screen, cx-r, cy, cx+r, cy-r, cx+r, cy+r, clr)
	case game.DirectionRight:
		fillTriangle(screen, cx+r, cy, cx-r, cy+r, cx-r, cy-r, clr)
	}
}

func snapshotHeld(s game.InputSnapshot, d game.Direction) bool {
	switch d {
	case game.DirectionUp:
		return s.Up
	case game.DirectionDown:
		return s.Down
	case game.DirectionLeft:
		return s.Left
	case game.DirectionRight:
		return s.Right
	}
	return false
}
