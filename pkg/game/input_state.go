package game

// Action 与物理按键无关的语义动作
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionRestart
	ActionToggleMute
	ActionToggleFullscreen
)

// Direction 返回移动动作对应的方向
func (a Action) Direction() (Direction, bool) {
	switch a {
	case ActionMoveUp:
		return DirectionUp, true
	case ActionMoveDown:
		return DirectionDown, true
	case ActionMoveLeft:
		return DirectionLeft, true
	case ActionMoveRight:
		return DirectionRight, true
	}
	return DirectionDown, false
}

// MoveAction 返回方向对应的移动动作
func MoveAction(d Direction) Action {
	switch d {
	case DirectionUp:
		return ActionMoveUp
	case DirectionDown:
		return ActionMoveDown
	case DirectionLeft:
		return ActionMoveLeft
	case DirectionRight:
		return ActionMoveRight
	}
	return ActionNone
}

// KeyEvent 键盘按下/抬起事件（已映射为动作）
type KeyEvent struct {
	Action Action
	Down   bool
}

// PointerKind 屏幕方向按钮上的指针事件类型
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerLeave
	PointerCancel
)

// String 返回事件类型名称
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	case PointerCancel:
		return "cancel"
	}
	return "unknown"
}

// PointerEvent 方向按钮事件
type PointerEvent struct {
	Dir  Direction
	Kind PointerKind
}

// InputSnapshot 某一帧的方向按住状态（只读快照）
type InputSnapshot struct {
	Up, Down, Left, Right bool
}

// Any 是否有任一方向被按住
func (s InputSnapshot) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// InputState 四个方向的按住标志
// 键盘与屏幕按钮写入同一组标志，不做去抖
type InputState struct {
	held [4]bool
}

// Press 标记方向按下
func (in *InputState) Press(d Direction) {
	if d >= 0 && int(d) < len(in.held) {
		in.held[d] = true
	}
}

// Release 标记方向抬起
func (in *InputState) Release(d Direction) {
	if d >= 0 && int(d) < len(in.held) {
		in.held[d] = false
	}
}

// Held 方向是否被按住
func (in *InputState) Held(d Direction) bool {
	if d < 0 || int(d) >= len(in.held) {
		return false
	}
	return in.held[d]
}

// ReleaseAll 清除所有按住标志（如窗口失焦时）
func (in *InputState) ReleaseAll() {
	in.held = [4]bool{}
}

// Snapshot 返回当前按住状态的快照
func (in *InputState) Snapshot() InputSnapshot {
	return InputSnapshot{
		Up:    in.held[DirectionUp],
		Down:  in.held[DirectionDown],
		Left:  in.held[DirectionLeft],
		Right: in.held[DirectionRight],
	}
}
