package tui

import "github.com/Drodd/2dBakery/pkg/game"

// DefaultLatchHold 按键锁存时长（秒）
// 终端只发送按下与自动重复，不发送抬起；
// 超过该时长没有收到重复就视为抬起。需大于系统首次重复延迟的大部分取值。
const DefaultLatchHold = 0.5

// KeyLatch 把终端的按键重复还原为按住/抬起
type KeyLatch struct {
	hold      float64
	remaining [4]float64
}

// NewKeyLatch 创建按键锁存，hold <= 0 时使用 DefaultLatchHold
func NewKeyLatch(hold float64) *KeyLatch {
	if hold <= 0 {
		hold = DefaultLatchHold
	}
	return &KeyLatch{hold: hold}
}

// Press 记录一次按下或重复
//
// 返回：
//   - bool: 该方向此前是否未被按住（即本次是新的按下）
func (l *KeyLatch) Press(d game.Direction) bool {
	if d < 0 || int(d) >= len(l.remaining) {
		return false
	}
	fresh := l.remaining[d] <= 0
	l.remaining[d] = l.hold
	return fresh
}

// Held 方向是否处于锁存状态
func (l *KeyLatch) Held(d game.Direction) bool {
	return d >= 0 && int(d) < len(l.remaining) && l.remaining[d] > 0
}

// Advance 推进时间，返回本次到期（视为抬起）的方向
func (l *KeyLatch) Advance(dt float64) []game.Direction {
	var released []game.Direction
	for _, d := range game.AllDirections {
		if l.remaining[d] <= 0 {
			continue
		}
		l.remaining[d] -= dt
		if l.remaining[d] <= 0 {
			l.remaining[d] = 0
			released = append(released, d)
		}
	}
	return released
}

// ReleaseAll 立即释放所有方向，返回被释放的方向
func (l *KeyLatch) ReleaseAll() []game.Direction {
	var released []game.Direction
	for _, d := range game.AllDirections {
		if l.remaining[d] > 0 {
			l.remaining[d] = 0
			released = append(released, d)
		}
	}
	return released
}
