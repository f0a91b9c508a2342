package game

import "math"

// Timer 倒计时
//
// 状态：Active -> Expired（单向）
// Remaining 永不小于 0；过期后只有 Reset 能重新激活
type Timer struct {
	Total     float64 // 总时长（秒）
	Remaining float64 // 剩余时间（秒）
	Active    bool    // 是否仍在计时
}

// NewTimer 创建已激活的倒计时
func NewTimer(total float64) Timer {
	return Timer{Total: total, Remaining: total, Active: true}
}

// Advance 推进倒计时
//
// 参数：
//   - dt: 经过的时间（秒）
//
// 返回：
//   - bool: 本次推进是否使计时器过期（只在过期的那一次返回 true）
func (t *Timer) Advance(dt float64) bool {
	if !t.Active {
		return false
	}
	t.Remaining -= dt
	if t.Remaining <= 0 {
		t.Remaining = 0
		t.Active = false
		return true
	}
	return false
}

// Reset 恢复为满时长并重新激活
func (t *Timer) Reset() {
	t.Remaining = t.Total
	t.Active = true
}

// Expired 是否已过期
func (t *Timer) Expired() bool {
	return !t.Active
}

// DisplaySeconds 返回用于显示的整数秒（向上取整）
func (t *Timer) DisplaySeconds() int {
	return int(math.Ceil(t.Remaining))
}
