package game

import (
	"time"

	"github.com/Drodd/2dBakery/pkg/config"
)

// Clock 帧时间源
//
// 每次 Tick 返回距上一次 Tick 的秒数，上限为 config.MaxFrameDelta，
// 防止窗口失焦或卡顿后出现一次巨大的位移。
// 第一次 Tick 或时间戳未前进时返回 0。
type Clock struct {
	now  func() time.Time
	last time.Time
	has  bool
}

// NewClock 创建时钟
//
// 参数：
//   - now: 时间来源，nil 时使用 time.Now（测试中可注入）
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick 读取当前时间并返回限制后的时间增量（秒）
func (c *Clock) Tick() float64 {
	return c.TickAt(c.now())
}

// TickAt 使用给定时间戳推进时钟
func (c *Clock) TickAt(ts time.Time) float64 {
	if !c.has {
		c.last = ts
		c.has = true
		return 0
	}
	elapsed := ts.Sub(c.last).Seconds()
	c.last = ts
	if elapsed <= 0 {
		return 0
	}
	if elapsed > config.MaxFrameDelta {
		return config.MaxFrameDelta
	}
	return elapsed
}

// Reset 丢弃上一次时间戳，下一次 Tick 返回 0
func (c *Clock) Reset() {
	c.has = false
}
