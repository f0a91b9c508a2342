package utils

import "math"

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp 将 v 限制在 [lo, hi] 内
// lo > hi 时返回 lo
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Approach 以指数方式让 current 趋近 target
//
// 每次推进 (target-current)*min(1, dt*rate)，帧率无关且不会越过目标。
//
// 参数：
//   - current: 当前值
//   - target: 目标值
//   - dt: 时间增量（秒）
//   - rate: 趋近速率（1/秒）
func Approach(current, target, dt, rate float64) float64 {
	if dt <= 0 || rate <= 0 {
		return current
	}
	return current + (target-current)*math.Min(1, dt*rate)
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于结束横幅弹出）
// 公式：f(t) = 1 - (1-t)³，t 会被限制在 [0, 1]
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}
