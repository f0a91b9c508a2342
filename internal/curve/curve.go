// Package curve 提供基于关键帧表的一维动画曲线求值
//
// 曲线由 (归一化时间, 值) 关键帧组成，时间范围 [0, 1]。
// 求值时按周期取相位，线性扫描找到所在区间并线性插值。
package curve

import "math"

// Keyframe 曲线上的一个关键帧
type Keyframe struct {
	Time  float64 // 归一化时间 [0, 1]
	Value float64 // 曲线值
}

// Curve 非均匀关键帧曲线
// 关键帧必须按 Time 升序排列，首帧 Time=0，末帧 Time=1
type Curve struct {
	Keyframes []Keyframe
}

// WalkCurve 行走起伏曲线
// 近似一个带回弹的缓动过程：快速上冲到 ~1.27，回落后在 1.0 附近轻微振荡
var WalkCurve = Curve{Keyframes: []Keyframe{
	{Time: 0, Value: 0},
	{Time: 0.011, Value: 0.037},
	{Time: 0.024, Value: 0.159},
	{Time: 0.089, Value: 1.07},
	{Time: 0.108, Value: 1.214},
	{Time: 0.117, Value: 1.251},
	{Time: 0.127, Value: 1.271},
	{Time: 0.14, Value: 1.268},
	{Time: 0.154, Value: 1.236},
	{Time: 0.222, Value: 0.978},
	{Time: 0.24, Value: 0.941},
	{Time: 0.258, Value: 0.926},
	{Time: 0.282, Value: 0.932},
	{Time: 0.349, Value: 1.002},
	{Time: 0.389, Value: 1.02},
	{Time: 0.52, Value: 0.995},
	{Time: 0.65, Value: 1.001},
	{Time: 1, Value: 1},
}}

// Phase 计算时间 t 在给定周期内的归一化相位 [0, 1)
// 负时间同样映射到 [0, 1)
func Phase(t, period float64) float64 {
	if period <= 0 {
		return 0
	}
	m := math.Mod(t, period)
	if m < 0 {
		m += period
	}
	return m / period
}

// Evaluate 在绝对时间 t 处求曲线值
//
// 参数：
//   - t: 绝对时间（秒）
//   - period: 一个完整周期的时长（秒），<=0 时返回首帧值
//
// 返回：
//   - float64: 插值后的曲线值；相位超出末帧时返回末帧值
func (c Curve) Evaluate(t, period float64) float64 {
	n := len(c.Keyframes)
	if n == 0 {
		return 0
	}
	if period <= 0 {
		return c.Keyframes[0].Value
	}

	phase := Phase(t, period)
	for i := 0; i < n-1; i++ {
		cur := c.Keyframes[i]
		next := c.Keyframes[i+1]
		if phase >= cur.Time && phase <= next.Time {
			span := next.Time - cur.Time
			if span <= 0 {
				return cur.Value
			}
			progress := (phase - cur.Time) / span
			return cur.Value + (next.Value-cur.Value)*progress
		}
	}
	return c.Keyframes[n-1].Value
}

// BobOffset 计算行走起伏的垂直绘制偏移（像素）
// 曲线值经 (v-0.5)*2 映射到 [-1,1] 附近，再乘以振幅与行走强度
// 仅用于绘制，不影响碰撞盒
func (c Curve) BobOffset(walkTime, frequency, amplitude, intensity float64) float64 {
	if intensity <= 0 || amplitude <= 0 || frequency <= 0 {
		return 0
	}
	v := c.Evaluate(walkTime, 1.0/frequency)
	return (v - 0.5) * 2 * amplitude * intensity
}
