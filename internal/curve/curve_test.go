package curve

import (
	"math"
	"testing"
)

func TestEvaluateKeyframes(t *testing.T) {
	tests := []struct {
		name   string
		t      float64
		period float64
		want   float64
	}{
		{"起点", 0, 1, 0},
		{"关键帧 0.127 峰值", 0.127, 1, 1.271},
		{"区间中点插值", 0.0055, 1, 0.0185},
		{"末段插值", 0.825, 1, 1.0005},
		{"周期缩放", 0.127 * 0.4, 0.4, 1.271},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WalkCurve.Evaluate(tt.t, tt.period)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%v, %v) = %v, 期望 %v", tt.t, tt.period, got, tt.want)
			}
		})
	}
}

func TestEvaluatePeriodic(t *testing.T) {
	period := 1.0 / 2.5
	for i := 0; i < 200; i++ {
		tm := float64(i) * 0.0137
		a := WalkCurve.Evaluate(tm, period)
		b := WalkCurve.Evaluate(tm+period, period)
		if math.Abs(a-b) > 1e-6 {
			t.Fatalf("Evaluate(%v)=%v 与 Evaluate(%v)=%v 不相等", tm, a, tm+period, b)
		}
	}
}

func TestEvaluateNegativeTime(t *testing.T) {
	got := WalkCurve.Evaluate(-0.873, 1)
	want := WalkCurve.Evaluate(0.127, 1)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("负时间相位错误: got %v, want %v", got, want)
	}
}

func TestEvaluateDegenerate(t *testing.T) {
	if got := WalkCurve.Evaluate(0.3, 0); got != 0 {
		t.Errorf("period=0 应返回首帧值, got %v", got)
	}
	if got := (Curve{}).Evaluate(0.3, 1); got != 0 {
		t.Errorf("空曲线应返回 0, got %v", got)
	}

	// 相位落在所有区间之外时返回末帧值
	partial := Curve{Keyframes: []Keyframe{{Time: 0, Value: 0}, {Time: 0.5, Value: 2}}}
	if got := partial.Evaluate(0.75, 1); got != 2 {
		t.Errorf("超出末帧应返回末帧值, got %v", got)
	}
}

func TestBobOffset(t *testing.T) {
	// 相位 0 时曲线值为 0，映射后为 -1
	if got := WalkCurve.BobOffset(0, 2.5, 4, 1); math.Abs(got-(-4)) > 1e-9 {
		t.Errorf("BobOffset(0) = %v, 期望 -4", got)
	}

	// 强度按比例缩放
	full := WalkCurve.BobOffset(0.05, 2.5, 4, 1)
	half := WalkCurve.BobOffset(0.05, 2.5, 4, 0.5)
	if math.Abs(half-full/2) > 1e-9 {
		t.Errorf("强度 0.5 应为一半偏移: full=%v half=%v", full, half)
	}

	if got := WalkCurve.BobOffset(0.1, 2.5, 4, 0); got != 0 {
		t.Errorf("强度为 0 时偏移应为 0, got %v", got)
	}
	if got := WalkCurve.BobOffset(0.1, 0, 4, 1); got != 0 {
		t.Errorf("频率为 0 时偏移应为 0, got %v", got)
	}
}
