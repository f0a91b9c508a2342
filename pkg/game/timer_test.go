package game

import "testing"

func TestTimerAdvance(t *testing.T) {
	timer := NewTimer(1)

	if expired := timer.Advance(0.25); expired {
		t.Fatal("0.25s 后不应过期")
	}
	if timer.Remaining != 0.75 {
		t.Errorf("Remaining = %v, want 0.75", timer.Remaining)
	}

	// 超出剩余时间时截断到 0，只报告一次过期
	if expired := timer.Advance(5); !expired {
		t.Fatal("应报告过期")
	}
	if timer.Remaining != 0 || timer.Active {
		t.Errorf("过期后 Remaining=%v Active=%v, want 0 false", timer.Remaining, timer.Active)
	}
	if expired := timer.Advance(1); expired {
		t.Error("过期后再次推进不应再报告过期")
	}
	if timer.Remaining != 0 {
		t.Errorf("过期后 Remaining 不应变化, got %v", timer.Remaining)
	}
}

func TestTimerExactZeroExpires(t *testing.T) {
	timer := NewTimer(0.5)
	if !timer.Advance(0.5) {
		t.Error("恰好归零应视为过期")
	}
	if !timer.Expired() {
		t.Error("Expired() should be true")
	}
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(60)
	timer.Advance(100)
	timer.Reset()
	if !timer.Active || timer.Remaining != 60 {
		t.Errorf("Reset 后 Active=%v Remaining=%v, want true 60", timer.Active, timer.Remaining)
	}
}

func TestTimerDisplaySeconds(t *testing.T) {
	tests := []struct {
		remaining float64
		want      int
	}{
		{60, 60},
		{59.0001, 60},
		{59, 59},
		{0.2, 1},
		{0, 0},
	}
	for _, tt := range tests {
		timer := Timer{Remaining: tt.remaining}
		if got := timer.DisplaySeconds(); got != tt.want {
			t.Errorf("DisplaySeconds(%v) = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}
