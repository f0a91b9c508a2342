package tui

import (
	"slices"
	"testing"

	"github.com/Drodd/2dBakery/pkg/game"
)

// TestKeyLatch 测试按键锁存的按下、重复与到期
func TestKeyLatch(t *testing.T) {
	l := NewKeyLatch(0.25)

	if !l.Press(game.DirectionRight) {
		t.Fatal("first press should be fresh")
	}
	if l.Press(game.DirectionRight) {
		t.Error("repeat should not be fresh")
	}
	if !l.Held(game.DirectionRight) || l.Held(game.DirectionLeft) {
		t.Error("only right should be held")
	}

	if released := l.Advance(0.125); len(released) != 0 {
		t.Errorf("released early: %v", released)
	}
	// 重复刷新锁存时长
	l.Press(game.DirectionRight)
	if released := l.Advance(0.125); len(released) != 0 {
		t.Errorf("released after refresh: %v", released)
	}
	if released := l.Advance(0.125); !slices.Equal(released, []game.Direction{game.DirectionRight}) {
		t.Errorf("released = %v, want [right]", released)
	}
	if l.Held(game.DirectionRight) {
		t.Error("right still held after expiry")
	}
	if !l.Press(game.DirectionRight) {
		t.Error("press after expiry should be fresh")
	}
}

// TestKeyLatchDefaults 测试默认时长与越界方向
func TestKeyLatchDefaults(t *testing.T) {
	l := NewKeyLatch(0)
	if l.hold != DefaultLatchHold {
		t.Errorf("hold = %v, want %v", l.hold, DefaultLatchHold)
	}
	if l.Press(game.Direction(9)) || l.Held(game.Direction(-1)) {
		t.Error("out-of-range direction should be ignored")
	}
}

// TestKeyLatchReleaseAll 测试一次释放全部方向
func TestKeyLatchReleaseAll(t *testing.T) {
	l := NewKeyLatch(1)
	l.Press(game.DirectionLeft)
	l.Press(game.DirectionUp)

	got := l.ReleaseAll()
	want := []game.Direction{game.DirectionUp, game.DirectionLeft}
	if !slices.Equal(got, want) {
		t.Errorf("ReleaseAll() = %v, want %v", got, want)
	}
	if len(l.ReleaseAll()) != 0 {
		t.Error("second ReleaseAll should release nothing")
	}
}
