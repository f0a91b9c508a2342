package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/embedded"
	"github.com/Drodd/2dBakery/pkg/game"
)

// TestParseHold 测试方向列表解析
func TestParseHold(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []game.Direction
		wantErr bool
	}{
		{"空", "", nil, false},
		{"单个方向", "right", []game.Direction{game.DirectionRight}, false},
		{"多个方向带空格", "right, down", []game.Direction{game.DirectionRight, game.DirectionDown}, false},
		{"未知方向", "north", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseHold(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseHold(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseHold(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// TestSimulate 测试无界面运行
func TestSimulate(t *testing.T) {
	const dt = 1.0 / 32

	tests := []struct {
		name      string
		hold      []game.Direction
		seconds   float64
		timer     float64
		wantX     float64
		status    game.GameStatus
		direction game.Direction
		remaining float64
	}{
		{"按住右键一秒", []game.Direction{game.DirectionRight}, 1, 60, 280, game.StatusPlaying, game.DirectionRight, 59},
		// 第 173 步时碰撞盒右边缘越过旗帜左边缘
		{"一直向右到达旗帜", []game.Direction{game.DirectionRight}, 10, 60, 1161.25, game.StatusWon, game.DirectionRight, 60 - 173*dt},
		{"不动直到超时", nil, 1, 0.5, 80, game.StatusLost, game.DirectionDown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultGameConfig()
			cfg.Timer.Seconds = tt.timer

			gs := simulate(cfg, tt.hold, tt.seconds, dt)
			if gs.Player.X != tt.wantX || gs.Player.Y != 600 {
				t.Errorf("player = (%v, %v), want (%v, 600)", gs.Player.X, gs.Player.Y, tt.wantX)
			}
			if gs.Status != tt.status {
				t.Errorf("status = %v, want %v", gs.Status, tt.status)
			}
			if gs.Player.Direction != tt.direction {
				t.Errorf("direction = %v, want %v", gs.Player.Direction, tt.direction)
			}
			if gs.Timer.Remaining != tt.remaining {
				t.Errorf("timer = %v, want %v", gs.Timer.Remaining, tt.remaining)
			}
		})
	}
}

// TestSummary 测试最终状态格式
func TestSummary(t *testing.T) {
	gs := simulate(config.DefaultGameConfig(), []game.Direction{game.DirectionRight}, 1, 1.0/32)
	want := "x=280.00 y=600.00 direction=right status=playing timer=59.00"
	if got := summary(gs); got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

// TestCommands 通过根命令执行子命令
func TestCommands(t *testing.T) {
	embedded.Init(assetsFS, dataFS)

	tests := []struct {
		name     string
		args     []string
		contains string
		wantErr  bool
	}{
		{"打印配置", []string{"config"}, "seconds: 60", false},
		{"模拟", []string{"simulate", "--hold", "right", "--seconds", "1"}, "x=280.00", false},
		{"非法方向", []string{"simulate", "--hold", "sideways"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			rootCmd.SetOut(&out)
			rootCmd.SetErr(&errOut)
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() { rootCmd.SetArgs(nil) })

			err := rootCmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !strings.Contains(out.String(), tt.contains) {
				t.Errorf("output %q does not contain %q", out.String(), tt.contains)
			}
		})
	}
}
