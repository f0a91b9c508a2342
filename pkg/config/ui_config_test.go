package config

import (
	"testing"
)

// TestControlPadFitsScreen 测试十字键在逻辑分辨率内且不与 HUD 重叠
func TestControlPadFitsScreen(t *testing.T) {
	step := ControlButtonSize + ControlButtonGap
	padWidth := 2*step + ControlButtonSize
	padHeight := padWidth

	if ControlPadMarginX+padWidth > GameWindowWidth {
		t.Errorf("control pad too wide: %.1f > %d", ControlPadMarginX+padWidth, GameWindowWidth)
	}
	top := GameWindowHeight - ControlPadMarginY - padHeight
	if top <= HUDMarginY+HUDFontSize {
		t.Errorf("control pad top %.1f overlaps the status line", top)
	}
}

// TestBannerFitsScreen 测试结算横幅小于逻辑分辨率
func TestBannerFitsScreen(t *testing.T) {
	if BannerWidth >= GameWindowWidth || BannerHeight >= GameWindowHeight {
		t.Errorf("banner %.0fx%.0f does not fit %dx%d", BannerWidth, BannerHeight, GameWindowWidth, GameWindowHeight)
	}
	if BannerFontSize >= BannerHeight {
		t.Errorf("banner font %.0f taller than banner %.0f", BannerFontSize, BannerHeight)
	}
}

// TestControlButtonColors 测试按下状态比常态更不透明
func TestControlButtonColors(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
	}{
		{"按下比常态醒目", ControlButtonColor.A, ControlButtonPressedColor.A},
		{"边框比按下醒目", ControlButtonPressedColor.A, ControlButtonBorderColor.A},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a >= tt.b {
				t.Errorf("alpha %d should be < %d", tt.a, tt.b)
			}
		})
	}
}
