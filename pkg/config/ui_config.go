package config

import "image/color"

// UI 布局相关的常量配置
// 包括 HUD 文本位置、结算横幅和屏幕方向按钮

// HUD 文本配置
const (
	// HUDMarginX HUD 文本距左右边缘的距离
	HUDMarginX = 24.0
	// HUDMarginY HUD 文本距顶部的距离
	HUDMarginY = 18.0
	// HUDFontSize 状态栏字号
	HUDFontSize = 22.0
	// TimerFontSize 倒计时字号
	TimerFontSize = 36.0
	// BannerFontSize 结算横幅字号
	BannerFontSize = 64.0
	// BannerWidth/BannerHeight 结算横幅尺寸（居中显示）
	BannerWidth  = 520.0
	BannerHeight = 150.0
)

// HUD 颜色
var (
	HUDTextColor     = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	HUDShadowColor   = color.RGBA{R: 0, G: 0, B: 0, A: 0xa0}
	BannerBackground = color.RGBA{R: 0x0e, G: 0x13, B: 0x30, A: 0xd8}
	BannerWinColor   = color.RGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
	BannerLoseColor  = color.RGBA{R: 0xef, G: 0x47, B: 0x6f, A: 0xff}
)

// 屏幕方向按钮配置（触屏设备）
// 四个按钮以十字形排布在左下角
const (
	// ControlButtonSize 单个方向按钮边长
	ControlButtonSize = 88.0
	// ControlButtonGap 按钮之间的间距
	ControlButtonGap = 8.0
	// ControlPadMarginX 十字键距左边缘的距离
	ControlPadMarginX = 32.0
	// ControlPadMarginY 十字键距底边缘的距离
	ControlPadMarginY = 32.0
)

// 方向按钮颜色
var (
	ControlButtonColor        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x40}
	ControlButtonPressedColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90}
	ControlButtonBorderColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xb0}
)
