package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本的宽高
func MeasureText(s string, face text.Face) (w, h float64) {
	if s == "" || face == nil {
		return 0, 0
	}
	return text.Measure(s, face, 0)
}

// DrawText 在 (x, y) 绘制文本
//
// 参数：
//   - align: 水平对齐，x 为对应对齐点（左边缘、中心或右边缘）
//   - y: 文本顶部
func DrawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	if dst == nil || face == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}

// DrawTextShadowed 先绘制偏移的阴影再绘制文本，提高在亮色背景上的可读性
func DrawTextShadowed(dst *ebiten.Image, s string, face text.Face, x, y float64, clr, shadow color.Color, align text.Align) {
	DrawText(dst, s, face, x+2, y+2, shadow, align)
	DrawText(dst, s, face, x, y, clr, align)
}
