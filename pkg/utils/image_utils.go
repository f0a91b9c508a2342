package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// DrawImageSized 将图片缩放到 w×h 后绘制在 (x, y)
// 图片为 nil 或目标尺寸非正时不绘制
func DrawImageSized(dst, img *ebiten.Image, x, y, w, h float64) {
	if dst == nil || img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
