package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// solidSource 返回 1x1 白色源图，用于 DrawTriangles 填充纯色
// 取 3x3 图中间的像素，避免线性采样时越界取到透明边缘
func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillTriangle 用纯色填充三角形
func fillTriangle(dst *ebiten.Image, x0, y0, x1, y1, x2, y2 float64, clr color.Color) {
	if dst == nil {
		return
	}
	r, g, b, a := clr.RGBA()
	// DrawTriangles 默认使用直通 alpha，这里把预乘的颜色还原
	var cr, cg, cb, ca float32
	if a > 0 {
		cr = float32(r) / float32(a)
		cg = float32(g) / float32(a)
		cb = float32(b) / float32(a)
		ca = float32(a) / 0xffff
	}

	vs := []ebiten.Vertex{
		{DstX: float32(x0), DstY: float32(y0), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x1), DstY: float32(y1), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 1, SrcY: 1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, []uint16{0, 1, 2}, solidSource(), op)
}
