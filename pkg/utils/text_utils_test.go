package utils

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TestMeasureText 测试文本测量
func TestMeasureText(t *testing.T) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	face := &text.GoTextFace{Source: src, Size: 22}

	t.Run("空文本", func(t *testing.T) {
		if w, h := MeasureText("", face); w != 0 || h != 0 {
			t.Errorf("MeasureText(\"\") = %v, %v", w, h)
		}
	})

	t.Run("无字体", func(t *testing.T) {
		if w, _ := MeasureText("abc", nil); w != 0 {
			t.Errorf("MeasureText with nil face = %v", w)
		}
	})

	t.Run("越长越宽", func(t *testing.T) {
		short, h := MeasureText("Time", face)
		long, _ := MeasureText("Time's up", face)
		if short <= 0 || h <= 0 {
			t.Fatalf("MeasureText(Time) = %v, %v", short, h)
		}
		if long <= short {
			t.Errorf("longer text should be wider: %v <= %v", long, short)
		}
	})
}
