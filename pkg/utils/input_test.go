package utils

import "testing"

// TestHasTouch 测试触摸点检测
func TestHasTouch(t *testing.T) {
	tests := []struct {
		name     string
		pointers []Pointer
		expected bool
	}{
		{"空列表", nil, false},
		{"只有鼠标", []Pointer{{ID: MousePointerID, X: 10, Y: 10}}, false},
		{"有触摸", []Pointer{{ID: MousePointerID}, {ID: 3, Touch: true}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasTouch(tt.pointers); got != tt.expected {
				t.Errorf("HasTouch() = %v, want %v", got, tt.expected)
			}
		})
	}
}
