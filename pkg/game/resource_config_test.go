package game

import (
	"os"
	"testing"
)

// TestParseResourceConfig 测试资源清单解析与验证
func TestParseResourceConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{
			name: "有效清单",
			yaml: `
version: "1.0"
base_path: assets
groups:
  game:
    images:
      - id: IMAGE_BG
        path: images/bg
    sounds:
      - id: SOUND_BGM
        path: audio/bgm_main.mp3
`,
		},
		{
			name:    "空内容",
			yaml:    "",
			wantErr: false,
		},
		{
			name: "重复ID",
			yaml: `
groups:
  a:
    images:
      - id: IMAGE_BG
        path: images/bg
  b:
    images:
      - id: IMAGE_BG
        path: images/bg2
`,
			wantErr: true,
		},
		{
			name: "空ID",
			yaml: `
groups:
  a:
    fonts:
      - path: fonts/hud.ttf
`,
			wantErr: true,
		},
		{
			name: "空路径",
			yaml: `
groups:
  a:
    sounds:
      - id: SOUND_BGM
`,
			wantErr: true,
		},
		{
			name:    "语法错误",
			yaml:    "groups: [",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseResourceConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestBuildFullPath 测试路径拼接与默认扩展名
func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		name           string
		base, rel, ext string
		expected       string
	}{
		{"补全扩展名", "assets", "images/bg", ".png", "assets/images/bg.png"},
		{"保留扩展名", "assets", "images/bg.jpg", ".png", "assets/images/bg.jpg"},
		{"相对路径以斜杠开头", "assets", "/audio/bgm", ".mp3", "assets/audio/bgm.mp3"},
		{"无基础路径", "", "images/desk.png", ".png", "images/desk.png"},
		{"字体不补扩展名", "assets", "fonts/hud.ttf", "", "assets/fonts/hud.ttf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildFullPath(tt.base, tt.rel, tt.ext); got != tt.expected {
				t.Errorf("buildFullPath(%q, %q, %q) = %q, want %q", tt.base, tt.rel, tt.ext, got, tt.expected)
			}
		})
	}
}

// TestPlayerImageID 测试朝向到精灵 ID 的映射
func TestPlayerImageID(t *testing.T) {
	expected := map[Direction]string{
		DirectionUp:    ImagePlayerUp,
		DirectionDown:  ImagePlayerDown,
		DirectionLeft:  ImagePlayerLeft,
		DirectionRight: ImagePlayerRight,
	}
	for d, id := range expected {
		if got := PlayerImageID(d); got != id {
			t.Errorf("PlayerImageID(%v) = %s, want %s", d, got, id)
		}
	}
}

// TestLoadShippedResourceConfig 验证仓库自带的资源清单
func TestLoadShippedResourceConfig(t *testing.T) {
	configPath := "../../assets/config/resources.yaml"
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		t.Skip("Skipping test - resource config file not found:", configPath)
	}
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		t.Fatalf("ParseResourceConfig failed: %v", err)
	}
	if cfg.BasePath != "assets" {
		t.Errorf("Expected base_path 'assets', got '%s'", cfg.BasePath)
	}

	group, ok := cfg.Groups["game"]
	if !ok {
		t.Fatal("Expected group 'game' not found")
	}
	ids := make(map[string]bool)
	for _, img := range group.Images {
		ids[img.ID] = true
	}
	for _, id := range []string{ImageBackground, ImageDesk, ImagePlayerUp, ImagePlayerDown, ImagePlayerLeft, ImagePlayerRight} {
		if !ids[id] {
			t.Errorf("image %s missing from group 'game'", id)
		}
	}
}
