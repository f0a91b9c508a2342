package scenes

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Drodd/2dBakery/pkg/game"
)

// stubScene 记录调用次数的场景
type stubScene struct {
	updates int
}

func (s *stubScene) Update(deltaTime float64)  { s.updates++ }
func (s *stubScene) Draw(screen *ebiten.Image) {}

func encodeTestPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

const testManifest = `
base_path: assets
groups:
  game:
    images:
      - id: IMAGE_BG
        path: images/bg_bakery.png
      - id: IMAGE_DESK
        path: images/bg_item_desk.png
      - id: IMAGE_PLAYER_DOWN
        path: images/player_move_down.png
    sounds:
      - id: SOUND_BGM
        path: audio/bgm_main.mp3
`

// newTestLoading 创建使用内存文件的加载场景，工厂返回记录名称的桩场景
func newTestLoading(t *testing.T, files fstest.MapFS, manifest string) (*LoadingScene, *game.SceneManager, *Assets, *[]string) {
	t.Helper()
	rm := game.NewResourceManager(nil)
	rm.SetOpener(func(p string) (io.ReadCloser, error) {
		return files.Open(p)
	})
	if manifest != "" {
		cfg, err := game.ParseResourceConfig([]byte(manifest))
		if err != nil {
			t.Fatalf("ParseResourceConfig: %v", err)
		}
		rm.SetResourceConfig(cfg)
	}

	var loaded []string
	sm := game.NewSceneManager()
	sm.SetSceneFactory(func(name string) game.Scene {
		loaded = append(loaded, name)
		return &stubScene{}
	})

	assets := &Assets{}
	return NewLoadingScene(rm, sm, nil, assets), sm, assets, &loaded
}

// TestLoadingSceneToleratesMissingAssets 测试部分资源缺失时仍进入游戏
func TestLoadingSceneToleratesMissingAssets(t *testing.T) {
	files := fstest.MapFS{
		"assets/images/bg_bakery.png":       {Data: encodeTestPNG(t, 8, 4)},
		"assets/images/player_move_down.png": {Data: []byte("not a png")},
	}
	ls, sm, assets, loaded := newTestLoading(t, files, testManifest)

	if ls.Loaded() {
		t.Fatal("scene should not be loaded before the first Update")
	}
	ls.Update(1.0 / 60)

	if !ls.Loaded() {
		t.Error("scene should be loaded after Update")
	}
	if len(*loaded) != 1 || (*loaded)[0] != game.SceneGame {
		t.Errorf("expected one switch to %q, got %v", game.SceneGame, *loaded)
	}
	if _, ok := sm.GetCurrentScene().(*stubScene); !ok {
		t.Errorf("current scene should be the game scene, got %T", sm.GetCurrentScene())
	}

	if assets.Images.Background == nil {
		t.Error("background should be loaded")
	}
	if assets.Images.Desk != nil {
		t.Error("missing desk should stay nil")
	}
	if assets.Images.Player[game.DirectionDown] != nil {
		t.Error("undecodable sprite should stay nil")
	}
	if assets.Music != nil {
		t.Error("music needs an audio context, should be nil")
	}
	if assets.HUDFont != nil {
		t.Error("no FONT_HUD declared, font should be nil")
	}

	// 再次 Update 不会重复加载
	ls.Update(1.0 / 60)
	if len(*loaded) != 1 {
		t.Errorf("second Update should not switch again, got %v", *loaded)
	}
}

// TestLoadingSceneWithoutManifest 测试没有资源清单时直接进入游戏
func TestLoadingSceneWithoutManifest(t *testing.T) {
	ls, _, assets, loaded := newTestLoading(t, fstest.MapFS{}, "")
	ls.Update(1.0 / 60)

	if len(*loaded) != 1 {
		t.Fatalf("expected a switch to the game scene, got %v", *loaded)
	}
	if assets.Images.Background != nil || assets.Images.Desk != nil {
		t.Error("no manifest, images should be nil")
	}
}

// TestLoadingSceneLoadsHUDFont 测试加载可选的 HUD 字体
func TestLoadingSceneLoadsHUDFont(t *testing.T) {
	manifest := testManifest + `
    fonts:
      - id: FONT_HUD
        path: fonts/hud.ttf
`
	files := fstest.MapFS{
		"assets/fonts/hud.ttf": {Data: goregular.TTF},
	}
	ls, _, assets, _ := newTestLoading(t, files, manifest)
	ls.Update(1.0 / 60)

	if assets.HUDFont == nil {
		t.Error("HUD font should be loaded")
	}
}

// TestLoadingSceneDraw 测试加载画面绘制
func TestLoadingSceneDraw(t *testing.T) {
	ls, _, _, _ := newTestLoading(t, fstest.MapFS{}, "")
	ls.Draw(ebiten.NewImage(64, 64))
	ls.Draw(nil)
}
