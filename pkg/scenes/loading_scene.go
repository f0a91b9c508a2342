package scenes

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/logging"
	"github.com/Drodd/2dBakery/pkg/systems"
	"github.com/Drodd/2dBakery/pkg/utils"
)

// GameResourceGroup 游戏场景使用的资源组
const GameResourceGroup = "game"

// Assets 加载场景产出的资源，由游戏场景使用
// 每一项都可能缺失，绘制与音频都有回退
type Assets struct {
	Images  systems.RenderImages
	Music   game.MusicPlayer       // nil 表示没有背景音乐
	HUDFont *text.GoTextFaceSource // nil 表示使用回退字体
}

// LoadingScene 加载场景
//
// 第一次 Update 时同步加载全部资源：
//   - 资源组 game 中的图片，单张失败只记录警告
//   - 背景音乐（尽力而为）
//   - HUD 字体（可选）
//
// 无论成功与否，加载结束后都切换到游戏场景。
type LoadingScene struct {
	resourceManager *game.ResourceManager
	sceneManager    *game.SceneManager
	cfg             *config.GameConfig
	assets          *Assets

	loaded bool
	face   text.Face
	logger *log.Logger
}

// NewLoadingScene 创建加载场景
//
// 参数：
//   - rm: 已载入资源清单的资源管理器
//   - sm: 场景管理器，加载完成后通过它切换场景
//   - cfg: 游戏配置（用于背景音乐路径）
//   - assets: 加载结果写入此处，游戏场景工厂从这里读取
func NewLoadingScene(rm *game.ResourceManager, sm *game.SceneManager, cfg *config.GameConfig, assets *Assets) *LoadingScene {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	s := &LoadingScene{
		resourceManager: rm,
		sceneManager:    sm,
		cfg:             cfg,
		assets:          assets,
		logger:          logging.For("LoadingScene"),
	}
	if src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err == nil {
		s.face = &text.GoTextFace{Source: src, Size: config.HUDFontSize}
	}
	return s
}

// Loaded 资源是否已加载完成
func (s *LoadingScene) Loaded() bool {
	return s.loaded
}

// Update 加载资源并切换到游戏场景
func (s *LoadingScene) Update(deltaTime float64) {
	if s.loaded {
		return
	}
	s.load()
	s.loaded = true
	s.sceneManager.Load(game.SceneGame)
}

func (s *LoadingScene) load() {
	rm := s.resourceManager
	if err := rm.LoadResourceGroup(GameResourceGroup); err != nil {
		s.logger.Warn("some images failed to load, using fallbacks", "err", err)
	}
	s.assets.Images = systems.LoadRenderImages(rm)
	s.assets.Music = s.loadMusic()

	if rm.HasResource(game.FontHUD) {
		src, err := rm.LoadFontSourceByID(game.FontHUD)
		if err != nil {
			s.logger.Warn("failed to load HUD font", "err", err)
		} else {
			s.assets.HUDFont = src
		}
	}
	s.logger.Info("assets loaded",
		"background", s.assets.Images.Background != nil,
		"desk", s.assets.Images.Desk != nil,
		"music", s.assets.Music != nil,
		"font", s.assets.HUDFont != nil)
}

// loadMusic 优先使用配置中的路径，失败时再查资源清单
func (s *LoadingScene) loadMusic() game.MusicPlayer {
	rm := s.resourceManager
	if p := s.cfg.Audio.BGM; p != "" {
		player, err := rm.LoadAudio(p)
		if err == nil {
			return player
		}
		s.logger.Warn("failed to load BGM", "path", p, "err", err)
	}
	if rm.HasResource(game.SoundBGM) {
		player, err := rm.LoadAudioByID(game.SoundBGM)
		if err == nil {
			return player
		}
		s.logger.Warn("failed to load BGM", "id", game.SoundBGM, "err", err)
	}
	return nil
}

// Draw 绘制加载画面
func (s *LoadingScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	screen.Fill(systems.BackgroundFallbackColor)
	utils.DrawText(screen, "Loading...", s.face,
		s.cfg.World.Width/2, s.cfg.World.Height/2,
		config.HUDTextColor, text.AlignCenter)
}
