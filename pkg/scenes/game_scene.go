package scenes

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Drodd/2dBakery/pkg/config"
	"github.com/Drodd/2dBakery/pkg/game"
	"github.com/Drodd/2dBakery/pkg/logging"
	"github.com/Drodd/2dBakery/pkg/systems"
	"github.com/Drodd/2dBakery/pkg/utils"
)

var _ game.Saveable = (*GameScene)(nil)

// Window 窗口控制，由 app 提供
type Window interface {
	IsFullscreen() bool
	SetFullscreen(enabled bool)
}

// GameScene 游戏场景
//
// 每帧顺序：
//  1. 收集键盘与屏幕按钮事件，写入 GameState
//  2. 本帧有用户交互（任意按键或任意位置的指针按下）时尝试启动背景音乐
//  3. 推进模拟
//  4. 推进 HUD 动画
type GameScene struct {
	state *game.GameState

	renderSystem  *systems.RenderSystem
	hudSystem     *systems.HUDRenderSystem
	inputSystem   *systems.InputSystem
	touchControls *systems.TouchControls

	audioManager    *game.AudioManager
	settingsManager *game.SettingsManager
	window          Window

	pointers []utils.Pointer
	focused  bool

	logger *log.Logger
}

// NewGameScene 创建游戏场景
//
// 参数：
//   - cfg: 已验证的游戏配置
//   - assets: 加载场景的结果，可为 nil（全部使用回退）
//   - am: 音频管理器，assets 中有音乐时交给它，nil 时新建
//   - sm: 设置管理器，用于保存全屏偏好，nil 时使用内存设置
//   - window: 窗口控制，可为 nil（全屏切换被忽略）
func NewGameScene(cfg *config.GameConfig, assets *Assets, am *game.AudioManager, sm *game.SettingsManager, window Window) *GameScene {
	if cfg == nil {
		cfg = config.DefaultGameConfig()
	}
	if assets == nil {
		assets = &Assets{}
	}
	if sm == nil {
		sm = game.NewSettingsManager(nil)
	}
	if am == nil {
		am = game.NewAudioManager(sm, cfg.Audio.BGMVolume)
	}
	if assets.Music != nil {
		am.SetMusic(assets.Music)
	}

	state := game.NewGameState(cfg)
	s := &GameScene{
		state:           state,
		renderSystem:    systems.NewRenderSystem(assets.Images, cfg),
		hudSystem:       systems.NewHUDRenderSystem(assets.HUDFont),
		inputSystem:     systems.NewInputSystem(nil),
		touchControls:   systems.NewTouchControls(state.WorldWidth, state.WorldHeight, cfg.Controls.AlwaysVisible),
		audioManager:    am,
		settingsManager: sm,
		window:          window,
		focused:         true,
		logger:          logging.For("GameScene"),
	}
	s.logger.Debug("game scene ready",
		"music", am.HasMusic(),
		"touchControls", s.touchControls.Visible())
	return s
}

// State 返回当前游戏状态
func (s *GameScene) State() *game.GameState {
	return s.state
}

// Update 读取本帧输入并推进一帧
func (s *GameScene) Update(deltaTime float64) {
	s.pointers = utils.AppendPointers(s.pointers[:0])
	keys := s.inputSystem.Poll()
	s.Tick(deltaTime, keys, s.inputSystem.AnyKeyPressed(), s.pointers, ebiten.IsFocused())
}

// Tick 用给定输入推进一帧
//
// 参数：
//   - dt: 已限幅的帧时间（秒）
//   - keys: 本帧键盘事件
//   - keyPressed: 本帧是否有任意按键按下（包括未绑定的键）
//   - pointers: 本帧处于按下状态的指针
//   - focused: 窗口是否有焦点，失去焦点时释放所有按住的方向
//
// 返回：
//   - game.StepResult: 本帧步进结果
func (s *GameScene) Tick(dt float64, keys []game.KeyEvent, keyPressed bool, pointers []utils.Pointer, focused bool) game.StepResult {
	interacted := keyPressed

	if !focused && s.focused {
		for _, ev := range s.touchControls.Cancel() {
			s.state.HandlePointer(ev)
		}
		// 失焦期间收不到抬起事件
		s.state.Input.ReleaseAll()
	}
	s.focused = focused

	for _, ev := range keys {
		if s.state.HandleKey(ev) {
			interacted = true
		}
		if !ev.Down {
			continue
		}
		switch ev.Action {
		case game.ActionToggleMute:
			muted := s.audioManager.ToggleMute()
			s.logger.Debug("mute toggled", "muted", muted)
		case game.ActionToggleFullscreen:
			s.toggleFullscreen()
		}
	}

	if focused {
		for _, ev := range s.touchControls.Update(pointers) {
			if s.state.HandlePointer(ev) {
				interacted = true
			}
		}
		if s.touchControls.PointerLanded() {
			interacted = true
		}
	}

	if interacted {
		s.audioManager.TryStartMusic()
	}

	result := s.state.Step(dt, s.state.Input.Snapshot())
	switch result.Event {
	case game.EventTimeUp:
		s.logger.Info("time is up", "x", s.state.Player.X, "y", s.state.Player.Y)
	case game.EventReachedFlag:
		s.logger.Info("reached the flag", "remaining", s.state.Timer.Remaining)
	}

	s.hudSystem.Update(dt, s.state.Status)
	return result
}

func (s *GameScene) toggleFullscreen() {
	if s.window == nil {
		return
	}
	enabled := !s.window.IsFullscreen()
	s.window.SetFullscreen(enabled)
	s.settingsManager.SetFullscreen(enabled)
	s.logger.Debug("fullscreen toggled", "enabled", enabled)
}

// Draw 绘制场景、屏幕按钮与 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	if screen == nil {
		return
	}
	s.renderSystem.Draw(screen, s.renderSystem.View(s.state))
	s.touchControls.Draw(screen, s.state.Input.Snapshot())
	s.hudSystem.Draw(screen, s.state)
}

// SaveOnExit 保存用户设置
func (s *GameScene) SaveOnExit() bool {
	if err := s.settingsManager.Save(); err != nil {
		s.logger.Warn("failed to save settings", "err", err)
		return false
	}
	return true
}
