package game

import (
	"github.com/charmbracelet/log"

	"github.com/Drodd/2dBakery/pkg/logging"
)

// MusicPlayer 背景音乐播放器
// *audio.Player 满足此接口；测试中可替换为假播放器
type MusicPlayer interface {
	Play()
	Pause()
	IsPlaying() bool
	SetVolume(volume float64)
	Rewind() error
}

// AudioManager 音频管理器
// 职责：
//   - 管理唯一的背景音乐
//   - 首次用户交互后才开始播放（TryStartMusic）
//   - 应用音量与静音设置
//
// 播放门控是幂等的：一旦开始，后续交互不再重复启动；
// 启动失败（无音乐、静音、播放器未进入播放状态）会重置门控，下一次交互重试。
type AudioManager struct {
	settingsManager *SettingsManager // 可为 nil
	music           MusicPlayer      // 可为 nil（音乐缺失或加载失败）
	baseVolume      float64          // 配置中的 bgmVolume
	started         bool
	logger          *log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - sm: SettingsManager 实例（用于读取音量与静音设置，可为 nil）
//   - baseVolume: 背景音乐基础音量 0.0 ~ 1.0
func NewAudioManager(sm *SettingsManager, baseVolume float64) *AudioManager {
	return &AudioManager{
		settingsManager: sm,
		baseVolume:      baseVolume,
		logger:          logging.For("AudioManager"),
	}
}

// SetMusic 设置背景音乐播放器，nil 表示没有音乐
func (am *AudioManager) SetMusic(player MusicPlayer) {
	if am.music != nil && am.music != player {
		am.music.Pause()
	}
	am.music = player
	am.started = false
}

// HasMusic 是否有可用的背景音乐
func (am *AudioManager) HasMusic() bool {
	return am.music != nil
}

// Started 音乐是否已经开始播放
func (am *AudioManager) Started() bool {
	return am.started
}

// TryStartMusic 在用户交互时尝试开始播放背景音乐
//
// 返回：
//   - bool: 本次调用是否真正开始了播放（已开始或失败时返回 false）
func (am *AudioManager) TryStartMusic() bool {
	if am.started {
		return false
	}
	am.started = true

	if am.music == nil {
		am.started = false
		return false
	}
	if am.isMuted() {
		am.started = false
		return false
	}

	am.music.SetVolume(am.Volume())
	if err := am.music.Rewind(); err != nil {
		am.logger.Warn("failed to rewind music", "error", err)
	}
	am.music.Play()

	if !am.music.IsPlaying() {
		am.logger.Warn("music did not start, will retry on next interaction")
		am.started = false
		return false
	}

	am.logger.Info("music started", "volume", am.Volume())
	return true
}

// ToggleMute 切换静音并立即应用
//
// 返回：
//   - bool: 切换后是否静音
func (am *AudioManager) ToggleMute() bool {
	muted := !am.isMuted()
	if am.settingsManager != nil {
		am.settingsManager.SetMuted(muted)
	}

	if am.music != nil && am.started {
		if muted {
			am.music.Pause()
		} else {
			am.music.SetVolume(am.Volume())
			am.music.Play()
		}
	}
	am.logger.Debug("mute toggled", "muted", muted)
	return muted
}

// Volume 返回实际播放音量（基础音量 × 设置中的音乐音量）
func (am *AudioManager) Volume() float64 {
	v := am.baseVolume
	if am.settingsManager != nil {
		v *= am.settingsManager.GetSettings().MusicVolume
	}
	return v
}

// StopMusic 停止背景音乐并重置门控
func (am *AudioManager) StopMusic() {
	if am.music != nil {
		am.music.Pause()
	}
	am.started = false
}

func (am *AudioManager) isMuted() bool {
	return am.settingsManager != nil && am.settingsManager.GetSettings().Muted
}
