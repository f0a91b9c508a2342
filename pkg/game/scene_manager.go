package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Drodd/2dBakery/pkg/logging"
)

// 已知场景名称
const (
	SceneLoading = "loading"
	SceneGame    = "game"
)

// SceneFactory 场景工厂函数类型
// 根据名称创建场景，避免场景之间直接依赖对方的构造参数
type SceneFactory func(name string) Scene

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	logger       *log.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		logger: logging.For("SceneManager"),
	}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并切换到指定场景
//
// 参数：
//   - name: 场景名称（如 SceneGame）
//
// 返回：
//   - bool: 是否切换成功
func (sm *SceneManager) Load(name string) bool {
	sm.logger.Debug("loading scene", "name", name)

	if sm.sceneFactory == nil {
		sm.logger.Error("scene factory not set", "name", name)
		return false
	}

	newScene := sm.sceneFactory(name)
	if newScene == nil {
		sm.logger.Error("factory returned no scene", "name", name)
		return false
	}
	sm.SwitchTo(newScene)
	sm.logger.Info("switched scene", "name", name)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// SaveOnExit 若当前场景实现了 Saveable 则调用它
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
