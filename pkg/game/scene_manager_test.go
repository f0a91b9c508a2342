package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// saveableScene 实现 Saveable 的模拟场景
type saveableScene struct {
	MockScene
	saved  bool
	result bool
}

func (s *saveableScene) SaveOnExit() bool {
	s.saved = true
	return s.result
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected current scene to be nil initially")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update/Draw handle a nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.Draw(nil)
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should succeed")
	}
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(nil)

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerLoad 测试通过工厂切换场景
func TestSceneManagerLoad(t *testing.T) {
	tests := []struct {
		name    string
		factory SceneFactory
		scene   string
		want    bool
	}{
		{"未设置工厂", nil, SceneGame, false},
		{"工厂返回nil", func(string) Scene { return nil }, SceneGame, false},
		{"成功切换", func(name string) Scene {
			if name == SceneGame {
				return &MockScene{}
			}
			return nil
		}, SceneGame, true},
		{"未知场景", func(name string) Scene {
			if name == SceneGame {
				return &MockScene{}
			}
			return nil
		}, "menu", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			previous := &MockScene{}
			sm.SwitchTo(previous)
			sm.SetSceneFactory(tt.factory)

			if got := sm.Load(tt.scene); got != tt.want {
				t.Errorf("Load(%q) = %v, want %v", tt.scene, got, tt.want)
			}
			switched := sm.GetCurrentScene() != Scene(previous)
			if switched != tt.want {
				t.Errorf("switched = %v, want %v", switched, tt.want)
			}
		})
	}
}

// TestSceneManagerSaveOnExit 当前场景实现 Saveable 时转发保存
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	scene := &saveableScene{result: false}
	sm.SwitchTo(scene)

	if sm.SaveOnExit() {
		t.Error("SaveOnExit should return the scene's result")
	}
	if !scene.saved {
		t.Error("scene SaveOnExit was not called")
	}
}
