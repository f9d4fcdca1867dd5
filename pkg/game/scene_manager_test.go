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
	finished     bool
	saved        bool
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

func (m *MockScene) Finished() bool {
	return m.finished
}

func (m *MockScene) SaveOnExit() bool {
	m.saved = true
	return true
}

// plainScene 不实现任何可选接口
type plainScene struct{}

func (plainScene) Update(float64) {}
func (plainScene) Draw(*ebiten.Image) {}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if sm.Finished() {
		t.Error("Finished() should be false without a scene")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 1.0 / 60.0
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.4f, got %.4f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update/Draw handle nil scene gracefully.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(1.0 / 60.0)
	sm.Draw(ebiten.NewImage(1, 1))
}

// TestSceneManagerDraw verifies that Draw calls the current scene's Draw method.
func TestSceneManagerDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Draw(ebiten.NewImage(10, 10))

	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

// TestSceneManagerFinished 测试 Finisher 透传
func TestSceneManagerFinished(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	if sm.Finished() {
		t.Error("Finished() should be false before the scene finishes")
	}
	mockScene.finished = true
	if !sm.Finished() {
		t.Error("Finished() should be true after the scene finishes")
	}

	sm.SwitchTo(plainScene{})
	if sm.Finished() {
		t.Error("Finished() should be false for scenes without Finisher")
	}
}

// TestSceneManagerSaveOnExit 测试 Saveable 透传
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit() without scene should succeed")
	}

	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)
	sm.SaveOnExit()
	if !mockScene.saved {
		t.Error("Scene's SaveOnExit was not called")
	}
}

// TestSceneManagerRestart 测试工厂重新创建场景
func TestSceneManagerRestart(t *testing.T) {
	sm := NewSceneManager()
	if sm.Restart() {
		t.Error("Restart() without factory should fail")
	}

	created := 0
	sm.SetSceneFactory(func() Scene {
		created++
		return &MockScene{}
	})

	first := &MockScene{finished: true}
	sm.SwitchTo(first)
	if !sm.Restart() {
		t.Fatal("Restart() failed")
	}
	if created != 1 {
		t.Errorf("factory called %d times, want 1", created)
	}
	if sm.GetCurrentScene() == first {
		t.Error("Restart() did not switch scenes")
	}
	if sm.Finished() {
		t.Error("new scene should not be finished")
	}
}
