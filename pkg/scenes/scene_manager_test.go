package scenes

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene 记录调用的测试场景
type MockScene struct {
	level        int
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	saved        bool
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) SaveOnExit() bool {
	m.saved = true
	return true
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	// 没有场景时不会 panic
	sm.Update(0.016)
	sm.Draw(nil)

	scene := &MockScene{}
	sm.SwitchTo(scene)
	sm.Update(0.016)
	sm.Draw(ebiten.NewImage(10, 10))

	if !scene.updateCalled || scene.deltaTime != 0.016 {
		t.Errorf("Update not forwarded, deltaTime %v", scene.deltaTime)
	}
	if !scene.drawCalled {
		t.Error("Draw not forwarded")
	}
	if sm.GetCurrentScene() != scene {
		t.Error("GetCurrentScene mismatch")
	}
}

func TestSceneManagerLoadLevel(t *testing.T) {
	sm := NewSceneManager()
	if sm.LoadLevel(1) {
		t.Error("LoadLevel without a factory should fail")
	}

	sm.SetSceneFactory(func(level int) Scene {
		if level > 3 {
			return nil
		}
		return &MockScene{level: level}
	})
	if !sm.LoadLevel(2) {
		t.Fatal("LoadLevel(2) failed")
	}
	current := sm.GetCurrentScene().(*MockScene)
	if current.level != 2 {
		t.Errorf("level = %d, want 2", current.level)
	}

	if sm.LoadLevel(9) {
		t.Error("factory returning nil should fail")
	}
	if sm.GetCurrentScene() != current {
		t.Error("failed load must keep the current scene")
	}
}

func TestSceneManagerMenuAndSave(t *testing.T) {
	sm := NewSceneManager()
	if sm.ShowMenu() {
		t.Error("ShowMenu without a factory should fail")
	}
	menu := &MockScene{}
	sm.SetMenuFactory(func() Scene { return menu })
	if !sm.ShowMenu() || sm.GetCurrentScene() != menu {
		t.Fatal("ShowMenu did not switch to the menu")
	}
	if !sm.SaveOnExit() || !menu.saved {
		t.Error("SaveOnExit should reach a Saveable scene")
	}
}
