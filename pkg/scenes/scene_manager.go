package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 创建第 level 关的关卡场景，由 app 注入，避免 scenes 依赖会话装配
type SceneFactory func(level int) Scene

// MenuFactory 创建主菜单场景
type MenuFactory func() Scene

// SceneManager 控制当前活动的场景
// 任何时刻只有一个场景的 Update 和 Draw 会被调用
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	menuFactory  MenuFactory
}

// NewSceneManager 创建场景管理器，初始没有活动场景
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置关卡场景工厂
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SetMenuFactory 设置主菜单工厂
func (sm *SceneManager) SetMenuFactory(factory MenuFactory) {
	sm.menuFactory = factory
}

// SwitchTo 切换活动场景
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadLevel 切换到第 level 关
// 工厂未设置或创建失败时保持当前场景
func (sm *SceneManager) LoadLevel(level int) bool {
	log.Printf("[SceneManager] Loading level %d", level)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] SceneFactory not set")
		return false
	}
	scene := sm.sceneFactory(level)
	if scene == nil {
		log.Printf("[SceneManager] Failed to create scene for level %d", level)
		return false
	}
	sm.SwitchTo(scene)
	return true
}

// ShowMenu 切换到主菜单
func (sm *SceneManager) ShowMenu() bool {
	if sm.menuFactory == nil {
		log.Printf("[SceneManager] MenuFactory not set")
		return false
	}
	sm.SwitchTo(sm.menuFactory())
	return true
}

// SaveOnExit 当前场景实现 Saveable 时保存
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}

// Update 更新当前场景，没有活动场景时什么都不做
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw 绘制当前场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
