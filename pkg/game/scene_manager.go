package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 场景在切换时才创建，创建失败返回错误
type SceneFactory func() (Scene, error)

// SceneManager manages which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentName  string
	factories    map[string]SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or Switch to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册命名场景的工厂函数，同名覆盖
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// Names 已注册的场景名称（排序后）
func (sm *SceneManager) Names() []string {
	names := make([]string, 0, len(sm.factories))
	for name := range sm.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Switch 创建并切换到命名场景
func (sm *SceneManager) Switch(name string) error {
	factory, ok := sm.factories[name]
	if !ok {
		return fmt.Errorf("scene %q not registered", name)
	}

	scene, err := factory()
	if err != nil {
		return fmt.Errorf("failed to create scene %q: %w", name, err)
	}

	sm.SwitchTo(scene)
	sm.currentName = name
	log.Printf("[SceneManager] 切换到场景: %s", name)
	return nil
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
	sm.currentName = ""
}

// GetCurrentScene 返回当前活动的场景，没有活动场景时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentName 当前场景名称，通过 SwitchTo 直接设置的场景为空
func (sm *SceneManager) CurrentName() string {
	return sm.currentName
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
