// Package game 提供场景抽象和场景管理器
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., the suggestion demo).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Sized 是一个可选接口，场景通过它声明自己的逻辑屏幕尺寸
type Sized interface {
	Width() int
	Height() int
}
