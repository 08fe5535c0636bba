package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bubblerow/pkg/components"
)

// keyRepeat 第 1 帧立即响应，按住 30 帧后每 3 帧响应一次
func keyRepeat(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	return d == 1 || (d >= 30 && d%3 == 0)
}

// HandleKeyboardInput 处理查询输入框的键盘输入
// 返回文本是否发生变化
func HandleKeyboardInput(input *components.TextInputComponent) bool {
	if !input.IsFocused {
		return false
	}

	changed := false

	if runes := ebiten.AppendInputChars(nil); len(runes) > 0 {
		changed = input.Insert(string(runes)) || changed
	}
	if keyRepeat(ebiten.KeyBackspace) {
		changed = input.DeleteBefore() || changed
	}
	if keyRepeat(ebiten.KeyDelete) {
		changed = input.DeleteAfter() || changed
	}
	if keyRepeat(ebiten.KeyArrowLeft) {
		input.MoveCursorLeft()
	}
	if keyRepeat(ebiten.KeyArrowRight) {
		input.MoveCursorRight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		input.MoveCursorHome()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		input.MoveCursorEnd()
	}

	return changed
}
