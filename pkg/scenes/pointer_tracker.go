package scenes

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/bubblerow/pkg/suggest"
)

// PointerSample 一帧的指针采样（鼠标或触摸）
type PointerSample struct {
	Pressed bool
	X, Y    int
}

// PollPointer 读取当前帧的指针状态
// 优先跟踪触摸，没有触摸时使用鼠标左键
func PollPointer(touchID *ebiten.TouchID) PointerSample {
	if *touchID < 0 {
		if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
			*touchID = ids[0]
		}
	}
	if *touchID >= 0 {
		for _, id := range ebiten.AppendTouchIDs(nil) {
			if id == *touchID {
				x, y := ebiten.TouchPosition(id)
				return PointerSample{Pressed: true, X: x, Y: y}
			}
		}
		// 触摸已释放
		*touchID = -1
		return PointerSample{}
	}

	x, y := ebiten.CursorPosition()
	return PointerSample{
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		X:       x,
		Y:       y,
	}
}

// PointerTracker 将逐帧指针采样转换为按下/移动/抬起事件
//
// 状态转换：
//   - 未按下 → 按下: PointerDown
//   - 按下且位置变化: PointerMove
//   - 按下 → 未按下: PointerUp（使用最后一次按下时的位置）
//
// 触摸释放后无法读取位置，因此抬起事件沿用最后位置。
type PointerTracker struct {
	pressed bool
	lastX   int
	lastY   int
}

// NewPointerTracker 创建指针跟踪器
func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Step 处理一帧采样，返回产生的事件（最多一个）
// 坐标减去 (originX, originY)，转换为目标区域内的局部坐标
func (t *PointerTracker) Step(s PointerSample, now time.Duration, originX, originY int) (suggest.PointerEvent, bool) {
	event := suggest.PointerEvent{Time: now}

	switch {
	case s.Pressed && !t.pressed:
		event.Kind = suggest.PointerDown
		t.lastX, t.lastY = s.X, s.Y

	case s.Pressed && t.pressed:
		if s.X == t.lastX && s.Y == t.lastY {
			return suggest.PointerEvent{}, false
		}
		event.Kind = suggest.PointerMove
		t.lastX, t.lastY = s.X, s.Y

	case !s.Pressed && t.pressed:
		event.Kind = suggest.PointerUp

	default:
		return suggest.PointerEvent{}, false
	}

	t.pressed = s.Pressed
	event.X = float64(t.lastX - originX)
	event.Y = float64(t.lastY - originY)
	return event, true
}

// Pressed 当前是否处于按下状态
func (t *PointerTracker) Pressed() bool {
	return t.pressed
}

// Cancel 放弃当前按下，返回取消事件
func (t *PointerTracker) Cancel(now time.Duration) (suggest.PointerEvent, bool) {
	if !t.pressed {
		return suggest.PointerEvent{}, false
	}
	t.pressed = false
	return suggest.PointerEvent{Kind: suggest.PointerCancel, Time: now}, true
}
