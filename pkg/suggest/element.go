package suggest

import (
	"math"
	"time"

	"github.com/decker502/bubblerow/pkg/utils"
)

// RevealDuration 气泡展开动画时长
const RevealDuration = 1000 * time.Millisecond

// Element 单个建议气泡
//
// 负责一个标签的尺寸、逐字显现动画和点击检测。
// 宽度动画期间只绘制能完整放进当前宽度的前缀字符，
// 配合宽度增长形成"逐字展开"的效果。
//
// 元素不持有所在的 Row，只通过 SetSizeChangedFunc 注册的回调通知尺寸变化。
type Element struct {
	measurer TextMeasurer
	theme    Theme
	clock    *FrameClock

	label      string
	runes      []rune
	runeWidths []float64

	target   Size
	current  Size
	baseline float64
	offset   int

	tween         Tween
	tick          FrameHandle
	onSizeChanged func()
}

// NewElement 创建空气泡，高度由字体行高和上下内边距决定，宽度为 0
func NewElement(measurer TextMeasurer, theme Theme, clock *FrameClock) *Element {
	e := &Element{
		measurer: measurer,
		theme:    theme,
		clock:    clock,
	}
	e.target.Height = bubbleHeight(measurer.Metrics(), theme)
	e.baseline = baselineOffset(measurer.Metrics(), e.target.Height)
	return e
}

func bubbleHeight(m FontMetrics, theme Theme) int {
	return int(m.LineHeight() + theme.VerticalPadding*2)
}

// baselineOffset 文本在气泡内垂直居中时的基线位置
func baselineOffset(m FontMetrics, height int) float64 {
	return float64(height)/2 + (m.Ascent-m.Descent)/2
}

// SetSizeChangedFunc 注册尺寸变化回调（每个动画帧、立即定尺寸时调用）
func (e *Element) SetSizeChangedFunc(fn func()) {
	e.onSizeChanged = fn
}

// SetText 设置标签并计算目标尺寸
// 相同标签重复调用得到相同结果
func (e *Element) SetText(label string) {
	e.label = label
	e.runes = []rune(label)
	e.runeWidths = e.runeWidths[:0]
	// 与 RevealedCount 相同的累加顺序，静止时全部字符可见
	right := e.theme.Padding
	for _, r := range e.runes {
		w := e.measurer.Advance(string(r))
		e.runeWidths = append(e.runeWidths, w)
		right += w
	}

	metrics := e.measurer.Metrics()
	e.target = Size{
		Width:  int(math.Ceil(right + e.theme.Padding)),
		Height: bubbleHeight(metrics, e.theme),
	}
	e.baseline = baselineOffset(metrics, e.target.Height)
}

// StartRevealAnimation 从当前宽度向目标宽度做补间
//
// 高度立即跳到目标值。动画进行中再次调用会从当前宽度重新开始。
func (e *Element) StartRevealAnimation() {
	e.current.Height = e.target.Height
	e.tween.Start(e.current.Width, e.target.Width, e.clock.Now(), RevealDuration, utils.EaseAccelerateDecelerate)
	if !e.tick.Active() {
		e.tick = e.clock.Post(e.onFrame)
	}
}

func (e *Element) onFrame(now time.Duration) bool {
	width, done := e.tween.Advance(now)
	e.current.Width = width
	e.notifySizeChanged()
	return done
}

// SetImmediateSize 跳过动画直接使用目标尺寸
func (e *Element) SetImmediateSize() {
	e.tween.Stop()
	e.tick.Cancel()
	e.current = e.target
	e.notifySizeChanged()
}

func (e *Element) notifySizeChanged() {
	if e.onSizeChanged != nil {
		e.onSizeChanged()
	}
}

// Animating 宽度动画是否进行中
func (e *Element) Animating() bool {
	return e.tween.Running()
}

// Label 当前标签
func (e *Element) Label() string {
	return e.label
}

// TargetSize 目标尺寸
func (e *Element) TargetSize() Size {
	return e.target
}

// CurrentSize 当前（动画中的）尺寸
func (e *Element) CurrentSize() Size {
	return e.current
}

// Offset 元素在行内的左边位置，由 Row 分配
func (e *Element) Offset() int {
	return e.offset
}

// SetOffset 设置元素在行内的左边位置
func (e *Element) SetOffset(offset int) {
	e.offset = offset
}

// RevealedCount 当前宽度下可以完整绘制的前缀字符数
func (e *Element) RevealedCount() int {
	left := e.theme.Padding
	limit := float64(e.current.Width)
	for i, w := range e.runeWidths {
		if left+w+e.theme.Padding > limit {
			return i
		}
		left += w
	}
	return len(e.runeWidths)
}

// Render 在 (originX + offset, originY) 处绘制圆角背景和已显现的字符
func (e *Element) Render(s Surface, originX, originY float64) {
	if e.current.Width <= 0 || e.current.Height <= 0 {
		return
	}
	x := originX + float64(e.offset)
	s.FillRoundRect(x, originY, float64(e.current.Width), float64(e.current.Height), e.theme.Radius, e.theme.BubbleColor)

	left := e.theme.Padding
	n := e.RevealedCount()
	for i := 0; i < n; i++ {
		s.DrawText(string(e.runes[i]), x+left, originY+e.baseline, e.theme.TextColor)
		left += e.runeWidths[i]
	}
}

// HitTest 点是否落在当前绘制范围内
// 坐标为行内坐标；只检查外接矩形，不考虑圆角
func (e *Element) HitTest(x, y int) bool {
	return x >= e.offset && x < e.offset+e.current.Width &&
		y >= 0 && y < e.current.Height
}
