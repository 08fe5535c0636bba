// Package suggest 实现可横向滚动的建议气泡行
//
// Row 持有固定容量的 Element 池，负责布局偏移、手势解析、
// 拖动/惯性滚动和重绘请求；Element 负责单个标签的尺寸与逐字显现动画。
// 所有状态只在宿主主循环所在的 goroutine 上修改，由 FrameClock 驱动动画。
package suggest

import (
	"image/color"
	"log"
	"time"

	"github.com/decker502/bubblerow/pkg/utils"
)

// MaxSuggestCount 气泡池容量
const MaxSuggestCount = 10

const (
	// scrollbarFadeDelay 停止滚动后滚动条保持可见的时间
	scrollbarFadeDelay = 500 * time.Millisecond
	// scrollbarFadeDuration 滚动条淡出时长
	scrollbarFadeDuration = 250 * time.Millisecond
)

// RowConfig Row 的外观与交互参数
type RowConfig struct {
	Theme    Theme
	Gesture  GestureConfig
	Scroller ScrollerConfig
}

// DefaultRowConfig 默认参数
func DefaultRowConfig() RowConfig {
	return RowConfig{
		Theme:    DefaultTheme(),
		Gesture:  DefaultGestureConfig(),
		Scroller: DefaultScrollerConfig(),
	}
}

// Row 可横向滚动的气泡行
type Row struct {
	theme    Theme
	clock    *FrameClock
	elements [MaxSuggestCount]*Element
	active   int

	scrollX       int
	contentWidth  int
	viewportWidth int

	scroller   *Scroller
	scrollTick FrameHandle
	gestures   *GestureDetector

	// dragRemainder 拖动位移中尚未应用的小数部分
	dragRemainder float64

	scrollbarAwake time.Duration
	scrollbarTick  FrameHandle

	onTap        func(label string)
	onInvalidate func()
}

// NewRow 创建气泡行，气泡池在此一次性分配，之后只复用
func NewRow(measurer TextMeasurer, clock *FrameClock, cfg RowConfig) *Row {
	r := &Row{
		theme:        cfg.Theme,
		clock:        clock,
		scroller:     NewScroller(cfg.Scroller),
		contentWidth: cfg.Theme.HorizontalMargin,
	}
	for i := range r.elements {
		e := NewElement(measurer, cfg.Theme, clock)
		e.SetSizeChangedFunc(r.LayoutOffsets)
		r.elements[i] = e
	}
	r.gestures = NewGestureDetector(cfg.Gesture, rowGestures{r})
	return r
}

// SetTapHandler 注册气泡点击回调
func (r *Row) SetTapHandler(fn func(label string)) {
	r.onTap = fn
}

// SetInvalidateHandler 注册重绘请求回调
func (r *Row) SetInvalidateHandler(fn func()) {
	r.onInvalidate = fn
}

func (r *Row) invalidate() {
	if r.onInvalidate != nil {
		r.onInvalidate()
	}
}

// SetSuggests 替换可见气泡并播放展开动画
//
// 超出容量的标签被截断。先更新所有槽位的标签，再统一启动动画，
// 保证各气泡动画同步开始。
func (r *Row) SetSuggests(labels []string) {
	r.active = r.assignLabels(labels)
	for i := 0; i < r.active; i++ {
		r.elements[i].StartRevealAnimation()
	}
	if r.active == 0 {
		r.LayoutOffsets()
	}
	log.Printf("[SuggestRow] 设置 %d 条建议（动画）", r.active)
}

// SetInitialSuggests 与 SetSuggests 相同，但不播放动画并立即重绘
func (r *Row) SetInitialSuggests(labels []string) {
	r.active = r.assignLabels(labels)
	for i := 0; i < r.active; i++ {
		r.elements[i].SetImmediateSize()
	}
	if r.active == 0 {
		r.LayoutOffsets()
	}
	r.invalidate()
	log.Printf("[SuggestRow] 设置 %d 条建议（无动画）", r.active)
}

func (r *Row) assignLabels(labels []string) int {
	count := len(labels)
	if count > MaxSuggestCount {
		count = MaxSuggestCount
	}
	for i := 0; i < count; i++ {
		r.elements[i].SetText(labels[i])
	}
	return count
}

// LayoutOffsets 重新计算各气泡的水平偏移和内容宽度，执行边缘吸附并请求重绘
func (r *Row) LayoutOffsets() {
	margin := r.theme.HorizontalMargin
	left := margin
	for i := 0; i < r.active; i++ {
		e := r.elements[i]
		e.SetOffset(left)
		left += e.CurrentSize().Width + margin
	}
	r.contentWidth = left

	r.snapToEdge()
	r.invalidate()
}

// snapToEdge 内容收缩时避免右侧出现空白
func (r *Row) snapToEdge() {
	if r.scrollX <= 0 {
		return
	}
	if r.contentWidth < r.viewportWidth {
		r.scrollX = 0
	} else if r.contentWidth-r.scrollX < r.viewportWidth {
		r.scrollX = r.contentWidth - r.viewportWidth
	}
}

// Measure 返回期望尺寸：宽度接受宿主给定值，高度为气泡高度加上下外边距
func (r *Row) Measure(grantedWidth int) (width, height int) {
	return grantedWidth, r.elements[0].TargetSize().Height + r.theme.VerticalMargin*2
}

// SetViewport 宿主布局后设置可见宽度
func (r *Row) SetViewport(width int) {
	if width == r.viewportWidth {
		return
	}
	r.viewportWidth = width
	r.LayoutOffsets()
}

// ActiveCount 当前使用中的气泡数
func (r *Row) ActiveCount() int {
	return r.active
}

// Element 返回第 i 个槽位（包括未激活槽位）
func (r *Row) Element(i int) *Element {
	return r.elements[i]
}

// ContentWidth 所有激活气泡宽度与外边距之和
func (r *Row) ContentWidth() int {
	return r.contentWidth
}

// ViewportWidth 可见宽度
func (r *Row) ViewportWidth() int {
	return r.viewportWidth
}

// ScrollX 当前滚动位置
func (r *Row) ScrollX() int {
	return r.scrollX
}

// ScrollTo 直接设置滚动位置，不做边界限制
func (r *Row) ScrollTo(x int) {
	if x == r.scrollX {
		return
	}
	r.scrollX = x
	r.invalidate()
}

func (r *Row) maxScroll() int {
	return max(0, r.contentWidth-r.viewportWidth)
}

// DispatchPointerEvent 处理宿主转发的指针事件
func (r *Row) DispatchPointerEvent(e PointerEvent) bool {
	// 按下时打断惯性滚动或回弹
	if e.Kind == PointerDown {
		r.dragRemainder = 0
		if !r.scroller.IsFinished() {
			r.scroller.AbortAnimation()
			r.scrollTick.Cancel()
		}
	}

	if r.gestures.OnTouchEvent(e) {
		return true
	}

	if e.Kind == PointerUp || e.Kind == PointerCancel {
		r.settleIntoBounds()
	}
	return true
}

// settleIntoBounds 松手时若越界则动画回到边界
func (r *Row) settleIntoBounds() {
	target := utils.ClampInt(r.scrollX, 0, r.maxScroll())
	if target == r.scrollX {
		return
	}
	log.Printf("[SuggestRow] 越界回弹: %d -> %d", r.scrollX, target)
	r.scroller.StartScroll(r.scrollX, target-r.scrollX, r.clock.Now())
	r.awakenScrollbar()
	r.ensureScrollTick()
}

// drag 按手指位移滚动
//
// 越过边界的位移只应用到边界为止，不会整段丢弃。
// 不足一像素的位移累积到后续移动中。
func (r *Row) drag(distanceX float64) {
	if r.contentWidth < r.viewportWidth {
		r.dragRemainder = 0
		r.ScrollTo(0)
		return
	}

	total := distanceX + r.dragRemainder
	dx := int(total)
	r.dragRemainder = total - float64(dx)

	next := float64(r.scrollX) + total
	if total < 0 {
		if next < 0 {
			dx = -r.scrollX
			r.dragRemainder = 0
		}
	} else if next+float64(r.viewportWidth) > float64(r.contentWidth) {
		dx = min(dx, r.contentWidth-r.scrollX-r.viewportWidth)
		r.dragRemainder = 0
	}
	r.ScrollTo(r.scrollX + dx)
	r.awakenScrollbar()
}

// OnFling 以指针速度开始惯性滚动
// 当前已越界时拒绝（返回 false），交由松手回弹处理
func (r *Row) OnFling(velocityX float64) bool {
	if r.scrollX < 0 || r.scrollX+r.viewportWidth > r.contentWidth {
		log.Printf("[SuggestRow] 越界状态下忽略 fling (scrollX=%d, content=%d)", r.scrollX, r.contentWidth)
		return false
	}
	r.scroller.Fling(r.scrollX, -velocityX, 0, r.maxScroll(), r.clock.Now())
	r.awakenScrollbar()
	r.ensureScrollTick()
	r.invalidate()
	return true
}

// OnTap 返回 (x, y) 处的第一个气泡标签并通知宿主
// 坐标为控件坐标；未命中返回 false
func (r *Row) OnTap(x, y float64) (string, bool) {
	cx := int(x) + r.scrollX
	cy := int(y) - r.theme.VerticalMargin
	for i := 0; i < r.active; i++ {
		e := r.elements[i]
		if e.HitTest(cx, cy) {
			log.Printf("[SuggestRow] 点击气泡 #%d: %q", i, e.Label())
			if r.onTap != nil {
				r.onTap(e.Label())
			}
			return e.Label(), true
		}
	}
	return "", false
}

func (r *Row) ensureScrollTick() {
	if !r.scrollTick.Active() {
		r.scrollTick = r.clock.Post(r.ComputeScroll)
	}
}

// ComputeScroll 帧回调：采样滚动模拟并更新滚动位置
//
// 采样值超出 [0, contentWidth] 时跳过本帧，视为短暂的不一致。
// 惯性滚动途中内容变窄时停在新的右边界；模拟结束时仍越界则回弹。
// 返回 true 表示模拟已结束。
func (r *Row) ComputeScroll(now time.Duration) bool {
	if r.scroller.IsFinished() {
		return true
	}
	flinging := r.scroller.IsFlinging()
	x, done := r.scroller.Advance(now)
	if flinging && x > r.maxScroll() {
		x = r.maxScroll()
		r.scroller.AbortAnimation()
		done = true
	}
	if x >= 0 && x <= r.contentWidth {
		r.ScrollTo(x)
		r.awakenScrollbar()
	}
	if done && r.outOfBounds() {
		// 本回调仍在注册中，继续驱动回弹
		r.settleIntoBounds()
		return false
	}
	return done
}

func (r *Row) outOfBounds() bool {
	return r.scrollX < 0 || r.scrollX > r.maxScroll()
}

// Flinging 是否处于惯性滚动或回弹中
func (r *Row) Flinging() bool {
	return !r.scroller.IsFinished()
}

func (r *Row) awakenScrollbar() {
	r.scrollbarAwake = r.clock.Now()
	if !r.scrollbarTick.Active() {
		r.scrollbarTick = r.clock.Post(r.fadeScrollbar)
	}
}

func (r *Row) fadeScrollbar(now time.Duration) bool {
	r.invalidate()
	return now-r.scrollbarAwake >= scrollbarFadeDelay+scrollbarFadeDuration
}

// scrollbarAlpha 滚动条当前不透明度 ∈ [0, 1]
func (r *Row) scrollbarAlpha() float64 {
	if !r.scrollbarTick.Active() || r.viewportWidth <= 0 || r.contentWidth <= r.viewportWidth {
		return 0
	}
	idle := r.clock.Now() - r.scrollbarAwake
	if idle <= scrollbarFadeDelay {
		return 1
	}
	return 1 - utils.Progress(idle-scrollbarFadeDelay, scrollbarFadeDuration)
}

// Render 绘制所有激活气泡和滚动条
func (r *Row) Render(s Surface) {
	originX := float64(-r.scrollX)
	originY := float64(r.theme.VerticalMargin)
	for i := 0; i < r.active; i++ {
		r.elements[i].Render(s, originX, originY)
	}
	r.renderScrollbar(s)
}

func (r *Row) renderScrollbar(s Surface) {
	alpha := r.scrollbarAlpha()
	if alpha <= 0 || r.theme.ScrollbarColor == nil {
		return
	}
	_, height := r.Measure(r.viewportWidth)
	view := float64(r.viewportWidth)
	content := float64(r.contentWidth)
	thumb := view * view / content
	pos := float64(utils.ClampInt(r.scrollX, 0, r.maxScroll())) * view / content
	thickness := r.theme.ScrollbarThickness
	s.FillRoundRect(pos, float64(height)-thickness, thumb, thickness, thickness/2, fade(r.theme.ScrollbarColor, alpha))
}

func fade(c color.Color, alpha float64) color.Color {
	cr, cg, cb, ca := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(cr) * alpha),
		G: uint16(float64(cg) * alpha),
		B: uint16(float64(cb) * alpha),
		A: uint16(float64(ca) * alpha),
	}
}

// rowGestures 把手势回调转给 Row
type rowGestures struct {
	row *Row
}

func (g rowGestures) OnDown(PointerEvent) {}

func (g rowGestures) OnScroll(_, _ PointerEvent, distanceX, _ float64) bool {
	g.row.drag(distanceX)
	return true
}

func (g rowGestures) OnFling(_, _ PointerEvent, velocityX, _ float64) bool {
	return g.row.OnFling(velocityX)
}

func (g rowGestures) OnSingleTap(e PointerEvent) bool {
	_, ok := g.row.OnTap(e.X, e.Y)
	return ok
}
