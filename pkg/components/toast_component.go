package components

import (
	"time"

	"github.com/charmbracelet/harmonica"
)

// 弹簧参数：角频率与阻尼比（欠阻尼，略带回弹）
const (
	toastAngularFrequency = 8.0
	toastDampingRatio     = 0.65
	toastHiddenThreshold  = 0.02
)

// DefaultToastDuration 提示默认显示时长
const DefaultToastDuration = 2 * time.Second

// ToastComponent 短暂提示组件
//
// 显示一行提示文字，由弹簧动画控制滑入和淡出。
// 时间由调用方传入（帧时钟的当前时间），每次 Update 推进一帧弹簧。
//
// 生命周期：
//   - Show: 设置文字和截止时间，动画从 0 开始趋向 1
//   - 截止时间之后目标变为 0，动画收回
//   - 收回到阈值以下时清空文字
type ToastComponent struct {
	message string
	visible bool
	until   time.Duration

	// 动画进度 [0, 1]（欠阻尼时可能短暂超过 1）及速度
	pos float64
	vel float64

	spring harmonica.Spring
}

// NewToastComponent 创建提示组件
// fps 为宿主调用 Update 的频率
func NewToastComponent(fps int) *ToastComponent {
	return &ToastComponent{
		spring: harmonica.NewSpring(harmonica.FPS(fps), toastAngularFrequency, toastDampingRatio),
	}
}

// Show 显示提示，now 为当前时间，d 为显示时长
func (t *ToastComponent) Show(message string, now, d time.Duration) {
	t.message = message
	t.visible = true
	t.until = now + d
	t.pos = 0
	t.vel = 0
}

// Update 推进一帧动画
func (t *ToastComponent) Update(now time.Duration) {
	if t.message == "" {
		return
	}
	if t.visible && now >= t.until {
		t.visible = false
	}

	target := 0.0
	if t.visible {
		target = 1.0
	}
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, target)

	if !t.visible && t.pos < toastHiddenThreshold {
		t.message = ""
		t.pos = 0
		t.vel = 0
	}
}

// Message 当前提示文字，已完全隐藏时为空
func (t *ToastComponent) Message() string {
	return t.message
}

// Active 是否还有内容需要绘制
func (t *ToastComponent) Active() bool {
	return t.message != ""
}

// Progress 动画进度，裁剪到 [0, 1]
func (t *ToastComponent) Progress() float64 {
	switch {
	case t.pos < 0:
		return 0
	case t.pos > 1:
		return 1
	}
	return t.pos
}
