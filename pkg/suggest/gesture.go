package suggest

import (
	"math"
	"time"
)

// PointerKind 指针事件类型
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent 宿主转发的原始指针事件
// 坐标相对于控件左上角，Time 取自帧时钟
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
	Time time.Duration
}

// GestureConfig 手势识别阈值
type GestureConfig struct {
	// TouchSlop 位移超过该值（像素）即视为拖动，不再是点击
	TouchSlop float64
	// TapTimeout 按下到抬起超过该时长不再视为点击
	TapTimeout time.Duration
	// MinFlingVelocity 抬起时速度（像素/秒）超过该值才触发惯性滚动
	MinFlingVelocity float64
	// MaxFlingVelocity 惯性滚动初速度上限（像素/秒）
	MaxFlingVelocity float64
	// VelocityWindow 计算抬起速度时回看的时间窗口
	VelocityWindow time.Duration
}

// DefaultGestureConfig 默认手势阈值
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		TouchSlop:        8,
		TapTimeout:       400 * time.Millisecond,
		MinFlingVelocity: 50,
		MaxFlingVelocity: 8000,
		VelocityWindow:   100 * time.Millisecond,
	}
}

// GestureListener 手势回调
// 返回 true 表示手势已被处理
type GestureListener interface {
	OnDown(e PointerEvent)
	// OnScroll distanceX/Y 为上一次位置减当前位置（手指左移时 distanceX > 0）
	OnScroll(down, current PointerEvent, distanceX, distanceY float64) bool
	OnFling(down, up PointerEvent, velocityX, velocityY float64) bool
	OnSingleTap(e PointerEvent) bool
}

type gestureState int

const (
	gestureIdle gestureState = iota
	gesturePressed
	gestureDragging
)

// GestureDetector 点击 / 拖动 / 惯性滑动的显式状态机
//
//	Idle --down--> Pressed --move > slop--> Dragging
//	Pressed --up (短按)--> Tap
//	Dragging --up (速度 > 阈值)--> Fling
//
// 新的 down 事件总是丢弃进行中的手势重新开始。
type GestureDetector struct {
	cfg      GestureConfig
	listener GestureListener

	state   gestureState
	down    PointerEvent
	lastX   float64
	lastY   float64
	tracker velocityTracker
}

// NewGestureDetector 创建手势识别器
func NewGestureDetector(cfg GestureConfig, listener GestureListener) *GestureDetector {
	return &GestureDetector{
		cfg:      cfg,
		listener: listener,
		tracker:  velocityTracker{window: cfg.VelocityWindow},
	}
}

// OnTouchEvent 处理一个指针事件，返回手势是否被处理
func (d *GestureDetector) OnTouchEvent(e PointerEvent) bool {
	switch e.Kind {
	case PointerDown:
		d.state = gesturePressed
		d.down = e
		d.lastX, d.lastY = e.X, e.Y
		d.tracker.reset()
		d.tracker.add(e)
		d.listener.OnDown(e)
		return true

	case PointerMove:
		if d.state == gestureIdle {
			return false
		}
		d.tracker.add(e)
		if d.state == gesturePressed {
			dx := e.X - d.down.X
			dy := e.Y - d.down.Y
			if dx*dx+dy*dy <= d.cfg.TouchSlop*d.cfg.TouchSlop {
				return false
			}
			d.state = gestureDragging
		}
		distanceX := d.lastX - e.X
		distanceY := d.lastY - e.Y
		d.lastX, d.lastY = e.X, e.Y
		if distanceX == 0 && distanceY == 0 {
			return false
		}
		return d.listener.OnScroll(d.down, e, distanceX, distanceY)

	case PointerUp:
		if d.state == gestureIdle {
			return false
		}
		d.tracker.add(e)
		state := d.state
		d.state = gestureIdle

		if state == gesturePressed {
			if e.Time-d.down.Time <= d.cfg.TapTimeout {
				return d.listener.OnSingleTap(d.down)
			}
			return false
		}

		vx, vy := d.tracker.velocity()
		vx = clampVelocity(vx, d.cfg.MaxFlingVelocity)
		vy = clampVelocity(vy, d.cfg.MaxFlingVelocity)
		if math.Abs(vx) > d.cfg.MinFlingVelocity || math.Abs(vy) > d.cfg.MinFlingVelocity {
			return d.listener.OnFling(d.down, e, vx, vy)
		}
		return false

	case PointerCancel:
		d.state = gestureIdle
		d.tracker.reset()
		return false
	}
	return false
}

// Dragging 是否处于拖动状态
func (d *GestureDetector) Dragging() bool {
	return d.state == gestureDragging
}

func clampVelocity(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	return math.Max(-limit, math.Min(limit, v))
}

// velocityTracker 基于时间窗口内首尾采样的速度估计
type velocityTracker struct {
	window  time.Duration
	samples []PointerEvent
}

func (t *velocityTracker) reset() {
	t.samples = t.samples[:0]
}

func (t *velocityTracker) add(e PointerEvent) {
	t.samples = append(t.samples, e)
	if t.window <= 0 {
		return
	}
	cutoff := e.Time - t.window
	drop := 0
	for drop < len(t.samples)-1 && t.samples[drop].Time < cutoff {
		drop++
	}
	if drop > 0 {
		t.samples = append(t.samples[:0], t.samples[drop:]...)
	}
}

// velocity 像素/秒
func (t *velocityTracker) velocity() (float64, float64) {
	if len(t.samples) < 2 {
		return 0, 0
	}
	first := t.samples[0]
	last := t.samples[len(t.samples)-1]
	dt := (last.Time - first.Time).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.X - first.X) / dt, (last.Y - first.Y) / dt
}
