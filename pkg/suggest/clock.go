package suggest

import "time"

// FrameFunc 每帧回调
// now 为帧时钟的当前时间；返回 true 表示回调已完成，之后不再被调用
type FrameFunc func(now time.Duration) (done bool)

type frameCallback struct {
	id uint64
	fn FrameFunc
}

// FrameClock 单线程帧时钟
//
// 动画 tick 和惯性滚动采样都以回调形式注册在帧时钟上，
// 由宿主在自己的主循环中调用 Advance 推进。
// 所有回调在同一个 goroutine 上按注册顺序执行，互不重叠，因此无需加锁。
type FrameClock struct {
	now       time.Duration
	callbacks []frameCallback
	nextID    uint64
}

// NewFrameClock 创建从 0 开始计时的帧时钟
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Now 返回当前帧时间
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Post 注册一个帧回调，从下一次 Advance 开始执行
func (c *FrameClock) Post(fn FrameFunc) FrameHandle {
	c.nextID++
	c.callbacks = append(c.callbacks, frameCallback{id: c.nextID, fn: fn})
	return FrameHandle{id: c.nextID, clock: c}
}

// Pending 返回尚未完成的回调数量
func (c *FrameClock) Pending() int {
	return len(c.callbacks)
}

// Advance 推进时钟 dt 并执行一轮回调
//
// 回调执行期间新注册的回调推迟到下一帧执行。
func (c *FrameClock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}

	snapshot := make([]frameCallback, len(c.callbacks))
	copy(snapshot, c.callbacks)

	for _, cb := range snapshot {
		// 可能已在本帧前面的回调中被取消
		if !c.has(cb.id) {
			continue
		}
		if cb.fn(c.now) {
			c.remove(cb.id)
		}
	}
}

func (c *FrameClock) has(id uint64) bool {
	for _, cb := range c.callbacks {
		if cb.id == id {
			return true
		}
	}
	return false
}

func (c *FrameClock) remove(id uint64) {
	for i := range c.callbacks {
		if c.callbacks[i].id == id {
			copy(c.callbacks[i:], c.callbacks[i+1:])
			c.callbacks[len(c.callbacks)-1] = frameCallback{}
			c.callbacks = c.callbacks[:len(c.callbacks)-1]
			return
		}
	}
}

// FrameHandle 已注册回调的句柄
type FrameHandle struct {
	id    uint64
	clock *FrameClock
}

// Cancel 取消回调；重复调用无副作用
func (h FrameHandle) Cancel() {
	if h.clock == nil {
		return
	}
	h.clock.remove(h.id)
}

// Active 回调是否仍在等待执行
func (h FrameHandle) Active() bool {
	return h.clock != nil && h.clock.has(h.id)
}
