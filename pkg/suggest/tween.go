package suggest

import (
	"time"

	"github.com/decker502/bubblerow/pkg/utils"
)

// Tween 整数值补间
//
// 显式保存起点、终点、开始时间和时长，由帧时钟轮询 Advance 推进，
// 不持有任何 goroutine。
type Tween struct {
	from     int
	to       int
	start    time.Duration
	duration time.Duration
	ease     utils.EaseFunc
	running  bool
}

// Start 从 from 到 to 重新开始补间；正在运行的补间被直接覆盖
func (t *Tween) Start(from, to int, now, duration time.Duration, ease utils.EaseFunc) {
	if ease == nil {
		ease = utils.EaseLinear
	}
	t.from = from
	t.to = to
	t.start = now
	t.duration = duration
	t.ease = ease
	t.running = true
}

// Advance 返回 now 时刻的补间值，以及补间是否已结束
func (t *Tween) Advance(now time.Duration) (int, bool) {
	if !t.running {
		return t.to, true
	}
	p := utils.Progress(now-t.start, t.duration)
	if p >= 1 {
		t.running = false
		return t.to, true
	}
	return utils.LerpInt(t.from, t.to, t.ease(p)), false
}

// Running 补间是否仍在进行
func (t *Tween) Running() bool {
	return t.running
}

// Stop 立即停止补间，保持终点值
func (t *Tween) Stop() {
	t.running = false
}

// Target 补间终点
func (t *Tween) Target() int {
	return t.to
}
