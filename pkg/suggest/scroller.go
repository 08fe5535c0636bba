package suggest

import (
	"math"
	"time"

	"github.com/decker502/bubblerow/pkg/utils"
)

// ScrollerConfig 惯性滚动与回弹参数
type ScrollerConfig struct {
	// FlingFriction 速度衰减的时间常数：v(t) = v0·e^(-t/τ)
	FlingFriction time.Duration
	// StopVelocity 速度低于该值（像素/秒）时惯性滚动结束
	StopVelocity float64
	// SettleDuration 松手回弹到边界的动画时长
	SettleDuration time.Duration
}

// DefaultScrollerConfig 默认滚动参数
func DefaultScrollerConfig() ScrollerConfig {
	return ScrollerConfig{
		FlingFriction:  325 * time.Millisecond,
		StopVelocity:   20,
		SettleDuration: 250 * time.Millisecond,
	}
}

type scrollMode int

const (
	scrollIdle scrollMode = iota
	scrollFling
	scrollSettle
)

// Scroller 一维滚动物理模拟
//
// 支持两种模拟：
//   - Fling: 指数衰减的惯性滚动，限制在 [minX, maxX] 内，触边即停
//   - StartScroll: 在固定时长内缓出滚动到目标位置（松手回弹）
type Scroller struct {
	cfg  ScrollerConfig
	mode scrollMode

	startX int
	finalX int
	currX  int
	start  time.Duration

	// fling
	velocity float64
	minX     int
	maxX     int
	flingFor time.Duration

	settle Tween
}

// NewScroller 创建滚动模拟器
func NewScroller(cfg ScrollerConfig) *Scroller {
	if cfg.FlingFriction <= 0 {
		cfg.FlingFriction = DefaultScrollerConfig().FlingFriction
	}
	if cfg.StopVelocity <= 0 {
		cfg.StopVelocity = DefaultScrollerConfig().StopVelocity
	}
	return &Scroller{cfg: cfg}
}

// Fling 以 velocity（像素/秒，正值表示滚动位置增大）开始惯性滚动
func (s *Scroller) Fling(startX int, velocity float64, minX, maxX int, now time.Duration) {
	if maxX < minX {
		maxX = minX
	}
	s.mode = scrollFling
	s.startX = startX
	s.currX = startX
	s.start = now
	s.velocity = velocity
	s.minX = minX
	s.maxX = maxX

	speed := math.Abs(velocity)
	if speed <= s.cfg.StopVelocity {
		s.flingFor = 0
		s.finalX = utils.ClampInt(startX, minX, maxX)
		return
	}
	tau := s.cfg.FlingFriction.Seconds()
	seconds := tau * math.Log(speed/s.cfg.StopVelocity)
	s.flingFor = time.Duration(seconds * float64(time.Second))
	s.finalX = utils.ClampInt(s.flingPosition(s.flingFor), minX, maxX)
}

// StartScroll 在 SettleDuration 内从 startX 滚动 dx
func (s *Scroller) StartScroll(startX, dx int, now time.Duration) {
	s.mode = scrollSettle
	s.startX = startX
	s.currX = startX
	s.finalX = startX + dx
	s.start = now
	s.settle.Start(startX, startX+dx, now, s.cfg.SettleDuration, utils.EaseOutCubic)
}

// Advance 采样 now 时刻的滚动位置；done 为 true 表示模拟已结束
func (s *Scroller) Advance(now time.Duration) (x int, done bool) {
	switch s.mode {
	case scrollFling:
		elapsed := now - s.start
		if elapsed >= s.flingFor {
			s.currX = s.finalX
			s.mode = scrollIdle
			return s.currX, true
		}
		x := s.flingPosition(elapsed)
		if (s.velocity < 0 && x <= s.minX) || (s.velocity > 0 && x >= s.maxX) {
			s.currX = utils.ClampInt(x, s.minX, s.maxX)
			s.finalX = s.currX
			s.mode = scrollIdle
			return s.currX, true
		}
		s.currX = x
		return s.currX, false
	case scrollSettle:
		x, finished := s.settle.Advance(now)
		s.currX = x
		if finished {
			s.mode = scrollIdle
		}
		return s.currX, finished
	default:
		return s.currX, true
	}
}

func (s *Scroller) flingPosition(elapsed time.Duration) int {
	tau := s.cfg.FlingFriction.Seconds()
	t := elapsed.Seconds()
	return s.startX + int(math.Round(s.velocity*tau*(1-math.Exp(-t/tau))))
}

// AbortAnimation 立即停止当前模拟，位置停留在最近一次采样处
func (s *Scroller) AbortAnimation() {
	s.mode = scrollIdle
	s.settle.Stop()
	s.finalX = s.currX
}

// IsFinished 是否没有进行中的模拟
func (s *Scroller) IsFinished() bool {
	return s.mode == scrollIdle
}

// IsFlinging 是否处于惯性滚动
func (s *Scroller) IsFlinging() bool {
	return s.mode == scrollFling
}

// CurrX 最近一次采样的位置
func (s *Scroller) CurrX() int {
	return s.currX
}

// FinalX 模拟的终点
func (s *Scroller) FinalX() int {
	return s.finalX
}

// StartX 模拟的起点
func (s *Scroller) StartX() int {
	return s.startX
}
