package suggest

import (
	"testing"
	"time"
)

func TestScroller_Fling(t *testing.T) {
	s := NewScroller(DefaultScrollerConfig())
	s.Fling(0, 2000, 0, 10000, 0)

	if s.IsFinished() || !s.IsFlinging() {
		t.Fatalf("Fling 后应处于惯性滚动状态")
	}

	prev := 0
	var now time.Duration
	for i := 0; i < 1000 && !s.IsFinished(); i++ {
		now += frame
		x, _ := s.Advance(now)
		if x < prev {
			t.Fatalf("正速度 fling 位置应单调不减: %d < %d", x, prev)
		}
		prev = x
	}

	if !s.IsFinished() {
		t.Fatalf("fling 应在有限时间内结束")
	}
	// 最大距离 v0·τ = 2000 × 0.325 = 650
	if prev <= 0 || prev > 650 {
		t.Errorf("终点 %d 应在 (0, 650] 内", prev)
	}
	if prev != s.FinalX() {
		t.Errorf("结束位置 %d 应等于 FinalX %d", prev, s.FinalX())
	}
}

func TestScroller_FlingClampedToBounds(t *testing.T) {
	tests := []struct {
		name     string
		start    int
		velocity float64
		expected int
	}{
		{"撞到右边界", 150, 5000, 200},
		{"撞到左边界", 50, -5000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScroller(DefaultScrollerConfig())
			s.Fling(tt.start, tt.velocity, 0, 200, 0)

			var now time.Duration
			x := tt.start
			for i := 0; i < 1000 && !s.IsFinished(); i++ {
				now += frame
				x, _ = s.Advance(now)
				if x < 0 || x > 200 {
					t.Fatalf("采样位置 %d 超出 [0, 200]", x)
				}
			}
			if x != tt.expected {
				t.Errorf("终点 = %d, 期望 %d", x, tt.expected)
			}
		})
	}
}

func TestScroller_FlingFromBoundaryAwayFromIt(t *testing.T) {
	s := NewScroller(DefaultScrollerConfig())
	s.Fling(0, 1000, 0, 500, 0)

	x, done := s.Advance(frame)
	if done {
		t.Fatalf("从左边界向右 fling 不应立即结束")
	}
	if x <= 0 {
		t.Errorf("第一帧应已离开边界，实际 %d", x)
	}
}

func TestScroller_SlowFlingFinishesImmediately(t *testing.T) {
	s := NewScroller(DefaultScrollerConfig())
	s.Fling(40, 5, 0, 200, 0)

	x, done := s.Advance(frame)
	if !done || x != 40 {
		t.Errorf("低于停止速度的 fling 应立即结束于起点，实际 (%d, %v)", x, done)
	}
}

func TestScroller_StartScroll(t *testing.T) {
	s := NewScroller(DefaultScrollerConfig())
	s.StartScroll(-40, 40, 0)

	if s.StartX() != -40 || s.FinalX() != 0 {
		t.Fatalf("StartX/FinalX = %d/%d, 期望 -40/0", s.StartX(), s.FinalX())
	}

	mid, done := s.Advance(125 * time.Millisecond)
	if done || mid <= -40 || mid >= 0 {
		t.Errorf("中途采样 (%d, %v) 应在 (-40, 0) 内且未结束", mid, done)
	}

	end, done := s.Advance(250 * time.Millisecond)
	if !done || end != 0 {
		t.Errorf("结束采样 = (%d, %v), 期望 (0, true)", end, done)
	}
}

func TestScroller_AbortAnimation(t *testing.T) {
	s := NewScroller(DefaultScrollerConfig())
	s.Fling(0, 3000, 0, 10000, 0)
	x, _ := s.Advance(100 * time.Millisecond)

	s.AbortAnimation()
	if !s.IsFinished() {
		t.Fatalf("中止后应处于结束状态")
	}
	if s.CurrX() != x || s.FinalX() != x {
		t.Errorf("中止后位置应停在 %d，实际 curr=%d final=%d", x, s.CurrX(), s.FinalX())
	}
	if got, done := s.Advance(time.Second); got != x || !done {
		t.Errorf("中止后 Advance = (%d, %v), 期望 (%d, true)", got, done, x)
	}
}
