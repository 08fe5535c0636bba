package components

import (
	"testing"
	"time"
)

const toastFrame = time.Second / 60

func TestToastComponent_Lifecycle(t *testing.T) {
	toast := NewToastComponent(60)
	if toast.Active() {
		t.Fatal("新建的提示不应处于活动状态")
	}

	toast.Show("bubble tapped: text=abc", 0, 500*time.Millisecond)
	if toast.Message() != "bubble tapped: text=abc" {
		t.Errorf("Message() = %q", toast.Message())
	}
	if toast.Progress() != 0 {
		t.Errorf("Show 后进度应从 0 开始，实际 %v", toast.Progress())
	}

	// 显示期间进度趋近 1
	var now time.Duration
	for now < 400*time.Millisecond {
		now += toastFrame
		toast.Update(now)
	}
	if p := toast.Progress(); p < 0.8 {
		t.Errorf("显示 400ms 后进度应接近 1，实际 %v", p)
	}

	// 截止后收回并清空
	for i := 0; i < 600 && toast.Active(); i++ {
		now += toastFrame
		toast.Update(now)
	}
	if toast.Active() || toast.Message() != "" {
		t.Errorf("截止后提示应被清空")
	}
	if toast.Progress() != 0 {
		t.Errorf("清空后进度应为 0，实际 %v", toast.Progress())
	}
}

func TestToastComponent_ShowRestarts(t *testing.T) {
	toast := NewToastComponent(60)
	toast.Show("first", 0, time.Second)

	var now time.Duration
	for i := 0; i < 30; i++ {
		now += toastFrame
		toast.Update(now)
	}

	toast.Show("second", now, time.Second)
	if toast.Message() != "second" || toast.Progress() != 0 {
		t.Errorf("再次 Show 应替换文字并重置动画，实际 %q / %v", toast.Message(), toast.Progress())
	}

	// 旧的截止时间不应影响新提示
	for i := 0; i < 45; i++ {
		now += toastFrame
		toast.Update(now)
	}
	if !toast.Active() {
		t.Errorf("新提示在显示时长内应保持活动")
	}
}

func TestToastComponent_ProgressClamped(t *testing.T) {
	toast := NewToastComponent(60)
	toast.Show("x", 0, time.Hour)

	var now time.Duration
	for i := 0; i < 120; i++ {
		now += toastFrame
		toast.Update(now)
		if p := toast.Progress(); p < 0 || p > 1 {
			t.Fatalf("Progress() = %v 超出 [0, 1]", p)
		}
	}
}

func TestToastComponent_UpdateWithoutMessage(t *testing.T) {
	toast := NewToastComponent(60)
	toast.Update(time.Second)
	if toast.Active() || toast.Progress() != 0 {
		t.Errorf("无提示时 Update 不应改变状态")
	}
}
