package scenes

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/bubblerow/pkg/config"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestScene(t *testing.T, initial bool) *SuggestScene {
	t.Helper()
	s, err := NewSuggestScene(SuggestSceneConfig{
		Width:   480,
		Suggest: config.DefaultSuggestConfig(),
		Initial: initial,
	})
	if err != nil {
		t.Fatalf("NewSuggestScene 失败: %v", err)
	}
	return s
}

func TestNewSuggestScene(t *testing.T) {
	s := newTestScene(t, true)

	if s.Row().ActiveCount() != 10 {
		t.Errorf("初始建议数量 = %d, want 10", s.Row().ActiveCount())
	}
	if s.Row().ViewportWidth() != 480 {
		t.Errorf("ViewportWidth = %d, want 480", s.Row().ViewportWidth())
	}
	if s.Row().Element(0).Animating() {
		t.Error("Initial 模式下首批建议不应播放动画")
	}
	if s.Height() <= s.rowY+s.rowHeight {
		t.Errorf("场景高度 %d 应容纳气泡行和提示区域", s.Height())
	}
}

func TestNewSuggestScene_Animated(t *testing.T) {
	s := newTestScene(t, false)
	if !s.Row().Element(0).Animating() {
		t.Error("非 Initial 模式下首批建议应播放展开动画")
	}
}

func TestNewSuggestScene_InvalidWidth(t *testing.T) {
	if _, err := NewSuggestScene(SuggestSceneConfig{Width: 0}); err == nil {
		t.Error("宽度为 0 时应返回错误")
	}
}

func TestSuggestScene_QueryChanged(t *testing.T) {
	s := newTestScene(t, true)

	s.Input().Insert("go")
	s.OnQueryChanged()

	if s.Row().ActiveCount() != 5 {
		t.Fatalf("编辑后建议数量 = %d, want 5", s.Row().ActiveCount())
	}
	if s.Row().Element(4).Label() != "go 5" {
		t.Errorf("第 5 条建议 = %q, want \"go 5\"", s.Row().Element(4).Label())
	}
}

func TestSuggestScene_TapShowsToast(t *testing.T) {
	s := newTestScene(t, true)
	first := s.Row().Element(0)

	x := first.Offset() + 4
	y := s.rowY + config.DefaultSuggestConfig().Theme.VerticalMargin + 4

	s.HandlePointer(PointerSample{Pressed: true, X: x, Y: y})
	s.HandlePointer(PointerSample{Pressed: false, X: x, Y: y})

	if !s.Toast().Active() {
		t.Fatal("点击气泡后应显示提示")
	}
	if s.Toast().Message() != "bubble tapped: text=test string" {
		t.Errorf("提示文字 = %q", s.Toast().Message())
	}
}

func TestSuggestScene_PressOutsideRowIgnored(t *testing.T) {
	s := newTestScene(t, true)

	// 在输入框区域按下后拖到气泡行，不应滚动
	s.HandlePointer(PointerSample{Pressed: true, X: 400, Y: sceneMargin + 5})
	s.HandlePointer(PointerSample{Pressed: true, X: 100, Y: s.rowY + 10})
	s.HandlePointer(PointerSample{Pressed: false})

	if s.Row().ScrollX() != 0 {
		t.Errorf("行外按下的手势不应滚动气泡行，ScrollX = %d", s.Row().ScrollX())
	}
	if s.Toast().Active() {
		t.Error("行外按下不应触发点击")
	}
}

func TestSuggestScene_DragScrollsRow(t *testing.T) {
	s := newTestScene(t, true)
	if s.Row().ContentWidth() <= s.Row().ViewportWidth() {
		t.Skip("内容未超出视口，无法滚动")
	}

	y := s.rowY + 10
	s.HandlePointer(PointerSample{Pressed: true, X: 300, Y: y})
	s.HandlePointer(PointerSample{Pressed: true, X: 250, Y: y})
	s.HandlePointer(PointerSample{Pressed: true, X: 200, Y: y})

	if s.Row().ScrollX() != 100 {
		t.Errorf("向左拖动 100 像素后 ScrollX = %d, want 100", s.Row().ScrollX())
	}
}

func TestSuggestScene_CancelPointer(t *testing.T) {
	s := newTestScene(t, true)

	// 未按下时取消无效果
	s.CancelPointer()

	y := s.rowY + 10
	s.HandlePointer(PointerSample{Pressed: true, X: 20, Y: y})
	if !s.capturing {
		t.Fatal("在气泡行内按下后应捕获指针")
	}

	s.CancelPointer()
	if s.capturing || s.tracker.Pressed() {
		t.Error("取消后应释放指针捕获")
	}

	// 取消后的抬起不应触发点击
	s.HandlePointer(PointerSample{Pressed: false, X: 20, Y: y})
	if s.Toast().Active() {
		t.Error("取消的手势不应弹出提示")
	}
}
