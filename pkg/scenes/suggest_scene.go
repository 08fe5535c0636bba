package scenes

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/bubblerow/pkg/components"
	"github.com/decker502/bubblerow/pkg/config"
	"github.com/decker502/bubblerow/pkg/suggest"
)

// 场景布局（像素）
const (
	sceneMargin      = 12
	inputHeight      = 36
	inputPadding     = 10
	rowGap           = 12
	toastAreaHeight  = 56
	toastHeight      = 36
	toastSlide       = 24
	toastPaddingX    = 14
	toastFPS         = 60
	inputPlaceholder = "Type to suggest..."
	inputMaxLength   = 64
)

var (
	inputBackgroundColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	inputBorderColor      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	inputTextColor        = color.RGBA{R: 33, G: 33, B: 33, A: 255}
	inputPlaceholderColor = color.RGBA{R: 158, G: 158, B: 158, A: 255}
	toastBackgroundColor  = color.RGBA{R: 50, G: 50, B: 50, A: 230}
	toastTextColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// SuggestSceneConfig 场景配置
type SuggestSceneConfig struct {
	// Width 逻辑屏幕宽度
	Width int
	// Suggest 气泡行配置
	Suggest *config.SuggestConfig
	// Initial 为 true 时首批建议直接以完整尺寸显示，否则播放展开动画
	Initial bool
}

// SuggestScene 建议气泡演示场景
//
// 上方是查询输入框，每次编辑推送 5 条派生建议；
// 中间是可横向滚动的气泡行；点击气泡后底部弹出提示。
type SuggestScene struct {
	clock *suggest.FrameClock
	row   *suggest.Row
	toast *components.ToastComponent
	input *components.TextInputComponent

	face     *text.GoTextFace
	measurer *FaceMeasurer
	surface  *EbitenSurface
	rowImage *ebiten.Image

	tracker   *PointerTracker
	touchID   ebiten.TouchID
	capturing bool

	background color.Color
	width      int
	rowY       int
	rowHeight  int
}

// NewSuggestScene 创建演示场景
func NewSuggestScene(cfg SuggestSceneConfig) (*SuggestScene, error) {
	if cfg.Suggest == nil {
		cfg.Suggest = config.DefaultSuggestConfig()
	}
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("invalid scene width %d", cfg.Width)
	}

	face, err := NewDefaultFace(cfg.Suggest.Theme.TextSize)
	if err != nil {
		return nil, fmt.Errorf("字体加载失败: %w", err)
	}
	measurer := NewFaceMeasurer(face)

	clock := suggest.NewFrameClock()
	row := suggest.NewRow(measurer, clock, cfg.Suggest.RowConfig())

	s := &SuggestScene{
		clock:      clock,
		row:        row,
		toast:      components.NewToastComponent(toastFPS),
		input:      components.NewTextInputComponent(inputPlaceholder, inputMaxLength),
		face:       face,
		measurer:   measurer,
		surface:    NewEbitenSurface(face),
		tracker:    NewPointerTracker(),
		touchID:    -1,
		background: cfg.Suggest.Background(),
		width:      cfg.Width,
		rowY:       sceneMargin + inputHeight + rowGap,
	}

	row.SetTapHandler(s.onBubbleTapped)
	row.SetViewport(cfg.Width)
	_, s.rowHeight = row.Measure(cfg.Width)

	if cfg.Initial {
		row.SetInitialSuggests(cfg.Suggest.InitialSuggests)
	} else {
		row.SetSuggests(cfg.Suggest.InitialSuggests)
	}

	log.Printf("[SuggestScene] 场景创建完成: %dx%d, 初始建议 %d 条", s.width, s.Height(), row.ActiveCount())
	return s, nil
}

// Width 逻辑屏幕宽度
func (s *SuggestScene) Width() int {
	return s.width
}

// Height 逻辑屏幕高度
func (s *SuggestScene) Height() int {
	return s.rowY + s.rowHeight + toastAreaHeight + sceneMargin
}

// Row 气泡行
func (s *SuggestScene) Row() *suggest.Row {
	return s.row
}

// Input 查询输入框
func (s *SuggestScene) Input() *components.TextInputComponent {
	return s.input
}

// Toast 提示组件
func (s *SuggestScene) Toast() *components.ToastComponent {
	return s.toast
}

func (s *SuggestScene) onBubbleTapped(label string) {
	log.Printf("[SuggestScene] 点击气泡: %q", label)
	s.toast.Show(components.TapMessage(label), s.clock.Now(), components.DefaultToastDuration)
}

// Update 更新场景
func (s *SuggestScene) Update(deltaTime float64) {
	s.input.UpdateCursorBlink(deltaTime)
	if HandleKeyboardInput(s.input) {
		s.OnQueryChanged()
	}

	if ebiten.IsFocused() {
		s.HandlePointer(PollPointer(&s.touchID))
	} else {
		s.CancelPointer()
	}

	s.clock.Advance(time.Duration(deltaTime * float64(time.Second)))
	s.toast.Update(s.clock.Now())
}

// OnQueryChanged 查询文字变化后推送派生建议
func (s *SuggestScene) OnQueryChanged() {
	s.row.SetSuggests(components.DeriveSuggests(s.input.Text))
}

// HandlePointer 处理一帧指针采样
// 只有在气泡行内按下的手势才会分发给气泡行，之后的移动和抬起一直跟随到结束
func (s *SuggestScene) HandlePointer(sample PointerSample) {
	event, ok := s.tracker.Step(sample, s.clock.Now(), 0, s.rowY)
	if !ok {
		return
	}

	if event.Kind == suggest.PointerDown {
		s.capturing = event.X >= 0 && event.X < float64(s.width) &&
			event.Y >= 0 && event.Y < float64(s.rowHeight)
	}
	if !s.capturing {
		return
	}

	s.row.DispatchPointerEvent(event)

	if event.Kind == suggest.PointerUp || event.Kind == suggest.PointerCancel {
		s.capturing = false
	}
}

// CancelPointer 窗口失去焦点时放弃进行中的手势
func (s *SuggestScene) CancelPointer() {
	event, ok := s.tracker.Cancel(s.clock.Now())
	if !ok {
		return
	}
	s.touchID = -1
	if s.capturing {
		s.row.DispatchPointerEvent(event)
		s.capturing = false
	}
}

// Draw 绘制场景
func (s *SuggestScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)

	s.drawInput(screen)
	s.drawRow(screen)
	s.drawToast(screen)
}

func (s *SuggestScene) drawInput(screen *ebiten.Image) {
	s.surface.SetTarget(screen)

	x := float64(sceneMargin)
	w := float64(s.width - 2*sceneMargin)
	s.surface.FillRoundRect(x, sceneMargin, w, inputHeight, 6, inputBorderColor)
	s.surface.FillRoundRect(x+1, sceneMargin+1, w-2, inputHeight-2, 5, inputBackgroundColor)

	m := s.measurer.Metrics()
	baseline := sceneMargin + inputHeight/2 + (m.Ascent-m.Descent)/2
	textX := x + inputPadding

	if s.input.Text == "" {
		s.surface.DrawText(s.input.Placeholder, textX, baseline, inputPlaceholderColor)
	} else {
		s.surface.DrawText(s.input.Text, textX, baseline, inputTextColor)
	}

	if s.input.CursorVisible {
		cx := textX + s.measurer.Advance(s.input.TextBeforeCursor())
		s.surface.FillRoundRect(cx, baseline-m.Ascent, 1, m.Ascent+m.Descent, 0, inputTextColor)
	}
}

func (s *SuggestScene) drawRow(screen *ebiten.Image) {
	if s.rowImage == nil {
		s.rowImage = ebiten.NewImage(s.width, s.rowHeight)
	}
	s.rowImage.Clear()

	s.surface.SetTarget(s.rowImage)
	s.row.Render(s.surface)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(s.rowY))
	screen.DrawImage(s.rowImage, op)
}

func (s *SuggestScene) drawToast(screen *ebiten.Image) {
	if !s.toast.Active() {
		return
	}
	p := s.toast.Progress()
	if p <= 0 {
		return
	}

	s.surface.SetTarget(screen)

	msg := s.toast.Message()
	w := s.measurer.Advance(msg) + 2*toastPaddingX
	x := (float64(s.width) - w) / 2
	y := float64(s.rowY+s.rowHeight) + (toastAreaHeight-toastHeight)/2 + (1-p)*toastSlide

	s.surface.FillRoundRect(x, y, w, toastHeight, toastHeight/2, scaleAlpha(toastBackgroundColor, p))

	m := s.measurer.Metrics()
	baseline := y + toastHeight/2 + (m.Ascent-m.Descent)/2
	s.surface.DrawText(msg, x+toastPaddingX, baseline, scaleAlpha(toastTextColor, p))
}

// scaleAlpha 按比例缩放预乘颜色
func scaleAlpha(c color.RGBA, k float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
