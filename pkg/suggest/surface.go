package suggest

import "image/color"

// FontMetrics 字体纵向度量（均为正值）
type FontMetrics struct {
	Ascent  float64
	Descent float64
}

// LineHeight 单行文本高度
func (m FontMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent
}

// TextMeasurer 由宿主提供的文本度量
// ebiten 宿主基于 text/v2 字体实现，终端宿主按单元格宽度实现
type TextMeasurer interface {
	// Advance 返回 s 的水平排版宽度
	Advance(s string) float64
	Metrics() FontMetrics
}

// Surface 绘制目标
// 坐标单位与 TextMeasurer 一致；超出目标范围的部分由实现裁剪
type Surface interface {
	FillRoundRect(x, y, width, height, radius float64, clr color.Color)
	// DrawText 以 (x, baseline) 为基线起点绘制文本
	DrawText(s string, x, baseline float64, clr color.Color)
}

// Size 整数尺寸
type Size struct {
	Width  int
	Height int
}

// Theme 气泡外观
// 数值来自宿主的资源/主题系统（本项目中为 YAML 配置）
type Theme struct {
	Padding          float64 // 左右内边距
	VerticalPadding  float64 // 上下内边距
	Radius           float64
	HorizontalMargin int
	VerticalMargin   int

	BubbleColor color.Color
	TextColor   color.Color

	ScrollbarColor     color.Color
	ScrollbarThickness float64
}

// DefaultTheme 默认主题（像素单位）
func DefaultTheme() Theme {
	return Theme{
		Padding:            12,
		VerticalPadding:    8,
		Radius:             14,
		HorizontalMargin:   8,
		VerticalMargin:     6,
		BubbleColor:        color.RGBA{R: 0x3F, G: 0x51, B: 0xB5, A: 0xFF},
		TextColor:          color.White,
		ScrollbarColor:     color.RGBA{R: 0x90, G: 0x90, B: 0x90, A: 0xFF},
		ScrollbarThickness: 3,
	}
}
