package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/bubblerow/pkg/config"
	"github.com/decker502/bubblerow/pkg/suggest"
)

// RowConfig 把像素单位的配置换算到单元格
//
// 颜色和时间参数沿用配置；几何参数固定为一格内边距、
// 一行气泡加上下各一行（下方一行显示滚动条）。
// 手势阈值按单元格重新设定，一格大约相当于 8 像素。
func RowConfig(cfg *config.SuggestConfig) suggest.RowConfig {
	rc := cfg.RowConfig()

	rc.Theme.Padding = 1
	rc.Theme.VerticalPadding = 0
	rc.Theme.Radius = 0
	rc.Theme.HorizontalMargin = 1
	rc.Theme.VerticalMargin = 1
	rc.Theme.ScrollbarThickness = 1

	rc.Gesture.TouchSlop = 1
	rc.Gesture.MinFlingVelocity = cfg.Gesture.MinFlingVelocity / cellPixels
	rc.Gesture.MaxFlingVelocity = cfg.Gesture.MaxFlingVelocity / cellPixels
	rc.Scroller.StopVelocity = cfg.Scroll.StopVelocity / cellPixels

	return rc
}

// cellPixels 一个单元格折合的像素数
const cellPixels = 8

// Styles 终端界面样式
type Styles struct {
	Title  lipgloss.Style
	Help   lipgloss.Style
	Prompt lipgloss.Style
	Toast  lipgloss.Style
}

// NewStyles 由配置颜色创建样式
func NewStyles(cfg *config.SuggestConfig) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Theme.BubbleColor)),
		Help:   lipgloss.NewStyle().Faint(true),
		Prompt: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Theme.BubbleColor)).Bold(true),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#323232")).
			Padding(0, 2),
	}
}
