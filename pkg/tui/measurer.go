package tui

import (
	"github.com/mattn/go-runewidth"

	"github.com/decker502/bubblerow/pkg/suggest"
)

// CellMeasurer 以终端单元格为单位测量文本
// 东亚宽字符占两格，行高为一格
type CellMeasurer struct{}

// Advance 文本占用的单元格数
func (CellMeasurer) Advance(s string) float64 {
	return float64(runewidth.StringWidth(s))
}

// Metrics 一行文本：上升一格，无下降
func (CellMeasurer) Metrics() suggest.FontMetrics {
	return suggest.FontMetrics{Ascent: 1, Descent: 0}
}
