// Package utils 提供与渲染后端无关的通用工具函数
package utils

import (
	"math"
	"time"
)

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]，
// 且在 [0, 1] 上单调不减（气泡宽度动画依赖这一点保证宽度单调逼近目标）。
//
// 参考：https://easings.net/

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseAccelerateDecelerate 先加速后减速
// 特点：两端慢，中间快（气泡展开动画的默认曲线）
// 公式：f(t) = cos((t+1)π)/2 + 0.5
func EaseAccelerateDecelerate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于松手后回弹到边界）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpInt 整数线性插值，结果向零截断
func LerpInt(a, b int, t float64) int {
	return a + int(float64(b-a)*t)
}

// Progress 计算动画进度 ∈ [0, 1]
// duration <= 0 时视为瞬间完成
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(duration)
}

// ClampInt 将 v 限制在 [lo, hi] 内
// hi < lo 时返回 lo
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Clamp 将 v 限制在 [lo, hi] 内
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
