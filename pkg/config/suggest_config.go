package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/decker502/bubblerow/pkg/embedded"
	"github.com/decker502/bubblerow/pkg/suggest"
)

// DefaultSuggestConfigPath 内置默认配置在 embed.FS 中的路径
const DefaultSuggestConfigPath = "data/suggest.yaml"

// SuggestConfig 建议气泡行配置
//
// 气泡外观、手势阈值和滚动物理参数。
// 配置文件位置: data/suggest.yaml（内置），可通过 --config 指定外部文件覆盖。
type SuggestConfig struct {
	// Theme 气泡外观（像素单位；终端宿主中为单元格）
	Theme ThemeConfig `yaml:"theme"`

	// Gesture 手势识别阈值
	Gesture GestureConfig `yaml:"gesture"`

	// Scroll 惯性滚动与回弹参数
	Scroll ScrollConfig `yaml:"scroll"`

	// InitialSuggests 启动时显示的建议
	InitialSuggests []string `yaml:"initialSuggests"`
}

// ThemeConfig 气泡外观配置
type ThemeConfig struct {
	Padding          float64 `yaml:"padding"`
	VerticalPadding  float64 `yaml:"verticalPadding"`
	Radius           float64 `yaml:"radius"`
	HorizontalMargin int     `yaml:"horizontalMargin"`
	VerticalMargin   int     `yaml:"verticalMargin"`
	TextSize         float64 `yaml:"textSize"`

	// 颜色格式 "#RRGGBB" 或 "#RRGGBBAA"
	BubbleColor     string `yaml:"bubbleColor"`
	TextColor       string `yaml:"textColor"`
	BackgroundColor string `yaml:"backgroundColor"`
	ScrollbarColor  string `yaml:"scrollbarColor"`

	ScrollbarThickness float64 `yaml:"scrollbarThickness"`
}

// GestureConfig 手势阈值配置
type GestureConfig struct {
	TouchSlop        float64 `yaml:"touchSlop"`
	TapTimeoutMs     int     `yaml:"tapTimeoutMs"`
	MinFlingVelocity float64 `yaml:"minFlingVelocity"`
	MaxFlingVelocity float64 `yaml:"maxFlingVelocity"`
	VelocityWindowMs int     `yaml:"velocityWindowMs"`
}

// ScrollConfig 滚动物理配置
type ScrollConfig struct {
	// FlingFrictionMs 速度衰减时间常数（毫秒）
	FlingFrictionMs  int     `yaml:"flingFrictionMs"`
	StopVelocity     float64 `yaml:"stopVelocity"`
	SettleDurationMs int     `yaml:"settleDurationMs"`
}

// DefaultSuggestConfig 返回与内置 data/suggest.yaml 一致的默认配置
func DefaultSuggestConfig() *SuggestConfig {
	return &SuggestConfig{
		Theme: ThemeConfig{
			Padding:            12,
			VerticalPadding:    8,
			Radius:             14,
			HorizontalMargin:   8,
			VerticalMargin:     6,
			TextSize:           16,
			BubbleColor:        "#3F51B5",
			TextColor:          "#FFFFFF",
			BackgroundColor:    "#FAFAFA",
			ScrollbarColor:     "#909090",
			ScrollbarThickness: 3,
		},
		Gesture: GestureConfig{
			TouchSlop:        8,
			TapTimeoutMs:     400,
			MinFlingVelocity: 50,
			MaxFlingVelocity: 8000,
			VelocityWindowMs: 100,
		},
		Scroll: ScrollConfig{
			FlingFrictionMs:  325,
			StopVelocity:     20,
			SettleDurationMs: 250,
		},
		InitialSuggests: []string{
			"test string",
			"another string",
			"yet another",
			"Aaaaaaa aaaa",
			"Bbb b bbbb",
			"Bbb 1 bbbb",
			"Bbb 2 bbbb",
			"Bbb 3 bbbb",
			"Bbb 4 bbbb",
			"Bbb 5 bbbb",
		},
	}
}

// ResolveSuggestConfig 按优先级加载配置
//
// 优先级：
//  1. path 指定的外部文件（为空时跳过）
//  2. 内置 data/suggest.yaml
//  3. DefaultSuggestConfig()
//
// 外部文件不存在时回退到内置配置；文件存在但无效时返回错误。
func ResolveSuggestConfig(path string) (*SuggestConfig, error) {
	if path != "" {
		config, err := LoadSuggestConfig(path)
		if err == nil {
			log.Printf("[Config] 加载配置文件: %s", path)
			return config, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Printf("[Config] 配置文件 %s 不存在，使用内置配置", path)
	}

	data, err := embedded.ReadFile(DefaultSuggestConfigPath)
	if err != nil {
		log.Printf("[Config] 内置配置不可用 (%v)，使用默认值", err)
		return DefaultSuggestConfig(), nil
	}

	config, err := ParseSuggestConfig(data)
	if err != nil {
		return nil, fmt.Errorf("embedded %s: %w", DefaultSuggestConfigPath, err)
	}
	log.Printf("[Config] 加载内置配置: %s", DefaultSuggestConfigPath)
	return config, nil
}

// LoadSuggestConfig 从文件加载配置
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SuggestConfig: 加载成功后的配置（未出现的字段使用默认值）
//   - error: 读取、解析或验证失败时返回错误
func LoadSuggestConfig(path string) (*SuggestConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suggest config: %w", err)
	}
	return ParseSuggestConfig(data)
}

// ParseSuggestConfig 解析 YAML 配置
// 在默认配置之上解析，YAML 中未出现的字段保持默认值
func ParseSuggestConfig(data []byte) (*SuggestConfig, error) {
	config := DefaultSuggestConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse suggest config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid suggest config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 内边距、外边距、圆角不能为负
//   - 字号必须为正
//   - 最小 fling 速度不能大于最大值
//   - 颜色格式正确
func (c *SuggestConfig) Validate() error {
	t := c.Theme
	if t.Padding < 0 || t.VerticalPadding < 0 || t.Radius < 0 {
		return fmt.Errorf("padding/verticalPadding/radius must be >= 0, got %.1f/%.1f/%.1f",
			t.Padding, t.VerticalPadding, t.Radius)
	}
	if t.HorizontalMargin < 0 || t.VerticalMargin < 0 {
		return fmt.Errorf("margins must be >= 0, got %d/%d", t.HorizontalMargin, t.VerticalMargin)
	}
	if t.TextSize <= 0 {
		return fmt.Errorf("textSize must be > 0, got %.1f", t.TextSize)
	}

	colors := map[string]string{
		"bubbleColor":     t.BubbleColor,
		"textColor":       t.TextColor,
		"backgroundColor": t.BackgroundColor,
		"scrollbarColor":  t.ScrollbarColor,
	}
	for name, value := range colors {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	g := c.Gesture
	if g.TouchSlop < 0 || g.TapTimeoutMs < 0 || g.VelocityWindowMs < 0 {
		return fmt.Errorf("gesture thresholds must be >= 0")
	}
	if g.MinFlingVelocity > g.MaxFlingVelocity {
		return fmt.Errorf("minFlingVelocity(%.1f) > maxFlingVelocity(%.1f)",
			g.MinFlingVelocity, g.MaxFlingVelocity)
	}

	if c.Scroll.FlingFrictionMs <= 0 {
		return fmt.Errorf("flingFrictionMs must be > 0, got %d", c.Scroll.FlingFrictionMs)
	}
	if c.Scroll.SettleDurationMs < 0 {
		return fmt.Errorf("settleDurationMs must be >= 0, got %d", c.Scroll.SettleDurationMs)
	}

	return nil
}

// RowConfig 转换为 suggest.Row 使用的参数
// 调用前应已通过 Validate
func (c *SuggestConfig) RowConfig() suggest.RowConfig {
	t := c.Theme
	return suggest.RowConfig{
		Theme: suggest.Theme{
			Padding:            t.Padding,
			VerticalPadding:    t.VerticalPadding,
			Radius:             t.Radius,
			HorizontalMargin:   t.HorizontalMargin,
			VerticalMargin:     t.VerticalMargin,
			BubbleColor:        mustColor(t.BubbleColor),
			TextColor:          mustColor(t.TextColor),
			ScrollbarColor:     mustColor(t.ScrollbarColor),
			ScrollbarThickness: t.ScrollbarThickness,
		},
		Gesture: suggest.GestureConfig{
			TouchSlop:        c.Gesture.TouchSlop,
			TapTimeout:       millis(c.Gesture.TapTimeoutMs),
			MinFlingVelocity: c.Gesture.MinFlingVelocity,
			MaxFlingVelocity: c.Gesture.MaxFlingVelocity,
			VelocityWindow:   millis(c.Gesture.VelocityWindowMs),
		},
		Scroller: suggest.ScrollerConfig{
			FlingFriction:  millis(c.Scroll.FlingFrictionMs),
			StopVelocity:   c.Scroll.StopVelocity,
			SettleDuration: millis(c.Scroll.SettleDurationMs),
		},
	}
}

// Background 背景色
func (c *SuggestConfig) Background() color.Color {
	return mustColor(c.Theme.BackgroundColor)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func mustColor(s string) color.Color {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.Black
	}
	return c
}

// ParseHexColor 解析 "#RRGGBB" 或 "#RRGGBBAA"
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "FF"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
