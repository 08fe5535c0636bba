package tui

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/decker502/bubblerow/pkg/components"
	"github.com/decker502/bubblerow/pkg/config"
	"github.com/decker502/bubblerow/pkg/suggest"
)

var _ tea.Model = Model{}

// FrameInterval 帧时钟步长
const FrameInterval = time.Second / 30

// 气泡行上方的行数：标题、输入框、空行
const rowTop = 3

// 滚轮一次滚动的单元格数
const wheelStep = 4

// 提示滑入的最大缩进
const toastSlide = 12

// TickMsg 推进一帧
type TickMsg time.Time

// Model 终端版建议气泡演示
//
// 输入框的每次编辑推送 5 条派生建议，鼠标在气泡行上拖动滚动、
// 快速拖动后惯性滚动，点击气泡弹出提示。
type Model struct {
	// Input 查询输入框
	Input textinput.Model

	clock   *suggest.FrameClock
	row     *suggest.Row
	toast   *components.ToastComponent
	surface *CellSurface
	styles  Styles

	// capturing 指针在气泡行内按下，后续事件都交给气泡行
	capturing *bool

	width     int
	rowHeight int
	query     string
}

// Options 创建参数
type Options struct {
	Config *config.SuggestConfig
	// Initial 首批建议直接以完整尺寸显示
	Initial bool
}

// New 创建模型
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultSuggestConfig()
	}

	ti := textinput.New()
	ti.Placeholder = "Type to suggest..."
	ti.Prompt = "› "
	ti.CharLimit = 64
	ti.Focus()

	clock := suggest.NewFrameClock()
	row := suggest.NewRow(CellMeasurer{}, clock, RowConfig(cfg))
	_, rowHeight := row.Measure(0)

	m := Model{
		Input:     ti,
		clock:     clock,
		row:       row,
		toast:     components.NewToastComponent(int(time.Second / FrameInterval)),
		surface:   NewCellSurface(0, rowHeight, cfg.Background()),
		styles:    NewStyles(cfg),
		capturing: new(bool),
		rowHeight: rowHeight,
	}
	m.Input.PromptStyle = m.styles.Prompt

	toast := m.toast
	row.SetTapHandler(func(label string) {
		log.Printf("[SuggestTUI] 点击气泡: %q", label)
		toast.Show(components.TapMessage(label), clock.Now(), components.DefaultToastDuration)
	})

	if opts.Initial {
		row.SetInitialSuggests(cfg.InitialSuggests)
	} else {
		row.SetSuggests(cfg.InitialSuggests)
	}
	return m
}

// Row 气泡行
func (m Model) Row() *suggest.Row { return m.row }

// Toast 提示组件
func (m Model) Toast() *components.ToastComponent { return m.toast }

// Clock 帧时钟
func (m Model) Clock() *suggest.FrameClock { return m.clock }

// RowTop 气泡行第一行在屏幕上的行号
func (m Model) RowTop() int { return rowTop }

func tick() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.Input.Width = max(msg.Width-lenPrompt(m.Input.Prompt)-1, 1)
		m.row.SetViewport(msg.Width)
		m.surface.Resize(msg.Width, m.rowHeight)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		if v := m.Input.Value(); v != m.query {
			m.query = v
			m.row.SetSuggests(components.DeriveSuggests(v))
		}
		return m, cmd

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case TickMsg:
		m.clock.Advance(FrameInterval)
		m.toast.Update(m.clock.Now())
		return m, tick()
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

func lenPrompt(p string) int {
	return int(CellMeasurer{}.Advance(p))
}

// handleMouse 将鼠标事件转换为气泡行的指针事件
func (m Model) handleMouse(msg tea.MouseMsg) {
	y := msg.Y - rowTop
	inside := y >= 0 && y < m.rowHeight

	if inside && msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.scrollBy(wheelStep)
			return
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.scrollBy(-wheelStep)
			return
		}
	}

	event := suggest.PointerEvent{
		X:    float64(msg.X),
		Y:    float64(y),
		Time: m.clock.Now(),
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		*m.capturing = inside
		event.Kind = suggest.PointerDown
	case tea.MouseActionMotion:
		event.Kind = suggest.PointerMove
	case tea.MouseActionRelease:
		event.Kind = suggest.PointerUp
	default:
		return
	}

	if !*m.capturing {
		return
	}
	m.row.DispatchPointerEvent(event)
	if event.Kind == suggest.PointerUp {
		*m.capturing = false
	}
}

// scrollBy 滚轮滚动，结果限制在有效范围内
func (m Model) scrollBy(dx int) {
	limit := max(m.row.ContentWidth()-m.row.ViewportWidth(), 0)
	m.row.ScrollTo(min(max(m.row.ScrollX()+dx, 0), limit))
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Suggestions"))
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	m.surface.Clear()
	m.row.Render(m.surface)
	for _, line := range m.surface.Lines() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(m.toastView())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("drag or scroll the row · click a bubble · esc to quit"))
	return b.String()
}

// toastView 提示行：从左侧滑入，收回时缩进变大
func (m Model) toastView() string {
	if !m.toast.Active() {
		return ""
	}
	offset := int((1 - m.toast.Progress()) * toastSlide)
	return strings.Repeat(" ", max(offset, 0)) + m.styles.Toast.Render(m.toast.Message())
}
