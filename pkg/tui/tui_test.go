package tui_test

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/bubblerow/pkg/config"
	"github.com/decker502/bubblerow/pkg/tui"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// initModel 创建模型并发送窗口尺寸
func initModel(t *testing.T, initial bool) tui.Model {
	t.Helper()
	m := tui.New(tui.Options{Config: config.DefaultSuggestConfig(), Initial: initial})
	return updateModel(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
}

// updateModel 发送消息并返回更新后的模型
func updateModel(t *testing.T, m tui.Model, msg tea.Msg) tui.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(tui.Model)
	require.True(t, ok)
	return model
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func TestNew_InitialSuggests(t *testing.T) {
	m := initModel(t, true)
	row := m.Row()

	require.Equal(t, 10, row.ActiveCount())
	assert.Equal(t, 40, row.ViewportWidth())

	// "test string" 11 格 + 左右各 1 格内边距
	first := row.Element(0)
	assert.Equal(t, 13, first.CurrentSize().Width)
	assert.Equal(t, 1, first.CurrentSize().Height)
	assert.Equal(t, 1, first.Offset())
	assert.False(t, first.Animating())
}

func TestNew_AnimatedFirstBatch(t *testing.T) {
	m := initModel(t, false)
	assert.True(t, m.Row().Element(0).Animating())

	// 推进超过展开时长后全部就位
	for i := 0; i < 40; i++ {
		m = updateModel(t, m, tui.TickMsg{})
	}
	assert.False(t, m.Row().Element(0).Animating())
	assert.Equal(t, 13, m.Row().Element(0).CurrentSize().Width)
}

func TestUpdate_TypingPushesDerivedSuggests(t *testing.T) {
	m := initModel(t, true)

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("go")})

	assert.Equal(t, "go", m.Input.Value())
	require.Equal(t, 5, m.Row().ActiveCount())
	assert.Equal(t, "go 1", m.Row().Element(0).Label())
	assert.Equal(t, "go 5", m.Row().Element(4).Label())
}

func TestUpdate_CursorKeysDoNotPush(t *testing.T) {
	m := initModel(t, true)
	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")})
	before := m.Row().Element(0).Label()

	m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, before, m.Row().Element(0).Label())
}

func TestUpdate_ClickShowsToast(t *testing.T) {
	m := initModel(t, true)
	y := m.RowTop() + 1

	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, y))
	m = updateModel(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 2, y))

	require.True(t, m.Toast().Active())
	assert.Equal(t, "bubble tapped: text=test string", m.Toast().Message())
}

func TestUpdate_DragScrollsRow(t *testing.T) {
	m := initModel(t, true)
	require.Greater(t, m.Row().ContentWidth(), m.Row().ViewportWidth())
	y := m.RowTop() + 1

	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 30, y))
	m = updateModel(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 25, y))
	m = updateModel(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 20, y))

	assert.Equal(t, 10, m.Row().ScrollX())
	assert.False(t, m.Toast().Active())
}

func TestUpdate_PressOutsideRowIgnored(t *testing.T) {
	m := initModel(t, true)

	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 30, 1))
	m = updateModel(t, m, mouse(tea.MouseActionMotion, tea.MouseButtonLeft, 10, m.RowTop()+1))
	m = updateModel(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 10, m.RowTop()+1))

	assert.Equal(t, 0, m.Row().ScrollX())
	assert.False(t, m.Toast().Active())
}

func TestUpdate_WheelScrollsWithinBounds(t *testing.T) {
	m := initModel(t, true)
	y := m.RowTop() + 1

	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 5, y))
	assert.Equal(t, 4, m.Row().ScrollX())

	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 5, y))
	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonWheelUp, 5, y))
	assert.Equal(t, 0, m.Row().ScrollX())

	limit := m.Row().ContentWidth() - m.Row().ViewportWidth()
	for i := 0; i < 100; i++ {
		m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonWheelDown, 5, y))
	}
	assert.Equal(t, limit, m.Row().ScrollX())
}

func TestUpdate_TickAdvancesClock(t *testing.T) {
	m := initModel(t, true)

	updated, cmd := m.Update(tui.TickMsg{})
	m = updated.(tui.Model)

	assert.Equal(t, tui.FrameInterval, m.Clock().Now())
	assert.NotNil(t, cmd, "tick 之后应继续调度下一帧")
}

func TestUpdate_EscQuits(t *testing.T) {
	m := initModel(t, true)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView(t *testing.T) {
	m := initModel(t, true)
	view := m.View()

	assert.Contains(t, view, "test string")
	assert.Contains(t, view, "Suggestions")
	assert.NotContains(t, view, "bubble tapped")

	y := m.RowTop() + 1
	m = updateModel(t, m, mouse(tea.MouseActionPress, tea.MouseButtonLeft, 2, y))
	m = updateModel(t, m, mouse(tea.MouseActionRelease, tea.MouseButtonNone, 2, y))
	for i := 0; i < 10; i++ {
		m = updateModel(t, m, tui.TickMsg{})
	}

	lines := strings.Split(m.View(), "\n")
	toastLine := lines[m.RowTop()+3]
	assert.Contains(t, toastLine, "bubble tapped: text=test string")
}
