package components

// cursorBlinkInterval 光标闪烁间隔（秒）
const cursorBlinkInterval = 0.5

// TextInputComponent 单行文本输入框组件
// 用于输入查询文字，每次编辑后由宿主派生新的建议
//
// 光标位置以 rune 为单位。编辑方法返回文本是否发生变化，
// 宿主据此决定是否推送新的建议。
type TextInputComponent struct {
	// 输入框文本
	Text string

	// 光标状态
	CursorVisible    bool    // 光标是否可见（闪烁效果）
	CursorBlinkTimer float64 // 光标闪烁计时器（秒）
	CursorPosition   int     // 光标位置（字符索引）

	// 输入限制
	MaxLength   int    // 最大字符数（0 = 无限制）
	Placeholder string // 占位符文本（输入框为空时显示）

	// 焦点状态
	IsFocused bool
}

// NewTextInputComponent 创建获得焦点的输入框
func NewTextInputComponent(placeholder string, maxLength int) *TextInputComponent {
	return &TextInputComponent{
		Placeholder:   placeholder,
		MaxLength:     maxLength,
		IsFocused:     true,
		CursorVisible: true,
	}
}

// UpdateCursorBlink 更新光标闪烁状态
func (c *TextInputComponent) UpdateCursorBlink(deltaTime float64) {
	if !c.IsFocused {
		c.CursorVisible = false
		return
	}
	c.CursorBlinkTimer += deltaTime
	if c.CursorBlinkTimer >= cursorBlinkInterval {
		c.CursorBlinkTimer = 0
		c.CursorVisible = !c.CursorVisible
	}
}

// resetBlink 输入时光标应立即可见
func (c *TextInputComponent) resetBlink() {
	c.CursorBlinkTimer = 0
	c.CursorVisible = true
}

// Insert 在光标位置插入文本
// 控制字符被过滤；超过最大长度时整体拒绝
func (c *TextInputComponent) Insert(text string) bool {
	var filtered []rune
	for _, r := range text {
		if r >= ' ' && r != 0x7f {
			filtered = append(filtered, r)
		}
	}
	if len(filtered) == 0 {
		return false
	}

	runes := []rune(c.Text)
	if c.MaxLength > 0 && len(runes)+len(filtered) > c.MaxLength {
		return false
	}

	result := make([]rune, 0, len(runes)+len(filtered))
	result = append(result, runes[:c.CursorPosition]...)
	result = append(result, filtered...)
	result = append(result, runes[c.CursorPosition:]...)

	c.Text = string(result)
	c.CursorPosition += len(filtered)
	c.resetBlink()
	return true
}

// DeleteBefore 删除光标前的字符（退格）
func (c *TextInputComponent) DeleteBefore() bool {
	if c.CursorPosition == 0 {
		return false
	}
	runes := []rune(c.Text)
	c.Text = string(append(runes[:c.CursorPosition-1:c.CursorPosition-1], runes[c.CursorPosition:]...))
	c.CursorPosition--
	c.resetBlink()
	return true
}

// DeleteAfter 删除光标后的字符（Delete 键）
func (c *TextInputComponent) DeleteAfter() bool {
	runes := []rune(c.Text)
	if c.CursorPosition >= len(runes) {
		return false
	}
	c.Text = string(append(runes[:c.CursorPosition:c.CursorPosition], runes[c.CursorPosition+1:]...))
	c.resetBlink()
	return true
}

// MoveCursorLeft 光标左移
func (c *TextInputComponent) MoveCursorLeft() {
	if c.CursorPosition > 0 {
		c.CursorPosition--
	}
	c.resetBlink()
}

// MoveCursorRight 光标右移
func (c *TextInputComponent) MoveCursorRight() {
	if c.CursorPosition < len([]rune(c.Text)) {
		c.CursorPosition++
	}
	c.resetBlink()
}

// MoveCursorHome 光标移到开头
func (c *TextInputComponent) MoveCursorHome() {
	c.CursorPosition = 0
	c.resetBlink()
}

// MoveCursorEnd 光标移到结尾
func (c *TextInputComponent) MoveCursorEnd() {
	c.CursorPosition = len([]rune(c.Text))
	c.resetBlink()
}

// TextBeforeCursor 光标前的文本，用于计算光标绘制位置
func (c *TextInputComponent) TextBeforeCursor() string {
	return string([]rune(c.Text)[:c.CursorPosition])
}
