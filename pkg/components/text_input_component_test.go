package components

import "testing"

func TestTextInputComponent_Insert(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		cursor     int
		maxLength  int
		insert     string
		wantText   string
		wantCursor int
		wantChange bool
	}{
		{"空输入框", "", 0, 0, "abc", "abc", 3, true},
		{"光标在中间", "ac", 1, 0, "b", "abc", 2, true},
		{"中文", "气泡", 2, 0, "建议", "气泡建议", 4, true},
		{"过滤控制字符", "", 0, 0, "a\tb\n", "ab", 2, true},
		{"只有控制字符", "x", 1, 0, "\x1b", "x", 1, false},
		{"超过最大长度", "abcd", 4, 5, "ef", "abcd", 4, false},
		{"恰好达到最大长度", "abcd", 4, 5, "e", "abcde", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewTextInputComponent("", tt.maxLength)
			c.Text = tt.text
			c.CursorPosition = tt.cursor

			changed := c.Insert(tt.insert)
			if changed != tt.wantChange {
				t.Errorf("Insert(%q) changed = %v, want %v", tt.insert, changed, tt.wantChange)
			}
			if c.Text != tt.wantText || c.CursorPosition != tt.wantCursor {
				t.Errorf("结果 = (%q, %d), want (%q, %d)", c.Text, c.CursorPosition, tt.wantText, tt.wantCursor)
			}
		})
	}
}

func TestTextInputComponent_Delete(t *testing.T) {
	c := NewTextInputComponent("", 0)
	c.Text = "气泡abc"
	c.CursorPosition = 2

	if !c.DeleteBefore() || c.Text != "气abc" || c.CursorPosition != 1 {
		t.Errorf("DeleteBefore 后 = (%q, %d)", c.Text, c.CursorPosition)
	}
	if !c.DeleteAfter() || c.Text != "气bc" || c.CursorPosition != 1 {
		t.Errorf("DeleteAfter 后 = (%q, %d)", c.Text, c.CursorPosition)
	}

	c.MoveCursorHome()
	if c.DeleteBefore() {
		t.Error("光标在开头时 DeleteBefore 应无变化")
	}
	c.MoveCursorEnd()
	if c.DeleteAfter() {
		t.Error("光标在结尾时 DeleteAfter 应无变化")
	}
	if c.CursorPosition != 3 {
		t.Errorf("MoveCursorEnd 后光标 = %d, want 3", c.CursorPosition)
	}
}

func TestTextInputComponent_CursorMovement(t *testing.T) {
	c := NewTextInputComponent("", 0)
	c.Text = "ab"

	c.MoveCursorLeft()
	if c.CursorPosition != 0 {
		t.Errorf("开头左移后光标 = %d, want 0", c.CursorPosition)
	}
	c.MoveCursorRight()
	c.MoveCursorRight()
	c.MoveCursorRight()
	if c.CursorPosition != 2 {
		t.Errorf("结尾右移后光标 = %d, want 2", c.CursorPosition)
	}
	if c.TextBeforeCursor() != "ab" {
		t.Errorf("TextBeforeCursor() = %q", c.TextBeforeCursor())
	}
	c.MoveCursorLeft()
	if c.TextBeforeCursor() != "a" {
		t.Errorf("TextBeforeCursor() = %q, want \"a\"", c.TextBeforeCursor())
	}
}

func TestTextInputComponent_CursorBlink(t *testing.T) {
	c := NewTextInputComponent("", 0)
	if !c.CursorVisible {
		t.Fatal("新建输入框光标应可见")
	}

	c.UpdateCursorBlink(0.3)
	if !c.CursorVisible {
		t.Error("未到闪烁间隔时光标应保持可见")
	}
	c.UpdateCursorBlink(0.3)
	if c.CursorVisible {
		t.Error("超过闪烁间隔后光标应隐藏")
	}

	c.Insert("x")
	if !c.CursorVisible || c.CursorBlinkTimer != 0 {
		t.Error("输入后光标应立即可见")
	}

	c.IsFocused = false
	c.UpdateCursorBlink(0.1)
	if c.CursorVisible {
		t.Error("失去焦点时光标应隐藏")
	}
}

func TestDeriveSuggests(t *testing.T) {
	got := DeriveSuggests("abc")
	want := []string{"abc 1", "abc 2", "abc 3", "abc 4", "abc 5"}
	if len(got) != len(want) {
		t.Fatalf("DeriveSuggests 数量 = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("第 %d 个 = %q, want %q", i, got[i], want[i])
		}
	}

	if TapMessage("abc 1") != "bubble tapped: text=abc 1" {
		t.Errorf("TapMessage() = %q", TapMessage("abc 1"))
	}
}
