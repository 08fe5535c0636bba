//go:build !mobile

package utils

import "testing"

func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv(MobileEmulateEnv, "")
	if IsMobile() {
		t.Error("桌面端 IsMobile() 应为 false")
	}

	t.Setenv(MobileEmulateEnv, "1")
	if !IsMobile() {
		t.Error("设置模拟环境变量后 IsMobile() 应为 true")
	}
}
