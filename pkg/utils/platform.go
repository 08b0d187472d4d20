package utils

import (
	"os"
	"runtime"
)

// IsMobile 检测当前是否在移动设备上运行
// 可以通过设置环境变量 MERGEBALL_MOBILE_EMULATE=1 强制启用移动模式（用于本地调试）
func IsMobile() bool {
	if os.Getenv("MERGEBALL_MOBILE_EMULATE") == "1" {
		return true
	}
	return runtime.GOOS == "android" || runtime.GOOS == "ios"
}

// ControlsHint 返回操作提示文字
func ControlsHint() string {
	if IsMobile() {
		return "Drag to aim, release to drop"
	}
	return "Arrows/Mouse to aim, Space to drop, R to restart"
}
