//go:build windows

package engine

import (
	"GopherSky/internal/logger"
	"syscall"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

var (
	dwmapi                    = syscall.NewLazyDLL("dwmapi.dll")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

const (
	dwmwaUseImmersiveDarkMode = 20
	dwmwaCaptionColor         = 35
)

// night sky caption, 0x00BBGGRR
const captionColor uint32 = 0x00201008

// applyWindowTheme gives the title bar a dark caption matching the sky.
func applyWindowTheme(window *glfw.Window) {
	hwnd := window.GetWin32Window()
	if hwnd == nil {
		return
	}

	setAttribute(hwnd, dwmwaUseImmersiveDarkMode, 1)
	setAttribute(hwnd, dwmwaCaptionColor, captionColor)
}

func setAttribute(hwnd unsafe.Pointer, attribute uintptr, value uint32) {
	ret, _, _ := procDwmSetWindowAttribute.Call(
		uintptr(hwnd),
		attribute,
		uintptr(unsafe.Pointer(&value)),
		unsafe.Sizeof(value),
	)
	if ret != 0 {
		logger.Log.Debug("DwmSetWindowAttribute failed",
			zap.Uint64("attribute", uint64(attribute)),
			zap.Uint64("hresult", uint64(ret)))
	}
}
