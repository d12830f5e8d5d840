// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource 指针事件来源
// 由 InputSystem 使用；测试时可替换为假实现
type PointerSource interface {
	// Update 每帧调用一次，在查询之前
	Update()
	// JustReleased 返回本帧是否有指针释放，以及释放位置（屏幕坐标）
	JustReleased() (bool, int, int)
}

// EbitenPointer 基于 ebiten 的鼠标/触摸指针来源
type EbitenPointer struct {
	// 保存最后一次触摸位置（触摸释放时 ebiten 不再提供位置）
	lastTouchX, lastTouchY int
}

// NewEbitenPointer 创建 ebiten 指针来源
func NewEbitenPointer() *EbitenPointer {
	return &EbitenPointer{}
}

// Update 更新最后一次触摸位置
func (p *EbitenPointer) Update() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		p.lastTouchX, p.lastTouchY = ebiten.TouchPosition(touchIDs[0])
	}
}

// JustReleased 检查是否刚刚释放指针（触摸或鼠标）
// 返回是否释放以及释放位置
func (p *EbitenPointer) JustReleased() (bool, int, int) {
	// 检查触摸释放
	releasedTouchIDs := inpututil.AppendJustReleasedTouchIDs(nil)
	if len(releasedTouchIDs) > 0 {
		// 触摸释放时使用保存的最后触摸位置
		return true, p.lastTouchX, p.lastTouchY
	}

	// 检查鼠标释放
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}
