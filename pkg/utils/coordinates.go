package utils

// 坐标系统
//
//   - 世界坐标：原点在场景左下角，Y 轴向上（实体位置、物理、动作都使用世界坐标）
//   - 屏幕坐标：原点在窗口左上角，Y 轴向下（ebiten 输入与绘制）
//
// 两者只在输入和渲染边界处转换：
//
//	worldY = sceneHeight - screenY

// ScreenToWorld 屏幕坐标转换为世界坐标
func ScreenToWorld(screenX, screenY, sceneHeight float64) (float64, float64) {
	return screenX, sceneHeight - screenY
}

// WorldToScreen 世界坐标转换为屏幕坐标
func WorldToScreen(worldX, worldY, sceneHeight float64) (float64, float64) {
	return worldX, sceneHeight - worldY
}
