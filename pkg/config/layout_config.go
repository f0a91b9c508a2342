package config

// 布局配置常量
// 本文件定义了场景的逻辑分辨率、帧时间限制和实体默认摆放位置
// 所有坐标使用"世界坐标系"（相对于场景左上角），与窗口实际尺寸无关

const (
	// GameWindowWidth 逻辑分辨率宽度（像素）
	// Ebitengine 会在保持宽高比的前提下将其缩放到窗口
	GameWindowWidth = 1280

	// GameWindowHeight 逻辑分辨率高度（像素）
	GameWindowHeight = 720

	// MaxFrameDelta 单帧最大时间步长（秒）
	// 窗口失焦或卡顿后恢复时，避免一帧内移动过远
	MaxFrameDelta = 0.05

	// WalkIntensityRate 行走强度趋近速度（每秒）
	// 每帧趋近因子为 min(1, dt*WalkIntensityRate)
	WalkIntensityRate = 8.0

	// SpawnMargin 玩家出生点距左侧、底部的距离（像素）
	// 出生点 Y = 世界高度 - 碰撞盒高度 - SpawnMargin
	SpawnMargin = 80.0

	// FlagMargin 旗帜距右侧、底部的距离（像素）
	// 旗帜左上角 = (世界宽度 - FlagMargin, 世界高度 - FlagMargin)
	FlagMargin = 80.0
)

// DefaultPlayerStartY 根据世界高度和碰撞盒高度计算默认出生点 Y
func DefaultPlayerStartY(worldHeight, colliderHeight float64) float64 {
	return worldHeight - colliderHeight - SpawnMargin
}

// DefaultFlagPosition 根据世界尺寸计算旗帜默认左上角
//
// 返回：
//   - x, y: 旗帜左上角的世界坐标
func DefaultFlagPosition(worldWidth, worldHeight float64) (x, y float64) {
	return worldWidth - FlagMargin, worldHeight - FlagMargin
}
