package config

// 游戏窗口（逻辑分辨率）
// Ebitengine 会把该分辨率等比缩放到实际窗口或手机屏幕
const (
	GameWindowWidth  = 800
	GameWindowHeight = 600
)

// 相机投影参数
const (
	// CameraFovYDegrees 垂直视场角（度）
	CameraFovYDegrees = 60.0
	// CameraNear 近裁剪面（米）
	CameraNear = 0.05
	// CameraFar 远裁剪面（米）
	CameraFar = 60.0
)

// 游戏界面按钮布局
const (
	FireButtonWidth  = 140.0
	FireButtonHeight = 56.0
	FireButtonMargin = 24.0

	PlayButtonWidth  = 200.0
	PlayButtonHeight = 64.0
)
