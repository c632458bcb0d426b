package config

// 布局配置常量
// 本文件定义了教学界面的窗口尺寸与面板位置

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 960

	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600

	// TileSize 每个格子在屏幕上的边长（像素）
	TileSize = 12

	// TutorialPanelWidth 教学文本面板宽度
	TutorialPanelWidth = 560

	// TutorialPanelHeight 教学文本面板高度
	TutorialPanelHeight = 72

	// TutorialPanelY 教学文本面板距屏幕顶部的距离
	TutorialPanelY = 12

	// TutorialTextPadding 面板内文字边距
	TutorialTextPadding = 10
)

// 高亮描边参数
const (
	// OutlineStroke 描边线宽
	OutlineStroke = 4.0

	// OutlinePulse 描边呼吸幅度（像素）
	OutlinePulse = 4.0

	// OutlinePulsePeriod 描边呼吸周期（秒）
	OutlinePulsePeriod = 1.2

	// OutlineArrowSize 指示箭头大小（像素）
	OutlineArrowSize = 18.0
)
