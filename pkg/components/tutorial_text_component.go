package components

// TutorialTextComponent 教学文本UI组件
// 控制教学提示文本的显示和渲染属性
// 用于在屏幕顶部中央显示教学引导文本
type TutorialTextComponent struct {
	// Text 教学文本内容（已完成模板替换）
	Text string

	// DisplayTime 当前文本已显示时间（秒）
	// 文本变化时归零，用于淡入效果
	DisplayTime float64

	// BackgroundAlpha 背景透明度（0.0-1.0）
	BackgroundAlpha float64
}
