package components

// TutorialComponent 教学状态镜像组件
// 由 TutorialSystem 每帧从教学引擎同步，供渲染与 UI 读取
// 组件只读镜像，修改它不会影响教学进度
type TutorialComponent struct {
	// StageIndex 当前阶段索引（从0开始）
	StageIndex int

	// StageName 当前阶段名称，如 "conveyor"
	StageName string

	// StageCount 阶段总数
	StageCount int

	// SentenceIndex 当前句子索引
	SentenceIndex int

	// SentenceCount 当前阶段的句子数量
	SentenceCount int

	// CanPrev / CanNext 翻页按钮是否可用
	CanPrev bool
	CanNext bool

	// IsActive 教学系统是否激活
	// false 表示教学未开始或已被关闭
	IsActive bool
}
