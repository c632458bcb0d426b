package components

// WaveTimerComponent 波次计时器组件
// 存储波次刷新计时状态，作为单例挂载在世界实体上
// 注意：遵循 ECS 原则，组件仅存储数据
type WaveTimerComponent struct {
	// Enabled 是否启用自动波次计时
	// 关闭后只有显式调用 RunWave 才会出怪
	Enabled bool

	// Countdown 距离下一波的倒计时（秒）
	Countdown float64

	// Spacing 两波之间的间隔（秒）
	Spacing float64

	// Wave 已触发的波次数
	Wave int

	// PendingSpawns 尚未生成的敌人数量
	// 大于 0 时视为正在出怪
	PendingSpawns int

	// SpawnCooldown 下一个敌人生成前的冷却（秒）
	SpawnCooldown float64
}
