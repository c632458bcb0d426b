package components

// EnemyComponent 敌方单位组件
// 世界模拟中的敌人只是简单的倒计时：存活时间耗尽即视为被消灭
type EnemyComponent struct {
	// Wave 生成该敌人的波次
	Wave int

	// Lifetime 总存活时间（秒）
	Lifetime float64

	// RemainingLife 剩余存活时间（秒）
	RemainingLife float64
}
