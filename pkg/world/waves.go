package world

import (
	"log"

	"github.com/decker502/factorytutor/pkg/components"
	"github.com/decker502/factorytutor/pkg/ecs"
)

func (w *World) waveTimer() *components.WaveTimerComponent {
	timer, ok := ecs.GetComponent[*components.WaveTimerComponent](w.entityManager, w.waveEntity)
	if !ok {
		// 单例实体由 New 创建，缺失说明实体管理器被外部清空
		timer = &components.WaveTimerComponent{Spacing: w.cfg.WaveSpacing, Countdown: w.cfg.WaveSpacing}
		ecs.AddComponent(w.entityManager, w.waveEntity, timer)
	}
	return timer
}

// Wave 返回已触发的波次数
func (w *World) Wave() int {
	return w.waveTimer().Wave
}

// SetWave 直接设置波次数
func (w *World) SetWave(wave int) {
	w.waveTimer().Wave = wave
}

// WaveTimer 返回自动波次计时是否启用
func (w *World) WaveTimer() bool {
	return w.waveTimer().Enabled
}

// SetWaveTimer 启用或关闭自动波次计时
// 重新启用时倒计时从头开始
func (w *World) SetWaveTimer(enabled bool) {
	timer := w.waveTimer()
	if enabled && !timer.Enabled {
		timer.Countdown = timer.Spacing
	}
	timer.Enabled = enabled
}

// WaveCountdown 返回距离下一波的倒计时（秒）
func (w *World) WaveCountdown() float64 {
	return w.waveTimer().Countdown
}

// RunWave 立即触发下一波
// 波次数加一，并排队生成本波敌人
func (w *World) RunWave() {
	timer := w.waveTimer()
	timer.Wave++
	count := w.cfg.EnemiesBase + timer.Wave/2
	timer.PendingSpawns += count
	timer.Countdown = timer.Spacing
	log.Printf("[World] Wave %d started, %d enemies queued", timer.Wave, count)
}

// Enemies 返回当前存活的敌人数量
func (w *World) Enemies() int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](w.entityManager))
}

// Spawning 返回是否仍有敌人等待生成
func (w *World) Spawning() bool {
	return w.waveTimer().PendingSpawns > 0
}

// Update 推进世界模拟
// 暂停时不做任何事
//
// 参数：
//   - dt: 时间增量（秒）
func (w *World) Update(dt float64) {
	if w.paused {
		return
	}

	timer := w.waveTimer()
	if timer.Enabled {
		timer.Countdown -= dt
		if timer.Countdown <= 0 {
			w.RunWave()
		}
	}

	w.updateSpawns(timer, dt)
	w.updateEnemies(dt)
	w.entityManager.RemoveMarkedEntities()
}

func (w *World) updateSpawns(timer *components.WaveTimerComponent, dt float64) {
	if timer.PendingSpawns <= 0 {
		return
	}
	timer.SpawnCooldown -= dt
	if timer.SpawnCooldown > 0 {
		return
	}
	id := w.entityManager.CreateEntity()
	ecs.AddComponent(w.entityManager, id, &components.EnemyComponent{
		Wave:          timer.Wave,
		Lifetime:      w.cfg.EnemyLifetime,
		RemainingLife: w.cfg.EnemyLifetime,
	})
	timer.PendingSpawns--
	timer.SpawnCooldown = w.cfg.SpawnInterval
}

func (w *World) updateEnemies(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](w.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](w.entityManager, id)
		enemy.RemainingLife -= dt
		if enemy.RemainingLife <= 0 {
			w.entityManager.DestroyEntity(id)
		}
	}
}
