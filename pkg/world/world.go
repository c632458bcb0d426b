// Package world 提供教学地图的内存世界模拟
//
// 世界由格子地图与 ECS 实体组成：格子只记录方块与队伍，
// 核心、敌人和波次计时器作为实体挂载组件。
// 玩家操作（建造、拆除、运送物品等）通过事件总线同步广播。
package world

import (
	"log"

	"github.com/decker502/factorytutor/pkg/components"
	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/ecs"
	"github.com/decker502/factorytutor/pkg/events"
	"github.com/decker502/factorytutor/pkg/types"
)

// tile 单个格子
type tile struct {
	block types.Block
	team  types.Team
}

// World 教学地图的世界状态
// 非并发安全，只允许在游戏逻辑线程中使用
type World struct {
	width, height int
	tiles         []tile

	entityManager *ecs.EntityManager
	bus           *events.Bus
	cfg           config.WorldConfig

	// waveEntity 挂载 WaveTimerComponent 的单例实体
	waveEntity ecs.EntityID

	paused bool
}

// New 创建世界并在配置的位置放置玩家核心
//
// 参数：
//   - em: 实体管理器
//   - bus: 事件总线，玩家操作事件通过它广播
//   - cfg: 世界参数
func New(em *ecs.EntityManager, bus *events.Bus, cfg config.WorldConfig) *World {
	w := &World{
		width:         cfg.Width,
		height:        cfg.Height,
		tiles:         make([]tile, cfg.Width*cfg.Height),
		entityManager: em,
		bus:           bus,
		cfg:           cfg,
	}

	w.waveEntity = em.CreateEntity()
	ecs.AddComponent(em, w.waveEntity, &components.WaveTimerComponent{
		Enabled:   false,
		Countdown: cfg.WaveSpacing,
		Spacing:   cfg.WaveSpacing,
	})

	w.PlaceCore(cfg.CoreX, cfg.CoreY, types.DefaultTeam)

	log.Printf("[World] Created %dx%d map, core at (%d, %d)", cfg.Width, cfg.Height, cfg.CoreX, cfg.CoreY)
	return w
}

// Width / Height 地图尺寸（格）
func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.width && y < w.height
}

// Block 返回格子上的方块，越界返回 BlockAir
func (w *World) Block(x, y int) types.Block {
	if !w.inBounds(x, y) {
		return types.BlockAir
	}
	return w.tiles[y*w.width+x].block
}

// TeamAt 返回格子上方块所属的队伍
func (w *World) TeamAt(x, y int) types.Team {
	if !w.inBounds(x, y) {
		return types.TeamDerelict
	}
	return w.tiles[y*w.width+x].team
}

// SetBlock 直接设置格子上的方块（不广播事件）
// 用于教学脚本布置场景
func (w *World) SetBlock(x, y int, block types.Block, team types.Team) {
	if !w.inBounds(x, y) {
		return
	}
	w.tiles[y*w.width+x] = tile{block: block, team: team}
}

// RemoveBlock 清空格子（不广播事件）
// 核心所在格子不允许被清空
func (w *World) RemoveBlock(x, y int) {
	if !w.inBounds(x, y) {
		return
	}
	if w.tiles[y*w.width+x].block == types.BlockCoreShard {
		log.Printf("[World] Refusing to remove core at (%d, %d)", x, y)
		return
	}
	w.tiles[y*w.width+x] = tile{}
}

// PlaceCore 在指定位置放置核心并创建核心实体
func (w *World) PlaceCore(x, y int, team types.Team) ecs.EntityID {
	w.SetBlock(x, y, types.BlockCoreShard, team)
	id := w.entityManager.CreateEntity()
	ecs.AddComponent(w.entityManager, id, &components.CoreComponent{Team: team, Tile: types.Point{X: x, Y: y}})
	ecs.AddComponent(w.entityManager, id, &components.InventoryComponent{Items: make(map[types.Item]int)})
	return id
}

// Cores 返回队伍所有核心的位置，按创建顺序排列
// 队伍没有核心时返回空切片
func (w *World) Cores(team types.Team) []types.Point {
	var result []types.Point
	for _, id := range w.coreEntities(team) {
		core, _ := ecs.GetComponent[*components.CoreComponent](w.entityManager, id)
		result = append(result, core.Tile)
	}
	return result
}

func (w *World) coreEntities(team types.Team) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.CoreComponent, *components.InventoryComponent](w.entityManager) {
		core, _ := ecs.GetComponent[*components.CoreComponent](w.entityManager, id)
		if core.Team == team {
			result = append(result, id)
		}
	}
	return result
}

func (w *World) firstInventory(team types.Team) *components.InventoryComponent {
	ids := w.coreEntities(team)
	if len(ids) == 0 {
		return nil
	}
	inv, _ := ecs.GetComponent[*components.InventoryComponent](w.entityManager, ids[0])
	return inv
}

// Items 返回队伍第一个核心中的物品数量，没有核心时返回 0
func (w *World) Items(team types.Team, item types.Item) int {
	inv := w.firstInventory(team)
	if inv == nil {
		return 0
	}
	return inv.Get(item)
}

// AddItems 向队伍第一个核心添加物品（不广播事件）
func (w *World) AddItems(team types.Team, item types.Item, amount int) {
	inv := w.firstInventory(team)
	if inv == nil {
		log.Printf("[World] Team %s has no core, dropping %d %s", team, amount, item)
		return
	}
	inv.Add(item, amount)
}

// Paused 返回游戏是否暂停
func (w *World) Paused() bool {
	return w.paused
}

// SetPaused 设置暂停状态
func (w *World) SetPaused(paused bool) {
	w.paused = paused
}

// TogglePause 切换暂停状态
func (w *World) TogglePause() {
	w.paused = !w.paused
}
