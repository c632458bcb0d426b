package tutorial

import (
	"log"

	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/types"
)

// 默认阶段名称，同时是文本键 "tutorial.<name>" 的后缀
const (
	StageIntro       = "intro"
	StageDrill       = "drill"
	StageBlockInfo   = "blockinfo"
	StageConveyor    = "conveyor"
	StageTurret      = "turret"
	StageDrillTurret = "drillturret"
	StagePause       = "pause"
	StageUnpause     = "unpause"
	StageBreaking    = "breaking"
	StageWithdraw    = "withdraw"
	StageDeposit     = "deposit"
	StageWaves       = "waves"
	StageLaunch      = "launch"
)

// 高亮的 UI 元素名称
const (
	ElementCategoryProduction   = "category-production"
	ElementCategoryDistribution = "category-distribution"
	ElementCategoryTurret       = "category-turret"
	ElementBlockDrill           = "block-mechanical-drill"
	ElementBlockConveyor        = "block-conveyor"
	ElementBlockDuo             = "block-duo"
	ElementConfirmPlace         = "confirmplace"
	ElementBlockInfo            = "blockinfo"
	ElementPause                = "pause"
	ElementBreakMode            = "breakmode"
	ElementWaves                = "waves"
)

// PlayedTutorialKey 教学完成后写入设置的键
const PlayedTutorialKey = "playedtutorial"

// DefaultStages 返回完整的默认教学流程
//
// 参数：
//   - cfg: 各阶段判定阈值
//
// 返回：
//   - []StageDef: 按顺序排列的 13 个阶段，最后一个阶段 launch 永远不会完成
func DefaultStages(cfg config.StageThresholds) []StageDef {
	return []StageDef{
		{
			Name: StageIntro,
			Format: func(line string, c *Context) string {
				return FormatLine(line, c.Item(types.ItemCopper), cfg.MineCopper)
			},
			Done: func(c *Context) bool {
				return c.Item(types.ItemCopper) >= cfg.MineCopper
			},
		},
		{
			Name: StageDrill,
			Done: func(c *Context) bool {
				return c.PlacedAtLeast(types.BlockMechanicalDrill, 1)
			},
			Draw: func(c *Context) {
				c.Outline(ElementCategoryProduction)
				c.Outline(ElementBlockDrill)
				c.Outline(ElementConfirmPlace)
			},
		},
		{
			Name: StageBlockInfo,
			Done: func(c *Context) bool {
				return c.Event(EventBlockInfo)
			},
			Draw: func(c *Context) {
				c.Outline(ElementCategoryProduction)
				c.Outline(ElementBlockDrill)
				c.Outline(ElementBlockInfo)
			},
		},
		{
			Name: StageConveyor,
			Format: func(line string, c *Context) string {
				return FormatLine(line, min(c.Placed(types.BlockConveyor), cfg.ConveyorTarget), cfg.ConveyorTarget)
			},
			Done: func(c *Context) bool {
				return c.PlacedAtLeast(types.BlockConveyor, cfg.ConveyorTarget) &&
					c.Event(EventLineConfirm) &&
					c.Event(EventCoreItem)
			},
			Draw: func(c *Context) {
				c.Outline(ElementCategoryDistribution)
				c.Outline(ElementBlockConveyor)
			},
		},
		{
			Name: StageTurret,
			Done: func(c *Context) bool {
				return c.PlacedAtLeast(types.BlockDuo, 1)
			},
			Draw: func(c *Context) {
				c.Outline(ElementCategoryTurret)
				c.Outline(ElementBlockDuo)
			},
		},
		{
			Name: StageDrillTurret,
			Done: func(c *Context) bool {
				return c.Event(EventAmmo)
			},
		},
		{
			Name: StagePause,
			Done: func(c *Context) bool {
				return c.World.Paused()
			},
			Draw: outlinePauseOnMobile,
		},
		{
			Name: StageUnpause,
			Done: func(c *Context) bool {
				return !c.World.Paused()
			},
			Draw: outlinePauseOnMobile,
		},
		{
			Name:  StageBreaking,
			Begin: breakBlocks(cfg),
			Done:  blocksRepaired(cfg),
			Draw: func(c *Context) {
				if c.Mobile {
					c.Outline(ElementBreakMode)
				}
			},
		},
		{
			Name: StageWithdraw,
			Begin: func(c *Context) {
				c.World.AddItems(types.DefaultTeam, types.ItemCopper, cfg.WithdrawAmount)
			},
			Done: func(c *Context) bool {
				return c.Event(EventWithdraw)
			},
		},
		{
			Name: StageDeposit,
			Done: func(c *Context) bool {
				return c.Event(EventDeposit)
			},
		},
		{
			Name: StageWaves,
			Begin: func(c *Context) {
				c.World.SetWaveTimer(true)
				c.World.RunWave()
			},
			Update: func(c *Context) {
				if c.World.Wave() > cfg.WaveTarget {
					c.World.SetWaveTimer(false)
				}
			},
			Done: func(c *Context) bool {
				return c.World.Wave() > cfg.WaveTarget && c.World.Enemies() <= 0 && !c.World.Spawning()
			},
		},
		{
			Name: StageLaunch,
			Begin: func(c *Context) {
				c.World.SetWaveTimer(false)
				c.World.SetWave(cfg.LaunchWave)
				markPlayed(c)
			},
			Done: func(c *Context) bool {
				return false
			},
			Draw: func(c *Context) {
				c.Outline(ElementWaves)
			},
		},
	}
}

func outlinePauseOnMobile(c *Context) {
	if c.Mobile {
		c.Outline(ElementPause)
	}
}

// breakTiles 返回 breaking 阶段损坏的格子，没有核心时返回 nil
func breakTiles(c *Context, cfg config.StageThresholds) []types.Point {
	core, ok := c.FirstCore()
	if !ok {
		return nil
	}
	tiles := make([]types.Point, 0, cfg.BlocksToBreak)
	for i := 0; i < cfg.BlocksToBreak; i++ {
		tiles = append(tiles, core.Add(cfg.BlockOffset, i))
	}
	return tiles
}

func breakBlocks(cfg config.StageThresholds) func(c *Context) {
	return func(c *Context) {
		tiles := breakTiles(c, cfg)
		if tiles == nil {
			log.Printf("[Tutorial] breaking: player has no core, nothing to break")
			return
		}
		for _, p := range tiles {
			c.World.RemoveBlock(p.X, p.Y)
			c.World.SetBlock(p.X, p.Y, types.BlockScrapWall, types.DefaultTeam)
		}
	}
}

func blocksRepaired(cfg config.StageThresholds) func(c *Context) bool {
	return func(c *Context) bool {
		tiles := breakTiles(c, cfg)
		if tiles == nil {
			return false
		}
		for _, p := range tiles {
			if c.World.Block(p.X, p.Y) == types.BlockScrapWall {
				return false
			}
		}
		return true
	}
}

func markPlayed(c *Context) {
	if c.Settings == nil {
		return
	}
	c.Settings.Put(PlayedTutorialKey, true)
	if err := c.Settings.Save(); err != nil {
		log.Printf("[Tutorial] Failed to save settings: %v", err)
	}
}
