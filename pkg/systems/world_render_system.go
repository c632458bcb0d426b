package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/factorytutor/pkg/components"
	"github.com/decker502/factorytutor/pkg/config"
	"github.com/decker502/factorytutor/pkg/ecs"
	"github.com/decker502/factorytutor/pkg/types"
	"github.com/decker502/factorytutor/pkg/utils"
	"github.com/decker502/factorytutor/pkg/world"
)

var (
	groundColor   = color.RGBA{R: 58, G: 54, B: 50, A: 255}
	gridLineColor = color.RGBA{R: 68, G: 64, B: 60, A: 255}
	enemyColor    = color.RGBA{R: 220, G: 70, B: 60, A: 255}
	statusColor   = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	pausedColor   = color.RGBA{R: 255, G: 211, B: 127, A: 255}
)

// BlockColor 方块在地图上的颜色
func BlockColor(b types.Block) color.RGBA {
	switch b {
	case types.BlockCoreShard:
		return color.RGBA{R: 255, G: 170, B: 60, A: 255}
	case types.BlockMechanicalDrill:
		return color.RGBA{R: 140, G: 140, B: 150, A: 255}
	case types.BlockConveyor:
		return color.RGBA{R: 100, G: 100, B: 110, A: 255}
	case types.BlockDuo:
		return color.RGBA{R: 210, G: 150, B: 90, A: 255}
	case types.BlockScrapWall:
		return color.RGBA{R: 120, G: 90, B: 70, A: 255}
	case types.BlockCopperWall:
		return color.RGBA{R: 200, G: 120, B: 80, A: 255}
	default:
		return groundColor
	}
}

// WorldRenderSystem 地图渲染系统
// 绘制格子、敌人与顶部状态栏（铜、波次、暂停）
type WorldRenderSystem struct {
	entityManager *ecs.EntityManager
	world         *world.World
	face          text.Face
}

// NewWorldRenderSystem 创建地图渲染系统
func NewWorldRenderSystem(em *ecs.EntityManager, w *world.World, face text.Face) *WorldRenderSystem {
	return &WorldRenderSystem{entityManager: em, world: w, face: face}
}

// Draw 绘制地图
func (s *WorldRenderSystem) Draw(screen *ebiten.Image) {
	cols, rows := s.world.Width(), s.world.Height()
	ox, oy := utils.MapOrigin(cols, rows)
	ts := float32(config.TileSize)

	vector.DrawFilledRect(screen, float32(ox), float32(oy), float32(cols)*ts, float32(rows)*ts, groundColor, false)
	for col := 0; col <= cols; col += 5 {
		x := float32(ox) + float32(col)*ts
		vector.StrokeLine(screen, x, float32(oy), x, float32(oy)+float32(rows)*ts, 1, gridLineColor, false)
	}
	for row := 0; row <= rows; row += 5 {
		y := float32(oy) + float32(row)*ts
		vector.StrokeLine(screen, float32(ox), y, float32(ox)+float32(cols)*ts, y, 1, gridLineColor, false)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b := s.world.Block(col, row)
			if b == types.BlockAir {
				continue
			}
			x, y := utils.TileToScreen(col, row, cols, rows)
			vector.DrawFilledRect(screen, float32(x)+1, float32(y)+1, ts-2, ts-2, BlockColor(b), false)
		}
	}

	s.drawEnemies(screen)
	s.drawStatus(screen)
}

// drawEnemies 敌人从地图右边缘向核心移动，位置由剩余寿命插值
func (s *WorldRenderSystem) drawEnemies(screen *ebiten.Image) {
	cores := s.world.Cores(types.DefaultTeam)
	if len(cores) == 0 {
		return
	}
	cols, rows := s.world.Width(), s.world.Height()
	coreX, coreY := utils.TileToScreen(cores[0].X, cores[0].Y, cols, rows)
	edgeX, _ := utils.TileToScreen(cols-1, 0, cols, rows)

	for i, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		t := 0.0
		if enemy.Lifetime > 0 {
			t = enemy.RemainingLife / enemy.Lifetime
		}
		x := coreX + (edgeX-coreX)*t
		y := coreY + float64((i%5-2)*config.TileSize)
		vector.DrawFilledCircle(screen, float32(x)+config.TileSize/2, float32(y)+config.TileSize/2, config.TileSize/2, enemyColor, true)
	}
}

// StatusLines 左上角状态栏的文本行
func StatusLines(w *world.World) []string {
	lines := []string{
		fmt.Sprintf("copper %d", w.Items(types.DefaultTeam, types.ItemCopper)),
		fmt.Sprintf("wave %d", w.Wave()),
		fmt.Sprintf("enemies %d", w.Enemies()),
	}
	if w.WaveTimer() {
		lines = append(lines, fmt.Sprintf("next wave %.0fs", w.WaveCountdown()))
	}
	if w.Paused() {
		lines = append(lines, "PAUSED")
	}
	return lines
}

func (s *WorldRenderSystem) drawStatus(screen *ebiten.Image) {
	if s.face == nil {
		return
	}
	for i, line := range StatusLines(s.world) {
		clr := statusColor
		if line == "PAUSED" {
			clr = pausedColor
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, 8+float64(i)*16)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, line, s.face, op)
	}
}
