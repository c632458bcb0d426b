package utils

import "github.com/decker502/factorytutor/pkg/config"

// MapOrigin 返回地图左上角的屏幕坐标
// 地图在屏幕中水平、垂直居中
//
// 参数:
//   - cols, rows: 地图尺寸（格）
func MapOrigin(cols, rows int) (x, y float64) {
	x = (float64(config.GameWindowWidth) - float64(cols*config.TileSize)) / 2
	y = (float64(config.GameWindowHeight) - float64(rows*config.TileSize)) / 2
	return x, y
}

// ScreenToTile 将屏幕坐标转换为地图格子坐标
// 参数:
//   - screenX, screenY: 屏幕坐标
//   - cols, rows: 地图尺寸（格）
//
// 返回:
//   - col, row: 格子坐标
//   - isValid: 是否落在地图内
func ScreenToTile(screenX, screenY, cols, rows int) (col, row int, isValid bool) {
	ox, oy := MapOrigin(cols, rows)
	x := float64(screenX) - ox
	y := float64(screenY) - oy
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col = int(x) / config.TileSize
	row = int(y) / config.TileSize
	if col >= cols || row >= rows {
		return 0, 0, false
	}
	return col, row, true
}

// TileToScreen 返回格子左上角的屏幕坐标
func TileToScreen(col, row, cols, rows int) (x, y float64) {
	ox, oy := MapOrigin(cols, rows)
	return ox + float64(col*config.TileSize), oy + float64(row*config.TileSize)
}
