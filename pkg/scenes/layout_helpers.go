package scenes

import (
	"image"

	"github.com/decker502/factorytutor/pkg/config"
)

// tutorialPanelBounds 教学文本面板的屏幕区域
func tutorialPanelBounds() image.Rectangle {
	x := (config.GameWindowWidth - config.TutorialPanelWidth) / 2
	return image.Rect(x, config.TutorialPanelY, x+config.TutorialPanelWidth, config.TutorialPanelY+config.TutorialPanelHeight)
}

func inTutorialPanel(x, y int) bool {
	return image.Pt(x, y).In(tutorialPanelBounds())
}
