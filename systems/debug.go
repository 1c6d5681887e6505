package systems

import (
	"image/color"

	"github.com/automoto/devmenu/components"
	"github.com/automoto/devmenu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when hitboxes are enabled in the dev menu.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	tuningEntry, ok := components.Tuning.First(ecs.World)
	if !ok || !components.Tuning.Get(tuningEntry).ShowHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSolid) {
			c = color.RGBA{255, 0, 255, 255} // Magenta
		} else if obj.HasTags(tags.ResolvBall) {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		vector.DrawFilledRect(screen, x, y, w, 1, c, false)     // Top
		vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.DrawFilledRect(screen, x, y, 1, h, c, false)     // Left
		vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}
