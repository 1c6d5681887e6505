package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/fonts"
	"github.com/automoto/devmenu/systems"
	"github.com/automoto/devmenu/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DemoScene is a bouncing ball arena with the dev menu on top
type DemoScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

// NewDemoScene creates a new demo scene
func NewDemoScene() *DemoScene {
	return &DemoScene{}
}

func (ds *DemoScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DemoScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

func (ds *DemoScene) configure() {
	if err := loadFonts(); err != nil {
		panic("failed to load fonts: " + err.Error())
	}

	m, err := systems.NewTuningMenu()
	if err != nil {
		panic("failed to build dev menu: " + err.Error())
	}

	ds.ecs = ecs.NewECS(donburi.NewWorld())
	Populate(ds.ecs, m, systems.DefaultTuning())

	ds.ecs.AddSystem(systems.UpdateInput)
	ds.ecs.AddSystem(systems.UpdateDevMenu)
	ds.ecs.AddSystem(systems.UpdateBall)

	// Overlay draws on top of the world
	ds.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ds.ecs.AddRenderer(cfg.Default, systems.DrawDevMenu)
}

// Populate creates the arena, the ball and the dev menu entities
func Populate(e *ecs.ECS, m *systems.TuningMenu, tuning components.TuningData) {
	w, h := cfg.C.Width, cfg.C.Height
	factory.CreateSpace(e, w, h, cfg.World.CellSize, cfg.World.CellSize)
	factory.CreateBounds(e, float64(w), float64(h), cfg.World.WallThickness)
	factory.CreateBall(e, float64(w)/2, float64(h)/4, tuning.BallRadius, cfg.Tuning.KickSpeed)
	factory.CreateDevMenu(e, m, tuning, cfg.Debug.StartOpen)
}

func loadFonts() error {
	if err := fonts.LoadDefault(fonts.Overlay, cfg.Overlay.FontSize); err != nil {
		return fmt.Errorf("overlay font: %w", err)
	}
	return fonts.LoadDefault(fonts.OverlaySmall, cfg.Overlay.FontSize-2)
}
