package systems

import (
	"math"

	"github.com/automoto/devmenu/components"
	cfg "github.com/automoto/devmenu/config"
	"github.com/automoto/devmenu/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// restSpeed is the vertical speed below which a bounce on the floor stops
const restSpeed = 0.5

// UpdateBall moves the ball using the live tuning values.
func UpdateBall(e *ecs.ECS) {
	tuningEntry, ok := components.Tuning.First(e.World)
	if !ok {
		return
	}
	tuning := components.Tuning.Get(tuningEntry)

	components.Ball.Each(e.World, func(entry *donburi.Entry) {
		ball := components.Ball.Get(entry)
		obj := components.Object.Get(entry).Object

		if tuning.ResetRequested {
			tuning.ResetRequested = false
			resetBall(ball, obj, tuning.BallRadius)
		}
		if tuning.Paused {
			return
		}

		resizeBall(obj, tuning.BallRadius)

		scale := tuning.TimeScale
		ball.SpeedY += tuning.Gravity * scale
		if ball.OnGround != nil {
			ball.SpeedX = applyFriction(ball.SpeedX, tuning.Friction*scale)
		}

		moveBallHorizontal(ball, obj, clampStep(ball.SpeedX*scale), tuning.Bounce)
		moveBallVertical(ball, obj, clampStep(ball.SpeedY*scale), tuning.Bounce)
		obj.Update()
	})
}

// clampStep keeps a single move shorter than a wall is thick, so the
// destination check cannot skip over a wall
func clampStep(d float64) float64 {
	limit := cfg.World.WallThickness - 1
	return math.Max(-limit, math.Min(limit, d))
}

// applyFriction moves speed toward zero by friction without crossing it
func applyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

func moveBallHorizontal(ball *components.BallData, obj *resolv.Object, dx, bounce float64) {
	check := obj.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		obj.X += dx
		return
	}
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dx = check.ContactWithObject(solids[0]).X()
		ball.SpeedX = -ball.SpeedX * bounce
	}
	obj.X += dx
}

func moveBallVertical(ball *components.BallData, obj *resolv.Object, dy, bounce float64) {
	ball.OnGround = nil

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := obj.Check(0, checkDistance, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		obj.Y += dy
		return
	}

	contact := check.ContactWithObject(solids[0]).Y()
	if dy >= 0 {
		ball.OnGround = solids[0]
		// Contact is measured to touching, the extra pixel above only probes
		dy = math.Min(dy, contact)
	} else {
		dy = contact
	}
	obj.Y += dy

	ball.SpeedY = -ball.SpeedY * bounce
	if ball.OnGround != nil && math.Abs(ball.SpeedY) < restSpeed {
		ball.SpeedY = 0
	}
}

// resizeBall keeps the ball centered while matching radius, staying inside the arena
func resizeBall(obj *resolv.Object, radius float64) {
	size := radius * 2
	if obj.W == size {
		return
	}
	cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
	obj.W, obj.H = size, size
	obj.X, obj.Y = clampToArena(cx-radius, cy-radius, size)
}

func clampToArena(x, y, size float64) (float64, float64) {
	wall := cfg.World.WallThickness
	maxX := float64(cfg.C.Width) - wall - size
	maxY := float64(cfg.C.Height) - wall - size
	return math.Max(wall, math.Min(maxX, x)), math.Max(wall, math.Min(maxY, y))
}

func resetBall(ball *components.BallData, obj *resolv.Object, radius float64) {
	size := radius * 2
	obj.W, obj.H = size, size
	obj.X, obj.Y = clampToArena(float64(cfg.C.Width)/2-radius, float64(cfg.C.Height)/4-radius, size)
	ball.SpeedX = cfg.Tuning.KickSpeed
	ball.SpeedY = 0
	ball.OnGround = nil
	obj.Update()
}

// DrawWorld renders the arena walls and the ball.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.BackgroundColor)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H),
			cfg.World.WallColor, false)
	})

	components.Ball.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		r := obj.W / 2
		vector.DrawFilledCircle(screen,
			float32(obj.X+r), float32(obj.Y+r), float32(r),
			cfg.World.BallColor, true)
	})
}
