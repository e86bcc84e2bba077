package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
	"github.com/jjanrb/chrono-fling/world"
)

const ellipseSegments = 16

// DrawWorld renders the session as seen through its camera
func DrawWorld(screen *ebiten.Image, m *world.ObjectManager) {
	screen.Fill(cfg.Colors.Background)

	camera := m.Camera()
	if camera == nil {
		return
	}
	m.Draw(func(s systems.Sprite) {
		drawSprite(screen, camera, s)
	})
	drawHUD(screen, m)
}

func drawSprite(screen *ebiten.Image, camera *components.CameraData, s systems.Sprite) {
	switch s.Kind {
	case systems.SpriteWave:
		drawWave(screen, camera, s)
	case systems.SpriteOrb:
		p := systems.WorldToCanvas(camera, s.Position)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(s.Radius*camera.Zoom), cfg.Colors.Orb, true)
	case systems.SpriteSpike:
		drawSpike(screen, camera, s)
	case systems.SpritePlayer:
		drawEllipse(screen, camera, s, cfg.Colors.Player)
	case systems.SpriteIndicator:
		c := cfg.Colors.Indicator
		if s.Invalid {
			c = cfg.Colors.Invalid
		}
		p := systems.WorldToCanvas(camera, s.Position)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(s.Radius*camera.Zoom), withAlpha(c, s.Alpha), true)
		if s.Label != "" {
			DrawLabel(screen, s.Label, p.X, p.Y, cfg.Colors.HUD)
		}
	}
}

// drawWave fills the visible part of the hazard rect.
func drawWave(screen *ebiten.Image, camera *components.CameraData, s systems.Sprite) {
	top := systems.WorldToCanvas(camera, gamemath.Vector{Y: s.Rect.Y.Lo}).Y
	height := camera.Viewport.Y
	if top >= height {
		return
	}
	top = math.Max(top, 0)
	vector.FillRect(screen, 0, float32(top), float32(camera.Viewport.X), float32(height-top), cfg.Colors.Wave, false)
}

// drawSpike outlines a triangle pointing along the spike's rotation.
func drawSpike(screen *ebiten.Image, camera *components.CameraData, s systems.Sprite) {
	var pts [3]gamemath.Vector
	for i := range pts {
		a := s.Rotation + float64(i)*2*math.Pi/3
		corner := s.Position.Add(gamemath.Vector{X: math.Cos(a), Y: math.Sin(a)}.MulScalar(s.Radius))
		pts[i] = systems.WorldToCanvas(camera, corner)
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, cfg.Colors.Spike, true)
	}
}

// drawEllipse outlines the player with its squash/stretch applied in the
// sprite's rotated frame.
func drawEllipse(screen *ebiten.Image, camera *components.CameraData, s systems.Sprite, c color.RGBA) {
	sin, cos := math.Sincos(s.Rotation)
	point := func(i int) gamemath.Vector {
		t := float64(i) * 2 * math.Pi / ellipseSegments
		x := math.Cos(t) * s.Radius * s.ScaleX
		y := math.Sin(t) * s.Radius * s.ScaleY
		local := gamemath.Vector{X: x*cos - y*sin, Y: x*sin + y*cos}
		return systems.WorldToCanvas(camera, s.Position.Add(local))
	}

	prev := point(0)
	for i := 1; i <= ellipseSegments; i++ {
		next := point(i)
		vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(next.X), float32(next.Y), 2, c, true)
		prev = next
	}
}

func drawHUD(screen *ebiten.Image, m *world.ObjectManager) {
	player, body := m.Player()
	if player == nil {
		return
	}

	if player.State == cfg.StateTutorial {
		DrawCenteredText(screen, "Drag to aim, release to fling", cfg.Menu.HintY, cfg.Colors.HUD)
		DrawCenteredText(screen, "Tap to begin", cfg.Menu.HintY+20, cfg.Colors.HUD)
	}
	if player.HasDied {
		DrawCenteredText(screen, fmt.Sprintf("Reached %dm", player.DeathHeight), cfg.Menu.HintY, cfg.Colors.HUD)
	}

	height := systems.HeightFromY(body.Position.Y)
	DrawText(screen, fmt.Sprintf("%dm  best %dm", height, m.BestHeight()), 8, 8, cfg.Colors.HUD)
}

func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
