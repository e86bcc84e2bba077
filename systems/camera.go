package systems

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/jjanrb/chrono-fling/components"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera eases toward the current target and recomputes the bounds.
func UpdateCamera(w donburi.World) {
	camera := cameraData(w)
	EaseTo(camera, camera.TargetPosition, camera.TargetZoom, camera.Factor)
	ComputeBounds(camera)
}

// SetCameraTarget records where UpdateCamera should ease toward.
func SetCameraTarget(camera *components.CameraData, target gamemath.Vector, zoom, factor float64) {
	camera.TargetPosition = target
	camera.TargetZoom = zoom
	camera.Factor = factor
}

// EaseTo moves position and zoom a factor fraction of the way to the target.
func EaseTo(camera *components.CameraData, target gamemath.Vector, zoom, factor float64) {
	camera.Position = gamemath.DecayTo2D(camera.Position, target, factor)
	camera.Zoom = gamemath.DecayTo(camera.Zoom, zoom, factor)
}

// ComputeBounds derives the visible world rect from position and zoom and
// shifts the camera horizontally to keep that rect inside HorizontalBounds.
// The left edge wins when the view is wider than the bounds.
func ComputeBounds(camera *components.CameraData) {
	camera.Bounds = viewBounds(camera)

	h := camera.HorizontalBounds
	if camera.Bounds.X.Lo < h.Lo {
		camera.Position.X += h.Lo - camera.Bounds.X.Lo
		camera.Bounds = viewBounds(camera)
	} else if camera.Bounds.X.Hi > h.Hi {
		camera.Position.X -= camera.Bounds.X.Hi - h.Hi
		camera.Bounds = viewBounds(camera)
	}

	camera.NextBounds = gamemath.ShiftY(camera.Bounds, -camera.Bounds.Y.Length())
}

func viewBounds(camera *components.CameraData) r2.Rect {
	return gamemath.RectFromCorners(
		CanvasToWorld(camera, gamemath.Vector{}),
		CanvasToWorld(camera, camera.Viewport),
	)
}

// CanvasToWorld maps a canvas pixel to world space.
func CanvasToWorld(camera *components.CameraData, p gamemath.Vector) gamemath.Vector {
	return p.Sub(camera.Viewport.MulScalar(0.5)).MulScalar(1 / camera.Zoom).Add(camera.Position)
}

// WorldToCanvas maps a world point to a canvas pixel.
func WorldToCanvas(camera *components.CameraData, p gamemath.Vector) gamemath.Vector {
	return p.Sub(camera.Position).MulScalar(camera.Zoom).Add(camera.Viewport.MulScalar(0.5))
}

// NewCameraData returns a camera centered on position with default zoom and
// bounds already computed.
func NewCameraData(position gamemath.Vector) components.CameraData {
	camera := components.CameraData{
		Position: position,
		Zoom:     cfg.Camera.FollowZoom,
		Viewport: gamemath.Vector{X: float64(cfg.C.Width), Y: float64(cfg.C.Height)},
		HorizontalBounds: r1.Interval{
			Lo: cfg.Camera.HorizontalMin,
			Hi: cfg.Camera.HorizontalMax,
		},
	}
	SetCameraTarget(&camera, position, cfg.Camera.FollowZoom, cfg.Camera.FollowFactor)
	ComputeBounds(&camera)
	return camera
}

func cameraData(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Camera))
		components.Camera.SetValue(entry, NewCameraData(gamemath.Vector{}))
	}
	return components.Camera.Get(entry)
}
