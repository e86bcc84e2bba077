package systems_test

import (
	"testing"

	"github.com/golang/geo/r1"
	cfg "github.com/jjanrb/chrono-fling/config"
	"github.com/jjanrb/chrono-fling/gamemath"
	"github.com/jjanrb/chrono-fling/systems"
)

func TestCameraClamp(t *testing.T) {
	for _, x := range []float64{-5000, -300, -61, 0, 61, 300, 5000} {
		for _, zoom := range []float64{cfg.Camera.FollowZoom, cfg.Camera.AimZoom} {
			camera := systems.NewCameraData(gamemath.Vector{})
			camera.Position.X = x
			camera.Zoom = zoom
			systems.ComputeBounds(&camera)

			h := camera.HorizontalBounds
			if camera.Bounds.X.Lo < h.Lo-epsilon || camera.Bounds.X.Hi > h.Hi+epsilon {
				t.Fatalf("x=%f zoom=%f: bounds %v escape %v", x, zoom, camera.Bounds.X, h)
			}
		}
	}
}

func TestCameraClampLeftPriority(t *testing.T) {
	camera := systems.NewCameraData(gamemath.Vector{})
	camera.HorizontalBounds = r1.Interval{Lo: -100, Hi: 100}
	camera.Position.X = 40
	systems.ComputeBounds(&camera)

	if !approx(camera.Bounds.X.Lo, -100) {
		t.Fatalf("left edge = %f, want -100", camera.Bounds.X.Lo)
	}
	if camera.Bounds.X.Hi <= 100 {
		t.Fatalf("view wider than the bounds must overflow on the right")
	}
}

func TestNextBounds(t *testing.T) {
	camera := systems.NewCameraData(gamemath.Vector{X: 10, Y: -700})
	b, n := camera.Bounds, camera.NextBounds

	if !approx(n.Y.Hi, b.Y.Lo) || !approx(n.Y.Length(), b.Y.Length()) {
		t.Fatalf("next bounds %v must sit one screen above %v", n, b)
	}
	if n.X != b.X {
		t.Fatalf("next bounds must keep the horizontal extent")
	}
}

func TestCanvasWorldRoundTrip(t *testing.T) {
	camera := systems.NewCameraData(gamemath.Vector{X: 30, Y: -250})
	camera.Zoom = 0.85
	systems.ComputeBounds(&camera)

	center := systems.CanvasToWorld(&camera, camera.Viewport.MulScalar(0.5))
	if !approxVec(center, camera.Position) {
		t.Fatalf("viewport center maps to %v, want %v", center, camera.Position)
	}

	for _, p := range []gamemath.Vector{{}, {X: 12, Y: 600}, {X: 360, Y: 640}} {
		back := systems.WorldToCanvas(&camera, systems.CanvasToWorld(&camera, p))
		if !approxVec(back, p) {
			t.Fatalf("round trip %v -> %v", p, back)
		}
	}

	corner := systems.CanvasToWorld(&camera, gamemath.Vector{})
	if !approx(corner.X, camera.Bounds.X.Lo) || !approx(corner.Y, camera.Bounds.Y.Lo) {
		t.Fatalf("canvas origin %v must be the top-left of %v", corner, camera.Bounds)
	}
}

func TestEaseTo(t *testing.T) {
	camera := systems.NewCameraData(gamemath.Vector{})
	systems.EaseTo(&camera, gamemath.Vector{X: 100, Y: -200}, 0.5, 0.1)

	if !approxVec(camera.Position, gamemath.Vector{X: 10, Y: -20}) {
		t.Fatalf("position = %v", camera.Position)
	}
	if !approx(camera.Zoom, 0.95) {
		t.Fatalf("zoom = %f", camera.Zoom)
	}
}

func TestUpdateCameraFollowsTarget(t *testing.T) {
	h := newHarness(t, 0)
	cam := h.camera()
	systems.SetCameraTarget(cam, gamemath.Vector{Y: -1000}, 1, 0.5)

	systems.UpdateCamera(h.w)
	if !approx(cam.Position.Y, -500) {
		t.Fatalf("camera y = %f, want -500", cam.Position.Y)
	}
	if !approx(cam.Bounds.Y.Lo, -500-float64(cfg.C.Height)/2) {
		t.Fatalf("bounds were not recomputed: %v", cam.Bounds)
	}
}
