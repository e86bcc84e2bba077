package gamemath

import (
	"math"
	"testing"
)

func TestIntegrateSingleStep(t *testing.T) {
	pos, vel := Integrate(Vector{X: 0, Y: 0}, Vector{X: 10, Y: 0}, Vector{X: 0, Y: 100}, 0.5, 0.9)

	// v = (10, 50); p = (5, 25); v -= v*0.45
	if pos != (Vector{X: 5, Y: 25}) {
		t.Fatalf("position = %v, want (5,25)", pos)
	}
	want := Vector{X: 10 - 10*0.45, Y: 50 - 50*0.45}
	if math.Abs(vel.X-want.X) > 1e-12 || math.Abs(vel.Y-want.Y) > 1e-12 {
		t.Fatalf("velocity = %v, want %v", vel, want)
	}
}

func TestIntegrateZeroTimeSpeedIsFrozen(t *testing.T) {
	p0, v0 := Vector{X: 3, Y: 4}, Vector{X: -2, Y: 8}
	pos, vel := Integrate(p0, v0, Vector{X: 0, Y: 500}, 0, 0.9)
	if pos != p0 || vel != v0 {
		t.Fatalf("expected no motion at timeSpeed 0, got pos=%v vel=%v", pos, vel)
	}
}

func TestIntegrateDeterministic(t *testing.T) {
	steps := []float64{1.0 / 60, 1.0 / 60, 0.0003, 1.0 / 30, 0.5, 1.0 / 60}
	run := func() (Vector, Vector) {
		pos, vel := Vector{X: 1, Y: 2}, Vector{X: 30, Y: -300}
		for i, dt := range steps {
			acc := Vector{X: 0, Y: 981}
			if i%2 == 0 {
				acc = Vector{X: 5, Y: 981}
			}
			pos, vel = Integrate(pos, vel, acc, dt, 0.9)
		}
		return pos, vel
	}

	p1, v1 := run()
	p2, v2 := run()
	if p1 != p2 || v1 != v2 {
		t.Fatalf("trajectory not reproducible: %v/%v vs %v/%v", p1, v1, p2, v2)
	}
}

func TestDecayTo(t *testing.T) {
	v := 0.0
	for i := 0; i < 50; i++ {
		v = DecayTo(v, 1, 0.1)
	}
	if v >= 1 || v < 0.99 {
		t.Fatalf("expected v to approach but not reach 1, got %f", v)
	}
	if got := DecayTo(2, 4, 0.5); got != 3 {
		t.Fatalf("DecayTo(2,4,0.5) = %f, want 3", got)
	}
}

func TestLerp2D(t *testing.T) {
	got := Lerp2D(Vector{X: 0, Y: 10}, Vector{X: 10, Y: 20}, 0.25)
	if got != (Vector{X: 2.5, Y: 12.5}) {
		t.Fatalf("Lerp2D = %v", got)
	}
}

func TestVectorHeadingAndLength(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	if v.Magnitude() != 5 || LengthSquared(v) != 25 {
		t.Fatalf("unexpected length for %v", v)
	}
	if d := DistanceSquared(Vector{X: 1, Y: 1}, Vector{X: 4, Y: 5}); d != 25 {
		t.Fatalf("distance squared = %f, want 25", d)
	}
	if a := Heading(Vector{X: 0, Y: 1}); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Fatalf("angle = %f, want pi/2", a)
	}
}
