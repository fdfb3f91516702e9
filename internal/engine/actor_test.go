package engine

import (
	"math/rand"
	"testing"
)

const dt60 = 1.0 / 60

func dinoActor() *Actor {
	return NewActor(ActorConfig{
		X:            80,
		Width:        30,
		Height:       40,
		DuckHeight:   20,
		GroundY:      350,
		MinX:         0,
		MaxX:         800,
		Gravity:      0.8,
		JumpImpulse:  -15,
		MaxFallSpeed: 20,
	})
}

func TestActorStartsOnGround(t *testing.T) {
	a := dinoActor()
	if a.Y != 310 || a.GroundY() != 310 {
		t.Fatalf("Y = %v, GroundY = %v, want 310", a.Y, a.GroundY())
	}
	if !a.Grounded() || a.Posture != Running {
		t.Error("new actor should be grounded and running")
	}
}

func TestJumpScenario(t *testing.T) {
	a := dinoActor()
	ground := a.GroundY()

	if !a.Jump() {
		t.Fatal("Jump from the ground should succeed")
	}
	if a.VY != -15 {
		t.Errorf("VY after jump = %v, want -15", a.VY)
	}
	if !a.Airborne() || a.Posture != Jumping {
		t.Error("actor should be airborne and jumping")
	}

	apex := a.Y
	for i := 0; i < 200 && a.Airborne(); i++ {
		a.Update(dt60)
		apex = min(apex, a.Y)
	}

	if a.Y != ground {
		t.Errorf("Y after landing = %v, want exactly %v", a.Y, ground)
	}
	if a.VY != 0 {
		t.Errorf("VY after landing = %v, want 0", a.VY)
	}
	if a.Posture == Jumping {
		t.Error("landing should clear Jumping")
	}
	if apex >= ground-100 {
		t.Errorf("apex %v too low for a -15 impulse", apex)
	}
}

func TestJumpWhileAirborneIsNoop(t *testing.T) {
	a := dinoActor()
	a.Jump()
	a.Update(dt60)
	vy := a.VY
	if a.Jump() {
		t.Error("second Jump while airborne should fail")
	}
	if a.VY != vy {
		t.Errorf("VY changed from %v to %v", vy, a.VY)
	}
}

func TestGroundClampInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := dinoActor()
	ground := a.GroundY()

	for i := 0; i < 5000; i++ {
		switch rng.Intn(4) {
		case 0:
			a.Jump()
		case 1:
			a.Duck(rng.Intn(2) == 0)
		}
		dt := rng.Float64() / 20
		a.Update(dt)

		if a.Y > ground {
			t.Fatalf("step %d: Y = %v passed ground %v", i, a.Y, ground)
		}
		if a.Y == ground && a.Grounded() {
			if a.VY != 0 {
				t.Fatalf("step %d: grounded with VY = %v", i, a.VY)
			}
			if a.Posture == Jumping {
				t.Fatalf("step %d: grounded but still jumping", i)
			}
		}
	}
}

func TestDuckKeepsBottomEdge(t *testing.T) {
	a := dinoActor()
	standing := a.Box()

	a.Duck(true)
	ducked := a.Box()
	if a.Posture != Ducking {
		t.Fatal("Duck(true) on the ground should duck")
	}
	if ducked.H != 20 {
		t.Errorf("ducked height = %v, want 20", ducked.H)
	}
	if ducked.Bottom() != standing.Bottom() {
		t.Errorf("bottom moved from %v to %v", standing.Bottom(), ducked.Bottom())
	}

	a.Duck(false)
	if a.Box() != standing || a.Posture != Running {
		t.Error("releasing duck should restore the standing box")
	}
}

func TestDuckIgnoredWhileAirborne(t *testing.T) {
	a := dinoActor()
	a.Jump()
	a.Update(dt60)
	a.Duck(true)
	if a.Posture == Ducking || a.H != a.StandH {
		t.Error("Duck while airborne should be ignored")
	}
}

func TestJumpFromDuckStandsUp(t *testing.T) {
	a := dinoActor()
	a.Duck(true)
	a.Jump()
	if a.H != a.StandH {
		t.Errorf("H = %v, want standing height", a.H)
	}
}

func TestMoveClampsHorizontally(t *testing.T) {
	a := dinoActor()
	a.Move(-1000)
	if a.X != 0 {
		t.Errorf("X = %v, want 0", a.X)
	}
	a.Move(5000)
	if a.X+a.W != 800 {
		t.Errorf("right edge = %v, want 800", a.X+a.W)
	}
}

func ninjaActor() *Actor {
	return NewActor(ActorConfig{
		X:            150,
		Width:        40,
		Height:       40,
		GroundY:      750,
		CeilingY:     50,
		MaxX:         1200,
		Gravity:      0.5,
		JumpImpulse:  -12,
		MaxFallSpeed: 20,
		FlipCooldown: 10,
	})
}

func TestFlipLandsOnCeiling(t *testing.T) {
	a := ninjaActor()
	if !a.Flip() {
		t.Fatal("first Flip should succeed")
	}
	if a.Flip() {
		t.Error("Flip during cooldown should fail")
	}

	for i := 0; i < 300 && a.Airborne(); i++ {
		a.Update(dt60)
	}
	if a.Y != a.CeilingY() || a.VY != 0 {
		t.Errorf("Y = %v VY = %v, want resting on ceiling %v", a.Y, a.VY, a.CeilingY())
	}
	if a.OutOfBounds(0) {
		t.Error("resting on the ceiling is in bounds")
	}
	if !a.FlipReady() {
		t.Error("cooldown should have elapsed")
	}
}

func TestFlipHalvesVelocity(t *testing.T) {
	a := ninjaActor()
	a.Jump()
	a.Update(dt60)
	vy := a.VY
	a.Flip()
	if a.VY != vy*0.5 {
		t.Errorf("VY = %v, want %v", a.VY, vy*0.5)
	}
}

func TestFlippedJumpPushesDown(t *testing.T) {
	a := ninjaActor()
	a.Flip()
	for i := 0; i < 300 && a.Airborne(); i++ {
		a.Update(dt60)
	}
	if !a.Jump() {
		t.Fatal("jump from the ceiling should succeed")
	}
	if a.VY <= 0 {
		t.Errorf("VY = %v, want positive (away from ceiling)", a.VY)
	}
}

func TestOutOfBounds(t *testing.T) {
	a := ninjaActor()
	a.Y = a.GroundY() + 150
	if !a.OutOfBounds(100) {
		t.Error("Y beyond ground+slack should be out of bounds")
	}
	a.Y = a.CeilingY() - 50
	if a.OutOfBounds(100) {
		t.Error("Y within slack should be in bounds")
	}
}

func TestFreeFlyingActor(t *testing.T) {
	a := NewActor(ActorConfig{X: 60, Width: 40, Height: 30, GroundY: 600, MaxX: 800})
	a.MoveY(-1000)
	if a.Y != 0 {
		t.Errorf("Y = %v, want 0", a.Y)
	}
	a.MoveY(5000)
	if a.Y != 570 {
		t.Errorf("Y = %v, want 570", a.Y)
	}
	y := a.Y
	a.Update(dt60)
	if a.Y != y {
		t.Error("free-flying actor should not fall")
	}
	if a.Jump() {
		t.Error("free-flying actor cannot jump")
	}
}
