package game

import "testing"

const (
	testW = 1280
	testH = 800
)

func newTestSession() (*Session, *ParticleSystem, *EventBus) {
	s := NewSession(1234, testW, testH, 60)
	ps := NewParticleSystem(MaxParticles, 1)
	bus := NewEventBus()
	return s, ps, bus
}

func TestSessionStartsOnMenu(t *testing.T) {
	s, _, _ := newTestSession()
	if s.Page != PageMenu {
		t.Fatalf("page = %v, want menu", s.Page)
	}
}

func TestStartResetsRound(t *testing.T) {
	s, ps, bus := newTestSession()
	started := 0
	bus.Subscribe(EventGameStarted, func(Event) { started++ })

	s.Start(150, ps, bus)
	if s.Page != PageGame || s.Score != 0 || s.GameOver {
		t.Fatalf("bad state after start: %+v", s)
	}
	if s.Snake == nil || len(s.Snake.Segments) != InitialLen {
		t.Fatal("snake not reset")
	}
	if len(s.Obstacles) == 0 {
		t.Fatal("no obstacles generated")
	}
	if started != 1 {
		t.Fatalf("start event fired %d times", started)
	}

	// Rounds differ between restarts.
	first := s.Obstacles[0]
	s.Start(150, ps, bus)
	if s.Obstacles[0] == first {
		t.Fatal("restart produced identical obstacles")
	}
}

func TestEatGrowsAndRespawns(t *testing.T) {
	s, ps, bus := newTestSession()
	var eaten []Event
	bus.Subscribe(EventFoodEaten, func(e Event) { eaten = append(eaten, e) })

	s.Start(150, ps, bus)
	// Park the food on the head and keep the target there.
	hx, hy := s.Snake.Head()
	s.Food = Food{X: hx, Y: hy}
	s.TargetX, s.TargetY = hx, hy
	oldFood := s.Food

	s.Update(1.0/TargetFPS, 150, bus)
	if s.Score != 1 {
		t.Fatalf("score = %d, want 1", s.Score)
	}
	if len(eaten) != 1 {
		t.Fatalf("eat events = %d, want 1", len(eaten))
	}
	if eaten[0].X != oldFood.X || eaten[0].Y != oldFood.Y {
		t.Fatal("eat event not at the food position")
	}
	if s.Food == oldFood {
		t.Fatal("food did not respawn")
	}
}

func TestTimerEndsRound(t *testing.T) {
	s, ps, bus := newTestSession()
	overs := 0
	bus.Subscribe(EventGameOver, func(Event) { overs++ })

	s.Start(150, ps, bus)
	s.Elapsed = s.TimeLimit - 0.01
	s.Update(0.02, 150, bus)
	if s.Page != PageEnd || !s.GameOver {
		t.Fatalf("round did not end: page=%v over=%v", s.Page, s.GameOver)
	}
	if overs != 1 {
		t.Fatalf("game over events = %d, want 1", overs)
	}
	if left := s.TimeLeft(); left != 0 {
		t.Fatalf("TimeLeft = %d, want 0", left)
	}
}

func TestWallEndsRound(t *testing.T) {
	s, ps, bus := newTestSession()
	s.Start(150, ps, bus)
	// Drag the head into the left wall.
	s.Snake.Segments[0] = PathPoint{X: WallMargin + 1, Y: testH / 2}
	s.TargetX, s.TargetY = -100, testH/2
	for i := 0; i < 5 && !s.GameOver; i++ {
		s.Update(1.0/TargetFPS, 150, bus)
	}
	if !s.GameOver || s.Page != PageEnd {
		t.Fatal("wall hit did not end the round")
	}
}

func TestObstacleEndsRound(t *testing.T) {
	s, ps, bus := newTestSession()
	s.Start(150, ps, bus)
	o := s.Obstacles[0]
	cx := o.X + o.W/2
	cy := o.Y + o.H/2
	s.Snake.Segments[0] = PathPoint{X: cx, Y: cy}
	s.TargetX, s.TargetY = cx, cy
	s.Update(1.0/TargetFPS, 150, bus)
	if !s.GameOver {
		t.Fatal("obstacle hit did not end the round")
	}
}

func TestUpdateIgnoredOutsideGame(t *testing.T) {
	s, _, bus := newTestSession()
	s.Update(1, 150, bus) // menu page, no snake: must not panic
	if s.Elapsed != 0 {
		t.Fatal("clock ran on the menu page")
	}
}
