package game

import "testing"

func TestSpawnFoodConstraints(t *testing.T) {
	const screenW, screenH = 1280, 800
	const camBottom = 150
	r := NewRand(99)
	obstacles := GenerateObstacles(r, screenW, screenH, ObstacleCount)
	snake := NewSnake(screenW/2, screenH/2)

	for i := 0; i < 50; i++ {
		f := SpawnFood(r, screenW, screenH, camBottom, obstacles, snake)
		if f.X < 60 || f.X > screenW-60 {
			t.Fatalf("try %d: x = %v outside horizontal band", i, f.X)
		}
		if f.Y < camBottom+FoodGapBelow {
			t.Fatalf("try %d: y = %v above the camera band", i, f.Y)
		}
		for _, o := range obstacles {
			if o.Contains(f.X, f.Y) {
				t.Fatalf("try %d: food inside obstacle %+v", i, o)
			}
		}
		hx, hy := snake.Head()
		if dist(f.X, f.Y, hx, hy) < 120 {
			t.Fatalf("try %d: food %v px from head", i, dist(f.X, f.Y, hx, hy))
		}
	}
}

func TestSpawnFoodRespectsTopPad(t *testing.T) {
	// With a shallow preview band the obstacle top pad becomes the floor.
	r := NewRand(3)
	f := SpawnFood(r, 1280, 800, 10, nil, NewSnake(640, 700))
	if f.Y < ObstacleTopPad {
		t.Fatalf("y = %v, want >= %d", f.Y, ObstacleTopPad)
	}
}

func TestSpawnFoodFallback(t *testing.T) {
	// One obstacle covering the whole playfield forces the fallback spot.
	wall := []Rect{{X: -10000, Y: -10000, W: 20000, H: 20000}}
	r := NewRand(5)
	f := SpawnFood(r, 1280, 800, 150, wall, NewSnake(640, 400))
	if f.X < 1280/2-120 || f.X > 1280/2+120 {
		t.Fatalf("fallback x = %v, want near centre", f.X)
	}
	if f.Y < 170 {
		t.Fatalf("fallback y = %v, want below camera band", f.Y)
	}
}
