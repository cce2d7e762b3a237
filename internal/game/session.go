package game

// Page identifies which screen the game is showing.
type Page int

const (
	PageMenu Page = iota
	PageGame
	PageEnd
)

// Session holds per-run game state across the three pages.
type Session struct {
	Page      Page
	Score     int
	Elapsed   float64 // seconds since the round started
	TimeLimit float64
	GameOver  bool

	Snake     *Snake
	Obstacles []Rect
	Food      Food
	TargetX   float64 // fingertip target in screen pixels
	TargetY   float64

	BestScore int // loaded from the score store, shown on the end page

	seed     uint64
	roll     uint64 // increments per restart so each round differs
	foodRand *Rand  // persists across food respawns within a round
	screenW  int
	screenH  int
}

// NewSession starts on the menu page.
func NewSession(seed uint64, screenW, screenH int, timeLimit float64) *Session {
	return &Session{
		Page:      PageMenu,
		TimeLimit: timeLimit,
		seed:      seed,
		screenW:   screenW,
		screenH:   screenH,
	}
}

// Start resets the round and switches to the game page. camBottom is the
// lower edge of the camera preview, kept clear of food spawns.
func (s *Session) Start(camBottom int, particles *ParticleSystem, bus *EventBus) {
	s.roll++
	r := NewRand(splitmix64(s.seed ^ s.roll*0x9E3779B185EBCA87))

	s.Page = PageGame
	s.Score = 0
	s.Elapsed = 0
	s.GameOver = false
	s.Snake = NewSnake(float64(s.screenW)/2, float64(s.screenH)/2)
	s.TargetX = float64(s.screenW) / 2
	s.TargetY = float64(s.screenH) / 2
	s.Obstacles = GenerateObstacles(r, s.screenW, s.screenH, ObstacleCount)
	s.Food = SpawnFood(r, s.screenW, s.screenH, camBottom, s.Obstacles, s.Snake)
	s.foodRand = r
	particles.Clear()
	if bus != nil {
		bus.Emit(Event{Type: EventGameStarted})
	}
}

// TimeLeft returns whole seconds remaining, floored at zero.
func (s *Session) TimeLeft() int {
	left := int(s.TimeLimit - s.Elapsed)
	if left < 0 {
		left = 0
	}
	return left
}

// Update advances the round clock and runs the per-frame game rules:
// snake movement, eat/wall/obstacle/self collisions. Emits events for
// eating and game over.
func (s *Session) Update(dt float64, camBottom int, bus *EventBus) {
	if s.Page != PageGame || s.GameOver {
		return
	}
	s.Elapsed += dt
	if s.TimeLeft() <= 0 {
		s.endRound(bus)
		return
	}

	s.Snake.Advance(s.TargetX, s.TargetY)

	if s.Snake.HitsFood(s.Food.X, s.Food.Y) {
		fx, fy := s.Food.X, s.Food.Y
		s.Snake.Grow()
		s.Score = s.Snake.Score
		s.Food = SpawnFood(s.foodRand, s.screenW, s.screenH, camBottom, s.Obstacles, s.Snake)
		if bus != nil {
			bus.Emit(Event{Type: EventFoodEaten, X: fx, Y: fy, Data: s.Score})
		}
	}

	if s.Snake.HitsWall(s.screenW, s.screenH) {
		s.endRound(bus)
		return
	}
	for _, o := range s.Obstacles {
		if s.Snake.HitsRect(o) {
			s.endRound(bus)
			return
		}
	}
	if s.Snake.HitsSelf() {
		s.endRound(bus)
	}
}

func (s *Session) endRound(bus *EventBus) {
	s.GameOver = true
	s.Page = PageEnd
	if bus != nil {
		bus.Emit(Event{Type: EventGameOver, Data: s.Score})
	}
}
