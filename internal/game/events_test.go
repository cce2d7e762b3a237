package game

import "testing"

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var got []Event
	bus.Subscribe(EventFoodEaten, func(e Event) { got = append(got, e) })
	bus.Subscribe(EventFoodEaten, func(e Event) { got = append(got, e) })
	bus.Subscribe(EventGameOver, func(e Event) { t.Fatal("wrong type dispatched") })

	bus.Emit(Event{Type: EventFoodEaten, X: 1, Y: 2, Data: 3})
	if len(got) != 2 {
		t.Fatalf("handlers fired %d times, want 2", len(got))
	}
	if got[0].X != 1 || got[0].Y != 2 || got[0].Data != 3 {
		t.Fatalf("payload = %+v", got[0])
	}
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := NewEventBus()
	bus.Emit(Event{Type: EventGameStarted}) // must not panic
}
