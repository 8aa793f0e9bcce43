package event

import "testing"

func TestEventNamesRoundTrip(t *testing.T) {
	for et := EventCollected; et < eventTypeCount; et++ {
		name := et.String()
		got, ok := GetEventType(name)
		if !ok || got != et {
			t.Errorf("GetEventType(%q) = %v,%v, want %v", name, got, ok, et)
		}
	}

	if got, ok := GetEventType("collected"); !ok || got != EventCollected {
		t.Errorf("Expected case-insensitive lookup, got %v,%v", got, ok)
	}
	if _, ok := GetEventType("None"); ok {
		t.Error("Expected None to be unresolvable")
	}
	if EventType(999).String() != "Unknown" {
		t.Error("Expected out-of-range type to be Unknown")
	}
}

func TestFilter(t *testing.T) {
	events := []GameEvent{
		{Type: EventJump, Frame: 1},
		{Type: EventCollected, Frame: 2},
		{Type: EventCollected, Frame: 3},
	}
	got := Filter(events, EventCollected)
	if len(got) != 2 || got[0].Frame != 2 || got[1].Frame != 3 {
		t.Errorf("Expected two collected events in order, got %+v", got)
	}
	if Filter(events, EventBump) != nil {
		t.Error("Expected nil for absent type")
	}
}
