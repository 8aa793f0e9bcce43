package event

import (
	"strings"
)

var typeToName = [eventTypeCount]string{
	EventNone:        "None",
	EventCollected:   "Collected",
	EventContact:     "Contact",
	EventJump:        "Jump",
	EventLanded:      "Landed",
	EventBump:        "Bump",
	EventAction:      "Action",
	EventLevelLoaded: "LevelLoaded",
}

// String returns the registered name of the event type
func (et EventType) String() string {
	if et < 0 || et >= eventTypeCount {
		return "Unknown"
	}
	return typeToName[et]
}

// GetEventType resolves a case-insensitive event name, used by config mappings
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeToName {
		if EventType(i) != EventNone && strings.EqualFold(n, name) {
			return EventType(i), true
		}
	}
	return EventNone, false
}

// Filter returns events of the given type, preserving order
func Filter(events []GameEvent, et EventType) []GameEvent {
	var out []GameEvent
	for _, ev := range events {
		if ev.Type == et {
			out = append(out, ev)
		}
	}
	return out
}
