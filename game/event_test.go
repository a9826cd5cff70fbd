package game

import "testing"

func TestEventTypeString(t *testing.T) {
	eventTypes := []EventType{
		TilePlayed,
		PlayerSkipped,
		RoundStarted,
		RoundEnded,
		GameOver,
	}
	seen := make(map[string]struct{}, len(eventTypes))
	for i, et := range eventTypes {
		s := et.String()
		if s == "?" {
			t.Errorf("Test %v: wanted display value for event type %d", i, et)
		}
		if _, ok := seen[s]; ok {
			t.Errorf("Test %v: event type string %v repeated", i, s)
		}
		seen[s] = struct{}{}
	}
	if want, got := "RoundEnded", RoundEnded.String(); want != got {
		t.Errorf("wanted %v, got %v", want, got)
	}
	if want, got := "?", EventType(0).String(); want != got {
		t.Errorf("wanted %v for unknown event type, got %v", want, got)
	}
}
