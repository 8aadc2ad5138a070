package singular

import "testing"

func TestEventLog_EvictsOldest(t *testing.T) {
	l := NewEventLog(3)
	l.Append("A", "1")
	l.Append("B", "2")
	l.Append("C", "3")
	l.Append("D", "4")

	entries := l.Recent(0)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Kind != "B" || entries[2].Kind != "D" {
		t.Errorf("unexpected order: %v", entries)
	}
}

func TestEventLog_RecentLimitsCount(t *testing.T) {
	l := NewEventLog(10)
	for i := 0; i < 5; i++ {
		l.Append("SET", "x")
	}
	if got := len(l.Recent(2)); got != 2 {
		t.Errorf("Recent(2) returned %d entries", got)
	}
	if got := len(l.Recent(100)); got != 5 {
		t.Errorf("Recent(100) returned %d entries, want 5", got)
	}
}
