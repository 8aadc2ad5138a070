package singular

import (
	"fmt"
	"sync"
	"time"
)

// DefaultLogCapacity bounds the in-memory command log.
const DefaultLogCapacity = 200

// LogEntry is one recorded command.
type LogEntry struct {
	Time   time.Time `json:"time"`
	Kind   string    `json:"kind"`
	Detail string    `json:"detail"`
}

func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] %s: %s", e.Time.Format(time.DateTime), e.Kind, e.Detail)
}

// EventLog is an append-only bounded log of dispatched commands. Once the
// capacity is exceeded the oldest entries are evicted. Purely an
// observability aid, never load-bearing.
type EventLog struct {
	mu      sync.Mutex
	entries []LogEntry
	cap     int
}

// NewEventLog creates an EventLog holding at most capacity entries
// (DefaultLogCapacity when capacity <= 0).
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultLogCapacity
	}
	return &EventLog{cap: capacity}
}

// Append records one entry, evicting the oldest when full.
func (l *EventLog) Append(kind, detail string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, LogEntry{Time: time.Now(), Kind: kind, Detail: detail})
	if n := len(l.entries) - l.cap; n > 0 {
		l.entries = append(l.entries[:0], l.entries[n:]...)
	}
}

// Recent returns up to n entries, oldest first.
func (l *EventLog) Recent(n int) []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]LogEntry, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}
