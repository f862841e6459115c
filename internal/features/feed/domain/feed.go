package domain

import (
	"sync"
	"time"
)

// EntryType classifies a feed entry.
type EntryType string

const (
	EntryInfo    EntryType = "info"
	EntryWarning EntryType = "warning"
	EntryError   EntryType = "error"
)

// DefaultCapacity is how many entries the live feed retains.
const DefaultCapacity = 10

// FeedEntry is a single line in the live risk feed.
type FeedEntry struct {
	// Type is the entry severity.
	Type EntryType `json:"type"`
	// Message is the headline text.
	Message string `json:"message"`
	// Details carries optional supporting text.
	Details string `json:"details,omitempty"`
	// Timestamp is when the entry was produced.
	Timestamp time.Time `json:"timestamp"`
}

// Log is a bounded, most-recent-first feed buffer. Entries beyond the
// capacity are dropped from the tail. Safe for concurrent use.
type Log struct {
	mu       sync.Mutex
	entries  []FeedEntry
	capacity int
}

// NewLog creates a Log with the given capacity.
// Non-positive capacities fall back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Append prepends the entry, discarding the oldest beyond capacity.
func (l *Log) Append(entry FeedEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]FeedEntry{entry}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// Entries returns a copy of the buffer, newest first.
func (l *Log) Entries() []FeedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]FeedEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
