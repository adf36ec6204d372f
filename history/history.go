// Package history provides a thread-safe, caller-owned log of encode and
// decode attempts.
//
// Entries describe what happened (operation, algorithm, sizes, outcome) and
// never carry the message text or the password.  Nothing in this module
// keeps a process-wide log; create one with [New] and pass it where needed.
package history

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/hasbyte1/go-stego/engine"
)

// Operation names the kind of attempt recorded in an [Entry].
type Operation string

const (
	OperationEncode Operation = "encode"
	OperationDecode Operation = "decode"
)

var (
	// ErrEntryNotFound is returned by [Log.Get] when no entry has the ID.
	ErrEntryNotFound = errors.New("history: entry not found")

	// ErrDuplicateID is returned by [Log.Add] when an entry with the same ID
	// is already recorded.
	ErrDuplicateID = errors.New("history: duplicate entry ID")
)

// Entry is one recorded attempt.
type Entry struct {
	// ID is a UUID v4, assigned by [Log.Add] when empty.
	ID string

	Operation Operation
	Algorithm engine.Algorithm

	// MessageLength is the plaintext length in bytes, or 0 when unknown
	// (for example, a failed decode).
	MessageLength int

	Width  int
	Height int

	Success bool

	// Reason is the user-facing failure text; empty on success.
	Reason string

	// At is set to the current time by [Log.Add] when zero.
	At time.Time
}

// Option configures a [Log].
type Option func(*Log)

// WithLimit caps the number of retained entries.  When the cap is reached
// the oldest entry is dropped.  n <= 0 means unlimited, which is the default.
func WithLimit(n int) Option {
	return func(l *Log) { l.limit = n }
}

// WithClock overrides the time source used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) {
		if now != nil {
			l.now = now
		}
	}
}

// Log is a thread-safe in-memory history.
type Log struct {
	mu      sync.RWMutex
	entries []Entry        // insertion order
	byID    map[string]int // ID -> index into entries
	limit   int
	now     func() time.Time
}

// New creates an empty [Log].
func New(opts ...Option) *Log {
	l := &Log{
		byID: make(map[string]int),
		now:  time.Now,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Add records e and returns the stored copy with ID and At filled in.
func (l *Log) Add(_ context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		id, err := generateUUID()
		if err != nil {
			return Entry{}, fmt.Errorf("history: failed to generate ID: %w", err)
		}
		e.ID = id
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byID[e.ID]; exists {
		return Entry{}, fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}
	if e.At.IsZero() {
		e.At = l.now()
	}
	l.entries = append(l.entries, e)
	l.byID[e.ID] = len(l.entries) - 1

	if l.limit > 0 && len(l.entries) > l.limit {
		l.dropOldest(len(l.entries) - l.limit)
	}
	return e, nil
}

// dropOldest removes the first n entries.  Callers hold l.mu.
func (l *Log) dropOldest(n int) {
	for _, e := range l.entries[:n] {
		delete(l.byID, e.ID)
	}
	l.entries = append(l.entries[:0:0], l.entries[n:]...)
	for i, e := range l.entries {
		l.byID[e.ID] = i
	}
}

// Get returns the entry with the given ID, or [ErrEntryNotFound].
func (l *Log) Get(_ context.Context, id string) (Entry, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, ok := l.byID[id]
	if !ok {
		return Entry{}, ErrEntryNotFound
	}
	return l.entries[i], nil
}

// List returns all entries, newest first.  Entries with equal timestamps are
// ordered by insertion, latest first.
func (l *Log) List(_ context.Context) []Entry {
	l.mu.RLock()
	out := make([]Entry, len(l.entries))
	for i, e := range l.entries {
		out[len(out)-1-i] = e
	}
	l.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out
}

// Clear removes every entry.
func (l *Log) Clear(_ context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.byID = make(map[string]int)
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// generateUUID generates a random UUID version 4.
func generateUUID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10xx
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:]), nil
}
