package locationstore

import "sync"

// Latest keeps only the newest reload per location. A reload started for an
// older location, or superseded by a newer reload, cannot commit its result.
type Latest[T any] struct {
	mu     sync.Mutex
	seq    uint64
	key    string
	value  T
	owner  string
	filled bool
}

// Ticket identifies one reload.
type Ticket struct {
	seq uint64
	key string
}

// Begin starts a reload for locationID and supersedes every earlier one.
func (l *Latest[T]) Begin(locationID string) Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.key = locationID
	return Ticket{seq: l.seq, key: locationID}
}

// Commit stores v if t is still the newest reload and reports whether it did.
func (l *Latest[T]) Commit(t Ticket, v T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.seq != l.seq || t.key != l.key {
		return false
	}
	l.value = v
	l.owner = t.key
	l.filled = true
	return true
}

// Current returns the last committed value for locationID.
func (l *Latest[T]) Current(locationID string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	if !l.filled || l.owner != locationID {
		return zero, false
	}
	return l.value, true
}

// Reset forgets the committed value and invalidates outstanding tickets.
func (l *Latest[T]) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	var zero T
	l.seq++
	l.value = zero
	l.filled = false
}
