package session

import (
	"math/rand"

	"github.com/pashakim/pasha-party/internal/catalog"
)

// Queue is the order-randomized worklist of mini-game descriptors for one
// session. remaining is consumed strictly head-first; completed is
// append-only; at most one descriptor is current. The three sets are
// disjoint and always sum to the catalog size.
type Queue struct {
	remaining []catalog.Descriptor
	completed []catalog.Descriptor
	current   *catalog.Descriptor
}

// newQueue builds a queue from one uniform random permutation of the given
// descriptors, fixed for the session.
func newQueue(games []catalog.Descriptor, rng *rand.Rand) Queue {
	shuffled := make([]catalog.Descriptor, len(games))
	copy(shuffled, games)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return Queue{remaining: shuffled}
}

// popNext moves the head of remaining into current. Returns false when the
// queue is drained or a descriptor is already current.
func (q *Queue) popNext() (catalog.Descriptor, bool) {
	if len(q.remaining) == 0 || q.current != nil {
		return catalog.Descriptor{}, false
	}
	next := q.remaining[0]
	q.remaining = q.remaining[1:]
	q.current = &next
	return next, true
}

// completeCurrent appends the current descriptor to completed and clears
// current. No-op when nothing is current.
func (q *Queue) completeCurrent() {
	if q.current == nil {
		return
	}
	q.completed = append(q.completed, *q.current)
	q.current = nil
}

// Current returns the descriptor being played, if any.
func (q *Queue) Current() (catalog.Descriptor, bool) {
	if q.current == nil {
		return catalog.Descriptor{}, false
	}
	return *q.current, true
}

// RemainingCount returns how many descriptors are still queued.
func (q *Queue) RemainingCount() int { return len(q.remaining) }

// CompletedCount returns how many descriptors have been played.
func (q *Queue) CompletedCount() int { return len(q.completed) }

// Completed returns a copy of the completed descriptors in play order.
func (q *Queue) Completed() []catalog.Descriptor {
	out := make([]catalog.Descriptor, len(q.completed))
	copy(out, q.completed)
	return out
}
