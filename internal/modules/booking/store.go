// README: In-memory booking store (minimal methods, tombstone cancellation).
package booking

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Store keeps every booking for the lifetime of the process. Records are
// never deleted; cancellation marks the record and leaves it in place.
// Lookups are case-insensitive on the identifier.
type Store struct {
	mu       sync.Mutex
	records  map[string]*Booking // keyed by upper-case id
	sequence []string            // ids in creation order
	nextSeq  int
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]*Booking),
		nextSeq: 1,
	}
}

// Insert assigns the next sequential identifier, stores the record as Active,
// and returns a copy. It never fails.
func (s *Store) Insert(_ context.Context, b Booking) Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = FormatID(s.nextSeq)
	s.nextSeq++
	b.Status = StatusActive
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	stored := b
	s.records[b.ID] = &stored
	s.sequence = append(s.sequence, b.ID)
	return b
}

func (s *Store) Get(_ context.Context, id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.records[normalizeID(id)]
	if !ok {
		return Booking{}, ErrNotFound
	}
	return *b, nil
}

// MarkCancelled transitions an Active record to Cancelled. The transition
// happens at most once; re-invoking reports ErrAlreadyCancelled without
// touching the record.
func (s *Store) MarkCancelled(_ context.Context, id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.records[normalizeID(id)]
	if !ok {
		return Booking{}, ErrNotFound
	}
	if b.Status == StatusCancelled {
		return *b, ErrAlreadyCancelled
	}
	now := time.Now()
	b.Status = StatusCancelled
	b.CancelledAt = &now
	return *b, nil
}

// List returns all records in creation order, cancelled ones included.
func (s *Store) List(_ context.Context) []Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Booking, 0, len(s.sequence))
	for _, id := range s.sequence {
		out = append(out, *s.records[id])
	}
	return out
}

func normalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
