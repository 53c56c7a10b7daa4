// README: Booking service implements create/lookup/cancel/list plus search and stats.
package booking

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingID        = errors.New("booking id is required")
	ErrNotFound         = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	PartySize int
	Date      string
	Time      string
	RawText   string
}

// Create inserts a new Active booking with whatever fields were extracted.
// Partial information is fine; creation never fails.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) Booking {
	return s.store.Insert(ctx, Booking{
		PartySize: cmd.PartySize,
		Date:      cmd.Date,
		Time:      cmd.Time,
		RawText:   cmd.RawText,
	})
}

func (s *Service) Get(ctx context.Context, id string) (Booking, error) {
	if strings.TrimSpace(id) == "" {
		return Booking{}, ErrMissingID
	}
	return s.store.Get(ctx, id)
}

func (s *Service) Cancel(ctx context.Context, id string) (Booking, error) {
	if strings.TrimSpace(id) == "" {
		return Booking{}, ErrMissingID
	}
	return s.store.MarkCancelled(ctx, id)
}

func (s *Service) List(ctx context.Context) []Booking {
	return s.store.List(ctx)
}

// Search returns bookings whose id, date, time, or raw text contains the
// query, case-insensitively, in creation order.
func (s *Service) Search(ctx context.Context, query string) []Booking {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Booking
	for _, b := range s.store.List(ctx) {
		haystack := strings.ToLower(strings.Join([]string{b.ID, b.Date, b.Time, b.RawText}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, b)
		}
	}
	return out
}

type Stats struct {
	Total       int `json:"total_bookings"`
	Active      int `json:"active_bookings"`
	Cancelled   int `json:"cancelled_bookings"`
	TotalGuests int `json:"total_guests"`
}

// Stats summarizes the store. TotalGuests counts party sizes of active
// bookings only.
func (s *Service) Stats(ctx context.Context) Stats {
	var st Stats
	for _, b := range s.store.List(ctx) {
		st.Total++
		switch b.Status {
		case StatusCancelled:
			st.Cancelled++
		default:
			st.Active++
			st.TotalGuests += b.PartySize
		}
	}
	return st
}
