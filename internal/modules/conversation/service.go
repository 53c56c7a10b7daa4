// README: Conversation service; routes a message to the store or the AI provider and composes the reply.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"concierge/internal/ai"
	"concierge/internal/modules/booking"
	"concierge/internal/modules/intent"
	"concierge/internal/modules/session"
)

// apologyReply covers any failure at the completion-service boundary. The
// session must never see a raw provider error.
const apologyReply = "I'm sorry, I'm having trouble answering that right now. Please try again in a moment."

type Service struct {
	bookings *booking.Service
	provider ai.CompletionProvider
	sessions *session.Store
	log      *zap.Logger
}

// NewService wires the conversation pipeline. sessions may be nil when no
// session tracking is wanted (e.g. the console demo).
func NewService(bookings *booking.Service, provider ai.CompletionProvider, sessions *session.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{bookings: bookings, provider: provider, sessions: sessions, log: log}
}

// Respond handles one customer message end to end and always returns
// user-facing text. Store-level conditions (missing id, not found, already
// cancelled) are rendered as templated replies, never as errors.
func (s *Service) Respond(ctx context.Context, sessionID, message string) string {
	s.touchSession(ctx, sessionID)

	res := intent.Classify(message)
	s.log.Debug("message routed",
		zap.String("intent", string(res.Intent)),
		zap.String("booking_id", res.Fields.BookingID))

	switch res.Intent {
	case intent.IntentCreate:
		return s.handleCreate(ctx, res.Fields, message)
	case intent.IntentCancel:
		return s.handleCancel(ctx, res.Fields.BookingID)
	case intent.IntentLookup:
		return s.handleLookup(ctx, res.Fields.BookingID)
	case intent.IntentList:
		return s.handleList(ctx)
	default:
		return s.handleGeneral(ctx, message)
	}
}

func (s *Service) handleCreate(ctx context.Context, f intent.Fields, raw string) string {
	b := s.bookings.Create(ctx, booking.CreateCommand{
		PartySize: f.PartySize,
		Date:      f.Date,
		Time:      f.Time,
		RawText:   raw,
	})

	reply := fmt.Sprintf("Booking %s has been created successfully", b.ID)
	if detail := describeDetails(b); detail != "" {
		reply += " " + detail
	}
	return reply + "."
}

func (s *Service) handleCancel(ctx context.Context, id string) string {
	if id == "" {
		return "Please provide your booking ID (for example BK0001) so I can cancel it."
	}
	b, err := s.bookings.Cancel(ctx, id)
	switch {
	case errors.Is(err, booking.ErrNotFound):
		return fmt.Sprintf("Booking %s not found.", strings.ToUpper(id))
	case errors.Is(err, booking.ErrAlreadyCancelled):
		return fmt.Sprintf("Booking %s is already cancelled.", b.ID)
	case err != nil:
		return fmt.Sprintf("Booking %s not found.", strings.ToUpper(id))
	}
	return fmt.Sprintf("Booking %s has been cancelled successfully.", b.ID)
}

func (s *Service) handleLookup(ctx context.Context, id string) string {
	if id == "" {
		return "Please provide your booking ID (for example BK0001) so I can look it up."
	}
	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return fmt.Sprintf("Booking %s not found.", strings.ToUpper(id))
	}
	return describeBooking(b)
}

func (s *Service) handleList(ctx context.Context) string {
	all := s.bookings.List(ctx)
	if len(all) == 0 {
		return "There are no bookings yet."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current bookings (%d):", len(all))
	for _, b := range all {
		sb.WriteString("\n- " + describeBooking(b))
	}
	return sb.String()
}

func (s *Service) handleGeneral(ctx context.Context, message string) string {
	reply, err := s.provider.Complete(ctx, message, s.bookingContext(ctx))
	if err != nil {
		s.log.Warn("completion service failed", zap.Error(err))
		return apologyReply
	}
	return reply
}

// bookingContext serializes the store for the model. A short summary is
// enough; the model only needs it to answer questions like "how busy are
// you on Friday".
func (s *Service) bookingContext(ctx context.Context) string {
	all := s.bookings.List(ctx)
	if len(all) == 0 {
		return ""
	}
	lines := make([]string, 0, len(all))
	for _, b := range all {
		lines = append(lines, describeBooking(b))
	}
	return strings.Join(lines, "\n")
}

func (s *Service) touchSession(ctx context.Context, sessionID string) {
	if s.sessions == nil || sessionID == "" {
		return
	}
	if err := s.sessions.Touch(ctx, sessionID); err != nil {
		// Session tracking is best effort; the conversation goes on.
		s.log.Warn("session touch failed", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func describeBooking(b booking.Booking) string {
	line := fmt.Sprintf("Booking %s", b.ID)
	if detail := describeDetails(b); detail != "" {
		line += " " + detail
	}
	if b.Status == booking.StatusCancelled {
		return line + " (cancelled)"
	}
	return line + " (active)"
}

func describeDetails(b booking.Booking) string {
	var parts []string
	if b.PartySize > 0 {
		parts = append(parts, fmt.Sprintf("for %d guests", b.PartySize))
	}
	if b.Date != "" {
		parts = append(parts, "on "+b.Date)
	}
	if b.Time != "" {
		parts = append(parts, "at "+b.Time)
	}
	return strings.Join(parts, " ")
}
