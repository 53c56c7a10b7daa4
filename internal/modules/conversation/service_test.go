// README: Conversation flow tests with a stubbed completion provider.
package conversation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"concierge/internal/modules/booking"
)

// stubProvider is a test double for ai.CompletionProvider.
type stubProvider struct {
	reply       string
	err         error
	lastMessage string
	lastContext string
	calls       int
}

func (s *stubProvider) Complete(_ context.Context, userMessage, bookingContext string) (string, error) {
	s.calls++
	s.lastMessage = userMessage
	s.lastContext = bookingContext
	return s.reply, s.err
}

func newTestService(p *stubProvider) *Service {
	return NewService(booking.NewService(booking.NewStore()), p, nil, nil)
}

func TestRespondCreateBooking(t *testing.T) {
	svc := newTestService(&stubProvider{})
	ctx := context.Background()

	reply := svc.Respond(ctx, "", "book a table for 4 people on December 25th at 7 PM")
	for _, want := range []string{"BK0001", "4 guests", "December 25", "7 PM"} {
		if !strings.Contains(reply, want) {
			t.Errorf("create reply %q missing %q", reply, want)
		}
	}
}

func TestRespondCreateWithPartialFields(t *testing.T) {
	svc := newTestService(&stubProvider{})
	reply := svc.Respond(context.Background(), "", "I want to reserve a room")
	if !strings.Contains(reply, "BK0001") {
		t.Errorf("partial create reply %q missing booking id", reply)
	}
}

func TestRespondCancelFlow(t *testing.T) {
	svc := newTestService(&stubProvider{})
	ctx := context.Background()

	svc.Respond(ctx, "", "book a table for 2 people")

	reply := svc.Respond(ctx, "", "cancel BK0001")
	if reply != "Booking BK0001 has been cancelled successfully." {
		t.Errorf("cancel reply = %q", reply)
	}

	reply = svc.Respond(ctx, "", "cancel BK0001")
	if reply != "Booking BK0001 is already cancelled." {
		t.Errorf("repeat cancel reply = %q", reply)
	}

	reply = svc.Respond(ctx, "", "cancel BK0099")
	if reply != "Booking BK0099 not found." {
		t.Errorf("unknown cancel reply = %q", reply)
	}
}

func TestRespondCancelWithoutIDAsksForIt(t *testing.T) {
	svc := newTestService(&stubProvider{})
	reply := svc.Respond(context.Background(), "", "cancel")
	if !strings.Contains(reply, "booking ID") {
		t.Errorf("missing-id reply = %q", reply)
	}
}

func TestRespondLookup(t *testing.T) {
	svc := newTestService(&stubProvider{})
	ctx := context.Background()

	svc.Respond(ctx, "", "book a table for 4 people on December 25th at 7 PM")

	reply := svc.Respond(ctx, "", "show me details for bk0001")
	for _, want := range []string{"BK0001", "4 guests", "active"} {
		if !strings.Contains(reply, want) {
			t.Errorf("lookup reply %q missing %q", reply, want)
		}
	}

	reply = svc.Respond(ctx, "", "show me details for bk0042")
	if reply != "Booking BK0042 not found." {
		t.Errorf("unknown lookup reply = %q", reply)
	}
}

func TestRespondListIncludesCancelled(t *testing.T) {
	svc := newTestService(&stubProvider{})
	ctx := context.Background()

	reply := svc.Respond(ctx, "", "list my bookings")
	if reply != "There are no bookings yet." {
		t.Errorf("empty list reply = %q", reply)
	}

	svc.Respond(ctx, "", "book a table for 2 people")
	svc.Respond(ctx, "", "book a room")
	svc.Respond(ctx, "", "cancel BK0001")

	reply = svc.Respond(ctx, "", "list my bookings")
	if !strings.Contains(reply, "BK0001") || !strings.Contains(reply, "BK0002") {
		t.Errorf("list reply %q missing records", reply)
	}
	if !strings.Contains(reply, "cancelled") {
		t.Errorf("list reply %q missing tombstone marker", reply)
	}
}

func TestRespondGeneralForwardsToProvider(t *testing.T) {
	p := &stubProvider{reply: "We are open 9 to 5."}
	svc := newTestService(p)
	ctx := context.Background()

	svc.Respond(ctx, "", "book a table for 2 people")

	reply := svc.Respond(ctx, "", "what are your hours")
	if reply != "We are open 9 to 5." {
		t.Errorf("general reply = %q", reply)
	}
	if p.lastMessage != "what are your hours" {
		t.Errorf("provider got message %q", p.lastMessage)
	}
	if !strings.Contains(p.lastContext, "BK0001") {
		t.Errorf("provider context %q missing bookings", p.lastContext)
	}
}

func TestRespondGeneralProviderFailureYieldsApology(t *testing.T) {
	p := &stubProvider{err: errors.New("quota exceeded")}
	svc := newTestService(p)

	reply := svc.Respond(context.Background(), "", "what are your hours")
	if reply != apologyReply {
		t.Errorf("failure reply = %q, want apology", reply)
	}
}

func TestRespondStructuredIntentsNeverCallProvider(t *testing.T) {
	p := &stubProvider{}
	svc := newTestService(p)
	ctx := context.Background()

	svc.Respond(ctx, "", "book a table for 2 people")
	svc.Respond(ctx, "", "cancel BK0001")
	svc.Respond(ctx, "", "list my bookings")

	if p.calls != 0 {
		t.Errorf("provider called %d times for structured intents", p.calls)
	}
}
