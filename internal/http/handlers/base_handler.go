// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"concierge/internal/modules/booking"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeBookingError(c *gin.Context, err error) {
	switch err {
	case booking.ErrMissingID:
		writeError(c, http.StatusBadRequest, err.Error())
	case booking.ErrNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case booking.ErrAlreadyCancelled:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

type bookingJSON struct {
	BookingID   string `json:"booking_id"`
	PartySize   int    `json:"party_size,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Status      string `json:"status"`
	RawText     string `json:"raw_text,omitempty"`
	CreatedAt   string `json:"created_at"`
	CancelledAt string `json:"cancelled_at,omitempty"`
}

func toBookingJSON(b booking.Booking) bookingJSON {
	out := bookingJSON{
		BookingID: b.ID,
		PartySize: b.PartySize,
		Date:      b.Date,
		Time:      b.Time,
		Status:    string(b.Status),
		RawText:   b.RawText,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		out.CancelledAt = b.CancelledAt.UTC().Format(time.RFC3339)
	}
	return out
}

func toBookingList(bs []booking.Booking) []bookingJSON {
	out := make([]bookingJSON, 0, len(bs))
	for _, b := range bs {
		out = append(out, toBookingJSON(b))
	}
	return out
}
