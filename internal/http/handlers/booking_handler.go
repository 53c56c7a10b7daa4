// README: Booking handlers for direct create/list/get/cancel/search/stats.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"concierge/internal/modules/booking"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	PartySize int    `json:"party_size"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Notes     string `json:"notes"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if req.PartySize < 0 {
		writeError(c, http.StatusBadRequest, "party_size must be positive")
		return
	}

	b := h.bookings.Create(c.Request.Context(), booking.CreateCommand{
		PartySize: req.PartySize,
		Date:      req.Date,
		Time:      req.Time,
		RawText:   req.Notes,
	})
	writeJSON(c, http.StatusCreated, toBookingJSON(b))
}

// List handles GET /api/bookings with an optional ?status= filter.
func (h *BookingHandler) List(c *gin.Context) {
	status := strings.ToLower(c.Query("status"))
	all := h.bookings.List(c.Request.Context())

	filtered := all[:0:0]
	for _, b := range all {
		if status != "" && string(b.Status) != status {
			continue
		}
		filtered = append(filtered, b)
	}
	writeJSON(c, http.StatusOK, gin.H{
		"bookings":    toBookingList(filtered),
		"total_count": len(filtered),
	})
}

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toBookingJSON(b))
}

// Cancel handles DELETE /api/bookings/:id. Cancellation is a tombstone; the
// record stays listable afterwards.
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.bookings.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"booking_id": b.ID,
		"message":    "Booking " + b.ID + " has been cancelled successfully.",
	})
}

type searchReq struct {
	Query string `json:"query"`
}

func (h *BookingHandler) Search(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(c, http.StatusBadRequest, "missing query")
		return
	}

	found := h.bookings.Search(c.Request.Context(), req.Query)
	writeJSON(c, http.StatusOK, gin.H{
		"bookings":    toBookingList(found),
		"total_count": len(found),
	})
}

func (h *BookingHandler) Stats(c *gin.Context) {
	writeJSON(c, http.StatusOK, h.bookings.Stats(c.Request.Context()))
}
