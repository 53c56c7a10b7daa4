// README: Booking record and status definitions.
package booking

import (
	"fmt"
	"time"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	// ID is "BK" plus a zero-padded sequence number (BK0001, BK0002, ...),
	// assigned by the store at creation and immutable afterwards.
	ID string

	// PartySize is the number of guests; 0 means it could not be extracted.
	PartySize int

	// Date and Time are free-text expressions as extracted from the request
	// ("December 25", "7 PM"). Empty when absent.
	Date string
	Time string

	Status Status

	// RawText is the original request, retained for reference.
	RawText string

	CreatedAt   time.Time
	CancelledAt *time.Time
}

// FormatID renders the canonical identifier for a sequence number.
func FormatID(seq int) string {
	return fmt.Sprintf("BK%04d", seq)
}
