// README: Conversation session record.
package session

import "time"

type Session struct {
	ID           string
	CreatedAt    time.Time
	LastActivity time.Time
	MessageCount int
}
