// README: Intent labels and extracted-field bag.
package intent

type Intent string

const (
	IntentCreate  Intent = "create"
	IntentCancel  Intent = "cancel"
	IntentLookup  Intent = "lookup"
	IntentList    Intent = "list"
	IntentGeneral Intent = "general"
)

// Fields carries whatever structured data could be pulled out of the message.
// Zero values mean the field was not present.
type Fields struct {
	BookingID string
	PartySize int
	Date      string
	Time      string
}

type Result struct {
	Intent Intent
	Fields Fields
}
