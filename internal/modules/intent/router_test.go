// README: Intent routing tests (precedence and id capture).
package intent

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		in     string
		intent Intent
		id     string
	}{
		{"cancel BK0001", IntentCancel, "BK0001"},
		{"please remove my reservation bk0007", IntentCancel, "BK0007"},
		{"cancel", IntentCancel, ""},
		{"show me details for bk0003", IntentLookup, "BK0003"},
		{"status of BK0010", IntentLookup, "BK0010"},
		{"BK0002", IntentLookup, "BK0002"},
		{"list my bookings", IntentList, ""},
		{"show all bookings", IntentList, ""},
		{"book a table for 4 people on December 25th at 7 PM", IntentCreate, ""},
		{"I'd like to reserve a room", IntentCreate, ""},
		{"what are your hours", IntentGeneral, ""},
		{"do you have vegan options?", IntentGeneral, ""},
		{"", IntentGeneral, ""},
	}
	for _, tc := range cases {
		got := Classify(tc.in)
		if got.Intent != tc.intent {
			t.Errorf("Classify(%q).Intent = %q, want %q", tc.in, got.Intent, tc.intent)
		}
		if got.Fields.BookingID != tc.id {
			t.Errorf("Classify(%q).BookingID = %q, want %q", tc.in, got.Fields.BookingID, tc.id)
		}
	}
}

// Cancel wins over create keywords, and an id with a create keyword is not a
// lookup.
func TestClassifyPrecedence(t *testing.T) {
	got := Classify("cancel my table booking BK0005")
	if got.Intent != IntentCancel {
		t.Fatalf("intent = %q, want cancel", got.Intent)
	}
	if got.Fields.BookingID != "BK0005" {
		t.Fatalf("id = %q, want BK0005", got.Fields.BookingID)
	}

	got = Classify("book another table like BK0001")
	if got.Intent != IntentCreate {
		t.Fatalf("intent = %q, want create", got.Intent)
	}
}

func TestClassifyGeneralHasNoFields(t *testing.T) {
	got := Classify("what are your hours")
	if got.Fields != (Fields{}) {
		t.Fatalf("general intent carried fields: %+v", got.Fields)
	}
}
