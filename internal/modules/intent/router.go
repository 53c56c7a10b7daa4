// README: Keyword intent router; ordered rules, first match wins.
package intent

import (
	"regexp"
	"strings"
)

var idPattern = regexp.MustCompile(`(?i)\bbk\d+\b`)

var (
	cancelKeywords = []string{"cancel", "remove"}
	lookupKeywords = []string{"details", "show", "status"}
	listKeywords   = []string{"list", "all bookings"}
	createKeywords = []string{"book", "reserve", "reservation", "table", "room"}
)

// rule pairs a predicate with the intent it selects. Rules are evaluated
// top-to-bottom; precedence resolves ambiguous multi-keyword input
// ("cancel my table booking" is a Cancel, not a Create).
type rule struct {
	intent Intent
	match  func(msg string, hasID bool) bool
}

var rules = []rule{
	{IntentCancel, func(msg string, _ bool) bool {
		return containsAny(msg, cancelKeywords)
	}},
	{IntentLookup, func(msg string, hasID bool) bool {
		if !hasID {
			return false
		}
		// An id with a lookup-style keyword, or an id with nothing else
		// actionable, is a lookup.
		return containsAny(msg, lookupKeywords) ||
			(!containsAny(msg, listKeywords) && !containsAny(msg, createKeywords))
	}},
	{IntentList, func(msg string, _ bool) bool {
		return containsAny(msg, listKeywords)
	}},
	{IntentCreate, func(msg string, _ bool) bool {
		return containsAny(msg, createKeywords)
	}},
}

// Classify inspects a free-text message and returns its intent plus the
// fields that intent needs. Unmatched input degrades to General; there are
// no error returns.
func Classify(text string) Result {
	msg := strings.ToLower(text)

	var fields Fields
	if m := idPattern.FindString(text); m != "" {
		fields.BookingID = strings.ToUpper(m)
	}

	for _, r := range rules {
		if !r.match(msg, fields.BookingID != "") {
			continue
		}
		res := Result{Intent: r.intent, Fields: fields}
		if r.intent == IntentCreate {
			res.Fields.PartySize = extractPartySize(text)
			res.Fields.Date = extractDate(text)
			res.Fields.Time = extractTime(text)
		}
		return res
	}
	return Result{Intent: IntentGeneral}
}

func containsAny(msg string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(msg, k) {
			return true
		}
	}
	return false
}
