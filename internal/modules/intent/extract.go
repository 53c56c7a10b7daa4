// README: Field extraction heuristics for create-intent messages.
package intent

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "4 people", "2 guests", "party of 6"
	partyPattern   = regexp.MustCompile(`(?i)\b(\d+)\s*(?:people|persons|person|guests|guest|pax)\b`)
	partyOfPattern = regexp.MustCompile(`(?i)\bparty\s+of\s+(\d+)\b`)

	// "December 25th", "Jan 3"
	monthDayPattern = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	weekdayPattern  = regexp.MustCompile(`(?i)\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday|today|tomorrow|tonight)\b`)

	// "7 PM", "7:30pm"
	timePattern = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
)

func extractPartySize(text string) int {
	m := partyPattern.FindStringSubmatch(text)
	if m == nil {
		m = partyOfPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// extractDate prefers an explicit month-name date over a bare weekday.
func extractDate(text string) string {
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		return titleCase(m[1]) + " " + m[2]
	}
	if m := weekdayPattern.FindString(text); m != "" {
		return titleCase(m)
	}
	return ""
}

func extractTime(text string) string {
	m := timePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	out := m[1]
	if m[2] != "" {
		out += ":" + m[2]
	}
	return out + " " + strings.ToUpper(m[3])
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
