package service

import "strings"

// Canned replies for conversational queries that never touch the dataset.
const (
	greetingReply  = "Hello! I can give you groundwater info for any district."
	wellbeingReply = "I'm doing great—always ready to talk about groundwater."
	gratitudeReply = "You're welcome! Glad I could help."
)

var greetingTokens = []string{"hi", "hello", "hey"}

// SmalltalkReply intercepts greeting and courtesy phrases before entity
// extraction. Checks are case-insensitive substring tests in a fixed
// priority order: greetings first, then wellbeing, then gratitude; a query
// containing both "hello" and "thank" gets the greeting reply because
// greetings are checked first.
func SmalltalkReply(query string) (string, bool) {
	q := strings.ToLower(query)

	for _, greet := range greetingTokens {
		if strings.Contains(q, greet) {
			return greetingReply, true
		}
	}
	if strings.Contains(q, "how are you") {
		return wellbeingReply, true
	}
	if strings.Contains(q, "thank") {
		return gratitudeReply, true
	}
	return "", false
}
