// Package domain contains core concepts of the daily pick bot.
// This file defines Participant names and the rules used to compare them.
// No runtime, network, or UI logic should be added here.
package domain

import "strings"

// NormalizeName is the comparison key of a participant name.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameParticipant reports whether two names designate the same participant
// within a room.
func SameParticipant(a, b string) bool {
	return NormalizeName(a) == NormalizeName(b)
}

// DisplayName builds the roster name of a chat user from its first and last name.
func DisplayName(firstName, lastName string) string {
	if lastName == "" {
		return firstName
	}
	return firstName + " " + lastName
}
