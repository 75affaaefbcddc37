package utils

import "github.com/google/uuid"

// TimeOrderedIDs produces catalog identifiers. Version 7 UUIDs sort by
// creation time, so entries inserted later also compare greater.
type TimeOrderedIDs struct{}

// NewTimeOrderedIDs returns a generator of version 7 UUID strings.
func NewTimeOrderedIDs() TimeOrderedIDs {
	return TimeOrderedIDs{}
}

// Generate returns a new UUID in canonical form. It falls back to a random
// version 4 UUID when the v7 clock source fails.
func (TimeOrderedIDs) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
