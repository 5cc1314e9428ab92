package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers for users, topics and
// sessions. UUIDv7 embeds a millisecond timestamp, so ids sort by creation
// time.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
