package utils

import "github.com/google/uuid"

// UUIDGenerator mints mutation identifiers. Version 7 ids carry a time
// prefix, so ids sort by creation order.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random v4 when the entropy
// source refuses.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
