package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7, or a random UUIDv4 when no v7 can be
// made. Servers and request traces are identified this way.
func NewID() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}

// IDGenerator hands out NewID values to the startup service.
type IDGenerator struct{}

func (IDGenerator) Generate() string {
	return NewID()
}
