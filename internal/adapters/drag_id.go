package adapters

import (
	"github.com/google/uuid"

	"gwspec/internal/ports"
)

// UUIDSource produces short random ids from version 4 UUIDs.
type UUIDSource struct{}

func NewUUIDSource() UUIDSource {
	return UUIDSource{}
}

func (UUIDSource) NewID() string {
	return uuid.New().String()[:8]
}

var _ ports.IDSourcePort = UUIDSource{}
