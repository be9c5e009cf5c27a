// Package id provides run ID generation.
package id

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID-based run IDs.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
