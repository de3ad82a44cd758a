package id

import "github.com/google/uuid"

// Generator produces unique airline identifiers. Injected so tests can use a
// deterministic sequence.
type Generator interface {
	Generate() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

var _ Generator = (*UUIDGenerator)(nil)
