package utils

import "github.com/google/uuid"

type UUIDGenerator struct {
	prefix string
}

// NewUUIDGenerator returns a generator of ids shaped "<prefix>-<uuid>".
// An empty prefix yields bare uuids.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

func (g *UUIDGenerator) Generate() string {
	id := newUUID()
	if g.prefix == "" {
		return id
	}
	return g.prefix + "-" + id
}

func newUUID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
