package id

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator creates opaque ids for correlating log lines.
type Generator interface {
	NewID() string
}

type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// SequenceGenerator returns prefix-1, prefix-2 and so on.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return g.prefix + "-" + strconv.FormatUint(g.next.Add(1), 10)
}
