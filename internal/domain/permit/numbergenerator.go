package permit

import (
	"context"
	"fmt"
	"sync"
)

// NumberGenerator assigns permit numbers of the form PRM-001, PRM-002, ...
// Numbers are monotonically increasing and zero-padded to three digits.
type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

const numberPrefix = "PRM"

// FormatNumber renders a sequence value as a permit number.
func FormatNumber(seq int) string {
	return fmt.Sprintf("%s-%03d", numberPrefix, seq)
}

// DefaultNumberGenerator is an in-memory generator used in tests and as a
// fallback when no persistent sequence is available.
type DefaultNumberGenerator struct {
	mu      sync.Mutex
	counter int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.counter++
	return FormatNumber(g.counter), nil
}
