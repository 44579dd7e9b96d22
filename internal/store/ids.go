// internal/store/ids.go
package store

import (
	"fmt"
	"sync"
	"time"
)

// idGenerator hands out time-derived identifiers like "car-1719834000123".
// Calls landing on the same millisecond advance past the last issued value
// so identifiers stay unique within the process.
type idGenerator struct {
	mu     sync.Mutex
	prefix string
	last   int64
}

func newIDGenerator(prefix string) *idGenerator {
	return &idGenerator{prefix: prefix}
}

func (g *idGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := time.Now().UnixMilli()
	if now <= g.last {
		now = g.last + 1
	}
	g.last = now
	return fmt.Sprintf("%s-%d", g.prefix, now)
}
