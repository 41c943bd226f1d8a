package impl

import (
	"sync"

	"authgate/internal/domain/entity"
)

type inflightKey struct {
	clientID string
	provider entity.ProviderType
}

// inflightGuard admits one reconciliation per client and provider at a time.
type inflightGuard struct {
	mu     sync.Mutex
	active map[inflightKey]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[inflightKey]struct{})}
}

// acquire returns a release func, or false when the key is already held.
func (g *inflightGuard) acquire(clientID string, provider entity.ProviderType) (func(), bool) {
	key := inflightKey{clientID: clientID, provider: provider}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return nil, false
	}
	g.active[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.active, key)
		g.mu.Unlock()
	}, true
}
