package store

import "sync"

// inflightGuard serializes mutations per owner and entity class. A second
// submit while one is in flight is rejected with ErrBusy, never queued; the
// caller decides whether to resubmit.
type inflightGuard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newInflightGuard() *inflightGuard {
	return &inflightGuard{active: make(map[string]struct{})}
}

func (g *inflightGuard) begin(owner, entity string) error {
	key := owner + "/" + entity
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.active[key]; busy {
		return ErrBusy
	}
	g.active[key] = struct{}{}
	return nil
}

func (g *inflightGuard) end(owner, entity string) {
	key := owner + "/" + entity
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.active, key)
}
