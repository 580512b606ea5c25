package sync

import (
	"crypto/sha256"
	"encoding/hex"
	gosync "sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const maxTracked = 4096

// Guard serializes work per document and suppresses the change
// notifications our own writes cause.
type Guard struct {
	mu       gosync.Mutex
	inFlight map[string]struct{}

	// cooldown holds IDs written within the last window.
	cooldown *expirable.LRU[string, struct{}]
	// written holds the fingerprint of the last content we wrote per ID.
	written *expirable.LRU[string, string]
}

func NewGuard(cooldown time.Duration) *Guard {
	return &Guard{
		inFlight: map[string]struct{}{},
		cooldown: expirable.NewLRU[string, struct{}](maxTracked, nil, cooldown),
		written:  expirable.NewLRU[string, string](maxTracked, nil, 0),
	}
}

// Begin claims id. It fails with ErrAlreadyProcessing while another pass
// holds it.
func (g *Guard) Begin(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.inFlight[id]; busy {
		return ErrAlreadyProcessing
	}
	g.inFlight[id] = struct{}{}
	return nil
}

// End releases id. A non-empty written content starts the cooldown and
// becomes the remembered fingerprint.
func (g *Guard) End(id string, written string) {
	g.mu.Lock()
	delete(g.inFlight, id)
	g.mu.Unlock()

	if written == "" {
		return
	}
	g.cooldown.Add(id, struct{}{})
	g.written.Add(id, fingerprint(written))
}

func (g *Guard) InCooldown(id string) bool {
	_, ok := g.cooldown.Get(id)
	return ok
}

func (g *Guard) IsOwnWrite(id, content string) bool {
	fp, ok := g.written.Get(id)
	return ok && fp == fingerprint(content)
}

func fingerprint(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}
