package singular

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// generation is one complete, internally consistent snapshot of the
// registry. Generations are immutable once published; a rebuild always
// constructs a fresh one off the live path.
type generation struct {
	byKey   map[string]*Asset
	idToKey map[string]string
	order   []string // keys in flatten order, for stable listings
}

func emptyGeneration() *generation {
	return &generation{
		byKey:   make(map[string]*Asset),
		idToKey: make(map[string]string),
	}
}

// Registry maps human-readable keys to subcompositions discovered in the
// control app model. Reads run against whichever generation is live;
// Rebuild swaps in a new generation atomically and leaves the old one
// untouched on any failure.
type Registry struct {
	fetcher ModelFetcher

	mu  sync.RWMutex // guards gen pointer
	gen *generation

	rebuildMu sync.Mutex // serializes rebuilds against each other
}

// NewRegistry creates an empty registry backed by the given fetcher.
func NewRegistry(fetcher ModelFetcher) *Registry {
	return &Registry{
		fetcher: fetcher,
		gen:     emptyGeneration(),
	}
}

// Rebuild fetches the model, flattens it and replaces the live generation.
// Returns the number of subcompositions in the new generation. On fetch or
// parse failure the previous generation stays live and the error is
// returned as-is.
func (r *Registry) Rebuild(ctx context.Context) (int, error) {
	r.rebuildMu.Lock()
	defer r.rebuildMu.Unlock()

	model, err := r.fetcher.FetchModel(ctx)
	if err != nil {
		return 0, err
	}

	next := emptyGeneration()
	for _, raw := range flattenNodes(model) {
		asset, ok := raw.admit()
		if !ok {
			continue
		}
		key := allocateKey(next, asset.ID, asset.Name)
		if _, seen := next.byKey[key]; !seen {
			next.order = append(next.order, key)
		}
		a := asset
		next.byKey[key] = &a
		next.idToKey[asset.ID] = key
	}

	r.mu.Lock()
	r.gen = next
	r.mu.Unlock()

	log.Info().Int("count", len(next.byKey)).Msg("Registry rebuilt")
	return len(next.byKey), nil
}

// allocateKey resolves the slug for one asset against the generation being
// built. A key held by a different id gets numeric suffixes in first-seen
// order; a duplicate emission of the same id reuses its existing key.
func allocateKey(g *generation, id, name string) string {
	key := Slugify(name)
	base := key
	for i := 2; ; i++ {
		existing, taken := g.byKey[key]
		if !taken || existing.ID == id {
			return key
		}
		key = fmt.Sprintf("%s-%d", base, i)
	}
}

// Resolve looks up an asset by key first, then by remote-assigned id.
func (r *Registry) Resolve(keyOrID string) (string, *Asset, error) {
	g := r.snapshot()
	if a, ok := g.byKey[keyOrID]; ok {
		return keyOrID, a, nil
	}
	if key, ok := g.idToKey[keyOrID]; ok {
		return key, g.byKey[key], nil
	}
	return "", nil, fmt.Errorf("%w: %s", ErrAssetNotFound, keyOrID)
}

// Len returns the number of assets in the live generation.
func (r *Registry) Len() int {
	return len(r.snapshot().byKey)
}

// Each calls fn for every entry of the live generation in flatten order.
// The generation is immutable, so fn runs without holding the lock.
func (r *Registry) Each(fn func(key string, asset *Asset)) {
	g := r.snapshot()
	for _, key := range g.order {
		fn(key, g.byKey[key])
	}
}

func (r *Registry) snapshot() *generation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.gen
}
