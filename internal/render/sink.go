package render

import (
	"sync"

	"github.com/Zuo-Peng/elapsed/internal/annotate"
)

// Buffer is a sink that keeps the latest decoration set per surface.
// OnReplace, if set, is called after every replacement with the lock released.
type Buffer struct {
	mu        sync.Mutex
	sets      map[string][]annotate.Decoration
	versions  map[string]int
	OnReplace func(surfaceID string, version int)
}

func NewBuffer() *Buffer {
	return &Buffer{
		sets:     make(map[string][]annotate.Decoration),
		versions: make(map[string]int),
	}
}

// Replace drops the previous set for surfaceID and stores decorations.
func (b *Buffer) Replace(surfaceID string, decorations []annotate.Decoration) {
	b.mu.Lock()
	cp := make([]annotate.Decoration, len(decorations))
	copy(cp, decorations)
	b.sets[surfaceID] = cp
	b.versions[surfaceID]++
	v := b.versions[surfaceID]
	notify := b.OnReplace
	b.mu.Unlock()

	if notify != nil {
		notify(surfaceID, v)
	}
}

// Get returns the current set for surfaceID and how many times it has been
// replaced.
func (b *Buffer) Get(surfaceID string) ([]annotate.Decoration, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sets[surfaceID], b.versions[surfaceID]
}

// Clear forgets everything stored for surfaceID.
func (b *Buffer) Clear(surfaceID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.sets, surfaceID)
	delete(b.versions, surfaceID)
}
