package imaging

import (
	"sync"

	"github.com/google/uuid"
)

const previewScheme = "blob:"

// PreviewRegistry hands out opaque preview handles for pending files and
// releases them on revoke.
type PreviewRegistry struct {
	mu   sync.Mutex
	live map[string]File
}

func NewPreviewRegistry() *PreviewRegistry {
	return &PreviewRegistry{live: make(map[string]File)}
}

func (r *PreviewRegistry) Issue(f File) string {
	h := previewScheme + uuid.NewString()
	r.mu.Lock()
	r.live[h] = f
	r.mu.Unlock()
	return h
}

func (r *PreviewRegistry) Resolve(handle string) (File, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.live[handle]
	return f, ok
}

// Revoke releases handle. It reports false if the handle was not live.
func (r *PreviewRegistry) Revoke(handle string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.live[handle]; !ok {
		return false
	}
	delete(r.live, handle)
	return true
}

// RevokeAll releases every live handle and returns how many there were.
func (r *PreviewRegistry) RevokeAll() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := len(r.live)
	r.live = make(map[string]File)
	return n
}

func (r *PreviewRegistry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
