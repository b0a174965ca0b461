package imaging

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/joefazee/directory-admin/internal/logger"
	"github.com/joefazee/directory-admin/models"
)

// Pending is a new file waiting for submission, with its preview handle.
type Pending struct {
	File    File
	Preview string
}

// Pipeline tracks a provider's images while a form is open: the images the
// server already holds, the ones marked for deletion, and new local files.
// Nothing is uploaded from here.
type Pipeline struct {
	mu         sync.Mutex
	existing   []models.Image
	deleted    []string
	deletedSet map[string]struct{}
	pending    []Pending

	compressor Compressor
	previews   *PreviewRegistry
	workers    int
	log        logger.Logger
}

func NewPipeline(c Compressor, existing []models.Image, workers int, l logger.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &Pipeline{
		existing:   append([]models.Image(nil), existing...),
		deletedSet: make(map[string]struct{}),
		compressor: c,
		previews:   NewPreviewRegistry(),
		workers:    workers,
		log:        l,
	}
}

// Existing returns the server images still visible on the form.
func (p *Pipeline) Existing() []models.Image {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Image(nil), p.existing...)
}

// DeleteExisting queues publicID for deletion and hides it. Only the first
// call for an id has any effect.
func (p *Pipeline) DeleteExisting(publicID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, done := p.deletedSet[publicID]; done {
		return false
	}
	for i, img := range p.existing {
		if img.PublicID != publicID {
			continue
		}
		p.existing = append(p.existing[:i:i], p.existing[i+1:]...)
		p.deletedSet[publicID] = struct{}{}
		p.deleted = append(p.deleted, publicID)
		return true
	}
	return false
}

func (p *Pipeline) DeletedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.deleted...)
}

// Add compresses files concurrently and appends them in the given order.
// A file that fails to compress is kept as it was. Only cancellation of ctx
// makes Add fail, in which case nothing is appended.
func (p *Pipeline) Add(ctx context.Context, files ...File) ([]string, error) {
	out := make([]File, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, f := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cf, err := p.compressor.Compress(gctx, f)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				p.log.Debug("compression skipped", map[string]interface{}{"file": f.Name, "error": err.Error()})
				cf = f
			}
			out[i] = cf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	handles := make([]string, len(out))
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, f := range out {
		handles[i] = p.previews.Issue(f)
		p.pending = append(p.pending, Pending{File: f, Preview: handles[i]})
	}
	return handles, nil
}

// Remove discards pending entry i and revokes its preview.
func (p *Pipeline) Remove(i int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.pending) {
		return false
	}
	p.previews.Revoke(p.pending[i].Preview)
	p.pending = append(p.pending[:i:i], p.pending[i+1:]...)
	return true
}

func (p *Pipeline) Pending() []Pending {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Pending(nil), p.pending...)
}

// Files returns the pending files in selection order.
func (p *Pipeline) Files() []File {
	p.mu.Lock()
	defer p.mu.Unlock()
	files := make([]File, len(p.pending))
	for i, e := range p.pending {
		files[i] = e.File
	}
	return files
}

func (p *Pipeline) LivePreviews() int {
	return p.previews.Live()
}

// Close revokes every preview. Call it when the owning form goes away.
func (p *Pipeline) Close() {
	if n := p.previews.RevokeAll(); n > 0 {
		p.log.Debug("previews revoked", map[string]interface{}{"count": n})
	}
}
