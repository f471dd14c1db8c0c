package export

import (
	"sync"

	"github.com/kishankathi24/SpeedyBill/internal/invoice/domain"
	"github.com/kishankathi24/SpeedyBill/internal/preview"
	"github.com/kishankathi24/SpeedyBill/internal/render"
)

// Canonical maintains the off-screen, always-scale-1 rendering of the
// invoice: the single source of truth for export and print. It re-renders on
// every invoice mutation and is never fitted to a viewport.
type Canonical struct {
	mu  sync.Mutex
	doc *render.Document

	session  domain.Session
	renderer *render.Renderer

	mountOnce   sync.Once
	releaseOnce sync.Once
	cancelWatch func()
	done        chan struct{}
}

func NewCanonical(session domain.Session, renderer *render.Renderer) *Canonical {
	return &Canonical{session: session, renderer: renderer}
}

// Mount renders the current invoice and starts tracking mutations.
func (c *Canonical) Mount() {
	c.mountOnce.Do(func() {
		revisions, cancel := c.session.Watch()
		c.cancelWatch = cancel
		c.done = make(chan struct{})

		c.refresh()
		go func() {
			defer close(c.done)
			for range revisions {
				c.refresh()
			}
		}()
	})
}

// Unmount stops tracking and drops the document. Idempotent.
func (c *Canonical) Unmount() {
	c.releaseOnce.Do(func() {
		if c.cancelWatch != nil {
			c.cancelWatch()
			<-c.done
		}
		c.mu.Lock()
		c.doc = nil
		c.mu.Unlock()
	})
}

// Document returns the current scale-1 document, or nil before Mount.
func (c *Canonical) Document() *render.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.doc
}

// Size reports the document's natural dimensions (zero before Mount).
func (c *Canonical) Size() preview.Size {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.doc == nil {
		return preview.Size{}
	}
	w, h := c.doc.Size()
	return preview.Size{W: w, H: h}
}

func (c *Canonical) refresh() {
	inv, _ := c.session.Current()
	doc := c.renderer.Render(inv)
	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()
}
