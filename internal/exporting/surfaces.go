package exporting

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// Registry holds rendered documents addressable by surface ID. The exporter
// locates its input here; asking for an unknown ID is the surface-not-found
// failure mode.
type Registry struct {
	mu       sync.RWMutex
	surfaces map[string]*rendering.Document
}

// NewRegistry creates an empty surface registry.
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[string]*rendering.Document)}
}

// Register stores a rendered document and returns its surface ID.
func (r *Registry) Register(doc *rendering.Document) string {
	id := uuid.New().String()
	r.mu.Lock()
	r.surfaces[id] = doc
	r.mu.Unlock()
	return id
}

// Lookup returns the document for a surface ID, if it exists.
func (r *Registry) Lookup(id string) (*rendering.Document, bool) {
	r.mu.RLock()
	doc, ok := r.surfaces[id]
	r.mu.RUnlock()
	return doc, ok
}
