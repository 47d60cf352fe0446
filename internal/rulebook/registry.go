package rulebook

import (
	"strings"
	"sync"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// Registry manages reaction definitions by ID (case-insensitive)
type Registry struct {
	mu          sync.RWMutex
	definitions map[string]*combat.ReactionDefinition
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		definitions: make(map[string]*combat.ReactionDefinition),
	}
}

// NewStandardRegistry creates a registry preloaded with the standard reactions
func NewStandardRegistry() *Registry {
	registry := NewRegistry()
	for _, def := range StandardReactions() {
		registry.Register(def)
	}
	return registry
}

// Register adds a definition to the registry
func (r *Registry) Register(def *combat.ReactionDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.definitions[strings.ToLower(def.ID)] = def
}

// Get retrieves a definition by ID
func (r *Registry) Get(id string) (*combat.ReactionDefinition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	def, exists := r.definitions[strings.ToLower(id)]
	return def, exists
}

// All returns every registered definition
func (r *Registry) All() []*combat.ReactionDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]*combat.ReactionDefinition, 0, len(r.definitions))
	for _, def := range r.definitions {
		defs = append(defs, def)
	}
	return defs
}
