package policies

import (
	"context"
	"strings"
	"sync"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// policyKey is the composite key for overrides. A struct key avoids the
// separator-collision problems of concatenated string keys.
type policyKey struct {
	combatantID string
	reactionID  string
}

type inMemoryRepository struct {
	mu        sync.RWMutex
	defaults  map[string]combat.PlayerReactionPolicy
	overrides map[policyKey]combat.PlayerReactionPolicy
}

// NewInMemoryRepository creates a new in-memory policy repository
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		defaults:  make(map[string]combat.PlayerReactionPolicy),
		overrides: make(map[policyKey]combat.PlayerReactionPolicy),
	}
}

func (r *inMemoryRepository) SetDefault(ctx context.Context, combatantID string, policy combat.PlayerReactionPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defaults[strings.ToLower(combatantID)] = policy
	return nil
}

func (r *inMemoryRepository) GetDefault(ctx context.Context, combatantID string) (combat.PlayerReactionPolicy, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, ok := r.defaults[strings.ToLower(combatantID)]
	return policy, ok, nil
}

func (r *inMemoryRepository) SetOverride(ctx context.Context, combatantID, reactionID string, policy combat.PlayerReactionPolicy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.overrides[overrideKey(combatantID, reactionID)] = policy
	return nil
}

func (r *inMemoryRepository) GetOverride(ctx context.Context, combatantID, reactionID string) (combat.PlayerReactionPolicy, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	policy, ok := r.overrides[overrideKey(combatantID, reactionID)]
	return policy, ok, nil
}

func (r *inMemoryRepository) ClearCombatant(ctx context.Context, combatantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := strings.ToLower(combatantID)
	delete(r.defaults, id)
	for key := range r.overrides {
		if key.combatantID == id {
			delete(r.overrides, key)
		}
	}
	return nil
}

func overrideKey(combatantID, reactionID string) policyKey {
	return policyKey{
		combatantID: strings.ToLower(combatantID),
		reactionID:  strings.ToLower(reactionID),
	}
}
