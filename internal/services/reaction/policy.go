package reaction

import (
	"context"
	"log"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	engineerr "github.com/KirkDiggler/reaction-engine/internal/errors"
	"github.com/KirkDiggler/reaction-engine/internal/repositories/policies"
)

// PolicyStore resolves the effective player reaction policy with the
// precedence: per-reaction override > per-combatant default > AlwaysAsk.
type PolicyStore struct {
	repository policies.Repository
}

// NewPolicyStore creates a policy store over the given repository. A nil
// repository falls back to the in-memory implementation.
func NewPolicyStore(repository policies.Repository) *PolicyStore {
	if repository == nil {
		repository = policies.NewInMemoryRepository()
	}
	return &PolicyStore{repository: repository}
}

// SetCombatantPolicy stores the combatant's default policy
func (p *PolicyStore) SetCombatantPolicy(ctx context.Context, combatantID string, policy combat.PlayerReactionPolicy) error {
	if err := validatePolicy(policy); err != nil {
		return err
	}
	return p.repository.SetDefault(ctx, combatantID, policy)
}

// SetReactionPolicy stores an override for one (combatant, reaction) pair
func (p *PolicyStore) SetReactionPolicy(ctx context.Context, combatantID, reactionID string, policy combat.PlayerReactionPolicy) error {
	if err := validatePolicy(policy); err != nil {
		return err
	}
	return p.repository.SetOverride(ctx, combatantID, reactionID, policy)
}

// GetPlayerReactionPolicy resolves the effective policy for a pair. Storage
// errors degrade to AlwaysAsk; a missed policy lookup must never abort a
// combat turn.
func (p *PolicyStore) GetPlayerReactionPolicy(ctx context.Context, combatantID, reactionID string) combat.PlayerReactionPolicy {
	policy, found, err := p.repository.GetOverride(ctx, combatantID, reactionID)
	if err != nil {
		log.Printf("PolicyStore: override lookup failed for %s/%s: %v", combatantID, reactionID, err)
	} else if found {
		return policy
	}

	policy, found, err = p.repository.GetDefault(ctx, combatantID)
	if err != nil {
		log.Printf("PolicyStore: default lookup failed for %s: %v", combatantID, err)
	} else if found {
		return policy
	}

	return combat.PolicyAlwaysAsk
}

// ClearCombatantPolicies removes the combatant's default and every override
func (p *PolicyStore) ClearCombatantPolicies(ctx context.Context, combatantID string) error {
	return p.repository.ClearCombatant(ctx, combatantID)
}

func validatePolicy(policy combat.PlayerReactionPolicy) error {
	switch policy {
	case combat.PolicyAlwaysAsk, combat.PolicyAlwaysUse, combat.PolicyNeverUse:
		return nil
	default:
		return engineerr.InvalidArgumentf("unknown reaction policy: %q", policy)
	}
}
