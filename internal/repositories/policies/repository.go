package policies

//go:generate mockgen -destination=mock/mock_repository.go -package=mockpolicies -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// Repository stores player reaction policies: a per-combatant default plus
// per-(combatant, reaction) overrides. Identifiers are matched
// case-insensitively by every implementation.
type Repository interface {
	// SetDefault stores the combatant's default policy
	SetDefault(ctx context.Context, combatantID string, policy combat.PlayerReactionPolicy) error

	// GetDefault retrieves the combatant's default policy if one is stored
	GetDefault(ctx context.Context, combatantID string) (combat.PlayerReactionPolicy, bool, error)

	// SetOverride stores a policy for one (combatant, reaction) pair
	SetOverride(ctx context.Context, combatantID, reactionID string, policy combat.PlayerReactionPolicy) error

	// GetOverride retrieves the policy for one (combatant, reaction) pair if stored
	GetOverride(ctx context.Context, combatantID, reactionID string) (combat.PlayerReactionPolicy, bool, error)

	// ClearCombatant removes the combatant's default and every override in
	// one atomic operation
	ClearCombatant(ctx context.Context, combatantID string) error
}
