package reaction_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	mockpolicies "github.com/KirkDiggler/reaction-engine/internal/repositories/policies/mock"
	"github.com/KirkDiggler/reaction-engine/internal/services/reaction"
)

func TestPolicyStore_Precedence(t *testing.T) {
	ctx := context.Background()
	store := reaction.NewPolicyStore(nil)

	// Global default applies when nothing is stored
	assert.Equal(t, combat.PolicyAlwaysAsk, store.GetPlayerReactionPolicy(ctx, "fighter-1", "shield"))

	// Combatant default
	require.NoError(t, store.SetCombatantPolicy(ctx, "fighter-1", combat.PolicyNeverUse))
	assert.Equal(t, combat.PolicyNeverUse, store.GetPlayerReactionPolicy(ctx, "fighter-1", "shield"))

	// Per-reaction override wins over the default
	require.NoError(t, store.SetReactionPolicy(ctx, "fighter-1", "shield", combat.PolicyAlwaysUse))
	assert.Equal(t, combat.PolicyAlwaysUse, store.GetPlayerReactionPolicy(ctx, "fighter-1", "shield"))
	assert.Equal(t, combat.PolicyNeverUse, store.GetPlayerReactionPolicy(ctx, "fighter-1", "riposte"))
}

func TestPolicyStore_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := reaction.NewPolicyStore(nil)

	require.NoError(t, store.SetReactionPolicy(ctx, "Fighter-1", "Shield", combat.PolicyAlwaysUse))
	assert.Equal(t, combat.PolicyAlwaysUse, store.GetPlayerReactionPolicy(ctx, "FIGHTER-1", "SHIELD"))
}

func TestPolicyStore_ClearCombatantPolicies(t *testing.T) {
	ctx := context.Background()
	store := reaction.NewPolicyStore(nil)

	require.NoError(t, store.SetCombatantPolicy(ctx, "fighter-1", combat.PolicyNeverUse))
	require.NoError(t, store.SetReactionPolicy(ctx, "fighter-1", "shield", combat.PolicyAlwaysUse))
	require.NoError(t, store.SetReactionPolicy(ctx, "fighter-1", "riposte", combat.PolicyNeverUse))

	require.NoError(t, store.ClearCombatantPolicies(ctx, "fighter-1"))

	// Everything falls back to the global default
	assert.Equal(t, combat.PolicyAlwaysAsk, store.GetPlayerReactionPolicy(ctx, "fighter-1", "shield"))
	assert.Equal(t, combat.PolicyAlwaysAsk, store.GetPlayerReactionPolicy(ctx, "fighter-1", "riposte"))
	assert.Equal(t, combat.PolicyAlwaysAsk, store.GetPlayerReactionPolicy(ctx, "fighter-1", "anything"))
}

func TestPolicyStore_StorageErrorsDegradeToAlwaysAsk(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	repo := mockpolicies.NewMockRepository(ctrl)
	repo.EXPECT().GetOverride(gomock.Any(), "fighter-1", "shield").
		Return(combat.PlayerReactionPolicy(""), false, errors.New("redis: connection refused"))
	repo.EXPECT().GetDefault(gomock.Any(), "fighter-1").
		Return(combat.PlayerReactionPolicy(""), false, errors.New("redis: connection refused"))

	store := reaction.NewPolicyStore(repo)
	assert.Equal(t, combat.PolicyAlwaysAsk, store.GetPlayerReactionPolicy(ctx, "fighter-1", "shield"))
}

func TestPolicyStore_RejectsUnknownPolicy(t *testing.T) {
	ctx := context.Background()
	store := reaction.NewPolicyStore(nil)

	assert.Error(t, store.SetCombatantPolicy(ctx, "fighter-1", combat.PlayerReactionPolicy("sometimes")))
	assert.Error(t, store.SetReactionPolicy(ctx, "fighter-1", "shield", combat.PlayerReactionPolicy("")))
}
