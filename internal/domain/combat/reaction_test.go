package combat_test

import (
	"testing"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	"github.com/stretchr/testify/assert"
)

func TestReactionDefinition_DamageMultiplier(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want float64
	}{
		{name: "no damage tag", tags: []string{"melee"}, want: 1},
		{name: "damage none", tags: []string{combat.TagDamageNone}, want: 0},
		{name: "damage zero", tags: []string{combat.TagDamageZero}, want: 0},
		{name: "negate damage", tags: []string{combat.TagNegateDamage}, want: 0},
		{name: "damage half", tags: []string{combat.TagDamageHalf}, want: 0.5},
		{name: "negate wins over half", tags: []string{combat.TagDamageHalf, combat.TagNegateDamage}, want: 0},
		{name: "case insensitive", tags: []string{"DAMAGE:HALF"}, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := &combat.ReactionDefinition{ID: "test", Tags: tt.tags}
			assert.Equal(t, tt.want, def.DamageMultiplier())
		})
	}
}

func TestReactionDefinition_AppliesTo(t *testing.T) {
	def := &combat.ReactionDefinition{
		ID:           "opportunity-attack",
		TriggerTypes: []combat.TriggerType{combat.TriggerEnemyLeavesReach},
	}

	assert.True(t, def.AppliesTo(combat.TriggerEnemyLeavesReach))
	assert.False(t, def.AppliesTo(combat.TriggerYouAreHit))
}

func TestReactionDefinition_IsFallback(t *testing.T) {
	assert.True(t, (&combat.ReactionDefinition{ID: "dodge"}).IsFallback())
	assert.False(t, (&combat.ReactionDefinition{ID: "counterspell", ActionID: "counterspell-cast"}).IsFallback())
}

func TestTriggerContext_CancelIsMonotonic(t *testing.T) {
	tc := combat.NewTriggerContext(combat.TriggerYouAreAttacked, "goblin-1", "fighter-1")
	tc.IsCancellable = true

	assert.False(t, tc.WasCancelled)
	tc.Cancel()
	assert.True(t, tc.WasCancelled)
	tc.Cancel()
	assert.True(t, tc.WasCancelled)
}

func TestTriggerContext_DataBool(t *testing.T) {
	tc := combat.NewTriggerContext(combat.TriggerYouAreAttacked, "goblin-1", "fighter-1")

	assert.False(t, tc.DataBool(combat.DataKeyPriorityTarget))

	tc.Data[combat.DataKeyPriorityTarget] = true
	assert.True(t, tc.DataBool(combat.DataKeyPriorityTarget))

	tc.Data[combat.DataKeyPriorityTarget] = "yes"
	assert.False(t, tc.DataBool(combat.DataKeyPriorityTarget))

	tc.Data = nil
	assert.False(t, tc.DataBool(combat.DataKeyPriorityTarget))
}

func TestCombatant_ReactionEconomy(t *testing.T) {
	c := &combat.Combatant{ID: "fighter-1", Type: combat.CombatantTypePlayer, CurrentHP: 10, MaxHP: 10}

	assert.True(t, c.IsPlayerControlled())
	assert.True(t, c.CanReact())

	assert.True(t, c.SpendReaction())
	assert.False(t, c.CanReact())
	assert.False(t, c.SpendReaction())

	c.ResetReaction()
	assert.True(t, c.CanReact())

	c.CurrentHP = 0
	assert.False(t, c.CanReact())
}
