package testutils

import (
	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// CreateTestCombatant builds a combatant with sensible defaults for tests
func CreateTestCombatant(id string, combatantType combat.CombatantType, maxHP int, reactionIDs ...string) *combat.Combatant {
	return &combat.Combatant{
		ID:        id,
		Name:      id,
		Type:      combatantType,
		CurrentHP: maxHP,
		MaxHP:     maxHP,
		Reactions: reactionIDs,
	}
}

// CreateTestReaction builds a fallback reaction definition for tests
func CreateTestReaction(id string, priority int, triggerTypes ...combat.TriggerType) *combat.ReactionDefinition {
	return &combat.ReactionDefinition{
		ID:           id,
		Name:         id,
		Priority:     priority,
		AIPolicy:     combat.AIPolicyAlways,
		TriggerTypes: triggerTypes,
	}
}
