package rulebook

import (
	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// StandardReactions returns the stock reaction definitions
func StandardReactions() []*combat.ReactionDefinition {
	return []*combat.ReactionDefinition{
		{
			ID:           "opportunity-attack",
			Name:         "Opportunity Attack",
			Priority:     10,
			ActionID:     "melee-attack",
			AIPolicy:     combat.AIPolicyAlways,
			TriggerTypes: []combat.TriggerType{combat.TriggerEnemyLeavesReach},
			Tags:         []string{"melee"},
		},
		{
			ID:           "shield",
			Name:         "Shield",
			Priority:     20,
			CanCancel:    true,
			AIPolicy:     combat.AIPolicyDamageThreshold,
			TriggerTypes: []combat.TriggerType{combat.TriggerYouAreHit},
			Tags:         []string{"magic", combat.TagDamageNone},
		},
		{
			ID:           "uncanny-dodge",
			Name:         "Uncanny Dodge",
			Priority:     30,
			CanModify:    true,
			AIPolicy:     combat.AIPolicyDamageThreshold,
			TriggerTypes: []combat.TriggerType{combat.TriggerYouTakeDamage},
			Tags:         []string{combat.TagDamageHalf},
		},
		{
			ID:           "riposte",
			Name:         "Riposte",
			Priority:     40,
			ActionID:     "melee-attack",
			AIPolicy:     combat.AIPolicyRandom,
			TriggerTypes: []combat.TriggerType{combat.TriggerYouAreAttacked},
			Tags:         []string{"melee"},
		},
		{
			ID:           "counterspell",
			Name:         "Counterspell",
			Priority:     5,
			CanCancel:    true,
			AIPolicy:     combat.AIPolicyPriorityTargets,
			TriggerTypes: []combat.TriggerType{combat.TriggerSpellCastNearby},
			Tags:         []string{"magic"},
		},
		{
			ID:           "protective-ward",
			Name:         "Protective Ward",
			Priority:     25,
			CanModify:    true,
			AIPolicy:     combat.AIPolicyAlways,
			TriggerTypes: []combat.TriggerType{combat.TriggerAllyTakesDamage},
			Tags:         []string{"magic", combat.TagDamageHalf},
		},
		{
			ID:           "sentinel-strike",
			Name:         "Sentinel Strike",
			Priority:     15,
			ActionID:     "melee-attack",
			AIPolicy:     combat.AIPolicyPriorityTargets,
			TriggerTypes: []combat.TriggerType{combat.TriggerEnemyEntersReach},
			Tags:         []string{"melee"},
		},
	}
}
