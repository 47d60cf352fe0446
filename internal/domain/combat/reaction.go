package combat

import "strings"

// ReactionAIPolicy controls how a non-player combatant decides whether to
// spend its reaction
type ReactionAIPolicy string

const (
	AIPolicyAlways          ReactionAIPolicy = "always"
	AIPolicyNever           ReactionAIPolicy = "never"
	AIPolicyDamageThreshold ReactionAIPolicy = "damage_threshold"
	AIPolicyPriorityTargets ReactionAIPolicy = "priority_targets"
	AIPolicyRandom          ReactionAIPolicy = "random"
)

// PlayerReactionPolicy controls how a player-controlled combatant's reaction
// decisions are made when no human answer is available
type PlayerReactionPolicy string

const (
	PolicyAlwaysAsk PlayerReactionPolicy = "always_ask"
	PolicyAlwaysUse PlayerReactionPolicy = "always_use"
	PolicyNeverUse  PlayerReactionPolicy = "never_use"
)

// Damage tags recognized on fallback reactions
const (
	TagDamageNone   = "damage:none"
	TagDamageZero   = "damage:zero"
	TagNegateDamage = "negate_damage"
	TagDamageHalf   = "damage:half"
)

// ReactionDefinition is the static definition of a reaction. Definitions are
// data; the resolver reads them and never mutates them.
type ReactionDefinition struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Priority int    `json:"priority"` // lower resolves first

	// ActionID links the reaction to an ability whose own execution handles
	// cancellation and modifiers. Empty means a fallback reaction whose
	// effect is derived directly from CanCancel/CanModify and Tags.
	ActionID string `json:"action_id,omitempty"`

	CanCancel bool             `json:"can_cancel"`
	CanModify bool             `json:"can_modify"`
	AIPolicy  ReactionAIPolicy `json:"ai_policy"`

	// TriggerTypes lists the events this reaction can respond to
	TriggerTypes []TriggerType `json:"trigger_types"`

	Tags []string `json:"tags,omitempty"`
}

// IsFallback reports whether the reaction has no linked ability
func (r *ReactionDefinition) IsFallback() bool {
	return r.ActionID == ""
}

// AppliesTo reports whether the reaction responds to the given trigger type
func (r *ReactionDefinition) AppliesTo(triggerType TriggerType) bool {
	for _, t := range r.TriggerTypes {
		if t == triggerType {
			return true
		}
	}
	return false
}

// HasTag reports whether the reaction carries the given tag (case-insensitive)
func (r *ReactionDefinition) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// DamageMultiplier derives the damage multiplier a fallback reaction applies
// from its tag set. Reactions with no damage tag leave damage unchanged.
func (r *ReactionDefinition) DamageMultiplier() float64 {
	switch {
	case r.HasTag(TagDamageNone), r.HasTag(TagDamageZero), r.HasTag(TagNegateDamage):
		return 0
	case r.HasTag(TagDamageHalf):
		return 0.5
	default:
		return 1
	}
}
