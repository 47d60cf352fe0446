package combat

// TriggerType identifies the kind of combat event that may allow reactions
type TriggerType string

const (
	TriggerEnemyLeavesReach TriggerType = "enemy_leaves_reach"
	TriggerAllyTakesDamage  TriggerType = "ally_takes_damage"
	TriggerYouAreAttacked   TriggerType = "you_are_attacked"
	TriggerYouAreHit        TriggerType = "you_are_hit"
	TriggerSpellCastNearby  TriggerType = "spell_cast_nearby"
	TriggerEnemyEntersReach TriggerType = "enemy_enters_reach"
	TriggerYouTakeDamage    TriggerType = "you_take_damage"
	TriggerAllyDowned       TriggerType = "ally_downed"
	TriggerCustom           TriggerType = "custom"
)

// Well-known keys for TriggerContext.Data
const (
	DataKeyPriorityTarget = "priorityTarget"
)

// Position is a point on the battle map
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TriggerContext describes one triggering combat event. It lives for the
// duration of a single resolution and is not shared across resolutions.
type TriggerContext struct {
	Type            TriggerType    `json:"type"`
	TriggerSourceID string         `json:"trigger_source_id"` // combatant that caused the event
	AffectedID      string         `json:"affected_id"`       // combatant the event happens to
	AbilityID       string         `json:"ability_id,omitempty"`
	Value           int            `json:"value"` // numeric magnitude, e.g. damage amount
	Position        Position       `json:"position"`
	IsCancellable   bool           `json:"is_cancellable"`
	WasCancelled    bool           `json:"was_cancelled"`
	Data            map[string]any `json:"data,omitempty"`
}

// NewTriggerContext creates a trigger context for one event
func NewTriggerContext(triggerType TriggerType, sourceID, affectedID string) *TriggerContext {
	return &TriggerContext{
		Type:            triggerType,
		TriggerSourceID: sourceID,
		AffectedID:      affectedID,
		Data:            make(map[string]any),
	}
}

// Cancel marks the trigger as cancelled. The transition is one-way; a
// cancelled trigger never becomes uncancelled.
func (tc *TriggerContext) Cancel() {
	tc.WasCancelled = true
}

// DataBool reads a boolean flag from the data bag. Missing or non-boolean
// values read as false.
func (tc *TriggerContext) DataBool(key string) bool {
	if tc.Data == nil {
		return false
	}
	v, ok := tc.Data[key].(bool)
	return ok && v
}
