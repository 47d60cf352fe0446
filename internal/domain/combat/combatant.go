package combat

// CombatantType represents the type of combatant
type CombatantType string

const (
	CombatantTypePlayer  CombatantType = "player"
	CombatantTypeMonster CombatantType = "monster"
	CombatantTypeNPC     CombatantType = "npc"
)

// Combatant is a participant in combat. The reaction engine reads combatants
// and only writes ReactionUsed when a reaction's cost is paid.
type Combatant struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Type      CombatantType `json:"type"`
	CurrentHP int           `json:"current_hp"`
	MaxHP     int           `json:"max_hp"`
	Position  Position      `json:"position"`

	// ReactionUsed tracks the one-reaction-per-round action economy
	ReactionUsed bool `json:"reaction_used"`

	// Reactions lists the reaction definition IDs this combatant knows
	Reactions []string `json:"reactions,omitempty"`
}

// IsPlayerControlled reports whether a human makes this combatant's decisions
func (c *Combatant) IsPlayerControlled() bool {
	return c.Type == CombatantTypePlayer
}

// IsAlive returns true if the combatant has more than 0 HP
func (c *Combatant) IsAlive() bool {
	return c.CurrentHP > 0
}

// CanReact reports whether the combatant still has its reaction available
func (c *Combatant) CanReact() bool {
	return c.IsAlive() && !c.ReactionUsed
}

// SpendReaction consumes the combatant's reaction for the round. Returns
// false if it was already spent.
func (c *Combatant) SpendReaction() bool {
	if c.ReactionUsed {
		return false
	}
	c.ReactionUsed = true
	return true
}

// ResetReaction restores the reaction at the start of the combatant's round
func (c *Combatant) ResetReaction() {
	c.ReactionUsed = false
}
