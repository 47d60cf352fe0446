package reaction

import (
	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// ResolveOptions carries per-call options for ResolveTrigger
type ResolveOptions struct {
	// AllowPromptDeferral lets undecidable player reactions come back as
	// pending prompts instead of being declined
	AllowPromptDeferral bool

	// ActionLabel names the root stack frame; defaults to "trigger:{type}"
	ActionLabel string
}

// EligibleReactor is one (combatant, reaction) pair allowed to respond to a
// trigger
type EligibleReactor struct {
	CombatantID string
	Reaction    *combat.ReactionDefinition
}

// Prompt is a reaction decision handed to the caller for out-of-band (human)
// resolution. It bundles everything a follow-up call needs to replay the
// decision in the right context.
type Prompt struct {
	ID        string
	ReactorID string
	Reaction  *combat.ReactionDefinition
	Trigger   *combat.TriggerContext
}

// ResolvedReaction records the outcome for one eligible reactor
type ResolvedReaction struct {
	ReactorID        string
	ReactionID       string
	WasUsed          bool
	WasDeferred      bool
	CancelledTrigger bool
	DamageModifier   float64
	StackDepth       int
}

// Result is the outcome of one ResolveTrigger call
type Result struct {
	Context           *combat.TriggerContext
	EligibleReactors  []*EligibleReactor
	ResolvedReactions []*ResolvedReaction

	// DamageModifier is the product of every applied modifier, starting at 1
	DamageModifier float64

	// TriggerCancelled is set when an accepted reaction cancelled the trigger
	TriggerCancelled bool

	// PendingPrompts lists decisions the caller must resolve later
	PendingPrompts []*Prompt
}

// decisionOutcome is the three-variant verdict of the decision protocol.
// Every reactor/reaction pair resolves to exactly one of these.
type decisionOutcome int

const (
	outcomeDeclined decisionOutcome = iota
	outcomeAccepted
	outcomeDeferred
)

type decision struct {
	outcome decisionOutcome
	prompt  *Prompt
}

// PromptDecisionProvider supplies a synchronous human decision for a prompt.
// A nil verdict means "ask me later".
type PromptDecisionProvider func(prompt *Prompt) *bool

// AIDecisionProvider overrides the built-in AI policy table when set
type AIDecisionProvider func(prompt *Prompt) bool

// CandidateSource supplies the full combatant roster when the caller does
// not pass an explicit candidate list
type CandidateSource func() []*combat.Combatant
