package reaction

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/KirkDiggler/reaction-engine/internal/dice"
	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	engineerr "github.com/KirkDiggler/reaction-engine/internal/errors"
)

// DefaultRNGSeed seeds the Random AI policy roller when the host does not
// supply one, keeping combat-log replays reproducible
const DefaultRNGSeed = 1

// Resolver decides, for one trigger event, which eligible combatants react,
// in what order, and with what effect on the trigger. It owns the resolution
// stack that tracks nested interrupts.
type Resolver struct {
	eligibility Service
	policies    *PolicyStore
	diceRoller  dice.Roller
	stack       *combat.ResolutionStack

	promptDecision  PromptDecisionProvider
	aiDecision      AIDecisionProvider
	candidateSource CandidateSource
}

// ResolverConfig holds configuration for the resolver
type ResolverConfig struct {
	Eligibility Service
	Policies    *PolicyStore
	DiceRoller  dice.Roller
	StackDepth  int
}

// NewResolver creates a new reaction resolver
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg.Eligibility == nil {
		panic("eligibility service is required")
	}

	r := &Resolver{
		eligibility: cfg.Eligibility,
		policies:    cfg.Policies,
		diceRoller:  cfg.DiceRoller,
		stack:       combat.NewResolutionStack(cfg.StackDepth),
	}

	if r.policies == nil {
		r.policies = NewPolicyStore(nil)
	}
	if r.diceRoller == nil {
		r.diceRoller = dice.NewSeededRoller(DefaultRNGSeed)
	}

	return r
}

// Policies exposes the policy store so hosts can manage player defaults
func (r *Resolver) Policies() *PolicyStore {
	return r.policies
}

// Stack exposes the resolution stack for diagnostics
func (r *Resolver) Stack() *combat.ResolutionStack {
	return r.stack
}

// SetPromptDecisionProvider installs a synchronous human decision source
func (r *Resolver) SetPromptDecisionProvider(provider PromptDecisionProvider) {
	r.promptDecision = provider
}

// SetAIDecisionProvider installs an AI decision source that overrides the
// built-in policy table
func (r *Resolver) SetAIDecisionProvider(provider AIDecisionProvider) {
	r.aiDecision = provider
}

// SetCandidateSource installs a roster callback used when ResolveTrigger is
// called without an explicit candidate list
func (r *Resolver) SetCandidateSource(source CandidateSource) {
	r.candidateSource = source
}

// ResolveTrigger offers the trigger to every eligible reactor in
// deterministic order and returns the aggregated outcome. Missing inputs
// degrade to an empty result; a missed reaction never aborts a combat turn.
func (r *Resolver) ResolveTrigger(ctx context.Context, trigger *combat.TriggerContext, candidates []*combat.Combatant, opts *ResolveOptions) (*Result, error) {
	result := &Result{
		Context:        trigger,
		DamageModifier: 1.0,
	}

	if trigger == nil {
		return result, nil
	}
	if opts == nil {
		opts = &ResolveOptions{}
	}

	if len(candidates) == 0 && r.candidateSource != nil {
		candidates = r.candidateSource()
	}
	if len(candidates) == 0 {
		return result, nil
	}

	eligible, err := r.eligibility.GetEligibleReactors(ctx, trigger, candidates)
	if err != nil {
		return result, engineerr.Wrap(err, "failed to get eligible reactors")
	}

	sortEligibleReactors(eligible)
	result.EligibleReactors = eligible
	if len(eligible) == 0 {
		return result, nil
	}

	byID := make(map[string]*combat.Combatant, len(candidates))
	for _, candidate := range candidates {
		if candidate != nil {
			byID[candidate.ID] = candidate
		}
	}

	label := opts.ActionLabel
	if label == "" {
		label = "trigger:" + string(trigger.Type)
	}

	root := r.stack.Push(label, trigger.TriggerSourceID, trigger.AffectedID)
	if root != nil {
		root.TriggerContext = trigger
		// The root pop must survive panics from reaction hooks; stack
		// symmetry holds however the loop below exits.
		defer r.stack.Pop()
	}

	for _, reactor := range eligible {
		combatant, exists := byID[reactor.CombatantID]
		if !exists {
			// The eligibility service referenced a reactor outside the
			// candidate set; skip it.
			log.Printf("ReactionResolver: eligible reactor %s not in candidate set", reactor.CombatantID)
			continue
		}

		verdict := r.decide(ctx, combatant, reactor.Reaction, trigger, opts)
		switch verdict.outcome {
		case outcomeDeferred:
			result.ResolvedReactions = append(result.ResolvedReactions, &ResolvedReaction{
				ReactorID:      reactor.CombatantID,
				ReactionID:     reactor.Reaction.ID,
				WasDeferred:    true,
				DamageModifier: 1.0,
				StackDepth:     r.stack.CurrentDepth(),
			})
			result.PendingPrompts = append(result.PendingPrompts, verdict.prompt)

		case outcomeDeclined:
			result.ResolvedReactions = append(result.ResolvedReactions, &ResolvedReaction{
				ReactorID:      reactor.CombatantID,
				ReactionID:     reactor.Reaction.ID,
				DamageModifier: 1.0,
				StackDepth:     r.stack.CurrentDepth(),
			})

		case outcomeAccepted:
			cancelled := r.applyReaction(ctx, combatant, reactor.Reaction, trigger, result)
			if cancelled {
				// A cancelled trigger has nothing left to react to
				if root != nil {
					root.IsCancelled = true
				}
				return result, nil
			}
		}
	}

	if result.TriggerCancelled && root != nil {
		root.IsCancelled = true
	}

	return result, nil
}

// applyReaction executes one accepted reaction inside its own stack frame and
// reports whether it cancelled the trigger
func (r *Resolver) applyReaction(ctx context.Context, reactor *combat.Combatant, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext, result *Result) bool {
	depth := r.stack.CurrentDepth()
	frame := r.stack.Push("reaction:"+reaction.ID, reactor.ID, trigger.TriggerSourceID)
	if frame != nil {
		frame.TriggerContext = trigger
		depth = frame.Depth
		defer r.stack.Pop()
	}

	if err := r.eligibility.UseReaction(ctx, reactor, reaction, trigger); err != nil {
		log.Printf("ReactionResolver: %s could not use reaction %s: %v", reactor.ID, reaction.ID, err)
		result.ResolvedReactions = append(result.ResolvedReactions, &ResolvedReaction{
			ReactorID:      reactor.ID,
			ReactionID:     reaction.ID,
			DamageModifier: 1.0,
			StackDepth:     depth,
		})
		return false
	}

	cancelled := false
	modifier := 1.0

	// Ability-linked reactions hand cancellation and modifiers to the action
	// system; only fallback reactions apply them directly here.
	if reaction.IsFallback() {
		if reaction.CanCancel && trigger.IsCancellable && !trigger.WasCancelled {
			trigger.Cancel()
			cancelled = true
		}
		if reaction.CanModify {
			modifier = reaction.DamageMultiplier()
		}
	}

	result.DamageModifier *= modifier
	if cancelled {
		result.TriggerCancelled = true
		if frame != nil {
			frame.IsCancelled = true
		}
	}

	result.ResolvedReactions = append(result.ResolvedReactions, &ResolvedReaction{
		ReactorID:        reactor.ID,
		ReactionID:       reaction.ID,
		WasUsed:          true,
		CancelledTrigger: cancelled,
		DamageModifier:   modifier,
		StackDepth:       depth,
	})

	return cancelled
}

// decide runs the three-tier decision protocol for one reactor/reaction
// pair. It always yields exactly one of accept, decline, or defer.
func (r *Resolver) decide(ctx context.Context, reactor *combat.Combatant, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext, opts *ResolveOptions) decision {
	if !reactor.IsPlayerControlled() {
		if r.aiDecision != nil {
			prompt := r.eligibility.CreatePrompt(reactor.ID, reaction, trigger)
			if r.aiDecision(prompt) {
				return decision{outcome: outcomeAccepted}
			}
			return decision{outcome: outcomeDeclined}
		}
		return r.decideAI(reactor, reaction, trigger)
	}

	switch r.policies.GetPlayerReactionPolicy(ctx, reactor.ID, reaction.ID) {
	case combat.PolicyAlwaysUse:
		return decision{outcome: outcomeAccepted}
	case combat.PolicyNeverUse:
		return decision{outcome: outcomeDeclined}
	}

	// AlwaysAsk: try a synchronous answer, then deferral, then decline
	var prompt *Prompt
	if r.promptDecision != nil {
		prompt = r.eligibility.CreatePrompt(reactor.ID, reaction, trigger)
		if verdict := r.promptDecision(prompt); verdict != nil {
			if *verdict {
				return decision{outcome: outcomeAccepted}
			}
			return decision{outcome: outcomeDeclined}
		}
	}

	if opts.AllowPromptDeferral {
		if prompt == nil {
			prompt = r.eligibility.CreatePrompt(reactor.ID, reaction, trigger)
		}
		return decision{outcome: outcomeDeferred, prompt: prompt}
	}

	return decision{outcome: outcomeDeclined}
}

// decideAI is the built-in AI policy table
func (r *Resolver) decideAI(reactor *combat.Combatant, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext) decision {
	switch reaction.AIPolicy {
	case combat.AIPolicyAlways:
		return decision{outcome: outcomeAccepted}

	case combat.AIPolicyNever:
		return decision{outcome: outcomeDeclined}

	case combat.AIPolicyDamageThreshold:
		threshold := reactor.MaxHP / 4
		if threshold < 1 {
			threshold = 1
		}
		if trigger.Value >= threshold {
			return decision{outcome: outcomeAccepted}
		}
		return decision{outcome: outcomeDeclined}

	case combat.AIPolicyPriorityTargets:
		if trigger.DataBool(combat.DataKeyPriorityTarget) {
			return decision{outcome: outcomeAccepted}
		}
		return decision{outcome: outcomeDeclined}

	case combat.AIPolicyRandom:
		roll, err := r.diceRoller.Roll(1, 2, 0)
		if err != nil {
			log.Printf("ReactionResolver: random policy roll failed: %v", err)
			return decision{outcome: outcomeDeclined}
		}
		if roll.Total == 2 {
			return decision{outcome: outcomeAccepted}
		}
		return decision{outcome: outcomeDeclined}

	default:
		return decision{outcome: outcomeDeclined}
	}
}

// sortEligibleReactors applies the deterministic tie-break: priority
// ascending, then combatant ID, then reaction ID (both ordinal). This order
// makes resolution replay-stable for identical inputs.
func sortEligibleReactors(eligible []*EligibleReactor) {
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Reaction.Priority != eligible[j].Reaction.Priority {
			return eligible[i].Reaction.Priority < eligible[j].Reaction.Priority
		}
		if c := strings.Compare(eligible[i].CombatantID, eligible[j].CombatantID); c != 0 {
			return c < 0
		}
		return strings.Compare(eligible[i].Reaction.ID, eligible[j].Reaction.ID) < 0
	})
}
