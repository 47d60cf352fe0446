package reaction

//go:generate mockgen -destination=mock/mock_service.go -package=mockreaction -source=service.go

import (
	"context"
	"log"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	engineerr "github.com/KirkDiggler/reaction-engine/internal/errors"
	"github.com/KirkDiggler/reaction-engine/internal/rulebook"
	"github.com/KirkDiggler/reaction-engine/internal/uuid"
)

// Service is the eligibility side of reaction resolution: it decides which
// (combatant, reaction) pairs may respond to a trigger, pays reaction costs,
// and materializes prompts
type Service interface {
	// GetEligibleReactors returns the pairs eligible to react to the trigger
	// among the given candidates
	GetEligibleReactors(ctx context.Context, trigger *combat.TriggerContext, candidates []*combat.Combatant) ([]*EligibleReactor, error)

	// UseReaction consumes the reactor's reaction for the round
	UseReaction(ctx context.Context, reactor *combat.Combatant, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext) error

	// CreatePrompt materializes a prompt for an undecided reaction
	CreatePrompt(reactorID string, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext) *Prompt
}

type service struct {
	registry      *rulebook.Registry
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the eligibility service
type ServiceConfig struct {
	Registry      *rulebook.Registry
	UUIDGenerator uuid.Generator
}

// NewService creates the registry-backed eligibility service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Registry == nil {
		panic("reaction registry is required")
	}

	svc := &service{
		registry: cfg.Registry,
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// GetEligibleReactors returns every (combatant, reaction) pair whose
// definition responds to this trigger type. A combatant never reacts to its
// own trigger and must still have its reaction available.
func (s *service) GetEligibleReactors(ctx context.Context, trigger *combat.TriggerContext, candidates []*combat.Combatant) ([]*EligibleReactor, error) {
	if trigger == nil {
		return nil, engineerr.InvalidArgument("trigger cannot be nil")
	}

	var eligible []*EligibleReactor
	for _, candidate := range candidates {
		if candidate == nil || !candidate.CanReact() {
			continue
		}
		if candidate.ID == trigger.TriggerSourceID {
			continue
		}

		for _, reactionID := range candidate.Reactions {
			def, exists := s.registry.Get(reactionID)
			if !exists {
				log.Printf("ReactionService: combatant %s references unknown reaction %q", candidate.ID, reactionID)
				continue
			}
			if !def.AppliesTo(trigger.Type) {
				continue
			}
			eligible = append(eligible, &EligibleReactor{
				CombatantID: candidate.ID,
				Reaction:    def,
			})
		}
	}

	return eligible, nil
}

// UseReaction spends the reactor's reaction for the round
func (s *service) UseReaction(ctx context.Context, reactor *combat.Combatant, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext) error {
	if reactor == nil {
		return engineerr.InvalidArgument("reactor cannot be nil")
	}

	if !reactor.SpendReaction() {
		return engineerr.InvalidArgumentf("combatant %s has already used its reaction", reactor.ID)
	}

	log.Printf("ReactionService: %s spends reaction %s against %s", reactor.ID, reaction.ID, trigger.TriggerSourceID)
	return nil
}

// CreatePrompt materializes a prompt object for later resolution
func (s *service) CreatePrompt(reactorID string, reaction *combat.ReactionDefinition, trigger *combat.TriggerContext) *Prompt {
	return &Prompt{
		ID:        s.uuidGenerator.New(),
		ReactorID: reactorID,
		Reaction:  reaction,
		Trigger:   trigger,
	}
}
