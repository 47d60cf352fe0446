package reaction

import (
	"context"
	"log"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

// ResolverListener adapts a Resolver to the trigger bus so game systems can
// raise triggers without holding a resolver reference
type ResolverListener struct {
	resolver *Resolver
	opts     *ResolveOptions
	priority int

	// OnResult receives every resolution outcome when set
	OnResult func(result *Result)
}

// NewResolverListener creates a bus listener around the resolver
func NewResolverListener(resolver *Resolver, opts *ResolveOptions) *ResolverListener {
	return &ResolverListener{
		resolver: resolver,
		opts:     opts,
	}
}

// HandleTrigger resolves the trigger against the resolver's candidate source
func (l *ResolverListener) HandleTrigger(trigger *combat.TriggerContext) error {
	result, err := l.resolver.ResolveTrigger(context.Background(), trigger, nil, l.opts)
	if err != nil {
		return err
	}

	if len(result.PendingPrompts) > 0 {
		log.Printf("ResolverListener: %d reaction prompts pending for trigger %s",
			len(result.PendingPrompts), trigger.Type)
	}
	if l.OnResult != nil {
		l.OnResult(result)
	}
	return nil
}

// Priority places reaction resolution ahead of ordinary trigger listeners
func (l *ResolverListener) Priority() int { return l.priority }

// ID identifies the listener on the bus
func (l *ResolverListener) ID() string { return "reaction-resolver" }
