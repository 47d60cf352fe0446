package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/reaction-engine/internal/config"
	"github.com/KirkDiggler/reaction-engine/internal/dice"
	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	"github.com/KirkDiggler/reaction-engine/internal/repositories/policies"
	"github.com/KirkDiggler/reaction-engine/internal/rulebook"
	"github.com/KirkDiggler/reaction-engine/internal/services/reaction"
)

// scenario is one canned skirmish trigger run through its own resolver
type scenario struct {
	name       string
	combatants []*combat.Combatant
	trigger    *combat.TriggerContext
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	policyRepo := buildPolicyRepository(cfg)
	registry := rulebook.NewStandardRegistry()

	scenarios := []scenario{
		opportunityAttackScenario(),
		shieldScenario(),
		counterspellScenario(),
	}

	// Each scenario gets its own resolver; resolution itself is
	// single-threaded, the scenarios are independent.
	g, ctx := errgroup.WithContext(context.Background())
	for _, sc := range scenarios {
		sc := sc
		g.Go(func() error {
			resolver := reaction.NewResolver(&reaction.ResolverConfig{
				Eligibility: reaction.NewService(&reaction.ServiceConfig{Registry: registry}),
				Policies:    reaction.NewPolicyStore(policyRepo),
				DiceRoller:  dice.NewSeededRoller(cfg.Engine.RNGSeed),
				StackDepth:  cfg.Engine.StackDepth,
			})

			result, err := resolver.ResolveTrigger(ctx, sc.trigger, sc.combatants, &reaction.ResolveOptions{
				AllowPromptDeferral: true,
			})
			if err != nil {
				return err
			}

			report(sc.name, result)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}
}

func buildPolicyRepository(cfg *config.Config) policies.Repository {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("No REDIS_URL set, using in-memory policy store")
		return policies.NewInMemoryRepository()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory policy store")
		return policies.NewInMemoryRepository()
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis unavailable: %v", err)
		log.Println("Falling back to in-memory policy store")
		return policies.NewInMemoryRepository()
	}

	log.Printf("Using Redis policy store at %s", opts.Addr)
	return policies.NewRedisRepository(&policies.RedisRepoConfig{Client: client})
}

func report(name string, result *reaction.Result) {
	log.Printf("[%s] eligible=%d cancelled=%v modifier=%.2f prompts=%d",
		name, len(result.EligibleReactors), result.TriggerCancelled,
		result.DamageModifier, len(result.PendingPrompts))
	for _, resolved := range result.ResolvedReactions {
		switch {
		case resolved.WasDeferred:
			log.Printf("[%s]   %s deferred %s (depth %d)", name, resolved.ReactorID, resolved.ReactionID, resolved.StackDepth)
		case resolved.WasUsed:
			log.Printf("[%s]   %s used %s (modifier %.2f, cancelled=%v, depth %d)",
				name, resolved.ReactorID, resolved.ReactionID, resolved.DamageModifier, resolved.CancelledTrigger, resolved.StackDepth)
		default:
			log.Printf("[%s]   %s declined %s", name, resolved.ReactorID, resolved.ReactionID)
		}
	}
}

func opportunityAttackScenario() scenario {
	fighter := &combat.Combatant{
		ID: "ogre-1", Name: "Ogre", Type: combat.CombatantTypeMonster,
		CurrentHP: 59, MaxHP: 59,
		Reactions: []string{"opportunity-attack"},
	}
	rogue := &combat.Combatant{
		ID: "rogue-1", Name: "Shade", Type: combat.CombatantTypePlayer,
		CurrentHP: 27, MaxHP: 27,
	}

	trigger := combat.NewTriggerContext(combat.TriggerEnemyLeavesReach, rogue.ID, fighter.ID)
	return scenario{
		name:       "opportunity-attack",
		combatants: []*combat.Combatant{fighter, rogue},
		trigger:    trigger,
	}
}

func shieldScenario() scenario {
	wizard := &combat.Combatant{
		ID: "wizard-1", Name: "Ezren", Type: combat.CombatantTypeMonster,
		CurrentHP: 22, MaxHP: 22,
		Reactions: []string{"shield"},
	}

	trigger := combat.NewTriggerContext(combat.TriggerYouAreHit, "goblin-1", wizard.ID)
	trigger.IsCancellable = true
	trigger.Value = 11
	return scenario{
		name:       "shield",
		combatants: []*combat.Combatant{wizard},
		trigger:    trigger,
	}
}

func counterspellScenario() scenario {
	sorcerer := &combat.Combatant{
		ID: "sorcerer-1", Name: "Vex", Type: combat.CombatantTypeMonster,
		CurrentHP: 30, MaxHP: 30,
		Reactions: []string{"counterspell"},
	}
	cleric := &combat.Combatant{
		ID: "cleric-1", Name: "Kyra", Type: combat.CombatantTypePlayer,
		CurrentHP: 34, MaxHP: 34,
		Reactions: []string{"protective-ward"},
	}

	trigger := combat.NewTriggerContext(combat.TriggerSpellCastNearby, "lich-1", sorcerer.ID)
	trigger.IsCancellable = true
	trigger.AbilityID = "finger-of-death"
	trigger.Data[combat.DataKeyPriorityTarget] = true
	return scenario{
		name:       "counterspell",
		combatants: []*combat.Combatant{sorcerer, cleric},
		trigger:    trigger,
	}
}
