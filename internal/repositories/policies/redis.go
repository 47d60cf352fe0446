package policies

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
)

const (
	policyKeyPrefix = "reaction:policy:"

	// defaultField holds the combatant default inside the policy hash.
	// Reaction IDs are lowercased field names, so a bracketed sentinel
	// cannot collide with one.
	defaultField = "[default]"
)

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using one Redis hash per combatant.
// Keeping default and overrides in a single hash makes ClearCombatant a
// single atomic DEL.
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed policy repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg.Client == nil {
		panic("redis client is required")
	}

	return &redisRepository{
		client: cfg.Client,
	}
}

func (r *redisRepository) SetDefault(ctx context.Context, combatantID string, policy combat.PlayerReactionPolicy) error {
	if err := r.client.HSet(ctx, hashKey(combatantID), defaultField, string(policy)).Err(); err != nil {
		return fmt.Errorf("failed to set default policy: %w", err)
	}
	return nil
}

func (r *redisRepository) GetDefault(ctx context.Context, combatantID string) (combat.PlayerReactionPolicy, bool, error) {
	return r.getField(ctx, hashKey(combatantID), defaultField)
}

func (r *redisRepository) SetOverride(ctx context.Context, combatantID, reactionID string, policy combat.PlayerReactionPolicy) error {
	if err := r.client.HSet(ctx, hashKey(combatantID), strings.ToLower(reactionID), string(policy)).Err(); err != nil {
		return fmt.Errorf("failed to set policy override: %w", err)
	}
	return nil
}

func (r *redisRepository) GetOverride(ctx context.Context, combatantID, reactionID string) (combat.PlayerReactionPolicy, bool, error) {
	return r.getField(ctx, hashKey(combatantID), strings.ToLower(reactionID))
}

func (r *redisRepository) ClearCombatant(ctx context.Context, combatantID string) error {
	if err := r.client.Del(ctx, hashKey(combatantID)).Err(); err != nil {
		return fmt.Errorf("failed to clear combatant policies: %w", err)
	}
	return nil
}

func (r *redisRepository) getField(ctx context.Context, key, field string) (combat.PlayerReactionPolicy, bool, error) {
	value, err := r.client.HGet(ctx, key, field).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get policy: %w", err)
	}
	return combat.PlayerReactionPolicy(value), true, nil
}

func hashKey(combatantID string) string {
	return policyKeyPrefix + strings.ToLower(combatantID)
}
