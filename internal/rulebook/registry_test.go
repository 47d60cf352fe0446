package rulebook_test

import (
	"testing"

	"github.com/KirkDiggler/reaction-engine/internal/domain/combat"
	"github.com/KirkDiggler/reaction-engine/internal/rulebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardRegistry(t *testing.T) {
	registry := rulebook.NewStandardRegistry()

	def, exists := registry.Get("shield")
	require.True(t, exists)
	assert.True(t, def.CanCancel)
	assert.True(t, def.IsFallback())
	assert.Equal(t, float64(0), def.DamageMultiplier())

	// Lookup is case-insensitive
	_, exists = registry.Get("SHIELD")
	assert.True(t, exists)

	assert.Len(t, registry.All(), len(rulebook.StandardReactions()))
}

func TestRegistry_Register(t *testing.T) {
	registry := rulebook.NewRegistry()

	_, exists := registry.Get("custom")
	assert.False(t, exists)

	registry.Register(&combat.ReactionDefinition{ID: "Custom", Priority: 1})

	def, exists := registry.Get("custom")
	require.True(t, exists)
	assert.Equal(t, "Custom", def.ID)
}
