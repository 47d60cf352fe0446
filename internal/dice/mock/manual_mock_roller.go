package mockdice

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/reaction-engine/internal/dice"
)

// ManualMockRoller implements dice.Roller for testing with predetermined results
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new mock dice roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetRolls sets the predetermined roll results
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears all rolls and resets the index
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Roll returns the next predetermined result, one die at a time
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		if m.rollIndex >= len(m.rolls) {
			return nil, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
		}
		rolls[i] = m.rolls[m.rollIndex]
		m.rollIndex++
		total += rolls[i]
	}

	return &dice.RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}
