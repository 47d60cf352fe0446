package dice

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/reaction-engine/internal/errors"
)

// randomRoller implements Roller over its own rand source. Owning the source
// keeps rolls replayable when the seed is fixed; nothing here touches the
// process-wide generator.
type randomRoller struct {
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from the clock
func NewRandomRoller() Roller {
	return NewSeededRoller(time.Now().UnixNano())
}

// NewSeededRoller creates a roller with a fixed seed for deterministic
// combat-log replay
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	if count < 1 {
		return nil, errors.InvalidArgumentf("invalid dice count: %d", count)
	}
	if sides < 2 {
		return nil, errors.InvalidArgumentf("invalid dice sides: %d", sides)
	}

	rolls := make([]int, count)
	total := 0
	for i := range rolls {
		rolls[i] = r.rng.Intn(sides) + 1
		total += rolls[i]
	}

	return &RollResult{
		Total: total + bonus,
		Rolls: rolls,
		Bonus: bonus,
		Count: count,
		Sides: sides,
	}, nil
}
