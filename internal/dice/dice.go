package dice

import (
	"math/rand/v2"
	"time"

	"github.com/rocketscienceinc/boardgames/internal/snakeladder"
)

const faces = 6

// Roller produces die rolls. Not safe for concurrent use.
type Roller struct {
	rnd *rand.Rand
}

// New - creates a roller. A zero seed picks one from the clock; any other seed repeats its sequence.
func New(seed uint64) *Roller {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) //nolint: gosec // sign does not matter for a seed
	}

	return &Roller{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll - returns a face in [1, 6].
func (that *Roller) Roll() snakeladder.DieRoll {
	roll, err := snakeladder.NewDieRoll(that.rnd.IntN(faces) + 1)
	if err != nil {
		panic(err)
	}

	return roll
}
