package game

import (
	"time"

	"golang.org/x/exp/rand"
)

const DIE_FACES = 6

// Die produces a single uniform roll in [1, DIE_FACES].
type Die interface {
	Roll() int
}

type randomDie struct {
	rng *rand.Rand
}

// NewDie returns a die seeded once from the current time.
func NewDie() Die {
	return NewSeededDie(uint64(time.Now().UnixNano()))
}

// NewSeededDie returns a die whose rolls are fully determined by seed.
// A die must not be shared between goroutines.
func NewSeededDie(seed uint64) Die {
	return &randomDie{rng: rand.New(rand.NewSource(seed))}
}

func (d *randomDie) Roll() int {
	return d.rng.Intn(DIE_FACES) + 1
}

// RollDice rolls die k times and returns the rolls in the order they were made.
func RollDice(die Die, k int) []int {
	if k < 0 {
		panic("cannot roll a negative number of dice")
	}
	rolls := make([]int, k)
	for i := 0; i < k; i++ {
		rolls[i] = die.Roll()
	}
	return rolls
}
