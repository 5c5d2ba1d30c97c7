// Package dice provides the randomness used by the rules engine.
//
// Everything random in a game (acting rolls, wrap bonus rolls and deck
// shuffles) goes through the Roller and Shuffler interfaces so that a game can
// be replayed from a seed, or pinned to a fixed sequence in tests.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Sides is the number of faces on every die in the game.
const Sides = 6

// Roller rolls a single six-sided die, returning a value in 1..6.
type Roller interface {
	Roll() int
}

// RollerFunc adapts a plain function to a Roller.
type RollerFunc func() int

func (f RollerFunc) Roll() int {
	return f()
}

// Shuffler permutes n elements through the swap callback, with the same
// contract as rand.Shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Source is a Roller that can also shuffle.
type Source interface {
	Roller
	Shuffler
}

// Random is a seeded pseudo-random Source. Given the same seed it produces
// the same rolls and shuffles.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a Random seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a uniformly distributed value in 1..6.
func (r *Random) Roll() int {
	return r.rng.Intn(Sides) + 1
}

func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.rng.Shuffle(n, swap)
}

// RollN rolls n dice and returns the results in roll order.
func RollN(r Roller, n int) []int {
	if n <= 0 {
		return nil
	}
	rolls := make([]int, n)
	for i := range rolls {
		rolls[i] = r.Roll()
	}
	return rolls
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
