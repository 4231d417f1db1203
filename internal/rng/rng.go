// Package rng implements the seeded generator every simulation draw goes
// through. The sequence is part of the save format: the same seed must give
// the same dungeon, the same monsters and the same rolls on every platform.
package rng

import "time"

// Park-Miller "minimal standard" parameters, evaluated with Schrage's method
// so that no intermediate value leaves int32.
const (
	modulus    int32 = 2147483647 // 2^31 - 1
	multiplier int32 = 16807
	quotient   int32 = modulus / multiplier // 127773
	remainder  int32 = modulus % multiplier // 2836
)

// maxShort is the range of the raw draw used by Randnor.
const maxShort = 32767

// Offsets between the base seed and the derived streams. Changing either
// changes every game generated from a given seed.
const (
	townSeedOffset = 8762
	liveSeedOffset = 113452
)

// State is everything needed to resume a generator bit-for-bit.
type State struct {
	Current uint32 `json:"current"`
	Saved   uint32 `json:"saved"`
	Magic   uint32 `json:"magic"`
	Town    uint32 `json:"town"`
}

// Valid reports whether the live state is inside the generator's cycle.
func (s State) Valid() bool {
	return s.Current >= 1 && s.Current < uint32(modulus)
}

// RNG is a single deterministic stream plus one saved slot for SetSeed.
type RNG struct {
	state uint32
	saved uint32
	magic uint32
	town  uint32
}

// New returns a generator whose live state is derived from seed the same way
// SetSeed installs one. Use InitSeeds for a full game start.
func New(seed uint32) *RNG {
	r := &RNG{}
	r.install(seed)
	r.saved = r.state
	return r
}

// install maps an arbitrary seed into the generator's valid range [1, m-1].
func (r *RNG) install(seed uint32) {
	r.state = seed%uint32(modulus-1) + 1
}

// InitSeeds starts a new game stream. A zero seed means "take it from the
// wall clock". The magic seed is the base value, the town seed is derived
// from it, and the live stream from the town seed; a random number of draws
// is then burnt so early output does not mirror the seed's low bits.
func (r *RNG) InitSeeds(seed uint32) {
	clock := seed
	if clock == 0 {
		clock = uint32(time.Now().Unix())
	}

	r.magic = clock

	clock += townSeedOffset
	r.town = clock

	clock += liveSeedOffset
	r.install(clock)

	for n := r.Randint(100); n != 0; n-- {
		r.Next()
	}
	r.saved = r.state
}

// MagicSeed is the seed of the stream used for object flavours.
func (r *RNG) MagicSeed() uint32 { return r.magic }

// TownSeed is the seed of the stream used to rebuild the town level.
func (r *RNG) TownSeed() uint32 { return r.town }

// SetSeed saves the live state and switches to a reproducible stream.
// There is exactly one save slot: calling SetSeed twice without ResetSeed
// in between loses the first saved state.
func (r *RNG) SetSeed(seed uint32) {
	r.saved = r.state
	r.install(seed)
}

// ResetSeed returns to the state saved by the last SetSeed. Without a
// prior SetSeed it leaves the stream where it is.
func (r *RNG) ResetSeed() {
	r.state = r.saved
}

// Snapshot captures the generator for persistence.
func (r *RNG) Snapshot() State {
	return State{Current: r.state, Saved: r.saved, Magic: r.magic, Town: r.town}
}

// Restore puts back a state taken with Snapshot. An empty save slot is
// filled with the live state, since 0 is a fixed point of the generator.
func (r *RNG) Restore(s State) {
	r.state = s.Current
	r.saved = s.Saved
	if r.saved == 0 {
		r.saved = r.state
	}
	r.magic = s.Magic
	r.town = s.Town
}

// Next advances the stream and returns the new raw value in [1, 2^31-2].
func (r *RNG) Next() int32 {
	high := int32(r.state) / quotient
	low := int32(r.state) % quotient

	test := multiplier*low - remainder*high
	if test > 0 {
		r.state = uint32(test)
	} else {
		r.state = uint32(test + modulus)
	}
	return int32(r.state)
}

// Randint returns a uniform integer in [1, max]. max must be at least 1.
func (r *RNG) Randint(max int) int {
	if max < 1 {
		panic("rng: Randint called with max < 1")
	}
	return int(int64(r.Next())%int64(max)) + 1
}

// Randnor returns an integer drawn from an approximately normal distribution
// with the given mean and standard deviation.
//
// The raw draw is located in normalTable by binary search; the index found is
// rescaled from the table's own deviation to stand, rounding the half-way case
// up, and given a random sign. A draw landing exactly on the top of the range
// falls off the table and is mapped to 4..5 deviations instead.
func (r *RNG) Randnor(mean, stand int) int {
	tmp := r.Randint(maxShort)

	if tmp == maxShort {
		offset := 4*stand + r.Randint(stand)
		if r.Randint(2) == 1 {
			offset = -offset
		}
		return mean + offset
	}

	low := 0
	index := normalTableSize >> 1
	high := normalTableSize

	for normalTable[index] != tmp && high != low+1 {
		if normalTable[index] > tmp {
			high = index
			index = low + ((index - low) >> 1)
		} else {
			low = index
			index = index + ((high - index) >> 1)
		}
	}

	// the search can stop one entry short of the target
	if normalTable[index] < tmp {
		index++
	}

	offset := (stand*index + (normalTableSD >> 1)) / normalTableSD
	if r.Randint(2) == 1 {
		offset = -offset
	}
	return mean + offset
}

// Damroll sums num rolls of a sides-sided die.
func (r *RNG) Damroll(num, sides int) int {
	if num < 0 {
		panic("rng: Damroll called with a negative dice count")
	}
	sum := 0
	for i := 0; i < num; i++ {
		sum += r.Randint(sides)
	}
	return sum
}

// DamrollDice rolls a dice pair stored as {count, sides}.
func (r *RNG) DamrollDice(dice [2]uint8) int {
	return r.Damroll(int(dice[0]), int(dice[1]))
}
