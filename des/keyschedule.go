package des

import "cipherlab/permutations"

const halfKeyMask = 1<<28 - 1

// KeySchedule derives the sixteen 48-bit round subkeys of a DES key.
// Parity bits are dropped by PC-1 and never checked; weak keys are accepted.
type KeySchedule struct{}

func NewKeySchedule() *KeySchedule {
	return &KeySchedule{}
}

func (ks *KeySchedule) ExpandKey(key uint64) []uint64 {
	subkeys := expandKey(key)
	return subkeys[:]
}

func (ks *KeySchedule) NumRounds() int {
	return Rounds
}

func expandKey(key uint64) [Rounds]uint64 {
	permutedKey := permute(key, 64, permutedChoice1[:])

	c := uint32(permutedKey>>28) & halfKeyMask
	d := uint32(permutedKey) & halfKeyMask

	var subkeys [Rounds]uint64
	for i := 0; i < Rounds; i++ {
		// rotations accumulate from round to round
		c = permutations.RotateLeft(c, 28, rotationSchedule[i])
		d = permutations.RotateLeft(d, 28, rotationSchedule[i])

		subkeys[i] = permute(uint64(c)<<28|uint64(d), 56, permutedChoice2[:])
	}
	return subkeys
}
