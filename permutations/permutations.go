package permutations

import (
	"errors"
	"fmt"
)

type IndexMode int

const (
	LowToHigh IndexMode = iota
	HighToLow
)

type InitialBit int

const (
	ZeroBit InitialBit = iota
	FirstBit
)

// Bit reports whether bit pos of a width-bit value is set. With HighToLow,
// bit 0 is the most significant bit of the value.
func Bit(value uint64, width, pos int, indexMode IndexMode) bool {
	return (value>>shiftFor(width, pos, indexMode))&1 == 1
}

// Set returns value with bit pos of a width-bit word set.
func Set(value uint64, width, pos int, indexMode IndexMode) uint64 {
	return value | 1<<shiftFor(width, pos, indexMode)
}

func shiftFor(width, pos int, indexMode IndexMode) uint {
	if indexMode == HighToLow {
		return uint(width - 1 - pos)
	}
	return uint(pos)
}

// Permute builds a len(pBlock)-bit word whose bit i is bit pBlock[i] of the
// width-bit source. The same call covers permutation, expansion and
// compression tables.
func Permute(value uint64, width int, pBlock []uint8, indexMode IndexMode, initialBit InitialBit) uint64 {
	var result uint64
	outWidth := len(pBlock)

	for index, bit := range pBlock {
		from := int(bit)
		if initialBit == FirstBit {
			from--
		}

		if Bit(value, width, from, indexMode) {
			result = Set(result, outWidth, index, indexMode)
		}
	}
	return result
}

// Check verifies that every entry of pBlock addresses a bit of a width-bit
// source and that the output fits in 64 bits.
func Check(pBlock []uint8, width int, initialBit InitialBit) error {
	if len(pBlock) == 0 {
		return errors.New("the p-block is empty")
	}

	if len(pBlock) > 64 {
		return fmt.Errorf("p-block of %d entries does not fit a 64-bit word", len(pBlock))
	}

	if width <= 0 || width > 64 {
		return fmt.Errorf("source width %d out of range", width)
	}

	if initialBit != ZeroBit && initialBit != FirstBit {
		return errors.New("initial bit must be 0 or 1")
	}

	for index, bit := range pBlock {
		from := int(bit)
		if initialBit == FirstBit {
			from--
		}

		if from < 0 || from >= width {
			return fmt.Errorf("pBlock[%d] = %d out of range", index, bit)
		}
	}
	return nil
}

// RotateLeft circularly rotates the low width bits of value left by shift.
func RotateLeft(value uint32, width, shift int) uint32 {
	mask := uint32(1)<<uint(width) - 1
	value &= mask
	shift %= width
	if shift == 0 {
		return value
	}
	return (value<<uint(shift) | value>>uint(width-shift)) & mask
}
