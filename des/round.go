package des

import "cipherlab/permutations"

// FFunction is the DES round function.
type FFunction struct{}

func NewFFunction() *FFunction {
	return &FFunction{}
}

// Apply returns left XOR P(S(E(right) XOR subkey)), the next right half.
func (f *FFunction) Apply(left, right uint32, subkey uint64) uint32 {
	return left ^ cipherFunction(right, subkey)
}

func cipherFunction(right uint32, subkey uint64) uint32 {
	expanded := permute(uint64(right), 32, expansionTable[:])
	substituted := substitute(expanded ^ subkey)
	return uint32(permute(uint64(substituted), 32, permutationTable[:]))
}

// substitute maps eight 6-bit groups of a 48-bit value, most significant
// first, through the S-boxes into a 32-bit value.
func substitute(block uint64) uint32 {
	var result uint32
	for i := 0; i < len(sBoxes); i++ {
		group := block >> uint(42-6*i) & 0x3f

		row := 0
		if permutations.Bit(group, 6, 0, permutations.HighToLow) {
			row |= 2
		}
		if permutations.Bit(group, 6, 5, permutations.HighToLow) {
			row |= 1
		}
		col := int(group>>1) & 0xf

		result |= uint32(sBoxes[i][row*16+col]) << uint(28-4*i)
	}
	return result
}
