// Package des implements the Data Encryption Standard block cipher on
// 64-bit blocks.
//
// Encrypt and Decrypt are pure functions of (block, key). No mode of
// operation is provided, and keys are used as given: parity bits are ignored
// and weak or semi-weak keys are not rejected. This package is a
// reference implementation, not a misuse-resistant or constant-time one.
package des

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"

	"cipherlab/feistel"
	"cipherlab/permutations"
)

const (
	BlockSize = 8
	KeySize   = 8
	Rounds    = 16
)

var network = newNetwork()

func newNetwork() *feistel.FeistelNetwork {
	network, err := feistel.NewFeistelNetwork(NewFFunction(), NewKeySchedule())
	if err != nil {
		panic(err)
	}
	return network
}

func init() {
	tables := []struct {
		name  string
		table []uint8
		width int
	}{
		{"IP", initialPermutation[:], 64},
		{"FP", finalPermutation[:], 64},
		{"E", expansionTable[:], 32},
		{"P", permutationTable[:], 32},
		{"PC-1", permutedChoice1[:], 64},
		{"PC-2", permutedChoice2[:], 56},
	}
	for _, t := range tables {
		if err := permutations.Check(t.table, t.width, permutations.FirstBit); err != nil {
			panic(fmt.Sprintf("des: %s table: %v", t.name, err))
		}
	}
}

func permute(value uint64, width int, table []uint8) uint64 {
	return permutations.Permute(value, width, table, permutations.HighToLow, permutations.FirstBit)
}

// Encrypt enciphers one 64-bit block under a 64-bit key.
func Encrypt(block, key uint64) uint64 {
	subkeys := expandKey(key)
	return cryptBlock(subkeys[:], block, feistel.Forward)
}

// Decrypt reverses Encrypt under the same key.
func Decrypt(block, key uint64) uint64 {
	subkeys := expandKey(key)
	return cryptBlock(subkeys[:], block, feistel.Reverse)
}

func cryptBlock(subkeys []uint64, block uint64, order feistel.Order) uint64 {
	block = permute(block, 64, initialPermutation[:])

	left, right := network.Run(uint32(block>>32), uint32(block), subkeys, order)

	// R16 L16: the halves are swapped before the final permutation
	return permute(uint64(right)<<32|uint64(left), 64, finalPermutation[:])
}

type KeySizeError int

func (k KeySizeError) Error() string {
	return "des: invalid key size " + strconv.Itoa(int(k))
}

type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "des: invalid block size " + strconv.Itoa(int(b))
}

var ErrKeyNotSet = errors.New("des: key not set")

// DES holds the subkeys of one key for byte-oriented use. Keys and blocks
// are read big-endian. After SetKey, Encrypt and Decrypt may be called
// concurrently.
type DES struct {
	subkeys [Rounds]uint64
	keySet  bool
}

func NewDES() *DES {
	return &DES{}
}

func (d *DES) SetKey(key []byte) error {
	if len(key) != KeySize {
		return KeySizeError(len(key))
	}

	d.subkeys = expandKey(binary.BigEndian.Uint64(key))
	d.keySet = true
	return nil
}

func (d *DES) Encrypt(block []byte) ([]byte, error) {
	return d.crypt(block, feistel.Forward)
}

func (d *DES) Decrypt(block []byte) ([]byte, error) {
	return d.crypt(block, feistel.Reverse)
}

func (d *DES) crypt(block []byte, order feistel.Order) ([]byte, error) {
	if !d.keySet {
		return nil, ErrKeyNotSet
	}

	if len(block) != BlockSize {
		return nil, BlockSizeError(len(block))
	}

	result := make([]byte, BlockSize)
	binary.BigEndian.PutUint64(result, cryptBlock(d.subkeys[:], binary.BigEndian.Uint64(block), order))
	return result, nil
}

func (d *DES) BlockSize() int {
	return BlockSize
}
