// Package feistel runs a balanced Feistel network over two 32-bit halves.
// The round function and key schedule are pluggable; encryption and
// decryption share one loop and differ only in the order subkeys are used.
package feistel

import (
	"errors"
	"fmt"
)

type FeistelFunction interface {
	// Apply returns the new right half: left XOR f(right, subkey).
	Apply(left, right uint32, subkey uint64) uint32
}

type KeySchedule interface {
	ExpandKey(key uint64) []uint64
	NumRounds() int
}

// Order maps a round number to the index of the subkey used in it.
type Order func(round, numRounds int) int

func Forward(round, numRounds int) int {
	return round
}

func Reverse(round, numRounds int) int {
	return numRounds - 1 - round
}

type FeistelNetwork struct {
	fFunction   FeistelFunction
	keySchedule KeySchedule
	numRounds   int
}

func NewFeistelNetwork(fFunc FeistelFunction, keySched KeySchedule) (*FeistelNetwork, error) {
	if fFunc == nil || keySched == nil {
		return nil, errors.New("arguments cannot be nil")
	}

	if keySched.NumRounds() <= 0 {
		return nil, fmt.Errorf("invalid number of rounds: %d", keySched.NumRounds())
	}

	return &FeistelNetwork{
		fFunction:   fFunc,
		keySchedule: keySched,
		numRounds:   keySched.NumRounds(),
	}, nil
}

func (fn *FeistelNetwork) NumRounds() int {
	return fn.numRounds
}

// ExpandKey derives the round subkeys through the configured schedule.
func (fn *FeistelNetwork) ExpandKey(key uint64) []uint64 {
	return fn.keySchedule.ExpandKey(key)
}

// Transform runs a single round.
func (fn *FeistelNetwork) Transform(left, right uint32, subkey uint64) (uint32, uint32) {
	return right, fn.fFunction.Apply(left, right, subkey)
}

// Run applies every round to (left, right), taking subkeys in the given
// order, and returns the halves produced by the last round without
// swapping them back.
func (fn *FeistelNetwork) Run(left, right uint32, subkeys []uint64, order Order) (uint32, uint32) {
	for round := 0; round < fn.numRounds; round++ {
		left, right = fn.Transform(left, right, subkeys[order(round, fn.numRounds)])
	}
	return left, right
}

func (fn *FeistelNetwork) Encrypt(left, right uint32, key uint64) (uint32, uint32) {
	return fn.Run(left, right, fn.ExpandKey(key), Forward)
}

func (fn *FeistelNetwork) Decrypt(left, right uint32, key uint64) (uint32, uint32) {
	return fn.Run(left, right, fn.ExpandKey(key), Reverse)
}
