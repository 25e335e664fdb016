package feistel

import (
	"math/bits"
	"testing"
)

type mixFunction struct{}

func (mixFunction) Apply(left, right uint32, subkey uint64) uint32 {
	x := right ^ uint32(subkey)
	return left ^ (bits.RotateLeft32(x, 7) + 0x9E3779B9) ^ x>>3
}

type simpleKeySchedule struct {
	numRounds int
}

func (s simpleKeySchedule) ExpandKey(key uint64) []uint64 {
	roundKeys := make([]uint64, s.numRounds)
	for i := range roundKeys {
		roundKeys[i] = bits.RotateLeft64(key, 5*i) ^ uint64(i)
	}
	return roundKeys
}

func (s simpleKeySchedule) NumRounds() int {
	return s.numRounds
}

func TestNewFeistelNetworkRejectsBadArguments(t *testing.T) {
	if _, err := NewFeistelNetwork(nil, simpleKeySchedule{4}); err == nil {
		t.Fatal("expected error for nil round function")
	}
	if _, err := NewFeistelNetwork(mixFunction{}, nil); err == nil {
		t.Fatal("expected error for nil key schedule")
	}
	if _, err := NewFeistelNetwork(mixFunction{}, simpleKeySchedule{0}); err == nil {
		t.Fatal("expected error for zero rounds")
	}
}

func TestOrders(t *testing.T) {
	for round := 0; round < 16; round++ {
		if Forward(round, 16) != round {
			t.Fatalf("Forward(%d) = %d", round, Forward(round, 16))
		}
		if Reverse(round, 16) != 15-round {
			t.Fatalf("Reverse(%d) = %d", round, Reverse(round, 16))
		}
	}
}

func TestTransformSwapsHalves(t *testing.T) {
	fn, err := NewFeistelNetwork(mixFunction{}, simpleKeySchedule{1})
	if err != nil {
		t.Fatal(err)
	}

	left, right := fn.Transform(0x01234567, 0x89ABCDEF, 42)
	if left != 0x89ABCDEF {
		t.Fatalf("new left = %#x, want old right", left)
	}
	if right != (mixFunction{}).Apply(0x01234567, 0x89ABCDEF, 42) {
		t.Fatalf("new right = %#x", right)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rounds := range []int{1, 2, 3, 16} {
		fn, err := NewFeistelNetwork(mixFunction{}, simpleKeySchedule{rounds})
		if err != nil {
			t.Fatal(err)
		}

		const key = 0x0123456789ABCDEF
		left, right := uint32(0xDEADBEEF), uint32(0x0BADF00D)

		encLeft, encRight := fn.Encrypt(left, right, key)
		if encLeft == left && encRight == right {
			t.Fatalf("%d rounds: encryption left block unchanged", rounds)
		}

		// the caller swaps halves between directions
		decRight, decLeft := fn.Decrypt(encRight, encLeft, key)
		if decLeft != left || decRight != right {
			t.Fatalf("%d rounds: round trip gave %#x %#x, want %#x %#x", rounds, decLeft, decRight, left, right)
		}
	}
}

func TestRunUsesOrder(t *testing.T) {
	fn, err := NewFeistelNetwork(mixFunction{}, simpleKeySchedule{8})
	if err != nil {
		t.Fatal(err)
	}

	subkeys := fn.ExpandKey(7)
	reversed := make([]uint64, len(subkeys))
	for i := range subkeys {
		reversed[i] = subkeys[len(subkeys)-1-i]
	}

	l1, r1 := fn.Run(1, 2, subkeys, Reverse)
	l2, r2 := fn.Run(1, 2, reversed, Forward)
	if l1 != l2 || r1 != r2 {
		t.Fatalf("Reverse order over subkeys differs from Forward over reversed subkeys")
	}
}
