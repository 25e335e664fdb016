package des

import (
	"bytes"
	stddes "crypto/des"
	"encoding/binary"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
)

var knownAnswers = []struct {
	key        uint64
	plaintext  uint64
	ciphertext uint64
}{
	{0x0123456789ABCDEF, 0x0123456789ABCDEF, 0x56CC09E7CFDC4CEF},
	{0x0123456789ABCDEF, 0x0123456789ABCDE7, 0xC95744256A5ED31D},
	{0x133457799BBCDFF1, 0x0123456789ABCDEF, 0x85E813540F0AB405},
	{0x0000000000000000, 0x0000000000000000, 0x8CA64DE9C1B123A7},
	{0xFFFFFFFFFFFFFFFF, 0xFFFFFFFFFFFFFFFF, 0x7359B2163E4EDC58},
}

func TestEncryptKnownAnswers(t *testing.T) {
	for _, tt := range knownAnswers {
		if got := Encrypt(tt.plaintext, tt.key); got != tt.ciphertext {
			t.Errorf("Encrypt(%016X, %016X) = %016X, want %016X", tt.plaintext, tt.key, got, tt.ciphertext)
		}
	}
}

func TestDecryptKnownAnswers(t *testing.T) {
	for _, tt := range knownAnswers {
		if got := Decrypt(tt.ciphertext, tt.key); got != tt.plaintext {
			t.Errorf("Decrypt(%016X, %016X) = %016X, want %016X", tt.ciphertext, tt.key, got, tt.plaintext)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		block, key := rng.Uint64(), rng.Uint64()
		if got := Decrypt(Encrypt(block, key), key); got != block {
			t.Fatalf("round trip of %016X under %016X gave %016X", block, key, got)
		}
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	var keyBytes, src, dst [8]byte

	for i := 0; i < 200; i++ {
		block, key := rng.Uint64(), rng.Uint64()
		binary.BigEndian.PutUint64(keyBytes[:], key)
		binary.BigEndian.PutUint64(src[:], block)

		ref, err := stddes.NewCipher(keyBytes[:])
		if err != nil {
			t.Fatal(err)
		}
		ref.Encrypt(dst[:], src[:])

		want := binary.BigEndian.Uint64(dst[:])
		if got := Encrypt(block, key); got != want {
			t.Fatalf("Encrypt(%016X, %016X) = %016X, crypto/des gives %016X", block, key, got, want)
		}
	}
}

func TestFinalPermutationInvertsInitial(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	values := []uint64{0, ^uint64(0), 0x0123456789ABCDEF, 0x8000000000000001}
	for i := 0; i < 100; i++ {
		values = append(values, rng.Uint64())
	}

	for _, v := range values {
		ip := permute(v, 64, initialPermutation[:])
		if got := permute(ip, 64, finalPermutation[:]); got != v {
			t.Fatalf("FP(IP(%016X)) = %016X", v, got)
		}
		if got := permute(permute(v, 64, finalPermutation[:]), 64, initialPermutation[:]); got != v {
			t.Fatalf("IP(FP(%016X)) = %016X", v, got)
		}
	}
}

func TestInitialPermutationVector(t *testing.T) {
	if got := permute(0x0123456789ABCDEF, 64, initialPermutation[:]); got != 0xCC00CCFFF0AAF0AA {
		t.Fatalf("IP = %016X, want CC00CCFFF0AAF0AA", got)
	}
}

func TestParityBitsIgnored(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 50; i++ {
		block, key := rng.Uint64(), rng.Uint64()
		if Encrypt(block, key) != Encrypt(block, key^0x0101010101010101) {
			t.Fatalf("parity bits of %016X changed the ciphertext", key)
		}
	}
}

func TestDESType(t *testing.T) {
	d := NewDES()
	if d.BlockSize() != BlockSize {
		t.Fatalf("BlockSize = %d", d.BlockSize())
	}

	key := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	if err := d.SetKey(key); err != nil {
		t.Fatal(err)
	}

	plaintext := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xE7}
	want := []byte{0xC9, 0x57, 0x44, 0x25, 0x6A, 0x5E, 0xD3, 0x1D}

	encrypted, err := d.Encrypt(plaintext)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(encrypted, want) {
		t.Fatalf("Encrypt = % X, want % X", encrypted, want)
	}

	decrypted, err := d.Decrypt(encrypted)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Fatalf("Decrypt = % X, want % X", decrypted, plaintext)
	}
}

func TestDESTypeErrors(t *testing.T) {
	d := NewDES()

	if _, err := d.Encrypt(make([]byte, 8)); !errors.Is(err, ErrKeyNotSet) {
		t.Fatalf("Encrypt without key: %v", err)
	}

	var keySizeErr KeySizeError
	if err := d.SetKey(make([]byte, 7)); !errors.As(err, &keySizeErr) || int(keySizeErr) != 7 {
		t.Fatalf("SetKey(7 bytes): %v", err)
	}

	if err := d.SetKey(make([]byte, 8)); err != nil {
		t.Fatal(err)
	}

	var blockSizeErr BlockSizeError
	if _, err := d.Decrypt(make([]byte, 9)); !errors.As(err, &blockSizeErr) || int(blockSizeErr) != 9 {
		t.Fatalf("Decrypt(9 bytes): %v", err)
	}
}

func TestDESTypeConcurrentUse(t *testing.T) {
	d := NewDES()
	if err := d.SetKey([]byte("8bytekey")); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			rng := rand.New(rand.NewPCG(seed, seed))
			block := make([]byte, 8)
			for i := 0; i < 50; i++ {
				binary.BigEndian.PutUint64(block, rng.Uint64())
				enc, err := d.Encrypt(block)
				if err != nil {
					t.Error(err)
					return
				}
				dec, err := d.Decrypt(enc)
				if err != nil {
					t.Error(err)
					return
				}
				if !bytes.Equal(dec, block) {
					t.Errorf("concurrent round trip mismatch for % X", block)
					return
				}
			}
		}(uint64(g))
	}
	wg.Wait()
}
