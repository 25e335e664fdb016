// Package tripledes composes three DES operations into Triple-DES.
package tripledes

import (
	"errors"
	"fmt"

	"cipherlab/des"
)

// Encrypt is the EDE construction E(D(E(block, k1), k2), k3).
func Encrypt(block, k1, k2, k3 uint64) uint64 {
	return des.Encrypt(des.Decrypt(des.Encrypt(block, k1), k2), k3)
}

// Decrypt inverts Encrypt for the same three keys: D(E(D(block, k3), k2), k1).
func Decrypt(block, k1, k2, k3 uint64) uint64 {
	return des.Decrypt(des.Encrypt(des.Decrypt(block, k3), k2), k1)
}

type TripleDESMode int

const (
	EDE TripleDESMode = iota
	EEE
)

func (m TripleDESMode) String() string {
	switch m {
	case EDE:
		return "EDE"
	case EEE:
		return "EEE"
	default:
		return fmt.Sprintf("TripleDESMode(%d)", int(m))
	}
}

type TripleDES struct {
	des1 *des.DES
	des2 *des.DES
	des3 *des.DES
	mode TripleDESMode
}

func NewTripleDES(mode TripleDESMode) (*TripleDES, error) {
	if mode != EDE && mode != EEE {
		return nil, fmt.Errorf("unsupported TripleDES mode: %d", mode)
	}

	return &TripleDES{
		des1: des.NewDES(),
		des2: des.NewDES(),
		des3: des.NewDES(),
		mode: mode,
	}, nil
}

// SetKey accepts K1 (8 bytes, all three keys equal), K1||K2 (16 bytes,
// K3 = K1) or K1||K2||K3 (24 bytes).
func (t *TripleDES) SetKey(key []byte) error {
	var key1, key2, key3 []byte

	switch len(key) {
	case 8:
		key1, key2, key3 = key, key, key
	case 16:
		key1, key2, key3 = key[:8], key[8:16], key[:8]
	case 24:
		key1, key2, key3 = key[:8], key[8:16], key[16:24]
	default:
		return fmt.Errorf("invalid key length: %d (must be 8, 16, or 24 bytes)", len(key))
	}

	if err := t.des1.SetKey(key1); err != nil {
		return fmt.Errorf("failed to set key1: %w", err)
	}

	if err := t.des2.SetKey(key2); err != nil {
		return fmt.Errorf("failed to set key2: %w", err)
	}

	if err := t.des3.SetKey(key3); err != nil {
		return fmt.Errorf("failed to set key3: %w", err)
	}

	return nil
}

type step struct {
	name   string
	cipher func([]byte) ([]byte, error)
}

func (t *TripleDES) Encrypt(block []byte) ([]byte, error) {
	second := step{"DES2 decryption", t.des2.Decrypt}
	if t.mode == EEE {
		second = step{"DES2 encryption", t.des2.Encrypt}
	}

	return t.run(block,
		step{"DES1 encryption", t.des1.Encrypt},
		second,
		step{"DES3 encryption", t.des3.Encrypt},
	)
}

func (t *TripleDES) Decrypt(block []byte) ([]byte, error) {
	second := step{"DES2 encryption", t.des2.Encrypt}
	if t.mode == EEE {
		second = step{"DES2 decryption", t.des2.Decrypt}
	}

	return t.run(block,
		step{"DES3 decryption", t.des3.Decrypt},
		second,
		step{"DES1 decryption", t.des1.Decrypt},
	)
}

func (t *TripleDES) run(block []byte, steps ...step) ([]byte, error) {
	if len(block) != des.BlockSize {
		return nil, errors.New("block size must be 8 bytes")
	}

	result := block
	for _, s := range steps {
		var err error
		result, err = s.cipher(result)
		if err != nil {
			return nil, fmt.Errorf("%s failed: %w", s.name, err)
		}
	}
	return result, nil
}

func (t *TripleDES) Mode() TripleDESMode {
	return t.mode
}

func (t *TripleDES) BlockSize() int {
	return des.BlockSize
}
