// Package vigenere implements the Vigenère cipher over the ASCII Latin
// alphabet.
//
// Only ASCII letters of the key are used. Each ASCII letter of the text
// consumes the next key letter, cycling through the key; other runes are
// copied through and consume nothing.
package vigenere

import "strings"

func Encrypt(text, key string) string {
	return apply(text, key, 1)
}

func Decrypt(text, key string) string {
	return apply(text, key, -1)
}

func filterKey(key string) []byte {
	shifts := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case 'a' <= c && c <= 'z':
			shifts = append(shifts, c-'a')
		case 'A' <= c && c <= 'Z':
			shifts = append(shifts, c-'A')
		}
	}
	return shifts
}

func apply(text, key string, sign int) string {
	shifts := filterKey(key)
	if len(text) == 0 || len(shifts) == 0 {
		return text
	}

	keyIndex := 0
	return strings.Map(func(r rune) rune {
		var base rune
		switch {
		case 'a' <= r && r <= 'z':
			base = 'a'
		case 'A' <= r && r <= 'Z':
			base = 'A'
		default:
			return r
		}

		shift := rune(sign * int(shifts[keyIndex%len(shifts)]))
		keyIndex++
		return base + (r-base+shift+26)%26
	}, text)
}
