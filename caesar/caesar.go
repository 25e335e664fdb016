// Package caesar implements the Caesar shift cipher over the ASCII Latin
// alphabet. Letters keep their case; every other rune is copied through.
package caesar

import (
	"fmt"
	"strings"
)

type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts "left", "l", "right" or "r" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	default:
		return 0, fmt.Errorf("unknown shift direction %q", s)
	}
}

func Encrypt(text string, shift uint8, dir Direction) string {
	return rotate(text, rightOffset(shift, dir))
}

// Decrypt undoes Encrypt with the same shift and direction.
func Decrypt(text string, shift uint8, dir Direction) string {
	return rotate(text, (26-rightOffset(shift, dir))%26)
}

// rightOffset expresses a shift as the equivalent rightward shift in 0..25.
func rightOffset(shift uint8, dir Direction) int {
	offset := int(shift % 26)
	if dir == Left {
		offset = (26 - offset) % 26
	}
	return offset
}

func rotate(text string, offset int) string {
	if offset == 0 {
		return text
	}

	return strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z':
			return 'a' + (r-'a'+rune(offset))%26
		case 'A' <= r && r <= 'Z':
			return 'A' + (r-'A'+rune(offset))%26
		default:
			return r
		}
	}, text)
}
