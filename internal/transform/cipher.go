package transform

import "strings"

// codeSpace is the modulus applied to shifted code points.
const codeSpace = 128

// Shift advances every code point of s by k, reduced modulo 128.
// It is pure: the same input always yields the same output.
func Shift(s string, k int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(shiftRune(r, k))
	}
	return b.String()
}

// Unshift reverses Shift for input made of code points below 128.
// Code points at or above 128 were folded by Shift and cannot be recovered.
func Unshift(s string, k int) string {
	return Shift(s, -k)
}

func shiftRune(r rune, k int) rune {
	return rune(((int(r)+k)%codeSpace + codeSpace) % codeSpace)
}
