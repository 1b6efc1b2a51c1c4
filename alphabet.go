package sqids

import "unicode/utf8"

// DefaultAlphabet is used when Options.Alphabet is empty.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const minAlphabetLength = 3

// newAlphabet validates raw and returns its shuffled working table.
func newAlphabet(raw string) ([]byte, error) {
	for i := 0; i < len(raw); i++ {
		if raw[i] >= utf8.RuneSelf {
			return nil, ErrAlphabetMultibyte
		}
	}
	if len(raw) < minAlphabetLength {
		return nil, ErrAlphabetTooShort
	}

	var seen [256]bool
	digits := 0
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if seen[c] {
			return nil, ErrAlphabetHasDuplicates
		}
		seen[c] = true
		if c >= '0' && c <= '9' {
			digits++
		}
	}
	if digits == len(raw) {
		return nil, ErrAlphabetNumericOnly
	}

	return shuffle([]byte(raw)), nil
}

// shuffle permutes chars in place using only their values and positions,
// so the same alphabet always yields the same table. It returns chars.
func shuffle(chars []byte) []byte {
	n := len(chars)
	for i, j := 0, n-1; j > 0; i, j = i+1, j-1 {
		r := (i*j + int(chars[i]) + int(chars[j])) % n
		chars[i], chars[r] = chars[r], chars[i]
	}
	return chars
}

// rotate returns a new slice holding alphabet rotated left by offset and reversed.
func rotate(alphabet []byte, offset int) []byte {
	n := len(alphabet)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[n-1-i] = alphabet[(offset+i)%n]
	}
	return out
}
