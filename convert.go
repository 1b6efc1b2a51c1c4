package sqids

import "math/bits"

// toID renders n in the positional numeral system whose digits are alphabet.
func toID(n uint64, alphabet []byte) []byte {
	base := uint64(len(alphabet))
	if n == 0 {
		return []byte{alphabet[0]}
	}
	var buf [64]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = alphabet[n%base]
		n /= base
	}
	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])
	return out
}

// toNumber is the inverse of toID. It reports false when id holds a byte
// outside alphabet or its value does not fit in a uint64.
func toNumber(id []byte, alphabet []byte) (uint64, bool) {
	var index [256]int16
	for i := range index {
		index[i] = -1
	}
	for i, c := range alphabet {
		index[c] = int16(i)
	}

	base := uint64(len(alphabet))
	var n uint64
	for _, c := range id {
		v := index[c]
		if v < 0 {
			return 0, false
		}
		hi, lo := bits.Mul64(n, base)
		if hi != 0 {
			return 0, false
		}
		sum, carry := bits.Add64(lo, uint64(v), 0)
		if carry != 0 {
			return 0, false
		}
		n = sum
	}
	return n, true
}
