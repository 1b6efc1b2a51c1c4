// Package sqids turns sequences of non-negative integers into short,
// shuffled, URL-safe ids and back.
//
// An id is self-describing under a fixed configuration: its first character
// selects the rotation of the alphabet that the rest of it was written with.
// Two processes built with the same Options produce and decode identical ids
// without sharing any other state.
package sqids

import (
	"math"
	"slices"
	"strings"
)

// MaxMinLength is the largest accepted Options.MinLength.
const MaxMinLength = 255

// Options configures a codec. The zero value selects DefaultAlphabet, no
// minimum length and the default blocklist. A non-nil empty Blocklist
// disables blocking.
type Options struct {
	Alphabet  string
	MinLength int
	Blocklist []string
}

// Sqids is an immutable, configured codec. It is safe for concurrent use.
type Sqids struct {
	alphabet  []byte
	index     [256]int16
	minLength int
	blocklist []string
}

// New validates opts and builds a codec.
func New(opts Options) (*Sqids, error) {
	raw := opts.Alphabet
	if raw == "" {
		raw = DefaultAlphabet
	}
	alphabet, err := newAlphabet(raw)
	if err != nil {
		return nil, err
	}
	if opts.MinLength < 0 || opts.MinLength > MaxMinLength {
		return nil, ErrMinLengthRange
	}

	words := opts.Blocklist
	if words == nil {
		words = defaultBlocklist
	}

	s := &Sqids{
		alphabet:  alphabet,
		minLength: opts.MinLength,
		blocklist: filterBlocklist(words, raw),
	}
	for i := range s.index {
		s.index[i] = -1
	}
	for i, c := range alphabet {
		s.index[c] = int16(i)
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Sqids {
	s, err := New(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Alphabet returns the shuffled working alphabet.
func (s *Sqids) Alphabet() string {
	return string(s.alphabet)
}

// MinLength returns the configured minimum id length.
func (s *Sqids) MinLength() int {
	return s.minLength
}

// DefaultBlocklist returns a copy of the words used when Options.Blocklist
// is nil.
func DefaultBlocklist() []string {
	return slices.Clone(defaultBlocklist)
}

// Blocklist returns a copy of the filtered, lowercased blocklist.
func (s *Sqids) Blocklist() []string {
	out := make([]string, len(s.blocklist))
	copy(out, s.blocklist)
	return out
}

// Encode returns the id for numbers. An empty slice encodes to "".
// It fails with ErrBlocklistExhausted when no rotation of the alphabet
// yields an id that passes the blocklist.
func (s *Sqids) Encode(numbers []uint64) (string, error) {
	if len(numbers) == 0 {
		return "", nil
	}
	for increment := 0; increment <= len(s.alphabet); increment++ {
		id := s.encode(numbers, increment)
		if !s.isBlocked(id) {
			return id, nil
		}
	}
	return "", ErrBlocklistExhausted
}

// EncodeInt64 is Encode for signed input, as handed over by database drivers.
func (s *Sqids) EncodeInt64(numbers []int64) (string, error) {
	unsigned := make([]uint64, len(numbers))
	for i, n := range numbers {
		if n < 0 {
			return "", ErrNegativeNumber
		}
		unsigned[i] = uint64(n)
	}
	return s.Encode(unsigned)
}

// offset picks the alphabet rotation for numbers on the given attempt.
func (s *Sqids) offset(numbers []uint64, increment int) int {
	n := len(s.alphabet)
	offset := len(numbers) % n
	for i, v := range numbers {
		offset = (offset + int(s.alphabet[v%uint64(n)]) + i) % n
	}
	return (offset + increment) % n
}

func (s *Sqids) encode(numbers []uint64, increment int) string {
	offset := s.offset(numbers, increment)
	alphabet := rotate(s.alphabet, offset)

	id := make([]byte, 0, max(s.minLength, 1+len(numbers)*4))
	id = append(id, s.alphabet[offset])
	for i, n := range numbers {
		id = append(id, toID(n, alphabet[1:])...)
		if i < len(numbers)-1 {
			id = append(id, alphabet[0])
			shuffle(alphabet)
		}
	}

	if len(id) < s.minLength {
		id = s.pad(id, alphabet)
	}
	return string(id)
}

// pad extends id to the minimum length. The leading separator leaves an
// empty segment behind the last number, which is where Decode stops.
func (s *Sqids) pad(id, alphabet []byte) []byte {
	id = append(id, alphabet[0])
	for len(id) < s.minLength {
		shuffle(alphabet)
		id = append(id, alphabet[:min(s.minLength-len(id), len(alphabet))]...)
	}
	return id
}

// Decode returns the numbers encoded in id. It never fails: an empty string,
// a string with characters outside the alphabet or a segment that overflows
// uint64 all decode to an empty slice.
func (s *Sqids) Decode(id string) []uint64 {
	ret := []uint64{}
	if id == "" {
		return ret
	}
	for i := 0; i < len(id); i++ {
		if s.index[id[i]] < 0 {
			return ret
		}
	}

	alphabet := rotate(s.alphabet, int(s.index[id[0]]))
	rest := id[1:]
	for rest != "" {
		chunk, after, found := strings.Cut(rest, string(alphabet[0]))
		if chunk == "" {
			return ret
		}
		n, ok := toNumber([]byte(chunk), alphabet[1:])
		if !ok {
			return []uint64{}
		}
		ret = append(ret, n)
		if found {
			shuffle(alphabet)
		}
		rest = after
	}
	return ret
}

// DecodeInt64 is Decode for signed output. Ids holding a number above
// math.MaxInt64 decode to an empty slice.
func (s *Sqids) DecodeInt64(id string) []int64 {
	numbers := s.Decode(id)
	out := make([]int64, 0, len(numbers))
	for _, n := range numbers {
		if n > math.MaxInt64 {
			return []int64{}
		}
		out = append(out, int64(n))
	}
	return out
}

// IsCanonical reports whether id is exactly what Encode produces for the
// numbers it decodes to. Decode accepts many aliases of the same numbers;
// callers that use ids as keys should reject the non-canonical ones.
func (s *Sqids) IsCanonical(id string) bool {
	numbers := s.Decode(id)
	if len(numbers) == 0 {
		return false
	}
	enc, err := s.Encode(numbers)
	return err == nil && enc == id
}
