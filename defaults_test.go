package sqids

import (
	"errors"
	"slices"
	"testing"
)

func TestDefaults(t *testing.T) {
	id, err := Encode(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if id != "86Rf07" {
		t.Errorf("Encode(1, 2, 3) = %q, want %q", id, "86Rf07")
	}
	if got := Decode(id); !slices.Equal(got, []uint64{1, 2, 3}) {
		t.Errorf("Decode(%q) = %v", id, got)
	}
}

func TestSetDefault(t *testing.T) {
	prev := DefaultCodec
	defer func() { DefaultCodec = prev }()

	if err := SetDefault(Options{Alphabet: "aa"}); !errors.Is(err, ErrAlphabetTooShort) {
		t.Errorf("SetDefault(aa): err = %v, want ErrAlphabetTooShort", err)
	}
	if DefaultCodec != prev {
		t.Error("failed SetDefault replaced DefaultCodec")
	}

	if err := SetDefault(Options{MinLength: 10}); err != nil {
		t.Fatal(err)
	}
	id, err := Encode(1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if id != "86Rf07xd4z" {
		t.Errorf("Encode(1, 2, 3) = %q, want %q", id, "86Rf07xd4z")
	}
	if got := ID(7).String(); len(got) < 10 {
		t.Errorf("ID.String() = %q ignores the new default", got)
	}
}
