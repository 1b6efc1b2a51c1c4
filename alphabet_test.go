package sqids

import (
	"slices"
	"testing"
)

func TestShuffle(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		a := shuffle([]byte(DefaultAlphabet))
		b := shuffle([]byte(DefaultAlphabet))
		if !slices.Equal(a, b) {
			t.Errorf("shuffle gave %q then %q", a, b)
		}
	})
	t.Run("Permutation", func(t *testing.T) {
		got := shuffle([]byte(DefaultAlphabet))
		if string(got) == DefaultAlphabet {
			t.Error("shuffle left the alphabet unchanged")
		}
		slices.Sort(got)
		want := []byte(DefaultAlphabet)
		slices.Sort(want)
		if !slices.Equal(got, want) {
			t.Errorf("shuffle lost or duplicated characters: %q", got)
		}
	})
	t.Run("OrderMatters", func(t *testing.T) {
		a := shuffle([]byte("abcdef"))
		b := shuffle([]byte("fedcba"))
		if slices.Equal(a, b) {
			t.Errorf("shuffle ignored input order: %q", a)
		}
	})
}

func TestRotate(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{0, "edcba"},
		{1, "aedcb"},
		{4, "dcbae"},
	}
	for _, tt := range tests {
		if got := string(rotate([]byte("abcde"), tt.offset)); got != tt.want {
			t.Errorf("rotate(abcde, %d) = %q, want %q", tt.offset, got, tt.want)
		}
	}
}

func TestNewAlphabet(t *testing.T) {
	got, err := newAlphabet("abc")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Errorf("newAlphabet(abc) = %q", got)
	}
	if _, err := newAlphabet("0123a"); err != nil {
		t.Errorf("newAlphabet with one letter among digits: %v", err)
	}
}
