package sqids

import "errors"

var (
	// ErrAlphabetMultibyte is returned when the alphabet contains a character
	// that does not fit in a single byte.
	ErrAlphabetMultibyte = errors.New("sqids: alphabet cannot contain multibyte characters")

	// ErrAlphabetTooShort is returned when the alphabet has fewer than 3 characters.
	ErrAlphabetTooShort = errors.New("sqids: alphabet length must be at least 3")

	// ErrAlphabetHasDuplicates is returned when a character appears more than once.
	ErrAlphabetHasDuplicates = errors.New("sqids: alphabet must contain unique characters")

	// ErrAlphabetNumericOnly is returned when every character is a decimal digit.
	ErrAlphabetNumericOnly = errors.New("sqids: alphabet cannot consist of digits only")

	// ErrMinLengthRange is returned when the minimum length is outside 0..255.
	ErrMinLengthRange = errors.New("sqids: min length has to be between 0 and 255")

	// ErrNegativeNumber is returned when a signed input contains a negative value.
	ErrNegativeNumber = errors.New("sqids: numbers cannot be negative")

	// ErrBlocklistExhausted is returned when every rotation of the alphabet
	// produced a blocked or padded-and-blocked id.
	ErrBlocklistExhausted = errors.New("sqids: reached max attempts to re-generate the id")

	// ErrInvalidID is returned by Parse for strings that are not the canonical
	// encoding of exactly one number.
	ErrInvalidID = errors.New("sqids: invalid id")
)
