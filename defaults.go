package sqids

// DefaultCodec is used by the package-level Encode and Decode and by ID.
// Replace it via SetDefault once at startup, before ids are produced.
var DefaultCodec = MustNew(Options{})

// SetDefault replaces DefaultCodec with a codec built from opts.
func SetDefault(opts Options) error {
	s, err := New(opts)
	if err != nil {
		return err
	}
	DefaultCodec = s
	return nil
}

// Encode encodes numbers with DefaultCodec.
func Encode(numbers ...uint64) (string, error) {
	return DefaultCodec.Encode(numbers)
}

// Decode decodes id with DefaultCodec.
func Decode(id string) []uint64 {
	return DefaultCodec.Decode(id)
}
