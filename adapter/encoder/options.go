package encoder

// WithInt64Support reports to callers whether 64-bit integers survive the
// encoding round trip. Disabling it mimics codecs without 64-bit support
// and makes uint64-typed mappings a configuration error.
func WithInt64Support(supported bool) Option {
	return func(e *Encoder) {
		e.int64Support = supported
	}
}

// Option configures encoder behavior through the functional options
// pattern.
type Option func(*Encoder)
