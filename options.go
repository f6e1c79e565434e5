package bitvec

type options struct {
	endian       Endianness
	capacityBits int64
}

func defaultOptions() options {
	return options{endian: DefaultEndianness}
}

// Option configures Buffer construction.
type Option func(*options)

// WithEndianness sets the bit-endianness of the new buffer.
// Endianness cannot be changed after construction.
func WithEndianness(e Endianness) Option {
	return func(o *options) {
		o.endian = e
	}
}

// WithCapacity preallocates room for at least bits bits, so that
// appending up to that length does not reallocate.
func WithCapacity(bits int64) Option {
	return func(o *options) {
		o.capacityBits = bits
	}
}
