package wav

// HeaderPolicy selects how the encoder treats the derived fmt fields, byte
// rate and block align.
type HeaderPolicy int

const (
	// PolicyAuto recomputes the derived fields for containers built from
	// samples and passes them through for decoded containers.
	PolicyAuto HeaderPolicy = iota
	// PolicyTrust always writes the fields stored in the descriptor.
	PolicyTrust
	// PolicyRecompute always derives the fields from the channel count,
	// sample rate and bit depth.
	PolicyRecompute
)

func (p HeaderPolicy) recompute(origin Origin) bool {
	switch p {
	case PolicyTrust:
		return false
	case PolicyRecompute:
		return true
	default:
		return origin == OriginSamples
	}
}

type config struct {
	dataSizeWidth int
	policy        HeaderPolicy
}

// Option configures the package level Decode and Encode helpers.
type Option func(*config)

// WithWideDataSize selects the variant storing the data chunk size as an
// 8-byte field instead of 4.
func WithWideDataSize() Option {
	return func(c *config) {
		c.dataSizeWidth = dataSizeWidth64
	}
}

// WithHeaderPolicy sets the encoder policy for byte rate and block align.
func WithHeaderPolicy(p HeaderPolicy) Option {
	return func(c *config) {
		c.policy = p
	}
}

func newConfig(opts []Option) config {
	cfg := config{dataSizeWidth: dataSizeWidth32}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
