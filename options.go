package sqm

// An Option changes how [Parse] treats questionable input.
type Option func(*config)

type config struct {
	strict        bool
	allowUnclosed bool
}

// Strict makes lines that match no production an error. By default they are
// ignored, unless they are elements of an open array.
func Strict() Option {
	return func(c *config) {
		c.strict = true
	}
}

// AllowUnclosed accepts documents that end with objects or arrays still open.
func AllowUnclosed() Option {
	return func(c *config) {
		c.allowUnclosed = true
	}
}

func newConfig(opts ...Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
