package action

import "github.com/hupe1980/bitgo/blas"

type options struct {
	format blas.Format
}

func defaultOptions() options {
	return options{format: blas.FormatDense}
}

// Option configures the action families.
type Option func(*options)

// WithDefaultFormat sets the format used by "toblas" when the call does not
// name one.
func WithDefaultFormat(f blas.Format) Option {
	return func(o *options) {
		o.format = f
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
