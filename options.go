package phonetype

// DefaultRegion is the fallback ISO 3166-1 region fed to the format
// checker when loose-mode input carries no country code of its own.
const DefaultRegion = "US"

// Checker is the external loose-format predicate. It reports whether
// input is plausible as a phone string. The core never reimplements
// loose validation: it only consumes this verdict.
type Checker func(input string) bool

// Option configures loose-mode construction.
type Option func(*Options)

// Options holds configuration for loose-mode construction.
type Options struct {
	// Region is the fallback region for inputs without a country code.
	Region string

	// Checker validates loose-mode input. When nil, the default
	// phonenumbers-backed checker for Region is used.
	Checker Checker
}

// DefaultOptions returns the default configuration.
func DefaultOptions() *Options {
	return &Options{
		Region: DefaultRegion,
	}
}

// WithRegion sets the fallback region used by the default checker.
// Ignored when a custom checker is installed with WithChecker.
func WithRegion(iso2 string) Option {
	return func(o *Options) {
		o.Region = iso2
	}
}

// WithChecker replaces the loose-format checker entirely.
func WithChecker(c Checker) Option {
	return func(o *Options) {
		o.Checker = c
	}
}

// checker resolves the effective checker for these options.
func (o *Options) checker() Checker {
	if o.Checker != nil {
		return o.Checker
	}
	return defaultChecker(o.Region)
}
