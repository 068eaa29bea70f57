package extract

// DefaultMargin is the capture margin added to every side of a vertex's
// bounding box before endpoint containment tests, in page units.
const DefaultMargin = 5.0

const panicMarginInvalid = "extract: WithMargin: margin must be non-negative"

// Option configures one extraction pass.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	margin float64
}

// WithMargin overrides the capture margin. Panics on negative margin
// (programmer error); zero disables the slop entirely.
func WithMargin(margin float64) Option {
	if margin < 0 {
		panic(panicMarginInvalid)
	}

	return func(o *options) { o.margin = margin }
}

// gatherOptions resolves setters against defaults, last-writer-wins.
func gatherOptions(opts ...Option) options {
	o := options{margin: DefaultMargin}
	for _, set := range opts {
		set(&o)
	}

	return o
}
