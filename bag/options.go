package bag

const (
	// DefaultCapacity is the capacity of an array bag built without
	// WithCapacity.
	DefaultCapacity = 15

	// MaxCapacity bounds how far a resizing array bag may grow.
	MaxCapacity = 10000
)

// An Option configures an array bag.
type Option func(*options)

type options struct {
	capacity  int
	resizable bool
}

func defaultOptions() options {
	return options{capacity: DefaultCapacity}
}

// WithCapacity sets the initial capacity of an array bag. Negative values are
// treated as zero.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity < 0 {
			capacity = 0
		}
		o.capacity = capacity
	}
}

// WithResizing lets an array bag double its capacity when full, up to
// MaxCapacity. Without it, Add fails once the initial capacity is reached.
func WithResizing() Option {
	return func(o *options) {
		o.resizable = true
	}
}
