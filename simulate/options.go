package simulate

import "github.com/ThomasLoke/pennylane-lightning/gates"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWorkers disables parallel block execution: blocks of one
	// operation run on the calling goroutine, in spectator order.
	DefaultWorkers = 0
)

// Internal panic messages (no magic strings).
const panicWorkersNegative = "simulate: WithParallel: workers must be >= 0"

// defaultRegistry is the catalogue used when no WithRegistry option is
// supplied. Built exactly once at package initialization and read-only
// thereafter, matching the registry's construct-once lifecycle.
var defaultRegistry = gates.NewRegistry()

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); user-triggered failures surface as errors
// from Apply.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	registry *gates.Registry
	workers  int
}

// WithRegistry threads a custom gate registry into the applier, e.g. one
// shared across appliers or built in a controlled initialization phase.
// A nil registry is ignored and the default catalogue kept.
func WithRegistry(reg *gates.Registry) Option {
	return func(o *Options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithParallel enables parallel block execution with up to workers
// goroutines per operation. workers=0 (or 1) keeps the serial loop.
// Correctness does not depend on the worker count: blocks of one
// operation are pairwise disjoint, and operations remain sequential.
//
// Panics with a stable message when workers is negative.
func WithParallel(workers int) Option {
	if workers < 0 {
		panic(panicWorkersNegative)
	}

	return func(o *Options) { o.workers = workers }
}

// DefaultOptions returns the documented defaults: the package's default
// registry and serial execution.
func DefaultOptions() Options {
	return Options{
		registry: defaultRegistry,
		workers:  DefaultWorkers,
	}
}

// gatherOptions applies user setters on top of defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := DefaultOptions()
	for _, set := range user {
		set(&o)
	}

	return o
}
