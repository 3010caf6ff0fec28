package regress

import "testing"

// Runner executes one benchmark function.
type Runner func(fn func(b *testing.B)) testing.BenchmarkResult

type options struct {
	rounds int
	logger *Logger
	runner Runner
}

// Option configures Run.
type Option func(*options)

func defaultOptions() options {
	return options{
		rounds: 3,
		logger: NoopLogger(),
		runner: testing.Benchmark,
	}
}

// WithRounds sets how many times each case is run. The fastest round is
// recorded, which filters scheduler noise better than an average.
//
// Values below 1 are ignored.
func WithRounds(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.rounds = n
		}
	}
}

// WithLogger sets the logger used for per-case progress.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithRunner replaces testing.Benchmark. Tests use it to inject fixed
// results.
func WithRunner(r Runner) Option {
	return func(o *options) {
		if r != nil {
			o.runner = r
		}
	}
}
