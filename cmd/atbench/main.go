// Command atbench runs the access benchmark suite and checks it against a
// stored baseline.
//
//	atbench run --out baseline.yaml
//	atbench check --baseline baseline.yaml --tolerance 0.1
//
// check exits with a non-zero status when a case regressed or when at_index
// is slower than native indexing by more than --max-overhead.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
