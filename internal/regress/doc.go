// Package regress measures the cost of at's access functions against native
// slice indexing and detects regressions between runs.
//
// A run executes every Case with testing.Benchmark, keeps the fastest of
// several rounds and records the result in a Baseline together with the
// platform, the CPU features and the compiled access mode. Baselines are
// stored as YAML and compared case by case:
//
//	cur, _ := regress.Run(ctx, regress.DefaultCases(), regress.WithRounds(5))
//	old, _ := regress.Load("baseline.yaml")
//	regs, _ := regress.Compare(old, cur, 0.10)
//
// Overhead reports how much slower a case is than native indexing, which is
// the number the zero-overhead claim of the fast path is checked against.
package regress
