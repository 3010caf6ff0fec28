package regress

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/hupe1980/at"
)

var (
	// ErrIncompatible is returned when two baselines were recorded on
	// different platforms or in different access modes.
	ErrIncompatible = errors.New("baselines are not comparable")

	// ErrMissingCase is returned when a baseline has no result for a case.
	ErrMissingCase = errors.New("case not in baseline")
)

// Result is the outcome of one case.
type Result struct {
	Name        string  `yaml:"name"`
	NsPerOp     float64 `yaml:"ns_per_op"`
	N           int     `yaml:"n"`
	AllocsPerOp int64   `yaml:"allocs_per_op"`
}

// Baseline is the full outcome of a run.
type Baseline struct {
	GOOS    string   `yaml:"goos"`
	GOARCH  string   `yaml:"goarch"`
	CPU     []string `yaml:"cpu,omitempty"`
	Checked bool     `yaml:"checked"`
	Results []Result `yaml:"results"`
}

// NewBaseline returns an empty baseline describing the running platform.
func NewBaseline() *Baseline {
	return &Baseline{
		GOOS:    runtime.GOOS,
		GOARCH:  runtime.GOARCH,
		CPU:     cpuFeatures(),
		Checked: at.Checked,
	}
}

// Result returns the result recorded for name.
func (b *Baseline) Result(name string) (Result, bool) {
	for _, r := range b.Results {
		if r.Name == name {
			return r, true
		}
	}
	return Result{}, false
}

// Run executes cases and returns the fastest round of each.
//
// Cancellation is checked between rounds; a running round is not
// interrupted.
func Run(ctx context.Context, cases []Case, opts ...Option) (*Baseline, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := NewBaseline()
	for _, c := range cases {
		l := o.logger.WithCase(c.Name)

		r, err := runCase(ctx, c, o, l)
		l.LogResult(ctx, r, err)
		if err != nil {
			return nil, err
		}
		b.Results = append(b.Results, r)
	}
	return b, nil
}

func runCase(ctx context.Context, c Case, o options, l *Logger) (Result, error) {
	best := Result{Name: c.Name}
	for round := 0; round < o.rounds; round++ {
		if err := ctx.Err(); err != nil {
			return best, err
		}

		br := o.runner(c.Bench)
		if br.N == 0 {
			return best, fmt.Errorf("regress: case %s: benchmark did not run", c.Name)
		}

		r := Result{
			Name:        c.Name,
			NsPerOp:     float64(br.T.Nanoseconds()) / float64(br.N),
			N:           br.N,
			AllocsPerOp: br.AllocsPerOp(),
		}
		l.LogRound(ctx, round, r)

		if round == 0 || r.NsPerOp < best.NsPerOp {
			best = r
		}
	}
	return best, nil
}

// Regression describes a case that got slower.
type Regression struct {
	Name  string
	Old   float64
	New   float64
	Ratio float64
}

func (r Regression) String() string {
	return fmt.Sprintf("%s: %.2f ns/op -> %.2f ns/op (x%.2f)", r.Name, r.Old, r.New, r.Ratio)
}

// Compare reports every case of cur that is slower than old by more than
// tolerance, a fraction of the old time (0.1 allows 10%).
//
// Cases present in only one of the baselines are skipped.
func Compare(old, cur *Baseline, tolerance float64) ([]Regression, error) {
	if tolerance < 0 {
		return nil, fmt.Errorf("regress: negative tolerance %v", tolerance)
	}
	if old.GOOS != cur.GOOS || old.GOARCH != cur.GOARCH {
		return nil, fmt.Errorf("%w: %s/%s vs %s/%s", ErrIncompatible, old.GOOS, old.GOARCH, cur.GOOS, cur.GOARCH)
	}
	if old.Checked != cur.Checked {
		return nil, fmt.Errorf("%w: checked=%t vs checked=%t", ErrIncompatible, old.Checked, cur.Checked)
	}

	var regs []Regression
	for _, r := range cur.Results {
		prev, ok := old.Result(r.Name)
		if !ok || prev.NsPerOp <= 0 {
			continue
		}
		if r.NsPerOp > prev.NsPerOp*(1+tolerance) {
			regs = append(regs, Regression{
				Name:  r.Name,
				Old:   prev.NsPerOp,
				New:   r.NsPerOp,
				Ratio: r.NsPerOp / prev.NsPerOp,
			})
		}
	}
	return regs, nil
}

// Overhead returns the time of case name relative to case reference in b.
// 1.0 means equally fast.
func Overhead(b *Baseline, name, reference string) (float64, error) {
	r, ok := b.Result(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingCase, name)
	}
	ref, ok := b.Result(reference)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingCase, reference)
	}
	if ref.NsPerOp <= 0 {
		return 0, fmt.Errorf("regress: case %s has no timing", reference)
	}
	return r.NsPerOp / ref.NsPerOp, nil
}
