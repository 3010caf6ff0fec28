package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/hupe1980/at/internal/regress"
)

func printResults(w io.Writer, b *regress.Baseline) {
	mode := "checked"
	if !b.Checked {
		mode = "unchecked"
	}
	fmt.Fprintf(w, "%s/%s %s %v\n", b.GOOS, b.GOARCH, mode, b.CPU)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "case\titerations\tns/op\tvs native\t")

	native, hasNative := b.Result(regress.NativeCase)
	for _, r := range b.Results {
		rel := "-"
		if hasNative && native.NsPerOp > 0 {
			rel = fmt.Sprintf("x%.2f", r.NsPerOp/native.NsPerOp)
		}
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%s\t\n", r.Name, humanize.Comma(int64(r.N)), r.NsPerOp, rel)
	}
	tw.Flush()
}
