package regress

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// cpuFeatures lists the CPU features that affect code generation for the
// benchmarked loops. Two baselines with different features are timed on
// different hardware.
func cpuFeatures() []string {
	var out []string
	add := func(name string, ok bool) {
		if ok {
			out = append(out, name)
		}
	}

	switch runtime.GOARCH {
	case "amd64":
		add("avx2", cpu.X86.HasAVX2)
		add("avx512f", cpu.X86.HasAVX512F)
		add("bmi2", cpu.X86.HasBMI2)
	case "arm64":
		add("asimd", cpu.ARM64.HasASIMD)
		add("sve", cpu.ARM64.HasSVE)
		add("sve2", cpu.ARM64.HasSVE2)
	}
	return out
}
