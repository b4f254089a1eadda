package report

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Host describes the machine a run executes on.
type Host struct {
	GOOS     string
	GOARCH   string
	NumCPU   int
	Features []string
}

type feature struct {
	name string
	ok   bool
}

// DetectHost describes the current machine.
//
// Features lists the SIMD and bit-manipulation extensions relevant to
// out-of-order throughput, as reported by golang.org/x/sys/cpu.
func DetectHost() Host {
	return Host{
		GOOS:     runtime.GOOS,
		GOARCH:   runtime.GOARCH,
		NumCPU:   runtime.NumCPU(),
		Features: detectFeatures(runtime.GOARCH),
	}
}

func detectFeatures(arch string) []string {
	var fs []feature
	switch arch {
	case "amd64", "386":
		fs = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse3", cpu.X86.HasSSE3},
			{"ssse3", cpu.X86.HasSSSE3},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
			{"fma", cpu.X86.HasFMA},
			{"bmi1", cpu.X86.HasBMI1},
			{"bmi2", cpu.X86.HasBMI2},
			{"erms", cpu.X86.HasERMS},
		}
	case "arm64":
		fs = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"crc32", cpu.ARM64.HasCRC32},
			{"aes", cpu.ARM64.HasAES},
			{"sha2", cpu.ARM64.HasSHA2},
			{"sve", cpu.ARM64.HasSVE},
		}
	}

	var names []string
	for _, f := range fs {
		if f.ok {
			names = append(names, f.name)
		}
	}
	return names
}
