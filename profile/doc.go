// Package profile provides optional runtime profiling for scadgen.
//
// Profiling is built on [github.com/pkg/profile] and compiled in only with
// the "pprof" build tag:
//
//	go build -tags pprof -o scadgen .
//
// Without the tag, [Profiler.Start] is a no-op and [Modes] is empty.
//
// # Modes
//
//   - allocs:    memory allocation profiling (all allocations)
//   - block:     block (synchronization) profiling
//   - clock:     wall-clock profiling
//   - cpu:       CPU profiling
//   - goroutine: goroutine profiling
//   - heap:      heap memory profiling (live allocations)
//   - mem:       general memory profiling
//   - mutex:     mutex contention profiling
//   - thread:    thread creation profiling
//   - trace:     execution trace
//
// # Usage
//
//	p := profile.New(
//		profile.WithMode("cpu"),
//		profile.WithPath("/tmp/profiles"),
//	)
//	defer p.Start().Stop()
//
// Profiles are written as <mode>.pprof in the output directory and can be
// inspected with go tool pprof:
//
//	scadgen render --pprof-mode=cpu big.yaml
//	go tool pprof -http=: ~/.cache/scadgen/pprof/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
