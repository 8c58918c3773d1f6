package profiling

import (
	"fmt"
	"runtime"
	"runtime/pprof"
)

var pprofWriteHeapProfile = pprof.WriteHeapProfile

// DoMemProfiling returns a func that writes a heap profile to path.
// Callers defer it so the profile reflects the state at exit.
func DoMemProfiling(path string) (write func()) {
	return func() {
		f, err := osCreate(path)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(stderr, "could not write memory profile: %v\n", err)
		}
	}
}
