package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
)

var (
	osCreate             = os.Create
	pprofStartCPUProfile = pprof.StartCPUProfile
	pprofStopCPUProfile  = pprof.StopCPUProfile
)

var stderr io.Writer = os.Stderr

// DoCPUProfiling starts writing a CPU profile to path and returns the func that stops it.
// Failures are reported on stderr and leave profiling off.
func DoCPUProfiling(path string) (stop func()) {
	f, err := osCreate(path)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
