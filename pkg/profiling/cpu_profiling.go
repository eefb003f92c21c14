// Package profiling writes pprof profiles of a picker run.
package profiling

import (
	"io"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog/log"
)

var (
	osCreate              = os.Create
	pprofStartCPUProfile  = pprof.StartCPUProfile
	pprofStopCPUProfile   = pprof.StopCPUProfile
	pprofWriteHeapProfile = func(w io.Writer) error {
		return pprof.WriteHeapProfile(w)
	}
)

// DoCPUProfiling starts a CPU profile written to filePath and returns the
// function that stops it. Failures are logged and yield a no-op stop.
func DoCPUProfiling(filePath string) (stop func()) {
	stop = func() {}
	f, err := osCreate(filePath)
	if err != nil {
		log.Error().Err(err).Str("file", filePath).Msg("could not create CPU profile")
		return
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Error().Err(err).Msg("could not start CPU profile")
		closeFile(f)
		return
	}
	return func() {
		pprofStopCPUProfile()
		closeFile(f)
	}
}

func closeFile(f *os.File) {
	if err := f.Close(); err != nil {
		log.Warn().Err(err).Str("file", f.Name()).Msg("failed to close profile")
	}
}
