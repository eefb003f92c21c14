package profiling

import (
	"runtime"

	"github.com/rs/zerolog/log"
)

var runtimeGC = runtime.GC

// DoMemProfiling returns a function that writes a heap profile to filePath,
// replacing the previous one.
func DoMemProfiling(filePath string) (write func()) {
	return func() {
		f, err := osCreate(filePath)
		if err != nil {
			log.Error().Err(err).Str("file", filePath).Msg("could not create memory profile")
			return
		}
		defer closeFile(f)
		runtimeGC()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Error().Err(err).Msg("could not write memory profile")
		}
	}
}
