package util

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"runtime"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/mem"
)

func Stats() func() {
	return func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
		log.Debug().Msgf("HeapObjects: %d, Goroutines: %d", ms.HeapObjects, runtime.NumGoroutine())
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("Verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("Profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf("localhost:%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("Error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// Memory is a snapshot of the host memory, in MiB.
type Memory struct {
	TotalMiB     float64 `json:"total_mib"`
	AvailableMiB float64 `json:"available_mib"`
	UsedPercent  float64 `json:"used_percent"`
}

// HostMemory reads the current memory usage of the host.
func HostMemory() (Memory, error) {
	memStat, err := mem.VirtualMemory()
	if err != nil {
		return Memory{}, err
	}

	return Memory{
		TotalMiB:     float64(memStat.Total) / (1024 * 1024),
		AvailableMiB: float64(memStat.Available) / (1024 * 1024),
		UsedPercent:  memStat.UsedPercent,
	}, nil
}

// ToScreamingSnakeCase turns a Go field name into its environment variable form.
// Acronyms are kept together: RequestTimeout -> REQUEST_TIMEOUT, TLSCert -> TLS_CERT.
func ToScreamingSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteRune('_')
			}
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
