package mazesprite

import (
	"fmt"
	"io"
	"os"
)

// globalDebug toggles diagnostic output for the whole package. Atlases,
// caches and animators have no shared owner to hang a flag on, so the
// switch is process-wide. The package is single-threaded apart from the
// recolor cache, which only reads the flag.
var globalDebug bool

// debugOut is where diagnostics go. Tests swap it for a buffer.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, cache misses,
// evictions and disposals, completeness failures and animation selection
// changes are printed to stderr.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// DebugMode reports whether debug mode is enabled.
func DebugMode() bool {
	return globalDebug
}

// debugf prints a prefixed diagnostic line when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut, "[mazesprite] "+format+"\n", args...)
}

// debugCacheStats prints a one-line summary of cache counters.
func debugCacheStats(label string, st CacheStats) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[mazesprite] %s: entries: %d | hits: %d | misses: %d | substitutions: %d | evictions: %d\n",
		label, st.Entries, st.Hits, st.Misses, st.Substitutions, st.Evictions)
}
