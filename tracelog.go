package ductnoise

import (
	"os"

	"github.com/charmbracelet/log"
)

// trace is the package-level debug logger. It writes to stderr at Warn
// level by default so a library consumer sees nothing unless CalculatePath
// is called with debug=true, at which point withDebug bumps it to Debug
// level for the duration of that call and engine.go logs one line per
// element processed.
var trace = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "ductnoise",
})

func init() {
	trace.SetLevel(log.WarnLevel)
}

// withDebug temporarily raises the trace logger to Debug level for the
// duration of fn, restoring the previous level afterward. CalculatePath
// uses this when called with debug=true.
func withDebug(enabled bool, fn func()) {
	if !enabled {
		fn()
		return
	}
	prev := trace.GetLevel()
	trace.SetLevel(log.DebugLevel)
	defer trace.SetLevel(prev)
	fn()
}
