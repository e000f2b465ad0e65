package advanced

import (
	"sync/atomic"

	"github.com/rs/zerolog"
)

// The active logger. Silent until SetLogger is called.
var loggerPtr atomic.Pointer[zerolog.Logger]

func init() {
	nop := zerolog.Nop()
	loggerPtr.Store(&nop)
}

// SetLogger installs the logger used for debug diagnostics (hull sizes,
// skipped edges, the winning caliper edge). Pass nil to silence logging again.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *zerolog.Logger) {
	if l == nil {
		nop := zerolog.Nop()
		l = &nop
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger.
func Logger() *zerolog.Logger {
	return loggerPtr.Load()
}
