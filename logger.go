package planarlp

import (
	"log/slog"

	"github.com/osuushi/planarlp/internal"
)

// SetLogger sets the logger used by every package of this module. Logging is
// silent until this is called; passing nil silences it again.
//
// Arrangement construction, discarded faces and simplex pivots are logged at
// debug level. Face walks that had to be abandoned are logged at warn level.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger {
	return internal.Logger()
}
