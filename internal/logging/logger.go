package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger used by the CLI and its internal packages.
var L = clog.NewWithOptions(os.Stderr, clog.Options{Level: clog.WarnLevel})

// Setup points L at w. Verbose mode logs everything down to debug level with
// timestamps and caller, otherwise only warnings and errors are shown.
func Setup(verbose bool, w io.Writer) {
	opts := clog.Options{Level: clog.WarnLevel}
	if verbose {
		opts = clog.Options{
			Level:           clog.DebugLevel,
			ReportTimestamp: true,
			ReportCaller:    true,
			CallerOffset:    1,
			TimeFormat:      "15:04:05",
		}
	}
	L = clog.NewWithOptions(w, opts)
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
