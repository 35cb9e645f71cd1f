package logger

import (
	"github.com/fatih/color"
)

// Colorized printf-style functions for each log level. These are
// package-level variables so call sites read like fmt.Printf but with
// level-appropriate colors.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta, visible without being alarming.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise is a no-op.
// It defaults to a no-op and is reassigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. When disabled, Debug is a no-op
// so debug call sites carry no formatting overhead.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
