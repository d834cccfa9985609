// Package logger provides colored diagnostic output for the wizard.
//
// The functions are package-level printf-style variables so call sites stay
// terse. Debug output is a no-op unless enabled via [Init].
package logger

import "github.com/fatih/color"

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warnings in bright magenta.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs errors in red.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug logs debug messages in cyan when enabled, otherwise does nothing.
// Assigned by [Init].
var Debug func(format string, a ...any) = func(string, ...any) {}

// Init enables or disables debug logging. Called once from the root command's
// PersistentPreRun based on the --debug flag.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(string, ...any) {}
	}
}
