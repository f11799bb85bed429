package main

import (
	"io"

	"github.com/pterm/pterm"
)

// ptermLogger implements calculation.Logger with pterm prefix printers.
// Info and debug lines are only printed in debug mode.
type ptermLogger struct {
	verbose bool
	debug   *pterm.PrefixPrinter
	info    *pterm.PrefixPrinter
	warn    *pterm.PrefixPrinter
	fail    *pterm.PrefixPrinter
}

func newPtermLogger(w io.Writer, verbose bool) *ptermLogger {
	if verbose {
		pterm.EnableDebugMessages()
	}
	return &ptermLogger{
		verbose: verbose,
		debug:   pterm.Debug.WithWriter(w),
		info:    pterm.Info.WithWriter(w),
		warn:    pterm.Warning.WithWriter(w),
		fail:    pterm.Error.WithWriter(w),
	}
}

func (l *ptermLogger) Debugf(format string, args ...any) {
	if l.verbose {
		l.debug.Printfln(format, args...)
	}
}

func (l *ptermLogger) Infof(format string, args ...any) {
	if l.verbose {
		l.info.Printfln(format, args...)
	}
}

func (l *ptermLogger) Warnf(format string, args ...any)  { l.warn.Printfln(format, args...) }
func (l *ptermLogger) Errorf(format string, args ...any) { l.fail.Printfln(format, args...) }
