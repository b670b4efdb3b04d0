package flow

import (
	"log"
	"os"
)

// logger is the package-level destination for FlowOptions.Verbose output.
// Swap it in tests or embedding applications via SetLogger.
var logger = log.New(os.Stderr, "flow: ", log.LstdFlags)

// SetLogger replaces the destination for Verbose logging. Passing nil
// restores the default (stderr, "flow: " prefix, standard flags).
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = log.New(os.Stderr, "flow: ", log.LstdFlags)
		return
	}
	logger = l
}

func verbosef(o FlowOptions, runID string, format string, args ...interface{}) {
	if !o.Verbose {
		return
	}
	logger.Printf("[%s] "+format, append([]interface{}{runID}, args...)...)
}
