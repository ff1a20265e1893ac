package internal

import (
	"log"
	"os"
)

// Logf is the diagnostic logger used by the bypass pipeline. It defaults to
// log.Printf and may be replaced by SetLogger.
var Logf func(format string, v ...any) = log.Printf

func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// SetLogger replaces Logf. Passing nil mutes it.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}
