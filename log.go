package chromedp

import (
	"log"
	"os"
)

// LogFunc is a logging function, matching the signature of log.Printf.
type LogFunc func(string, ...interface{})

// Logger is the package-wide fallback logger, used for info and error
// logging by any Browser created without an explicit WithLogf/WithErrorf
// option. Debug logging is off unless WithDebugf or WithLog sets it.
var Logger = log.New(os.Stderr, "chromedp ", log.LstdFlags)

func defaultLogf(s string, v ...interface{}) {
	Logger.Printf(s, v...)
}

func defaultErrf(s string, v ...interface{}) {
	Logger.Printf("ERROR: "+s, v...)
}

func noopLogf(string, ...interface{}) {}
