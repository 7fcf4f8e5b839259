// oneloop - word-frequency report for one line of text
//
// Prompts for a line on standard input, normalizes it, and prints the
// totals, the average word length and the five most common words.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kolkov/oneloop"
	"github.com/kolkov/oneloop/internal/logging"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: oneloop [-d] [--log-format text|json]"
	longUsage  = `Reads one line from standard input and prints a word-frequency report.

Debugging arguments:
  -d                  log pipeline stages to stderr
  --log-format fmt    log format: text (default), json

Other:
  -h, --help          show this help message
  -version            show oneloop version and exit
`
)

func main() {
	logLevel := "warn"
	logFormat := "text"

	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		switch arg {
		case "-d":
			logLevel = "debug"
		case "--log-format":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: --log-format")
			}
			i++
			logFormat = os.Args[i]
		case "-h", "--help":
			fmt.Printf("oneloop %s\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("oneloop version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			os.Exit(0)
		default:
			switch {
			case strings.HasPrefix(arg, "--log-format="):
				logFormat = strings.TrimPrefix(arg, "--log-format=")
			default:
				errorExitf("flag provided but not defined: %s\n%s", arg, shortUsage)
			}
		}
	}
	if logFormat != "text" && logFormat != "json" {
		errorExitf("invalid log format: %s", logFormat)
	}

	// Output stays unbuffered so the prompt shows before the read blocks.
	config := &oneloop.Config{
		Input:  os.Stdin,
		Output: os.Stdout,
		Logger: logging.New(logLevel, logFormat, os.Stderr),
	}

	if _, err := oneloop.Run(config); err != nil {
		errorExit(err)
	}
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "oneloop: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "oneloop: %v\n", err)
	os.Exit(1)
}
