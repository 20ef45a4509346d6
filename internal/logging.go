package internal

import (
	"log"
	"os"
)

// InitLogging routes log lines to stderr so the CLI's JSON result stays
// alone on stdout.
func InitLogging() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
