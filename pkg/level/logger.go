package level

import (
	"io"
	"log"
)

var logger = log.New(io.Discard, "level: ", log.LstdFlags)

// SetLogger routes loader diagnostics to l.
func SetLogger(l *log.Logger) {
	logger = l
}
