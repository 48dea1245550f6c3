package logger

import (
	"github.com/allape/spritecut/envar"
	"io"
	"log"
	"os"
)

var (
	verbose = envar.GetBool(envar.SpritecutVerbose)
	quiet   = envar.GetBool(envar.SpritecutQuiet)
)

func init() {
	if verbose {
		log.Println("[logger] verbose mode enabled")
	}
}

func newLogger(w io.Writer, prefix string, enabled bool) *log.Logger {
	if !enabled {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, prefix+" ", log.LstdFlags|log.Lmsgprefix)
}

// New
// progress messages for the operator, silenced by SPRITECUT_QUIET
func New(prefix string) *log.Logger {
	return newLogger(os.Stdout, prefix, !quiet)
}

// NewVerboseLogger writes only when SPRITECUT_VERBOSE is set, quiet or not
func NewVerboseLogger(prefix string) *log.Logger {
	return newLogger(os.Stdout, prefix, verbose)
}
