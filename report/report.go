// Package report prints command-line errors
package report

import (
	"os"

	"github.com/pterm/pterm"
)

// Error prints err without exiting.
func Error(err error) {
	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err)
	os.Exit(1)
}
