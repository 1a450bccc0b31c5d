// Package terminal is for terminal outputting
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

type Terminal struct {
	out io.Writer
	err io.Writer

	Green  func(format string, a ...interface{}) string
	Yellow func(format string, a ...interface{}) string
	Red    func(format string, a ...interface{}) string
}

func New() (t *Terminal) {
	return NewWithWriters(os.Stdout, os.Stderr)
}

func NewWithWriters(out io.Writer, errOut io.Writer) *Terminal {
	return &Terminal{
		out:    out,
		err:    errOut,
		Green:  color.New(color.FgGreen).SprintfFunc(),
		Yellow: color.New(color.FgYellow).SprintfFunc(),
		Red:    color.New(color.FgRed).SprintfFunc(),
	}
}

// Out is where tables and other primary output go.
func (t *Terminal) Out() io.Writer {
	return t.out
}

func (t *Terminal) Vprint(a string) {
	fmt.Fprintln(t.out, a)
}

func (t *Terminal) Eprint(a string) {
	fmt.Fprintln(t.err, a)
}

func (t *Terminal) Eprintf(format string, a ...interface{}) {
	fmt.Fprintf(t.err, format, a...)
}
