// Package output renders command results for the terminal.
package output

import (
	"io"
)

type writer interface {
	write() error
}

// Write writes data to out as aligned columns.
func Write(data interface{}, out io.Writer) error {
	var w writer = &columnOutput{
		data:   data,
		writer: out,
	}
	return w.write()
}
