package printers

import (
	"io"
	"os"
)

// options contains settings shared by all printers
type options struct {
	out io.Writer
}

func defaultOptions() options {
	return options{out: os.Stdout}
}

type hasOptions interface {
	options() *options
}

// WithWriter sends printer output to w instead of standard output
func WithWriter[T hasOptions](w io.Writer) func(T) {
	return func(p T) {
		if w != nil {
			p.options().out = w
		}
	}
}
