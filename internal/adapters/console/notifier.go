package console

import (
	"fmt"
	"io"
)

// Dialog titles.
const (
	TitleValidation = "Validación"
	TitleSuccess    = "Éxito"
)

// Notifier implements ports.Notifier. Warnings go to errw, information to out.
type Notifier struct {
	out  io.Writer
	errw io.Writer
}

// NewNotifier creates a notifier.
func NewNotifier(out, errw io.Writer) *Notifier {
	return &Notifier{out: out, errw: errw}
}

// Warn prints a warning.
func (n *Notifier) Warn(title, msg string) {
	fmt.Fprintf(n.errw, "[%s] %s\n", title, msg)
}

// Info prints an informational message.
func (n *Notifier) Info(title, msg string) {
	fmt.Fprintf(n.out, "[%s] %s\n", title, msg)
}
