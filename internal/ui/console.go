// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize step banners, separators, and notices across the pipeline.
package ui

import (
	"fmt"
	"io"
	"strings"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Command announces the external command about to run.
// Example: ▶ git checkout feature-x
func (c *Console) Command(argv []string) {
	fmt.Fprintf(c.Out, "▶ %s\n", strings.Join(argv, " "))
}

// Separator prints a dashed line after a command's output.
func (c *Console) Separator() {
	fmt.Fprintln(c.Out, strings.Repeat("─", 40))
}

// Skip prints a skip notice for a gated-off step.
func (c *Console) Skip(name string) {
	fmt.Fprintf(c.Out, "skipping %s\n", name)
}

// Success prints a success message with a checkmark.
func (c *Console) Success(msg string) {
	fmt.Fprintf(c.Out, "✅ %s\n", msg)
}

// Info prints an info message with an arrow.
func (c *Console) Info(msg string) {
	fmt.Fprintf(c.Out, "➜ %s\n", msg)
}

// Warn prints a non-fatal warning.
func (c *Console) Warn(msg string) {
	fmt.Fprintf(c.Out, "⚠️  %s\n", msg)
}
