// Where: internal/interaction/interaction.go
// What: Interactive primitives for confirmation prompts and TTY detection.
// Why: Centralize user interaction so the pipeline stays focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Confirmer answers a yes/no question guarding a destructive operation.
type Confirmer interface {
	// Confirm returns true when the operator accepts the question.
	// The default answer is yes.
	Confirm(question string) (bool, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Auto is a Confirmer that accepts every question without any I/O.
// Wired when the operator passes --yes.
type Auto struct{}

func (Auto) Confirm(string) (bool, error) { return true, nil }

// Terminal is a Confirmer for interactive use. On a TTY it presents a
// huh confirmation widget defaulting to yes; otherwise it falls back to
// reading a single line from stdin.
type Terminal struct{}

func (Terminal) Confirm(question string) (bool, error) {
	if !IsTerminal(os.Stdin) {
		return Reader{In: os.Stdin, Out: os.Stderr}.Confirm(question)
	}

	confirmed := true
	err := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed).
		Run()
	if err != nil {
		// Ctrl-C or a closed terminal counts as a decline, not a failure.
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return confirmed, nil
}

// Reader is a Confirmer reading one line from In. Empty input, EOF,
// "y", and "yes" (case-insensitive) accept; anything else declines.
type Reader struct {
	In  io.Reader
	Out io.Writer
}

func (r Reader) Confirm(question string) (bool, error) {
	if r.Out != nil {
		io.WriteString(r.Out, question+" [Y/n]: ")
	}
	line, err := bufio.NewReader(r.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
