// Package prompt asks the operator yes/no questions.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Prompter asks a yes/no question. A false answer with a nil error means the
// operator declined (or input ended).
type Prompter interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// New returns a huh-based prompter when in is a terminal and a line prompter
// otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &Terminal{}
	}
	return &Line{In: in, Out: out}
}

// Terminal renders an interactive confirm field.
type Terminal struct{}

// Confirm implements Prompter.
func (p *Terminal) Confirm(ctx context.Context, question string) (bool, error) {
	var ok bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// Line reads answers one line at a time. Empty lines repeat the question;
// an answer starting with y or Y is a yes, anything else a no.
type Line struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Prompter.
func (p *Line) Confirm(ctx context.Context, question string) (bool, error) {
	sc := bufio.NewScanner(p.In)
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(p.Out, "%s y/n: ", question)
		if !sc.Scan() {
			fmt.Fprintln(p.Out)
			return false, sc.Err()
		}
		answer := strings.TrimRight(sc.Text(), "\r")
		if answer == "" {
			continue
		}
		return answer[0] == 'y' || answer[0] == 'Y', nil
	}
}
