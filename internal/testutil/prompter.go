package testutil

import (
	"context"
	"errors"
)

// ErrNoAnswer is returned when a ScriptedPrompter runs out of answers.
var ErrNoAnswer = errors.New("no scripted answer")

// ScriptedPrompter answers confirmations from a fixed script.
type ScriptedPrompter struct {
	// Answers are consumed in order.
	Answers []bool

	// Err, when set, is returned instead of an answer.
	Err error

	// Questions records every question asked.
	Questions []string
}

// Confirm implements prompt.Prompter.
func (p *ScriptedPrompter) Confirm(ctx context.Context, question string) (bool, error) {
	p.Questions = append(p.Questions, question)
	if p.Err != nil {
		return false, p.Err
	}
	if len(p.Answers) == 0 {
		return false, ErrNoAnswer
	}
	ok := p.Answers[0]
	p.Answers = p.Answers[1:]
	return ok, nil
}
