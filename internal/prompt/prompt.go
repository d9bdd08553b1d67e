// Package prompt asks the user questions on the terminal.
package prompt

import (
	"fmt"
	"strings"
)

// Question is a single line of free text.
type Question struct {
	Label   string
	Default string
	Secret  bool
	// Validate rejects an answer; Ask asks again with the error shown.
	Validate func(string) error
	// Problem is the reason the previous answer was rejected.
	Problem string
}

// Prompter collects answers from the user.
type Prompter interface {
	Input(q Question) (string, error)
	Select(label string, options []string, def string) (string, error)
	MultiSelect(label string, options []string, defaults []string) ([]string, error)
}

// Required rejects blank answers with msg.
func Required(msg string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// Ask asks q until its validator accepts the answer.
func Ask(p Prompter, q Question) (string, error) {
	for {
		answer, err := p.Input(q)
		if err != nil {
			return "", err
		}
		if q.Validate == nil {
			return answer, nil
		}
		if verr := q.Validate(answer); verr != nil {
			q.Problem = verr.Error()
			continue
		}
		return answer, nil
	}
}
