// Package prompttest provides a scripted prompt.Prompter for tests.
package prompttest

import (
	"github.com/poonai/ginit/internal/prompt"
)

// Default answers a question with its default.
const Default = "\x00default"

// Script answers questions from queues. Exhausted queues answer with the
// default, so a zero Script accepts every default.
type Script struct {
	Answers    []string
	Choices    []string
	Selections [][]string
	Err        error

	Asked       []prompt.Question
	Selects     []string
	MultiLabels []string
	MultiOffers [][]string
}

var _ prompt.Prompter = (*Script)(nil)

func (s *Script) Input(q prompt.Question) (string, error) {
	s.Asked = append(s.Asked, q)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Answers) == 0 {
		return q.Default, nil
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	if answer == Default {
		return q.Default, nil
	}
	return answer, nil
}

func (s *Script) Select(label string, options []string, def string) (string, error) {
	s.Selects = append(s.Selects, label)
	if s.Err != nil {
		return "", s.Err
	}
	if len(s.Choices) == 0 {
		return def, nil
	}
	choice := s.Choices[0]
	s.Choices = s.Choices[1:]
	if choice == Default {
		return def, nil
	}
	return choice, nil
}

func (s *Script) MultiSelect(label string, options []string, defaults []string) ([]string, error) {
	s.MultiLabels = append(s.MultiLabels, label)
	s.MultiOffers = append(s.MultiOffers, append([]string(nil), options...))
	if s.Err != nil {
		return nil, s.Err
	}
	if len(s.Selections) == 0 {
		return defaults, nil
	}
	sel := s.Selections[0]
	s.Selections = s.Selections[1:]
	if sel == nil {
		return defaults, nil
	}
	return sel, nil
}
