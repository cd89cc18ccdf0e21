package session

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrIncomplete      = errors.New("not every question has an answer")
	ErrBudgetExhausted = errors.New("maximum follow-ups reached")
)

// State is everything one quiz run needs. It lives with the client and is
// discarded on restart; the server only ever sees copies of it.
type State struct {
	ID               uuid.UUID `json:"id"`
	ThemeID          string    `json:"themeId"`
	CurrentIndex     int       `json:"currentIndex"`
	Answers          []string  `json:"answers"`
	InteractionCount int       `json:"interactionCount"`
}

func NewState(themeID string, questionCount int) *State {
	return &State{
		ID:      uuid.New(),
		ThemeID: themeID,
		Answers: make([]string, questionCount),
	}
}

// Answer stores the answer for question i. Answers map to questions by position.
func (s *State) Answer(i int, text string) error {
	if i < 0 || i >= len(s.Answers) {
		return ErrIndexOutOfRange
	}
	s.Answers[i] = text
	return nil
}

// Next moves to the following question and reports whether it moved.
func (s *State) Next() bool {
	if s.CurrentIndex >= len(s.Answers)-1 {
		return false
	}
	s.CurrentIndex++
	return true
}

// Complete returns the ordered answers once every question has one.
func (s *State) Complete() ([]string, error) {
	for _, a := range s.Answers {
		if a == "" {
			return nil, ErrIncomplete
		}
	}
	out := make([]string, len(s.Answers))
	copy(out, s.Answers)
	return out, nil
}

// RecordFollowUp is called after a follow-up succeeded.
func (s *State) RecordFollowUp(b Budget) error {
	if b.Exhausted(s.InteractionCount) {
		return ErrBudgetExhausted
	}
	s.InteractionCount++
	return nil
}
