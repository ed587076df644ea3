package quiz

import "codequiz/internal/challenge"

// OptionClass is the visual classification of a single option row.
type OptionClass int

const (
	// ClassNeutral is the default style before and after answering.
	ClassNeutral OptionClass = iota
	// ClassCorrect marks the correct option once any selection exists.
	ClassCorrect
	// ClassIncorrect marks a wrong selected option.
	ClassIncorrect
)

// noSelection is the sentinel for the unanswered state.
const noSelection = -1

// State holds the view state for one rendered challenge. The only mutable
// pieces are the selected option and the explanation visibility; everything
// else is the challenge value itself.
type State struct {
	Challenge       challenge.Challenge
	Selected        int
	ShowExplanation bool
	// DefaultShow is the caller-supplied initial visibility, restored on
	// every challenge change.
	DefaultShow bool
}

// NewState creates the unanswered state for a challenge.
func NewState(c challenge.Challenge, showExplanation bool) State {
	return State{
		Challenge:       c,
		Selected:        noSelection,
		ShowExplanation: showExplanation,
		DefaultShow:     showExplanation,
	}
}

// Answered reports whether a selection has been made.
func (s State) Answered() bool {
	return s.Selected != noSelection
}

// SetChallenge swaps in a new challenge and resets both state fields, so a
// new question never carries over the previous selection or explanation.
func SetChallenge(s State, c challenge.Challenge) State {
	s.Challenge = c
	s.Selected = noSelection
	s.ShowExplanation = s.DefaultShow
	return s
}

// Select records the first selection and forces the explanation visible.
// Once answered, further selections are no-ops.
func Select(s State, index int) State {
	if s.Answered() {
		return s
	}
	s.Selected = index
	s.ShowExplanation = true
	return s
}

// Classify returns the style class for an option index under the current
// state. Out-of-range indices (including a bad correct id) match nothing and
// stay neutral.
func Classify(s State, index int) OptionClass {
	if !s.Answered() {
		return ClassNeutral
	}
	if index == s.Challenge.CorrectAnswerID {
		return ClassCorrect
	}
	if index == s.Selected {
		return ClassIncorrect
	}
	return ClassNeutral
}

// ExplanationVisible reports whether the explanation block renders: the flag
// must be set and a selection must exist.
func (s State) ExplanationVisible() bool {
	return s.ShowExplanation && s.Answered()
}
