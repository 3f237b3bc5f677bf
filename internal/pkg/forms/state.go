// Package forms holds the per-submission form state and the workflow every
// page form goes through: Idle, Validating, Submitting, then Redirecting on
// success or back to Idle with a message on failure.
package forms

import "time"

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhaseSubmitting
	PhaseRedirecting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseValidating:
		return "validating"
	case PhaseSubmitting:
		return "submitting"
	case PhaseRedirecting:
		return "redirecting"
	default:
		return "unknown"
	}
}

// Navigation is where a page goes after a successful submission. State is
// handed to the destination page once.
type Navigation struct {
	Path  string            `json:"path"`
	State map[string]string `json:"state,omitempty"`
	Flash string            `json:"flash,omitempty"`
	Delay time.Duration     `json:"delay,omitempty"`
}

func NavigateTo(path string) *Navigation {
	return &Navigation{Path: path}
}

func (n *Navigation) WithState(key, value string) *Navigation {
	if n.State == nil {
		n.State = make(map[string]string)
	}
	n.State[key] = value
	return n
}

func (n *Navigation) WithFlash(message string) *Navigation {
	n.Flash = message
	return n
}

func (n *Navigation) After(delay time.Duration) *Navigation {
	n.Delay = delay
	return n
}

type State struct {
	Name     string
	Values   map[string]string
	Errors   map[string]string
	Message  string
	Phase    Phase
	Busy     bool
	// Rejected marks an attempt turned away because the same form was busy.
	Rejected bool
	Redirect *Navigation
	// Data carries whatever a list page loaded next to its form.
	Data     interface{}
}

func NewState(name string, values map[string]string) *State {
	if values == nil {
		values = make(map[string]string)
	}
	return &State{
		Name:   name,
		Values: values,
		Errors: make(map[string]string),
		Phase:  PhaseIdle,
	}
}

func (s *State) Value(field string) string {
	return s.Values[field]
}

func (s *State) Error(field string) string {
	return s.Errors[field]
}

func (s *State) HasErrors() bool {
	return len(s.Errors) > 0
}

func (s *State) Redirecting() bool {
	return s.Phase == PhaseRedirecting
}

func (s *State) startValidating() {
	s.Phase = PhaseValidating
	s.Errors = make(map[string]string)
}

func (s *State) invalid(fieldErrors map[string]string, message string) {
	s.Errors = fieldErrors
	s.Message = message
	s.Phase = PhaseIdle
}

func (s *State) startSubmitting() {
	s.Phase = PhaseSubmitting
	s.Busy = true
}

func (s *State) succeed(message string, navigation *Navigation) {
	s.Busy = false
	s.Message = message
	if navigation == nil {
		s.Phase = PhaseIdle
		return
	}
	if navigation.Flash == "" {
		navigation.Flash = message
	}
	s.Redirect = navigation
	s.Phase = PhaseRedirecting
}

func (s *State) reject(message string) {
	s.Busy = false
	s.Rejected = true
	s.Message = message
	s.Phase = PhaseIdle
}

func (s *State) fail(message string) {
	s.Busy = false
	s.Message = message
	s.Phase = PhaseIdle
}
