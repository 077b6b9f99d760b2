package detail

import (
	"fmt"
	"strings"
)

type Loading struct {
	Message string `json:"message"`
}

type ErrorPanel struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ActionLabel string `json:"actionLabel"`
}

// Status is the loading or error panel shown in place of a detail view.
type Status struct {
	State   State       `json:"state"`
	Loading *Loading    `json:"loading,omitempty"`
	Error   *ErrorPanel `json:"error,omitempty"`
}

// StatusFor builds the panel for an entity ("customer", "merchant").
func StatusFor(entity string, state State, err error) Status {
	s := Status{State: state}
	switch state {
	case StateIdle, StateLoading:
		s.Loading = &Loading{Message: fmt.Sprintf("Loading %s details...", entity)}
	case StateError:
		msg := fmt.Sprintf("There was an error loading the %s data. Please try again.", entity)
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		s.Error = &ErrorPanel{
			Title:       "Error Loading " + strings.ToUpper(entity[:1]) + entity[1:],
			Message:     msg,
			ActionLabel: "Retry",
		}
	}
	return s
}
