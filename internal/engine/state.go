package engine

import (
	"errors"
	"log/slog"
	"net/url"
	"time"

	"github.com/tartampluch/go-yourage/internal/config"
)

// State is one immutable snapshot of the widget.
// It is replaced wholesale on every action, never mutated.
type State struct {
	Name        string
	Birthday    Date // zero when unset or unparseable
	CurrentTime time.Time
}

// NewState builds the initial snapshot from decoded query parameters.
func NewState(p QueryParams, now time.Time) State {
	return State{Name: p.Name, Birthday: p.Birthday, CurrentTime: now}
}

// Query projects the state onto its URL query parameters.
func (s State) Query() QueryParams {
	return QueryParams{Name: s.Name, Birthday: s.Birthday}
}

// Action is a requested state change. The set is closed: Tick,
// UpdateName and UpdateBirthday.
type Action interface {
	kind() string
}

// Tick refreshes the current time.
type Tick struct {
	At time.Time
}

// UpdateName replaces the name with raw user text.
type UpdateName struct {
	Text string
}

// UpdateBirthday replaces the birthday with raw user text (YYYY-MM-DD).
type UpdateBirthday struct {
	Text string
}

func (Tick) kind() string           { return "tick" }
func (UpdateName) kind() string     { return "update_name" }
func (UpdateBirthday) kind() string { return "update_birthday" }

// Reduce applies a to s and returns the successor state. The boolean reports
// whether the query projection must be persisted; it is
// false only for ticks. Reduce is total: no action is ever rejected.
func Reduce(s State, a Action) (State, bool) {
	switch a := a.(type) {
	case Tick:
		s.CurrentTime = a.At
		return s, false

	case UpdateName:
		s.Name = a.Text
		return s, true

	case UpdateBirthday:
		d, err := ParseDate(a.Text)
		if err != nil {
			// Unparseable input clears the birthday; the UI shows the prompt.
			slog.Debug(config.MsgBadDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, a.Text,
			)
			d = Date{}
		}
		s.Birthday = d
		return s, true
	}

	return s, false
}

// ErrMissingInput reports an input-change event that carried no value.
// It is a contract violation of the input collaborator, not a domain error.
var ErrMissingInput = errors.New(config.ErrMissingInput)

// ActionFromInput turns one input-change event into an action. field is
// config.QueryKeyName or config.QueryKeyBirthday; values holds the event data
// (an HTML form submission or equivalent). A field absent from values yields
// ErrMissingInput, an empty value is a legitimate edit.
func ActionFromInput(field string, values url.Values) (Action, error) {
	raw, ok := values[field]
	if !ok || len(raw) == 0 {
		return nil, ErrMissingInput
	}

	switch field {
	case config.QueryKeyName:
		return UpdateName{Text: raw[0]}, nil
	case config.QueryKeyBirthday:
		return UpdateBirthday{Text: raw[0]}, nil
	}
	return nil, ErrMissingInput
}
