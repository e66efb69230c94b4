package model

// Event names an occurrence a widget kind declares support for.
type Event string

const (
	EventClicked       Event = "clicked"
	EventChanged       Event = "changed"
	EventDoubleClicked Event = "doubleClicked"
	EventFocused       Event = "focused"
	EventBlurred       Event = "blurred"
)

// ActionType discriminates the effect attached to an event.
type ActionType string

const (
	// ActionIncrement adds one to a numeric variable.
	ActionIncrement ActionType = "increment"

	// ActionSet assigns a literal or expression to a variable.
	ActionSet ActionType = "set"

	// ActionCode injects a raw source fragment into the generated handler.
	ActionCode ActionType = "code"
)

// Action is the effect a node attaches to one of its events. A node owns at
// most one action per supported event.
type Action struct {
	Type     ActionType `json:"type"`
	Variable string     `json:"variable,omitempty"`
	Value    string     `json:"value,omitempty"`
	Code     string     `json:"code,omitempty"`
}
