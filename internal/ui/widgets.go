package ui

// Option is a single entry of a selection control.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type SelectControl interface {
	AddOption(value, label string)
	ClearOptions()
	Options() []Option
	// SetValue selects value. Selecting a value that is not offered leaves nothing selected.
	SetValue(value string)
	Value() string
}

type ImageSlot interface {
	SetSource(url string)
}

type TextDisplay interface {
	SetText(text string)
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// Page groups the elements the controller drives.
type Page struct {
	Source     SelectControl
	Target     SelectControl
	SourceFlag ImageSlot
	TargetFlag ImageSlot
	Result     TextDisplay
	Notifier   Notifier
}
