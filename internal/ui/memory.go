package ui

import (
	"slices"
	"sync"
)

type MemorySelect struct {
	mu      sync.RWMutex
	options []Option
	value   string
}

func (s *MemorySelect) AddOption(value, label string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = append(s.options, Option{Value: value, Label: label})
}

func (s *MemorySelect) ClearOptions() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = nil
	s.value = ""
}

func (s *MemorySelect) Options() []Option {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.options)
}

func (s *MemorySelect) SetValue(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = ""
	for _, o := range s.options {
		if o.Value == value {
			s.value = value
			return
		}
	}
}

func (s *MemorySelect) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

type MemoryImage struct {
	mu  sync.RWMutex
	src string
}

func (i *MemoryImage) SetSource(url string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.src = url
}

func (i *MemoryImage) Source() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.src
}

type MemoryText struct {
	mu   sync.RWMutex
	text string
}

func (t *MemoryText) SetText(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.text = text
}

func (t *MemoryText) Text() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.text
}

// MemoryNotifier queues notifications until they are drained.
type MemoryNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *MemoryNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

// Drain returns the pending notifications and clears the queue.
func (n *MemoryNotifier) Drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := n.messages
	n.messages = nil
	if out == nil {
		out = []string{}
	}
	return out
}

// MemoryPage is a server-side page whose state can be read back as a PageState.
type MemoryPage struct {
	Source     *MemorySelect
	Target     *MemorySelect
	SourceFlag *MemoryImage
	TargetFlag *MemoryImage
	Result     *MemoryText
	Notifier   *MemoryNotifier
}

func NewMemoryPage() *MemoryPage {
	return &MemoryPage{
		Source:     &MemorySelect{},
		Target:     &MemorySelect{},
		SourceFlag: &MemoryImage{},
		TargetFlag: &MemoryImage{},
		Result:     &MemoryText{},
		Notifier:   &MemoryNotifier{},
	}
}

// Page exposes the memory widgets through the element interfaces.
func (p *MemoryPage) Page() Page {
	return Page{
		Source:     p.Source,
		Target:     p.Target,
		SourceFlag: p.SourceFlag,
		TargetFlag: p.TargetFlag,
		Result:     p.Result,
		Notifier:   p.Notifier,
	}
}

type PageState struct {
	SourceOptions []Option `json:"source_options"`
	TargetOptions []Option `json:"target_options"`
	Source        string   `json:"source"`
	Target        string   `json:"target"`
	SourceFlag    string   `json:"source_flag"`
	TargetFlag    string   `json:"target_flag"`
	Result        string   `json:"result"`
	Notifications []string `json:"notifications"`
}

// Snapshot captures the page and drains pending notifications.
func (p *MemoryPage) Snapshot() PageState {
	state := PageState{
		SourceOptions: p.Source.Options(),
		TargetOptions: p.Target.Options(),
		Source:        p.Source.Value(),
		Target:        p.Target.Value(),
		SourceFlag:    p.SourceFlag.Source(),
		TargetFlag:    p.TargetFlag.Source(),
		Result:        p.Result.Text(),
		Notifications: p.Notifier.Drain(),
	}
	if state.SourceOptions == nil {
		state.SourceOptions = []Option{}
	}
	if state.TargetOptions == nil {
		state.TargetOptions = []Option{}
	}
	return state
}
