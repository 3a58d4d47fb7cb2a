package ui

import "sync"

// Event is one message captured by a Recorder.
type Event struct {
	Kind    string
	Message string
}

const (
	KindInfo    = "info"
	KindSuccess = "success"
)

// Recorder is a Sink that keeps every message in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Info(msg string)    { r.add(KindInfo, msg) }
func (r *Recorder) Success(msg string) { r.add(KindSuccess, msg) }

func (r *Recorder) add(kind, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Kind: kind, Message: msg})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Messages returns the recorded messages of one kind.
func (r *Recorder) Messages(kind string) []string {
	var out []string
	for _, e := range r.Events() {
		if e.Kind == kind {
			out = append(out, e.Message)
		}
	}
	return out
}
