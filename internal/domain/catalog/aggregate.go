package catalog

import "github.com/streamhaven/catalog/internal/domain/events"

// AggregateRoot carries the list of domain events an aggregate has raised
// but that have not been published yet. The aggregate itself never performs
// I/O; the application layer drains the list after a successful save.
type AggregateRoot struct {
	pending []events.Event
}

// RegisterEvent appends an event to the pending list.
func (a *AggregateRoot) RegisterEvent(event events.Event) {
	if event == nil {
		return
	}
	a.pending = append(a.pending, event)
}

// PendingEvents returns the events raised since the last drain, in the
// order they were registered.
func (a *AggregateRoot) PendingEvents() []events.Event {
	out := make([]events.Event, len(a.pending))
	copy(out, a.pending)
	return out
}

// ClearEvents discards the pending list. Called after the events have been
// handed to a publisher.
func (a *AggregateRoot) ClearEvents() {
	a.pending = nil
}
