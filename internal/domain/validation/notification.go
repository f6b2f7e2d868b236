package validation

import "strings"

// Error is a single validation problem. It carries a message only; field
// names, when useful, are part of the message.
type Error struct {
	Message string
}

// NewError creates a validation error with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

// Notification accumulates validation errors instead of failing on the
// first one. All checks for a command append into one Notification so the
// caller sees every problem at once. A Notification with at least one
// error is itself usable as an error value.
type Notification struct {
	errors []Error
}

// NewNotification creates an empty Notification.
func NewNotification() *Notification {
	return &Notification{}
}

// Append adds an error and returns the notification for chaining.
func (n *Notification) Append(err Error) *Notification {
	n.errors = append(n.errors, err)
	return n
}

// AppendMessage adds an error built from a plain message.
func (n *Notification) AppendMessage(message string) *Notification {
	return n.Append(NewError(message))
}

// Merge appends every error from other, preserving order.
func (n *Notification) Merge(other *Notification) *Notification {
	if other == nil {
		return n
	}
	n.errors = append(n.errors, other.errors...)
	return n
}

// HasErrors reports whether at least one error was collected.
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// Errors returns the collected errors in append order.
func (n *Notification) Errors() []Error {
	out := make([]Error, len(n.errors))
	copy(out, n.errors)
	return out
}

// Messages returns the collected error messages in append order.
func (n *Notification) Messages() []string {
	out := make([]string, len(n.errors))
	for i, e := range n.errors {
		out[i] = e.Message
	}
	return out
}

// Error implements the error interface by joining all messages.
func (n *Notification) Error() string {
	return strings.Join(n.Messages(), "; ")
}
