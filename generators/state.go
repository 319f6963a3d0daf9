package generators

// State is an immutable snapshot of a conversation. Implementations
// form a decorator stack: each AppendContent returns a new value and
// may mirror the turn somewhere (a terminal, a session buffer) before
// delegating to the wrapped state. Unwrap exposes the stack for As.
type State interface {
	SystemPrompt() string
	Contents() []*Content
	AppendContent(*Content) (State, error)
	Flush() (State, error)
	Unwrap() State
}
