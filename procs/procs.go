package procs

// Procs runs its elements in order, one Run call at a time. A step
// returning a continuation stays at the head until it finishes.
type Procs[C any] []Proc[C]

var _ Proc[any] = Procs[any]{}

func (p Procs[C]) Run(ctx C) (Proc[C], error) {
	if len(p) == 0 {
		return nil, nil
	}
	next, err := p[0].Run(ctx)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return p[1:], nil
	}
	p[0] = next
	return p, nil
}
