package procs

// Proc is a resumable step: Run does a bounded amount of work and
// returns the next step, or nil when finished.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}
