package grids

// Cell addresses a slot in the unbounded screen grid. Negative
// coordinates are valid.
type Cell struct {
	Column int
	Row    int
}
