package generators

// Token and byte quantities read better in these units.
var (
	K = 1 << 10
	M = 1 << 20
	G = 1 << 30
)
