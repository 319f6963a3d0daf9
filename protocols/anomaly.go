package protocols

// AnomalyKind classifies a tolerated protocol violation.
type AnomalyKind string

const (
	// SCREEN_EDIT named a screen that does not exist yet.
	AnomalyEditUnknownScreen AnomalyKind = "edit-unknown-screen"
	// SCREEN_EDIT carried a position payload. Positions are fixed at
	// creation.
	AnomalyEditWithPosition AnomalyKind = "edit-with-position"
	// Two distinct display names derive to the same id.
	AnomalyIDCollision AnomalyKind = "id-collision"
	// SCREEN_START arrived while another screen was still open.
	AnomalyUnterminatedScreen AnomalyKind = "unterminated-screen"
)

// Anomaly reports a violation the parser worked around. The producer
// is a probabilistic text generator, so nothing it emits is fatal:
// the parser degrades and reports.
type Anomaly struct {
	Kind   AnomalyKind `json:"kind"`
	Screen string      `json:"screen"`
}
