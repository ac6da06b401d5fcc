// Package level sequences a story arc into level records. A Generator walks the arc
// one beat per call and fabricates the typed data payloads each beat declares.
package level

// Status represents where a generator session stands on its arc.
type Status int

const (
	// StatusActive means the next call produces a story level.
	StatusActive Status = iota
	// StatusComplete means the arc is exhausted and every call produces the END record.
	StatusComplete
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusComplete:
		return "complete"
	default:
		return "unknown"
	}
}
