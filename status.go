package bytevec

// Status is the sticky outcome of the last failed operation on a Vector.
type Status uint8

const (
	// StatusOK means no failure has been recorded.
	StatusOK Status = iota
	// StatusAllocationError means a required growth or shrink failed.
	StatusAllocationError
	// StatusFreed means the vector was freed and must be re-initialized before use.
	StatusFreed
)

// String returns the string representation of a Status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAllocationError:
		return "allocation_error"
	case StatusFreed:
		return "freed"
	default:
		return "unknown"
	}
}
