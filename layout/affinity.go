package layout

// Affinity disambiguates a byte offset that sits exactly on a wrap or inlay
// boundary.
type Affinity int

const (
	// Before binds the offset to the row and column preceding the boundary.
	Before Affinity = iota
	// After binds the offset to the row and column following the boundary.
	After
)

func (a Affinity) String() string {
	switch a {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "affinity(?)"
	}
}
