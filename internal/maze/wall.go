package maze

// Orientation identifies the axis a wall runs parallel to.
type Orientation int

const (
	ParallelToX Orientation = iota
	ParallelToZ
)

// String returns the string representation of an Orientation.
func (o Orientation) String() string {
	switch o {
	case ParallelToX:
		return "parallel_to_x"
	case ParallelToZ:
		return "parallel_to_z"
	}
	return "unknown"
}

// Disposition is the tri-state resolution of a wall. Interior walls start
// Unknown and are resolved exactly once by the carver; resolution never
// reverts. Border walls are born Present.
type Disposition int

const (
	Unknown Disposition = iota
	Present
	Absent
)

// String returns the string representation of a Disposition.
func (d Disposition) String() string {
	switch d {
	case Unknown:
		return "unknown"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return "invalid"
}

// Wall is one unit boundary segment: either the wall between two
// axis-adjacent rooms or a piece of the outer boundary. X and Z anchor the
// wall at its southwest corner; a ParallelToX wall spans from (X, Z) to
// (X+1, Z), a ParallelToZ wall from (X, Z) to (X, Z+1).
type Wall struct {
	X           int
	Z           int
	Orientation Orientation
	Disposition Disposition
}
