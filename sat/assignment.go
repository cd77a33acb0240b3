package sat

// Assignment is a lifted boolean: exactly one of {On, Off, Unassigned},
// following spec.md §3. Named on/off rather than true/false to match the
// domain vocabulary of the original fabko compiler backend this solver is
// derived from, while keeping the teacher's lifted-boolean technique
// (Opposite, String) from internal/sat/lbool.go.
type Assignment int8

const (
	Unassigned Assignment = 0
	On         Assignment = 1
	Off        Assignment = -1
)

// Opposite returns the assignment that falsifies what this one satisfies.
func (a Assignment) Opposite() Assignment { return -a }

// Satisfies reports whether this assignment satisfies literal l.
func (a Assignment) Satisfies(l Literal) bool {
	switch a {
	case On:
		return l.IsPositive()
	case Off:
		return !l.IsPositive()
	default:
		return false
	}
}

// Falsifies reports whether this assignment falsifies literal l.
func (a Assignment) Falsifies(l Literal) bool {
	if a == Unassigned {
		return false
	}
	return !a.Satisfies(l)
}

func (a Assignment) String() string {
	switch a {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unassigned"
	}
}

// FromBool lifts a plain bool into an Assignment.
func FromBool(b bool) Assignment {
	if b {
		return On
	}
	return Off
}
