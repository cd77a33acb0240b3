package sat

import "github.com/pkg/errors"

// Error kinds, per spec.md §7. Unsatisfiable is deliberately not in this
// list: it is a result (an empty solution list with a status), never an
// error, and is returned through Solve's normal return channel.
var (
	// ErrConfiguration is wrapped by NewSolver when the supplied Config is
	// invalid. Fatal to solver construction.
	ErrConfiguration = errors.New("sat: invalid configuration")

	// ErrSolver is wrapped when an internal invariant is violated (e.g. a
	// fixpoint with unsatisfied clauses and no decision possible). It
	// indicates a bug, aborts the current Solve call, and leaves the
	// solver in an undefined state.
	ErrSolver = errors.New("sat: internal solver invariant violated")
)

// ConfigurationError describes why a Config failed validation.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "sat: invalid configuration field " + e.Field + ": " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// SolverError describes an internal invariant violation, including enough
// of the partial trail to debug it (spec.md §7: "surfaced upward with the
// partial trail for debugging").
type SolverError struct {
	Reason           string
	DecisionLevel    int
	TrailLength      int
	PartialAssignment []Literal
}

func (e *SolverError) Error() string {
	return "sat: " + e.Reason
}

func (e *SolverError) Unwrap() error { return ErrSolver }
