package sat

import "github.com/pkg/errors"

// Config is the solver's explicit, all-fields-optional configuration
// (spec.md §6). Zero values are replaced with DefaultConfig's values by
// normalize.
type Config struct {
	// RestartThreshold is the initial conflict budget between restarts.
	RestartThreshold uint32
	// RestartMultiplier is the geometric growth factor applied to
	// RestartThreshold on each restart.
	RestartMultiplier uint32
	// VSIDSIncrement is added to the activity of every variable in a
	// learned clause.
	VSIDSIncrement float64
	// DecayInterval is the number of conflicts between activity decay
	// passes.
	DecayInterval uint32
	// VSIDSDecayRatio is the multiplicative decay applied to every
	// variable's activity each decay pass; must be in (0, 1).
	VSIDSDecayRatio float64
	// RandomSeed seeds tie-breaking randomisation, if enabled. The default
	// decision rule never needs it (ties break on ascending variable id),
	// but it is threaded through for any extension that wants it.
	RandomSeed uint64

	// PhaseSaving reuses a variable's last assigned polarity on its next
	// decision instead of always choosing On. Off by default (spec.md §9
	// Open Question 3), grounded in the teacher's phaseSaving option.
	PhaseSaving bool

	// ReduceLearnedClauses opts into bounded learned-clause-database
	// reduction (spec.md §9 Open Question 5: unbounded by default).
	// Grounded in the teacher's ReduceDB.
	ReduceLearnedClauses bool
}

// DefaultConfig matches the defaults listed in spec.md §6.
var DefaultConfig = Config{
	RestartThreshold:  100,
	RestartMultiplier: 2,
	VSIDSIncrement:    10,
	DecayInterval:     100,
	VSIDSDecayRatio:   0.95,
	RandomSeed:        0,
}

// normalize fills zero-valued fields with DefaultConfig's values. A Config
// built with Go's zero value (all fields 0) is therefore equivalent to
// DefaultConfig. A zero VSIDSDecayRatio is filled in the same way, so
// validate never sees a zero decay ratio from normalize's output.
func (c Config) normalize() Config {
	if c.RestartThreshold == 0 {
		c.RestartThreshold = DefaultConfig.RestartThreshold
	}
	if c.RestartMultiplier == 0 {
		c.RestartMultiplier = DefaultConfig.RestartMultiplier
	}
	if c.VSIDSIncrement == 0 {
		c.VSIDSIncrement = DefaultConfig.VSIDSIncrement
	}
	if c.DecayInterval == 0 {
		c.DecayInterval = DefaultConfig.DecayInterval
	}
	if c.VSIDSDecayRatio == 0 {
		c.VSIDSDecayRatio = DefaultConfig.VSIDSDecayRatio
	}
	return c
}

// validate enforces spec.md §7's configuration-error kind: invalid decay
// ratio, zero decay interval, zero restart threshold, or a restart
// multiplier below 1.
func (c Config) validate() error {
	if c.VSIDSDecayRatio <= 0 || c.VSIDSDecayRatio >= 1 {
		return errors.WithStack(&ConfigurationError{Field: "VSIDSDecayRatio", Reason: "must be in (0, 1)"})
	}
	if c.DecayInterval == 0 {
		return errors.WithStack(&ConfigurationError{Field: "DecayInterval", Reason: "must be non-zero"})
	}
	if c.RestartThreshold == 0 {
		return errors.WithStack(&ConfigurationError{Field: "RestartThreshold", Reason: "must be non-zero"})
	}
	if c.RestartMultiplier < 1 {
		return errors.WithStack(&ConfigurationError{Field: "RestartMultiplier", Reason: "must be >= 1"})
	}
	if c.VSIDSIncrement <= 0 {
		return errors.WithStack(&ConfigurationError{Field: "VSIDSIncrement", Reason: "must be positive"})
	}
	return nil
}
