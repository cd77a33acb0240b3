package sat

import (
	"github.com/fabsolve/cdclsat/cnf"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// status mirrors the solver's state machine from spec.md §4.J:
// building -> ready -> searching -> {sat, unsat, error}.
type status int8

const (
	statusReady status = iota
	statusSearching
	statusSat
	statusUnsat
	statusError
)

// Solver is the top-level driver (spec.md §4.J), combining the store (A, C),
// the watcher (D), propagation (E), conflict analysis (F), backtracking
// (G), VSIDS (H), and restarts (I) into the solve(N) loop.
type Solver struct {
	engine *engine
	vsids  *vsids
	cfg    Config
	log    *logrus.Logger

	varIDs     map[int]VarID
	dimacsNums []int // ascending, for deterministic Solution ordering

	restarts              *restartPolicy
	conflictsSinceRestart uint32

	learned *learnedClauses // nil unless Config.ReduceLearnedClauses is set

	rootUnsat bool
	status    status
	stats     Stats
}

// NewSolver validates cfg, builds the variable/clause store from model
// (spec.md §4.C), and returns a Solver in the "ready" state. An invalid
// config fails construction with a *ConfigurationError (spec.md §7); the
// solver is never constructed in that case.
func NewSolver(model *cnf.Model, cfg Config, log *logrus.Logger) (*Solver, error) {
	cfg = cfg.normalize()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
	}

	e, h, varIDs, rootUnsat := buildFromModel(model, cfg)

	dimacsNums := make([]int, len(model.Variables))
	copy(dimacsNums, model.Variables)

	var learned *learnedClauses
	if cfg.ReduceLearnedClauses {
		learned = newLearnedClauses(len(model.Clauses))
	}

	return &Solver{
		engine:     e,
		vsids:      h,
		cfg:        cfg,
		log:        log,
		varIDs:     varIDs,
		dimacsNums: dimacsNums,
		restarts:   newRestartPolicy(cfg),
		learned:    learned,
		rootUnsat:  rootUnsat,
		status:     statusReady,
		stats:      Stats{conflictRateEMA: newEMA(conflictRateEMADecay)},
	}, nil
}

// Statistics returns a snapshot of the solver's monotone counters
// (spec.md §3).
func (s *Solver) Statistics() Stats { return s.stats }

// VariableMetadata returns the opaque provenance value supplied for the
// DIMACS variable dimacsNum via cnf.Model.VariableMetadata, if any, and
// whether dimacsNum is a variable of this instance at all.
func (s *Solver) VariableMetadata(dimacsNum int) (Metadata, bool) {
	id, ok := s.varIDs[dimacsNum]
	if !ok {
		return nil, false
	}
	return s.engine.vars.Metadata(id), true
}

// LiveLearnedClauses returns the number of learned clauses currently held in
// the clause database, as opposed to Statistics().LearnedClauses, which
// counts every learned clause ever added and never decreases. The two
// diverge once Config.ReduceLearnedClauses starts evicting clauses.
func (s *Solver) LiveLearnedClauses() int {
	n := 0
	for _, cid := range s.engine.clauses.Ids() {
		if s.engine.clauses.IsLearnt(cid) {
			n++
		}
	}
	return n
}

// backtrackTo undoes the trail to level and reinserts every variable it
// freed back into the decision heuristic's candidate set (spec.md §4.G/
// §4.H), so a freshly unassigned variable can be picked again.
func (s *Solver) backtrackTo(level int) {
	for _, u := range s.engine.backtrack(level) {
		s.vsids.reinsert(s.engine.vars, s.engine.vars.offset(u.id), u.lastValue)
	}
}

// Solve runs the driver loop (spec.md §4.J) until it has collected req's
// requested number of solutions, exhausted the search space, or hit an
// internal invariant violation. It returns the solutions found so far
// (possibly fewer than requested, on UNSAT) and a non-nil error only for a
// *SolverError (spec.md §7); unsatisfiability is a plain empty-or-partial
// result, never an error.
func (s *Solver) Solve(req SolutionRequest) ([]Solution, error) {
	s.status = statusSearching
	s.log.WithFields(logrus.Fields{"variables": len(s.dimacsNums)}).Debug("solve: starting")

	if !req.all && req.count == 0 {
		// spec.md §9 Open Question 4: solve(0) is UNSAT with no work done.
		s.status = statusUnsat
		return nil, nil
	}

	if s.rootUnsat {
		s.status = statusUnsat
		s.log.Info("solve: UNSAT (conflicting clause at construction)")
		return nil, nil
	}

	// Step 1: root propagation (spec.md §4.J.1).
	if conflict, hasConflict := s.engine.propagate(&s.stats); hasConflict {
		_ = conflict
		s.status = statusUnsat
		s.log.Info("solve: UNSAT (conflict during root propagation)")
		return nil, nil
	}

	var solutions []Solution

	for {
		if s.restarts.due(s.conflictsSinceRestart) {
			s.backtrackTo(0)
			s.conflictsSinceRestart = 0
			s.restarts.reset()
			s.stats.Restarts++
			s.log.WithField("restarts", s.stats.Restarts).Debug("solve: restart")

			if s.learned != nil {
				s.learned.grow()
				if removed := s.engine.reduceLearnedClauses(s.learned); removed > 0 {
					s.log.WithField("removed", removed).Debug("solve: reduced learned clause database")
				}
			}
		}

		conflict, hasConflict := s.engine.propagate(&s.stats)
		if hasConflict {
			s.stats.Conflicts++
			s.stats.conflictRateEMA.add(1)

			if s.engine.trail.decisionLevel() == 0 {
				s.status = statusUnsat
				s.log.Info("solve: UNSAT (conflict at decision level 0)")
				return solutions, nil
			}

			learned, backjumpLevel := s.engine.analyze(conflict)
			s.log.WithFields(logrus.Fields{
				"conflicts": s.stats.Conflicts,
				"level":     s.engine.trail.decisionLevel(),
				"clause":    backjumpLevel,
			}).Debug("solve: learned clause")

			offs := make([]int, len(learned))
			for i, cl := range learned {
				offs[i] = s.engine.vars.offset(cl.varID)
			}
			s.vsids.bumpClause(s.engine.vars, offs)
			if s.stats.Conflicts%uint64(s.cfg.DecayInterval) == 0 {
				s.vsids.decay(s.engine.vars, s.cfg.VSIDSDecayRatio)
			}

			s.backtrackTo(backjumpLevel)
			s.stats.Backtracks++
			s.conflictsSinceRestart++

			cid, unitVar, result := s.engine.addClause(learned, true, nil)
			s.stats.LearnedClauses++
			if s.learned != nil {
				s.learned.track(cid)
			}
			switch result {
			case addClauseUnit:
				lit := lookup(learned, unitVar).literal
				s.engine.enqueue(unitVar, FromBool(lit.IsPositive()), cid)
			case addClauseConflict:
				s.status = statusError
				return solutions, errors.WithStack(&SolverError{
					Reason:            "learned clause conflicts immediately after its own backjump",
					DecisionLevel:     s.engine.trail.decisionLevel(),
					TrailLength:       s.engine.trail.len(),
					PartialAssignment: s.engine.partialAssignment(),
				})
			}
			continue
		}

		if id, val, ok := s.vsids.next(s.engine.vars); ok {
			s.stats.Decisions++
			s.stats.conflictRateEMA.add(0)
			s.engine.trail.pushDecisionMark()
			s.engine.enqueue(id, val, ClauseID{})
			if dl := s.engine.trail.decisionLevel(); dl > s.stats.MaxDecisionLevel {
				s.stats.MaxDecisionLevel = dl
			}
			continue
		}

		if !s.allClausesSatisfied() {
			s.status = statusError
			return solutions, errors.WithStack(&SolverError{
				Reason:            "fixpoint reached with unsatisfied clauses and no decision possible",
				DecisionLevel:     s.engine.trail.decisionLevel(),
				TrailLength:       s.engine.trail.len(),
				PartialAssignment: s.engine.partialAssignment(),
			})
		}

		solution := s.extractSolution()
		solutions = append(solutions, solution)
		s.log.WithField("solutions", len(solutions)).Debug("solve: solution found")

		if req.satisfied(len(solutions)) {
			s.status = statusSat
			return solutions, nil
		}

		blocking := s.blockingClause(solution)
		s.backtrackTo(0)

		cid, unitVar, result := s.engine.addClause(blocking, false, nil)
		switch result {
		case addClauseUnit:
			lit := lookup(blocking, unitVar).literal
			s.engine.enqueue(unitVar, FromBool(lit.IsPositive()), cid)
		case addClauseConflict:
			// The blocking clause is falsified outright (every variable is
			// fixed at decision level 0, which includes a model with no
			// variables): no further solutions exist.
			s.status = statusSat
			return solutions, nil
		}
	}
}

// allClausesSatisfied reports whether every clause currently has a
// satisfied literal; used only to confirm a full assignment found when no
// further decision is possible (spec.md §4.J.e).
func (s *Solver) allClausesSatisfied() bool {
	for _, cid := range s.engine.clauses.Ids() {
		satisfied := false
		for _, cl := range s.engine.clauses.Literals(cid) {
			if statusOf(s.engine.vars, cl) == litSatisfied {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

// extractSolution reads off the current assignment as a Solution. A
// variable that appears in no clause may be left unassigned by the search;
// per spec.md §8's boundary behaviour this implementation's documented
// convention is to report it as "on".
func (s *Solver) extractSolution() Solution {
	sol := make(Solution, len(s.dimacsNums))
	for i, vnum := range s.dimacsNums {
		a := s.engine.vars.Assignment(s.varIDs[vnum])
		if a == Unassigned {
			a = On
		}
		polarity := Positive
		if a == Off {
			polarity = Negative
		}
		sol[i] = NewLiteral(vnum, polarity)
	}
	return sol
}

// blockingClause builds the disjunction of sol's negated literals
// (spec.md §4.J.e), added after backjumping to level 0 so the same
// solution can never be produced again (the "blocking-clause adequacy" law
// of spec.md §8).
func (s *Solver) blockingClause(sol Solution) []clauseLit {
	lits := make([]clauseLit, len(sol))
	for i, lit := range sol {
		negated := lit.Negation()
		lits[i] = clauseLit{literal: negated, varID: s.varIDs[lit.Var()]}
	}
	return lits
}
