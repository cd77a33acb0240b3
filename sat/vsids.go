package sat

import "github.com/rhartert/yagh"

// maxVSIDSActivity is the overflow guard threshold (spec.md §9 Open
// Question 6), matching both the teacher's rescale trigger and fabko's
// overflow guard constant.
const maxVSIDSActivity = 1e100

// vsids is the VSIDS decision heuristic (spec.md §4.H). It combines the
// teacher's yagh-backed priority order (internal/sat/ordering.go) with the
// bump/normalize/decay schedule of the original update_vsids_activity: a
// fixed increment is added to every variable touched by a learned clause,
// every activity is rescaled down whenever any would approach overflow, and
// activities are multiplicatively decayed on the schedule the driver
// enforces (every Config.DecayInterval conflicts).
//
// The activity values themselves live in variableStore.activity (spec.md
// §4.A's assignment-context field), read and written through its
// Activity/SetActivity/forEachActivity projection helpers; vsids only keeps
// the priority order and the phase-saving memory on top of them. Variables
// are indexed by their variableStore dense offset throughout, so no
// separate id table is kept here.
type vsids struct {
	order     *yagh.IntMap[float64]
	increment float64

	phases      []Assignment
	phaseSaving bool
}

func newVSIDS(increment float64, phaseSaving bool) *vsids {
	return &vsids{
		order:       yagh.New[float64](0),
		increment:   increment,
		phaseSaving: phaseSaving,
	}
}

// addVar registers a newly inserted variable (whose variableStore dense
// offset must equal len(h.phases) at the time of the call, i.e. variables
// are added to both stores in lockstep). The store's own activity entry is
// already zeroed by variableStore.insert.
func (h *vsids) addVar() {
	h.phases = append(h.phases, Unassigned)
	h.order.GrowBy(1)
	h.order.Put(len(h.phases)-1, 0)
}

// reinsert makes the variable at dense offset off a candidate again
// (spec.md §4.G, called while backtracking over it), recording its last
// polarity for phase saving.
func (h *vsids) reinsert(vs *variableStore, off int, lastValue Assignment) {
	if h.phaseSaving {
		h.phases[off] = lastValue
	}
	h.order.Put(off, -vs.Activity(vs.Ids()[off]))
}

// warmStart adds bump directly to the variable's activity without the
// overflow/normalization machinery bumpClause applies — used once, at store
// initialisation, where the added amounts are small occurrence counts
// (spec.md §4.C).
func (h *vsids) warmStart(vs *variableStore, off int, bump float64) {
	id := vs.Ids()[off]
	newScore := vs.Activity(id) + bump
	vs.SetActivity(id, newScore)
	h.order.Put(off, -newScore)
}

// bumpClause increases the activity of every variable in offs by the
// configured increment, normalizing all activities first if any is close
// enough to overflow that the bump would push it over.
func (h *vsids) bumpClause(vs *variableStore, offs []int) {
	h.normalizeIfNeeded(vs)
	for _, off := range offs {
		id := vs.Ids()[off]
		newScore := vs.Activity(id) + h.increment
		vs.SetActivity(id, newScore)
		if h.order.Contains(off) {
			h.order.Put(off, -newScore)
		}
	}
}

const vsidsNormalizationFactor = 1e6

func (h *vsids) normalizeIfNeeded(vs *variableStore) {
	overflowing := false
	vs.forEachActivity(func(_ VarID, activity float64) {
		if activity >= maxVSIDSActivity-h.increment {
			overflowing = true
		}
	})
	if !overflowing {
		return
	}
	vs.forEachActivity(func(id VarID, activity float64) {
		ns := activity / vsidsNormalizationFactor
		vs.SetActivity(id, ns)
		off := vs.offset(id)
		if h.order.Contains(off) {
			h.order.Put(off, -ns)
		}
	})
}

// decay multiplies every variable's activity by ratio (in (0, 1), so every
// activity shrinks), called once every Config.DecayInterval conflicts by the
// driver.
func (h *vsids) decay(vs *variableStore, ratio float64) {
	vs.forEachActivity(func(id VarID, activity float64) {
		ns := activity * ratio
		vs.SetActivity(id, ns)
		off := vs.offset(id)
		if h.order.Contains(off) {
			h.order.Put(off, -ns)
		}
	})
}

// next pops the highest-activity unassigned variable (spec.md §4.H's
// make_decision), skipping entries the heap still holds for variables that
// were assigned since they were last pushed. It reports false once no
// unassigned variable remains.
func (h *vsids) next(vs *variableStore) (VarID, Assignment, bool) {
	ids := vs.Ids()
	for {
		elem, ok := h.order.Pop()
		if !ok {
			return VarID{}, Unassigned, false
		}
		off := elem.Elem
		id := ids[off]
		if vs.Assignment(id) != Unassigned {
			continue
		}

		val := On
		if h.phaseSaving && h.phases[off] == Off {
			val = Off
		}
		return id, val, true
	}
}
