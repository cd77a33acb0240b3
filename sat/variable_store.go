package sat

import "github.com/fabsolve/cdclsat/internal/soa"

// variableStore is the Structure-of-Arrays store for variable records
// (spec.md §4.A/§4.C): one stable-id-keyed set of parallel slices, so hot
// loops (propagation, decision) iterate over dense, cache-friendly memory
// instead of chasing pointers. The "assignment-context" fields (activity,
// level, reason) called out in spec.md §3 are kept as their own parallel
// slices rather than a nested struct, for the same reason.
type variableStore struct {
	idx *soa.Index

	literal    []Literal // canonical (positive-polarity) literal for this variable
	assignment []Assignment
	activity   []float64
	level      []int      // decision level the variable was assigned at; meaningless while Unassigned
	reason     []ClauseID // zero ID (not Valid()) means "decision", i.e. no antecedent clause
	metadata   []Metadata

	seen *seenSet // one "currently part of the conflict being analyzed" flag per offset
}

func newVariableStore() *variableStore {
	return &variableStore{idx: soa.NewIndex(), seen: newSeenSet(0)}
}

func (vs *variableStore) reserve(n int) {
	vs.idx.Reserve(n)
}

// insert adds one variable record, per spec.md §4.C: assignment unassigned,
// activity 0, reason is the decision placeholder (the zero ClauseID).
func (vs *variableStore) insert(canonical Literal, meta Metadata) VarID {
	id, _ := vs.idx.Insert()
	vs.literal = append(vs.literal, canonical)
	vs.assignment = append(vs.assignment, Unassigned)
	vs.activity = append(vs.activity, 0)
	vs.level = append(vs.level, -1)
	vs.reason = append(vs.reason, ClauseID{})
	vs.metadata = append(vs.metadata, meta)
	vs.seen.Expand()
	return id
}

func (vs *variableStore) offset(id VarID) int {
	off, ok := vs.idx.DenseOffset(id)
	if !ok {
		panic("sat: stale or unknown VarID")
	}
	return off
}

func (vs *variableStore) Len() int { return vs.idx.Len() }

// Ids returns the live variable ids in dense order.
func (vs *variableStore) Ids() []VarID { return vs.idx.Ids() }

func (vs *variableStore) Literal(id VarID) Literal { return vs.literal[vs.offset(id)] }

func (vs *variableStore) Assignment(id VarID) Assignment { return vs.assignment[vs.offset(id)] }

func (vs *variableStore) SetAssignment(id VarID, a Assignment) { vs.assignment[vs.offset(id)] = a }

func (vs *variableStore) Activity(id VarID) float64 { return vs.activity[vs.offset(id)] }

func (vs *variableStore) SetActivity(id VarID, v float64) { vs.activity[vs.offset(id)] = v }

func (vs *variableStore) Level(id VarID) int { return vs.level[vs.offset(id)] }

func (vs *variableStore) SetLevel(id VarID, l int) { vs.level[vs.offset(id)] = l }

func (vs *variableStore) Reason(id VarID) ClauseID { return vs.reason[vs.offset(id)] }

func (vs *variableStore) SetReason(id VarID, c ClauseID) { vs.reason[vs.offset(id)] = c }

// Metadata returns the opaque provenance value carried for id, if any was
// supplied when the variable was inserted (spec.md §3).
func (vs *variableStore) Metadata(id VarID) Metadata { return vs.metadata[vs.offset(id)] }

// unassign resets a variable's assignment-context back to "unassigned",
// used by Backtrack (spec.md §4.G).
func (vs *variableStore) unassign(id VarID) {
	off := vs.offset(id)
	vs.assignment[off] = Unassigned
	vs.level[off] = -1
	vs.reason[off] = ClauseID{}
}

// forEachActivity is the projection helper from spec.md §4.A: a closure
// over just the activity field, used by the decision heuristic without
// needing to touch the other parallel fields.
func (vs *variableStore) forEachActivity(fn func(id VarID, activity float64)) {
	for _, id := range vs.idx.Ids() {
		fn(id, vs.Activity(id))
	}
}
