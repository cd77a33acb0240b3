package sat

import "github.com/fabsolve/cdclsat/internal/soa"

// clauseLit is a clause's (literal, variable-id) pair (spec.md §3): the
// variable-id mirrors literal.Var() but is pre-resolved to the variable
// store's stable id so propagation and conflict analysis never have to
// re-look-up a variable by its DIMACS number.
type clauseLit struct {
	literal Literal
	varID   VarID
}

// clauseStore is the Structure-of-Arrays store for clause records
// (spec.md §4.A/§4.C): the clause's literal pairs, its watcher, whether it
// was learned, and an opaque metadata slot, one parallel slice each.
// Learned clauses are appended in place and share this same layout
// (spec.md §3 "Ownership and lifecycles").
type clauseStore struct {
	idx *soa.Index

	literals [][]clauseLit
	watcher  []Watcher
	learnt   []bool
	metadata []Metadata
}

func newClauseStore() *clauseStore {
	return &clauseStore{idx: soa.NewIndex()}
}

func (cs *clauseStore) reserve(n int) {
	cs.idx.Reserve(n)
}

func (cs *clauseStore) insert(lits []clauseLit, w Watcher, learnt bool, meta Metadata) ClauseID {
	id, _ := cs.idx.Insert()
	cs.literals = append(cs.literals, lits)
	cs.watcher = append(cs.watcher, w)
	cs.learnt = append(cs.learnt, learnt)
	cs.metadata = append(cs.metadata, meta)
	return id
}

// erase removes a clause record, swap-popping the parallel slices in
// lockstep with the underlying index (spec.md §4.C). The caller must have
// already unregistered the clause from every watch list it appeared on
// (see engine.removeClause) — this method only ever touches clauseStore's
// own slices.
func (cs *clauseStore) erase(id ClauseID) {
	off, ok := cs.idx.Erase(id)
	if !ok {
		panic("sat: erasing a stale or unknown ClauseID")
	}
	last := len(cs.literals) - 1
	cs.literals[off] = cs.literals[last]
	cs.watcher[off] = cs.watcher[last]
	cs.learnt[off] = cs.learnt[last]
	cs.metadata[off] = cs.metadata[last]
	cs.literals = cs.literals[:last]
	cs.watcher = cs.watcher[:last]
	cs.learnt = cs.learnt[:last]
	cs.metadata = cs.metadata[:last]
}

func (cs *clauseStore) offset(id ClauseID) int {
	off, ok := cs.idx.DenseOffset(id)
	if !ok {
		panic("sat: stale or unknown ClauseID")
	}
	return off
}

func (cs *clauseStore) Len() int { return cs.idx.Len() }

// Has reports whether id currently resolves to a live clause.
func (cs *clauseStore) Has(id ClauseID) bool { return cs.idx.Has(id) }

// Ids returns the live clause ids in dense order.
func (cs *clauseStore) Ids() []ClauseID { return cs.idx.Ids() }

func (cs *clauseStore) Literals(id ClauseID) []clauseLit { return cs.literals[cs.offset(id)] }

func (cs *clauseStore) Watcher(id ClauseID) *Watcher { return &cs.watcher[cs.offset(id)] }

func (cs *clauseStore) IsLearnt(id ClauseID) bool { return cs.learnt[cs.offset(id)] }

func (cs *clauseStore) Metadata(id ClauseID) Metadata { return cs.metadata[cs.offset(id)] }
