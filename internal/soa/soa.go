// Package soa provides the stable-id bookkeeping for a structure-of-arrays
// container: a sparse/dense index pair plus a generation-tagged free-list, so
// that callers can keep their own record fields in parallel dense slices
// (the "named parallel vectors" realisation described for the fil::soa
// template from fabko's common/soa/soa.h) while still getting O(1)
// insert/erase/lookup through an opaque stable ID.
//
// Index itself stores no field data: it only maps an ID to (and from) a
// dense offset. Concrete stores (see the sat package's variable and clause
// stores) embed an Index and keep one slice per field, indexed by the dense
// offset Index hands back.
package soa

// ID is a stable handle into an SoA-backed store. It survives erase/insert
// cycles of other elements because the dense offset it currently maps to is
// tracked indirectly; only a generation mismatch invalidates a stale ID.
type ID struct {
	offset     uint32
	generation uint32
}

// Valid reports whether id was ever produced by an Index (the zero ID is not
// valid: offset 0 generation 0 is reserved for "no id").
func (id ID) Valid() bool {
	return id != ID{}
}

func (id ID) String() string {
	return itoa(id.offset) + "#" + itoa(id.generation)
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// slot is an entry in the sparse table: either "this id's data lives at
// dense offset X" (when the slot is live) or "the next free slot is at
// sparse offset X" (when the slot is free), distinguished only by whether
// the slot is on the free-list (see isFree).
type slot struct {
	// denseOffset is meaningful only while the slot is live; while free it
	// stores the offset of the next free slot (or sentinelEnd).
	denseOffset uint32
	generation  uint32
}

const sentinelEnd = ^uint32(0)

// Index is the id <-> dense-offset indirection table shared by every
// structure-of-arrays store in this module. It never holds field data.
type Index struct {
	sparse   []slot  // keyed by ID.offset
	dense    []ID    // dense[i] is the ID currently occupying dense offset i
	freeHead uint32  // sparse offset of the first free slot, or sentinelEnd
	freeLen  int
}

// NewIndex returns an empty Index. Sparse offset 0 is burned immediately and
// never issued to a caller: without this, the very first Insert would hand
// out ID{offset: 0, generation: 0}, which is indistinguishable from the
// reserved zero ID that Valid reports as "no id".
func NewIndex() *Index {
	return &Index{freeHead: sentinelEnd, sparse: []slot{{}}}
}

// Len returns the number of live entries (and therefore the length every
// caller-owned parallel field slice must have).
func (ix *Index) Len() int {
	return len(ix.dense)
}

// Reserve pre-allocates bookkeeping capacity for at least n live elements.
// It does not itself grow caller-owned field slices.
func (ix *Index) Reserve(n int) {
	if cap(ix.dense) < n {
		grown := make([]ID, len(ix.dense), n)
		copy(grown, ix.dense)
		ix.dense = grown
	}
	if cap(ix.sparse) < n {
		grown := make([]slot, len(ix.sparse), n)
		copy(grown, ix.sparse)
		ix.sparse = grown
	}
}

// Insert allocates a new stable ID and returns it along with the dense
// offset the caller must append to each of its parallel field slices at
// (always len(fields) before the append, i.e. Len() before this call).
func (ix *Index) Insert() (id ID, denseOffset int) {
	denseOffset = len(ix.dense)

	if ix.freeHead == sentinelEnd {
		sparseOffset := uint32(len(ix.sparse))
		ix.sparse = append(ix.sparse, slot{denseOffset: uint32(denseOffset)})
		id = ID{offset: sparseOffset, generation: 0}
		ix.dense = append(ix.dense, id)
		return id, denseOffset
	}

	sparseOffset := ix.freeHead
	s := &ix.sparse[sparseOffset]
	ix.freeHead = s.denseOffset // holds "next free" while the slot is free
	ix.freeLen--
	s.denseOffset = uint32(denseOffset)
	id = ID{offset: sparseOffset, generation: s.generation}
	ix.dense = append(ix.dense, id)
	return id, denseOffset
}

// DenseOffset resolves id to its current dense offset. ok is false if id was
// never issued or has since been erased (generation mismatch or id free).
func (ix *Index) DenseOffset(id ID) (offset int, ok bool) {
	if int(id.offset) >= len(ix.sparse) {
		return 0, false
	}
	s := ix.sparse[id.offset]
	if s.generation != id.generation {
		return 0, false
	}
	// Erase bumps a freed slot's generation, so an ID issued before the
	// erase already fails the check above; an ID carrying the bumped
	// generation must still be refused while the slot sits on the free-list.
	if ix.isFree(id.offset) {
		return 0, false
	}
	return int(s.denseOffset), true
}

func (ix *Index) isFree(sparseOffset uint32) bool {
	for f := ix.freeHead; f != sentinelEnd; {
		if f == sparseOffset {
			return true
		}
		f = ix.sparse[f].denseOffset
	}
	return false
}

// Has reports whether id currently resolves to a live element.
func (ix *Index) Has(id ID) bool {
	_, ok := ix.DenseOffset(id)
	return ok
}

// Erase invalidates id. It returns the dense offset that was removed; the
// caller must swap-pop that offset out of every parallel field slice (move
// the last element into it, then shrink by one). When id did not occupy the
// last dense slot, Erase has already updated the sparse table for the
// element the swap-pop moved, so nothing further is required of the caller.
func (ix *Index) Erase(id ID) (removedOffset int, ok bool) {
	offset, ok := ix.DenseOffset(id)
	if !ok {
		return 0, false
	}

	last := len(ix.dense) - 1
	movedID := ix.dense[last]
	ix.dense[offset] = movedID
	ix.dense = ix.dense[:last]

	if movedID != id {
		ix.sparse[movedID.offset].denseOffset = uint32(offset)
	}

	// Bump the generation of the erased id's sparse slot and push it onto
	// the free-list.
	s := &ix.sparse[id.offset]
	s.generation++
	s.denseOffset = ix.freeHead
	ix.freeHead = id.offset
	ix.freeLen++

	return offset, true
}

// Ids returns the live IDs in dense order. The returned slice aliases
// internal state and must not be retained across further Insert/Erase
// calls.
func (ix *Index) Ids() []ID {
	return ix.dense
}
