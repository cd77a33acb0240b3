package sat

import "github.com/fabsolve/cdclsat/internal/soa"

// VarID is the store's stable handle for a variable record — the
// "variable-id" the spec uses for O(1) indexing, distinct from a Literal's
// var() which is the DIMACS-numbered variable identity.
type VarID = soa.ID

// ClauseID is the store's stable handle for a clause record.
type ClauseID = soa.ID

// Metadata is an opaque, solver-ignored provenance slot carried on both
// variable and clause records (spec.md §3: "an optional opaque metadata
// slot carries provenance from an upstream compiler"). The solver never
// inspects it.
type Metadata any
