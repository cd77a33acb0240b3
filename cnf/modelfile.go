package cnf

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rhartert/dimacs"
)

// ReadModels parses a models fixture file used by this repository's tests:
// one model per line, expressed using the same signed-literal convention as
// a DIMACS clause line (a positive entry means the variable at that
// position is on, negative means off), terminated by 0. It reuses
// github.com/rhartert/dimacs's line/token reader (the same dependency the
// teacher's parsers.ReadModels wraps) rather than re-implementing DIMACS
// token scanning a second time in this package.
func ReadModels(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cnf: opening %q", path)
	}
	defer f.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(f, b); err != nil {
		return nil, errors.Wrapf(err, "cnf: reading models file %q", path)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(problem string, nVars int, nClauses int) error {
	return fmt.Errorf("cnf: a models file must not contain a %q header line", problem)
}

func (b *modelBuilder) Comment(string) error { return nil }

func (b *modelBuilder) Clause(literals []int) error {
	model := make([]bool, len(literals))
	for i, l := range literals {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
