// Command sat is the external collaborator described in spec.md §6: it
// parses one or more DIMACS CNF files and runs the solver over each,
// printing the requested number of solutions. It is not part of the core
// solver; every exit-code and logging decision here is CLI policy, not
// solver behaviour (spec.md §7).
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fabsolve/cdclsat/cnf"
	"github.com/fabsolve/cdclsat/sat"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cnfFiles     []string
	solutionsArg string
	logLevel     string
	outputPath   string
)

func main() {
	root := &cobra.Command{
		Use:           "sat",
		Short:         "Solve DIMACS CNF instances with a CDCL SAT solver",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}

	root.Flags().StringArrayVar(&cnfFiles, "cnf-file", nil, "DIMACS CNF input file (repeatable)")
	root.Flags().StringVar(&solutionsArg, "solutions", "1", "number of solutions to report, or \"all\"")
	root.Flags().StringVar(&logLevel, "log-level", "info", "logrus level: trace, debug, info, warn, error")
	root.Flags().StringVar(&outputPath, "output", "", "write solutions to this file instead of stdout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sat:", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(cnfFiles) == 0 {
		return errors.New("at least one --cnf-file is required")
	}

	req, err := parseSolutionRequest(solutionsArg)
	if err != nil {
		return err
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid --log-level %q", logLevel)
	}
	log.SetLevel(level)

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return errors.Wrapf(err, "creating --output %q", outputPath)
		}
		defer f.Close()
		out = f
	}

	exitCode := 0
	for _, path := range cnfFiles {
		if err := solveFile(log, out, path, req); err != nil {
			exitCode = 1
			var perr *cnf.ParseError
			if errors.As(err, &perr) {
				log.WithField("file", path).Error(err)
				continue
			}
			var serr *sat.SolverError
			if errors.As(err, &serr) {
				log.WithFields(logrus.Fields{
					"file":           path,
					"decision_level": serr.DecisionLevel,
					"trail_length":   serr.TrailLength,
				}).Error(err)
				continue
			}
			log.WithField("file", path).Error(err)
		}
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}

func parseSolutionRequest(s string) (sat.SolutionRequest, error) {
	if s == "all" {
		return sat.AllSolutions, nil
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return sat.SolutionRequest{}, errors.Wrapf(err, "invalid --solutions %q", s)
	}
	return sat.Solutions(uint32(n)), nil
}

func solveFile(log *logrus.Logger, out *os.File, path string, req sat.SolutionRequest) error {
	model, err := cnf.Parse(path, false)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":      path,
		"variables": model.NumVariables(),
		"clauses":   model.NumClauses(),
	}).Debug("parsed instance")

	solver, err := sat.NewSolver(model, sat.DefaultConfig, log)
	if err != nil {
		return err
	}

	solutions, err := solver.Solve(req)
	if err != nil {
		return err
	}

	stats := solver.Statistics()
	if len(solutions) == 0 {
		log.WithField("file", path).Info("UNSAT")
	}
	fmt.Fprintf(out, "c file:       %s\n", path)
	fmt.Fprintf(out, "c conflicts:  %d\n", stats.Conflicts)
	fmt.Fprintf(out, "c decisions:  %d\n", stats.Decisions)
	fmt.Fprintf(out, "c restarts:   %d\n", stats.Restarts)
	fmt.Fprintf(out, "c learned-clauses-live: %d\n", solver.LiveLearnedClauses())
	if len(solutions) == 0 {
		fmt.Fprintf(out, "s UNSATISFIABLE\n")
		return nil
	}
	fmt.Fprintf(out, "s SATISFIABLE\n")
	for _, sol := range solutions {
		fmt.Fprintf(out, "v %s\n", sol.String())
	}
	return nil
}
