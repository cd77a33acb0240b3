package sat

// restartPolicy implements the geometric restart schedule (spec.md §4.I):
// conflictsUntil starts at Config.RestartThreshold and is multiplied
// by Config.RestartMultiplier every time it is exhausted, so the interval
// between restarts grows without bound rather than staying fixed.
type restartPolicy struct {
	threshold      uint32
	multiplier     uint32
	conflictsUntil uint32
}

func newRestartPolicy(cfg Config) *restartPolicy {
	return &restartPolicy{
		threshold:      cfg.RestartThreshold,
		multiplier:     cfg.RestartMultiplier,
		conflictsUntil: cfg.RestartThreshold,
	}
}

// due reports whether a restart should happen now, given the number of
// conflicts encountered since the last restart.
func (r *restartPolicy) due(conflictsSinceRestart uint32) bool {
	return conflictsSinceRestart >= r.conflictsUntil
}

// reset advances the schedule after a restart: the next restart is further
// away by the configured multiplier.
func (r *restartPolicy) reset() {
	r.threshold *= r.multiplier
	r.conflictsUntil = r.threshold
}
