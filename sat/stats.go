package sat

import "github.com/prometheus/client_golang/prometheus"

// conflictRateEMADecay sets how much weight ConflictRateEMA gives to history
// versus the latest sample; 0.95 means roughly the last twenty samples (one
// per conflict or decision).
const conflictRateEMADecay = 0.95

// Stats holds the solver's monotone counters (spec.md §3): restarts,
// conflicts, propagations, decisions, backtracks, learned clauses, and the
// maximum decision level reached during the search.
type Stats struct {
	Restarts        uint64
	Conflicts       uint64
	Propagations    uint64
	Decisions       uint64
	Backtracks      uint64
	LearnedClauses  uint64
	MaxDecisionLevel int

	// ConflictRateEMA is a smoothed share of conflicts among search events:
	// each conflict adds a sample of 1 and each decision a sample of 0 (see
	// SPEC_FULL.md §12); observability only.
	conflictRateEMA ema
}

// ConflictRateEMA returns the current smoothed share of conflicts among
// conflicts and decisions, a value in [0, 1].
func (s *Stats) ConflictRateEMA() float64 { return s.conflictRateEMA.val() }

var (
	statsDescRestarts        = prometheus.NewDesc("cdclsat_restarts_total", "Total number of restarts performed.", nil, nil)
	statsDescConflicts       = prometheus.NewDesc("cdclsat_conflicts_total", "Total number of conflicts encountered.", nil, nil)
	statsDescPropagations    = prometheus.NewDesc("cdclsat_propagations_total", "Total number of unit propagations performed.", nil, nil)
	statsDescDecisions       = prometheus.NewDesc("cdclsat_decisions_total", "Total number of decisions made.", nil, nil)
	statsDescBacktracks      = prometheus.NewDesc("cdclsat_backtracks_total", "Total number of backtracks performed.", nil, nil)
	statsDescLearnedClauses  = prometheus.NewDesc("cdclsat_learned_clauses_total", "Total number of learned clauses added.", nil, nil)
	statsDescMaxDecisionLvl  = prometheus.NewDesc("cdclsat_max_decision_level", "Maximum decision level reached so far.", nil, nil)
	statsDescConflictRateEMA = prometheus.NewDesc("cdclsat_conflict_rate_ema", "Smoothed share of conflicts among conflicts and decisions.", nil, nil)
)

// Collector adapts a *Stats snapshot into a prometheus.Collector, so a host
// process can register a solver's statistics alongside its own metrics
// (SPEC_FULL.md §10). It is observability plumbing, not part of the core
// solving contract.
type Collector struct {
	stats *Stats
}

// NewCollector returns a prometheus.Collector reading live values from
// stats. The Collector does not copy stats; it reflects whatever the
// referenced Stats currently holds each time it is scraped.
func NewCollector(stats *Stats) *Collector {
	return &Collector{stats: stats}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- statsDescRestarts
	ch <- statsDescConflicts
	ch <- statsDescPropagations
	ch <- statsDescDecisions
	ch <- statsDescBacktracks
	ch <- statsDescLearnedClauses
	ch <- statsDescMaxDecisionLvl
	ch <- statsDescConflictRateEMA
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats
	ch <- prometheus.MustNewConstMetric(statsDescRestarts, prometheus.CounterValue, float64(s.Restarts))
	ch <- prometheus.MustNewConstMetric(statsDescConflicts, prometheus.CounterValue, float64(s.Conflicts))
	ch <- prometheus.MustNewConstMetric(statsDescPropagations, prometheus.CounterValue, float64(s.Propagations))
	ch <- prometheus.MustNewConstMetric(statsDescDecisions, prometheus.CounterValue, float64(s.Decisions))
	ch <- prometheus.MustNewConstMetric(statsDescBacktracks, prometheus.CounterValue, float64(s.Backtracks))
	ch <- prometheus.MustNewConstMetric(statsDescLearnedClauses, prometheus.CounterValue, float64(s.LearnedClauses))
	ch <- prometheus.MustNewConstMetric(statsDescMaxDecisionLvl, prometheus.GaugeValue, float64(s.MaxDecisionLevel))
	ch <- prometheus.MustNewConstMetric(statsDescConflictRateEMA, prometheus.GaugeValue, s.ConflictRateEMA())
}
