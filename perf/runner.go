package perf

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const (
	metricsNamespace = "perfgraph"
	caseLabel        = "case"
)

// Report is the outcome of one case.
type Report struct {
	Name string        `json:"name"`
	Arg  int           `json:"arg"`
	Reps int           `json:"reps"`
	Mean time.Duration `json:"mean_ns"`
	Err  error         `json:"-"`
}

// String renders the report as a single aligned line.
func (r Report) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%-50s FAILED: %v", r.Name, r.Err)
	}
	return fmt.Sprintf("%-50s %12s  (reps=%d)", r.Name, r.Mean, r.Reps)
}

// CaseStats is the recorded metric state of one case.
type CaseStats struct {
	Runs       float64
	Errors     float64
	Samples    uint64
	SumSeconds float64
}

// runnerMetrics lives in a per-runner registry.
type runnerMetrics struct {
	registry *prometheus.Registry
	seconds  *prometheus.HistogramVec
	runs     *prometheus.CounterVec
	errors   *prometheus.CounterVec
}

func newRunnerMetrics() *runnerMetrics {
	m := &runnerMetrics{
		registry: prometheus.NewRegistry(),
		seconds: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "case_seconds",
				Help:      "Mean duration of one repetition per case in seconds",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
			},
			[]string{caseLabel},
		),
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "case_runs_total",
				Help:      "Total number of case executions",
			},
			[]string{caseLabel},
		),
		errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "case_errors_total",
				Help:      "Total number of failed case executions",
			},
			[]string{caseLabel},
		),
	}
	m.registry.MustRegister(m.seconds, m.runs, m.errors)
	return m
}

// Runner executes registry cases.
type Runner struct {
	reg     *Registry
	log     *Logger
	scale   float64
	metrics *runnerMetrics
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Defaults to NoopLogger.
func WithLogger(l *Logger) RunnerOption {
	if l == nil {
		panic("perf: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithRepeatScale multiplies every case's repetition count. Panics unless
// f is positive and finite.
func WithRepeatScale(f float64) RunnerOption {
	if f <= 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic(fmt.Sprintf("perf: WithRepeatScale(%g): must be positive and finite", f))
	}
	return func(r *Runner) { r.scale = f }
}

// NewRunner returns a runner over reg.
func NewRunner(reg *Registry, opts ...RunnerOption) *Runner {
	r := &Runner{
		reg:     reg,
		log:     NoopLogger(),
		scale:   1,
		metrics: newRunnerMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Gatherer exposes the runner's private metric registry.
func (r *Runner) Gatherer() prometheus.Gatherer { return r.metrics.registry }

// scaledReps never drops below one repetition.
func (r *Runner) scaledReps(reps int) int {
	return max(1, int(math.Round(float64(reps)*r.scale)))
}

// Run executes every case whose name contains filter, in registration order.
// A failing case is reported and the run continues; the returned error joins
// all case failures. Cancelling ctx stops before the next case and returns
// ctx.Err().
func (r *Runner) Run(ctx context.Context, filter string) ([]Report, error) {
	cases := r.reg.Filter(filter)
	log := r.log.WithRun(uuid.NewString()[:8])
	log.InfoContext(ctx, "run started", "cases", len(cases), "filter", filter, "scale", r.scale)

	reports := make([]Report, 0, len(cases))
	var errs []error
	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		rep := r.runCase(ctx, log, c)
		reports = append(reports, rep)
		if rep.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", rep.Name, rep.Err))
		}
	}

	log.InfoContext(ctx, "run finished", "cases", len(reports), "failed", len(errs))
	return reports, errors.Join(errs...)
}

// RunCase executes the single case registered under name.
func (r *Runner) RunCase(ctx context.Context, name string) (Report, error) {
	c, err := r.reg.Lookup(name)
	if err != nil {
		return Report{Name: name}, err
	}
	rep := r.runCase(ctx, r.log, c)
	return rep, rep.Err
}

func (r *Runner) runCase(ctx context.Context, parent *Logger, c Case) Report {
	rep := Report{Name: c.Name, Arg: c.Arg, Reps: r.scaledReps(c.Reps)}
	log := parent.WithCase(c.Name)
	log.DebugContext(ctx, "case started", "arg", rep.Arg, "reps", rep.Reps)

	r.metrics.runs.WithLabelValues(c.Name).Inc()
	rep.Mean, rep.Err = c.Run(ctx, rep.Arg, rep.Reps)
	if rep.Err != nil {
		r.metrics.errors.WithLabelValues(c.Name).Inc()
	} else {
		r.metrics.seconds.WithLabelValues(c.Name).Observe(rep.Mean.Seconds())
	}

	log.LogReport(ctx, rep)
	return rep
}

// Summary gathers the recorded metrics keyed by case name.
func (r *Runner) Summary() (map[string]CaseStats, error) {
	families, err := r.metrics.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]CaseStats)
	for _, fam := range families {
		for _, m := range fam.GetMetric() {
			name := caseName(m)
			st := out[name]
			switch fam.GetName() {
			case metricsNamespace + "_case_runs_total":
				st.Runs = m.GetCounter().GetValue()
			case metricsNamespace + "_case_errors_total":
				st.Errors = m.GetCounter().GetValue()
			case metricsNamespace + "_case_seconds":
				st.Samples = m.GetHistogram().GetSampleCount()
				st.SumSeconds = m.GetHistogram().GetSampleSum()
			}
			out[name] = st
		}
	}
	return out, nil
}

func caseName(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == caseLabel {
			return lp.GetValue()
		}
	}
	return ""
}
