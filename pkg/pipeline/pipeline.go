// Package pipeline runs the two graphlab pipelines end to end: parse, load,
// compute, report. Logging goes to the configured logger and the report to
// the output writer.
package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dd0wney/cluso-graphlab/pkg/config"
	"github.com/dd0wney/cluso-graphlab/pkg/logging"
	"github.com/dd0wney/cluso-graphlab/pkg/metrics"
	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// Pipeline names used in logs and metric labels.
const (
	Communities = "communities"
	Index       = "index"
)

// Runner executes pipelines with one configuration. Each Runner has its own
// run ID.
type Runner struct {
	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	runID   string
}

// NewRunner returns a Runner. A nil logger discards logs and a nil registry
// gets a private one.
func NewRunner(cfg *config.Config, logger logging.Logger, reg *metrics.Registry) *Runner {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	id := uuid.NewString()
	return &Runner{
		cfg:     cfg,
		logger:  logger.With(logging.RunID(id)),
		metrics: reg,
		runID:   id,
	}
}

// RunID returns the identifier attached to every log line of this runner.
func (r *Runner) RunID() string {
	return r.runID
}

// Metrics returns the registry the runner records into.
func (r *Runner) Metrics() *metrics.Registry {
	return r.metrics
}

// stage times fn, records the duration and logs the outcome.
func (r *Runner) stage(ctx context.Context, pipeline string, n int, name string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	timer := logging.StartTimer(r.logger, name, logging.Component(pipeline), logging.Stage(n))
	err := fn()
	var elapsed time.Duration
	if err != nil {
		elapsed = timer.EndError(err)
	} else {
		elapsed = timer.End()
	}
	r.metrics.RecordStage(pipeline, name, elapsed)
	return err
}

// finish records the run status and passes err through.
func (r *Runner) finish(pipeline string, err error) error {
	status := "success"
	if err != nil {
		status = "error"
		if storage.IsCapacityExceeded(err) {
			r.metrics.RecordCapacityRejection(pipeline)
		}
	}
	r.metrics.RecordRun(pipeline, status)
	return err
}
