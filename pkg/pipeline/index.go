package pipeline

import (
	"context"
	"io"

	"github.com/dd0wney/cluso-graphlab/pkg/learnedindex"
	"github.com/dd0wney/cluso-graphlab/pkg/logging"
	"github.com/dd0wney/cluso-graphlab/pkg/metrics"
	"github.com/dd0wney/cluso-graphlab/pkg/parser"
	"github.com/dd0wney/cluso-graphlab/pkg/report"
	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// IndexOutcome is what a learned index run produced.
type IndexOutcome struct {
	Store   *storage.SortedStore
	Index   *learnedindex.Index
	Results []learnedindex.Result
}

// RunIndex reads the dataset and queries from in and writes the three stage
// report to out. extra queries run after those from the input and config.
func (r *Runner) RunIndex(ctx context.Context, in io.Reader, out io.Writer, extra []int64) (*IndexOutcome, error) {
	outcome, err := r.runIndex(ctx, in, out, extra)
	return outcome, r.finish(Index, err)
}

func (r *Runner) runIndex(ctx context.Context, in io.Reader, out io.Writer, extra []int64) (*IndexOutcome, error) {
	log := r.logger.With(logging.Component(Index))
	w := report.NewWriter(out)
	outcome := &IndexOutcome{}

	var queries []int64
	err := r.stage(ctx, Index, 1, "load", func() error {
		input, err := parser.ParseIndex(in, r.cfg.Index.DatasetSize)
		if err != nil {
			return err
		}
		if input.Truncated {
			log.Warn("input stopped at a token that is not an integer", logging.Count(len(input.Keys)))
		}

		store, err := storage.NewSortedStore(input.Keys, r.cfg.Limits.MaxKeys)
		if err != nil {
			return err
		}
		store.Sort()
		outcome.Store = store

		queries = append(queries, input.Queries...)
		queries = append(queries, r.cfg.Index.Queries...)
		queries = append(queries, extra...)

		w.Dataset(store.Values())
		return w.Err()
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, Index, 2, "segment", func() error {
		ix, err := learnedindex.New(outcome.Store.Values(), r.cfg.Index.TargetError)
		if err != nil {
			return err
		}
		outcome.Index = ix

		segments := ix.Segments()
		lengths := make([]int, len(segments))
		for i, s := range segments {
			lengths[i] = s.Len()
		}
		r.metrics.RecordSegments(ix.Len(), lengths)
		log.Debug("segments fitted", logging.Count(len(segments)), logging.Int("target_err", ix.TargetError()))

		w.Segments(ix)
		return w.Err()
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, Index, 3, "lookup", func() error {
		outcome.Results = make([]learnedindex.Result, 0, len(queries))
		for _, q := range queries {
			res := outcome.Index.Lookup(q)
			outcome.Results = append(outcome.Results, res)

			outcomeLabel := metrics.OutcomeNotFound
			switch {
			case res.OutOfRange:
				outcomeLabel = metrics.OutcomeOutOfRange
			case res.Found:
				outcomeLabel = metrics.OutcomeFound
			}
			r.metrics.RecordLookup(outcomeLabel, len(res.SegmentProbes()), len(res.WindowProbes()))
			log.Debug("lookup",
				logging.Key(q),
				logging.String("outcome", outcomeLabel),
				logging.Segment(res.Segment),
				logging.Position(res.Position))
		}

		w.Lookups(outcome.Results)
		return w.Err()
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
