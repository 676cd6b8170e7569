package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/dd0wney/cluso-graphlab/pkg/algorithms"
	"github.com/dd0wney/cluso-graphlab/pkg/logging"
	"github.com/dd0wney/cluso-graphlab/pkg/parser"
	"github.com/dd0wney/cluso-graphlab/pkg/report"
	"github.com/dd0wney/cluso-graphlab/pkg/storage"
)

// CommunitiesOutcome is what a community detection run produced.
type CommunitiesOutcome struct {
	Graph      *storage.SocialGraph
	SOC        *algorithms.SOCMatrix
	Thresholds algorithms.Thresholds
	Result     *algorithms.CommunityDetectionResult
}

// RunCommunities reads community input from in and writes the four stage
// report to out. Fields set in override replace the input's thresholds.
func (r *Runner) RunCommunities(ctx context.Context, in io.Reader, out io.Writer, override parser.ThresholdOverride) (*CommunitiesOutcome, error) {
	outcome, err := r.runCommunities(ctx, in, out, override)
	return outcome, r.finish(Communities, err)
}

func (r *Runner) runCommunities(ctx context.Context, in io.Reader, out io.Writer, override parser.ThresholdOverride) (*CommunitiesOutcome, error) {
	log := r.logger.With(logging.Component(Communities))
	w := report.NewWriter(out)
	outcome := &CommunitiesOutcome{}

	var input *parser.SocialInput
	err := r.stage(ctx, Communities, 1, "load", func() error {
		var err error
		input, err = parser.ParseSocial(in, r.cfg.Limits.MaxHashtagLen)
		if err != nil {
			return err
		}
		if input.Truncated {
			log.Warn("input ended early; missing matrix cells read as 0", logging.Count(len(input.Users)))
		}

		g := storage.NewSocialGraph(r.cfg.Limits)
		for _, u := range input.Users {
			if _, err := g.AddUser(u); err != nil {
				return err
			}
		}
		if err := g.LoadFriendships(input.Matrix); err != nil {
			return err
		}

		asym := g.Asymmetries()
		for _, p := range asym {
			log.Warn("friendship listed by one side only", logging.Int("from", p[0]), logging.Int("to", p[1]))
		}
		r.metrics.RecordGraph(g.Len(), g.FriendshipCount(), len(asym))
		outcome.Graph = g

		w.UserSummary(g)
		return w.Err()
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, Communities, 3, "soc", func() error {
		soc, err := algorithms.BuildSOCMatrix(outcome.Graph)
		if err != nil {
			return err
		}
		for i := range soc.Size() {
			for j := i + 1; j < soc.Size(); j++ {
				r.metrics.RecordSOC(soc.At(i, j))
			}
		}
		outcome.SOC = soc
		log.Debug("strength of connection computed", logging.Count(soc.PairCount()))

		w.FirstPair(outcome.Graph, soc)
		w.SOCTable(soc)
		return w.Err()
	})
	if err != nil {
		return nil, err
	}

	err = r.stage(ctx, Communities, 4, "detect", func() error {
		th, err := parser.ResolveThresholds(input, override, r.cfg.Communities.Thresholds)
		if err != nil {
			return err
		}
		outcome.Thresholds = algorithms.Thresholds{Friendship: th.Friendship, Core: th.Core}

		result, err := algorithms.DetectCommunities(outcome.Graph, outcome.SOC, outcome.Thresholds)
		if err != nil {
			return fmt.Errorf("detect communities: %w", err)
		}
		outcome.Result = result

		sizes := make([]int, len(result.Communities))
		for i, c := range result.Communities {
			sizes[i] = c.Hashtags.Len()
			log.Debug("community",
				logging.UserID(c.CoreID),
				logging.Int("close_friends", c.CloseFriendCount),
				logging.Int("hashtags", sizes[i]))
		}
		r.metrics.RecordCommunities(len(result.CorePositions), sizes)

		w.Communities(result)
		return w.Err()
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}
