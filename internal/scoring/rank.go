package scoring

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

// rankConcurrency bounds how many candidates are scored at once.
const rankConcurrency = 4

// RankCandidates scores every candidate against the job concurrently and
// returns them ordered by overall score, highest first. Candidates with
// equal scores keep their input order. Ranks are 1-based.
func RankCandidates(ctx context.Context, scorer *Scorer, job *types.Profile, candidates []*types.Profile) ([]types.RankedCandidate, error) {
	ranked := make([]types.RankedCandidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rankConcurrency)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result := scorer.OverallFit(ctx, candidate, job)
			ranked[i] = types.RankedCandidate{
				CandidateID:     candidate.ID,
				Name:            candidate.Name,
				SourceFile:      candidate.SourceFile,
				Result:          result,
				Recommendations: Recommendations(result),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.OverallScore > ranked[j].Result.OverallScore
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked, nil
}
