package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/taxonomy"
	"github.com/jonathan/resume-screener/internal/types"
)

type fakeEmbedder struct {
	vectors [][]float64
	err     error
}

func (f fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vectors[:len(texts)], nil
}

func (fakeEmbedder) Close() error { return nil }

func TestSkillMatch(t *testing.T) {
	got := SkillMatch(
		[]string{"python", "Docker", "Linux"},
		[]string{"Python", "Kubernetes", "Docker"},
	)

	assert.InDelta(t, 66.67, got.MatchPercentage, 0.01)
	// Matched and missing keep the job's order and casing.
	assert.Equal(t, []string{"Python", "Docker"}, got.MatchedSkills)
	assert.Equal(t, []string{"Kubernetes"}, got.MissingSkills)
	// Extras keep the resume's order and casing.
	assert.Equal(t, []string{"Linux"}, got.ExtraSkills)
	assert.Equal(t, 3, got.TotalRequired)
	assert.Equal(t, 2, got.TotalMatched)
}

func TestSkillMatch_NoRequirements(t *testing.T) {
	got := SkillMatch([]string{"Python"}, nil)

	assert.Equal(t, 0.0, got.MatchPercentage)
	assert.Empty(t, got.MatchedSkills)
	assert.Empty(t, got.MissingSkills)
	assert.Empty(t, got.ExtraSkills)
	assert.Equal(t, 0, got.TotalRequired)
}

func TestSkillMatch_DuplicateRequirements(t *testing.T) {
	// Percentage and TotalMatched count distinct skills; TotalRequired
	// counts the raw list.
	got := SkillMatch([]string{"Go"}, []string{"Go", "go"})

	assert.Equal(t, 100.0, got.MatchPercentage)
	assert.Equal(t, 2, got.TotalRequired)
	assert.Equal(t, 1, got.TotalMatched)
}

func TestExperienceMatch(t *testing.T) {
	got := ExperienceMatch(7, 0)
	assert.Equal(t, 100.0, got.Score)
	assert.True(t, got.MeetsRequirement)
	assert.Equal(t, 0, got.Difference)

	got = ExperienceMatch(7, 5)
	assert.Equal(t, 100.0, got.Score)
	assert.True(t, got.MeetsRequirement)
	assert.Equal(t, 2, got.Difference)

	got = ExperienceMatch(3, 5)
	assert.Equal(t, 60.0, got.Score)
	assert.False(t, got.MeetsRequirement)
	assert.Equal(t, -2, got.Difference)
}

func TestEducationMatch(t *testing.T) {
	// No recognized requirement passes automatically.
	got := EducationMatch(taxonomy.LevelBachelors, "")
	assert.Equal(t, 100.0, got.Score)
	assert.True(t, got.MeetsRequirement)

	got = EducationMatch(taxonomy.LevelPhD, taxonomy.LevelMasters)
	assert.Equal(t, 100.0, got.Score)
	assert.True(t, got.MeetsRequirement)

	// Under-qualified earns proportional credit capped at 70.
	got = EducationMatch(taxonomy.LevelBachelors, taxonomy.LevelMasters)
	assert.Equal(t, 56.0, got.Score)
	assert.False(t, got.MeetsRequirement)

	got = EducationMatch("", taxonomy.LevelBachelors)
	assert.Equal(t, 0.0, got.Score)
	assert.False(t, got.MeetsRequirement)
}

func TestFitLevelBoundaries(t *testing.T) {
	assert.Equal(t, types.FitExcellent, fitLevel(80))
	assert.Equal(t, types.FitGood, fitLevel(79.99))
	assert.Equal(t, types.FitGood, fitLevel(60))
	assert.Equal(t, types.FitFair, fitLevel(59.99))
	assert.Equal(t, types.FitFair, fitLevel(40))
	assert.Equal(t, types.FitPoor, fitLevel(39.99))
	assert.Equal(t, types.FitPoor, fitLevel(0))
}

func TestOverallFit(t *testing.T) {
	resume := &types.Profile{
		SkillProfile:    types.SkillProfile{Skills: []string{"Python"}},
		Education:       types.EducationProfile{HighestLevel: taxonomy.LevelBachelors},
		YearsExperience: 5,
		RawText:         "alpha beta gamma",
	}
	job := &types.Profile{
		SkillProfile:    types.SkillProfile{Skills: []string{"Python", "Go"}},
		Education:       types.EducationProfile{HighestLevel: taxonomy.LevelMasters},
		YearsExperience: 10,
		RawText:         "alpha beta gamma",
	}

	result := NewScorer(nil, nil).OverallFit(context.Background(), resume, job)

	// 50*0.40 + 50*0.20 + 56*0.15 + 100*0.15 + 0*0.10 = 53.4
	assert.InDelta(t, 53.4, result.OverallScore, 0.01)
	assert.Equal(t, types.FitFair, result.FitLevel)
	assert.Equal(t, 50.0, result.SkillMatch.MatchPercentage)
	assert.Equal(t, 50.0, result.ExperienceMatch.Score)
	assert.Equal(t, 56.0, result.EducationMatch.Score)
	assert.InDelta(t, 100, result.TextSimilarity, 0.01)
	assert.Equal(t, 0.0, result.SemanticSimilarity)
}

func TestOverallFit_PerfectCandidate(t *testing.T) {
	profile := &types.Profile{
		SkillProfile:    types.SkillProfile{Skills: []string{"Python", "SQL"}},
		YearsExperience: 5,
		RawText:         "alpha beta gamma",
	}

	result := NewScorer(nil, nil).OverallFit(context.Background(), profile, profile)

	// Everything scores 100 except semantic similarity, which has no embedder.
	assert.InDelta(t, 90, result.OverallScore, 0.01)
	assert.Equal(t, types.FitExcellent, result.FitLevel)
}

func TestOverallFit_WeightsNotRenormalized(t *testing.T) {
	profile := &types.Profile{
		SkillProfile: types.SkillProfile{Skills: []string{"Go"}},
	}
	weights := map[string]float64{
		types.FactorSkills:     1.0,
		types.FactorExperience: 1.0,
	}

	result := NewScorer(weights, nil).OverallFit(context.Background(), profile, profile)

	assert.Equal(t, 200.0, result.OverallScore)
}

func TestOverallFit_WeightsUsedIsACopy(t *testing.T) {
	scorer := NewScorer(nil, nil)
	profile := &types.Profile{}

	result := scorer.OverallFit(context.Background(), profile, profile)
	result.WeightsUsed[types.FactorSkills] = 99

	assert.Equal(t, 0.40, scorer.Weights[types.FactorSkills])
}

func TestOverallFit_SemanticSimilarity(t *testing.T) {
	embedder := fakeEmbedder{vectors: [][]float64{{1, 2}, {1, 2}}}
	profile := &types.Profile{RawText: "alpha beta"}

	result := NewScorer(nil, embedder).OverallFit(context.Background(), profile, profile)

	assert.InDelta(t, 100, result.SemanticSimilarity, 0.01)
}

func TestOverallFit_EmbedderFailureDegradesToZero(t *testing.T) {
	embedder := fakeEmbedder{err: errors.New("backend unavailable")}
	profile := &types.Profile{RawText: "alpha beta"}

	result := NewScorer(nil, embedder).OverallFit(context.Background(), profile, profile)

	assert.Equal(t, 0.0, result.SemanticSimilarity)
}

func TestRecommendations(t *testing.T) {
	result := &types.FitResult{
		OverallScore:    85,
		SkillMatch:      types.SkillMatchResult{MissingSkills: []string{"Go", "SQL"}},
		ExperienceMatch: types.ExperienceMatchResult{MeetsRequirement: true},
		EducationMatch:  types.EducationMatchResult{MeetsRequirement: true},
	}

	recs := Recommendations(result)

	require.Len(t, recs, 2)
	assert.Equal(t, "Consider acquiring: Go, SQL", recs[0])
	assert.Equal(t, "Excellent fit - Highly recommended for interview", recs[1])
}

func TestRecommendations_ManyGaps(t *testing.T) {
	result := &types.FitResult{
		OverallScore: 25,
		SkillMatch:   types.SkillMatchResult{MissingSkills: []string{"a", "b", "c", "d"}},
	}

	recs := Recommendations(result)

	require.Len(t, recs, 4)
	assert.Equal(t, "Focus on developing 4 missing skills", recs[0])
	assert.Equal(t, "Gain more relevant work experience", recs[1])
	assert.Equal(t, "Consider pursuing additional education/certifications", recs[2])
	assert.Equal(t, "Consider other opportunities better aligned with skills", recs[3])
}

func TestRecommendations_MiddleBands(t *testing.T) {
	result := &types.FitResult{
		OverallScore:    65,
		ExperienceMatch: types.ExperienceMatchResult{MeetsRequirement: true},
		EducationMatch:  types.EducationMatchResult{MeetsRequirement: true},
	}
	recs := Recommendations(result)
	require.Len(t, recs, 1)
	assert.Equal(t, "Good fit - Recommend for initial screening", recs[0])

	result.OverallScore = 45
	recs = Recommendations(result)
	assert.Equal(t, "Moderate fit - May be suitable for entry-level roles", recs[0])
}

func TestRankCandidates(t *testing.T) {
	job := &types.Profile{
		SkillProfile: types.SkillProfile{Skills: []string{"Python", "Go"}},
	}
	candidates := []*types.Profile{
		{ID: "weak", SkillProfile: types.SkillProfile{Skills: []string{"Excel"}}},
		{ID: "strong", SkillProfile: types.SkillProfile{Skills: []string{"Python", "Go"}}},
		{ID: "partial", SkillProfile: types.SkillProfile{Skills: []string{"Python"}}},
	}
	scorer := NewScorer(map[string]float64{types.FactorSkills: 1.0}, nil)

	ranked, err := RankCandidates(context.Background(), scorer, job, candidates)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "strong", ranked[0].CandidateID)
	assert.Equal(t, "partial", ranked[1].CandidateID)
	assert.Equal(t, "weak", ranked[2].CandidateID)
	assert.Equal(t, []int{1, 2, 3}, []int{ranked[0].Rank, ranked[1].Rank, ranked[2].Rank})
	assert.NotEmpty(t, ranked[0].Recommendations)
}

func TestRankCandidates_TiesKeepInputOrder(t *testing.T) {
	job := &types.Profile{SkillProfile: types.SkillProfile{Skills: []string{"Go"}}}
	candidates := []*types.Profile{
		{ID: "first", SkillProfile: types.SkillProfile{Skills: []string{"Go"}}},
		{ID: "second", SkillProfile: types.SkillProfile{Skills: []string{"Go"}}},
	}
	scorer := NewScorer(nil, nil)

	ranked, err := RankCandidates(context.Background(), scorer, job, candidates)
	require.NoError(t, err)

	assert.Equal(t, "first", ranked[0].CandidateID)
	assert.Equal(t, "second", ranked[1].CandidateID)
}

func TestRankCandidates_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankCandidates(ctx, NewScorer(nil, nil), &types.Profile{}, []*types.Profile{{}})
	assert.Error(t, err)
}
