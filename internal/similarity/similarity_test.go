package similarity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSimilarity_IdenticalDocuments(t *testing.T) {
	text := "backend engineer building distributed systems in production"
	assert.InDelta(t, 100, TextSimilarity(text, text), 0.01)
}

func TestTextSimilarity_DisjointDocuments(t *testing.T) {
	assert.Equal(t, 0.0, TextSimilarity("kubernetes deployment pipelines", "financial accounting ledgers"))
}

func TestTextSimilarity_PartialOverlap(t *testing.T) {
	// Shared unigram "python"; the remaining unigrams and both bigrams are
	// unique to their documents.
	got := TextSimilarity("python developer", "python engineer")
	assert.InDelta(t, 20.2, got, 0.01)
}

func TestTextSimilarity_Symmetric(t *testing.T) {
	a := "senior data engineer with warehouse experience"
	b := "data analyst reporting on warehouse metrics"
	assert.Equal(t, TextSimilarity(a, b), TextSimilarity(b, a))
}

func TestTextSimilarity_StopwordsOnly(t *testing.T) {
	assert.Equal(t, 0.0, TextSimilarity("the and of about", "because however the"))
	assert.Equal(t, 0.0, TextSimilarity("", ""))
	assert.Equal(t, 0.0, TextSimilarity("kubernetes", ""))
}

func TestTextSimilarity_Range(t *testing.T) {
	got := TextSimilarity(
		"machine learning engineer training models with python and spark",
		"data scientist using python for statistical models",
	)
	assert.Greater(t, got, 0.0)
	assert.Less(t, got, 100.0)
}

func TestCosine(t *testing.T) {
	assert.Equal(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}))
	assert.InDelta(t, 1.0, Cosine([]float64{2, 3}, []float64{2, 3}), 1e-9)
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
	assert.Equal(t, 0.0, Cosine([]float64{1}, []float64{1, 2}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
}

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

func TestSemantic(t *testing.T) {
	embedder := fakeEmbedder{vectors: [][]float64{{1, 0, 1}, {1, 0, 1}}}

	score, err := Semantic(context.Background(), embedder, "a", "b")
	require.NoError(t, err)
	assert.InDelta(t, 100, score, 0.01)
}

func TestSemantic_EmbedError(t *testing.T) {
	embedder := fakeEmbedder{err: errors.New("quota exceeded")}

	score, err := Semantic(context.Background(), embedder, "a", "b")
	require.Error(t, err)
	assert.Equal(t, 0.0, score)
}
