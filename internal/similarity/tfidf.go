// Package similarity scores document pairs on a 0-100 scale. Lexical
// similarity uses TF-IDF vectors over unigrams and bigrams; semantic
// similarity uses embedding vectors from an external model. Both reduce to
// cosine similarity.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxFeatures caps the TF-IDF vocabulary at the most frequent terms across
// the document pair, with ties broken alphabetically for determinism.
const maxFeatures = 1000

// tokenPattern accepts words of two or more letters or digits.
var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// TextSimilarity computes the TF-IDF cosine similarity of two documents,
// scaled to 0-100 and rounded to two decimals. Documents that share no
// vocabulary, or contain nothing but stopwords, score 0.
func TextSimilarity(a, b string) float64 {
	countsA := termCounts(a)
	countsB := termCounts(b)

	vocab := buildVocabulary(countsA, countsB)
	if len(vocab) == 0 {
		return 0
	}

	vecA := tfidfVector(countsA, countsB, vocab)
	vecB := tfidfVector(countsB, countsA, vocab)

	return round2(Cosine(vecA, vecB) * 100)
}

// termCounts tokenizes text, drops stopwords, and counts unigrams plus
// bigrams formed over the surviving token stream.
func termCounts(text string) map[string]int {
	var tokens []string
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if _, stop := englishStopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}

	counts := make(map[string]int, len(tokens)*2)
	for i, tok := range tokens {
		counts[tok]++
		if i+1 < len(tokens) {
			counts[tok+" "+tokens[i+1]]++
		}
	}
	return counts
}

// buildVocabulary merges the term sets of both documents and keeps the
// maxFeatures most frequent terms, assigning each a stable vector index.
func buildVocabulary(countsA, countsB map[string]int) map[string]int {
	total := make(map[string]int, len(countsA)+len(countsB))
	for term, n := range countsA {
		total[term] += n
	}
	for term, n := range countsB {
		total[term] += n
	}

	terms := make([]string, 0, len(total))
	for term := range total {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if total[terms[i]] != total[terms[j]] {
			return total[terms[i]] > total[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// tfidfVector builds the l2-normalized TF-IDF vector for the document with
// counts self, using other to derive document frequencies. IDF uses the
// smoothed form ln((1+n)/(1+df)) + 1 over the two-document corpus.
func tfidfVector(self, other map[string]int, vocab map[string]int) []float64 {
	const nDocs = 2

	vec := make([]float64, len(vocab))
	for term, idx := range vocab {
		tf := self[term]
		if tf == 0 {
			continue
		}
		df := 1
		if other[term] > 0 {
			df = 2
		}
		idf := math.Log(float64(1+nDocs)/float64(1+df)) + 1
		vec[idx] = float64(tf) * idf
	}

	normalize(vec)
	return vec
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
