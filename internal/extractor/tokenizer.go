package extractor

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

// minCandidateLen filters out short tokens that fuzzy-match too eagerly.
const minCandidateLen = 3

// A Tokenizer proposes candidate phrases from free text for fuzzy skill
// lookup. Implementations are best-effort and return nil when the text
// cannot be analyzed.
type Tokenizer interface {
	Candidates(text string) []string
}

// ProseTokenizer extracts candidates with the prose NLP pipeline: nouns and
// proper nouns above minCandidateLen, plus any recognized named entities.
type ProseTokenizer struct{}

func (ProseTokenizer) Candidates(text string) []string {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		candidates = append(candidates, s)
	}

	for _, tok := range doc.Tokens() {
		// Penn Treebank noun tags: NN, NNS, NNP, NNPS.
		if strings.HasPrefix(tok.Tag, "NN") && len(tok.Text) >= minCandidateLen {
			add(tok.Text)
		}
	}
	for _, ent := range doc.Entities() {
		add(ent.Text)
	}

	return candidates
}
