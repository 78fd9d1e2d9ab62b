package encoder

import (
	"sort"
	"strings"
)

// Encoder maps symptom names onto a fixed-order binary feature vector.
// The vocabulary order defines the vector positions and is fixed for
// the process lifetime.
type Encoder struct {
	vocabulary []string
	index      map[string]int
}

// New creates an Encoder for the given ordered vocabulary.
// Vocabulary entries are normalized the same way as input tokens.
func New(vocabulary []string) *Encoder {
	index := make(map[string]int, len(vocabulary))
	normalized := make([]string, len(vocabulary))
	for i, name := range vocabulary {
		norm := normalizeToken(name)
		normalized[i] = norm
		index[norm] = i
	}
	return &Encoder{
		vocabulary: normalized,
		index:      index,
	}
}

// Size returns the vocabulary size, which equals the encoded vector length.
func (e *Encoder) Size() int {
	return len(e.vocabulary)
}

// Normalize lowercases and trims the given symptom tokens, splitting
// comma-separated entries. Empty tokens are dropped; the result may be empty.
func Normalize(tokens []string) []string {
	var out []string
	for _, token := range tokens {
		for _, part := range strings.Split(token, ",") {
			norm := normalizeToken(part)
			if norm != "" {
				out = append(out, norm)
			}
		}
	}
	return out
}

// CacheKey returns a canonical key for a normalized symptom set, suitable
// for cache lookups. Duplicates are collapsed and order does not matter.
func CacheKey(normalized []string) string {
	set := make(map[string]struct{}, len(normalized))
	for _, token := range normalized {
		set[token] = struct{}{}
	}
	unique := make([]string, 0, len(set))
	for token := range set {
		unique = append(unique, token)
	}
	sort.Strings(unique)
	return strings.Join(unique, ",")
}

// Encode returns a binary vector of vocabulary length where position i is 1
// iff vocabulary[i] appears in the normalized token set. Unknown tokens are
// silently ignored.
func (e *Encoder) Encode(normalized []string) []float64 {
	vector := make([]float64, len(e.vocabulary))
	for _, token := range normalized {
		if i, ok := e.index[token]; ok {
			vector[i] = 1
		}
	}
	return vector
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}
