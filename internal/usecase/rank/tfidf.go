package rank

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`\w\w+`)

// vectorizer is a TF-IDF vectorizer fitted on a reference corpus.
// The vocabulary is fixed at fit time; transform projects any text onto it.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitVectorizer builds the vocabulary and IDF weights from the given corpus.
func fitVectorizer(corpus []string) *vectorizer {
	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocab[term] = i
		// Smoothed IDF, always positive.
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// transform projects text onto the fitted vocabulary as an L2-normalized
// TF-IDF vector. Terms outside the vocabulary are ignored.
func (v *vectorizer) transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range tokenize(text) {
		if i, ok := v.vocab[tok]; ok {
			vec[i] += v.idf[i]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// tokenize lowercases the text and extracts word tokens of length >= 2.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// cosine computes the dot product of two L2-normalized vectors.
// Returns 0 when either vector has zero magnitude.
func cosine(a, b []float64) float64 {
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0
	}
	if dot > 1 {
		return 1
	}
	return dot
}
