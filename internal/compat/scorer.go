// Package compat implements the pairwise compatibility scoring engine between
// reader profiles.
package compat

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"unicode/utf8"

	"github.com/kitaplik/kitaplik-server/internal/domain"
	"github.com/kitaplik/kitaplik-server/internal/ranking"
)

// Reason thresholds on sub-scores.
const (
	intellectualReasonThreshold = 0.7
	patternReasonThreshold      = 0.6
)

// Intellectual signal shares. The three contributions are summed and averaged
// over all three factors; the bio term degrades to zero instead of being
// excluded, so the divisor is constant.
const (
	intellectualGenreShare    = 0.4
	intellectualInterestShare = 0.3
	intellectualBioShare      = 0.3
	intellectualFactorCount   = 3
)

// WeightSource supplies the current factor weights. *ranking.Weights and
// *ranking.CalibrationWatcher both satisfy it.
type WeightSource interface {
	Weights() *ranking.Weights
}

// Scorer computes multi-factor compatibility between two reader profiles.
// Every method is a pure function of its inputs and the configured tables;
// the scorer holds no per-call state and is safe for concurrent use.
type Scorer struct {
	tables  *ranking.Tables
	weights WeightSource
	logger  *slog.Logger
}

// NewScorer creates a scorer over the given tables and weight source.
func NewScorer(tables *ranking.Tables, weights WeightSource, logger *slog.Logger) *Scorer {
	return &Scorer{
		tables:  tables,
		weights: weights,
		logger:  logger,
	}
}

// Score computes the compatibility between two profiles. Either profile being
// nil yields the zero result rather than an error.
func (s *Scorer) Score(a, b *domain.ReaderProfile) domain.CompatibilityResult {
	if a == nil || b == nil {
		return domain.ZeroCompatibility()
	}

	aGenres := foldSet(a.FavoriteGenres)
	bGenres := foldSet(b.FavoriteGenres)
	aAuthors := foldSet(a.FavoriteAuthors)
	bAuthors := foldSet(b.FavoriteAuthors)
	aInterests := foldSet(a.Interests)
	bInterests := foldSet(b.Interests)

	sub := domain.SubScores{
		Genre:        s.genreScore(aGenres, bGenres),
		Interest:     s.interestScore(aInterests, bInterests),
		Author:       s.authorScore(aAuthors, bAuthors),
		Intellectual: s.intellectualScore(a, b, aGenres, bGenres, aInterests, bInterests),
		Pattern:      patternScore(aGenres, bGenres, aAuthors, bAuthors, aInterests, bInterests),
	}

	w := s.weights.Weights()
	overall := round2(sub.Genre*w.Genre +
		sub.Interest*w.Interest +
		sub.Author*w.Author +
		sub.Intellectual*w.Intellectual +
		sub.Pattern*w.Pattern)

	return domain.CompatibilityResult{
		OverallScore: overall,
		SubScores:    sub,
		MatchReasons: matchReasons(aGenres, bGenres, aInterests, bInterests, aAuthors, bAuthors, sub),
		Tier:         domain.TierFromScore(overall),
	}
}

// Rank orders candidate profiles by descending compatibility with the target.
// The input slice is never modified; a new slice is returned. Ties keep their
// input order.
func (s *Scorer) Rank(target *domain.ReaderProfile, candidates []domain.ReaderProfile) []domain.ReaderProfile {
	type scored struct {
		profile domain.ReaderProfile
		score   float64
	}

	ranked := make([]scored, 0, len(candidates))
	for i := range candidates {
		ranked = append(ranked, scored{
			profile: candidates[i],
			score:   s.Score(target, &candidates[i]).OverallScore,
		})
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		switch {
		case b.score > a.score:
			return 1
		case b.score < a.score:
			return -1
		default:
			return 0
		}
	})

	out := make([]domain.ReaderProfile, len(ranked))
	for i, r := range ranked {
		out[i] = r.profile
	}
	return out
}

// genreScore sums the genre weight table over the common genres, normalized
// by the larger genre set.
func (s *Scorer) genreScore(a, b map[string]bool) float64 {
	common := intersect(a, b)
	if len(common) == 0 {
		return 0
	}

	var sum float64
	for g := range common {
		sum += s.tables.GenreWeight(g)
	}
	return ranking.Clamp01(sum / float64(max(len(a), len(b))))
}

// interestScore accumulates weighted per-category overlaps.
func (s *Scorer) interestScore(a, b map[string]bool) float64 {
	var numerator, denominator float64

	for _, cat := range s.tables.InterestCategories {
		aIn := countIn(a, cat.Members)
		bIn := countIn(b, cat.Members)
		if aIn == 0 && bIn == 0 {
			continue
		}

		overlap := 0
		for label := range a {
			if cat.Members[label] && b[label] {
				overlap++
			}
		}

		numerator += float64(overlap) * cat.Weight
		denominator += float64(max(aIn, bIn)) * cat.Weight
	}

	if denominator == 0 {
		return 0
	}
	return ranking.Clamp01(numerator / denominator)
}

// authorScore weighs common authors by influence against the union, doubled
// because shared authors are rarer and more diagnostic than shared genres.
func (s *Scorer) authorScore(a, b map[string]bool) float64 {
	common := intersect(a, b)
	if len(common) == 0 {
		return 0
	}

	var commonSum float64
	for author := range common {
		commonSum += s.tables.AuthorWeight(author)
	}

	var unionSum float64
	for author := range union(a, b) {
		unionSum += s.tables.AuthorWeight(author)
	}
	if unionSum == 0 {
		return 0
	}

	return ranking.Clamp01(2 * commonSum / unionSum)
}

// intellectualScore averages three weak signals: shared intellectual genres,
// shared intellectual-category interests, and biography length proximity.
func (s *Scorer) intellectualScore(a, b *domain.ReaderProfile, aGenres, bGenres, aInterests, bInterests map[string]bool) float64 {
	var sum float64

	if s.hasIntellectualGenre(aGenres) && s.hasIntellectualGenre(bGenres) {
		sum += intellectualGenreShare
	}

	if s.hasIntellectualInterest(aInterests) && s.hasIntellectualInterest(bInterests) {
		sum += intellectualInterestShare
	}

	lenA := utf8.RuneCountInString(a.Bio)
	lenB := utf8.RuneCountInString(b.Bio)
	if lenA > 0 && lenB > 0 {
		diff := math.Abs(float64(lenA - lenB))
		sum += intellectualBioShare * (1 - diff/float64(max(lenA, lenB)))
	}

	return ranking.Clamp01(sum / intellectualFactorCount)
}

func (s *Scorer) hasIntellectualGenre(genres map[string]bool) bool {
	for g := range genres {
		if s.tables.IntellectualGenres[g] {
			return true
		}
	}
	return false
}

func (s *Scorer) hasIntellectualInterest(interests map[string]bool) bool {
	cat, ok := s.tables.InterestCategories["intellectual"]
	if !ok {
		return false
	}
	return countIn(interests, cat.Members) > 0
}

// patternScore compares the shapes of the two profiles: how many genres,
// authors, and interests each declares, regardless of which ones.
func patternScore(aGenres, bGenres, aAuthors, bAuthors, aInterests, bInterests map[string]bool) float64 {
	terms := []float64{
		lengthSimilarity(len(aGenres), len(bGenres)),
		lengthSimilarity(len(aAuthors), len(bAuthors)),
		lengthSimilarity(len(aInterests), len(bInterests)),
	}

	var sum float64
	for _, t := range terms {
		sum += t
	}
	return ranking.Clamp01(sum / float64(len(terms)))
}

// lengthSimilarity is 1 minus the normalized absolute difference of two list
// lengths, normalized by max(a, b, 1) to avoid division by zero. Two empty
// lists carry no signal and score 0, not 1.
func lengthSimilarity(a, b int) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	diff := math.Abs(float64(a - b))
	return 1 - diff/float64(max(a, b, 1))
}

// matchReasons builds the ordered, human-readable reason tags.
func matchReasons(aGenres, bGenres, aInterests, bInterests, aAuthors, bAuthors map[string]bool, sub domain.SubScores) []string {
	reasons := []string{}

	if n := len(intersect(aGenres, bGenres)); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d ortak tür", n))
	}
	if n := len(intersect(aInterests, bInterests)); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d ortak ilgi alanı", n))
	}
	if n := len(intersect(aAuthors, bAuthors)); n > 0 {
		reasons = append(reasons, fmt.Sprintf("%d ortak yazar", n))
	}
	if sub.Intellectual > intellectualReasonThreshold {
		reasons = append(reasons, "Benzer entelektüel seviye")
	}
	if sub.Pattern > patternReasonThreshold {
		reasons = append(reasons, "Benzer okuma tercihleri")
	}

	return reasons
}

// foldSet folds labels and drops duplicates and blanks.
func foldSet(labels []string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		folded := ranking.Fold(l)
		if folded != "" {
			set[folded] = true
		}
	}
	return set
}

func intersect(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool)
	for k := range a {
		if b[k] {
			out[k] = true
		}
	}
	return out
}

func union(a, b map[string]bool) map[string]bool {
	out := make(map[string]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func countIn(set, members map[string]bool) int {
	n := 0
	for k := range set {
		if members[k] {
			n++
		}
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
