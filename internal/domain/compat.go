package domain

// RecommendationTier is the coarse bucket derived from an overall
// compatibility score.
type RecommendationTier string

const (
	TierHigh   RecommendationTier = "high"
	TierMedium RecommendationTier = "medium"
	TierLow    RecommendationTier = "low"
)

// Tier thresholds on the overall score.
const (
	tierHighThreshold   = 0.75
	tierMediumThreshold = 0.50
)

// TierFromScore buckets an overall score into a recommendation tier.
func TierFromScore(score float64) RecommendationTier {
	switch {
	case score >= tierHighThreshold:
		return TierHigh
	case score >= tierMediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// SubScores holds the per-factor components of a compatibility score, each
// normalized to [0, 1].
type SubScores struct {
	Genre        float64 `json:"genre"`
	Interest     float64 `json:"interest"`
	Author       float64 `json:"author"`
	Intellectual float64 `json:"intellectual"`
	Pattern      float64 `json:"pattern"`
}

// CompatibilityResult is the outcome of scoring two reader profiles against
// each other. Read-only, never persisted.
type CompatibilityResult struct {
	OverallScore float64            `json:"overall_score"`
	SubScores    SubScores          `json:"sub_scores"`
	MatchReasons []string           `json:"match_reasons"`
	Tier         RecommendationTier `json:"tier"`
}

// ZeroCompatibility returns the result used when either profile is missing:
// all sub-scores zero, low tier, no reasons.
func ZeroCompatibility() CompatibilityResult {
	return CompatibilityResult{
		MatchReasons: []string{},
		Tier:         TierLow,
	}
}
