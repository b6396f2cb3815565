package ranking

import (
	"encoding/json"
	"fmt"
	"os"
)

// Weights holds the overall-score weights for the five compatibility factors.
// They are expected to sum to 1.0 but the scorer does not enforce it, so
// calibration can deliberately under- or over-weight the total.
type Weights struct {
	Genre        float64 `json:"genre"`        // default 0.25
	Interest     float64 `json:"interest"`     // default 0.30
	Author       float64 `json:"author"`       // default 0.20
	Intellectual float64 `json:"intellectual"` // default 0.15
	Pattern      float64 `json:"pattern"`      // default 0.10
}

// Weights returns w itself, so a static *Weights can stand in wherever a
// live weight source is expected.
func (w *Weights) Weights() *Weights { return w }

// CalibrationConfig is the JSON structure of the calibration file.
type CalibrationConfig struct {
	Version string  `json:"version"`
	Weights Weights `json:"weights"`
}

// DefaultWeights returns the default factor weights.
//
// Overall formula:
//
//	overall = genre*0.25 + interest*0.30 + author*0.20 + intellectual*0.15 + pattern*0.10
//
// Interests weigh highest because they are the broadest day-to-day signal;
// shared authors weigh below genres only because the author sub-score is
// already boosted for rarity inside the scorer.
func DefaultWeights() *Weights {
	return &Weights{
		Genre:        0.25,
		Interest:     0.30,
		Author:       0.20,
		Intellectual: 0.15,
		Pattern:      0.10,
	}
}

// LoadCalibration loads factor weights from a JSON calibration file. Fields
// missing or zero in the file keep their defaults so partial files degrade
// gracefully. A missing or unreadable file returns defaults along with the
// error.
func LoadCalibration(path string) (*Weights, error) {
	defaults := DefaultWeights()

	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read calibration file: %w", err)
	}

	var cfg CalibrationConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return defaults, fmt.Errorf("parse calibration file: %w", err)
	}

	merged := mergeWeights(defaults, &cfg.Weights)
	return merged, nil
}

// mergeWeights overlays non-zero calibrated weights onto the defaults.
func mergeWeights(defaults, loaded *Weights) *Weights {
	out := *defaults
	if loaded.Genre > 0 {
		out.Genre = loaded.Genre
	}
	if loaded.Interest > 0 {
		out.Interest = loaded.Interest
	}
	if loaded.Author > 0 {
		out.Author = loaded.Author
	}
	if loaded.Intellectual > 0 {
		out.Intellectual = loaded.Intellectual
	}
	if loaded.Pattern > 0 {
		out.Pattern = loaded.Pattern
	}
	return &out
}

// Clamp01 bounds a score to [0, 1]. Shared by every sub-score computation.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
