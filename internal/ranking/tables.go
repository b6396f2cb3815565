// Package ranking provides the weight tables and calibration used by the
// compatibility scorer and, through it, discovery features.
package ranking

import (
	"strings"
	"unicode"
)

// Fold normalizes a free-text label (genre, author, interest) for table
// lookups and set comparison. Uses Turkish casing so "Şiir" and "ŞİİR" fold
// to the same key.
func Fold(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, strings.TrimSpace(s))
}

// InterestCategory groups related interest labels under a shared weight.
type InterestCategory struct {
	Weight  float64
	Members map[string]bool
}

// Tables bundles the fixed lookup tables the scorer consults. Keys are
// pre-folded with Fold.
type Tables struct {
	// GenreWeights assigns per-genre weights; genres carrying more
	// intellectual weight score above 1.0, lighter genres below. Unlisted
	// genres default to 1.0.
	GenreWeights map[string]float64

	// AuthorInfluence assigns per-author weights for canonically influential
	// authors. Unlisted authors default to 1.0.
	AuthorInfluence map[string]float64

	// InterestCategories buckets interests into weighted categories.
	InterestCategories map[string]InterestCategory

	// IntellectualGenres is the genre subset counted as an intellectual
	// signal.
	IntellectualGenres map[string]bool
}

// GenreWeight returns the weight for a genre label, defaulting to 1.0.
func (t *Tables) GenreWeight(genre string) float64 {
	if w, ok := t.GenreWeights[Fold(genre)]; ok {
		return w
	}
	return 1.0
}

// AuthorWeight returns the influence weight for an author, defaulting to 1.0.
func (t *Tables) AuthorWeight(author string) float64 {
	if w, ok := t.AuthorInfluence[Fold(author)]; ok {
		return w
	}
	return 1.0
}

// IntellectualGenre reports whether the genre counts as an intellectual
// signal.
func (t *Tables) IntellectualGenre(genre string) bool {
	return t.IntellectualGenres[Fold(genre)]
}

// members builds a folded membership set from labels.
func members(labels ...string) map[string]bool {
	set := make(map[string]bool, len(labels))
	for _, l := range labels {
		set[Fold(l)] = true
	}
	return set
}

// DefaultTables returns the built-in weight tables. The labels follow the
// platform's Turkish taxonomy; callers can supply their own tables for other
// locales without touching the scoring algorithm.
func DefaultTables() *Tables {
	return &Tables{
		GenreWeights: map[string]float64{
			Fold("Şiir"):        1.3,
			Fold("Deneme"):      1.3,
			Fold("Felsefi"):     1.3,
			Fold("Felsefe"):     1.3,
			Fold("Klasik"):      1.2,
			Fold("Tarih"):       1.2,
			Fold("Bilim"):       1.2,
			Fold("Biyografi"):   1.1,
			Fold("Roman"):       1.0,
			Fold("Öykü"):        1.0,
			Fold("Bilim Kurgu"): 1.0,
			Fold("Fantastik"):   0.9,
			Fold("Polisiye"):    0.9,
			Fold("Macera"):      0.8,
			Fold("Mizah"):       0.7,
			Fold("Gezi"):        0.6,
			Fold("Çizgi Roman"): 0.5,
		},
		AuthorInfluence: map[string]float64{
			Fold("Fyodor Dostoyevski"): 1.7,
			Fold("Lev Tolstoy"):        1.6,
			Fold("Franz Kafka"):        1.6,
			Fold("Oğuz Atay"):          1.5,
			Fold("Orhan Pamuk"):        1.5,
			Fold("Albert Camus"):       1.5,
			Fold("Virginia Woolf"):     1.5,
			Fold("Sabahattin Ali"):     1.4,
			Fold("Yaşar Kemal"):        1.4,
			Fold("Stefan Zweig"):       1.4,
			Fold("George Orwell"):      1.4,
			Fold("İhsan Oktay Anar"):   1.3,
			Fold("Ahmet Hamdi Tanpınar"): 1.3,
			Fold("Ursula K. Le Guin"):  1.2,
		},
		InterestCategories: map[string]InterestCategory{
			"intellectual": {
				Weight:  1.4,
				Members: members("Felsefe", "Tarih", "Bilim", "Psikoloji", "Sosyoloji", "Edebiyat"),
			},
			"learning": {
				Weight:  1.3,
				Members: members("Dil Öğrenimi", "Yazılım", "Astronomi", "Ekonomi", "Satranç"),
			},
			"creative": {
				Weight:  1.1,
				Members: members("Yazarlık", "Resim", "Müzik", "Fotoğrafçılık", "Tiyatro"),
			},
			"social": {
				Weight:  1.0,
				Members: members("Seyahat", "Kitap Kulübü", "Gönüllülük", "Yemek"),
			},
			"wellness": {
				Weight:  0.9,
				Members: members("Yoga", "Meditasyon", "Doğa Yürüyüşü", "Koşu", "Bisiklet"),
			},
			"lifestyle": {
				Weight:  0.8,
				Members: members("Moda", "Oyun", "Sinema", "Bahçecilik", "Kahve"),
			},
		},
		IntellectualGenres: members("Felsefi", "Felsefe", "Şiir", "Deneme", "Tarih", "Bilim", "Klasik"),
	}
}
