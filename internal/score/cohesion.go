package score

import (
	"math"

	"github.com/jtoivan/statnews/internal/model"
)

const (
	// Previous-article scores above this start amplifying matching facts.
	cohesionStartIncrease = 10.0
	// Base of the exponential damping applied to repeated locations.
	cohesionExpBase = 1.1
)

// BoostCohesion adjusts scores so that a follow-up article coheres with a
// previously generated one: facts echoing a previous article's salient
// value-type/timestamp pairs are amplified, while expanded-pool facts about
// previously covered locations are damped so at most one gets repeated.
// Must run after Score and before planning.
func (s *Scorer) BoostCohesion(core, expanded, previous []*model.Message) {
	if len(previous) == 0 {
		return
	}

	keyScores := map[string]map[string]float64{}
	for _, m := range previous {
		fact := m.MainFact()
		if keyScores[fact.ValueType] == nil {
			keyScores[fact.ValueType] = map[string]float64{}
		}
		keyScores[fact.ValueType][fact.Timestamp] = m.Score
	}

	for _, m := range core {
		fact := m.MainFact()
		coef := keyScores[fact.ValueType][fact.Timestamp]/cohesionStartIncrease + 1
		m.Score *= coef
	}

	prevLocs := map[string]bool{}
	for _, m := range previous {
		prevLocs[m.MainFact().Location] = true
	}
	if len(prevLocs) == 0 {
		return
	}

	maxPrev := math.Inf(-1)
	for _, m := range expanded {
		if prevLocs[m.MainFact().Location] && m.Score > maxPrev {
			maxPrev = m.Score
		}
	}
	if math.IsInf(maxPrev, -1) {
		return
	}

	denominator := math.Pow(cohesionExpBase, maxPrev)
	for _, m := range expanded {
		if prevLocs[m.MainFact().Location] {
			m.Score *= math.Pow(cohesionExpBase, m.Score) / denominator
		}
	}
}
