package plan

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"github.com/jtoivan/statnews/internal/model"
)

// Strategy bundles the three decision points of the body planner. Variants
// share the outer paragraph loop in Planner and differ only in these
// functions, so a variant is data rather than a type hierarchy.
type Strategy struct {
	// AbsoluteThreshold is the minimum raw score a nucleus must carry to
	// open a new paragraph.
	AbsoluteThreshold float64

	// SelectNextNucleus picks the nucleus for the next paragraph from the
	// remaining core messages, or returns nil when the document is done.
	SelectNextNucleus func(rng *rand.Rand, available, selected []*model.Message) (*model.Message, float64)

	// RelativeThreshold returns the score floor for the next nucleus given
	// the nuclei already selected.
	RelativeThreshold func(selected []*model.Message) float64

	// SelectSatellites picks supporting messages for a nucleus from the
	// core and expanded pools.
	SelectSatellites func(rng *rand.Rand, nucleus *model.Message, core, expanded []*model.Message) []*model.Message
}

// StrategyFor returns the planning strategy named by variant: "full",
// "score", "random" or "earlystop". Unknown names fall back to "full".
func StrategyFor(variant string, cfg model.PlannerConfig) Strategy {
	switch variant {
	case "score":
		return scoreStrategy(cfg)
	case "random":
		return randomStrategy(cfg)
	case "earlystop":
		return earlyStopStrategy(cfg)
	default:
		return fullStrategy(cfg)
	}
}

// fullStrategy is the production planner: nuclei must introduce a new
// topic/location pair until the document commits to either an overview or
// an in-depth shape, and satellites are rescored for coherence against both
// the nucleus and the previously placed message.
func fullStrategy(cfg model.PlannerConfig) Strategy {
	return Strategy{
		AbsoluteThreshold: cfg.ParagraphAbsoluteThreshold,
		SelectNextNucleus: func(rng *rand.Rand, available, selected []*model.Message) (*model.Message, float64) {
			return selectTopicalNucleus(cfg, available, selected)
		},
		RelativeThreshold: func(selected []*model.Message) float64 {
			switch len(selected) {
			case 0:
				return math.Inf(-1)
			case 1:
				return cfg.SecondParagraphFraction * selected[0].Score
			default:
				return cfg.LaterParagraphFraction * selected[0].Score
			}
		},
		SelectSatellites: func(rng *rand.Rand, nucleus *model.Message, core, expanded []*model.Message) []*model.Message {
			return selectCoherentSatellites(cfg, nucleus, core, expanded)
		},
	}
}

// scoreStrategy is a newsworthiness-only baseline: highest score wins, no
// topic bookkeeping, no coherence rescoring.
func scoreStrategy(cfg model.PlannerConfig) Strategy {
	return Strategy{
		AbsoluteThreshold: cfg.ParagraphAbsoluteThreshold,
		SelectNextNucleus: func(rng *rand.Rand, available, selected []*model.Message) (*model.Message, float64) {
			return selectTopNucleus(cfg, available, selected)
		},
		RelativeThreshold: func(selected []*model.Message) float64 {
			return math.Inf(-1)
		},
		SelectSatellites: func(rng *rand.Rand, nucleus *model.Message, core, expanded []*model.Message) []*model.Message {
			pool := append(append([]*model.Message{}, core...), expanded...)
			sortByScore(pool)
			if len(pool) > cfg.MaxSatellites {
				pool = pool[:cfg.MaxSatellites]
			}
			return pool
		},
	}
}

// randomStrategy is a lower-bound baseline used in evaluations.
func randomStrategy(cfg model.PlannerConfig) Strategy {
	return Strategy{
		AbsoluteThreshold: 0,
		SelectNextNucleus: func(rng *rand.Rand, available, selected []*model.Message) (*model.Message, float64) {
			if len(selected) >= cfg.MaxParagraphs || len(available) == 0 {
				return nil, 0
			}
			m := available[rng.Intn(len(available))]
			return m, m.Score
		},
		RelativeThreshold: func(selected []*model.Message) float64 {
			return math.Inf(-1)
		},
		SelectSatellites: func(rng *rand.Rand, nucleus *model.Message, core, expanded []*model.Message) []*model.Message {
			pool := append(append([]*model.Message{}, core...), expanded...)
			var satellites []*model.Message
			for len(pool) > 0 && len(satellites) < cfg.MaxSatellites {
				rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
				satellites = append(satellites, pool[len(pool)-1])
				pool = pool[:len(pool)-1]
			}
			return satellites
		},
	}
}

// earlyStopStrategy takes the top-score nucleus like the score baseline but
// keeps strict relative thresholds, so weak documents end after one or two
// paragraphs instead of padding to MaxParagraphs.
func earlyStopStrategy(cfg model.PlannerConfig) Strategy {
	return Strategy{
		AbsoluteThreshold: cfg.ParagraphAbsoluteThreshold,
		SelectNextNucleus: func(rng *rand.Rand, available, selected []*model.Message) (*model.Message, float64) {
			return selectTopNucleus(cfg, available, selected)
		},
		RelativeThreshold: func(selected []*model.Message) float64 {
			switch len(selected) {
			case 0:
				return math.Inf(-1)
			case 1:
				return 0.1 * selected[0].Score
			default:
				return cfg.LaterParagraphFraction * selected[0].Score
			}
		},
		SelectSatellites: func(rng *rand.Rand, nucleus *model.Message, core, expanded []*model.Message) []*model.Message {
			pool := append([]*model.Message{}, core...)
			sortByScore(pool)
			if len(pool) > cfg.MaxSatellites {
				pool = pool[:cfg.MaxSatellites]
			}
			return pool
		},
	}
}

// topic is the broad subject of a message: the dataset-and-category prefix
// of its value type, e.g. "health:cost:hc" out of "health:cost:hc:tot_hc:eur_hab".
func topic(cfg model.PlannerConfig, m *model.Message) string {
	parts := strings.Split(m.MainFact().ValueType, ":")
	if len(parts) > cfg.TopicPrefixLength {
		parts = parts[:cfg.TopicPrefixLength]
	}
	return strings.Join(parts, ":")
}

func sortByScore(messages []*model.Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Score > messages[j].Score
	})
}

// selectTopNucleus returns the highest-scoring available message, ignoring
// topic novelty.
func selectTopNucleus(cfg model.PlannerConfig, available, selected []*model.Message) (*model.Message, float64) {
	if len(selected) >= cfg.MaxParagraphs || len(available) == 0 {
		return nil, 0
	}
	pool := append([]*model.Message{}, available...)
	sortByScore(pool)
	return pool[0], pool[0].Score
}

// selectTopicalNucleus prefers messages whose topic/location pair has not
// opened a paragraph yet. When every pair is exhausted, a document that
// already covers several topics is an overview and stops, while a document
// stuck on a single topic is an in-depth piece and relaxes the novelty
// requirement instead.
func selectTopicalNucleus(cfg model.PlannerConfig, availableMessages, selected []*model.Message) (*model.Message, float64) {
	if len(selected) >= cfg.MaxParagraphs {
		return nil, 0
	}

	type pair struct{ topic, location string }
	seen := map[pair]bool{}
	for _, nucleus := range selected {
		seen[pair{topic(cfg, nucleus), nucleus.MainFact().Location}] = true
	}

	var available []*model.Message
	for _, m := range availableMessages {
		if !seen[pair{topic(cfg, m), m.MainFact().Location}] {
			available = append(available, m)
		}
	}

	if len(available) == 0 {
		if len(seen) > 1 {
			return nil, 0
		}
		available = append([]*model.Message{}, availableMessages...)
	}
	if len(available) == 0 {
		return nil, 0
	}

	sortByScore(available)
	return available[0], available[0].Score
}

// selectCoherentSatellites grows a paragraph one message at a time,
// repeatedly rescoring the remaining pool for coherence against both the
// nucleus and the most recently placed message. Expanded-pool messages decay
// with their distance from the last core message so off-location material
// stays supporting evidence rather than taking over the paragraph.
func selectCoherentSatellites(cfg model.PlannerConfig, nucleus *model.Message, core, expanded []*model.Message) []*model.Message {
	var satellites []*model.Message

	availableCore := append([]*model.Message{}, core...)
	availableExpanded := append([]*model.Message{}, expanded...)

	previous := nucleus
	distFromCore := 1

	for {
		var candidates []scored
		for _, m := range availableCore {
			if m.Score > 0 {
				candidates = append(candidates, scored{m.Score, m})
			}
		}
		for _, m := range availableExpanded {
			if m.Score > 0 {
				candidates = append(candidates, scored{m.Score / float64(distFromCore+1), m})
			}
		}

		vsNucleus := map[*model.Message]float64{}
		for _, c := range weighByContext(weighByAnalysis(cfg, candidates, nucleus), nucleus) {
			vsNucleus[c.message] = c.score
		}
		vsPrevious := weighByContext(weighByAnalysis(cfg, candidates, previous), previous)

		rescored := make([]scored, 0, len(vsPrevious))
		for _, c := range vsPrevious {
			avg := (cfg.NucleusWeight*vsNucleus[c.message] + c.score) / (cfg.NucleusWeight + 1)
			rescored = append(rescored, scored{avg, c.message})
		}

		var passing []scored
		for _, c := range rescored {
			if c.score > cfg.SatelliteRelativeThreshold*nucleus.Score || c.score > cfg.SatelliteAbsoluteThreshold {
				passing = append(passing, c)
			}
		}

		if len(passing) == 0 {
			if len(satellites) >= cfg.MinSatellites {
				return satellites
			}
			if len(rescored) == 0 {
				return satellites
			}
			// Short paragraph: retry below threshold rather than leave the
			// nucleus hanging alone.
			passing = rescored
		}

		if len(satellites) >= cfg.MaxSatellites {
			return satellites
		}

		sort.SliceStable(passing, func(i, j int) bool { return passing[i].score > passing[j].score })
		selected := passing[0].message
		satellites = append(satellites, selected)

		if i := indexOf(availableCore, selected); i >= 0 {
			availableCore = append(availableCore[:i], availableCore[i+1:]...)
			distFromCore = 1
		} else if i := indexOf(availableExpanded, selected); i >= 0 {
			availableExpanded = append(availableExpanded[:i], availableExpanded[i+1:]...)
			distFromCore++
		}

		previous = selected
	}
}

type scored struct {
	score   float64
	message *model.Message
}

// weighByAnalysis weights candidates by how specifically their value type
// agrees with the reference message. Messages outside the reference topic
// are zeroed outright; within the topic, the score is divided by how many
// prefix segments had to be dropped before the value types matched.
func weighByAnalysis(cfg model.PlannerConfig, candidates []scored, reference *model.Message) []scored {
	refTopic := topic(cfg, reference)

	var weighted []scored
	var inTopic []scored
	for _, c := range candidates {
		if topic(cfg, c.message) == refTopic {
			inTopic = append(inTopic, c)
		} else {
			weighted = append(weighted, scored{0, c.message})
		}
	}

	fragments := strings.Split(reference.MainFact().ValueType, ":")
	remaining := inTopic
	for n := 0; n < len(fragments); n++ {
		prefix := strings.Join(fragments[:len(fragments)-n], ":")
		var unprocessed []scored
		for _, c := range remaining {
			if strings.HasPrefix(c.message.MainFact().ValueType, prefix) {
				weighted = append(weighted, scored{c.score / float64(n+1), c.message})
			} else {
				unprocessed = append(unprocessed, c)
			}
		}
		remaining = unprocessed
	}
	for _, c := range remaining {
		weighted = append(weighted, scored{0, c.message})
	}
	return weighted
}

// weighByContext amplifies candidates that share a location or timestamp
// with the reference message and zeroes those that share neither.
func weighByContext(candidates []scored, reference *model.Message) []scored {
	ref := reference.MainFact()

	weighted := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		fact := c.message.MainFact()
		score := c.score
		if ref.Location != fact.Location && ref.Timestamp != fact.Timestamp {
			score = 0
		} else {
			if ref.Location == fact.Location {
				score *= 2
			}
			if ref.Timestamp == fact.Timestamp {
				score *= 1.5
			}
		}
		weighted = append(weighted, scored{score, c.message})
	}
	return weighted
}

func indexOf(messages []*model.Message, target *model.Message) int {
	for i, m := range messages {
		if m == target {
			return i
		}
	}
	return -1
}
