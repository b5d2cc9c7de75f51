package score

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jtoivan/statnews/internal/model"
)

// Scorer assigns a newsworthiness score to each message. Scoring is a pure
// function of the main fact's value type, timestamp and outlierness plus the
// message's importance coefficient; zero and negative scores act as
// exclusion signals downstream.
type Scorer struct {
	now time.Time
}

// NewScorer creates a scorer anchored at the current time.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now()}
}

// WithNow fixes the reference time used by the recency decay. Used by tests
// that need stable scores.
func (s *Scorer) WithNow(now time.Time) *Scorer {
	s.now = now
	return s
}

// Score scores every message in place and returns the slice sorted in
// descending score order.
func (s *Scorer) Score(messages []*model.Message) []*model.Message {
	for _, m := range messages {
		m.Score = s.scoreOne(m)
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Score > messages[j].Score
	})
	return messages
}

// scoreOne computes the multiplicative newsworthiness of a single message.
func (s *Scorer) scoreOne(m *model.Message) float64 {
	fact := m.MainFact()

	outlierness := fact.Outlierness
	if outlierness == 0 {
		outlierness = 1
	}
	if math.IsNaN(outlierness) {
		outlierness = 0
	}

	valueTypeScore := 1.0

	// Trend indicators are by far the most newsworthy thing in the data.
	if strings.Contains(fact.ValueType, "_trend") {
		valueTypeScore *= 500
	}

	// National currency figures say nothing comparable across countries.
	if strings.Contains(fact.ValueType, "_nac") {
		return 0
	} else if strings.Contains(fact.ValueType, "_pps") {
		valueTypeScore *= 10
	} else if strings.Contains(fact.ValueType, "_eur") {
		valueTypeScore *= 40
	}

	// Narrow age-group breakdowns read as noise in a general article.
	for _, group := range []string{
		"y-lt6", "y6-10", "y6-11", "y11-15", "y12-17", "y-lt16",
		"y16-24", "y16-64", "y-ge16", "y-lt18",
	} {
		if strings.Contains(fact.ValueType, group) {
			return 0
		}
	}

	if strings.Contains(fact.ValueType, "_t_") {
		return 0
	}

	whatScore := valueTypeScore * outlierness
	timestampScore := 20 * s.recency(fact.Timestamp, fact.TimestampType)

	score := whatScore * timestampScore

	if strings.Contains(fact.ValueType, "_rank") {
		if v, ok := factValueFloat(fact); ok {
			score *= math.Pow(0.7, v-1)
		}
	}

	if strings.Contains(fact.ValueType, "_reverse") {
		if strings.Contains(fact.ValueType, "_change") {
			score *= 0.7
		} else {
			score *= 0.25
		}
	}

	return score * m.ImportanceCoefficient
}

// recency weights a timestamp by inverse-square distance from the current
// year. Month-granularity timestamps interpolate between the decay bands of
// their year and the previous one on a 13-month convention, so that the
// whole year stays slightly more salient than its December.
func (s *Scorer) recency(timestamp, timestampType string) float64 {
	currentYear := s.now.Year()

	switch timestampType {
	case "year":
		year, err := strconv.Atoi(timestamp)
		if err != nil {
			return 1
		}
		return 2 * yearDecay(currentYear, year)
	case "month":
		parts := strings.SplitN(timestamp, "M", 2)
		if len(parts) != 2 {
			return 1
		}
		year, err1 := strconv.Atoi(parts[0])
		month, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 1
		}
		thisYear := yearDecay(currentYear, year)
		prevYear := yearDecay(currentYear, year-1)
		delta := thisYear - prevYear
		deltaPerMonth := delta / 13
		return thisYear - deltaPerMonth*float64(13-month)
	}
	return 1
}

// yearDecay is the inverse-square decay band of a calendar year, capped
// at 1.
func yearDecay(currentYear, year int) float64 {
	d := float64(currentYear + 1 - year)
	return math.Min(1, 1/(d*d))
}

func factValueFloat(fact model.Fact) (float64, bool) {
	switch v := fact.Value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	}
	return 0, false
}
