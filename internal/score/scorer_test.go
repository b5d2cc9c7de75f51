package score

import (
	"math"
	"testing"
	"time"

	"github.com/jtoivan/statnews/internal/model"
)

var testNow = time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)

func message(valueType, timestamp, timestampType string, outlierness float64) *model.Message {
	return model.NewMessage(model.Fact{
		Location:      "[ENTITY:country:FI]",
		LocationType:  "country",
		Value:         102.3,
		ValueType:     valueType,
		Timestamp:     timestamp,
		TimestampType: timestampType,
		Outlierness:   outlierness,
	})
}

func TestScore_SortsDescending(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)
	messages := []*model.Message{
		message("cphi:hicp2015", "2018", "year", 1.0),
		message("cphi:hicp2015", "2020", "year", 1.0),
		message("cphi:hicp2015", "2019", "year", 1.0),
	}

	scored := scorer.Score(messages)
	for i := 1; i < len(scored); i++ {
		if scored[i].Score > scored[i-1].Score {
			t.Errorf("messages not sorted descending at %d: %f > %f", i, scored[i].Score, scored[i-1].Score)
		}
	}
}

func TestScore_RecencyMonotonicity(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)

	older := message("cphi:hicp2015", "2018", "year", 1.0)
	newer := message("cphi:hicp2015", "2020", "year", 1.0)
	scorer.Score([]*model.Message{older, newer})

	if newer.Score < older.Score {
		t.Errorf("closer year scored lower: %f < %f", newer.Score, older.Score)
	}
}

func TestScore_WholeYearBeatsItsDecember(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)

	year := message("cphi:hicp2015", "2019", "year", 1.0)
	december := message("cphi:hicp2015", "2019M12", "month", 1.0)
	scorer.Score([]*model.Message{year, december})

	if year.Score <= december.Score {
		t.Errorf("whole year should edge out its December: %f <= %f", year.Score, december.Score)
	}
}

func TestScore_CategoryWeights(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)

	tests := []struct {
		valueType string
		zero      bool
	}{
		{"health:cost_nac", true},
		{"health:cost_y-lt6_pps", true},
		{"health:cost_t_total", true},
		{"health:cost_pps", false},
		{"health:cost_eur", false},
	}
	for _, tt := range tests {
		m := message(tt.valueType, "2020", "year", 1.0)
		scorer.Score([]*model.Message{m})
		if tt.zero && m.Score != 0 {
			t.Errorf("%s: expected zero score, got %f", tt.valueType, m.Score)
		}
		if !tt.zero && m.Score <= 0 {
			t.Errorf("%s: expected positive score, got %f", tt.valueType, m.Score)
		}
	}

	trend := message("health:cost_trend_pps", "2020", "year", 1.0)
	plain := message("health:cost_pps", "2020", "year", 1.0)
	scorer.Score([]*model.Message{trend, plain})
	if trend.Score <= plain.Score {
		t.Errorf("trend should dominate: %f <= %f", trend.Score, plain.Score)
	}
}

func TestScore_NaNOutliernessCoercedToZero(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)
	m := message("cphi:hicp2015", "2020", "year", math.NaN())
	scorer.Score([]*model.Message{m})
	if m.Score != 0 {
		t.Errorf("NaN outlierness should zero the score, got %f", m.Score)
	}
}

func TestScore_ImportanceCoefficient(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)

	normal := message("cphi:hicp2015", "2020", "year", 1.0)
	damped := message("cphi:hicp2015", "2020", "year", 1.0)
	damped.ImportanceCoefficient = 0.5
	scorer.Score([]*model.Message{normal, damped})

	if math.Abs(damped.Score-normal.Score/2) > 1e-9 {
		t.Errorf("coefficient not applied: %f vs %f", damped.Score, normal.Score)
	}
}

func TestBoostCohesion_AmplifiesMatchingFacts(t *testing.T) {
	scorer := NewScorer().WithNow(testNow)

	prev := message("cphi:hicp2015", "2020", "year", 1.0)
	prev.Score = 40

	matching := message("cphi:hicp2015", "2020", "year", 1.0)
	matching.Score = 10
	other := message("cphi:rt12", "2020", "year", 1.0)
	other.Score = 10

	scorer.BoostCohesion([]*model.Message{matching, other}, nil, []*model.Message{prev})

	if matching.Score != 10*(40.0/10+1) {
		t.Errorf("matching score = %f, want %f", matching.Score, 10*(40.0/10+1))
	}
	if other.Score != 10 {
		t.Errorf("non-matching score changed: %f", other.Score)
	}
}
