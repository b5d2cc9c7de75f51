package realize

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/jtoivan/statnews/internal/model"
)

// NumberRealizer formats numeric slot values: integral values drop their
// decimal part, other values keep two digits past their first significant
// decimal. The "abs" attribute strips the sign. Always registered last so
// domain realizers get the first shot at a value.
type NumberRealizer struct{}

func (r *NumberRealizer) Languages() []string { return []string{AnyLanguage} }

func (r *NumberRealizer) Realize(rng *rand.Rand, slot *model.Slot) ([]model.Component, bool) {
	value, err := strconv.ParseFloat(slot.Value(), 64)
	if err != nil {
		return nil, false
	}

	if slot.Attributes["abs"] != "" {
		value = math.Abs(value)
	}

	if value == math.Trunc(value) {
		slot.Resolve(strconv.FormatInt(int64(value), 10))
		return []model.Component{slot}, true
	}

	for digits := 0; digits < 5; digits++ {
		if roundTo(value, digits) != 0 {
			slot.Resolve(strconv.FormatFloat(roundTo(value, digits+2), 'f', -1, 64))
			return []model.Component{slot}, true
		}
	}

	slot.Resolve(strconv.FormatFloat(value, 'f', -1, 64))
	return []model.Component{slot}, true
}

func roundTo(value float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(value*scale) / scale
}
