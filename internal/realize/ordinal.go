package realize

import (
	"strconv"

	"github.com/jtoivan/statnews/internal/model"
)

// OrdinalRealizer rewrites slots carrying the "ord" attribute into ordinal
// words ("3" into "third"). Values outside the dictionary get a numeric
// suffix instead.
type OrdinalRealizer interface {
	Ordinal(value string) string
}

// RunOrdinals applies a language's ordinal realizer over the plan. Without
// a realizer for the language the values stay numeric.
func RunOrdinals(r OrdinalRealizer, root *model.Branch) {
	if r == nil {
		return
	}
	eachSlot(root, func(slot *model.Slot) {
		if slot.Attributes["ord"] != "" {
			slot.Resolve(r.Ordinal(slot.Value()))
		}
	})
}

func eachSlot(node model.Node, fn func(*model.Slot)) {
	switch node := node.(type) {
	case *model.Branch:
		for _, child := range node.Children {
			eachSlot(child, fn)
		}
	case *model.Message:
		if node.Template == nil {
			return
		}
		for _, c := range node.Template.Components {
			if slot, ok := c.(*model.Slot); ok {
				fn(slot)
			}
		}
	}
}

// EnglishOrdinals realizes English ordinals. "1" realizes as the empty
// string: "highest" reads better than "1st highest".
type EnglishOrdinals struct{}

var englishSmallOrdinals = map[string]string{
	"2": "second", "3": "third", "4": "fourth", "5": "fifth",
	"6": "sixth", "7": "seventh", "8": "eighth", "9": "ninth",
	"10": "tenth", "11": "eleventh", "12": "twelfth",
}

func (EnglishOrdinals) Ordinal(value string) string {
	if value == "1" {
		return ""
	}
	if word, ok := englishSmallOrdinals[value]; ok {
		return word
	}
	return value + englishOrdinalSuffix(value)
}

func englishOrdinalSuffix(value string) string {
	if value == "" {
		return ""
	}
	if n, err := strconv.Atoi(value); err == nil {
		if tail := n % 100; tail == 11 || tail == 12 || tail == 13 {
			return "th"
		}
	}
	switch value[len(value)-1] {
	case '1':
		return "st"
	case '2':
		return "nd"
	case '3':
		return "rd"
	}
	return "th"
}

// FinnishOrdinals realizes Finnish ordinals. Values outside the dictionary
// use the numeric "N." convention.
type FinnishOrdinals struct{}

var finnishSmallOrdinals = map[string]string{
	"1": "ensimmäinen", "2": "toinen", "3": "kolmas", "4": "neljäs",
	"5": "viides", "6": "kuudes", "7": "seitsemäs", "8": "kahdeksas",
	"9": "yhdeksäs", "10": "kymmenes",
}

func (FinnishOrdinals) Ordinal(value string) string {
	if word, ok := finnishSmallOrdinals[value]; ok {
		return word
	}
	return value + "."
}

// GermanOrdinals uses the numeric "N." convention throughout.
type GermanOrdinals struct{}

func (GermanOrdinals) Ordinal(value string) string {
	return value + "."
}
