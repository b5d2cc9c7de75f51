package realize

import (
	"math/rand"
	"regexp"
	"strings"

	"github.com/jtoivan/statnews/internal/model"
)

// DateVocab is the date wording of one language.
type DateVocab struct {
	// Months maps zero-padded month numbers ("01".."12") to names.
	Months map[string]string
	// MonthReference and YearReference phrase a repeat of the previous
	// time expression, e.g. "the same month". One is picked at random.
	MonthReference []string
	YearReference  []string
	// Expressions with {month} and {year} placeholders.
	MonthExpression     string
	MonthYearExpression string
	YearExpression      string
}

var (
	monthTag = regexp.MustCompile(`^\[TIME:month:(\d+)M(\d+)\]$`)
	yearTag  = regexp.MustCompile(`^\[TIME:year:(\d+)\]$`)
)

// DateRealizer rewrites [TIME:...] tags into date expressions. It tracks
// the previously realized time tag so an immediate repeat turns into a
// reference ("the same year") and a month within an already established
// year drops the year.
type DateRealizer struct {
	vocab DateVocab

	// attachAttributes lists, per timestamp type, the token indices that
	// keep the slot attributes. Languages with case marking attach them to
	// the head word.
	attachAttributes map[string][]int
}

// NewDateRealizer builds a date realizer over a language vocabulary.
func NewDateRealizer(vocab DateVocab, attachAttributes map[string][]int) *DateRealizer {
	return &DateRealizer{vocab: vocab, attachAttributes: attachAttributes}
}

// Run realizes every time tag in the plan.
func (d *DateRealizer) Run(rng *rand.Rand, root *model.Branch) {
	d.recurse(rng, root, "")
}

func (d *DateRealizer) recurse(rng *rand.Rand, node model.Node, previous string) string {
	branch, ok := node.(*model.Branch)
	if ok {
		for _, child := range branch.Children {
			previous = d.recurse(rng, child, previous)
		}
		return previous
	}

	message, ok := node.(*model.Message)
	if !ok || message.Template == nil {
		return previous
	}

	components := message.Template.Components
	idx := 0
	for idx < len(components) {
		slot, ok := components[idx].(*model.Slot)
		if !ok {
			idx++
			continue
		}
		value := slot.Value()

		var expression string
		var timestampType string
		switch {
		case monthTag.MatchString(value):
			timestampType = "month"
			expression = d.realizeMonth(rng, value, previous)
		case yearTag.MatchString(value):
			timestampType = "year"
			expression = d.realizeYear(rng, value, previous)
		default:
			idx++
			continue
		}

		replacement := tokenize(slot, expression, d.attachAttributes[timestampType], nil)
		components = splice(components, idx, replacement)
		idx += len(replacement)
		previous = value
	}
	message.Template.Components = components
	return previous
}

func (d *DateRealizer) realizeMonth(rng *rand.Rand, value, previous string) string {
	if value == previous {
		return pick(rng, d.vocab.MonthReference)
	}

	groups := monthTag.FindStringSubmatch(value)
	year, month := groups[1], groups[2]

	prevYear := ""
	if m := monthTag.FindStringSubmatch(previous); m != nil {
		prevYear = m[1]
	} else if m := yearTag.FindStringSubmatch(previous); m != nil {
		prevYear = m[1]
	}

	if previous != "" && year == prevYear {
		return expandNamed(d.vocab.MonthExpression, d.vocab.Months[month], year)
	}
	return expandNamed(d.vocab.MonthYearExpression, d.vocab.Months[month], year)
}

func (d *DateRealizer) realizeYear(rng *rand.Rand, value, previous string) string {
	if previous != "" && value == previous {
		return pick(rng, d.vocab.YearReference)
	}
	year := yearTag.FindStringSubmatch(value)[1]
	return expandNamed(d.vocab.YearExpression, "", year)
}

func pick(rng *rand.Rand, options []string) string {
	if len(options) == 1 {
		return options[0]
	}
	return options[rng.Intn(len(options))]
}

func expandNamed(expression, month, year string) string {
	expression = strings.ReplaceAll(expression, "{month}", month)
	expression = strings.ReplaceAll(expression, "{year}", year)
	return expression
}
