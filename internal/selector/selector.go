// Package selector binds templates to the messages of a document plan.
package selector

import (
	"math/rand"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jtoivan/statnews/internal/model"
)

// Selector attaches a matching template to each message leaf of a document
// plan. Candidate lookups scan the whole template registry for a language,
// so results are memoized per message in a bounded LRU for the duration of
// a run.
type Selector struct {
	language  string
	templates []*model.Template
	checks    *lru.Cache[*model.Message, []*model.Template]
}

// New builds a selector over the template set of one language.
func New(language string, templates []*model.Template, cacheSize int) (*Selector, error) {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	checks, err := lru.New[*model.Message, []*model.Template](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Selector{language: language, templates: templates, checks: checks}, nil
}

// CandidatesFor returns every template that can express the message, given
// the other messages available for secondary rules. Results are cached per
// message.
func (s *Selector) CandidatesFor(message *model.Message, pool []*model.Message) []*model.Template {
	if cached, ok := s.checks.Get(message); ok {
		return cached
	}
	var candidates []*model.Template
	for _, t := range s.templates {
		if t.Check(message, pool) != nil {
			candidates = append(candidates, t)
		}
	}
	s.checks.Add(message, candidates)
	return candidates
}

// CanExpress reports whether at least one template applies to the message.
func (s *Selector) CanExpress(message *model.Message, pool []*model.Message) bool {
	return len(s.CandidatesFor(message, pool)) > 0
}

// Select walks the document plan and attaches a filled template to each
// message leaf. A message with no candidate templates at all is a template
// authoring gap and aborts the run with NoTemplateError. A candidate that
// passes Check but then fails to fill is downgraded to an empty default
// template so the rest of the document still realizes.
func (s *Selector) Select(r *rand.Rand, root *model.Branch, all []*model.Message) error {
	_, err := s.selectIn(r, root, all, nil)
	return err
}

func (s *Selector) selectIn(r *rand.Rand, node *model.Branch, all []*model.Message, context *model.Message) (*model.Message, error) {
	for idx, child := range node.Children {
		switch child := child.(type) {
		case *model.Message:
			candidates := s.CandidatesFor(child, all)
			if len(candidates) == 0 {
				return nil, &model.NoTemplateError{Language: s.language, Message: child.String()}
			}
			candidates = filterByContext(candidates, context, child, idx == 0)
			shuffled := append([]*model.Template{}, candidates...)
			r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			template := shuffled[0].Copy()
			used := template.Fill(child, all)
			if used == nil {
				template = model.DefaultTemplate("")
			} else {
				child.Facts = used
			}
			child.Template = template
			context = child
		case *model.Branch:
			var err error
			context, err = s.selectIn(r, child, all, context)
			if err != nil {
				return nil, err
			}
		}
	}
	return context, nil
}

// filterByContext narrows candidates so the surface text omits what the
// previous sentence already established. Each narrowing is skipped when it
// would leave nothing to choose from.
func filterByContext(templates []*model.Template, context, this *model.Message, isFirst bool) []*model.Template {
	fact := this.MainFact()

	sameTime := context != nil &&
		context.MainFact().Timestamp == fact.Timestamp &&
		context.MainFact().TimestampType == fact.TimestampType
	templates = checkpoint(templates, func(t *model.Template) bool {
		return t.HasSlotOfType("time") != sameTime
	})

	sameLocation := context != nil &&
		context.MainFact().Location == fact.Location &&
		context.MainFact().LocationType == fact.LocationType
	templates = checkpoint(templates, func(t *model.Template) bool {
		return t.HasSlotOfType("location") != sameLocation
	})

	sameValueType := context != nil && !isFirst && similarValueType(context.MainFact().ValueType, fact.ValueType)
	templates = checkpoint(templates, func(t *model.Template) bool {
		return t.HasSlotOfType("value_type") != sameValueType
	})

	return templates
}

// checkpoint applies a filter but keeps the original list when the filter
// matches nothing.
func checkpoint(templates []*model.Template, keep func(*model.Template) bool) []*model.Template {
	var proposed []*model.Template
	for _, t := range templates {
		if keep(t) {
			proposed = append(proposed, t)
		}
	}
	if len(proposed) > 0 {
		return proposed
	}
	return templates
}

// similarValueType treats a value type and its comparison variants as the
// same for phrasing purposes, so "X, compared to the EU average" is not
// re-introduced as a fresh measure.
func similarValueType(first, second string) bool {
	first = trimComparison(first)
	second = trimComparison(second)
	return first == second
}

func trimComparison(valueType string) string {
	if strings.Contains(valueType, ":comp_") {
		return valueType[:len(valueType)-8]
	}
	return valueType
}
