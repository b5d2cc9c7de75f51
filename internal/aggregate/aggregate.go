// Package aggregate merges adjacent sentences that share a prefix into a
// single conjoined sentence, e.g. "X was 5 in 2019" + "X was 6 in 2020"
// into "X was 5 in 2019 and 6 in 2020".
package aggregate

import (
	"fmt"

	"github.com/jtoivan/statnews/internal/model"
)

// Conjunctions carries the combiner words of one language.
type Conjunctions struct {
	// Default joins clauses whose polarities agree, e.g. "and".
	Default string
	// Inverse joins clauses whose polarities disagree, e.g. "but".
	Inverse string
}

// Aggregator rewrites a templated document plan in place.
type Aggregator struct {
	conj Conjunctions
}

// New builds an aggregator using the given conjunctions.
func New(conj Conjunctions) *Aggregator {
	return &Aggregator{conj: conj}
}

// Aggregate walks the plan and merges eligible sibling messages under
// SEQUENCE branches. Templates must already be attached. Merged messages
// are marked PreventAggregation so a merge never cascades.
func (a *Aggregator) Aggregate(root *model.Branch) error {
	_, err := a.aggregate(root)
	return err
}

func (a *Aggregator) aggregate(node model.Node) (model.Node, error) {
	branch, ok := node.(*model.Branch)
	if !ok {
		return node, nil
	}

	switch branch.Relation {
	case model.Elaboration, model.List:
		return nil, fmt.Errorf("aggregation over %s relations is not implemented", branch.Relation)
	}
	return a.aggregateSequence(branch)
}

func (a *Aggregator) aggregateSequence(branch *model.Branch) (model.Node, error) {
	var out []model.Node

	for _, child := range branch.Children {
		current, ok := child.(*model.Message)
		if !ok {
			aggregated, err := a.aggregate(child)
			if err != nil {
				return nil, err
			}
			out = append(out, aggregated)
			continue
		}

		var previous *model.Message
		if len(out) > 0 {
			previous, _ = out[len(out)-1].(*model.Message)
		}

		switch {
		case previous == nil,
			previous.PreventAggregation || current.PreventAggregation,
			!samePrefix(previous, current):
			out = append(out, current)

		// A sentence without a time slot inherits its time from the
		// preceding text. Merging changes what precedes it, so the
		// implicit reading has to be preserved: an explicit-time clause
		// followed by an implicit one is swapped before merging, and an
		// implicit clause followed by an explicit one is left alone.
		case !implicitTime(previous) && implicitTime(current):
			out[len(out)-1] = a.combine(current, previous)
		case implicitTime(previous) && !implicitTime(current):
			out = append(out, current)
		default:
			out[len(out)-1] = a.combine(previous, current)
		}
	}

	branch.Children = out
	return branch, nil
}

// samePrefix reports whether two sentences open with the same surface
// value and can therefore share that opening.
func samePrefix(first, second *model.Message) bool {
	if first.Template == nil || second.Template == nil {
		return false
	}
	a, b := first.Template.Components, second.Template.Components
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return a[0].Value() == b[0].Value()
}

func implicitTime(m *model.Message) bool {
	return !m.Template.HasSlotOfType("time")
}

// combine merges two sentences: the shared component prefix is kept once,
// then a conjunction, then the remainder of the second sentence.
func (a *Aggregator) combine(first, second *model.Message) *model.Message {
	combined := append([]model.Component{}, first.Template.Components...)
	rest := second.Template.Components

	shared := 0
	for shared < len(rest) && shared < len(combined) {
		if !sameComponent(combined[shared], rest[shared]) {
			break
		}
		shared++
	}

	conj := a.conj.Default
	if first.Polarity != second.Polarity {
		conj = a.conj.Inverse
	}
	combined = append(combined, &model.Literal{Text: conj})
	combined = append(combined, rest[shared:]...)

	facts := append([]model.Fact{}, first.Facts...)
	for _, f := range second.Facts {
		if !containsFact(facts, f) {
			facts = append(facts, f)
		}
	}

	merged := model.NewMessage(facts...)
	merged.ImportanceCoefficient = first.ImportanceCoefficient
	merged.Template = model.NewTemplate(combined)
	merged.PreventAggregation = true
	return merged
}

// sameComponent reports whether two components can collapse into one
// occurrence in a merged sentence.
func sameComponent(c1, c2 model.Component) bool {
	if c1.Value() != c2.Value() {
		return false
	}

	s1, ok1 := c1.(*model.Slot)
	s2, ok2 := c2.(*model.Slot)
	if ok1 && ok2 && s1.Fact != nil && s2.Fact != nil {
		// Equal numbers from different measurements are still different
		// measurements. "114 articles in French and from 2020" would
		// wrongly imply a single set of 114.
		if s1.Type() == "value" {
			return false
		}
		if model.IsSimpleField(s1.Type()) && model.IsSimpleField(s2.Type()) {
			v1, _ := s1.Fact.Field(s1.Type())
			v2, _ := s2.Fact.Field(s2.Type())
			if v1 != v2 {
				return false
			}
		}
	}

	return caseOf(c1) == caseOf(c2)
}

// caseOf distinguishes "slot without a case attribute" from "component
// that cannot carry one", so a Literal never collapses with a Slot.
func caseOf(c model.Component) string {
	if s, ok := c.(*model.Slot); ok {
		return s.Attributes["case"]
	}
	return "no-case"
}

func containsFact(facts []model.Fact, f model.Fact) bool {
	for _, other := range facts {
		if other == f {
			return true
		}
	}
	return false
}
