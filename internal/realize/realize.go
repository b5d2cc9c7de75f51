// Package realize turns template slots into final surface strings. Slot
// realizers rewrite pseudo-format tags ([TIME:...], [ENTITY:...],
// [UNIT:...]) and raw data values into language-specific text, one token
// slot per word.
package realize

import (
	"math/rand"

	"github.com/jtoivan/statnews/internal/model"
)

// AnyLanguage marks a realizer that applies regardless of document language.
const AnyLanguage = "ANY"

// SlotRealizer rewrites a single slot into zero or more components. The
// second return value reports whether the realizer applied at all; an
// applied realizer that returns the slot itself unchanged counts as a
// non-modifying success.
type SlotRealizer interface {
	Languages() []string
	Realize(rng *rand.Rand, slot *model.Slot) ([]model.Component, bool)
}

// Engine runs a stack of slot realizers over a document plan until no
// realizer changes anything. A number realizer is always appended last so
// it only sees values no domain realizer claimed.
type Engine struct {
	realizers []SlotRealizer
}

// NewEngine builds an engine over the given realizers.
func NewEngine(realizers ...SlotRealizer) *Engine {
	all := make([]SlotRealizer, 0, len(realizers)+1)
	all = append(all, realizers...)
	all = append(all, &NumberRealizer{})
	return &Engine{realizers: all}
}

// Run realizes every slot in the plan for the given language. Slots no
// realizer recognizes are left untouched.
func (e *Engine) Run(rng *rand.Rand, language string, root *model.Branch) {
	language = baseLanguage(language)
	for e.pass(rng, language, root) {
	}
}

func (e *Engine) pass(rng *rand.Rand, language string, node model.Node) bool {
	switch node := node.(type) {
	case *model.Branch:
		modified := false
		for _, child := range node.Children {
			if e.pass(rng, language, child) {
				modified = true
			}
		}
		return modified
	case *model.Message:
		return e.realizeMessage(rng, language, node)
	}
	return false
}

func (e *Engine) realizeMessage(rng *rand.Rand, language string, m *model.Message) bool {
	if m.Template == nil {
		return false
	}
	modified := false
	components := m.Template.Components
	idx := 0
	for idx < len(components) {
		slot, ok := components[idx].(*model.Slot)
		if !ok {
			idx++
			continue
		}
		replacement, applied := e.realizeSlot(rng, language, slot)
		if !applied || (len(replacement) == 1 && replacement[0] == model.Component(slot)) {
			idx++
			continue
		}
		modified = true
		components = splice(components, idx, replacement)
		idx += len(replacement)
	}
	m.Template.Components = components
	return modified
}

func (e *Engine) realizeSlot(rng *rand.Rand, language string, slot *model.Slot) ([]model.Component, bool) {
	for _, r := range e.realizers {
		if !supportsLanguage(r, language) {
			continue
		}
		if components, ok := r.Realize(rng, slot); ok {
			return components, true
		}
	}
	return nil, false
}

func supportsLanguage(r SlotRealizer, language string) bool {
	for _, l := range r.Languages() {
		if l == language || l == AnyLanguage {
			return true
		}
	}
	return false
}

func splice(components []model.Component, idx int, replacement []model.Component) []model.Component {
	out := make([]model.Component, 0, len(components)-1+len(replacement))
	out = append(out, components[:idx]...)
	out = append(out, replacement...)
	out = append(out, components[idx+1:]...)
	return out
}

// baseLanguage strips the "-head" headline variant suffix.
func baseLanguage(language string) string {
	if len(language) > 5 && language[len(language)-5:] == "-head" {
		return language[:len(language)-5]
	}
	return language
}
