// Package morph applies morphological surface inflection to realized
// slots. Slots request inflection through the "case" attribute; everything
// else passes through unchanged.
package morph

import (
	"strings"

	"github.com/jtoivan/statnews/internal/model"
)

// Morphology inflects one word into the requested grammatical case. The
// second return value reports whether an inflection was produced; on false
// the caller keeps the original word.
type Morphology interface {
	Inflect(word, grammaticalCase string) (string, bool)
}

// Run walks the plan and inflects every slot carrying a "case" attribute.
// With a nil morphology the plan is left untouched.
func Run(m Morphology, root *model.Branch) {
	if m == nil {
		return
	}
	runNode(m, root)
}

func runNode(m Morphology, node model.Node) {
	switch node := node.(type) {
	case *model.Branch:
		for _, child := range node.Children {
			runNode(m, child)
		}
	case *model.Message:
		if node.Template == nil {
			return
		}
		for _, c := range node.Template.Components {
			slot, ok := c.(*model.Slot)
			if !ok {
				continue
			}
			grammaticalCase := slot.Attributes["case"]
			if grammaticalCase == "" {
				continue
			}
			if inflected, ok := m.Inflect(slot.Value(), grammaticalCase); ok {
				slot.Resolve(inflected)
			}
		}
	}
}

// English realizes the English genitive with the clitic 's. Other cases
// are left to the caller's fallback.
type English struct{}

func (English) Inflect(word, grammaticalCase string) (string, bool) {
	switch strings.ToLower(grammaticalCase) {
	case "gen", "genitive":
		if word == "" {
			return word, false
		}
		if strings.HasSuffix(word, "s") {
			return word + "'", true
		}
		return word + "'s", true
	}
	return word, false
}

// Finnish inflects through a lookup of known surface forms. The table
// covers the country names and date words the generator produces; words
// outside it keep their nominative form.
type Finnish struct {
	forms map[string]map[string]string
}

// NewFinnish builds the Finnish morphology from case-keyed form tables.
func NewFinnish(forms map[string]map[string]string) *Finnish {
	return &Finnish{forms: forms}
}

func (f *Finnish) Inflect(word, grammaticalCase string) (string, bool) {
	byCase, ok := f.forms[strings.ToLower(grammaticalCase)]
	if !ok {
		return word, false
	}
	inflected, ok := byCase[word]
	if !ok {
		return word, false
	}
	return inflected, true
}

// Chain tries morphologies in order and keeps the first inflection.
type Chain []Morphology

func (c Chain) Inflect(word, grammaticalCase string) (string, bool) {
	for _, m := range c {
		if m == nil {
			continue
		}
		if inflected, ok := m.Inflect(word, grammaticalCase); ok {
			return inflected, true
		}
	}
	return word, false
}
