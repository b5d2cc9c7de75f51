package resource

import (
	"strings"

	"github.com/jtoivan/statnews/internal/model"
)

// part is one piece of a sentence plan: literal text, a slot spec, or an
// optional group. Parts are specs rather than components so every template
// variant gets its own component instances.
type part interface {
	components() []model.Component
}

type textPart string

func (p textPart) components() []model.Component {
	var out []model.Component
	for _, word := range strings.Fields(string(p)) {
		out = append(out, &model.Literal{Text: word})
	}
	return out
}

type slotPart struct {
	source model.SlotSource
	attrs  map[string]string
}

func (p slotPart) components() []model.Component {
	attrs := make(map[string]string, len(p.attrs))
	for k, v := range p.attrs {
		attrs[k] = v
	}
	return []model.Component{model.NewSlot(p.source, attrs)}
}

type optionalPart []part

func (p optionalPart) components() []model.Component {
	var out []model.Component
	for _, inner := range p {
		out = append(out, inner.components()...)
	}
	return out
}

// txt is literal sentence text, split on spaces.
func txt(s string) part { return textPart(s) }

// opt marks a group of parts that may be omitted; the builder emits one
// template variant with the group and one without.
func opt(parts ...part) part { return optionalPart(parts) }

func field(name string, attrs ...string) part {
	return slotPart{source: model.FactFieldSource{Field: name}, attrs: attrMap(attrs)}
}

func location(attrs ...string) part  { return field("location", attrs...) }
func valueType(attrs ...string) part { return field("value_type", attrs...) }
func value(attrs ...string) part     { return field("value", attrs...) }

func timeOf(attrs ...string) part {
	return slotPart{source: model.TimeSource{}, attrs: attrMap(attrs)}
}

func unit(attrs ...string) part {
	return slotPart{source: model.UnitSource{}, attrs: attrMap(attrs)}
}

func attrMap(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs[pairs[i]] = pairs[i+1]
	}
	return attrs
}

// build expands a sentence plan into one template per combination of
// optional groups, all sharing the same single-fact constraint set.
func build(matchers []model.Matcher, parts ...part) []*model.Template {
	layouts := [][]part{{}}
	for _, p := range parts {
		if optional, ok := p.(optionalPart); ok {
			next := make([][]part, 0, 2*len(layouts))
			for _, layout := range layouts {
				with := make([]part, len(layout), len(layout)+1)
				copy(with, layout)
				next = append(next, append(with, optional))
				next = append(next, layout)
			}
			layouts = next
			continue
		}
		for i := range layouts {
			layouts[i] = append(layouts[i], p)
		}
	}

	templates := make([]*model.Template, 0, len(layouts))
	for _, layout := range layouts {
		var components []model.Component
		for _, p := range layout {
			components = append(components, p.components()...)
		}
		var slotIndices []int
		for i, c := range components {
			if _, ok := c.(*model.Slot); ok {
				slotIndices = append(slotIndices, i)
			}
		}
		templates = append(templates, model.NewTemplate(components, model.Rule{
			Matchers:    matchers,
			SlotIndices: slotIndices,
		}))
	}
	return templates
}

// constraint helpers for the single-fact rule form every bundled template
// uses.

func where(matchers ...model.Matcher) []model.Matcher { return matchers }

func typeIs(pattern string) model.Matcher {
	return model.MustMatcher(model.FactField{Field: "value_type"}, "=", pattern)
}

func typeNot(pattern string) model.Matcher {
	return model.MustMatcher(model.FactField{Field: "value_type"}, "!=", pattern)
}

func valueAbove(x float64) model.Matcher {
	return model.MustMatcher(model.FactField{Field: "value"}, ">", x)
}

func valueBelow(x float64) model.Matcher {
	return model.MustMatcher(model.FactField{Field: "value"}, "<", x)
}

func valueIs(x float64) model.Matcher {
	return model.MustMatcher(model.FactField{Field: "value"}, "=", x)
}
