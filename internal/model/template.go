package model

import (
	"fmt"
	"strings"
)

// Component is one element of a template: either a Literal or a Slot.
type Component interface {
	// Value is the current surface value of the component.
	Value() string
	// Type is the slot type used for filtering and aggregation. Literals
	// report "Literal".
	Type() string
	// Copy returns an independent copy of the component.
	Copy() Component
}

// Literal is a fixed string component.
type Literal struct {
	Text string
}

func (l *Literal) Value() string { return l.Text }

func (l *Literal) Type() string { return "Literal" }

func (l *Literal) Copy() Component { return &Literal{Text: l.Text} }

func (l *Literal) String() string { return l.Text }

// Slot is a template placeholder. Before realization its value is pulled
// from the bound Fact through the Source; realization resolves it into a
// final literal string.
type Slot struct {
	Source     SlotSource
	Attributes map[string]string
	Fact       *Fact

	resolved    string
	hasResolved bool
}

// NewSlot creates an unbound, unresolved slot.
func NewSlot(source SlotSource, attributes map[string]string) *Slot {
	if attributes == nil {
		attributes = map[string]string{}
	}
	return &Slot{Source: source, Attributes: attributes}
}

// NewLiteralSlot creates a slot that always renders the given text. Used by
// realizers that split one slot into several literal-like tokens while
// keeping slot-hood (attributes, bound fact) intact.
func NewLiteralSlot(text string, attributes map[string]string) *Slot {
	return NewSlot(LiteralSource{Text: text}, attributes)
}

// Value returns the resolved text if the slot has been realized, otherwise
// the projection of the bound fact through the slot source.
func (s *Slot) Value() string {
	if s.hasResolved {
		return s.resolved
	}
	return s.Source.Value(s.Fact)
}

// Type returns the underlying field name of the slot source.
func (s *Slot) Type() string { return s.Source.FieldName() }

// Resolve transitions the slot into the resolved state with a final surface
// string. Further realizer passes see the resolved value.
func (s *Slot) Resolve(text string) {
	s.resolved = text
	s.hasResolved = true
}

// Resolved reports whether the slot carries a final surface string.
func (s *Slot) Resolved() bool { return s.hasResolved }

// Copy copies the slot including its attributes and resolution state but
// not the bound fact.
func (s *Slot) Copy() Component {
	c := s.CopyWithFact()
	c.Fact = nil
	return c
}

// CopyWithFact copies the slot including the bound fact.
func (s *Slot) CopyWithFact() *Slot {
	attrs := make(map[string]string, len(s.Attributes))
	for k, v := range s.Attributes {
		attrs[k] = v
	}
	return &Slot{
		Source:      s.Source,
		Attributes:  attrs,
		Fact:        s.Fact,
		resolved:    s.resolved,
		hasResolved: s.hasResolved,
	}
}

func (s *Slot) String() string {
	var attrs []string
	for k, v := range s.Attributes {
		attrs = append(attrs, fmt.Sprintf(", %s=%s", k, v))
	}
	return fmt.Sprintf("Slot(%s%s)", s.Value(), strings.Join(attrs, ""))
}

// SlotSource defines how a slot pulls its display value from a bound fact.
type SlotSource interface {
	FieldName() string
	Value(f *Fact) string
}

// FactFieldSource projects a plain fact field.
type FactFieldSource struct {
	Field string
}

func (s FactFieldSource) FieldName() string { return s.Field }

func (s FactFieldSource) Value(f *Fact) string {
	if f == nil {
		return ""
	}
	v, ok := f.Field(s.Field)
	if !ok {
		return ""
	}
	return FormatValue(v)
}

// LiteralSource ignores the fact and returns a fixed value.
type LiteralSource struct {
	Text string
}

func (s LiteralSource) FieldName() string { return "literal" }

func (s LiteralSource) Value(f *Fact) string { return s.Text }

// TimeSource renders the fact timestamp as a [TIME:...] pseudo-format tag
// for the date realizer to pick up.
type TimeSource struct{}

func (s TimeSource) FieldName() string { return "time" }

func (s TimeSource) Value(f *Fact) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("[TIME:%s:%s]", f.TimestampType, f.Timestamp)
}

// UnitSource renders the fact value type as a [UNIT:...] pseudo-format tag
// for unit realizers to pick up.
type UnitSource struct{}

func (s UnitSource) FieldName() string { return "unit" }

func (s UnitSource) Value(f *Fact) string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("[UNIT:%s]", f.ValueType)
}

// Rule pairs a conjunction of matchers with the indices of the template
// components that are slots to be filled by the fact matching the rule.
type Rule struct {
	Matchers    []Matcher
	SlotIndices []int
}

// Template is an ordered sequence of components plus the rules describing
// which facts it can express. Registered templates are shared, read-only
// blueprints; Copy produces a fillable instance per message.
type Template struct {
	Components []Component
	Rules      []Rule

	facts []Fact
}

// NewTemplate builds a template from components and rules.
func NewTemplate(components []Component, rules ...Rule) *Template {
	return &Template{Components: components, Rules: rules}
}

// DefaultTemplate is the empty-literal fallback bound to a message when
// filling a selected template unexpectedly fails.
func DefaultTemplate(cannedText string) *Template {
	return &Template{Components: []Component{&Literal{Text: cannedText}}}
}

// Copy deep-copies the template. The copy shares the (read-only) rules but
// none of the bound facts.
func (t *Template) Copy() *Template {
	components := make([]Component, len(t.Components))
	for i, c := range t.Components {
		components[i] = c.Copy()
	}
	return &Template{Components: components, Rules: t.Rules}
}

// Slots returns the slot components in component order.
func (t *Template) Slots() []*Slot {
	var slots []*Slot
	for _, c := range t.Components {
		if s, ok := c.(*Slot); ok {
			slots = append(slots, s)
		}
	}
	return slots
}

// HasSlotOfType reports whether any component is a slot of the given type.
func (t *Template) HasSlotOfType(slotType string) bool {
	for _, c := range t.Components {
		if s, ok := c.(*Slot); ok && s.Type() == slotType {
			return true
		}
	}
	return false
}

// Facts returns the facts bound by the latest Fill.
func (t *Template) Facts() []Fact {
	return t.facts
}

// Check reports the facts that would satisfy every rule of the template for
// the given primary message, drawing secondary facts from the pool in order.
// It never mutates the template. An empty result means the template cannot
// express the message.
func (t *Template) Check(primary *Message, pool []*Message) []Fact {
	return t.match(primary, pool, false)
}

// Fill is Check plus slot binding: each rule's slots are bound to the fact
// that satisfied the rule, and the used facts are recorded on the template.
func (t *Template) Fill(primary *Message, pool []*Message) []Fact {
	return t.match(primary, pool, true)
}

func (t *Template) match(primary *Message, pool []*Message, fillSlots bool) []Fact {
	if len(t.Rules) == 0 {
		return nil
	}

	primaryFact := primary.MainFact()
	var used []Fact

	// The first rule has to match the primary message.
	for _, matcher := range t.Rules[0].Matchers {
		if !matcher.Matches(primaryFact, used) {
			return nil
		}
	}
	if fillSlots {
		t.bindRule(t.Rules[0], primaryFact)
	}
	used = append(used, primaryFact)

	// Each remaining rule must be satisfied by some message in the pool.
	// Facts are tried in order; the first match wins.
	for _, rule := range t.Rules[1:] {
		matched := false
		for _, msg := range pool {
			fact := msg.MainFact()
			ok := true
			for _, matcher := range rule.Matchers {
				if !matcher.Matches(fact, used) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
			if fillSlots {
				t.bindRule(rule, fact)
			}
			if !containsFact(used, fact) {
				used = append(used, fact)
			}
			matched = true
			break
		}
		if !matched {
			return nil
		}
	}

	if fillSlots {
		t.facts = used
	}
	return used
}

func (t *Template) bindRule(rule Rule, fact Fact) {
	for _, idx := range rule.SlotIndices {
		if idx < 0 || idx >= len(t.Components) {
			continue
		}
		if slot, ok := t.Components[idx].(*Slot); ok {
			f := fact
			slot.Fact = &f
		}
	}
}

func containsFact(facts []Fact, f Fact) bool {
	for _, other := range facts {
		if other == f {
			return true
		}
	}
	return false
}

func (t *Template) String() string {
	parts := make([]string, 0, len(t.Components))
	for _, c := range t.Components {
		parts = append(parts, fmt.Sprintf("%v", c))
	}
	return "<Template: " + strings.Join(parts, " ") + ">"
}
