package realize

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/jtoivan/statnews/internal/model"
)

// RegexRealizer rewrites a slot whose entire value matches a pattern into
// one token slot per word of a chosen surface template. Surface templates
// substitute capture groups with "{}" (next group) or "{N}" (group N,
// zero-based).
type RegexRealizer struct {
	languages []string
	pattern   *regexp.Regexp
	templates []string

	// GroupRequirement, if set, must accept the capture groups.
	GroupRequirement func(groups []string) bool
	// SlotRequirement, if set, must accept the slot itself.
	SlotRequirement func(slot *model.Slot) bool
	// AttachAttributesTo lists the token indices that keep the original
	// slot attributes. All other tokens start with empty attributes.
	AttachAttributesTo []int
	// AddAttributes sets extra attributes on specific token indices.
	AddAttributes map[int]map[string]string
}

// NewRegexRealizer builds a realizer for the given full-match pattern and
// one or more surface templates. With several templates one is picked at
// random per realization.
func NewRegexRealizer(languages []string, pattern string, templates ...string) *RegexRealizer {
	return &RegexRealizer{
		languages: languages,
		pattern:   regexp.MustCompile(fullMatch(pattern)),
		templates: templates,
	}
}

func (r *RegexRealizer) Languages() []string { return r.languages }

func (r *RegexRealizer) Realize(rng *rand.Rand, slot *model.Slot) ([]model.Component, bool) {
	match := r.pattern.FindStringSubmatch(slot.Value())
	if match == nil {
		return nil, false
	}
	groups := match[1:]

	if r.GroupRequirement != nil && !r.GroupRequirement(groups) {
		return nil, false
	}
	if r.SlotRequirement != nil && !r.SlotRequirement(slot) {
		return nil, false
	}

	template := r.templates[0]
	if len(r.templates) > 1 {
		template = r.templates[rng.Intn(len(r.templates))]
	}

	return tokenize(slot, expandGroups(template, groups), r.AttachAttributesTo, r.AddAttributes), true
}

// LookupRealizer rewrites a slot by dictionary lookup on its exact value.
type LookupRealizer struct {
	languages  []string
	dictionary map[string]string

	// AttachAttributesTo lists the token indices that keep the original
	// slot attributes.
	AttachAttributesTo []int
}

// NewLookupRealizer builds a realizer over a value-to-surface dictionary.
func NewLookupRealizer(languages []string, dictionary map[string]string) *LookupRealizer {
	return &LookupRealizer{languages: languages, dictionary: dictionary}
}

func (r *LookupRealizer) Languages() []string { return r.languages }

func (r *LookupRealizer) Realize(rng *rand.Rand, slot *model.Slot) ([]model.Component, bool) {
	realization, ok := r.dictionary[slot.Value()]
	if !ok {
		return nil, false
	}
	return tokenize(slot, realization, r.AttachAttributesTo, nil), true
}

// tokenize splits a realization into word tokens, each a copy of the slot
// resolved to one word. Attributes are kept only on the listed indices.
func tokenize(slot *model.Slot, realization string, attachTo []int, add map[int]map[string]string) []model.Component {
	attach := map[int]bool{}
	for _, idx := range attachTo {
		attach[idx] = true
	}

	var components []model.Component
	for idx, token := range strings.Fields(realization) {
		s := slot.CopyWithFact()
		if !attach[idx] {
			s.Attributes = map[string]string{}
		}
		for attribute, value := range add[idx] {
			s.Attributes[attribute] = value
		}
		s.Resolve(token)
		components = append(components, s)
	}
	return components
}

// expandGroups substitutes "{}" and "{N}" placeholders with capture groups.
func expandGroups(template string, groups []string) string {
	var out strings.Builder
	next := 0
	for i := 0; i < len(template); i++ {
		if template[i] != '{' {
			out.WriteByte(template[i])
			continue
		}
		end := strings.IndexByte(template[i:], '}')
		if end < 0 {
			out.WriteString(template[i:])
			break
		}
		ref := template[i+1 : i+end]
		idx := next
		if ref != "" {
			n, err := strconv.Atoi(ref)
			if err != nil {
				out.WriteString(template[i : i+end+1])
				i += end
				continue
			}
			idx = n
		} else {
			next++
		}
		if idx >= 0 && idx < len(groups) {
			out.WriteString(groups[idx])
		}
		i += end
	}
	return out.String()
}

// fullMatch anchors a pattern so partial matches never fire.
func fullMatch(pattern string) string {
	return "^(?:" + pattern + ")$"
}
