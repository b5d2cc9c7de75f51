// Package resource bundles the per-language generation assets: template
// sets, slot realizers, date vocabularies, entity name tables and the
// small lexicons the aggregator and error paths need.
package resource

import (
	"sort"
	"strings"

	"github.com/jtoivan/statnews/internal/aggregate"
	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/morph"
	"github.com/jtoivan/statnews/internal/realize"
)

// Registry is the read-only resource set shared by all generation runs.
type Registry struct {
	templates    map[string][]*model.Template
	realizers    []realize.SlotRealizer
	dates        map[string]*realize.DateRealizer
	entities     map[string]*realize.EntityResolver
	ordinals     map[string]realize.OrdinalRealizer
	morphologies map[string]morph.Morphology
	names        map[string]map[string]string
}

// New assembles the bundled resources.
func New() *Registry {
	templates := map[string][]*model.Template{}
	merge := func(sets ...map[string][]*model.Template) {
		for _, set := range sets {
			for language, ts := range set {
				templates[language] = append(templates[language], ts...)
			}
		}
	}
	merge(
		cphiEnglishTemplates(), cphiFinnishTemplates(), cphiGermanTemplates(),
		healthEnglishTemplates("health:cost"), healthFinnishTemplates("health:cost"),
		healthEnglishTemplates("health:funding"), healthFinnishTemplates("health:funding"),
	)

	dates := map[string]*realize.DateRealizer{}
	for language, vocab := range dateVocabs() {
		dates[language] = realize.NewDateRealizer(vocab, dateAttach[language])
	}

	return &Registry{
		templates:    templates,
		realizers:    append(cphiRealizers(), healthRealizers()...),
		dates:        dates,
		entities:     entityResolvers(),
		ordinals:     ordinals(),
		morphologies: morphologies(),
		names: map[string]map[string]string{
			"en": countryNamesEnglish,
			"fi": countryNamesFinnish,
			"de": countryNamesGerman,
		},
	}
}

// LocationName returns the display name of a location code in the given
// language, falling back to English and then to the code itself.
func (r *Registry) LocationName(language, location string) string {
	if names, ok := r.names[baseLanguage(language)]; ok {
		if name, ok := names[location]; ok {
			return name
		}
	}
	if name, ok := r.names["en"][location]; ok {
		return name
	}
	return location
}

// Languages lists the languages with a body template set, sorted.
func (r *Registry) Languages() []string {
	var out []string
	for language := range r.templates {
		if !strings.HasSuffix(language, "-head") {
			out = append(out, language)
		}
	}
	sort.Strings(out)
	return out
}

// Templates returns the template set for a language key. Headline sets use
// the "-head" suffix ("en-head").
func (r *Registry) Templates(language string) []*model.Template {
	return r.templates[language]
}

// SlotRealizers returns the full realizer stack; each realizer filters on
// document language itself.
func (r *Registry) SlotRealizers() []realize.SlotRealizer {
	return r.realizers
}

// DateRealizer returns the date realizer for a base language, or nil.
func (r *Registry) DateRealizer(language string) *realize.DateRealizer {
	return r.dates[baseLanguage(language)]
}

// EntityResolver returns the entity name resolver for a base language, or
// nil.
func (r *Registry) EntityResolver(language string) *realize.EntityResolver {
	return r.entities[baseLanguage(language)]
}

// Ordinals returns the ordinal realizer for a base language, or nil.
func (r *Registry) Ordinals(language string) realize.OrdinalRealizer {
	return r.ordinals[baseLanguage(language)]
}

// Morphology returns the morphological realizer for a base language, or
// nil when the language needs none.
func (r *Registry) Morphology(language string) morph.Morphology {
	return r.morphologies[baseLanguage(language)]
}

// Conjunctions returns the aggregation lexicon for a base language.
func (r *Registry) Conjunctions(language string) aggregate.Conjunctions {
	if c, ok := conjunctions[baseLanguage(language)]; ok {
		return c
	}
	return conjunctions["en"]
}

// ErrorText returns the canned reader-facing text for an error key, in the
// given language when available and in English otherwise.
func (r *Registry) ErrorText(language, key string) string {
	if texts, ok := errorTexts[baseLanguage(language)]; ok {
		if text, ok := texts[key]; ok {
			return text
		}
	}
	return errorTexts["en"][key]
}

func baseLanguage(language string) string {
	return strings.TrimSuffix(language, "-head")
}
