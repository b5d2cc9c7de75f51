// Package validate lints the generation resources for authoring mistakes:
// templates without rules, slot indices pointing past the component list,
// languages missing their headline template sets.
package validate

import (
	"fmt"

	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/resource"
)

// Severity classifies an issue. Errors would break generation at runtime;
// warnings degrade output quality.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one problem found in the resources.
type Issue struct {
	Language string
	Severity Severity
	Detail   string
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Language, i.Detail)
}

// Validator checks a resource registry for authoring mistakes.
type Validator struct {
	registry *resource.Registry
}

// NewValidator creates a validator over the registry.
func NewValidator(registry *resource.Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate runs every check and returns the issues found, grouped by
// language. An empty result means the resources are sound.
func (v *Validator) Validate() []Issue {
	var issues []Issue
	for _, language := range v.registry.Languages() {
		issues = append(issues, v.checkLanguage(language)...)
	}
	return issues
}

// HasErrors reports whether any issue is severe enough to break generation.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (v *Validator) checkLanguage(language string) []Issue {
	var issues []Issue

	body := v.registry.Templates(language)
	if len(body) == 0 {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityError,
			Detail:   "no body templates",
		})
	}
	head := v.registry.Templates(language + "-head")
	if len(head) == 0 {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityError,
			Detail:   "no headline templates",
		})
	}

	for i, tmpl := range body {
		issues = append(issues, checkTemplate(language, fmt.Sprintf("body template %d", i), tmpl)...)
	}
	for i, tmpl := range head {
		issues = append(issues, checkTemplate(language, fmt.Sprintf("headline template %d", i), tmpl)...)
	}

	if v.registry.Morphology(language) == nil {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityWarning,
			Detail:   "no morphology, case-marked slots will surface uninflected",
		})
	}
	if v.registry.EntityResolver(language) == nil {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityError,
			Detail:   "no entity resolver, location tags will leak into output",
		})
	}
	if v.registry.DateRealizer(language) == nil {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityError,
			Detail:   "no date realizer, time tags will leak into output",
		})
	}
	if v.registry.Conjunctions(language).Default == "" {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityWarning,
			Detail:   "no default conjunction, aggregation is disabled",
		})
	}
	return issues
}

// checkTemplate verifies the rule wiring of one template: a template
// without rules can never be selected, and a slot index outside the
// component list panics at fill time.
func checkTemplate(language, name string, tmpl *model.Template) []Issue {
	var issues []Issue
	if len(tmpl.Rules) == 0 {
		issues = append(issues, Issue{
			Language: language,
			Severity: SeverityError,
			Detail:   fmt.Sprintf("%s has no rules and can never be selected", name),
		})
		return issues
	}

	covered := make(map[int]bool)
	for r, rule := range tmpl.Rules {
		if len(rule.Matchers) == 0 {
			issues = append(issues, Issue{
				Language: language,
				Severity: SeverityError,
				Detail:   fmt.Sprintf("%s rule %d has no matchers and matches everything", name, r),
			})
		}
		for _, idx := range rule.SlotIndices {
			if idx < 0 || idx >= len(tmpl.Components) {
				issues = append(issues, Issue{
					Language: language,
					Severity: SeverityError,
					Detail:   fmt.Sprintf("%s rule %d slot index %d out of range", name, r, idx),
				})
				continue
			}
			if _, ok := tmpl.Components[idx].(*model.Slot); !ok {
				issues = append(issues, Issue{
					Language: language,
					Severity: SeverityError,
					Detail:   fmt.Sprintf("%s rule %d slot index %d is not a slot", name, r, idx),
				})
				continue
			}
			covered[idx] = true
		}
	}

	for i, c := range tmpl.Components {
		if _, ok := c.(*model.Slot); ok && !covered[i] {
			issues = append(issues, Issue{
				Language: language,
				Severity: SeverityWarning,
				Detail:   fmt.Sprintf("%s slot at %d is bound by no rule and stays empty", name, i),
			})
		}
	}
	return issues
}
