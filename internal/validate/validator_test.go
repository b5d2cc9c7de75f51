package validate

import (
	"strings"
	"testing"

	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/resource"
)

func TestBuiltinResourcesAreSound(t *testing.T) {
	issues := NewValidator(resource.New()).Validate()
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			t.Errorf("built-in resources: %s", issue)
		}
	}
	if HasErrors(issues) {
		t.Fatal("built-in resources have errors")
	}
}

func slot() *model.Slot {
	return model.NewSlot(model.FactFieldSource{Field: "value"}, nil)
}

func matcher() model.Matcher {
	return model.MustMatcher(model.FactField{Field: "value_type"}, "=", ".*")
}

func TestCheckTemplateWithoutRules(t *testing.T) {
	tmpl := model.NewTemplate([]model.Component{&model.Literal{Text: "hello"}})

	issues := checkTemplate("en", "body template 0", tmpl)
	if len(issues) != 1 || issues[0].Severity != SeverityError {
		t.Fatalf("issues = %v", issues)
	}
	if !strings.Contains(issues[0].Detail, "no rules") {
		t.Errorf("unexpected detail: %s", issues[0].Detail)
	}
}

func TestCheckTemplateSlotIndexOutOfRange(t *testing.T) {
	tmpl := model.NewTemplate(
		[]model.Component{slot()},
		model.Rule{Matchers: []model.Matcher{matcher()}, SlotIndices: []int{5}},
	)

	issues := checkTemplate("en", "body template 0", tmpl)
	if !HasErrors(issues) {
		t.Fatal("expected an out-of-range error")
	}
	var found bool
	for _, issue := range issues {
		if strings.Contains(issue.Detail, "out of range") {
			found = true
		}
	}
	if !found {
		t.Errorf("issues = %v", issues)
	}
}

func TestCheckTemplateIndexPointsAtLiteral(t *testing.T) {
	tmpl := model.NewTemplate(
		[]model.Component{&model.Literal{Text: "x"}},
		model.Rule{Matchers: []model.Matcher{matcher()}, SlotIndices: []int{0}},
	)

	issues := checkTemplate("en", "body template 0", tmpl)
	if !HasErrors(issues) {
		t.Fatal("expected a not-a-slot error")
	}
}

func TestCheckTemplateUnboundSlot(t *testing.T) {
	tmpl := model.NewTemplate(
		[]model.Component{slot(), slot()},
		model.Rule{Matchers: []model.Matcher{matcher()}, SlotIndices: []int{0}},
	)

	issues := checkTemplate("en", "body template 0", tmpl)
	if HasErrors(issues) {
		t.Fatalf("unbound slot should warn, not error: %v", issues)
	}
	if len(issues) != 1 || issues[0].Severity != SeverityWarning {
		t.Fatalf("issues = %v", issues)
	}
}

func TestCheckTemplateEmptyMatchers(t *testing.T) {
	tmpl := model.NewTemplate(
		[]model.Component{slot()},
		model.Rule{Matchers: nil, SlotIndices: []int{0}},
	)

	issues := checkTemplate("en", "body template 0", tmpl)
	if !HasErrors(issues) {
		t.Fatal("expected an empty-matchers error")
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors(nil) {
		t.Error("no issues must mean no errors")
	}
	if HasErrors([]Issue{{Severity: SeverityWarning}}) {
		t.Error("warnings alone are not errors")
	}
	if !HasErrors([]Issue{{Severity: SeverityWarning}, {Severity: SeverityError}}) {
		t.Error("error severity not detected")
	}
}
