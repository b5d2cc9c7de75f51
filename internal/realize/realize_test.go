package realize

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jtoivan/statnews/internal/model"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func messageWith(components ...model.Component) *model.Message {
	f := model.Fact{
		Location:      "[ENTITY:country:FI]",
		LocationType:  "country",
		Value:         102.3,
		ValueType:     "cphi:hicp2015:cp-hi00",
		Timestamp:     "2020",
		TimestampType: "year",
	}
	m := model.NewMessage(f)
	for _, c := range components {
		if s, ok := c.(*model.Slot); ok && s.Fact == nil {
			fc := f
			s.Fact = &fc
		}
	}
	m.Template = model.NewTemplate(components)
	return m
}

func wrap(m *model.Message) *model.Branch {
	return &model.Branch{Relation: model.Sequence, Children: []model.Node{m}}
}

func values(m *model.Message) []string {
	var out []string
	for _, c := range m.Template.Components {
		out = append(out, c.Value())
	}
	return out
}

func TestNumberRealizer_Formatting(t *testing.T) {
	tests := []struct {
		value any
		attrs map[string]string
		want  string
	}{
		{5.0, nil, "5"},
		{-3.0, nil, "-3"},
		{-3.0, map[string]string{"abs": "true"}, "3"},
		{102.3456, nil, "102.35"},
		{0.0412, nil, "0.0412"},
		{0.041234, nil, "0.0412"},
		{"not a number", nil, "not a number"},
	}

	for _, tt := range tests {
		slot := model.NewSlot(model.FactFieldSource{Field: "value"}, tt.attrs)
		f := model.Fact{Value: tt.value}
		slot.Fact = &f

		m := messageWith(slot)
		NewEngine().Run(testRNG(), "en", wrap(m))

		if got := slot.Value(); got != tt.want {
			t.Errorf("value %v realized as %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestRegexRealizer_SplitsIntoTokenSlots(t *testing.T) {
	r := NewRegexRealizer([]string{"en"}, `cphi:([^:]*):([^:]*)`, "{} for the category {}")

	slot := model.NewSlot(model.FactFieldSource{Field: "value_type"}, map[string]string{"case": "gen"})
	m := messageWith(slot)
	NewEngine(r).Run(testRNG(), "en", wrap(m))

	got := values(m)
	want := []string{"hicp2015", "for", "the", "category", "cp-hi00"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("realized as %v, want %v", got, want)
	}

	// Attributes are dropped from tokens unless attached explicitly.
	for i, c := range m.Template.Components {
		if s, ok := c.(*model.Slot); ok && s.Attributes["case"] != "" {
			t.Errorf("token %d kept the case attribute", i)
		}
	}
}

func TestRegexRealizer_AttachAndAddAttributes(t *testing.T) {
	r := NewRegexRealizer([]string{"en"}, `cphi:([^:]*):([^:]*)`, "{0} {1}")
	r.AttachAttributesTo = []int{1}
	r.AddAttributes = map[int]map[string]string{0: {"ord": "true"}}

	slot := model.NewSlot(model.FactFieldSource{Field: "value_type"}, map[string]string{"case": "gen"})
	m := messageWith(slot)
	NewEngine(r).Run(testRNG(), "en", wrap(m))

	first := m.Template.Components[0].(*model.Slot)
	second := m.Template.Components[1].(*model.Slot)
	if first.Attributes["ord"] != "true" {
		t.Error("added attribute missing on token 0")
	}
	if first.Attributes["case"] != "" {
		t.Error("token 0 should not keep the original attributes")
	}
	if second.Attributes["case"] != "gen" {
		t.Error("token 1 should keep the original attributes")
	}
}

func TestRegexRealizer_RequirementsBlock(t *testing.T) {
	r := NewRegexRealizer([]string{"en"}, `\[UNIT:cphi:.*\]`, "percentage points")
	r.SlotRequirement = func(slot *model.Slot) bool {
		return strings.Contains(slot.Value(), ":rt12")
	}

	slot := model.NewSlot(model.UnitSource{}, nil)
	m := messageWith(slot)
	NewEngine(r).Run(testRNG(), "en", wrap(m))

	if slot.Resolved() {
		t.Errorf("slot realized despite failing requirement: %q", slot.Value())
	}
}

func TestRegexRealizer_LanguageFilter(t *testing.T) {
	r := NewRegexRealizer([]string{"fi"}, `cphi:([^:]*):([^:]*)`, "{0}")

	slot := model.NewSlot(model.FactFieldSource{Field: "value_type"}, nil)
	m := messageWith(slot)
	NewEngine(r).Run(testRNG(), "en", wrap(m))

	if len(m.Template.Components) != 1 {
		t.Error("finnish realizer applied to an english document")
	}
}

func TestLookupRealizer(t *testing.T) {
	r := NewLookupRealizer([]string{"en"}, map[string]string{
		"cp-hi00": "'all items'",
	})

	slot := model.NewSlot(model.LiteralSource{Text: "cp-hi00"}, nil)
	m := messageWith(slot)
	NewEngine(r).Run(testRNG(), "en", wrap(m))

	if got := strings.Join(values(m), " "); got != "'all items'" {
		t.Errorf("realized as %q", got)
	}
}

func TestEngine_ChainsRealizers(t *testing.T) {
	// A regex realizer explodes the value type, then a lookup realizer
	// rewrites one of the produced tokens on the next pass.
	category := NewRegexRealizer([]string{"en"}, `cphi:([^:]*):([^:]*)`, "{1}")
	lookup := NewLookupRealizer([]string{"en"}, map[string]string{"cp-hi00": "everything"})

	slot := model.NewSlot(model.FactFieldSource{Field: "value_type"}, nil)
	m := messageWith(slot)
	NewEngine(lookup, category).Run(testRNG(), "en", wrap(m))

	if got := strings.Join(values(m), " "); got != "everything" {
		t.Errorf("chained realization produced %q, want %q", got, "everything")
	}
}

func TestEngine_RunIsIdempotent(t *testing.T) {
	// Rules only fire on unresolved slots, so a second pass over an
	// already-realized tree must leave every component untouched.
	category := NewRegexRealizer([]string{"en"}, `cphi:([^:]*):([^:]*)`, "{} for the category {}")
	lookup := NewLookupRealizer([]string{"en"}, map[string]string{"cp-hi00": "everything"})
	engine := NewEngine(lookup, category)

	typeSlot := model.NewSlot(model.FactFieldSource{Field: "value_type"}, nil)
	valueSlot := model.NewSlot(model.FactFieldSource{Field: "value"}, nil)
	m := messageWith(typeSlot, valueSlot)
	root := wrap(m)

	engine.Run(testRNG(), "en", root)
	first := values(m)

	engine.Run(testRNG(), "en", root)
	second := values(m)

	if len(first) != len(second) {
		t.Fatalf("second pass changed component count: %d, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("component %d changed on second pass: %q, want %q", i, second[i], first[i])
		}
	}
}

var englishDates = DateVocab{
	Months: map[string]string{
		"01": "January", "02": "February", "03": "March", "04": "April",
		"05": "May", "06": "June", "07": "July", "08": "August",
		"09": "September", "10": "October", "11": "November", "12": "December",
	},
	MonthReference:      []string{"the same month"},
	YearReference:       []string{"the same year"},
	MonthExpression:     "{month}",
	MonthYearExpression: "{month} {year}",
	YearExpression:      "{year}",
}

func timeSlot(timestampType, timestamp string) *model.Slot {
	s := model.NewSlot(model.TimeSource{}, nil)
	s.Fact = &model.Fact{Timestamp: timestamp, TimestampType: timestampType}
	return s
}

func TestDateRealizer_Year(t *testing.T) {
	d := NewDateRealizer(englishDates, nil)

	m := messageWith(timeSlot("year", "2020"))
	d.Run(testRNG(), wrap(m))

	if got := strings.Join(values(m), " "); got != "2020" {
		t.Errorf("year realized as %q", got)
	}
}

func TestDateRealizer_RepeatBecomesReference(t *testing.T) {
	d := NewDateRealizer(englishDates, nil)

	first := messageWith(timeSlot("year", "2020"))
	second := messageWith(timeSlot("year", "2020"))
	root := &model.Branch{Relation: model.Sequence, Children: []model.Node{first, second}}
	d.Run(testRNG(), root)

	if got := strings.Join(values(second), " "); got != "the same year" {
		t.Errorf("repeated year realized as %q", got)
	}
}

func TestDateRealizer_MonthInEstablishedYear(t *testing.T) {
	d := NewDateRealizer(englishDates, nil)

	first := messageWith(timeSlot("month", "2020M03"))
	second := messageWith(timeSlot("month", "2020M06"))
	root := &model.Branch{Relation: model.Sequence, Children: []model.Node{first, second}}
	d.Run(testRNG(), root)

	if got := strings.Join(values(first), " "); got != "March 2020" {
		t.Errorf("first month realized as %q", got)
	}
	if got := strings.Join(values(second), " "); got != "June" {
		t.Errorf("month within an established year realized as %q", got)
	}
}

func entitySlot(entityType, id string) *model.Slot {
	s := model.NewSlot(model.FactFieldSource{Field: "location"}, nil)
	s.Fact = &model.Fact{Location: "[ENTITY:" + entityType + ":" + id + "]", LocationType: entityType}
	return s
}

func englishEntities() *EntityResolver {
	names := DictionaryNameResolver{"FI": "Finland", "SE": "Sweden"}
	return NewEntityResolver(map[string]map[string]NameResolver{
		"country": {
			"full":    names,
			"short":   names,
			"pronoun": VariantsNameResolver{"the country"},
		},
	})
}

func TestEntityResolver_MentionForms(t *testing.T) {
	resolver := englishEntities()

	first := entitySlot("country", "FI")
	repeat := entitySlot("country", "FI")
	other := entitySlot("country", "SE")
	later := entitySlot("country", "FI")

	root := &model.Branch{Relation: model.Sequence, Children: []model.Node{
		messageWith(first), messageWith(repeat), messageWith(other), messageWith(later),
	}}
	resolver.Run(testRNG(), root)

	if first.Value() != "Finland" || first.Attributes["name_type"] != "full" {
		t.Errorf("first mention = %q (%s)", first.Value(), first.Attributes["name_type"])
	}
	if repeat.Value() != "the country" || repeat.Attributes["name_type"] != "pronoun" {
		t.Errorf("immediate repeat = %q (%s)", repeat.Value(), repeat.Attributes["name_type"])
	}
	if other.Value() != "Sweden" {
		t.Errorf("new entity = %q", other.Value())
	}
	if later.Attributes["name_type"] != "short" {
		t.Errorf("later mention name_type = %q, want short", later.Attributes["name_type"])
	}
}

func TestEnglishOrdinals(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"1", ""},
		{"2", "second"},
		{"3", "third"},
		{"13", "13th"},
		{"21", "21st"},
		{"22", "22nd"},
		{"104", "104th"},
	}
	for _, tt := range tests {
		if got := (EnglishOrdinals{}).Ordinal(tt.in); got != tt.want {
			t.Errorf("Ordinal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRunOrdinals_AppliesToOrdSlots(t *testing.T) {
	ord := model.NewSlot(model.FactFieldSource{Field: "value"}, map[string]string{"ord": "true"})
	ord.Fact = &model.Fact{Value: 3.0}
	plain := model.NewSlot(model.FactFieldSource{Field: "value"}, nil)
	plain.Fact = &model.Fact{Value: 3.0}

	m := messageWith(ord, plain)
	RunOrdinals(EnglishOrdinals{}, wrap(m))

	if ord.Value() != "third" {
		t.Errorf("ordinal slot = %q", ord.Value())
	}
	if plain.Value() != "3" {
		t.Errorf("plain slot = %q", plain.Value())
	}
}
