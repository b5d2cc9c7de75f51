package morph

import (
	"testing"

	"github.com/jtoivan/statnews/internal/model"
)

func TestEnglishGenitive(t *testing.T) {
	tests := []struct {
		word string
		c    string
		want string
		ok   bool
	}{
		{"Finland", "genitive", "Finland's", true},
		{"Finland", "gen", "Finland's", true},
		{"Cyprus", "genitive", "Cyprus'", true},
		{"Finland", "nominative", "Finland", false},
		{"", "genitive", "", false},
	}

	for _, tt := range tests {
		got, ok := English{}.Inflect(tt.word, tt.c)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Inflect(%q, %q) = %q, %v; want %q, %v", tt.word, tt.c, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFinnishLookup(t *testing.T) {
	fi := NewFinnish(map[string]map[string]string{
		"genitive": {"Suomi": "Suomen", "Ruotsi": "Ruotsin"},
		"inessive": {"Suomi": "Suomessa"},
	})

	if got, ok := fi.Inflect("Suomi", "genitive"); !ok || got != "Suomen" {
		t.Errorf("Inflect(Suomi, genitive) = %q, %v", got, ok)
	}
	if got, ok := fi.Inflect("Suomi", "Inessive"); !ok || got != "Suomessa" {
		t.Errorf("case lookup should be case-insensitive, got %q, %v", got, ok)
	}
	if _, ok := fi.Inflect("Viro", "genitive"); ok {
		t.Error("unknown word should not inflect")
	}
	if _, ok := fi.Inflect("Suomi", "elative"); ok {
		t.Error("unknown case should not inflect")
	}
}

func TestChainFirstMatchWins(t *testing.T) {
	first := NewFinnish(map[string]map[string]string{"genitive": {"Suomi": "Suomen"}})
	chain := Chain{nil, first, English{}}

	if got, _ := chain.Inflect("Suomi", "genitive"); got != "Suomen" {
		t.Errorf("chain picked %q, want Suomen", got)
	}
	if got, _ := chain.Inflect("Finland", "genitive"); got != "Finland's" {
		t.Errorf("chain fallback produced %q, want Finland's", got)
	}
	if _, ok := chain.Inflect("Finland", "nominative"); ok {
		t.Error("no member should inflect the nominative")
	}
}

func TestRunInflectsCaseSlots(t *testing.T) {
	caseSlot := model.NewSlot(model.LiteralSource{Text: "Finland"}, map[string]string{"case": "genitive"})
	caseSlot.Resolve("Finland")
	plainSlot := model.NewSlot(model.LiteralSource{Text: "index"}, nil)
	plainSlot.Resolve("index")

	msg := model.NewMessage()
	msg.Template = model.NewTemplate([]model.Component{caseSlot, plainSlot})
	root := &model.Branch{Relation: model.Sequence, Children: []model.Node{msg}}

	Run(English{}, root)

	if got := caseSlot.Value(); got != "Finland's" {
		t.Errorf("case slot = %q, want Finland's", got)
	}
	if got := plainSlot.Value(); got != "index" {
		t.Errorf("plain slot should be untouched, got %q", got)
	}
}

func TestRunNilMorphology(t *testing.T) {
	slot := model.NewSlot(model.LiteralSource{Text: "Finland"}, map[string]string{"case": "genitive"})
	slot.Resolve("Finland")
	msg := model.NewMessage()
	msg.Template = model.NewTemplate([]model.Component{slot})
	root := &model.Branch{Relation: model.Sequence, Children: []model.Node{msg}}

	Run(nil, root)

	if got := slot.Value(); got != "Finland" {
		t.Errorf("nil morphology must leave slots alone, got %q", got)
	}
}
