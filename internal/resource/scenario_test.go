package resource

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/morph"
	"github.com/jtoivan/statnews/internal/realize"
	"github.com/jtoivan/statnews/internal/surface"
)

// TestEnglishIndexSentence drives one consumer price fact through the full
// realization chain and checks the rendered sentence reports the value, the
// country name and the year.
func TestEnglishIndexSentence(t *testing.T) {
	registry := New()
	fact := cphiFact("cphi:hicp2015:cp-hi00", 102.3)
	message := model.NewMessage(fact)

	// Pick a variant that mentions both the time and the location, so the
	// assertion does not depend on random template choice.
	var filled *model.Template
	for _, tmpl := range registry.Templates("en") {
		if !tmpl.HasSlotOfType("time") || !tmpl.HasSlotOfType("location") {
			continue
		}
		candidate := tmpl.Copy()
		if len(candidate.Fill(message, nil)) > 0 {
			filled = candidate
			break
		}
	}
	if filled == nil {
		t.Fatal("no English template with time and location accepts the fact")
	}
	message.Template = filled

	root := &model.Branch{Relation: model.Sequence, Children: []model.Node{
		&model.Branch{Relation: model.Sequence, Children: []model.Node{message}},
	}}

	rng := rand.New(rand.NewSource(1))
	realize.NewEngine(registry.SlotRealizers()...).Run(rng, "en", root)
	registry.DateRealizer("en").Run(rng, root)
	registry.EntityResolver("en").Run(rng, root)
	realize.RunOrdinals(registry.Ordinals("en"), root)
	morph.Run(registry.Morphology("en"), root)

	body, err := surface.NewBodyRenderer().Render(root)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"102.3", "Finland", "2020"} {
		if !strings.Contains(body, want) {
			t.Errorf("body %q does not contain %q", body, want)
		}
	}
}
