package plan

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/jtoivan/statnews/internal/model"
)

func planMessage(valueType, location, timestamp string, score float64) *model.Message {
	m := model.NewMessage(model.Fact{
		Location:      location,
		LocationType:  "country",
		Value:         1.0,
		ValueType:     valueType,
		Timestamp:     timestamp,
		TimestampType: "year",
	})
	m.Score = score
	return m
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func paragraphs(root *model.Branch) []*model.Branch {
	var out []*model.Branch
	for _, child := range root.Children {
		out = append(out, child.(*model.Branch))
	}
	return out
}

func TestPlanBody_NoMessagesReturnsErrNoNucleus(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)
	_, err := planner.PlanBody(testRNG(), nil, nil)
	if !errors.Is(err, model.ErrNoNucleus) {
		t.Fatalf("expected ErrNoNucleus, got %v", err)
	}
}

func TestPlanBody_NucleusIsFirstChildOfParagraph(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)

	nucleus := planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50)
	satellite := planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2020", 20)
	other := planMessage("cphi:hicp2015:cp-hi01:raw", "[ENTITY:country:FI]", "2020", 10)

	root, err := planner.PlanBody(testRNG(), []*model.Message{satellite, nucleus, other}, nil)
	if err != nil {
		t.Fatal(err)
	}

	paras := paragraphs(root)
	if len(paras) == 0 {
		t.Fatal("no paragraphs planned")
	}
	first, ok := paras[0].Children[0].(*model.Message)
	if !ok {
		t.Fatal("first child of paragraph is not a message")
	}
	if first != nucleus {
		t.Errorf("nucleus = %v, want the top-scored message", first.MainFact().ValueType)
	}
}

func TestPlanBody_MessagesAppearAtMostOnce(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)

	core := []*model.Message{
		planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50),
		planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2020", 30),
		planMessage("cphi:hicp2015:cp-hi01:raw", "[ENTITY:country:FI]", "2020", 25),
		planMessage("health:cost:hc:raw", "[ENTITY:country:FI]", "2020", 40),
		planMessage("health:cost:hc:change", "[ENTITY:country:FI]", "2020", 20),
	}

	root, err := planner.PlanBody(testRNG(), core, nil)
	if err != nil {
		t.Fatal(err)
	}

	seen := map[*model.Message]int{}
	for _, m := range model.Messages(root) {
		seen[m]++
	}
	for m, n := range seen {
		if n > 1 {
			t.Errorf("message %s placed %d times", m.MainFact().ValueType, n)
		}
	}
}

func TestPlanBody_RespectsMaxParagraphs(t *testing.T) {
	cfg := model.DefaultConfig().Planner
	cfg.MaxParagraphs = 2
	planner := NewPlanner(cfg)

	core := []*model.Message{
		planMessage("cphi:hicp2015:a:raw", "[ENTITY:country:FI]", "2020", 50),
		planMessage("health:cost:b:raw", "[ENTITY:country:SE]", "2020", 40),
		planMessage("health:funding:c:raw", "[ENTITY:country:NO]", "2020", 30),
	}

	root, err := planner.PlanBody(testRNG(), core, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(paragraphs(root)); got > 2 {
		t.Errorf("planned %d paragraphs, max is 2", got)
	}
}

func TestPlanBody_OverviewStopsWhenTopicsExhausted(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)

	// Two distinct topic/location pairs, both strong. Once each has opened
	// a paragraph this is an overview document and planning must stop even
	// though messages remain.
	core := []*model.Message{
		planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50),
		planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2019", 45),
		planMessage("health:cost:hc:raw", "[ENTITY:country:SE]", "2020", 40),
		planMessage("health:cost:hc:change", "[ENTITY:country:SE]", "2019", 35),
	}

	root, err := planner.PlanBody(testRNG(), core, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(paragraphs(root)); got > 2 {
		t.Errorf("overview document planned %d paragraphs, want at most 2", got)
	}
}

func TestPlanBody_SingleTopicRelaxesNovelty(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)

	// One topic/location pair only, and more messages than a single
	// paragraph can hold: an in-depth document may open further paragraphs
	// on the same topic.
	core := []*model.Message{
		planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50),
		planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2019", 45),
		planMessage("cphi:hicp2015:cp-hi00:rank", "[ENTITY:country:FI]", "2018", 40),
		planMessage("cphi:hicp2015:cp-hi00:trend", "[ENTITY:country:FI]", "2020", 35),
		planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2017", 30),
		planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2016", 25),
		planMessage("cphi:hicp2015:cp-hi00:rank", "[ENTITY:country:FI]", "2015", 20),
		planMessage("cphi:hicp2015:cp-hi00:trend", "[ENTITY:country:FI]", "2014", 15),
	}

	root, err := planner.PlanBody(testRNG(), core, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(paragraphs(root)); got < 2 {
		t.Errorf("in-depth document planned %d paragraphs, want at least 2", got)
	}
}

func TestPlanHeadline_SingleMessage(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)

	top := planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50)
	core := []*model.Message{
		planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2020", 20),
		top,
	}

	root, err := planner.PlanHeadline(testRNG(), core)
	if err != nil {
		t.Fatal(err)
	}
	got := model.Messages(root)
	if len(got) != 1 {
		t.Fatalf("headline plan has %d messages, want 1", len(got))
	}
	if got[0] != top {
		t.Errorf("headline nucleus = %s, want top-scored message", got[0].MainFact().ValueType)
	}
}

func TestPlanHeadline_EmptyReturnsErrNoNucleus(t *testing.T) {
	planner := NewPlanner(model.DefaultConfig().Planner)
	_, err := planner.PlanHeadline(testRNG(), nil)
	if !errors.Is(err, model.ErrNoNucleus) {
		t.Fatalf("expected ErrNoNucleus, got %v", err)
	}
}

func TestSelectCoherentSatellites_ZeroesCrossTopic(t *testing.T) {
	cfg := model.DefaultConfig().Planner
	nucleus := planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50)

	sameTopic := planMessage("cphi:hicp2015:cp-hi00:change", "[ENTITY:country:FI]", "2020", 30)
	crossTopic := planMessage("health:cost:hc:raw", "[ENTITY:country:FI]", "2020", 45)

	satellites := selectCoherentSatellites(cfg, nucleus, []*model.Message{sameTopic, crossTopic}, nil)
	for _, s := range satellites {
		if s == crossTopic && s != satellites[len(satellites)-1] {
			t.Error("cross-topic satellite preferred over same-topic one")
		}
	}
	if len(satellites) == 0 || satellites[0] != sameTopic {
		t.Errorf("first satellite should share the nucleus topic")
	}
}

func TestSelectCoherentSatellites_ContextMismatchExcluded(t *testing.T) {
	cfg := model.DefaultConfig().Planner
	cfg.MinSatellites = 0
	nucleus := planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:FI]", "2020", 50)

	// Same topic but different location AND timestamp: context weight is
	// zero, so with MinSatellites 0 nothing should be picked.
	unrelated := planMessage("cphi:hicp2015:cp-hi00:raw", "[ENTITY:country:SE]", "2015", 40)

	satellites := selectCoherentSatellites(cfg, nucleus, []*model.Message{unrelated}, nil)
	if len(satellites) != 0 {
		t.Errorf("satellite sharing neither location nor timestamp was selected")
	}
}

func TestRandomStrategy_Deterministic(t *testing.T) {
	cfg := model.DefaultConfig().Planner
	cfg.Variant = "random"
	planner := NewPlanner(cfg)

	core := []*model.Message{
		planMessage("cphi:hicp2015:a:raw", "[ENTITY:country:FI]", "2020", 50),
		planMessage("cphi:hicp2015:b:raw", "[ENTITY:country:SE]", "2020", 40),
		planMessage("cphi:hicp2015:c:raw", "[ENTITY:country:NO]", "2020", 30),
		planMessage("cphi:hicp2015:d:raw", "[ENTITY:country:DK]", "2020", 20),
	}

	first, err := planner.PlanBody(rand.New(rand.NewSource(7)), core, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := planner.PlanBody(rand.New(rand.NewSource(7)), core, nil)
	if err != nil {
		t.Fatal(err)
	}

	a, b := model.Messages(first), model.Messages(second)
	if len(a) != len(b) {
		t.Fatalf("plans differ in size: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("plans diverge at message %d with the same seed", i)
		}
	}
}
