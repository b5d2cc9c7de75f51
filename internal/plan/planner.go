package plan

import (
	"fmt"
	"math/rand"

	"github.com/jtoivan/statnews/internal/model"
)

// Planner turns scored messages into rhetorical-structure document plans.
// The body plan is a SEQUENCE of paragraphs, each itself a SEQUENCE whose
// first child is the paragraph nucleus and whose remaining children are its
// satellites. The headline plan is a single one-message paragraph.
type Planner struct {
	cfg      model.PlannerConfig
	strategy Strategy
}

// NewPlanner builds a planner for the variant named in cfg.
func NewPlanner(cfg model.PlannerConfig) *Planner {
	return &Planner{cfg: cfg, strategy: StrategyFor(cfg.Variant, cfg)}
}

// PlanBody builds the document plan for the article body. Messages placed
// in the plan are consumed: each appears at most once across all
// paragraphs. Returns ErrNoNucleus when not even a first paragraph can be
// opened.
func (p *Planner) PlanBody(rng *rand.Rand, core, expanded []*model.Message) (*model.Branch, error) {
	root := &model.Branch{Relation: model.Sequence}

	availableCore := append([]*model.Message{}, core...)
	availableExpanded := append([]*model.Message{}, expanded...)
	var selected []*model.Message

	for {
		nucleus, score := p.strategy.SelectNextNucleus(rng, availableCore, selected)
		if nucleus == nil || score < p.strategy.AbsoluteThreshold || score < p.strategy.RelativeThreshold(selected) {
			if len(selected) > 0 {
				return root, nil
			}
			return nil, fmt.Errorf("planning body: %w", model.ErrNoNucleus)
		}

		selected = append(selected, nucleus)
		availableCore = remove(availableCore, nucleus)

		satellites := p.strategy.SelectSatellites(rng, nucleus, availableCore, availableExpanded)
		for _, s := range satellites {
			availableCore = remove(availableCore, s)
			availableExpanded = remove(availableExpanded, s)
		}

		paragraph := &model.Branch{Relation: model.Sequence, Children: []model.Node{nucleus}}
		for _, s := range satellites {
			paragraph.Children = append(paragraph.Children, s)
		}
		root.Children = append(root.Children, paragraph)
	}
}

// PlanHeadline builds a single-message plan from the most newsworthy core
// message.
func (p *Planner) PlanHeadline(rng *rand.Rand, core []*model.Message) (*model.Branch, error) {
	nucleus, _ := p.strategy.SelectNextNucleus(rng, core, nil)
	if nucleus == nil {
		return nil, fmt.Errorf("planning headline: %w", model.ErrNoNucleus)
	}
	return &model.Branch{
		Relation: model.Sequence,
		Children: []model.Node{
			&model.Branch{Relation: model.Sequence, Children: []model.Node{nucleus}},
		},
	}, nil
}

func remove(messages []*model.Message, target *model.Message) []*model.Message {
	out := messages[:0]
	for _, m := range messages {
		if m != target {
			out = append(out, m)
		}
	}
	return out
}
