// Package pipeline orchestrates the complete article generation process:
// fact extraction, scoring, document planning, template selection,
// aggregation, realization and surface rendering.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/jtoivan/statnews/internal/aggregate"
	"github.com/jtoivan/statnews/internal/cache"
	"github.com/jtoivan/statnews/internal/data"
	"github.com/jtoivan/statnews/internal/extract"
	"github.com/jtoivan/statnews/internal/llm"
	"github.com/jtoivan/statnews/internal/model"
	"github.com/jtoivan/statnews/internal/morph"
	"github.com/jtoivan/statnews/internal/plan"
	"github.com/jtoivan/statnews/internal/realize"
	"github.com/jtoivan/statnews/internal/resource"
	"github.com/jtoivan/statnews/internal/score"
	"github.com/jtoivan/statnews/internal/selector"
	"github.com/jtoivan/statnews/internal/surface"
)

// DatasetSource loads datasets into memory stores. Satisfied by
// data.SQLiteStore.
type DatasetSource interface {
	Dataset(ctx context.Context, name string) (*data.MemoryStore, error)
	Datasets(ctx context.Context) ([]string, error)
}

// Request identifies one article to generate.
type Request struct {
	Language     string `json:"language"`
	Dataset      string `json:"dataset"`
	Location     string `json:"location"`
	LocationType string `json:"location_type"`

	// PreviousLocation, when set, boosts facts that cohere with an
	// already-shown article about that location.
	PreviousLocation string `json:"previous_location,omitempty"`
}

// Article is one generated news article. A degraded article carries canned
// reader-facing text instead of generated prose.
type Article struct {
	Request     Request   `json:"request"`
	Headline    string    `json:"headline"`
	Body        string    `json:"body"`
	Degraded    bool      `json:"degraded,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Service generates articles from loaded datasets. It is safe for
// concurrent use: all registries are read-only after construction and every
// run gets its own PRNG.
type Service struct {
	cfg       *model.Config
	resources *resource.Registry
	stores    map[string]*data.MemoryStore
	engine    *realize.Engine
	articles  cache.Cache
	llm       llm.Provider
}

// NewService loads the configured datasets and assembles the generation
// registries.
func NewService(ctx context.Context, cfg *model.Config, source DatasetSource) (*Service, error) {
	stores := make(map[string]*data.MemoryStore, len(cfg.Data.Datasets))
	for _, name := range cfg.Data.Datasets {
		store, err := source.Dataset(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("load dataset %s: %w", name, err)
		}
		stores[name] = store
	}

	resources := resource.New()

	var articles cache.Cache
	if cfg.Cache.Enabled {
		c, err := cache.ForConfig(cfg.Cache)
		if err != nil {
			return nil, fmt.Errorf("article cache: %w", err)
		}
		articles = c
	}

	var provider llm.Provider
	if cfg.LLM.Provider != "" {
		p, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			return nil, fmt.Errorf("llm provider: %w", err)
		}
		provider = p
	}

	return &Service{
		cfg:       cfg,
		resources: resources,
		stores:    stores,
		engine:    realize.NewEngine(resources.SlotRealizers()...),
		articles:  articles,
		llm:       provider,
	}, nil
}

// Languages lists the supported output languages.
func (s *Service) Languages() []string {
	return s.resources.Languages()
}

// Datasets lists the loaded datasets.
func (s *Service) Datasets() []string {
	out := make([]string, 0, len(s.stores))
	for name := range s.stores {
		out = append(out, name)
	}
	return out
}

// Locations lists the locations present in a dataset.
func (s *Service) Locations(dataset string) ([]string, error) {
	store, ok := s.stores[dataset]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", dataset)
	}
	return store.Locations(), nil
}

// Generate produces the article for a request, serving from the article
// cache when possible. Generation failures inside the language pipeline
// degrade to canned text rather than errors; only an invalid request errors.
func (s *Service) Generate(ctx context.Context, req Request) (*Article, error) {
	store, ok := s.stores[req.Dataset]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", req.Dataset)
	}
	if req.LocationType == "" {
		req.LocationType = "country"
	}

	key := cache.ArticleKey(req.Language, req.Dataset, req.Location, req.LocationType)
	if s.articles != nil {
		if raw, found := s.articles.Get(key); found {
			var cached Article
			if err := json.Unmarshal(raw, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	article := s.generate(ctx, store, req)

	if s.articles != nil && !article.Degraded {
		if raw, err := json.Marshal(article); err == nil {
			_ = s.articles.Set(key, raw, s.cfg.Cache.TTL)
		}
	}
	return article, nil
}

func (s *Service) generate(ctx context.Context, store *data.MemoryStore, req Request) *Article {
	rng := s.newRand()
	article := &Article{Request: req, GeneratedAt: time.Now().UTC()}

	generator := extract.NewMessageGenerator(true)
	core, expanded, err := generator.Generate(store, req.Location, req.LocationType)
	if err != nil {
		article.Degraded = true
		article.Headline = s.locationName(req.Language, req.Location)
		article.Body = s.errorText(req.Language, err)
		return article
	}

	scorer := score.NewScorer()
	core = scorer.Score(core)
	expanded = scorer.Score(expanded)

	if req.PreviousLocation != "" {
		prev, _, prevErr := generator.Generate(store, req.PreviousLocation, req.LocationType)
		if prevErr == nil {
			scorer.BoostCohesion(core, expanded, prev)
		}
	}

	body, err := s.renderBody(ctx, rng, req.Language, core, expanded)
	if err != nil {
		article.Degraded = true
		article.Headline = s.locationName(req.Language, req.Location)
		article.Body = s.errorText(req.Language, err)
		return article
	}
	article.Body = body

	headline, err := s.renderHeadline(ctx, rng, req.Language, core)
	if err != nil {
		headline = s.locationName(req.Language, req.Location)
	}
	article.Headline = headline
	return article
}

func (s *Service) renderBody(ctx context.Context, rng *rand.Rand, language string, core, expanded []*model.Message) (string, error) {
	root, err := plan.NewPlanner(s.cfg.Planner).PlanBody(rng, clone(core), clone(expanded))
	if err != nil {
		return "", err
	}

	sel, err := selector.New(language, s.resources.Templates(language), s.cfg.Selector.CheckCacheSize)
	if err != nil {
		return "", err
	}
	pool := append(append([]*model.Message(nil), core...), expanded...)
	if err := sel.Select(rng, root, pool); err != nil {
		return "", err
	}

	if err := aggregate.New(s.resources.Conjunctions(language)).Aggregate(root); err != nil {
		return "", err
	}

	s.realizePlan(ctx, rng, language, root)
	return surface.NewBodyRenderer().Render(root)
}

func (s *Service) renderHeadline(ctx context.Context, rng *rand.Rand, language string, core []*model.Message) (string, error) {
	root, err := plan.NewPlanner(s.cfg.Planner).PlanHeadline(rng, clone(core))
	if err != nil {
		return "", err
	}

	headLanguage := language + "-head"
	sel, err := selector.New(headLanguage, s.resources.Templates(headLanguage), s.cfg.Selector.CheckCacheSize)
	if err != nil {
		return "", err
	}
	if err := sel.Select(rng, root, core); err != nil {
		return "", err
	}

	s.realizePlan(ctx, rng, headLanguage, root)
	return surface.NewHeadlineRenderer().Render(root)
}

// realizePlan runs the realization stages in pipeline order: slot
// realizers, dates, entity names, ordinals, morphology.
func (s *Service) realizePlan(ctx context.Context, rng *rand.Rand, language string, root *model.Branch) {
	s.engine.Run(rng, language, root)
	if d := s.resources.DateRealizer(language); d != nil {
		d.Run(rng, root)
	}
	if e := s.resources.EntityResolver(language); e != nil {
		e.Run(rng, root)
	}
	if o := s.resources.Ordinals(language); o != nil {
		realize.RunOrdinals(o, root)
	}
	morph.Run(s.morphology(ctx, language), root)
}

// morphology chains the dictionary morphology with the optional LLM-backed
// inflector. The dictionary always wins when it knows the word.
func (s *Service) morphology(ctx context.Context, language string) morph.Morphology {
	dictionary := s.resources.Morphology(language)
	if s.llm == nil {
		return dictionary
	}
	return morph.Chain{dictionary, &llmMorphology{
		ctx:      ctx,
		provider: s.llm,
		language: strings.TrimSuffix(language, "-head"),
	}}
}

func (s *Service) errorText(language string, err error) string {
	if errors.Is(err, model.ErrNoMessages) || errors.Is(err, model.ErrNoNucleus) {
		return s.resources.ErrorText(language, "no-messages-for-selection")
	}
	var noTemplate *model.NoTemplateError
	if errors.As(err, &noTemplate) {
		return s.resources.ErrorText(language, "no-template")
	}
	return s.resources.ErrorText(language, "general-error")
}

func (s *Service) locationName(language, location string) string {
	return s.resources.LocationName(language, location)
}

func (s *Service) newRand() *rand.Rand {
	seed := s.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// clone copies a message list so one rendering pass cannot consume the
// messages of another.
func clone(messages []*model.Message) []*model.Message {
	return append([]*model.Message(nil), messages...)
}
