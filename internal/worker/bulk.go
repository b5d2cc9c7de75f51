package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jtoivan/statnews/internal/pipeline"
)

// Generator produces one article per request. Satisfied by
// pipeline.Service.
type Generator interface {
	Generate(ctx context.Context, req pipeline.Request) (*pipeline.Article, error)
}

// GenerateJob renders a single article.
type GenerateJob struct {
	Request   pipeline.Request
	Generator Generator
	Limiter   *Limiter
}

// Execute runs the generation, waiting on the rate limiter when one is
// configured.
func (j *GenerateJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Request.Language); err != nil {
			return &GenerateResult{Request: j.Request, Error: err}
		}
	}
	article, err := j.Generator.Generate(ctx, j.Request)
	return &GenerateResult{Request: j.Request, Article: article, Error: err}
}

// GenerateResult is the outcome of one article generation.
type GenerateResult struct {
	Request pipeline.Request
	Article *pipeline.Article
	Error   error
}

// Err returns the generation error, if any.
func (r *GenerateResult) Err() error {
	return r.Error
}

// BulkGenerator renders many articles concurrently, one worker pool run
// per batch.
type BulkGenerator struct {
	generator   Generator
	concurrency int
	limiter     *Limiter
}

// NewBulkGenerator creates a bulk generator.
func NewBulkGenerator(generator Generator, concurrency int) *BulkGenerator {
	return &BulkGenerator{
		generator:   generator,
		concurrency: concurrency,
	}
}

// WithLimiter throttles generation, keyed by request language. Useful when
// an LLM inflector backs the morphology stage.
func (b *BulkGenerator) WithLimiter(limiter *Limiter) *BulkGenerator {
	b.limiter = limiter
	return b
}

// Generate renders every request and returns one result per request, in
// completion order.
func (b *BulkGenerator) Generate(ctx context.Context, requests []pipeline.Request) []*GenerateResult {
	if len(requests) == 0 {
		return []*GenerateResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, req := range requests {
		select {
		case <-ctx.Done():
		default:
			pool.Submit(&GenerateJob{
				Request:   req,
				Generator: b.generator,
				Limiter:   b.limiter,
			})
		}
	}

	results := make([]*GenerateResult, 0, len(requests))
	for _, result := range pool.Wait() {
		results = append(results, result.(*GenerateResult))
	}
	return results
}

// Requests builds the full language-by-location request matrix for one
// dataset.
func Requests(dataset string, languages, locations []string) []pipeline.Request {
	requests := make([]pipeline.Request, 0, len(languages)*len(locations))
	for _, language := range languages {
		for _, location := range locations {
			requests = append(requests, pipeline.Request{
				Language: language,
				Dataset:  dataset,
				Location: location,
			})
		}
	}
	return requests
}

// ReadLocationsFromFile reads location codes from a file, one per line.
// Blank lines and #-comments are skipped, duplicates dropped.
func ReadLocationsFromFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var locations []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			locations = append(locations, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return locations, nil
}
