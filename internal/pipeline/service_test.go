package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/jtoivan/statnews/internal/data"
	"github.com/jtoivan/statnews/internal/model"
)

// fakeSource serves fixed rows without touching SQLite.
type fakeSource struct {
	datasets map[string][]data.Row
}

func (f *fakeSource) Dataset(_ context.Context, name string) (*data.MemoryStore, error) {
	rows, ok := f.datasets[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %q", name)
	}
	return data.NewMemoryStore(rows), nil
}

func (f *fakeSource) Datasets(_ context.Context) ([]string, error) {
	var names []string
	for name := range f.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// currentMonth keeps test rows inside the extraction recency window
// regardless of when the tests run.
func currentMonth() string {
	return fmt.Sprintf("%dM06", time.Now().Year())
}

func testSource() *fakeSource {
	month := currentMonth()
	row := func(location string, values, outlierness map[string]float64) data.Row {
		return data.Row{
			Location:      location,
			LocationType:  "country",
			Timestamp:     month,
			TimestampType: "month",
			Values:        values,
			Outlierness:   outlierness,
		}
	}
	return &fakeSource{datasets: map[string][]data.Row{
		"cphi": {
			row("FI",
				map[string]float64{
					"cphi:hicp2015:cp-hi00": 102.3,
					"cphi:rt1:cp-hi00":      0.8,
				},
				map[string]float64{
					"cphi:hicp2015:cp-hi00": 0.9,
					"cphi:rt1:cp-hi00":      0.4,
				}),
			row("SE",
				map[string]float64{"cphi:hicp2015:cp-hi00": 101.1},
				map[string]float64{"cphi:hicp2015:cp-hi00": 0.5}),
		},
		"health_cost": {
			row("FI",
				map[string]float64{"health:cost:hc1:mio-eur": 2184.4},
				map[string]float64{"health:cost:hc1:mio-eur": 0.7}),
		},
	}}
}

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Seed = 42
	cfg.Data.Datasets = []string{"cphi", "health_cost"}
	cfg.Cache.Enabled = false
	return cfg
}

func newTestService(t *testing.T, cfg *model.Config) *Service {
	t.Helper()
	svc, err := NewService(context.Background(), cfg, testSource())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestGenerateEnglishArticle(t *testing.T) {
	svc := newTestService(t, testConfig())

	article, err := svc.Generate(context.Background(), Request{
		Language: "en",
		Dataset:  "cphi",
		Location: "FI",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if article.Degraded {
		t.Fatalf("article degraded, body: %q", article.Body)
	}
	if !strings.Contains(article.Headline, "Finland") {
		t.Errorf("headline does not name the location: %q", article.Headline)
	}
	if !strings.Contains(article.Body, "102.3") {
		t.Errorf("body does not report the index value: %q", article.Body)
	}
	if !strings.HasPrefix(article.Body, "<p>") {
		t.Errorf("body is not paragraph-wrapped: %q", article.Body)
	}
	if article.Request.LocationType != "country" {
		t.Errorf("location type not defaulted: %q", article.Request.LocationType)
	}
}

func TestGenerateDeterministicWithFixedSeed(t *testing.T) {
	first, err := newTestService(t, testConfig()).Generate(context.Background(), Request{
		Language: "fi", Dataset: "cphi", Location: "FI",
	})
	if err != nil {
		t.Fatal(err)
	}
	second, err := newTestService(t, testConfig()).Generate(context.Background(), Request{
		Language: "fi", Dataset: "cphi", Location: "FI",
	})
	if err != nil {
		t.Fatal(err)
	}
	if first.Headline != second.Headline {
		t.Errorf("headlines differ:\n%q\n%q", first.Headline, second.Headline)
	}
	if first.Body != second.Body {
		t.Errorf("bodies differ:\n%q\n%q", first.Body, second.Body)
	}
}

func TestGenerateServesFromCache(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	svc := newTestService(t, cfg)

	req := Request{Language: "en", Dataset: "cphi", Location: "FI"}
	first, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !first.GeneratedAt.Equal(second.GeneratedAt) {
		t.Error("second request regenerated instead of serving the cached article")
	}
	if first.Body != second.Body {
		t.Error("cached body differs from the original")
	}
}

func TestGenerateDiskBackendSurvivesRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "disk"
	cfg.Cache.Dir = t.TempDir()

	req := Request{Language: "en", Dataset: "cphi", Location: "FI"}
	first, err := newTestService(t, cfg).Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}

	// A second service over the same directory stands in for a restart.
	second, err := newTestService(t, cfg).Generate(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !first.GeneratedAt.Equal(second.GeneratedAt) {
		t.Error("restarted service regenerated instead of reading the disk cache")
	}
	if first.Body != second.Body {
		t.Error("cached body differs from the original")
	}
}

func TestGenerateRejectsUnknownCacheBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = true
	cfg.Cache.Backend = "redis"

	if _, err := NewService(context.Background(), cfg, testSource()); err == nil {
		t.Fatal("expected an error for an unknown cache backend")
	}
}

func TestGenerateUnknownDataset(t *testing.T) {
	svc := newTestService(t, testConfig())

	_, err := svc.Generate(context.Background(), Request{
		Language: "en", Dataset: "census", Location: "FI",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown dataset")
	}
}

func TestGenerateDegradesWithoutMessages(t *testing.T) {
	svc := newTestService(t, testConfig())

	article, err := svc.Generate(context.Background(), Request{
		Language: "en", Dataset: "cphi", Location: "XX",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !article.Degraded {
		t.Fatal("expected a degraded article for a location with no data")
	}
	if !strings.Contains(article.Body, "unable to write") {
		t.Errorf("unexpected degradation text: %q", article.Body)
	}
	if article.Headline != "XX" {
		t.Errorf("headline should fall back to the location code, got %q", article.Headline)
	}
}

func TestGenerateDegradesWithoutTemplates(t *testing.T) {
	svc := newTestService(t, testConfig())

	// German resources cover the consumer price dataset only.
	article, err := svc.Generate(context.Background(), Request{
		Language: "de", Dataset: "health_cost", Location: "FI",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !article.Degraded {
		t.Fatal("expected a degraded article for an uncovered language-dataset pair")
	}
	if article.Headline != "Finnland" {
		t.Errorf("headline should fall back to the localized country name, got %q", article.Headline)
	}
}

func TestErrorTextSelection(t *testing.T) {
	svc := newTestService(t, testConfig())

	noTemplate := &model.NoTemplateError{Language: "en", Message: "m"}
	cases := []struct {
		err  error
		want string
	}{
		{model.ErrNoMessages, "unable to write"},
		{fmt.Errorf("extract: %w", model.ErrNoNucleus), "unable to write"},
		{fmt.Errorf("select: %w", noTemplate), "how to express"},
		{errors.New("disk on fire"), "went wrong"},
	}
	for _, tc := range cases {
		got := svc.errorText("en", tc.err)
		if !strings.Contains(got, tc.want) {
			t.Errorf("errorText(%v) = %q, want substring %q", tc.err, got, tc.want)
		}
	}
}

func TestServiceCatalogs(t *testing.T) {
	svc := newTestService(t, testConfig())

	languages := svc.Languages()
	if len(languages) != 3 {
		t.Errorf("languages = %v", languages)
	}

	datasets := svc.Datasets()
	sort.Strings(datasets)
	if len(datasets) != 2 || datasets[0] != "cphi" || datasets[1] != "health_cost" {
		t.Errorf("datasets = %v", datasets)
	}

	locations, err := svc.Locations("cphi")
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(locations)
	if len(locations) != 2 || locations[0] != "FI" || locations[1] != "SE" {
		t.Errorf("locations = %v", locations)
	}

	if _, err := svc.Locations("census"); err == nil {
		t.Error("expected an error for an unknown dataset")
	}
}
