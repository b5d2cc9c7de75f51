package model

import "time"

// Config is the complete configuration for article generation
type Config struct {
	Data        DataConfig        `yaml:"data" mapstructure:"data"`
	Planner     PlannerConfig     `yaml:"planner" mapstructure:"planner"`
	Selector    SelectorConfig    `yaml:"selector" mapstructure:"selector"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Seed        int64             `yaml:"seed" mapstructure:"seed"` // 0 = random per run
}

// DataConfig configures the dataset store
type DataConfig struct {
	Path     string   `yaml:"path" mapstructure:"path"`         // SQLite database path
	Datasets []string `yaml:"datasets" mapstructure:"datasets"` // datasets to load, e.g. ["cphi", "health_cost"]
}

// PlannerConfig configures document planning. The early-relaxation switches
// between overview and in-depth documents are heuristic and dataset-tuned,
// so every threshold lives here rather than in code.
type PlannerConfig struct {
	Variant                    string  `yaml:"variant" mapstructure:"variant"` // full, score, random, earlystop
	MaxParagraphs              int     `yaml:"max_paragraphs" mapstructure:"max_paragraphs"`
	MinSatellites              int     `yaml:"min_satellites" mapstructure:"min_satellites"`
	MaxSatellites              int     `yaml:"max_satellites" mapstructure:"max_satellites"`
	ParagraphAbsoluteThreshold float64 `yaml:"paragraph_absolute_threshold" mapstructure:"paragraph_absolute_threshold"`
	SecondParagraphFraction    float64 `yaml:"second_paragraph_fraction" mapstructure:"second_paragraph_fraction"`
	LaterParagraphFraction     float64 `yaml:"later_paragraph_fraction" mapstructure:"later_paragraph_fraction"`
	SatelliteRelativeThreshold float64 `yaml:"satellite_relative_threshold" mapstructure:"satellite_relative_threshold"`
	SatelliteAbsoluteThreshold float64 `yaml:"satellite_absolute_threshold" mapstructure:"satellite_absolute_threshold"`
	NucleusWeight              float64 `yaml:"nucleus_weight" mapstructure:"nucleus_weight"`
	TopicPrefixLength          int     `yaml:"topic_prefix_length" mapstructure:"topic_prefix_length"`
}

// SelectorConfig configures template selection
type SelectorConfig struct {
	CheckCacheSize int `yaml:"check_cache_size" mapstructure:"check_cache_size"` // per-run template applicability cache
}

// CacheConfig configures the article cache
type CacheConfig struct {
	Enabled         bool          `yaml:"enabled" mapstructure:"enabled"`
	Backend         string        `yaml:"backend" mapstructure:"backend"` // memory, disk or layered
	Dir             string        `yaml:"dir" mapstructure:"dir"`         // disk and layered backends
	TTL             time.Duration `yaml:"ttl" mapstructure:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" mapstructure:"cleanup_interval"`
}

// ServerConfig configures the HTTP adapter
type ServerConfig struct {
	Addr              string  `yaml:"addr" mapstructure:"addr"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig configures worker pools
type ConcurrencyConfig struct {
	BulkWorkers int `yaml:"bulk_workers" mapstructure:"bulk_workers"`
}

// LLMConfig configures the optional LLM-backed morphological realizer.
// Empty provider disables it.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "", "openai", "anthropic", "ollama"
	Model     string `yaml:"model" mapstructure:"model"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// OutputConfig configures output behavior
type OutputConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. Planner numbers follow the
// tuning of the statistical news deployments this grew out of.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path:     "statnews.db",
			Datasets: []string{"cphi", "health_cost", "health_funding"},
		},
		Planner: PlannerConfig{
			Variant:                    "full",
			MaxParagraphs:              3,
			MinSatellites:              2,
			MaxSatellites:              5,
			ParagraphAbsoluteThreshold: 0.5,
			SecondParagraphFraction:    0.0,
			LaterParagraphFraction:     0.3,
			SatelliteRelativeThreshold: 0.5,
			SatelliteAbsoluteThreshold: 0.2,
			NucleusWeight:              1.0,
			TopicPrefixLength:          3,
		},
		Selector: SelectorConfig{
			CheckCacheSize: 1024,
		},
		Cache: CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			TTL:             1 * time.Hour,
			CleanupInterval: 10 * time.Minute,
		},
		Server: ServerConfig{
			Addr:              ":8080",
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Concurrency: ConcurrencyConfig{
			BulkWorkers: 4,
		},
		LLM: LLMConfig{
			Provider: "",
			Model:    "gpt-4o-mini",
		},
	}
}
