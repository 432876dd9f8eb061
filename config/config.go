// File: config.go
// Role: Config, the resolved CLI option table of spec.md §6, built with
// functional options and validated once by New.
package config

import (
	"math"

	"github.com/anomgraph/gbad/gbaderr"
	"github.com/anomgraph/gbad/mdl"
)

// AnomalyMode selects which of the three anomaly algorithms (spec.md
// §4.6-§4.8) New's Config drives, or none (plain discovery).
type AnomalyMode int

const (
	// AnomalyNone runs plain discovery with no anomaly search.
	AnomalyNone AnomalyMode = iota
	// AnomalyITMDL runs the IT/MDL anomaly algorithm (`-mdl`).
	AnomalyITMDL
	// AnomalyMPS runs the MPS anomaly algorithm (`-mps`).
	AnomalyMPS
	// AnomalyProbabilistic runs the probabilistic anomaly algorithm (`-prob`).
	AnomalyProbabilistic
)

// Config is the fully resolved, validated run configuration. Build it with
// New and one or more Options; never construct it as a bare literal since
// several fields have non-zero defaults.
type Config struct {
	InputPath string
	OutPath   string
	DotPath   string
	PSPath    string

	BeamWidth   int
	NumBestSubs int
	Limit       int
	MinVertices int
	MaxVertices int
	Iterations  int
	NormIndex   int
	Output      int

	EvalMode mdl.Mode

	Compress      bool
	AllowOverlap  bool
	Prune         bool
	Undirected    bool
	ValueBased    bool
	NoOptimize    bool

	Threshold float64

	Anomaly          AnomalyMode
	AnomalyThreshold float64 // the value passed to -mdl or -mps
	MaxAnomScore     float64
	MinAnomScore     float64

	anomalyOptionsSet int // how many of WithITMDL/WithMPS/WithProbabilistic were applied
}

// Option is a functional option over Config, in the style of
// dijkstra.Option / builder.BuilderOption.
type Option func(*Config)

// WithInputPath sets the positive-example graph file to read.
func WithInputPath(path string) Option { return func(c *Config) { c.InputPath = path } }

// WithOutPath sets the machine-readable output path (`-out`).
func WithOutPath(path string) Option { return func(c *Config) { c.OutPath = path } }

// WithDotPath sets the optional Graphviz DOT output path (`-dot`).
func WithDotPath(path string) Option { return func(c *Config) { c.DotPath = path } }

// WithPredefinedSubstructures sets the predefined-substructure file (`-ps`).
func WithPredefinedSubstructures(path string) Option { return func(c *Config) { c.PSPath = path } }

// WithBeamWidth sets the beam search width (`-beam`, must be > 0).
func WithBeamWidth(n int) Option { return func(c *Config) { c.BeamWidth = n } }

// WithNumBestSubs sets how many best substructures discovery retains
// (`-nsubs`, must be > 0).
func WithNumBestSubs(n int) Option { return func(c *Config) { c.NumBestSubs = n } }

// WithLimit sets the discovery expansion ceiling (`-limit`, must be > 0).
func WithLimit(n int) Option { return func(c *Config) { c.Limit = n } }

// WithSizeBounds sets the substructure vertex-count bounds (`-minsize`/`-maxsize`).
func WithSizeBounds(min, max int) Option {
	return func(c *Config) { c.MinVertices, c.MaxVertices = min, max }
}

// WithIterations sets the number of discovery/compression rounds (`-iterations`, 0=unbounded).
func WithIterations(n int) Option { return func(c *Config) { c.Iterations = n } }

// WithNormIndex selects which top-K normative pattern to report (`-norm`, ≥1).
func WithNormIndex(n int) Option { return func(c *Config) { c.NormIndex = n } }

// WithOutputFormat selects the output format (`-output`, 1..5).
func WithOutputFormat(n int) Option { return func(c *Config) { c.Output = n } }

// WithEvalMode selects the evaluator (`-eval`, 1=MDL 2=SIZE 3=SETCOVER).
func WithEvalMode(m mdl.Mode) Option { return func(c *Config) { c.EvalMode = m } }

// WithCompress enables predefined-substructure compression (`-compress`).
func WithCompress() Option { return func(c *Config) { c.Compress = true } }

// WithAllowOverlap enables overlapping instance admission (`-overlap`).
func WithAllowOverlap() Option { return func(c *Config) { c.AllowOverlap = true } }

// WithPrune enables beam-search pruning of non-improving children (`-prune`).
func WithPrune() Option { return func(c *Config) { c.Prune = true } }

// WithUndirected treats `e` edges as undirected (`-undirected`).
func WithUndirected() Option { return func(c *Config) { c.Undirected = true } }

// WithValueBased selects value-based (rather than count-based) seeding (`-valuebased`).
func WithValueBased() Option { return func(c *Config) { c.ValueBased = true } }

// WithNoOptimize disables the per-vertex one-edge-extension skip (`-noOpt`).
func WithNoOptimize() Option { return func(c *Config) { c.NoOptimize = true } }

// WithThreshold sets the matcher/extension cost threshold (`-threshold`, [0,1]).
func WithThreshold(t float64) Option { return func(c *Config) { c.Threshold = t } }

// WithITMDL selects the IT/MDL anomaly algorithm with the given threshold (`-mdl`, (0,1)).
func WithITMDL(threshold float64) Option {
	return func(c *Config) {
		c.Anomaly, c.AnomalyThreshold = AnomalyITMDL, threshold
		c.anomalyOptionsSet++
	}
}

// WithMPS selects the MPS anomaly algorithm with the given threshold (`-mps`, (0,1)).
func WithMPS(threshold float64) Option {
	return func(c *Config) {
		c.Anomaly, c.AnomalyThreshold = AnomalyMPS, threshold
		c.anomalyOptionsSet++
	}
}

// WithProbabilistic selects the probabilistic anomaly algorithm and sets the
// iteration count (`-prob`, ≥2); New forces MaxAnomScore to 1.0 for this mode.
func WithProbabilistic(iterations int) Option {
	return func(c *Config) {
		c.Anomaly, c.Iterations = AnomalyProbabilistic, iterations
		c.anomalyOptionsSet++
	}
}

// WithAnomalyScoreBounds sets the emitted-candidate score window (`-minAnomalousScore`/`-maxAnomalousScore`).
func WithAnomalyScoreBounds(min, max float64) Option {
	return func(c *Config) { c.MinAnomScore, c.MaxAnomScore = min, max }
}

// defaults mirrors spec.md §6's implicit defaults: unrestricted size and
// score bounds, beam/limit/nsubs set to the values the original tool ships
// with, eval mode MDL, no anomaly search.
func defaults() Config {
	return Config{
		BeamWidth:    4,
		NumBestSubs:  3,
		Limit:        math.MaxInt32,
		MinVertices:  1,
		MaxVertices:  math.MaxInt32,
		Iterations:   1,
		NormIndex:    1,
		Output:       1,
		EvalMode:     mdl.ModeMDL,
		Threshold:    0.0,
		MaxAnomScore: math.MaxFloat64,
		MinAnomScore: 0,
	}
}

// New builds a Config from defaults() plus opts, then validates it against
// every domain rule spec.md §6-§7 lists. A violation is returned as a
// *gbaderr.OptionError naming the offending option; New never panics.
func New(opts ...Option) (*Config, error) {
	c := defaults()
	for _, opt := range opts {
		opt(&c)
	}

	if c.InputPath == "" {
		return nil, gbaderr.NewOptionError("input", "a positive-example graph file is required")
	}
	if c.BeamWidth <= 0 {
		return nil, gbaderr.NewOptionError("-beam", "must be > 0")
	}
	if c.NumBestSubs <= 0 {
		return nil, gbaderr.NewOptionError("-nsubs", "must be > 0")
	}
	if c.Limit <= 0 {
		return nil, gbaderr.NewOptionError("-limit", "must be > 0")
	}
	if c.MinVertices <= 0 || c.MaxVertices <= 0 {
		return nil, gbaderr.NewOptionError("-minsize/-maxsize", "must be > 0")
	}
	if c.MinVertices > c.MaxVertices {
		return nil, gbaderr.NewOptionError("-minsize/-maxsize", "min_vertices must be <= max_vertices")
	}
	if c.Iterations < 0 {
		return nil, gbaderr.NewOptionError("-iterations", "must be >= 0")
	}
	if c.NormIndex < 1 {
		return nil, gbaderr.NewOptionError("-norm", "must be >= 1")
	}
	if c.Output < 1 || c.Output > 5 {
		return nil, gbaderr.NewOptionError("-output", "must be in 1..5")
	}
	if c.Threshold < 0.0 || c.Threshold > 1.0 {
		return nil, gbaderr.NewOptionError("-threshold", "must be in [0.0, 1.0]")
	}
	if c.EvalMode != mdl.ModeMDL && c.EvalMode != mdl.ModeSize && c.EvalMode != mdl.ModeSetCover {
		return nil, gbaderr.NewOptionError("-eval", "must be 1 (MDL), 2 (SIZE), or 3 (SETCOVER)")
	}

	if c.anomalyOptionsSet > 1 {
		return nil, gbaderr.NewOptionError("-mdl/-mps/-prob", "at most one anomaly algorithm may be selected")
	}

	switch c.Anomaly {
	case AnomalyITMDL:
		if c.AnomalyThreshold <= 0.0 || c.AnomalyThreshold >= 1.0 {
			return nil, gbaderr.NewOptionError("-mdl", "threshold must be in (0.0, 1.0)")
		}
	case AnomalyMPS:
		if c.AnomalyThreshold <= 0.0 || c.AnomalyThreshold >= 1.0 {
			return nil, gbaderr.NewOptionError("-mps", "threshold must be in (0.0, 1.0)")
		}
	case AnomalyProbabilistic:
		if c.Iterations < 2 {
			return nil, gbaderr.NewOptionError("-prob", "iterations must be >= 2")
		}
		c.MaxAnomScore = 1.0
	}

	if c.MinAnomScore > c.MaxAnomScore {
		return nil, gbaderr.NewOptionError("-minAnomalousScore/-maxAnomalousScore", "min must be <= max")
	}

	return &c, nil
}
