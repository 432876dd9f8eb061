// Command gbad discovers normative substructures and anomalies in a graph
// under the SUBDUE-style beam search of spec.md, orchestrating the
// `format`/`config`/`discover`/`compress`/`anomaly` packages behind the CLI
// option table of spec.md §6.
//
// Grounded on google-deps.dev/examples/go/dependencies_dot/main.go's
// flag.Usage + fatal-on-error main shape, enriched with structured
// zerolog logging (spec.md §7: "a single diagnostic line on standard
// error" before exiting 1).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/anomgraph/gbad/anomaly"
	"github.com/anomgraph/gbad/compress"
	"github.com/anomgraph/gbad/config"
	"github.com/anomgraph/gbad/discover"
	"github.com/anomgraph/gbad/extend"
	"github.com/anomgraph/gbad/format"
	"github.com/anomgraph/gbad/gbaderr"
	"github.com/anomgraph/gbad/graph"
	"github.com/anomgraph/gbad/instance"
	"github.com/anomgraph/gbad/label"
	"github.com/anomgraph/gbad/matcher"
	"github.com/anomgraph/gbad/mdl"
	"github.com/anomgraph/gbad/substructure"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, doc, err := parseAndLoad(os.Args[1:])
	if err != nil {
		logger.Error().Err(err).Msg("gbad: fatal")
		os.Exit(1)
	}

	if err := run(cfg, doc, logger); err != nil {
		logger.Error().Err(err).Msg("gbad: fatal")
		os.Exit(1)
	}
}

func parseAndLoad(args []string) (*config.Config, *format.Document, error) {
	fs := flag.NewFlagSet("gbad", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gbad [options] <input-graph-file>\n")
		fs.PrintDefaults()
	}

	beam := fs.Int("beam", 4, "beam width")
	compressFlag := fs.Bool("compress", false, "compress the graph by any predefined substructures before discovery")
	eval := fs.Int("eval", 1, "evaluator: 1=MDL 2=SIZE 3=SETCOVER")
	iterations := fs.Int("iterations", 1, "number of discover/compress rounds, 0=unbounded")
	limit := fs.Int("limit", 1<<30, "max substructures expanded")
	minsize := fs.Int("minsize", 1, "minimum substructure vertex count")
	maxsize := fs.Int("maxsize", 1<<30, "maximum substructure vertex count")
	nsubs := fs.Int("nsubs", 3, "number of best substructures retained")
	out := fs.String("out", "", "machine-readable output path")
	output := fs.Int("output", 1, "output format selector, 1..5")
	overlap := fs.Bool("overlap", false, "allow overlapping instances")
	prune := fs.Bool("prune", false, "prune non-improving beam children")
	ps := fs.String("ps", "", "predefined substructure file")
	threshold := fs.Float64("threshold", 0.0, "inexact match cost threshold, [0.0,1.0]")
	undirected := fs.Bool("undirected", false, "treat plain e-edges as undirected")
	valuebased := fs.Bool("valuebased", false, "value-based rather than count-based seeding")
	mdlAnom := fs.Float64("mdl", 0, "run IT/MDL anomaly search at the given threshold, (0,1)")
	prob := fs.Int("prob", 0, "run the probabilistic anomaly search for N iterations, >=2")
	mps := fs.Float64("mps", 0, "run MPS anomaly search at the given threshold, (0,1)")
	maxAnom := fs.Float64("maxAnomalousScore", 1<<30, "maximum anomaly score emitted")
	minAnom := fs.Float64("minAnomalousScore", 0, "minimum anomaly score emitted")
	norm := fs.Int("norm", 1, "rank of the normative pattern to use, >=1")
	noOpt := fs.Bool("noOpt", false, "disable the per-vertex one-edge extension skip")
	dot := fs.String("dot", "", "optional Graphviz DOT output path")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, nil, gbaderr.NewOptionError("input", "exactly one input graph file is required")
	}

	opts := []config.Option{
		config.WithInputPath(fs.Arg(0)),
		config.WithBeamWidth(*beam),
		config.WithNumBestSubs(*nsubs),
		config.WithLimit(*limit),
		config.WithSizeBounds(*minsize, *maxsize),
		config.WithIterations(*iterations),
		config.WithNormIndex(*norm),
		config.WithOutputFormat(*output),
		config.WithOutPath(*out),
		config.WithDotPath(*dot),
		config.WithPredefinedSubstructures(*ps),
		config.WithThreshold(*threshold),
		config.WithAnomalyScoreBounds(*minAnom, *maxAnom),
	}
	switch *eval {
	case 2:
		opts = append(opts, config.WithEvalMode(mdl.ModeSize))
	case 3:
		opts = append(opts, config.WithEvalMode(mdl.ModeSetCover))
	default:
		opts = append(opts, config.WithEvalMode(mdl.ModeMDL))
	}
	if *compressFlag {
		opts = append(opts, config.WithCompress())
	}
	if *overlap {
		opts = append(opts, config.WithAllowOverlap())
	}
	if *prune {
		opts = append(opts, config.WithPrune())
	}
	if *undirected {
		opts = append(opts, config.WithUndirected())
	}
	if *valuebased {
		opts = append(opts, config.WithValueBased())
	}
	if *noOpt {
		opts = append(opts, config.WithNoOptimize())
	}
	if *mdlAnom > 0 {
		opts = append(opts, config.WithITMDL(*mdlAnom))
	}
	if *mps > 0 {
		opts = append(opts, config.WithMPS(*mps))
	}
	if *prob > 0 {
		opts = append(opts, config.WithProbabilistic(*prob))
	}

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	f, err := os.Open(cfg.InputPath)
	if err != nil {
		return nil, nil, gbaderr.NewParseError(0, "opening input file: "+err.Error())
	}
	defer f.Close()

	doc, err := format.Read(f, !cfg.Undirected)
	if err != nil {
		return nil, nil, err
	}

	return cfg, doc, nil
}

func run(cfg *config.Config, doc *format.Document, logger zerolog.Logger) error {
	host := doc.Host
	registry := doc.Registry

	if cfg.PSPath != "" && cfg.Compress {
		var err error
		host, registry, err = compressPredefined(cfg, host, registry, logger)
		if err != nil {
			return err
		}
	}

	unbounded := cfg.Iterations == 0

	var (
		normative     *substructure.Substructure
		prevInstances int
	)

	for round := 0; unbounded || round < cfg.Iterations; round++ {
		best, err := discoverRound(cfg, host, registry)
		if err != nil {
			return err
		}
		if len(best) == 0 {
			logger.Warn().Int("round", round).Msg("discovery found no substructures")
			break
		}

		rank := cfg.NormIndex - 1
		if rank >= len(best) {
			logger.Warn().Int("requested", cfg.NormIndex).Int("available", len(best)).
				Msg("normative index beyond top-K, substituting the best")
			rank = 0
		}
		normative = best[rank]

		if err := format.WriteNormative(os.Stdout, registry, normative, cfg.NormIndex); err != nil {
			return err
		}

		candidates, err := runAnomalySearch(cfg, host, normative, round, prevInstances)
		if err != nil {
			return err
		}
		if err := format.WriteAnomalousInstances(os.Stdout, registry, host, candidates); err != nil {
			return err
		}

		prevInstances = len(normative.Instances)
		result := compress.Compress(host, registry, normative, round+1)
		host, registry = result.Graph, result.Registry
	}

	if cfg.OutPath != "" {
		if err := writeFile(cfg.OutPath, func(f *os.File) error {
			if normative == nil {
				return nil
			}
			return format.WriteMachineReadable(f, registry, []*substructure.Substructure{normative})
		}); err != nil {
			return gbaderr.NewOptionError("-out", err.Error())
		}
	}

	if err := writeFile(cfg.InputPath+".cmp", func(f *os.File) error {
		return format.WriteCompressed(f, registry, host)
	}); err != nil {
		return gbaderr.NewOptionError("-compress", err.Error())
	}

	if cfg.DotPath != "" {
		if err := writeFile(cfg.DotPath, func(f *os.File) error {
			return format.WriteDOT(f, registry, host)
		}); err != nil {
			return gbaderr.NewOptionError("-dot", err.Error())
		}
	}

	return nil
}

func writeFile(path string, fn func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return fn(f)
}

// compressPredefined reads cfg.PSPath and compresses every predefined
// substructure it contains out of host before discovery begins (spec.md §8
// scenario 5).
func compressPredefined(cfg *config.Config, host *graph.Graph, registry *label.Registry, logger zerolog.Logger) (*graph.Graph, *label.Registry, error) {
	psFile, err := os.Open(cfg.PSPath)
	if err != nil {
		return nil, nil, gbaderr.NewParseError(0, "opening predefined substructure file: "+err.Error())
	}
	defer psFile.Close()

	psDoc, err := format.Read(psFile, !cfg.Undirected)
	if err != nil {
		return nil, nil, err
	}

	for i, def := range psDoc.Predefined {
		sub := substructure.New(def)
		sub.Instances = findInstances(host, def)
		if len(sub.Instances) == 0 {
			logger.Warn().Int("substructure", i).Msg("predefined substructure has no instances in the host graph")
			continue
		}
		result := compress.Compress(host, registry, sub, i+1)
		host, registry = result.Graph, result.Registry
		logger.Info().Int("substructure", i).Int("instances", len(sub.Instances)).Msg("compressed predefined substructure")
	}

	return host, registry, nil
}

func discoverRound(cfg *config.Config, host *graph.Graph, registry *label.Registry) ([]*substructure.Substructure, error) {
	seeds := seedByLabel(host)
	if len(seeds) == 0 {
		return nil, nil
	}

	table := mdl.NewLgFactTable()
	evaluate := func(s *substructure.Substructure) float64 {
		return scoreSubstructure(cfg, host, registry, s, table)
	}

	discOpts := []discover.Option{
		discover.WithEvaluate(evaluate),
		discover.WithBeamWidth(cfg.BeamWidth),
		discover.WithNumBestSubs(cfg.NumBestSubs),
		discover.WithMaxExpansions(cfg.Limit),
		discover.WithSizeBounds(cfg.MinVertices, cfg.MaxVertices),
		discover.WithThreshold(cfg.Threshold),
		discover.WithCostModel(matcher.DefaultCost()),
		discover.WithPrune(cfg.Prune),
	}
	if cfg.AllowOverlap {
		discOpts = append(discOpts, discover.WithAllowOverlap())
	}

	return discover.Run(host, seeds, discOpts...)
}

// scoreSubstructure evaluates s under cfg.EvalMode, compressing it against
// a throwaway registry clone when the mode needs the resulting graph's
// shape (spec.md §4.2).
func scoreSubstructure(cfg *config.Config, host *graph.Graph, registry *label.Registry, s *substructure.Substructure, table *mdl.LgFactTable) float64 {
	if cfg.EvalMode == mdl.ModeSetCover {
		covered := map[int]bool{}
		for _, inst := range s.Instances {
			if len(inst.Vertices) == 0 {
				continue
			}
			covered[host.Vertices[inst.Vertices[0]].Provenance.SourceExample] = true
		}

		return mdl.Value(mdl.Input{Mode: mdl.ModeSetCover, CoveredPosExamples: len(covered), TotalPosExamples: numExamples(host)})
	}

	compressed := host
	var external, selfEdges int
	if len(s.Instances) >= 2 {
		scratch := registry.Clone()
		result := compress.Compress(host, scratch, s, 0)
		compressed = result.Graph
		external, selfEdges = compress.ExternalEdgeStats(host, registry.Clone(), s)
	}

	return mdl.Value(mdl.Input{
		Mode:           cfg.EvalMode,
		HostGraph:      host,
		Definition:     s.Definition,
		Compressed:     compressed,
		NumLabels:      registry.Len(),
		NumInstances:   len(s.Instances),
		ExternalEdges:  external,
		SelfEdgesOnSub: selfEdges,
		Table:          table,
	})
}

func runAnomalySearch(cfg *config.Config, host *graph.Graph, normative *substructure.Substructure, round, prevInstances int) ([]anomaly.Candidate, error) {
	switch cfg.Anomaly {
	case config.AnomalyITMDL:
		res := anomaly.ITMDL(host, normative, anomaly.ITMDLOptions{
			Threshold: cfg.AnomalyThreshold, CostModel: matcher.DefaultCost(),
			MinAnomScore: cfg.MinAnomScore, MaxAnomScore: cfg.MaxAnomScore,
		})

		return res.Candidates, nil
	case config.AnomalyMPS:
		res := anomaly.MPS(host, normative, anomaly.MPSOptions{
			Threshold: cfg.AnomalyThreshold, CostModel: matcher.DefaultCost(),
			MinAnomScore: cfg.MinAnomScore, MaxAnomScore: cfg.MaxAnomScore, Optimize: !cfg.NoOptimize,
		})

		return res.Candidates, nil
	case config.AnomalyProbabilistic:
		if round == 0 {
			return nil, nil // iteration 1 is plain discovery, no anomaly-specific step
		}
		subVertices := findSubVertices(host, round)
		if len(subVertices) == 0 {
			return nil, nil
		}
		res := anomaly.ProbabilisticIteration(host, subVertices, prevInstances, anomaly.ProbOptions{
			MinAnomScore: cfg.MinAnomScore, MaxAnomScore: cfg.MaxAnomScore,
		})

		return res.Candidates, nil
	default:
		return nil, nil
	}
}

// findSubVertices returns every SUB vertex compress.Compress minted for
// the given iteration, one per compressed-normative instance (spec.md
// §4.8 rediscovers edges involving all of them, not just one).
func findSubVertices(host *graph.Graph, iteration int) []int {
	var vs []int
	for i := range host.Vertices {
		if host.HasVertex(i) && host.Vertices[i].CompressionIteration == iteration {
			vs = append(vs, i)
		}
	}

	return vs
}

func numExamples(host *graph.Graph) int {
	max := -1
	for i := range host.Vertices {
		if !host.HasVertex(i) {
			continue
		}
		if e := host.Vertices[i].Provenance.SourceExample; e > max {
			max = e
		}
	}

	return max + 1
}

// seedByLabel builds one substructure per distinct vertex label present in
// host with at least two occurrences, with one single-vertex instance per
// occurrence (spec.md §4.4's plain-discovery seeding rule; singleton labels
// are only retained by the MDL/MPS/probabilistic-2+ searches, not here.
// `-valuebased` seeding is left unimplemented, see DESIGN.md).
func seedByLabel(host *graph.Graph) []*substructure.Substructure {
	var order []int
	byLabel := map[int][]int{}
	for v := range host.Vertices {
		if !host.HasVertex(v) {
			continue
		}
		l := host.Vertices[v].LabelIdx
		if _, ok := byLabel[l]; !ok {
			order = append(order, l)
		}
		byLabel[l] = append(byLabel[l], v)
	}

	subs := make([]*substructure.Substructure, 0, len(order))
	for _, l := range order {
		if len(byLabel[l]) < 2 {
			continue
		}
		def := graph.New()
		def.AddVertex(l, graph.Provenance{SourceVertex: graph.UnmappedVertex, SourceExample: -1})
		sub := substructure.New(def)
		for _, v := range byLabel[l] {
			inst := instance.New()
			inst.AddVertex(v)
			sub.Instances = append(sub.Instances, inst)
		}
		subs = append(subs, sub)
	}

	return subs
}

// findInstances searches host for every instance whose induced subgraph
// exactly matches def, by seeding on def's vertex labels and growing via
// extend.OneEdgeExtensions for def's edge count, in the same style as
// anomaly.ITMDL's search loop.
func findInstances(host *graph.Graph, def *graph.Graph) []*instance.Instance {
	seenLabel := map[int]bool{}
	for i := range def.Vertices {
		if def.HasVertex(i) {
			seenLabel[def.Vertices[i].LabelIdx] = true
		}
	}

	var frontier []*instance.Instance
	for v := range host.Vertices {
		if !host.HasVertex(v) || !seenLabel[host.Vertices[v].LabelIdx] {
			continue
		}
		inst := instance.New()
		inst.AddVertex(v)
		frontier = append(frontier, inst)
	}

	for round := 0; round < def.NumEdges(); round++ {
		var next []*instance.Instance
		for _, inst := range frontier {
			next = append(next, extend.OneEdgeExtensions(host, inst)...)
		}
		frontier = next
	}

	var found []*instance.Instance
	seen := map[string]bool{}
	for _, inst := range frontier {
		if inst.NumVertices() != def.NumVertices() || inst.NumEdges() != def.NumEdges() {
			continue
		}
		key := fmt.Sprint(inst.Vertices, inst.Edges)
		if seen[key] {
			continue
		}
		if matcher.ExactMatch(instance.ToGraph(inst, host), def) {
			seen[key] = true
			found = append(found, inst)
		}
	}

	return found
}
