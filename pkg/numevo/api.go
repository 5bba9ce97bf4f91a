package numevo

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"numevo/internal/evo"
	"numevo/internal/numeral"
)

// Numeral kinds accepted by RunRequest.Numeral.
const (
	NumeralFloat64 = "float64"
	NumeralInt     = "int"
)

type Options struct {
	Logger   *slog.Logger
	Observer evo.Observer
}

type Client struct {
	logger   *slog.Logger
	observer evo.Observer
}

// Policy names a policy and carries its parameters.
type Policy struct {
	Name      string
	Min       float64
	Max       float64
	Chance    float64
	Intensity float64
	Weight    float64
	First     float64
	Last      float64
	Weighting string
	Limit     int
	Threshold float64
}

type RunRequest struct {
	Name       string
	Population int
	Numeral    string
	// Dimension 0 runs scalar entities; any positive value runs fixed-length vectors.
	Dimension  int
	Seed       int64
	Initiation Policy
	Mutation   Policy
	Crossover  Policy
	Selection  Policy
	Stop       Policy
}

type RunSummary struct {
	RunID          string
	Generations    int
	PopulationSize int
	// Population holds every individual's components converted to float64.
	Population  [][]float64
	Diagnostics []evo.GenerationDiagnostics
	Elapsed     time.Duration
}

func NewClient(opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{logger: logger, observer: opts.Observer}
}

// ParseNumeral maps accepted numeral spellings to NumeralFloat64 or NumeralInt.
func ParseNumeral(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "float64", "float", "double", "real":
		return NumeralFloat64, nil
	case "int", "integer", "int64":
		return NumeralInt, nil
	default:
		return "", fmt.Errorf("%w: unsupported numeral: %s", evo.ErrConfig, name)
	}
}

// Run resolves every policy, runs the engine to completion and writes the
// report to w. Configuration problems are reported before any generation runs.
func (c *Client) Run(req RunRequest, w io.Writer) (RunSummary, error) {
	kind, err := ParseNumeral(req.Numeral)
	if err != nil {
		return RunSummary{}, err
	}
	if req.Dimension < 0 {
		return RunSummary{}, fmt.Errorf("%w: dimension must be >= 0, got %d", evo.ErrConfig, req.Dimension)
	}

	runID := uuid.NewString()
	logger := c.logger.With("run_id", runID, "name", req.Name)
	logger.Info("starting run",
		"population", req.Population,
		"numeral", kind,
		"dimension", req.Dimension,
		"initiation", req.Initiation.Name,
		"mutation", req.Mutation.Name,
		"crossover", req.Crossover.Name,
		"selection", req.Selection.Name,
		"stop", req.Stop.Name,
	)

	start := time.Now()
	var summary RunSummary
	switch kind {
	case NumeralInt:
		summary, err = runNumeral[int](req, w, c.observer)
	default:
		summary, err = runNumeral[float64](req, w, c.observer)
	}
	if err != nil {
		logger.Error("run failed", "error", err)
		return RunSummary{}, err
	}
	summary.RunID = runID
	summary.Elapsed = time.Since(start)

	logger.Info("run complete",
		"generations", summary.Generations,
		"population", summary.PopulationSize,
		"elapsed", summary.Elapsed,
	)
	return summary, nil
}

func runNumeral[N numeral.Numeral](req RunRequest, w io.Writer, observer evo.Observer) (RunSummary, error) {
	if req.Dimension == 0 {
		return runShape[N, N](numeral.Scalar[N]{}, req, w, observer)
	}
	shape, err := numeral.NewVector[N](req.Dimension)
	if err != nil {
		return RunSummary{}, fmt.Errorf("%w: %v", evo.ErrConfig, err)
	}
	return runShape[[]N, N](shape, req, w, observer)
}

func runShape[E any, N numeral.Numeral](shape numeral.Shape[E, N], req RunRequest, w io.Writer, observer evo.Observer) (RunSummary, error) {
	cfg, err := buildConfig(shape, req)
	if err != nil {
		return RunSummary{}, err
	}
	cfg.Observer = observer

	engine, err := evo.NewEngine(cfg)
	if err != nil {
		return RunSummary{}, err
	}
	result, err := engine.Run(w)
	if err != nil {
		return RunSummary{}, err
	}

	population := make([][]float64, len(result.Population))
	for i, individual := range result.Population {
		components := numeral.Components(shape, individual)
		population[i] = make([]float64, len(components))
		for c, v := range components {
			population[i][c] = float64(v)
		}
	}
	return RunSummary{
		Generations:    result.Generations,
		PopulationSize: len(result.Population),
		Population:     population,
		Diagnostics:    result.Diagnostics,
	}, nil
}

func buildConfig[E any, N numeral.Numeral](shape numeral.Shape[E, N], req RunRequest) (evo.Config[E, N], error) {
	initiation, err := evo.InitiationFromConfig(shape, req.Initiation.config())
	if err != nil {
		return evo.Config[E, N]{}, err
	}
	mutation, err := evo.MutationFromConfig(shape, req.Mutation.config())
	if err != nil {
		return evo.Config[E, N]{}, err
	}
	crossover, err := evo.CrossoverFromConfig(shape, req.Crossover.config())
	if err != nil {
		return evo.Config[E, N]{}, err
	}
	selection, err := evo.SelectionFromConfig(shape, req.Selection.config())
	if err != nil {
		return evo.Config[E, N]{}, err
	}
	stop, err := evo.StopFromConfig(shape, req.Stop.config())
	if err != nil {
		return evo.Config[E, N]{}, err
	}
	return evo.Config[E, N]{
		Shape:          shape,
		PopulationSize: req.Population,
		Initiation:     initiation,
		Mutation:       mutation,
		Crossover:      crossover,
		Selection:      selection,
		Stop:           stop,
		Seed:           req.Seed,
	}, nil
}

func (p Policy) config() evo.PolicyConfig {
	return evo.PolicyConfig{
		Name:      p.Name,
		Min:       p.Min,
		Max:       p.Max,
		Chance:    p.Chance,
		Intensity: p.Intensity,
		Weight:    p.Weight,
		First:     p.First,
		Last:      p.Last,
		Weighting: p.Weighting,
		Limit:     p.Limit,
		Threshold: p.Threshold,
	}
}
