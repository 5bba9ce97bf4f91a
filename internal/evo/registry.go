package evo

import (
	"fmt"
	"sort"
	"strings"

	"numevo/internal/numeral"
)

const (
	FamilyInitiation = "initiation"
	FamilyMutation   = "mutation"
	FamilyCrossover  = "crossover"
	FamilySelection  = "selection"
	FamilyStop       = "stop"
)

var policyCatalog = map[string][]string{
	FamilyInitiation: {"random", "linspace"},
	FamilyMutation:   {"percentage", "absolute"},
	FamilyCrossover:  {"average", "random"},
	FamilySelection:  {"random", "unique_random", "target"},
	FamilyStop:       {"max_generation", "stable_average"},
}

// PolicyConfig names a policy and carries every parameter a policy family may
// read. Parameters a policy does not use are ignored.
type PolicyConfig struct {
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

// ListFamilies returns the policy family names in sorted order.
func ListFamilies() []string {
	families := make([]string, 0, len(policyCatalog))
	for family := range policyCatalog {
		families = append(families, family)
	}
	sort.Strings(families)
	return families
}

// ListPolicies returns the policy names of one family.
func ListPolicies(family string) []string {
	names := policyCatalog[family]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// NormalizePolicyName folds case and separators so "Unique-Random" and
// "unique_random" resolve to the same policy.
func NormalizePolicyName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	switch name {
	case "lin_space":
		return "linspace"
	case "uniquerandom", "unique":
		return "unique_random"
	case "max_gen", "maxgen", "max_generations":
		return "max_generation"
	case "stable_avg", "stableavg":
		return "stable_average"
	case "rank", "rank_weighted":
		return "target"
	default:
		return name
	}
}

func unknownPolicy(family, name string) error {
	return fmt.Errorf("%w: %s policy %q (supported: %s)", ErrUnknownPolicy, family, name, strings.Join(policyCatalog[family], ", "))
}

func InitiationFromConfig[E any, N numeral.Numeral](shape numeral.Shape[E, N], cfg PolicyConfig) (Initiation[E], error) {
	lo, hi := numeral.Convert[N](cfg.Min), numeral.Convert[N](cfg.Max)
	switch NormalizePolicyName(cfg.Name) {
	case "random":
		return RandomInitiation[E, N]{Shape: shape, Min: lo, Max: hi}, nil
	case "linspace":
		return LinSpaceInitiation[E, N]{Shape: shape, Min: lo, Max: hi}, nil
	default:
		return nil, unknownPolicy(FamilyInitiation, cfg.Name)
	}
}

func MutationFromConfig[E any, N numeral.Numeral](shape numeral.Shape[E, N], cfg PolicyConfig) (Mutation[E], error) {
	switch NormalizePolicyName(cfg.Name) {
	case "percentage":
		return PercentageMutation[E, N]{Shape: shape, Chance: cfg.Chance, Intensity: cfg.Intensity}, nil
	case "absolute":
		return AbsoluteMutation[E, N]{Shape: shape, Chance: cfg.Chance, Intensity: cfg.Intensity}, nil
	default:
		return nil, unknownPolicy(FamilyMutation, cfg.Name)
	}
}

func CrossoverFromConfig[E any, N numeral.Numeral](shape numeral.Shape[E, N], cfg PolicyConfig) (Crossover[E], error) {
	switch NormalizePolicyName(cfg.Name) {
	case "average":
		return AverageCrossover[E, N]{Shape: shape, Weight: cfg.Weight}, nil
	case "random":
		return RandomCrossover[E, N]{Shape: shape}, nil
	default:
		return nil, unknownPolicy(FamilyCrossover, cfg.Name)
	}
}

func SelectionFromConfig[E any, N numeral.Numeral](shape numeral.Shape[E, N], cfg PolicyConfig) (Selection[E], error) {
	switch NormalizePolicyName(cfg.Name) {
	case "random":
		return RandomSelection[E]{}, nil
	case "unique_random":
		return UniqueRandomSelection[E]{}, nil
	case "target":
		weighting := RankWeighting(strings.ToLower(strings.TrimSpace(cfg.Weighting)))
		if weighting == "" {
			weighting = LinearWeighting
		}
		return TargetSelection[E]{
			First:     cfg.First,
			Last:      cfg.Last,
			Rank:      ByMagnitude(shape),
			Weighting: weighting,
		}, nil
	default:
		return nil, unknownPolicy(FamilySelection, cfg.Name)
	}
}

func StopFromConfig[E any, N numeral.Numeral](shape numeral.Shape[E, N], cfg PolicyConfig) (StopCondition[E], error) {
	switch NormalizePolicyName(cfg.Name) {
	case "max_generation":
		return MaxGenerationStop[E]{Limit: cfg.Limit}, nil
	case "stable_average":
		return StableAverageStop[E, N]{Shape: shape, Threshold: cfg.Threshold}, nil
	default:
		return nil, unknownPolicy(FamilyStop, cfg.Name)
	}
}
